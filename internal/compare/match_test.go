package compare

import "testing"

func TestMatchRecordsPreservesOriginalOrder(t *testing.T) {
	orig := []Record{
		{SampleID: "S3", Coord: "C,3", L: 30},
		{SampleID: "S1", Coord: "A,1", L: 10},
		{SampleID: "S2", Coord: "B,2", L: 20},
	}
	heal := []Record{
		{SampleID: "S1", Coord: "A,1", L: 11},
		{SampleID: "S2", Coord: "B,2", L: 21},
		{SampleID: "S3", Coord: "C,3", L: 31},
	}

	pairs := matchRecords(orig, heal)
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(pairs))
	}
	wantOrder := []string{"S3", "S1", "S2"}
	for i, p := range pairs {
		if p.orig.SampleID != wantOrder[i] {
			t.Errorf("pair %d: got %s, want %s", i, p.orig.SampleID, wantOrder[i])
		}
	}
}

func TestMatchRecordsDropsUnmatched(t *testing.T) {
	orig := []Record{
		{SampleID: "S1", Coord: "A,1"},
		{SampleID: "S9", Coord: "Z,9"},
	}
	heal := []Record{
		{SampleID: "S1", Coord: "A,1"},
	}

	pairs := matchRecords(orig, heal)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0].orig.SampleID != "S1" {
		t.Errorf("got %s, want S1", pairs[0].orig.SampleID)
	}
}

func TestMatchRecordsRequiresBothKeyParts(t *testing.T) {
	orig := []Record{{SampleID: "S1", Coord: "A,1"}}
	heal := []Record{{SampleID: "S1", Coord: "A,2"}}

	if pairs := matchRecords(orig, heal); len(pairs) != 0 {
		t.Errorf("got %d pairs, want 0", len(pairs))
	}
}

func TestMatchRecordsDuplicateKeyLastWins(t *testing.T) {
	orig := []Record{{SampleID: "S1", Coord: "A,1", L: 50}}
	heal := []Record{
		{SampleID: "S1", Coord: "A,1", L: 51},
		{SampleID: "S1", Coord: "A,1", L: 52},
	}

	pairs := matchRecords(orig, heal)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0].heal.L != 52 {
		t.Errorf("got heal L=%v, want 52 (last occurrence)", pairs[0].heal.L)
	}
}
