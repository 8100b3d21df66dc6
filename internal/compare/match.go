package compare

// matchKey joins records across files. Records are the same physical
// chip when both the sample id and the expanded coordinate agree.
type matchKey struct {
	sample string
	coord  string
}

// matchedPair is one original-side record together with the healing-side
// record measured at the same key.
type matchedPair struct {
	orig Record
	heal Record
}

// matchRecords pairs every original-side record with the healing-side
// record sharing its key. Originals without a healing counterpart are
// dropped; output order follows the original-side sequence. When the
// healing side carries duplicate keys, the last occurrence wins.
func matchRecords(orig, heal []Record) []matchedPair {
	lookup := make(map[matchKey]Record, len(heal))
	for _, r := range heal {
		lookup[matchKey{r.SampleID, r.Coord}] = r
	}

	var pairs []matchedPair
	for _, r := range orig {
		h, ok := lookup[matchKey{r.SampleID, r.Coord}]
		if !ok {
			continue
		}
		pairs = append(pairs, matchedPair{orig: r, heal: h})
	}
	return pairs
}
