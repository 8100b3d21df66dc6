package compare

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	beginMarker = "BEGIN_DATA"
	endMarker   = "END_DATA"
)

// Record is one measurement row from a Barbieri .lab/.txt export:
// a sample identifier, its chip coordinate and the CIE Lab triple.
type Record struct {
	SampleID string
	Coord    string
	L, A, B  float64
}

// readLabFile parses the data section of a measurement file. Only lines
// between BEGIN_DATA and END_DATA are considered; the first five
// whitespace-separated fields of each line are (sample id, coordinate
// token, L, A, B) and anything after them is ignored. Short or
// non-numeric lines are instrument noise and are skipped.
func readLabFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open measurement file: %w", err)
	}
	defer file.Close()

	var records []Record
	inData := false

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == beginMarker {
			inData = true
			continue
		}
		if line == endMarker {
			break
		}
		if !inData || line == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 5 {
			continue
		}
		l, errL := strconv.ParseFloat(parts[2], 64)
		a, errA := strconv.ParseFloat(parts[3], 64)
		b, errB := strconv.ParseFloat(parts[4], 64)
		if errL != nil || errA != nil || errB != nil {
			continue
		}

		records = append(records, Record{
			SampleID: parts[0],
			Coord:    spreadCoord(parts[1]),
			L:        l,
			A:        a,
			B:        b,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read measurement file: %w", err)
	}

	log.Printf("Read %d records from %s", len(records), path)
	return records, nil
}

// spreadCoord expands a compact chip label into a comma-separated
// character sequence, e.g. "A1" -> "A,1".
func spreadCoord(token string) string {
	return strings.Join(strings.Split(token, ""), ",")
}

// loadGroups reads every distinct file across both groups exactly once,
// keyed by path.
func loadGroups(originals, healings []string) (map[string][]Record, error) {
	records := make(map[string][]Record, len(originals)+len(healings))
	for _, path := range append(append([]string{}, originals...), healings...) {
		if _, ok := records[path]; ok {
			continue
		}
		recs, err := readLabFile(path)
		if err != nil {
			return nil, err
		}
		records[path] = recs
	}
	return records, nil
}
