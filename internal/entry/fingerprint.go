package entry

import (
	"sort"
	"strconv"

	"size-explorer/internal/hash"
)

// Fingerprint identifies an entry set independent of its order in the report.
func Fingerprint(entries []Entry) (string, error) {
	records := make([][]byte, len(entries))
	for i, e := range entries {
		rec := make([]byte, 0, len(e.Path)+16)
		rec = append(rec, e.Path...)
		rec = append(rec, 0)
		rec = strconv.AppendFloat(rec, e.SizeMB, 'g', -1, 64)
		records[i] = rec
	}
	sort.Slice(records, func(i, j int) bool {
		return string(records[i]) < string(records[j])
	})
	return hash.Fingerprint(records)
}
