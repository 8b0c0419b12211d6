package billing

import (
	"strconv"
	"strings"
)

// NextID scans the identifier field of all persisted records of a collection
// and returns max(existing)+1, or defaultStart when the collection is empty.
// Records whose identifier field does not parse are skipped.
//
// Each collection uses a distinct default start so that identifiers from
// different collections do not collide visually; uniqueness is only
// guaranteed within one collection.
func NextID(records [][]string, defaultStart int) int {
	maxID := defaultStart - 1
	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
