package store

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Storage key prefixes.
// Time indexes use inverted timestamps so forward iteration yields
// newest entries first.
const (
	entryPrefix        = "entry:"
	entryIdxTimePrefix = "entry:idx:time:"

	postPrefix        = "post:"
	postIdxTimePrefix = "post:idx:time:"

	userPrefix = "user:"
)

// invertedTimestamp returns a string that sorts in descending time order.
// Uses MaxInt64 - UnixNano so newer timestamps produce smaller keys.
func invertedTimestamp(t time.Time) string {
	inverted := math.MaxInt64 - t.UnixNano()
	return fmt.Sprintf("%019d", inverted)
}

// extractIDFromTimeKey pulls the entity ID out of a time index key of
// the form {prefix}{inverted_ts}:{id}.
func extractIDFromTimeKey(key, prefix string) string {
	remainder := strings.TrimPrefix(key, prefix)
	idx := strings.Index(remainder, ":")
	if idx < 0 || idx+1 >= len(remainder) {
		return ""
	}
	return remainder[idx+1:]
}
