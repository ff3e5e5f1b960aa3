// Package ledger keeps the top scores across sessions. The ledger is read
// from and written to a pluggable Store; FileStore keeps it as a JSON file.
package ledger

import (
	"sort"
	"time"
)

// DateLayout is the calendar date format of Entry.Date.
const DateLayout = "2006-01-02"

// Entry is one leaderboard row. The JSON keys match existing score files.
type Entry struct {
	Name  string `json:"nama"`
	Score int    `json:"skor"`
	Date  string `json:"tanggal"`
}

// Day parses Date. The zero time is returned for malformed dates.
func (e Entry) Day() time.Time {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// sortEntries orders by score descending, keeping insertion order on ties.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
