package analysis

import (
	"sort"
	"strconv"

	"github.com/gridironhq/startsit/internal/model"
)

// OutcomeKind classifies a successful analysis response by cardinality.
// The API sends a bare array with no discriminator; length is the only
// signal for which rendering path runs.
type OutcomeKind int

const (
	OutcomeEmpty  OutcomeKind = iota // no records: show a "no data" notice
	OutcomeSingle                    // one record: full detail card
	OutcomeMany                      // several records: sorted comparison list
)

// ClassifyOutcome picks the rendering path for a decoded response.
func ClassifyOutcome(records []model.PlayerRecord) OutcomeKind {
	switch len(records) {
	case 0:
		return OutcomeEmpty
	case 1:
		return OutcomeSingle
	default:
		return OutcomeMany
	}
}

// SortByScore orders records by descending reco_score, in place.
// Ties have no secondary key; their relative order is unspecified.
func SortByScore(records []model.PlayerRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].RecoScore > records[j].RecoScore
	})
}

// ListHeaderWeek returns the week label for the comparison list header,
// taken from the first record's echoed input week. Zero means the server
// didn't echo one; fall back to a placeholder.
func ListHeaderWeek(records []model.PlayerRecord) string {
	if len(records) == 0 || records[0].InputWeek == 0 {
		return "?"
	}
	return strconv.Itoa(records[0].InputWeek)
}
