package analysis

import (
	"testing"

	"github.com/gridironhq/startsit/internal/model"
)

func recordsWithScores(scores ...float64) []model.PlayerRecord {
	records := make([]model.PlayerRecord, 0, len(scores))
	for _, s := range scores {
		records = append(records, model.PlayerRecord{RecoScore: s})
	}
	return records
}

func TestClassifyOutcome(t *testing.T) {
	t.Parallel()

	if got := ClassifyOutcome(nil); got != OutcomeEmpty {
		t.Errorf("ClassifyOutcome(nil) = %v, want OutcomeEmpty", got)
	}
	if got := ClassifyOutcome(recordsWithScores(50)); got != OutcomeSingle {
		t.Errorf("ClassifyOutcome(1 record) = %v, want OutcomeSingle", got)
	}
	if got := ClassifyOutcome(recordsWithScores(50, 60)); got != OutcomeMany {
		t.Errorf("ClassifyOutcome(2 records) = %v, want OutcomeMany", got)
	}
}

func TestSortByScore_Descending(t *testing.T) {
	t.Parallel()

	records := recordsWithScores(10, 90, 50)
	SortByScore(records)

	want := []float64{90, 50, 10}
	for i, w := range want {
		if records[i].RecoScore != w {
			t.Errorf("records[%d].RecoScore = %v, want %v", i, records[i].RecoScore, w)
		}
	}
}

func TestListHeaderWeek(t *testing.T) {
	t.Parallel()

	records := []model.PlayerRecord{{InputWeek: 12}}
	if got := ListHeaderWeek(records); got != "12" {
		t.Errorf("ListHeaderWeek = %q, want 12", got)
	}

	// Missing echoed week falls back to the placeholder.
	if got := ListHeaderWeek([]model.PlayerRecord{{}}); got != "?" {
		t.Errorf("ListHeaderWeek without week = %q, want ?", got)
	}
	if got := ListHeaderWeek(nil); got != "?" {
		t.Errorf("ListHeaderWeek(nil) = %q, want ?", got)
	}
}
