package analysis

import "testing"

func TestClassifyScore_TierCuts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score float64
		want  Tier
	}{
		{100, TierMustStart},
		{98.75, TierMustStart},
		{75, TierMustStart}, // inclusive lower bound
		{74.99, TierFlex},
		{50, TierFlex},
		{45, TierFlex}, // inclusive lower bound
		{44.99, TierSit},
		{10, TierSit},
		{0, TierSit},
	}

	for _, tc := range cases {
		if got := ClassifyScore(tc.score); got != tc.want {
			t.Errorf("ClassifyScore(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestTierConclusion(t *testing.T) {
	t.Parallel()

	if got := TierMustStart.Conclusion(); got != "🔥 MUST START" {
		t.Errorf("must-start conclusion = %q", got)
	}
	if got := TierFlex.Conclusion(); got != "🟢 FLEX / HIGH POTENTIAL START" {
		t.Errorf("flex conclusion = %q", got)
	}
	if got := TierSit.Conclusion(); got != "🔴 SIT / LOW FLEX" {
		t.Errorf("sit conclusion = %q", got)
	}
}

func TestFormatScore_TwoConventions(t *testing.T) {
	t.Parallel()

	// The detail card and the comparison cards deliberately use
	// different suffixes.
	if got := FormatScoreOutOf100(98.752); got != "98.75/100" {
		t.Errorf("FormatScoreOutOf100 = %q, want 98.75/100", got)
	}
	if got := FormatScorePercent(98.752); got != "98.75%" {
		t.Errorf("FormatScorePercent = %q, want 98.75%%", got)
	}
	if got := FormatScoreOutOf100(7); got != "7.00/100" {
		t.Errorf("FormatScoreOutOf100(7) = %q, want 7.00/100", got)
	}
}
