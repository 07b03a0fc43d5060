package analysis

import "fmt"

// Tier buckets a 0-100 recommendation score into a start/sit call.
// Cut points are inclusive lower bounds: 75 and above is a must-start,
// 45 and above is flex territory, anything below is a sit.
type Tier int

const (
	TierSit Tier = iota
	TierFlex
	TierMustStart
)

const (
	mustStartCut = 75.0
	flexCut      = 45.0
)

// ClassifyScore maps a recommendation score onto its tier.
func ClassifyScore(score float64) Tier {
	switch {
	case score >= mustStartCut:
		return TierMustStart
	case score >= flexCut:
		return TierFlex
	default:
		return TierSit
	}
}

func (t Tier) String() string {
	switch t {
	case TierMustStart:
		return "must-start"
	case TierFlex:
		return "flex"
	default:
		return "sit"
	}
}

// Conclusion returns the linguistic recommendation the API ships in
// reco_conclusion for this tier.
func (t Tier) Conclusion() string {
	switch t {
	case TierMustStart:
		return "🔥 MUST START"
	case TierFlex:
		return "🟢 FLEX / HIGH POTENTIAL START"
	default:
		return "🔴 SIT / LOW FLEX"
	}
}

// FormatScoreOutOf100 renders a score the way the detail card shows it.
func FormatScoreOutOf100(score float64) string {
	return fmt.Sprintf("%.2f/100", score)
}

// FormatScorePercent renders a score the way the comparison cards show it.
// The two views intentionally use different suffixes; keep them distinct.
func FormatScorePercent(score float64) string {
	return fmt.Sprintf("%.2f%%", score)
}
