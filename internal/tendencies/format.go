package tendencies

import (
	"fmt"
	"math"
	"strings"
)

// FormatPctWithRank renders a percentage plus its league rank for a
// scorecard, e.g. "45.2% (12th)" or "33.3% (t-4th)". A RankAbsent rank drops
// the parenthetical; a NaN value renders as "-".
func FormatPctWithRank(value float64, rank string) string {
	if math.IsNaN(value) {
		return "-"
	}
	if rank == RankAbsent {
		return fmt.Sprintf("%.1f%%", value)
	}
	if strings.HasPrefix(rank, "t-") {
		return fmt.Sprintf("%.1f%% (t-%sth)", value, strings.TrimPrefix(rank, "t-"))
	}
	return fmt.Sprintf("%.1f%% (%s%s)", value, rank, ordinalSuffix(rank))
}

func ordinalSuffix(rank string) string {
	switch {
	case strings.HasSuffix(rank, "1") && rank != "11":
		return "st"
	case strings.HasSuffix(rank, "2") && rank != "12":
		return "nd"
	case strings.HasSuffix(rank, "3") && rank != "13":
		return "rd"
	default:
		return "th"
	}
}
