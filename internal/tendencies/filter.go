package tendencies

import "github.com/gridironlabs/tendency-engine/internal/feed"

// Axis selects which team identity a team filter (or an all-teams grouping)
// keys on: the offense running the play or the defense facing it.
type Axis string

const (
	AxisOffense Axis = "offense"
	AxisDefense Axis = "defense"
)

// Range is an inclusive [Min, Max] bound.
type Range struct {
	Min int
	Max int
}

// Filters is one situational view of the feed. Zero-valued criteria impose no
// constraint: an empty Team matches every team, empty slices skip their test,
// and nil ranges are unbounded. All present criteria AND together.
type Filters struct {
	Team string
	Axis Axis // defaults to AxisOffense when unset

	Weeks         []string
	Quarters      []int
	TimeRange     *Range // minutes remaining in quarter
	Downs         []int
	DistanceRange *Range // yards to go
	YardlineRange *Range // yards to goal line
}

// Apply returns the plays matching f, in input order. The input slice is
// never modified.
func Apply(plays []feed.Play, f Filters) []feed.Play {
	out := make([]feed.Play, 0, len(plays))
	for _, p := range plays {
		if f.Team != "" && teamOf(p, f.Axis) != f.Team {
			continue
		}
		if !matchSituation(p, f) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchSituation checks every criterion except the team identity; the league
// ranking tables reuse it to apply "all filters except team".
func matchSituation(p feed.Play, f Filters) bool {
	if len(f.Weeks) > 0 && !containsString(f.Weeks, p.Week) {
		return false
	}
	if len(f.Quarters) > 0 && !containsInt(f.Quarters, p.Quarter) {
		return false
	}
	if f.TimeRange != nil && (p.MinutesRemaining < f.TimeRange.Min || p.MinutesRemaining > f.TimeRange.Max) {
		return false
	}
	if len(f.Downs) > 0 && !containsInt(f.Downs, p.Down) {
		return false
	}
	if f.DistanceRange != nil && (p.Distance < f.DistanceRange.Min || p.Distance > f.DistanceRange.Max) {
		return false
	}
	if f.YardlineRange != nil && (p.YardsToGoal < f.YardlineRange.Min || p.YardsToGoal > f.YardlineRange.Max) {
		return false
	}
	return true
}

func teamOf(p feed.Play, axis Axis) string {
	if axis == AxisDefense {
		return p.DefTeam
	}
	return p.OffTeam
}

func containsString(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}

func containsInt(xs []int, want int) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}
