package tendencies

import (
	"fmt"
	"sort"

	"github.com/gridironlabs/tendency-engine/internal/feed"
)

// RankAbsent is returned when the probed value doesn't appear in the
// comparison table (team missing, or a value recomputed through a different
// rounding path).
const RankAbsent = "-"

// OffenseTeamRow is one team's overall offensive line in the league table.
type OffenseTeamRow struct {
	Team       string
	TotalPlays int
	RunPct     float64
	PAPct      float64
	DBPct      float64
	MotionPct  float64
}

// DefenseTeamRow is one team's overall defensive line in the league table.
type DefenseTeamRow struct {
	Team        string
	TotalPlays  int
	BlitzPct    float64
	ManPct      float64
	MOFOPct     float64
	DisguisePct float64
}

// AllTeamsOffense computes every team's overall offensive metrics under the
// situational filters in f; the team criterion is deliberately ignored so a
// selected team can be ranked against the whole league. Teams with no
// qualifying plays don't get a row. Rows are ordered by team code so ranking
// input is canonical regardless of how the grouping ran.
func AllTeamsOffense(plays []feed.Play, f Filters) []OffenseTeamRow {
	groups := make(map[string][]feed.Play)
	for _, p := range plays {
		if !matchSituation(p, f) {
			continue
		}
		groups[p.OffTeam] = append(groups[p.OffTeam], p)
	}

	rows := make([]OffenseTeamRow, 0, len(groups))
	for team, teamPlays := range groups {
		s := OffenseOverall(teamPlays)
		rows = append(rows, OffenseTeamRow{
			Team:       team,
			TotalPlays: s.TotalPlays,
			RunPct:     s.RunPct,
			PAPct:      s.PAPct,
			DBPct:      s.DBPct,
			MotionPct:  s.MotionPct,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })
	return rows
}

// AllTeamsDefense is AllTeamsOffense for the defensive side, grouping by the
// defense team code. Teams that faced no pass plays under the filters are
// excluded; their rates would be meaningless and they must not occupy a rank.
func AllTeamsDefense(plays []feed.Play, f Filters) []DefenseTeamRow {
	groups := make(map[string][]feed.Play)
	for _, p := range plays {
		if !matchSituation(p, f) {
			continue
		}
		groups[p.DefTeam] = append(groups[p.DefTeam], p)
	}

	rows := make([]DefenseTeamRow, 0, len(groups))
	for team, teamPlays := range groups {
		if len(passOnly(teamPlays)) == 0 {
			continue
		}
		s := DefenseOverall(teamPlays)
		rows = append(rows, DefenseTeamRow{
			Team:        team,
			TotalPlays:  s.TotalPlays,
			BlitzPct:    s.BlitzPct,
			ManPct:      s.ManPct,
			MOFOPct:     s.MOFOPct,
			DisguisePct: s.DisguisePct,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })
	return rows
}

// Rank places value in the descending-sorted values: "1" is the league high.
// A value shared by more than one team ranks at its first position with a
// "t-" prefix. The match is exact float64 equality on purpose; callers must
// probe with the same value the table stores, not a recomputed one. An
// absent value yields RankAbsent.
func Rank(value float64, values []float64) string {
	sorted := append([]float64(nil), values...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	pos := -1
	ties := 0
	for i, v := range sorted {
		if v == value {
			if pos < 0 {
				pos = i
			}
			ties++
		}
	}
	if pos < 0 {
		return RankAbsent
	}
	if ties > 1 {
		return fmt.Sprintf("t-%d", pos+1)
	}
	return fmt.Sprintf("%d", pos+1)
}

// RankOffense ranks value within a named metric column of the offensive
// league table. Metric names: run_pct, pa_pct, db_pct, motion_pct.
func RankOffense(value float64, metric string, rows []OffenseTeamRow) string {
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		switch metric {
		case "run_pct":
			values = append(values, r.RunPct)
		case "pa_pct":
			values = append(values, r.PAPct)
		case "db_pct":
			values = append(values, r.DBPct)
		case "motion_pct":
			values = append(values, r.MotionPct)
		default:
			return RankAbsent
		}
	}
	return Rank(value, values)
}

// RankDefense ranks value within a named metric column of the defensive
// league table. Metric names: blitz_pct, man_pct, mofo_pct, disguise_pct.
func RankDefense(value float64, metric string, rows []DefenseTeamRow) string {
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		switch metric {
		case "blitz_pct":
			values = append(values, r.BlitzPct)
		case "man_pct":
			values = append(values, r.ManPct)
		case "mofo_pct":
			values = append(values, r.MOFOPct)
		case "disguise_pct":
			values = append(values, r.DisguisePct)
		default:
			return RankAbsent
		}
	}
	return Rank(value, values)
}
