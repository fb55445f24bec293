package tendencies

import (
	"testing"

	"github.com/gridironlabs/tendency-engine/internal/feed"
)

func TestRankTies(t *testing.T) {
	values := []float64{50.0, 30.0, 50.0}
	if got := Rank(50.0, values); got != "t-1" {
		t.Errorf("Rank(50) = %q, want t-1", got)
	}
	if got := Rank(30.0, values); got != "3" {
		t.Errorf("Rank(30) = %q, want 3", got)
	}
}

func TestRankAbsentValue(t *testing.T) {
	if got := Rank(42.0, []float64{50.0, 30.0}); got != RankAbsent {
		t.Errorf("Rank(absent) = %q, want %q", got, RankAbsent)
	}
	if got := Rank(42.0, nil); got != RankAbsent {
		t.Errorf("Rank over empty table = %q, want %q", got, RankAbsent)
	}
}

func TestRankDescending(t *testing.T) {
	values := []float64{10.0, 70.0, 40.0}
	if got := Rank(70.0, values); got != "1" {
		t.Errorf("Rank(70) = %q, want 1 (highest value ranks first)", got)
	}
	if got := Rank(10.0, values); got != "3" {
		t.Errorf("Rank(10) = %q, want 3", got)
	}
}

func teamPlays(off, def string, n, runs int) []feed.Play {
	var out []feed.Play
	for i := 0; i < n; i++ {
		p := feed.Play{OffTeam: off, DefTeam: def, RunPass: "P"}
		if i < runs {
			p.RunPass = "R"
			p.IsRun = 1
		}
		out = append(out, p)
	}
	return out
}

func TestAllTeamsOffense(t *testing.T) {
	var plays []feed.Play
	plays = append(plays, teamPlays("PHI", "DAL", 10, 6)...)
	plays = append(plays, teamPlays("DAL", "PHI", 10, 4)...)

	rows := AllTeamsOffense(plays, Filters{Team: "PHI"}) // team filter must be ignored
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Canonical order: team code ascending.
	if rows[0].Team != "DAL" || rows[1].Team != "PHI" {
		t.Fatalf("row order: %+v", rows)
	}
	if rows[1].RunPct != 60.0 || rows[0].RunPct != 40.0 {
		t.Errorf("run rates: DAL=%v PHI=%v", rows[0].RunPct, rows[1].RunPct)
	}
}

func TestAllTeamsOffenseAppliesSituationalFilters(t *testing.T) {
	plays := []feed.Play{
		{OffTeam: "PHI", Week: "1", RunPass: "R", IsRun: 1},
		{OffTeam: "PHI", Week: "2", RunPass: "P"},
		{OffTeam: "DAL", Week: "2", RunPass: "P"},
	}
	rows := AllTeamsOffense(plays, Filters{Weeks: []string{"1"}})
	if len(rows) != 1 || rows[0].Team != "PHI" || rows[0].TotalPlays != 1 {
		t.Fatalf("situational filter not applied: %+v", rows)
	}
}

func TestAllTeamsDefenseExcludesPassless(t *testing.T) {
	var plays []feed.Play
	plays = append(plays, teamPlays("PHI", "DAL", 10, 4)...)
	// NYG's defense only faced runs; it must not appear or rank.
	plays = append(plays, teamPlays("WAS", "NYG", 5, 5)...)

	rows := AllTeamsDefense(plays, Filters{})
	if len(rows) != 1 || rows[0].Team != "DAL" {
		t.Fatalf("passless defense must be excluded: %+v", rows)
	}
}

func TestRankRoundTrip(t *testing.T) {
	var plays []feed.Play
	plays = append(plays, teamPlays("PHI", "DAL", 10, 5)...)
	plays = append(plays, teamPlays("DAL", "PHI", 10, 5)...)
	plays = append(plays, teamPlays("NYG", "WAS", 10, 3)...)

	rows := AllTeamsOffense(plays, Filters{})
	for _, r := range rows {
		want := "t-1"
		if r.Team == "NYG" {
			want = "3"
		}
		if got := RankOffense(r.RunPct, "run_pct", rows); got != want {
			t.Errorf("%s: RankOffense(%v) = %q, want %q", r.Team, r.RunPct, got, want)
		}
	}
}

func TestRankOffenseUnknownMetric(t *testing.T) {
	rows := []OffenseTeamRow{{Team: "PHI", RunPct: 50}}
	if got := RankOffense(50, "yolo_pct", rows); got != RankAbsent {
		t.Errorf("unknown metric = %q, want %q", got, RankAbsent)
	}
}

func TestRankDefenseMetrics(t *testing.T) {
	rows := []DefenseTeamRow{
		{Team: "DAL", BlitzPct: 30, ManPct: 20, MOFOPct: 55, DisguisePct: 10},
		{Team: "PHI", BlitzPct: 40, ManPct: 20, MOFOPct: 45, DisguisePct: 25},
	}
	if got := RankDefense(40, "blitz_pct", rows); got != "1" {
		t.Errorf("blitz rank = %q, want 1", got)
	}
	if got := RankDefense(20, "man_pct", rows); got != "t-1" {
		t.Errorf("man rank = %q, want t-1", got)
	}
	if got := RankDefense(10, "disguise_pct", rows); got != "2" {
		t.Errorf("disguise rank = %q, want 2", got)
	}
}
