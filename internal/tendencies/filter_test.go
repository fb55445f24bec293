package tendencies

import (
	"reflect"
	"testing"

	"github.com/gridironlabs/tendency-engine/internal/feed"
)

func TestApplyWeekFilterPreservesOrder(t *testing.T) {
	plays := []feed.Play{
		{OffTeam: "PHI", Week: "1", Down: 1},
		{OffTeam: "PHI", Week: "3", Down: 2},
		{OffTeam: "PHI", Week: "2", Down: 3},
		{OffTeam: "PHI", Week: "1", Down: 4},
	}
	got := Apply(plays, Filters{Weeks: []string{"1", "2"}})

	var downs []int
	for _, p := range got {
		if p.Week != "1" && p.Week != "2" {
			t.Errorf("week %q slipped through the filter", p.Week)
		}
		downs = append(downs, p.Down)
	}
	if !reflect.DeepEqual(downs, []int{1, 3, 4}) {
		t.Errorf("order not preserved: %v", downs)
	}
}

func TestApplyTeamAxis(t *testing.T) {
	plays := []feed.Play{
		{OffTeam: "PHI", DefTeam: "DAL"},
		{OffTeam: "DAL", DefTeam: "PHI"},
	}

	off := Apply(plays, Filters{Team: "PHI"})
	if len(off) != 1 || off[0].OffTeam != "PHI" {
		t.Fatalf("offense axis: got %+v", off)
	}

	def := Apply(plays, Filters{Team: "PHI", Axis: AxisDefense})
	if len(def) != 1 || def[0].DefTeam != "PHI" {
		t.Fatalf("defense axis: got %+v", def)
	}
}

func TestApplyCombinedCriteria(t *testing.T) {
	plays := []feed.Play{
		{OffTeam: "PHI", Week: "1", Quarter: 4, MinutesRemaining: 2, Down: 3, Distance: 8, YardsToGoal: 45},
		{OffTeam: "PHI", Week: "1", Quarter: 4, MinutesRemaining: 9, Down: 3, Distance: 8, YardsToGoal: 45}, // time out of range
		{OffTeam: "PHI", Week: "1", Quarter: 4, MinutesRemaining: 2, Down: 1, Distance: 8, YardsToGoal: 45}, // wrong down
		{OffTeam: "DAL", Week: "1", Quarter: 4, MinutesRemaining: 2, Down: 3, Distance: 8, YardsToGoal: 45}, // wrong team
		{OffTeam: "PHI", Week: "1", Quarter: 4, MinutesRemaining: 2, Down: 3, Distance: 12, YardsToGoal: 45}, // distance out
		{OffTeam: "PHI", Week: "1", Quarter: 4, MinutesRemaining: 2, Down: 3, Distance: 8, YardsToGoal: 15},  // yardline out
	}
	f := Filters{
		Team:          "PHI",
		Weeks:         []string{"1"},
		Quarters:      []int{4},
		TimeRange:     &Range{Min: 0, Max: 5},
		Downs:         []int{3},
		DistanceRange: &Range{Min: 5, Max: 10},
		YardlineRange: &Range{Min: 20, Max: 100},
	}
	got := Apply(plays, f)
	if len(got) != 1 {
		t.Fatalf("Apply returned %d plays, want 1", len(got))
	}
}

func TestApplyRangeBoundsInclusive(t *testing.T) {
	plays := []feed.Play{
		{Distance: 5}, {Distance: 10}, {Distance: 4}, {Distance: 11},
	}
	got := Apply(plays, Filters{DistanceRange: &Range{Min: 5, Max: 10}})
	if len(got) != 2 {
		t.Fatalf("inclusive bounds: got %d plays, want 2", len(got))
	}
}

func TestApplyEmptyFiltersKeepEverything(t *testing.T) {
	plays := []feed.Play{{OffTeam: "PHI"}, {OffTeam: "DAL"}}
	if got := Apply(plays, Filters{}); len(got) != 2 {
		t.Fatalf("empty filters dropped plays: %d of 2", len(got))
	}
}
