package tendencies

import (
	"reflect"
	"testing"

	"github.com/gridironlabs/tendency-engine/internal/feed"
)

func TestSortWeeks(t *testing.T) {
	in := []string{"SB", "2", "WC", "10", "1", "CC", "DP"}
	want := []string{"1", "2", "10", "WC", "DP", "CC", "SB"}
	if got := SortWeeks(in); !reflect.DeepEqual(got, want) {
		t.Errorf("SortWeeks(%v) = %v, want %v", in, got, want)
	}
}

func TestSortWeeksNumericNotLexicographic(t *testing.T) {
	got := SortWeeks([]string{"10", "9", "2"})
	want := []string{"2", "9", "10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortWeeks = %v, want %v", got, want)
	}
}

func TestSortWeeksUnknownLabelsLast(t *testing.T) {
	got := SortWeeks([]string{"PRE1", "1", "WC"})
	want := []string{"1", "WC", "PRE1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortWeeks = %v, want %v", got, want)
	}
}

func TestDistinctHelpers(t *testing.T) {
	plays := []feed.Play{
		{OffTeam: "PHI", DefTeam: "DAL", Week: "2", Quarter: 1, Down: 3},
		{OffTeam: "DAL", DefTeam: "PHI", Week: "1", Quarter: 4, Down: 1},
		{OffTeam: "PHI", DefTeam: "DAL", Week: "2", Quarter: 1, Down: 3},
	}

	if got := Weeks(plays); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("Weeks = %v", got)
	}
	if got := Teams(plays, AxisOffense); !reflect.DeepEqual(got, []string{"DAL", "PHI"}) {
		t.Errorf("Teams(offense) = %v", got)
	}
	if got := Quarters(plays); !reflect.DeepEqual(got, []int{1, 4}) {
		t.Errorf("Quarters = %v", got)
	}
	if got := Downs(plays); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Downs = %v", got)
	}
}
