package tendencies

import (
	"sort"
	"strconv"

	"github.com/gridironlabs/tendency-engine/internal/feed"
)

// Playoff rounds in schedule order, after the numeric weeks.
var playoffOrder = []string{"WC", "DP", "CC", "SB"}

// SortWeeks orders week labels for display: numeric weeks ascending, then the
// playoff rounds WC, DP, CC, SB. Labels that are neither stay at the end in
// their incoming order.
func SortWeeks(weeks []string) []string {
	var numeric []int
	var playoffs []string
	var other []string
	for _, w := range weeks {
		if n, err := strconv.Atoi(w); err == nil {
			numeric = append(numeric, n)
		} else if containsString(playoffOrder, w) {
			playoffs = append(playoffs, w)
		} else {
			other = append(other, w)
		}
	}
	sort.Ints(numeric)

	out := make([]string, 0, len(weeks))
	for _, n := range numeric {
		out = append(out, strconv.Itoa(n))
	}
	for _, round := range playoffOrder {
		if containsString(playoffs, round) {
			out = append(out, round)
		}
	}
	return append(out, other...)
}

// Weeks lists the distinct week labels present in the plays, in display
// order.
func Weeks(plays []feed.Play) []string {
	return SortWeeks(distinctStrings(plays, func(p feed.Play) string { return p.Week }))
}

// Teams lists the distinct team codes on the given axis, sorted.
func Teams(plays []feed.Play, axis Axis) []string {
	teams := distinctStrings(plays, func(p feed.Play) string { return teamOf(p, axis) })
	sort.Strings(teams)
	return teams
}

// Quarters lists the distinct quarters present, ascending.
func Quarters(plays []feed.Play) []int {
	return distinctInts(plays, func(p feed.Play) int { return p.Quarter })
}

// Downs lists the distinct downs present, ascending.
func Downs(plays []feed.Play) []int {
	return distinctInts(plays, func(p feed.Play) int { return p.Down })
}

func distinctStrings(plays []feed.Play, get func(feed.Play) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range plays {
		v := get(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func distinctInts(plays []feed.Play, get func(feed.Play) int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, p := range plays {
		v := get(p)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
