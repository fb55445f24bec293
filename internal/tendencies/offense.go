package tendencies

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gridironlabs/tendency-engine/internal/feed"
)

// CategoryFunc extracts a grouping key from a play. ok=false marks the play
// as having no value for the category; such plays are left out of the
// category table entirely (they still count toward the usage denominator).
type CategoryFunc func(feed.Play) (key string, ok bool)

// ByPersonnel groups by offensive personnel package (11, 12, 21, ...).
func ByPersonnel(p feed.Play) (string, bool) {
	return p.PersonnelGroup, p.PersonnelGroup != ""
}

// ByFormation groups by the normalized formation group (3x1, 2x2, ...).
func ByFormation(p feed.Play) (string, bool) {
	return p.FormationGroupNorm, p.FormationGroupNorm != ""
}

// ByQBAlignment splits plays into shotgun vs under-center looks.
func ByQBAlignment(p feed.Play) (string, bool) {
	if p.Shotgun == "S" {
		return "Shotgun", true
	}
	return "Under Center", true
}

// ByDefPackage groups by defensive personnel package.
func ByDefPackage(p feed.Play) (string, bool) {
	return p.DefPackage, p.DefPackage != ""
}

// OffenseSummary is the overall offensive scorecard for one play subset.
type OffenseSummary struct {
	TotalPlays     int
	RunPct         float64
	PAPct          float64
	DBPct          float64
	MotionPct      float64
	TopRunConcepts []string
}

// OffenseCategoryRow is one line of a category breakdown table. Rate columns
// are denominated by this category's play count; UsagePct by the whole input
// set. TopRunConcepts is newline-joined for the display layer to split.
type OffenseCategoryRow struct {
	Category       string
	Plays          int
	UsagePct       float64
	RunPct         float64
	PAPct          float64
	DBPct          float64
	MotionPct      float64
	TopRunConcepts string
}

// OffenseOverall computes the overall offensive tendencies of a (typically
// team- and situation-filtered) play set. An empty set is a valid input and
// yields an all-zero summary.
func OffenseOverall(plays []feed.Play) OffenseSummary {
	total := len(plays)
	if total == 0 {
		return OffenseSummary{TopRunConcepts: []string{}}
	}

	var runs, pa, db, motion int
	for _, p := range plays {
		runs += p.IsRun
		pa += p.IsPlayAction
		db += p.IsStandardDropback
		motion += p.HasMotion
	}
	return OffenseSummary{
		TotalPlays:     total,
		RunPct:         pct(runs, total),
		PAPct:          pct(pa, total),
		DBPct:          pct(db, total),
		MotionPct:      pct(motion, total),
		TopRunConcepts: topRunConcepts(plays),
	}
}

// OffenseByCategory breaks the offensive tendencies down by one category.
// Rows come back sorted by usage descending; equal usage sorts by category
// value so the table order is deterministic.
func OffenseByCategory(plays []feed.Play, category CategoryFunc) []OffenseCategoryRow {
	total := len(plays)
	if total == 0 {
		return nil
	}

	groups := groupBy(plays, category)
	rows := make([]OffenseCategoryRow, 0, len(groups))
	for key, group := range groups {
		n := len(group)
		var runs, pa, db, motion int
		for _, p := range group {
			runs += p.IsRun
			pa += p.IsPlayAction
			db += p.IsStandardDropback
			motion += p.HasMotion
		}
		rows = append(rows, OffenseCategoryRow{
			Category:       key,
			Plays:          n,
			UsagePct:       pct(n, total),
			RunPct:         pct(runs, n),
			PAPct:          pct(pa, n),
			DBPct:          pct(db, n),
			MotionPct:      pct(motion, n),
			TopRunConcepts: strings.Join(topRunConcepts(group), "\n"),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].UsagePct != rows[j].UsagePct {
			return rows[i].UsagePct > rows[j].UsagePct
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// topRunConcepts lists the up-to-3 most common run concepts among the run
// plays of the set, each as "NAME (p.p%)" with the percentage against run
// plays, not total plays.
func topRunConcepts(plays []feed.Play) []string {
	var runPlays int
	counts := make(map[string]int)
	for _, p := range plays {
		if p.IsRun != 1 {
			continue
		}
		runPlays++
		if p.RunConcept != "" {
			counts[p.RunConcept]++
		}
	}
	return topCounts(counts, runPlays)
}

// topCounts renders the top 3 labels of a frequency map against denom,
// ordered by count descending then label ascending.
func topCounts(counts map[string]int, denom int) []string {
	if denom == 0 || len(counts) == 0 {
		return []string{}
	}
	type kv struct {
		label string
		n     int
	}
	ranked := make([]kv, 0, len(counts))
	for label, n := range counts {
		ranked = append(ranked, kv{label, n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].n != ranked[j].n {
			return ranked[i].n > ranked[j].n
		}
		return ranked[i].label < ranked[j].label
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	out := make([]string, 0, len(ranked))
	for _, e := range ranked {
		out = append(out, fmt.Sprintf("%s (%.1f%%)", e.label, pct(e.n, denom)))
	}
	return out
}

func groupBy(plays []feed.Play, category CategoryFunc) map[string][]feed.Play {
	groups := make(map[string][]feed.Play)
	for _, p := range plays {
		key, ok := category(p)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], p)
	}
	return groups
}

func pct(n, denom int) float64 {
	if denom == 0 {
		return 0
	}
	return float64(n) / float64(denom) * 100
}
