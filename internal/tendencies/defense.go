package tendencies

import (
	"sort"
	"strings"

	"github.com/gridironlabs/tendency-engine/internal/feed"
)

// DefenseSummary is the overall defensive scorecard for one play subset.
// Every rate is denominated by pass plays in the subset, except DisguisePct,
// which only counts pass plays carrying both MOFO codes.
type DefenseSummary struct {
	TotalPlays   int
	BlitzPct     float64
	ManPct       float64
	MOFOPct      float64
	DisguisePct  float64
	TopCoverages []string
}

// DefenseCategoryRow is one line of a defensive category breakdown. UsagePct
// is against all plays in the input set; the rate columns are against this
// category's pass plays.
type DefenseCategoryRow struct {
	Category     string
	Plays        int
	UsagePct     float64
	BlitzPct     float64
	ManPct       float64
	MOFOPct      float64
	DisguisePct  float64
	TopCoverages string
}

// DefenseOverall computes the overall defensive tendencies of a play subset.
// A subset with no pass plays yields zero rates, which is an expected state
// (e.g. goal-line filters), not an error.
func DefenseOverall(plays []feed.Play) DefenseSummary {
	passPlays := passOnly(plays)
	if len(passPlays) == 0 {
		return DefenseSummary{TotalPlays: len(plays), TopCoverages: []string{}}
	}
	blitz, man, mofo, disguise := passRates(passPlays)
	return DefenseSummary{
		TotalPlays:   len(plays),
		BlitzPct:     blitz,
		ManPct:       man,
		MOFOPct:      mofo,
		DisguisePct:  disguise,
		TopCoverages: topCoverages(passPlays),
	}
}

// DefenseByCategory breaks defensive tendencies down by one category,
// usually the defensive package. Sorted by usage descending, category
// ascending on ties.
func DefenseByCategory(plays []feed.Play, category CategoryFunc) []DefenseCategoryRow {
	total := len(plays)
	if total == 0 {
		return nil
	}

	groups := groupBy(plays, category)
	rows := make([]DefenseCategoryRow, 0, len(groups))
	for key, group := range groups {
		row := DefenseCategoryRow{
			Category: key,
			Plays:    len(group),
			UsagePct: pct(len(group), total),
		}
		if passPlays := passOnly(group); len(passPlays) > 0 {
			row.BlitzPct, row.ManPct, row.MOFOPct, row.DisguisePct = passRates(passPlays)
			row.TopCoverages = strings.Join(topCoverages(passPlays), "\n")
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].UsagePct != rows[j].UsagePct {
			return rows[i].UsagePct > rows[j].UsagePct
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

func passOnly(plays []feed.Play) []feed.Play {
	out := make([]feed.Play, 0, len(plays))
	for _, p := range plays {
		if p.RunPass == "P" {
			out = append(out, p)
		}
	}
	return out
}

// passRates computes the blitz/man/MOFO/disguise percentages over a set of
// pass plays. Disguise uses its own denominator: pass plays where both the
// shown and played MOFO codes exist. Plays without MOFO data are excluded
// from that rate, not counted as non-disguises.
func passRates(passPlays []feed.Play) (blitz, man, mofo, disguise float64) {
	var nBlitz, nMan, nMOFO, nDisguise, nMOFOData int
	for _, p := range passPlays {
		nBlitz += p.IsBlitz
		nMan += p.IsManCoverage
		nMOFO += p.IsMOFO
		nDisguise += p.IsDisguise
		nMOFOData += p.HasMOFOData
	}
	n := len(passPlays)
	return pct(nBlitz, n), pct(nMan, n), pct(nMOFO, n), pct(nDisguise, nMOFOData)
}

// topCoverages lists the up-to-3 most played normalized coverages among the
// pass plays, percentages against all pass plays in scope.
func topCoverages(passPlays []feed.Play) []string {
	counts := make(map[string]int)
	for _, p := range passPlays {
		if p.CoverageNorm != "" {
			counts[p.CoverageNorm]++
		}
	}
	return topCounts(counts, len(passPlays))
}
