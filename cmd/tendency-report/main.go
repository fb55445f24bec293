package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gridironlabs/tendency-engine/internal/feed"
	"github.com/gridironlabs/tendency-engine/internal/teamnames"
	"github.com/gridironlabs/tendency-engine/internal/tendencies"
)

func main() {
	feedPath := flag.String("feed", "", "path to the play feed CSV (required)")
	team := flag.String("team", "", "team code to report on (required)")
	side := flag.String("side", "both", "offense | defense | both")
	weeks := flag.String("weeks", "", "comma-separated week labels, e.g. 1,2,WC")
	quarters := flag.String("quarters", "", "comma-separated quarters, e.g. 1,2")
	downs := flag.String("downs", "", "comma-separated downs, e.g. 1,2,3")
	timeRange := flag.String("time", "", "minutes-remaining range, e.g. 0-15")
	distance := flag.String("distance", "", "yards-to-go range, e.g. 1-10")
	yardline := flag.String("yardline", "", "yards-to-goal-line range, e.g. 1-100")
	vsPersonnel := flag.String("vs-personnel", "", "restrict the defensive report to one offensive personnel group")
	names := flag.Bool("names", false, "resolve team display names from pro-football-reference")
	flag.Parse()

	if *feedPath == "" || *team == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	raw, err := feed.Load(*feedPath)
	if err != nil {
		slog.Error("load feed", "err", err)
		os.Exit(1)
	}
	plays := feed.Derive(feed.Clean(raw))
	slog.Info("feed loaded", "raw", len(raw), "plays", len(plays))

	f := tendencies.Filters{
		Team:          *team,
		Weeks:         splitList(*weeks),
		Quarters:      splitInts(*quarters),
		Downs:         splitInts(*downs),
		TimeRange:     parseRange(*timeRange),
		DistanceRange: parseRange(*distance),
		YardlineRange: parseRange(*yardline),
	}

	displayName := *team
	if *names {
		if m, err := teamnames.Fetch(ctx); err != nil {
			slog.Warn("team names unavailable", "err", err)
		} else if n, ok := m[*team]; ok {
			displayName = n
		}
	}

	if *side == "offense" || *side == "both" {
		printOffense(plays, f, displayName)
	}
	if *side == "defense" || *side == "both" {
		printDefense(plays, f, displayName, *vsPersonnel)
	}
}

func printOffense(plays []feed.Play, f tendencies.Filters, name string) {
	f.Axis = tendencies.AxisOffense
	subset := tendencies.Apply(plays, f)
	overall := tendencies.OffenseOverall(subset)
	league := tendencies.AllTeamsOffense(plays, f)

	fmt.Printf("\n%s - offense (%d plays)\n", name, overall.TotalPlays)
	fmt.Printf("  Run:              %s\n", rankedPct(overall.RunPct, "run_pct", league))
	fmt.Printf("  Play action:      %s\n", rankedPct(overall.PAPct, "pa_pct", league))
	fmt.Printf("  Std dropback:     %s\n", rankedPct(overall.DBPct, "db_pct", league))
	fmt.Printf("  Motion:           %s\n", rankedPct(overall.MotionPct, "motion_pct", league))
	fmt.Printf("  Top run concepts: %s\n", strings.Join(overall.TopRunConcepts, " | "))

	printOffenseTable("Personnel", tendencies.OffenseByCategory(subset, tendencies.ByPersonnel))
	printOffenseTable("Formation", tendencies.OffenseByCategory(subset, tendencies.ByFormation))
	printOffenseTable("QB alignment", tendencies.OffenseByCategory(subset, tendencies.ByQBAlignment))
}

func printDefense(plays []feed.Play, f tendencies.Filters, name, vsPersonnel string) {
	f.Axis = tendencies.AxisDefense
	subset := tendencies.Apply(plays, f)
	overall := tendencies.DefenseOverall(subset)
	league := tendencies.AllTeamsDefense(plays, f)

	fmt.Printf("\n%s - defense (%d plays)\n", name, overall.TotalPlays)
	fmt.Printf("  Blitz:         %s\n", tendencies.FormatPctWithRank(overall.BlitzPct, tendencies.RankDefense(overall.BlitzPct, "blitz_pct", league)))
	fmt.Printf("  Man coverage:  %s\n", tendencies.FormatPctWithRank(overall.ManPct, tendencies.RankDefense(overall.ManPct, "man_pct", league)))
	fmt.Printf("  MOFO:          %s\n", tendencies.FormatPctWithRank(overall.MOFOPct, tendencies.RankDefense(overall.MOFOPct, "mofo_pct", league)))
	fmt.Printf("  Disguise:      %s\n", tendencies.FormatPctWithRank(overall.DisguisePct, tendencies.RankDefense(overall.DisguisePct, "disguise_pct", league)))
	fmt.Printf("  Top coverages: %s\n", strings.Join(overall.TopCoverages, " | "))

	printDefenseTable("Defensive package", tendencies.DefenseByCategory(subset, tendencies.ByDefPackage))

	if vsPersonnel != "" {
		vs := make([]feed.Play, 0, len(subset))
		for _, p := range subset {
			if p.PersonnelGroup == vsPersonnel {
				vs = append(vs, p)
			}
		}
		printDefenseTable(fmt.Sprintf("Defensive package vs %s personnel", vsPersonnel),
			tendencies.DefenseByCategory(vs, tendencies.ByDefPackage))
	}
}

func rankedPct(v float64, metric string, league []tendencies.OffenseTeamRow) string {
	return tendencies.FormatPctWithRank(v, tendencies.RankOffense(v, metric, league))
}

func printOffenseTable(title string, rows []tendencies.OffenseCategoryRow) {
	fmt.Printf("\n  %s\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  CATEGORY\tPLAYS\tUSAGE\tRUN\tPA\tDB\tMOTION\tTOP RUN CONCEPTS")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s\t%d\t%.1f%%\t%.1f%%\t%.1f%%\t%.1f%%\t%.1f%%\t%s\n",
			r.Category, r.Plays, r.UsagePct, r.RunPct, r.PAPct, r.DBPct, r.MotionPct,
			strings.ReplaceAll(r.TopRunConcepts, "\n", " | "))
	}
	w.Flush()
}

func printDefenseTable(title string, rows []tendencies.DefenseCategoryRow) {
	fmt.Printf("\n  %s\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  CATEGORY\tPLAYS\tUSAGE\tBLITZ\tMAN\tMOFO\tDISGUISE\tTOP COVERAGES")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s\t%d\t%.1f%%\t%.1f%%\t%.1f%%\t%.1f%%\t%.1f%%\t%s\n",
			r.Category, r.Plays, r.UsagePct, r.BlitzPct, r.ManPct, r.MOFOPct, r.DisguisePct,
			strings.ReplaceAll(r.TopCoverages, "\n", " | "))
	}
	w.Flush()
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func splitInts(s string) []int {
	var out []int
	for _, part := range splitList(s) {
		if n, err := strconv.Atoi(part); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func parseRange(s string) *tendencies.Range {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil
	}
	lo, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	hi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return nil
	}
	return &tendencies.Range{Min: lo, Max: hi}
}
