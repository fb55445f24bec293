package feed

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClockToMinutes turns a "MM:SS" clock string into the whole minutes
// remaining in the quarter. Anything unparsable comes back as 0; per-play
// fields in the feed are messy and a bad clock should never sink a load.
func ParseClockToMinutes(clock string) int {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return 0
	}
	parts := strings.Split(clock, ":")
	m, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	return m
}

// ParsePassRushers extracts the rusher count from a pass-rush players field,
// e.g. "4; PHI 53 (LILB); PHI 90 (NRT)". Unparsable or empty input is 0.
func ParsePassRushers(field string) int {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0
	}
	parts := strings.Split(field, ";")
	n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	return n
}

// NormalizeFormationGroup puts the larger side of an "AxB" formation group
// first, so 1x3 and 3x1 collapse to the same bucket. Strings that aren't in
// AxB shape (or whose halves don't parse) are returned unchanged, and an
// empty field passes through as-is.
func NormalizeFormationGroup(formation string) string {
	if formation == "" {
		return formation
	}
	if !strings.Contains(formation, "x") {
		return formation
	}
	parts := strings.Split(formation, "x")
	if len(parts) != 2 {
		return formation
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return formation
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return formation
	}
	if b > a {
		a, b = b, a
	}
	return fmt.Sprintf("%dx%d", a, b)
}

// Cover 3 variants that collapse into the base COVER 3 bucket.
var cover3Variants = map[string]bool{
	"COVER 3 CLOUD":     true,
	"COVER 3 DBL CLOUD": true,
	"COVER 3 SEAM":      true,
}

// NormalizeCoverage upper-cases and trims a basic coverage label and folds
// the Cover 3 variant families into "COVER 3". Empty passes through.
func NormalizeCoverage(coverage string) string {
	if coverage == "" {
		return coverage
	}
	c := strings.ToUpper(strings.TrimSpace(coverage))
	if cover3Variants[c] {
		return "COVER 3"
	}
	return c
}

var manCoverages = map[string]bool{
	"COVER 0":        true,
	"COVER 1":        true,
	"COVER 1 DOUBLE": true,
	"COVER 2 MAN":    true,
}

// IsManCoverage reports whether a basic coverage label is one of the man
// coverage shells. Empty input is false.
func IsManCoverage(coverage string) bool {
	if coverage == "" {
		return false
	}
	return manCoverages[strings.ToUpper(strings.TrimSpace(coverage))]
}
