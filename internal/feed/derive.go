package feed

import "strconv"

// Dropback types counted as a standard dropback when no play action is on.
var standardDropbacks = map[string]bool{"SD": true, "SR": true, "SL": true}

// Derive computes every indicator column on a cleaned play set and returns a
// fresh slice; the input is never mutated, so a shared loaded feed can be
// derived safely while other readers hold it. Running Derive on already
// derived plays yields the same values.
func Derive(plays []Play) []Play {
	out := make([]Play, len(plays))
	for i, p := range plays {
		p.MinutesRemaining = ParseClockToMinutes(p.Clock)
		p.FormationGroupNorm = NormalizeFormationGroup(p.FormationGroup)
		p.CoverageNorm = NormalizeCoverage(p.CoverageBasic)
		p.NumPassRushers = ParsePassRushers(p.PassRushPlayers)

		p.IsRun = b2i(p.RunPass == "R")
		p.HasMotion = b2i(p.ShiftMotion != "")
		// Play-action rate treats an absent flag as 0...
		p.IsPlayAction = 0
		if p.PlayAction != nil {
			p.IsPlayAction = *p.PlayAction
		}
		// ...but a standard dropback needs the flag present AND zero. An
		// absent flag never qualifies, and neither does a running play
		// (the feed only sets dropback type on passes).
		p.IsStandardDropback = b2i(standardDropbacks[p.DropbackType] &&
			p.PlayAction != nil && *p.PlayAction == 0)

		p.IsBlitz = b2i(flagSet(p.BlitzDog))
		p.IsManCoverage = b2i(IsManCoverage(p.CoverageBasic))
		p.IsMOFO = b2i(p.MOFOPlayed == "O")
		p.HasMOFOData = b2i(p.MOFOShown != "" && p.MOFOPlayed != "")
		p.IsDisguise = b2i(p.MOFOShown != "" && p.MOFOPlayed != "" &&
			p.MOFOShown != p.MOFOPlayed)

		out[i] = p
	}
	return out
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// flagSet reports whether a 0/1 feed flag equals 1, tolerating the float
// export form ("1.0").
func flagSet(s string) bool {
	if s == "" {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f == 1
}
