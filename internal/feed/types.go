package feed

import (
	"strconv"
	"strings"
)

// Play is one offensive snap from the PFF play feed. Raw fields come straight
// off the CSV; the derived fields are filled in by Derive and never touched
// afterwards. Nullable string fields are "absent" exactly when empty after
// trimming. PlayAction is tri-state: a nil pointer means the feed had no
// value, which is not the same as an explicit 0 (see Derive).
type Play struct {
	OffTeam     string
	DefTeam     string
	Week        string // "1".."18" or WC/DP/CC/SB
	Quarter     int
	Down        int
	Distance    int
	YardsToGoal int
	Clock       string // "MM:SS"

	RunPass      string // "R" or "P" after Clean
	RunConcept   string
	DropbackType string
	PlayAction   *int

	PersonnelGroup string
	FormationGroup string // "AxB", unordered
	Shotgun        string // "S" = shotgun
	ShiftMotion    string // presence matters, value doesn't

	DefPackage      string
	BlitzDog        string
	PassRushPlayers string // "<n>; TEAM 53 (LILB); ..."
	CoverageBasic   string
	MOFOShown       string
	MOFOPlayed      string

	// Derived (Derive fills these once per load).
	MinutesRemaining   int
	FormationGroupNorm string
	CoverageNorm       string
	NumPassRushers     int
	IsRun              int
	HasMotion          int
	IsPlayAction       int
	IsStandardDropback int
	IsBlitz            int
	IsManCoverage      int
	IsMOFO             int
	IsDisguise         int
	HasMOFOData        int
}

// Atoi parses s as an int, returning def when it doesn't parse.
func Atoi(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return i
}
