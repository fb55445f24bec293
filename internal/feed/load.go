package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// PFF play feed columns the engine reads. Any other columns in the file are
// ignored.
const (
	colRunPass         = "pff_RUNPASS"
	colOffTeam         = "pff_OFFTEAM"
	colDefTeam         = "pff_DEFTEAM"
	colWeek            = "pff_WEEK"
	colQuarter         = "pff_QUARTER"
	colDown            = "pff_DOWN"
	colDistance        = "pff_DISTANCE"
	colYardsToGoal     = "pff_YARDS_TO_GOAL_LINE"
	colClock           = "pff_CLOCK"
	colRunConcept      = "pff_RUNCONCEPTPRIMARY"
	colDropbackType    = "pff_DROPBACKTYPE"
	colPlayAction      = "pff_PLAYACTION"
	colPersonnelGroup  = "pff_OFF_PERSONNEL_GROUP"
	colFormationGroup  = "pff_OFFFORMATIONGROUP"
	colShotgun         = "pff_SHOTGUN"
	colShiftMotion     = "pff_SHIFTMOTION"
	colDefPackage      = "pff_DEF_PACKAGE"
	colBlitzDog        = "pff_BLITZDOG"
	colPassRushPlayers = "pff_PASSRUSHPLAYERS"
	colCoverageBasic   = "pff_PASS_COVERAGE_BASIC"
	colMOFOShown       = "pff_MOFOCSHOWN"
	colMOFOPlayed      = "pff_MOFOCPLAYED"
)

// RequiredColumns is every feed column the engine depends on. A feed missing
// any of these is a hard error, not a degraded load.
var RequiredColumns = []string{
	colRunPass, colOffTeam, colDefTeam, colWeek, colQuarter, colDown,
	colDistance, colYardsToGoal, colClock, colRunConcept, colDropbackType,
	colPlayAction, colPersonnelGroup, colFormationGroup, colShotgun,
	colShiftMotion, colDefPackage, colBlitzDog, colPassRushPlayers,
	colCoverageBasic, colMOFOShown, colMOFOPlayed,
}

// Load reads the raw play feed CSV at path. Rows come back uncleaned and
// underived; callers chain Clean and Derive.
func Load(path string) ([]Play, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feed: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	hdr, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read feed header: %w", err)
	}

	var recs [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read feed row: %w", err)
		}
		recs = append(recs, rec)
	}
	return ReadRows(hdr, recs)
}

// ReadRows decodes raw feed records against a header row. It is shared by the
// CSV loader and the Athena loader so both produce identical Play values.
func ReadRows(hdr []string, recs [][]string) ([]Play, error) {
	idx := func(name string) int {
		for i, h := range hdr {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	cols := make(map[string]int, len(RequiredColumns))
	var missing []string
	for _, name := range RequiredColumns {
		i := idx(name)
		if i < 0 {
			missing = append(missing, name)
			continue
		}
		cols[name] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("feed missing required columns: %s", strings.Join(missing, ", "))
	}

	plays := make([]Play, 0, len(recs))
	for _, rec := range recs {
		get := func(name string) string {
			i := cols[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		plays = append(plays, decodeRow(get))
	}
	return plays, nil
}

func decodeRow(get func(string) string) Play {
	var pa *int
	if s := get(colPlayAction); s != "" {
		// "0"/"1", occasionally exported as "0.0"/"1.0"
		if n, err := strconv.Atoi(s); err == nil {
			pa = &n
		} else if f, err := strconv.ParseFloat(s, 64); err == nil {
			n := int(f)
			pa = &n
		}
	}
	return Play{
		OffTeam:         get(colOffTeam),
		DefTeam:         get(colDefTeam),
		Week:            get(colWeek),
		Quarter:         Atoi(get(colQuarter), 0),
		Down:            Atoi(get(colDown), 0),
		Distance:        Atoi(get(colDistance), 0),
		YardsToGoal:     Atoi(get(colYardsToGoal), 0),
		Clock:           get(colClock),
		RunPass:         get(colRunPass),
		RunConcept:      get(colRunConcept),
		DropbackType:    get(colDropbackType),
		PlayAction:      pa,
		PersonnelGroup:  get(colPersonnelGroup),
		FormationGroup:  get(colFormationGroup),
		Shotgun:         get(colShotgun),
		ShiftMotion:     get(colShiftMotion),
		DefPackage:      get(colDefPackage),
		BlitzDog:        get(colBlitzDog),
		PassRushPlayers: get(colPassRushPlayers),
		CoverageBasic:   get(colCoverageBasic),
		MOFOShown:       get(colMOFOShown),
		MOFOPlayed:      get(colMOFOPlayed),
	}
}

// Clean drops everything that isn't a run or pass snap: special teams,
// kneels, spikes, penalties-only rows. The result is a fresh slice.
func Clean(plays []Play) []Play {
	out := make([]Play, 0, len(plays))
	for _, p := range plays {
		if p.RunPass == "R" || p.RunPass == "P" {
			out = append(out, p)
		}
	}
	return out
}
