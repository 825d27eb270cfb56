package game

// FieldSet resolves a single named statistic within one category. The bool
// reports whether the name exists in the category's catalog, independent of
// whether the stored value is blank.
type FieldSet interface {
	Field(name string) (string, bool)
}

// TeamTotals is a team's game-aggregate statistics. Categories the feed did
// not emit stay nil; resolving through a nil category yields a missing value
// downstream, not an error.
type TeamTotals struct {
	FirstDowns   *FirstDownTotals
	Penalties    *PenaltyTotals
	Conversions  *ConversionTotals
	Fumbles      *FumbleStats
	Misc         *MiscTotals
	RedZone      *RedZoneTotals
	Rushing      *RushingStats
	Passing      *PassingStats
	Receiving    *ReceivingStats
	Punting      *PuntStats
	Kickoffs     *KickoffTotals
	FieldGoals   *FieldGoalStats
	PointsAfter  *PointAfterStats
	Defense      *DefenseStats
	KickReturns  *ReturnStats
	PuntReturns  *ReturnStats
	IntReturns   *ReturnStats
	TotalOffense *TotalOffenseStats
	Scoring      *ScoringTotals
}

// Group maps a feed category key to its typed block. Nil blocks return
// ok=false, same as an unknown key.
func (t *TeamTotals) Group(key string) (FieldSet, bool) {
	var fs FieldSet
	switch key {
	case "firstdowns":
		if t.FirstDowns != nil {
			fs = t.FirstDowns
		}
	case "penalties":
		if t.Penalties != nil {
			fs = t.Penalties
		}
	case "conversions":
		if t.Conversions != nil {
			fs = t.Conversions
		}
	case "fumbles":
		if t.Fumbles != nil {
			fs = t.Fumbles
		}
	case "misc":
		if t.Misc != nil {
			fs = t.Misc
		}
	case "redzone":
		if t.RedZone != nil {
			fs = t.RedZone
		}
	case "rush":
		if t.Rushing != nil {
			fs = t.Rushing
		}
	case "pass":
		if t.Passing != nil {
			fs = t.Passing
		}
	case "rcv":
		if t.Receiving != nil {
			fs = t.Receiving
		}
	case "punt":
		if t.Punting != nil {
			fs = t.Punting
		}
	case "ko":
		if t.Kickoffs != nil {
			fs = t.Kickoffs
		}
	case "fg":
		if t.FieldGoals != nil {
			fs = t.FieldGoals
		}
	case "pat":
		if t.PointsAfter != nil {
			fs = t.PointsAfter
		}
	case "defense":
		if t.Defense != nil {
			fs = t.Defense
		}
	case "kr":
		if t.KickReturns != nil {
			fs = t.KickReturns
		}
	case "pr":
		if t.PuntReturns != nil {
			fs = t.PuntReturns
		}
	case "ir":
		if t.IntReturns != nil {
			fs = t.IntReturns
		}
	case "totoff":
		if t.TotalOffense != nil {
			fs = t.TotalOffense
		}
	case "scoring":
		if t.Scoring != nil {
			fs = t.Scoring
		}
	}
	if fs == nil {
		return nil, false
	}
	return fs, true
}

type FirstDownTotals struct {
	No      string
	Rush    string
	Pass    string
	Penalty string
}

func (s *FirstDownTotals) Field(name string) (string, bool) {
	switch name {
	case "no":
		return s.No, true
	case "rush":
		return s.Rush, true
	case "pass":
		return s.Pass, true
	case "penalty":
		return s.Penalty, true
	}
	return "", false
}

type PenaltyTotals struct {
	No    string
	Yards string
}

func (s *PenaltyTotals) Field(name string) (string, bool) {
	switch name {
	case "no":
		return s.No, true
	case "yds":
		return s.Yards, true
	}
	return "", false
}

type ConversionTotals struct {
	ThirdConv  string
	ThirdAtt   string
	FourthConv string
	FourthAtt  string
}

func (s *ConversionTotals) Field(name string) (string, bool) {
	switch name {
	case "thirdconv":
		return s.ThirdConv, true
	case "thirdatt":
		return s.ThirdAtt, true
	case "fourthconv":
		return s.FourthConv, true
	case "fourthatt":
		return s.FourthAtt, true
	}
	return "", false
}

type FumbleStats struct {
	No   string
	Lost string
}

func (s *FumbleStats) Field(name string) (string, bool) {
	switch name {
	case "no":
		return s.No, true
	case "lost":
		return s.Lost, true
	}
	return "", false
}

type MiscTotals struct {
	Yards string
	Top   string
	Ona   string
	Onm   string
	Ptsto string
}

func (s *MiscTotals) Field(name string) (string, bool) {
	switch name {
	case "yds":
		return s.Yards, true
	case "top":
		return s.Top, true
	case "ona":
		return s.Ona, true
	case "onm":
		return s.Onm, true
	case "ptsto":
		return s.Ptsto, true
	}
	return "", false
}

type RedZoneTotals struct {
	Att    string
	Scores string
	Points string
	TDRush string
	TDPass string
	FGMade string
}

func (s *RedZoneTotals) Field(name string) (string, bool) {
	switch name {
	case "att":
		return s.Att, true
	case "scores":
		return s.Scores, true
	case "points":
		return s.Points, true
	case "tdrush":
		return s.TDRush, true
	case "tdpass":
		return s.TDPass, true
	case "fgmade":
		return s.FGMade, true
	}
	return "", false
}

type RushingStats struct {
	Att   string
	Yards string
	Gain  string
	Loss  string
	TD    string
	Long  string
	Avg   string
}

func (s *RushingStats) Field(name string) (string, bool) {
	switch name {
	case "att":
		return s.Att, true
	case "yds":
		return s.Yards, true
	case "gain":
		return s.Gain, true
	case "loss":
		return s.Loss, true
	case "td":
		return s.TD, true
	case "long":
		return s.Long, true
	case "avg":
		return s.Avg, true
	}
	return "", false
}

type PassingStats struct {
	Comp      string
	Att       string
	Int       string
	Yards     string
	TD        string
	Long      string
	Pct       string
	Sacks     string
	SackYards string
}

func (s *PassingStats) Field(name string) (string, bool) {
	switch name {
	case "comp":
		return s.Comp, true
	case "att":
		return s.Att, true
	case "int":
		return s.Int, true
	case "yds":
		return s.Yards, true
	case "td":
		return s.TD, true
	case "long":
		return s.Long, true
	case "pct":
		return s.Pct, true
	case "sacks":
		return s.Sacks, true
	case "sackyds":
		return s.SackYards, true
	}
	return "", false
}

type ReceivingStats struct {
	No    string
	Yards string
	TD    string
	Long  string
	Avg   string
}

func (s *ReceivingStats) Field(name string) (string, bool) {
	switch name {
	case "no":
		return s.No, true
	case "yds":
		return s.Yards, true
	case "td":
		return s.TD, true
	case "long":
		return s.Long, true
	case "avg":
		return s.Avg, true
	}
	return "", false
}

type PuntStats struct {
	No       string
	Yards    string
	Avg      string
	Long     string
	Blocked  string
	TB       string
	FC       string
	Plus50   string
	Inside20 string
}

func (s *PuntStats) Field(name string) (string, bool) {
	switch name {
	case "no":
		return s.No, true
	case "yds":
		return s.Yards, true
	case "avg":
		return s.Avg, true
	case "long":
		return s.Long, true
	case "blkd":
		return s.Blocked, true
	case "tb":
		return s.TB, true
	case "fc":
		return s.FC, true
	case "plus50":
		return s.Plus50, true
	case "inside20":
		return s.Inside20, true
	}
	return "", false
}

type KickoffTotals struct {
	No    string
	Yards string
	OB    string
	TB    string
}

func (s *KickoffTotals) Field(name string) (string, bool) {
	switch name {
	case "no":
		return s.No, true
	case "yds":
		return s.Yards, true
	case "ob":
		return s.OB, true
	case "tb":
		return s.TB, true
	}
	return "", false
}

type FieldGoalStats struct {
	Made    string
	Att     string
	Long    string
	Blocked string
}

func (s *FieldGoalStats) Field(name string) (string, bool) {
	switch name {
	case "made":
		return s.Made, true
	case "att":
		return s.Att, true
	case "long":
		return s.Long, true
	case "blkd":
		return s.Blocked, true
	}
	return "", false
}

type PointAfterStats struct {
	KickMade string
	KickAtt  string
	PassMade string
	PassAtt  string
	RushMade string
	RushAtt  string
}

func (s *PointAfterStats) Field(name string) (string, bool) {
	switch name {
	case "kickmade":
		return s.KickMade, true
	case "kickatt":
		return s.KickAtt, true
	case "passmade":
		return s.PassMade, true
	case "passatt":
		return s.PassAtt, true
	case "rushmade":
		return s.RushMade, true
	case "rushatt":
		return s.RushAtt, true
	}
	return "", false
}

// DefenseStats carries both tackle components and the feed's own tot_tack
// aggregate; the projection layer prefers the derived sum.
type DefenseStats struct {
	TackUA    string
	TackA     string
	TotTack   string
	TFLUA     string
	TFLA      string
	TFLYards  string
	Sacks     string
	SackYards string
	BrUp      string
	FF        string
	FR        string
	FRYards   string
	IntNo     string
	IntYards  string
	QBH       string
	Blocked   string
}

func (s *DefenseStats) Field(name string) (string, bool) {
	switch name {
	case "tackua":
		return s.TackUA, true
	case "tacka":
		return s.TackA, true
	case "tot_tack":
		return s.TotTack, true
	case "tflua":
		return s.TFLUA, true
	case "tfla":
		return s.TFLA, true
	case "tflyds":
		return s.TFLYards, true
	case "sacks":
		return s.Sacks, true
	case "sackyds":
		return s.SackYards, true
	case "brup":
		return s.BrUp, true
	case "ff":
		return s.FF, true
	case "fr":
		return s.FR, true
	case "fryds":
		return s.FRYards, true
	case "int":
		return s.IntNo, true
	case "intyds":
		return s.IntYards, true
	case "qbh":
		return s.QBH, true
	case "blkd":
		return s.Blocked, true
	}
	return "", false
}

// ReturnStats covers kick, punt, and interception returns, which share a
// shape in the feed.
type ReturnStats struct {
	No    string
	Yards string
	TD    string
	Long  string
}

func (s *ReturnStats) Field(name string) (string, bool) {
	switch name {
	case "no":
		return s.No, true
	case "yds":
		return s.Yards, true
	case "td":
		return s.TD, true
	case "long":
		return s.Long, true
	}
	return "", false
}

type TotalOffenseStats struct {
	Plays string
	Yards string
	Avg   string
}

// Field keys mirror the feed attribute names; total offense is the one
// category that spells yardage "yards" instead of "yds".
func (s *TotalOffenseStats) Field(name string) (string, bool) {
	switch name {
	case "plays":
		return s.Plays, true
	case "yards":
		return s.Yards, true
	case "avg":
		return s.Avg, true
	}
	return "", false
}

type ScoringTotals struct {
	TD      string
	FG      string
	PATKick string
}

func (s *ScoringTotals) Field(name string) (string, bool) {
	switch name {
	case "td":
		return s.TD, true
	case "fg":
		return s.FG, true
	case "patkick":
		return s.PATKick, true
	}
	return "", false
}
