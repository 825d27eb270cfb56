package statcrew

import "encoding/xml"

// Wire types mirror the feed's element/attribute layout. Only attributes are
// mapped; element text is never used by the feed.

type document struct {
	XMLName   xml.Name `xml:"fbgame"`
	Source    string   `xml:"source,attr"`
	Version   string   `xml:"version,attr"`
	Generated string   `xml:"generated,attr"`

	Venues []venueElem `xml:"venue"`
	Teams  []teamElem  `xml:"team"`
	Scores scoresElem  `xml:"scores"`
	Drives drivesElem  `xml:"drives"`
}

type venueElem struct {
	GameID      string `xml:"gameid,attr"`
	VisitorID   string `xml:"visid,attr"`
	HomeID      string `xml:"homeid,attr"`
	VisitorName string `xml:"visname,attr"`
	HomeName    string `xml:"homename,attr"`
	Date        string `xml:"date,attr"`
	Location    string `xml:"location,attr"`
	Stadium     string `xml:"stadium,attr"`
	Start       string `xml:"start,attr"`
	End         string `xml:"end,attr"`
	Duration    string `xml:"duration,attr"`
	Attendance  string `xml:"attend,attr"`
	Temp        string `xml:"temp,attr"`
	Wind        string `xml:"wind,attr"`
	Weather     string `xml:"weather,attr"`
}

type teamElem struct {
	VH   string `xml:"vh,attr"`
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`

	LineScore linescoreElem `xml:"linescore"`
	Totals    totalsElem    `xml:"totals"`
	Players   []playerElem  `xml:"player"`
}

type linescoreElem struct {
	Score   string           `xml:"score,attr"`
	Periods []lineperiodElem `xml:"lineprd"`
}

type lineperiodElem struct {
	Period string `xml:"prd,attr"`
	Score  string `xml:"score,attr"`
}

type totalsElem struct {
	FirstDowns   *firstdownsElem  `xml:"firstdowns"`
	Penalties    *penaltiesElem   `xml:"penalties"`
	Conversions  *conversionsElem `xml:"conversions"`
	Fumbles      *fumblesElem     `xml:"fumbles"`
	Misc         *miscElem        `xml:"misc"`
	RedZone      *redzoneElem     `xml:"redzone"`
	Rush         *rushElem        `xml:"rush"`
	Pass         *passElem        `xml:"pass"`
	Rcv          *rcvElem         `xml:"rcv"`
	Punt         *puntElem        `xml:"punt"`
	KO           *koElem          `xml:"ko"`
	FG           *fgElem          `xml:"fg"`
	PAT          *patElem         `xml:"pat"`
	Defense      *defenseElem     `xml:"defense"`
	KR           *returnElem      `xml:"kr"`
	PR           *returnElem      `xml:"pr"`
	IR           *returnElem      `xml:"ir"`
	TotalOffense *totoffElem      `xml:"totoff"`
	Scoring      *scoringElem     `xml:"scoring"`
}

type playerElem struct {
	Name        string `xml:"name,attr"`
	ShortName   string `xml:"shortname,attr"`
	Uniform     string `xml:"uni,attr"`
	Class       string `xml:"class,attr"`
	GamesPlayed string `xml:"gp,attr"`
	OffensePos  string `xml:"opos,attr"`
	DefensePos  string `xml:"dpos,attr"`

	Pass    *passElem    `xml:"pass"`
	Rush    *rushElem    `xml:"rush"`
	Rcv     *rcvElem     `xml:"rcv"`
	Defense *defenseElem `xml:"defense"`
	Int     *returnElem  `xml:"int"`
	Fumbles *fumblesElem `xml:"fumbles"`
	PR      *returnElem  `xml:"pr"`
	KR      *returnElem  `xml:"kr"`
}

type firstdownsElem struct {
	No      string `xml:"no,attr"`
	Rush    string `xml:"rush,attr"`
	Pass    string `xml:"pass,attr"`
	Penalty string `xml:"penalty,attr"`
}

type penaltiesElem struct {
	No    string `xml:"no,attr"`
	Yards string `xml:"yds,attr"`
}

type conversionsElem struct {
	ThirdConv  string `xml:"thirdconv,attr"`
	ThirdAtt   string `xml:"thirdatt,attr"`
	FourthConv string `xml:"fourthconv,attr"`
	FourthAtt  string `xml:"fourthatt,attr"`
}

type fumblesElem struct {
	No   string `xml:"no,attr"`
	Lost string `xml:"lost,attr"`
}

type miscElem struct {
	Yards string `xml:"yds,attr"`
	Top   string `xml:"top,attr"`
	Ona   string `xml:"ona,attr"`
	Onm   string `xml:"onm,attr"`
	Ptsto string `xml:"ptsto,attr"`
}

type redzoneElem struct {
	Att    string `xml:"att,attr"`
	Scores string `xml:"scores,attr"`
	Points string `xml:"points,attr"`
	TDRush string `xml:"tdrush,attr"`
	TDPass string `xml:"tdpass,attr"`
	FGMade string `xml:"fgmade,attr"`
}

type rushElem struct {
	Att   string `xml:"att,attr"`
	Yards string `xml:"yds,attr"`
	Gain  string `xml:"gain,attr"`
	Loss  string `xml:"loss,attr"`
	TD    string `xml:"td,attr"`
	Long  string `xml:"long,attr"`
	Avg   string `xml:"avg,attr"`
}

type passElem struct {
	Comp      string `xml:"comp,attr"`
	Att       string `xml:"att,attr"`
	Int       string `xml:"int,attr"`
	Yards     string `xml:"yds,attr"`
	TD        string `xml:"td,attr"`
	Long      string `xml:"long,attr"`
	Pct       string `xml:"pct,attr"`
	Sacks     string `xml:"sacks,attr"`
	SackYards string `xml:"sackyds,attr"`
}

type rcvElem struct {
	No    string `xml:"no,attr"`
	Yards string `xml:"yds,attr"`
	TD    string `xml:"td,attr"`
	Long  string `xml:"long,attr"`
	Avg   string `xml:"avg,attr"`
}

type puntElem struct {
	No       string `xml:"no,attr"`
	Yards    string `xml:"yds,attr"`
	Avg      string `xml:"avg,attr"`
	Long     string `xml:"long,attr"`
	Blocked  string `xml:"blkd,attr"`
	TB       string `xml:"tb,attr"`
	FC       string `xml:"fc,attr"`
	Plus50   string `xml:"plus50,attr"`
	Inside20 string `xml:"inside20,attr"`
}

type koElem struct {
	No    string `xml:"no,attr"`
	Yards string `xml:"yds,attr"`
	OB    string `xml:"ob,attr"`
	TB    string `xml:"tb,attr"`
}

type fgElem struct {
	Made    string `xml:"made,attr"`
	Att     string `xml:"att,attr"`
	Long    string `xml:"long,attr"`
	Blocked string `xml:"blkd,attr"`
}

type patElem struct {
	KickMade string `xml:"kickmade,attr"`
	KickAtt  string `xml:"kickatt,attr"`
	PassMade string `xml:"passmade,attr"`
	PassAtt  string `xml:"passatt,attr"`
	RushMade string `xml:"rushmade,attr"`
	RushAtt  string `xml:"rushatt,attr"`
}

type defenseElem struct {
	TackUA    string `xml:"tackua,attr"`
	TackA     string `xml:"tacka,attr"`
	TotTack   string `xml:"tot_tack,attr"`
	TFLUA     string `xml:"tflua,attr"`
	TFLA      string `xml:"tfla,attr"`
	TFLYards  string `xml:"tflyds,attr"`
	Sacks     string `xml:"sacks,attr"`
	SackYards string `xml:"sackyds,attr"`
	BrUp      string `xml:"brup,attr"`
	FF        string `xml:"ff,attr"`
	FR        string `xml:"fr,attr"`
	FRYards   string `xml:"fryds,attr"`
	IntNo     string `xml:"int,attr"`
	IntYards  string `xml:"intyds,attr"`
	QBH       string `xml:"qbh,attr"`
	Blocked   string `xml:"blkd,attr"`
}

type returnElem struct {
	No    string `xml:"no,attr"`
	Yards string `xml:"yds,attr"`
	TD    string `xml:"td,attr"`
	Long  string `xml:"long,attr"`
}

// The feed spells total-offense yardage "yards", unlike every other
// category's "yds".
type totoffElem struct {
	Plays string `xml:"plays,attr"`
	Yards string `xml:"yards,attr"`
	Avg   string `xml:"avg,attr"`
}

type scoringElem struct {
	TD      string `xml:"td,attr"`
	FG      string `xml:"fg,attr"`
	PATKick string `xml:"patkick,attr"`
}

type scoresElem struct {
	Entries []scoreElem `xml:"score"`
}

type scoreElem struct {
	Period       string `xml:"prd,attr"`
	Clock        string `xml:"clock,attr"`
	TeamID       string `xml:"team,attr"`
	Type         string `xml:"type,attr"`
	Description  string `xml:"desc,attr"`
	VisitorScore string `xml:"vscore,attr"`
	HomeScore    string `xml:"hscore,attr"`
}

type drivesElem struct {
	Entries []driveElem `xml:"drive"`
}

type driveElem struct {
	TeamID string `xml:"team,attr"`
	Start  string `xml:"start,attr"`
	End    string `xml:"end,attr"`
	Plays  string `xml:"plays,attr"`
	Yards  string `xml:"yds,attr"`
	Top    string `xml:"top,attr"`
	Result string `xml:"result,attr"`
}
