package statcrew

import (
	"errors"
	"testing"

	"github.com/drewburchfield/gridiron/internal/domain/game"
	"github.com/stretchr/testify/require"
)

const fixtureXML = `<?xml version="1.0" encoding="utf-8"?>
<fbgame source="STAT CREW Football" version="4.14.30" generated="9/2/2023">
  <venue gameid="HM01" visid="USM" homeid="UM" visname="Southern Miss." homename="Miami (FL)"
         date="9/2/2023" location="Miami Gardens, FL" stadium="Hard Rock Stadium"
         start="7:00 PM" end="10:21 PM" duration="3:21" attend="45123"
         temp="88" wind="SE 10" weather="Partly cloudy"/>
  <team vh="V" id="USM" name="Southern Miss.">
    <linescore prds="4" line="7,3,0,3" score="13">
      <lineprd prd="1" score="7"/>
      <lineprd prd="2" score="3"/>
      <lineprd prd="3" score="0"/>
      <lineprd prd="4" score="3"/>
    </linescore>
    <totals>
      <firstdowns no="14" rush="6" pass="7" penalty="1"/>
      <penalties no="5" yds="45"/>
      <conversions thirdconv="4" thirdatt="13" fourthconv="0" fourthatt="1"/>
      <fumbles no="2" lost="1"/>
      <misc yds="255" top="28:44" ona="1" onm="0" ptsto="3"/>
      <redzone att="2" scores="2" points="10" tdrush="1" tdpass="0" fgmade="1"/>
      <rush att="35" yds="118" gain="132" loss="14" td="1" long="24"/>
      <pass comp="14" att="25" int="1" yds="137" td="0" long="31" sacks="2" sackyds="12"/>
      <rcv no="14" yds="137" td="0" long="31"/>
      <punt no="6" yds="252" avg="42.0" long="51" blkd="0" tb="1" fc="2" plus50="1" inside20="2"/>
      <ko no="3" yds="189" ob="0" tb="1"/>
      <fg made="2" att="2" long="38" blkd="0"/>
      <pat kickmade="1" kickatt="1"/>
      <defense tackua="31" tacka="28" tot_tack="59" tflua="4" tfla="2" sacks="1" sackyds="7" brup="3" ff="1" fr="0" int="0" qbh="2"/>
      <kr no="2" yds="41" td="0" long="23"/>
      <pr no="1" yds="4" td="0" long="4"/>
      <totoff plays="60" yards="255" avg="4.3"/>
      <scoring td="1" fg="2" patkick="1"/>
    </totals>
    <player name="Smith, John" shortname="SMITH, J." uni="12" class="SR" gp="1" opos="QB">
      <pass comp="14" att="25" int="1" yds="137" td="0" long="31" sacks="2" sackyds="12"/>
      <rush att="8" yds="22" gain="31" loss="9" td="0" long="12"/>
    </player>
    <player name="Carter, Des" shortname="CARTER, D." uni="24" class="JR" gp="1" opos="RB">
      <rush att="18" yds="84" gain="89" loss="5" td="1" long="24"/>
      <rcv no="3" yds="21" td="0" long="11"/>
    </player>
    <player name="Young, Alex" shortname="YOUNG, A." uni="7" class="SO" gp="1">
      <kr no="2" yds="41" td="0" long="23"/>
    </player>
    <player name="TEAM" shortname="TEAM" uni="" gp="1"/>
  </team>
  <team vh="H" id="UM" name="Miami (FL)">
    <linescore prds="4" line="14,10,7,7" score="38">
      <lineprd prd="1" score="14"/>
      <lineprd prd="2" score="10"/>
      <lineprd prd="3" score="7"/>
      <lineprd prd="4" score="7"/>
    </linescore>
    <totals>
      <firstdowns no="25" rush="10" pass="13" penalty="2"/>
      <penalties no="7" yds="60"/>
      <conversions thirdconv="7" thirdatt="12" fourthconv="1" fourthatt="1"/>
      <fumbles no="1" lost="0"/>
      <misc yds="501" top="31:16" ptsto="14"/>
      <rush att="38" yds="175" gain="182" loss="7" td="2" long="35"/>
      <pass comp="22" att="30" int="0" yds="326" td="3" long="48" sacks="1" sackyds="7"/>
      <rcv no="22" yds="326" td="3" long="48"/>
      <punt no="2" yds="88" long="47" blkd="0" tb="0" fc="1" plus50="0" inside20="1"/>
      <defense tackua="29" tacka="22" tflua="6" tfla="2" sacks="2" sackyds="12" brup="5" ff="2" fr="1" int="1" intyds="18" qbh="3"/>
      <totoff plays="68" yards="501" avg="7.4"/>
      <scoring td="5" fg="1" patkick="5"/>
    </totals>
    <player name="Rivera, Luis" shortname="RIVERA, L." uni="3" class="SR" gp="1" opos="QB">
      <pass comp="22" att="30" int="0" yds="326" td="3" long="48" sacks="1" sackyds="7"/>
    </player>
    <player name="Jones, Mike" shortname="JONES, M." uni="44" class="JR" gp="1" dpos="LB">
      <defense tackua="7" tacka="4" tflua="2" sacks="1" sackyds="7" ff="1" qbh="1"/>
    </player>
    <player name="Lee, Sam" shortname="LEE, S." uni="21" class="SO" gp="1" dpos="CB">
      <defense tackua="3" tacka="1" brup="2"/>
      <int no="1" yds="18" td="0" long="18"/>
    </player>
  </team>
  <scores>
    <score prd="1" clock="11:24" team="USM" type="TD" desc="CARTER, D. 24 yd run (HALL kick)" vscore="7" hscore="0"/>
    <score prd="1" clock="06:02" team="UM" type="TD" desc="BROWN 35 yd run (SANCHEZ kick)" vscore="7" hscore="7"/>
    <score prd="2" clock="00:41" team="USM" type="FG" desc="HALL 38 yd field goal" vscore="10" hscore="21"/>
  </scores>
  <drives>
    <drive team="USM" start="V25 15:00 1st" end="H08 11:24 1st" plays="9" yds="67" top="3:36" result="TD"/>
    <drive team="UM" start="H30 11:18 1st" end="V00 06:02 1st" plays="6" yds="70" top="5:16" result="TD"/>
  </drives>
</fbgame>`

func TestParse_MapsDocument(t *testing.T) {
	t.Parallel()

	rec, err := Parse([]byte(fixtureXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if rec.Source != "STAT CREW Football" || rec.GeneratedAt != "9/2/2023" {
		t.Fatalf("provenance not mapped: %+v", rec)
	}
	if rec.Venue.Stadium != "Hard Rock Stadium" || rec.Venue.Attendance != "45123" {
		t.Fatalf("venue not mapped: %+v", rec.Venue)
	}

	visitor := rec.Team(0)
	home := rec.Team(1)
	if visitor.Side != game.SideVisitor || visitor.ID != "USM" {
		t.Fatalf("visitor team wrong: %+v", visitor)
	}
	if home.Side != game.SideHome || home.Name != "Miami (FL)" {
		t.Fatalf("home team wrong: %+v", home)
	}

	if len(visitor.LineScore) != 4 || visitor.LineScore[0].Score != "7" {
		t.Fatalf("linescore not mapped: %+v", visitor.LineScore)
	}
	if visitor.ReportedScore != "13" {
		t.Fatalf("reported score = %q, want 13", visitor.ReportedScore)
	}

	if visitor.Totals.Rushing == nil || visitor.Totals.Rushing.Att != "35" {
		t.Fatalf("rushing totals not mapped: %+v", visitor.Totals.Rushing)
	}
	if visitor.Totals.TotalOffense == nil || visitor.Totals.TotalOffense.Yards != "255" {
		t.Fatalf("total offense yards not mapped from the yards attribute: %+v", visitor.Totals.TotalOffense)
	}
	if visitor.Totals.Punting == nil || visitor.Totals.Punting.Avg != "42.0" {
		t.Fatalf("punt average not mapped: %+v", visitor.Totals.Punting)
	}
	if visitor.Totals.Defense == nil || visitor.Totals.Defense.TotTack != "59" {
		t.Fatalf("tot_tack not mapped: %+v", visitor.Totals.Defense)
	}
	if home.Totals.Kickoffs != nil {
		t.Fatal("absent ko category must stay nil")
	}

	if len(visitor.Players) != 4 {
		t.Fatalf("visitor players = %d, want 4", len(visitor.Players))
	}
	qb := visitor.Players[0]
	if qb.Passing == nil || qb.Passing.Comp != "14" || qb.Rushing == nil {
		t.Fatalf("player groups not mapped: %+v", qb)
	}
	if qb.Receiving != nil || qb.Defense != nil {
		t.Fatal("absent player groups must stay nil")
	}

	if len(rec.ScoringPlays) != 3 || rec.ScoringPlays[2].Type != "FG" {
		t.Fatalf("scoring plays not mapped: %+v", rec.ScoringPlays)
	}
	if len(rec.Drives) != 2 || rec.Drives[0].Result != "TD" {
		t.Fatalf("drives not mapped: %+v", rec.Drives)
	}
}

func TestParse_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := Parse([]byte(fixtureXML))
	require.NoError(t, err)
	second, err := Parse([]byte(fixtureXML))
	require.NoError(t, err)

	require.Equal(t, first, second, "parsing the same bytes twice must yield identical records")
}

func TestParse_PassesMalformedNumbersThrough(t *testing.T) {
	t.Parallel()

	const doc = `<fbgame>
  <venue gameid="X"/>
  <team vh="V" id="A" name="A"><totals><rush att="abc" yds="N/A"/></totals></team>
  <team vh="H" id="B" name="B"><totals/></team>
</fbgame>`

	rec, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := rec.Team(0).Totals.Rushing.Att; got != "abc" {
		t.Fatalf("att = %q, want unmodified passthrough", got)
	}
	if got := rec.Team(0).Totals.Rushing.Yards; got != "N/A" {
		t.Fatalf("yds = %q, want marker passthrough", got)
	}
}

func TestParse_MalformedDocument(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
	}{
		{"garbage", `not xml at all`},
		{"no venue", `<fbgame><team vh="V"/><team vh="H"/></fbgame>`},
		{"two venues", `<fbgame><venue/><venue/><team vh="V"/><team vh="H"/></fbgame>`},
		{"one team", `<fbgame><venue/><team vh="V"/></fbgame>`},
		{"three teams", `<fbgame><venue/><team vh="V"/><team vh="H"/><team vh="H"/></fbgame>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Parse([]byte(tc.doc)); !errors.Is(err, ErrMalformedDocument) {
				t.Fatalf("Parse(%s) error = %v, want ErrMalformedDocument", tc.name, err)
			}
		})
	}
}

func TestParse_IgnoresUnknownAttributes(t *testing.T) {
	t.Parallel()

	const doc = `<fbgame futurefield="yes">
  <venue gameid="X" newattr="1"/>
  <team vh="V" id="A" name="A" seed="3"/>
  <team vh="H" id="B" name="B"/>
</fbgame>`

	rec, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Venue.GameID != "X" {
		t.Fatalf("gameid = %q, want X", rec.Venue.GameID)
	}
}
