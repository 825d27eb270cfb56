// Package statcrew parses StatCrew-style football box-score XML into the
// domain game record. Parsing is a pure structural translation: attributes
// are carried as strings, nothing is summed or formatted here.
package statcrew

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/drewburchfield/gridiron/internal/domain/game"
)

// Parse converts a full document into a game.Record. It validates the
// minimal shape (one venue block, exactly two team blocks) and fails with
// ErrMalformedDocument otherwise. Unknown attributes and elements are
// ignored, which keeps the parser forward-compatible with feed extensions.
func Parse(raw []byte) (*game.Record, error) {
	var doc document
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrMalformedDocument, err)
	}

	if len(doc.Venues) != 1 {
		return nil, fmt.Errorf("%w: expected 1 venue block, found %d", ErrMalformedDocument, len(doc.Venues))
	}
	if len(doc.Teams) != 2 {
		return nil, fmt.Errorf("%w: expected 2 team blocks, found %d", ErrMalformedDocument, len(doc.Teams))
	}

	rec := &game.Record{
		Source:      doc.Source,
		Version:     doc.Version,
		GeneratedAt: doc.Generated,
		Venue:       mapVenue(doc.Venues[0]),
	}
	for i, t := range doc.Teams {
		rec.Teams[i] = mapTeam(t)
	}
	for _, s := range doc.Scores.Entries {
		rec.ScoringPlays = append(rec.ScoringPlays, game.ScoringPlay{
			Period:       s.Period,
			Clock:        s.Clock,
			TeamID:       s.TeamID,
			Type:         s.Type,
			Description:  s.Description,
			VisitorScore: s.VisitorScore,
			HomeScore:    s.HomeScore,
		})
	}
	for _, d := range doc.Drives.Entries {
		rec.Drives = append(rec.Drives, game.Drive{
			TeamID: d.TeamID,
			Start:  d.Start,
			End:    d.End,
			Plays:  d.Plays,
			Yards:  d.Yards,
			Top:    d.Top,
			Result: d.Result,
		})
	}

	return rec, nil
}

func mapVenue(v venueElem) game.VenueInfo {
	return game.VenueInfo{
		GameID:      v.GameID,
		VisitorID:   v.VisitorID,
		HomeID:      v.HomeID,
		VisitorName: v.VisitorName,
		HomeName:    v.HomeName,
		Date:        v.Date,
		Location:    v.Location,
		Stadium:     v.Stadium,
		Start:       v.Start,
		End:         v.End,
		Duration:    v.Duration,
		Attendance:  v.Attendance,
		Temp:        v.Temp,
		Wind:        v.Wind,
		Weather:     v.Weather,
	}
}

func mapTeam(t teamElem) game.TeamRecord {
	out := game.TeamRecord{
		ID:            t.ID,
		Name:          t.Name,
		Side:          mapSide(t.VH),
		ReportedScore: t.LineScore.Score,
		Totals:        mapTotals(t.Totals),
	}
	for _, p := range t.LineScore.Periods {
		out.LineScore = append(out.LineScore, game.PeriodScore{
			Period: p.Period,
			Score:  p.Score,
		})
	}
	for _, p := range t.Players {
		out.Players = append(out.Players, mapPlayer(p))
	}
	return out
}

func mapSide(vh string) string {
	switch strings.ToUpper(strings.TrimSpace(vh)) {
	case "V":
		return game.SideVisitor
	case "H":
		return game.SideHome
	default:
		return vh
	}
}

func mapPlayer(p playerElem) game.PlayerRecord {
	out := game.PlayerRecord{
		Name:        p.Name,
		ShortName:   p.ShortName,
		Uniform:     p.Uniform,
		Class:       p.Class,
		GamesPlayed: p.GamesPlayed,
		OffensePos:  p.OffensePos,
		DefensePos:  p.DefensePos,
	}
	if p.Pass != nil {
		out.Passing = mapPassing(*p.Pass)
	}
	if p.Rush != nil {
		out.Rushing = mapRushing(*p.Rush)
	}
	if p.Rcv != nil {
		out.Receiving = mapReceiving(*p.Rcv)
	}
	if p.Defense != nil {
		out.Defense = mapDefense(*p.Defense)
	}
	if p.Int != nil {
		out.Interceptions = mapReturn(*p.Int)
	}
	if p.Fumbles != nil {
		out.Fumbles = &game.FumbleStats{No: p.Fumbles.No, Lost: p.Fumbles.Lost}
	}
	if p.PR != nil {
		out.PuntReturns = mapReturn(*p.PR)
	}
	if p.KR != nil {
		out.KickReturns = mapReturn(*p.KR)
	}
	return out
}

func mapTotals(t totalsElem) game.TeamTotals {
	out := game.TeamTotals{}
	if t.FirstDowns != nil {
		out.FirstDowns = &game.FirstDownTotals{
			No:      t.FirstDowns.No,
			Rush:    t.FirstDowns.Rush,
			Pass:    t.FirstDowns.Pass,
			Penalty: t.FirstDowns.Penalty,
		}
	}
	if t.Penalties != nil {
		out.Penalties = &game.PenaltyTotals{No: t.Penalties.No, Yards: t.Penalties.Yards}
	}
	if t.Conversions != nil {
		out.Conversions = &game.ConversionTotals{
			ThirdConv:  t.Conversions.ThirdConv,
			ThirdAtt:   t.Conversions.ThirdAtt,
			FourthConv: t.Conversions.FourthConv,
			FourthAtt:  t.Conversions.FourthAtt,
		}
	}
	if t.Fumbles != nil {
		out.Fumbles = &game.FumbleStats{No: t.Fumbles.No, Lost: t.Fumbles.Lost}
	}
	if t.Misc != nil {
		out.Misc = &game.MiscTotals{
			Yards: t.Misc.Yards,
			Top:   t.Misc.Top,
			Ona:   t.Misc.Ona,
			Onm:   t.Misc.Onm,
			Ptsto: t.Misc.Ptsto,
		}
	}
	if t.RedZone != nil {
		out.RedZone = &game.RedZoneTotals{
			Att:    t.RedZone.Att,
			Scores: t.RedZone.Scores,
			Points: t.RedZone.Points,
			TDRush: t.RedZone.TDRush,
			TDPass: t.RedZone.TDPass,
			FGMade: t.RedZone.FGMade,
		}
	}
	if t.Rush != nil {
		out.Rushing = mapRushing(*t.Rush)
	}
	if t.Pass != nil {
		out.Passing = mapPassing(*t.Pass)
	}
	if t.Rcv != nil {
		out.Receiving = mapReceiving(*t.Rcv)
	}
	if t.Punt != nil {
		out.Punting = &game.PuntStats{
			No:       t.Punt.No,
			Yards:    t.Punt.Yards,
			Avg:      t.Punt.Avg,
			Long:     t.Punt.Long,
			Blocked:  t.Punt.Blocked,
			TB:       t.Punt.TB,
			FC:       t.Punt.FC,
			Plus50:   t.Punt.Plus50,
			Inside20: t.Punt.Inside20,
		}
	}
	if t.KO != nil {
		out.Kickoffs = &game.KickoffTotals{
			No:    t.KO.No,
			Yards: t.KO.Yards,
			OB:    t.KO.OB,
			TB:    t.KO.TB,
		}
	}
	if t.FG != nil {
		out.FieldGoals = &game.FieldGoalStats{
			Made:    t.FG.Made,
			Att:     t.FG.Att,
			Long:    t.FG.Long,
			Blocked: t.FG.Blocked,
		}
	}
	if t.PAT != nil {
		out.PointsAfter = &game.PointAfterStats{
			KickMade: t.PAT.KickMade,
			KickAtt:  t.PAT.KickAtt,
			PassMade: t.PAT.PassMade,
			PassAtt:  t.PAT.PassAtt,
			RushMade: t.PAT.RushMade,
			RushAtt:  t.PAT.RushAtt,
		}
	}
	if t.Defense != nil {
		out.Defense = mapDefense(*t.Defense)
	}
	if t.KR != nil {
		out.KickReturns = mapReturn(*t.KR)
	}
	if t.PR != nil {
		out.PuntReturns = mapReturn(*t.PR)
	}
	if t.IR != nil {
		out.IntReturns = mapReturn(*t.IR)
	}
	if t.TotalOffense != nil {
		out.TotalOffense = &game.TotalOffenseStats{
			Plays: t.TotalOffense.Plays,
			Yards: t.TotalOffense.Yards,
			Avg:   t.TotalOffense.Avg,
		}
	}
	if t.Scoring != nil {
		out.Scoring = &game.ScoringTotals{
			TD:      t.Scoring.TD,
			FG:      t.Scoring.FG,
			PATKick: t.Scoring.PATKick,
		}
	}
	return out
}

func mapRushing(e rushElem) *game.RushingStats {
	return &game.RushingStats{
		Att:   e.Att,
		Yards: e.Yards,
		Gain:  e.Gain,
		Loss:  e.Loss,
		TD:    e.TD,
		Long:  e.Long,
		Avg:   e.Avg,
	}
}

func mapPassing(e passElem) *game.PassingStats {
	return &game.PassingStats{
		Comp:      e.Comp,
		Att:       e.Att,
		Int:       e.Int,
		Yards:     e.Yards,
		TD:        e.TD,
		Long:      e.Long,
		Pct:       e.Pct,
		Sacks:     e.Sacks,
		SackYards: e.SackYards,
	}
}

func mapReceiving(e rcvElem) *game.ReceivingStats {
	return &game.ReceivingStats{
		No:    e.No,
		Yards: e.Yards,
		TD:    e.TD,
		Long:  e.Long,
		Avg:   e.Avg,
	}
}

func mapDefense(e defenseElem) *game.DefenseStats {
	return &game.DefenseStats{
		TackUA:    e.TackUA,
		TackA:     e.TackA,
		TotTack:   e.TotTack,
		TFLUA:     e.TFLUA,
		TFLA:      e.TFLA,
		TFLYards:  e.TFLYards,
		Sacks:     e.Sacks,
		SackYards: e.SackYards,
		BrUp:      e.BrUp,
		FF:        e.FF,
		FR:        e.FR,
		FRYards:   e.FRYards,
		IntNo:     e.IntNo,
		IntYards:  e.IntYards,
		QBH:       e.QBH,
		Blocked:   e.Blocked,
	}
}

func mapReturn(e returnElem) *game.ReturnStats {
	return &game.ReturnStats{
		No:    e.No,
		Yards: e.Yards,
		TD:    e.TD,
		Long:  e.Long,
	}
}
