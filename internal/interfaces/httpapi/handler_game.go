package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/drewburchfield/gridiron/internal/domain/game"
	"github.com/drewburchfield/gridiron/internal/usecase"
)

type statValueDTO struct {
	Text    string `json:"text"`
	Missing bool   `json:"missing,omitempty"`
}

func toStatValueDTO(v game.Value) statValueDTO {
	return statValueDTO{Text: v.String(), Missing: v.Missing}
}

type statCellDTO struct {
	Text      string         `json:"text"`
	Separator string         `json:"separator,omitempty"`
	Values    []statValueDTO `json:"values"`
}

func toStatCellDTO(cell usecase.StatCell) statCellDTO {
	out := statCellDTO{
		Text:      cell.Text(),
		Separator: cell.Separator,
		Values:    make([]statValueDTO, 0, len(cell.Values)),
	}
	for _, v := range cell.Values {
		out.Values = append(out.Values, toStatValueDTO(v))
	}
	return out
}

type comparisonRowDTO struct {
	Label   string      `json:"label"`
	Visitor statCellDTO `json:"visitor"`
	Home    statCellDTO `json:"home"`
}

func (h *Handler) GetTeamComparison(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamComparison")
	defer span.End()

	rows, err := h.boxscoreService.TeamComparisonRows(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "team comparison failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]comparisonRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, comparisonRowDTO{
			Label:   row.Label,
			Visitor: toStatCellDTO(row.Visitor),
			Home:    toStatCellDTO(row.Home),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"rows": out})
}

type playerCellDTO struct {
	Text        string `json:"text"`
	Missing     bool   `json:"missing,omitempty"`
	GroupAbsent bool   `json:"groupAbsent,omitempty"`
}

func toPlayerCellDTO(cell usecase.PlayerCell) playerCellDTO {
	return playerCellDTO{
		Text:        cell.Text(),
		Missing:     !cell.GroupAbsent && cell.Value.Missing,
		GroupAbsent: cell.GroupAbsent,
	}
}

type offenseRowDTO struct {
	Name    string `json:"name"`
	Uniform string `json:"uniform,omitempty"`

	CompAtt   string        `json:"compAtt"`
	PassYards playerCellDTO `json:"passYards"`
	PassTD    playerCellDTO `json:"passTd"`
	PassInt   playerCellDTO `json:"passInt"`
	PassPct   playerCellDTO `json:"passPct"`
	PassLong  playerCellDTO `json:"passLong"`
	PassSacks playerCellDTO `json:"passSacks"`
	RushAtt   playerCellDTO `json:"rushAtt"`
	RushYards playerCellDTO `json:"rushYards"`
	RushAvg   playerCellDTO `json:"rushAvg"`
	RushTD    playerCellDTO `json:"rushTd"`
	RushLong  playerCellDTO `json:"rushLong"`
	RecNo     playerCellDTO `json:"recNo"`
	RecYards  playerCellDTO `json:"recYards"`
	RecAvg    playerCellDTO `json:"recAvg"`
	RecTD     playerCellDTO `json:"recTd"`
	RecLong   playerCellDTO `json:"recLong"`
}

type defenseRowDTO struct {
	Name    string `json:"name"`
	Uniform string `json:"uniform,omitempty"`

	Solo          playerCellDTO `json:"solo"`
	Assist        playerCellDTO `json:"assist"`
	TotalTackles  statValueDTO  `json:"totalTackles"`
	TFLSolo       playerCellDTO `json:"tflSolo"`
	TFLAssist     playerCellDTO `json:"tflAssist"`
	Sacks         playerCellDTO `json:"sacks"`
	SackYards     playerCellDTO `json:"sackYards"`
	BrUp          playerCellDTO `json:"brup"`
	ForcedFum     playerCellDTO `json:"forcedFumbles"`
	FumRecovered  playerCellDTO `json:"fumblesRecovered"`
	Interceptions playerCellDTO `json:"interceptions"`
	IntYards      playerCellDTO `json:"interceptionYards"`
}

// teamIndexFromPath validates the path segment before it can reach the
// projection layer, whose out-of-range contract is a panic.
func teamIndexFromPath(r *http.Request) (int, error) {
	raw := r.PathValue("teamIndex")
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 || idx > 1 {
		return 0, fmt.Errorf("%w: team index must be 0 or 1, got %q", usecase.ErrInvalidInput, raw)
	}
	return idx, nil
}

func (h *Handler) GetTeamOffense(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamOffense")
	defer span.End()

	teamIndex, err := teamIndexFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.boxscoreService.PlayerOffenseRows(ctx, teamIndex)
	if err != nil {
		h.logger.ErrorContext(ctx, "offense rows failed", "team_index", teamIndex, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]offenseRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, offenseRowDTO{
			Name:      row.Name,
			Uniform:   row.Uniform,
			CompAtt:   row.CompAtt,
			PassYards: toPlayerCellDTO(row.PassYards),
			PassTD:    toPlayerCellDTO(row.PassTD),
			PassInt:   toPlayerCellDTO(row.PassInt),
			PassPct:   toPlayerCellDTO(row.PassPct),
			PassLong:  toPlayerCellDTO(row.PassLong),
			PassSacks: toPlayerCellDTO(row.PassSacks),
			RushAtt:   toPlayerCellDTO(row.RushAtt),
			RushYards: toPlayerCellDTO(row.RushYards),
			RushAvg:   toPlayerCellDTO(row.RushAvg),
			RushTD:    toPlayerCellDTO(row.RushTD),
			RushLong:  toPlayerCellDTO(row.RushLong),
			RecNo:     toPlayerCellDTO(row.RecNo),
			RecYards:  toPlayerCellDTO(row.RecYards),
			RecAvg:    toPlayerCellDTO(row.RecAvg),
			RecTD:     toPlayerCellDTO(row.RecTD),
			RecLong:   toPlayerCellDTO(row.RecLong),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"teamIndex": teamIndex, "rows": out})
}

func (h *Handler) GetTeamDefense(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamDefense")
	defer span.End()

	teamIndex, err := teamIndexFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.boxscoreService.PlayerDefenseRows(ctx, teamIndex)
	if err != nil {
		h.logger.ErrorContext(ctx, "defense rows failed", "team_index", teamIndex, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]defenseRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, defenseRowDTO{
			Name:          row.Name,
			Uniform:       row.Uniform,
			Solo:          toPlayerCellDTO(row.Solo),
			Assist:        toPlayerCellDTO(row.Assist),
			TotalTackles:  toStatValueDTO(row.TotalTackles),
			TFLSolo:       toPlayerCellDTO(row.TFLSolo),
			TFLAssist:     toPlayerCellDTO(row.TFLAssist),
			Sacks:         toPlayerCellDTO(row.Sacks),
			SackYards:     toPlayerCellDTO(row.SackYards),
			BrUp:          toPlayerCellDTO(row.BrUp),
			ForcedFum:     toPlayerCellDTO(row.ForcedFum),
			FumRecovered:  toPlayerCellDTO(row.FumRecovered),
			Interceptions: toPlayerCellDTO(row.Interceptions),
			IntYards:      toPlayerCellDTO(row.IntYards),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"teamIndex": teamIndex, "rows": out})
}

type venueSummaryDTO struct {
	GameID     statValueDTO `json:"gameId"`
	Date       statValueDTO `json:"date"`
	Location   statValueDTO `json:"location"`
	Stadium    statValueDTO `json:"stadium"`
	Start      statValueDTO `json:"start"`
	End        statValueDTO `json:"end"`
	Duration   statValueDTO `json:"duration"`
	Attendance statValueDTO `json:"attendance"`
	Temp       statValueDTO `json:"temp"`
	Wind       statValueDTO `json:"wind"`
	Weather    statValueDTO `json:"weather"`
}

type teamSummaryDTO struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Side          string       `json:"side"`
	Color         string       `json:"color"`
	PerPeriod     []int        `json:"perPeriod"`
	Final         int          `json:"final"`
	ReportedScore statValueDTO `json:"reportedScore"`
}

type gameSummaryDTO struct {
	Source      string           `json:"source,omitempty"`
	GeneratedAt string           `json:"generatedAt,omitempty"`
	Venue       venueSummaryDTO  `json:"venue"`
	Teams       []teamSummaryDTO `json:"teams"`
}

func (h *Handler) GetGameSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameSummary")
	defer span.End()

	summary, err := h.boxscoreService.GameSummary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "game summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := gameSummaryDTO{
		Source:      summary.Source,
		GeneratedAt: summary.GeneratedAt,
		Venue: venueSummaryDTO{
			GameID:     toStatValueDTO(summary.Venue.GameID),
			Date:       toStatValueDTO(summary.Venue.Date),
			Location:   toStatValueDTO(summary.Venue.Location),
			Stadium:    toStatValueDTO(summary.Venue.Stadium),
			Start:      toStatValueDTO(summary.Venue.Start),
			End:        toStatValueDTO(summary.Venue.End),
			Duration:   toStatValueDTO(summary.Venue.Duration),
			Attendance: toStatValueDTO(summary.Venue.Attendance),
			Temp:       toStatValueDTO(summary.Venue.Temp),
			Wind:       toStatValueDTO(summary.Venue.Wind),
			Weather:    toStatValueDTO(summary.Venue.Weather),
		},
		Teams: make([]teamSummaryDTO, 0, len(summary.Teams)),
	}
	for _, team := range summary.Teams {
		out.Teams = append(out.Teams, teamSummaryDTO{
			ID:            team.ID,
			Name:          team.Name,
			Side:          team.Side,
			Color:         team.Color,
			PerPeriod:     team.Periods.PerPeriod,
			Final:         team.Periods.Final,
			ReportedScore: toStatValueDTO(team.ReportedScore),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

type scoringPlayDTO struct {
	Period       string `json:"period"`
	Clock        string `json:"clock"`
	TeamID       string `json:"teamId"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	VisitorScore string `json:"visitorScore"`
	HomeScore    string `json:"homeScore"`
}

func (h *Handler) GetScoringPlays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoringPlays")
	defer span.End()

	plays, err := h.boxscoreService.ScoringPlays(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "scoring plays failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]scoringPlayDTO, 0, len(plays))
	for _, p := range plays {
		out = append(out, scoringPlayDTO{
			Period:       p.Period,
			Clock:        p.Clock,
			TeamID:       p.TeamID,
			Type:         p.Type,
			Description:  p.Description,
			VisitorScore: p.VisitorScore,
			HomeScore:    p.HomeScore,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"plays": out})
}

type driveDTO struct {
	TeamID string `json:"teamId"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Plays  string `json:"plays"`
	Yards  string `json:"yards"`
	Top    string `json:"timeOfPossession"`
	Result string `json:"result"`
}

func (h *Handler) GetDrives(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDrives")
	defer span.End()

	drives, err := h.boxscoreService.Drives(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "drives failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]driveDTO, 0, len(drives))
	for _, d := range drives {
		out = append(out, driveDTO{
			TeamID: d.TeamID,
			Start:  d.Start,
			End:    d.End,
			Plays:  d.Plays,
			Yards:  d.Yards,
			Top:    d.Top,
			Result: d.Result,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"drives": out})
}
