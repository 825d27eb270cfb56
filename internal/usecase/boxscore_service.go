package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/drewburchfield/gridiron/internal/domain/game"
	"github.com/drewburchfield/gridiron/internal/platform/cache"
	"github.com/drewburchfield/gridiron/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

// DefaultTeamColor is used when a team name has no palette entry.
const DefaultTeamColor = "#000000"

// teamPlaceholderName is the pseudo-player the feed uses for team-level
// entries (team fumbles, unattributed yardage). It never renders as a row
// even when it carries stat groups.
const teamPlaceholderName = "TEAM"

// recordSource hands out the most recently committed game record.
type recordSource interface {
	Current() (*LoadedGame, bool)
}

// BoxscoreService projects a loaded game record into display-ready rows.
// Every projection is a pure read over the record; results are cached per
// load generation.
type BoxscoreService struct {
	source recordSource
	cache  *cache.Store
	colors map[string]string
	logger *logging.Logger
}

func NewBoxscoreService(source recordSource, store *cache.Store, teamColors map[string]string, logger *logging.Logger) *BoxscoreService {
	if logger == nil {
		logger = logging.Default()
	}
	colors := make(map[string]string, len(teamColors))
	for name, color := range teamColors {
		colors[strings.TrimSpace(name)] = strings.TrimSpace(color)
	}

	return &BoxscoreService{
		source: source,
		cache:  store,
		colors: colors,
		logger: logger,
	}
}

// StatCell is one resolved comparison cell. Composite rows carry two values
// joined by Separator; each value keeps its own missing flag.
type StatCell struct {
	Values    []game.Value
	Separator string
}

func (c StatCell) Text() string {
	parts := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, c.Separator)
}

type ComparisonRow struct {
	Label   string
	Visitor StatCell
	Home    StatCell
}

type comparisonSpec struct {
	label     string
	paths     [][]string
	separator string
}

// comparisonCatalog is the fixed, ordered set of team comparison rows. The
// three rows after "1st Downs" break the first-down count down by how it was
// earned.
var comparisonCatalog = []comparisonSpec{
	{label: "1st Downs", paths: [][]string{{"firstdowns", "no"}}},
	{label: "Rushing", paths: [][]string{{"firstdowns", "rush"}}},
	{label: "Passing", paths: [][]string{{"firstdowns", "pass"}}},
	{label: "Penalty", paths: [][]string{{"firstdowns", "penalty"}}},
	{label: "Rushing Attempts", paths: [][]string{{"rush", "att"}}},
	{label: "Rushing Yards", paths: [][]string{{"rush", "yds"}}},
	{label: "Passing C/ATT", paths: [][]string{{"pass", "comp"}, {"pass", "att"}}, separator: "/"},
	{label: "Passing Yards", paths: [][]string{{"pass", "yds"}}},
	{label: "Interceptions Thrown", paths: [][]string{{"pass", "int"}}},
	{label: "Total Plays", paths: [][]string{{"totoff", "plays"}}},
	{label: "Total Yards", paths: [][]string{{"totoff", "yards"}}},
	{label: "Fumbles-Lost", paths: [][]string{{"fumbles", "no"}, {"fumbles", "lost"}}, separator: "-"},
	{label: "Penalties-Yards", paths: [][]string{{"penalties", "no"}, {"penalties", "yds"}}, separator: "-"},
	{label: "Punts-Average", paths: [][]string{{"punt", "no"}, {"punt", "avg"}}, separator: "-"},
	{label: "3rd Down Conversions", paths: [][]string{{"conversions", "thirdconv"}, {"conversions", "thirdatt"}}, separator: "-"},
	{label: "4th Down Conversions", paths: [][]string{{"conversions", "fourthconv"}, {"conversions", "fourthatt"}}, separator: "-"},
	{label: "Red Zone Scores-Chances", paths: [][]string{{"redzone", "scores"}, {"redzone", "att"}}, separator: "-"},
	{label: "Time of Possession", paths: [][]string{{"misc", "top"}}},
}

// ResolveFieldPath descends into a team's totals along an ordered key path.
// Any absent key, a blank value, or the not-available marker resolves to the
// missing sentinel. It never fails.
func ResolveFieldPath(totals *game.TeamTotals, path ...string) game.Value {
	if totals == nil || len(path) != 2 {
		return game.Missing
	}
	group, ok := totals.Group(path[0])
	if !ok {
		return game.Missing
	}
	raw, ok := group.Field(path[1])
	if !ok {
		return game.Missing
	}
	return game.ValueOf(raw)
}

// TeamComparisonRows builds the side-by-side totals table, visitor first.
func (s *BoxscoreService) TeamComparisonRows(ctx context.Context) ([]ComparisonRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoxscoreService.TeamComparisonRows")
	defer span.End()

	loaded, ok := s.source.Current()
	if !ok {
		return nil, fmt.Errorf("%w: no game document loaded", ErrNotFound)
	}

	rows, err := s.cached(ctx, fmt.Sprintf("comparison:%d", loaded.Generation), func(context.Context) (any, error) {
		return buildComparisonRows(loaded.Record), nil
	})
	if err != nil {
		return nil, err
	}
	return rows.([]ComparisonRow), nil
}

func buildComparisonRows(rec *game.Record) []ComparisonRow {
	out := make([]ComparisonRow, 0, len(comparisonCatalog))
	for _, spec := range comparisonCatalog {
		row := ComparisonRow{
			Label:   spec.label,
			Visitor: resolveCell(&rec.Team(0).Totals, spec),
			Home:    resolveCell(&rec.Team(1).Totals, spec),
		}
		out = append(out, row)
	}
	return out
}

func resolveCell(totals *game.TeamTotals, spec comparisonSpec) StatCell {
	cell := StatCell{Separator: spec.separator}
	for _, path := range spec.paths {
		cell.Values = append(cell.Values, ResolveFieldPath(totals, path...))
	}
	return cell
}

// PlayerCell is one player-table cell. A cell belonging to an absent stat
// group renders as a dash for the whole group, which is not the same as a
// per-field missing value inside a present group.
type PlayerCell struct {
	Value       game.Value
	GroupAbsent bool
}

func (c PlayerCell) Text() string {
	if c.GroupAbsent {
		return "-"
	}
	return c.Value.String()
}

type PlayerOffenseRow struct {
	Name    string
	Uniform string

	CompAtt   string
	PassYards PlayerCell
	PassTD    PlayerCell
	PassInt   PlayerCell
	PassPct   PlayerCell
	PassLong  PlayerCell
	PassSacks PlayerCell

	RushAtt   PlayerCell
	RushYards PlayerCell
	RushAvg   PlayerCell
	RushTD    PlayerCell
	RushLong  PlayerCell

	RecNo    PlayerCell
	RecYards PlayerCell
	RecAvg   PlayerCell
	RecTD    PlayerCell
	RecLong  PlayerCell
}

type PlayerDefenseRow struct {
	Name    string
	Uniform string

	Solo          PlayerCell
	Assist        PlayerCell
	TotalTackles  game.Value
	TFLSolo       PlayerCell
	TFLAssist     PlayerCell
	Sacks         PlayerCell
	SackYards     PlayerCell
	BrUp          PlayerCell
	ForcedFum     PlayerCell
	FumRecovered  PlayerCell
	Interceptions PlayerCell
	IntYards      PlayerCell
}

// PlayerOffenseRows lists the players on one team classified as offense, in
// feed order. teamIndex outside {0,1} is a caller bug and panics.
func (s *BoxscoreService) PlayerOffenseRows(ctx context.Context, teamIndex int) ([]PlayerOffenseRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoxscoreService.PlayerOffenseRows")
	defer span.End()

	loaded, ok := s.source.Current()
	if !ok {
		return nil, fmt.Errorf("%w: no game document loaded", ErrNotFound)
	}

	rows, err := s.cached(ctx, fmt.Sprintf("offense:%d:%d", loaded.Generation, teamIndex), func(context.Context) (any, error) {
		return buildOffenseRows(loaded.Record, teamIndex), nil
	})
	if err != nil {
		return nil, err
	}
	return rows.([]PlayerOffenseRow), nil
}

func buildOffenseRows(rec *game.Record, teamIndex int) []PlayerOffenseRow {
	team := rec.Team(teamIndex)
	out := make([]PlayerOffenseRow, 0, len(team.Players))
	for i := range team.Players {
		p := &team.Players[i]
		if p.Name == teamPlaceholderName || !p.HasOffenseStats() {
			continue
		}

		row := PlayerOffenseRow{
			Name:    FormatPlayerName(p.Name, p.Position()),
			Uniform: p.Uniform,
			CompAtt: "-",
		}
		if p.Passing != nil {
			row.CompAtt = p.Passing.Comp + "/" + p.Passing.Att
		}
		row.PassYards = groupCell(p, "pass", "yds")
		row.PassTD = groupCell(p, "pass", "td")
		row.PassInt = groupCell(p, "pass", "int")
		row.PassPct = groupCell(p, "pass", "pct")
		row.PassLong = groupCell(p, "pass", "long")
		row.PassSacks = groupCell(p, "pass", "sacks")
		row.RushAtt = groupCell(p, "rush", "att")
		row.RushYards = groupCell(p, "rush", "yds")
		row.RushAvg = groupCell(p, "rush", "avg")
		row.RushTD = groupCell(p, "rush", "td")
		row.RushLong = groupCell(p, "rush", "long")
		row.RecNo = groupCell(p, "rcv", "no")
		row.RecYards = groupCell(p, "rcv", "yds")
		row.RecAvg = groupCell(p, "rcv", "avg")
		row.RecTD = groupCell(p, "rcv", "td")
		row.RecLong = groupCell(p, "rcv", "long")
		out = append(out, row)
	}
	return out
}

// PlayerDefenseRows is the defensive counterpart of PlayerOffenseRows.
func (s *BoxscoreService) PlayerDefenseRows(ctx context.Context, teamIndex int) ([]PlayerDefenseRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoxscoreService.PlayerDefenseRows")
	defer span.End()

	loaded, ok := s.source.Current()
	if !ok {
		return nil, fmt.Errorf("%w: no game document loaded", ErrNotFound)
	}

	rows, err := s.cached(ctx, fmt.Sprintf("defense:%d:%d", loaded.Generation, teamIndex), func(context.Context) (any, error) {
		return buildDefenseRows(loaded.Record, teamIndex), nil
	})
	if err != nil {
		return nil, err
	}
	return rows.([]PlayerDefenseRow), nil
}

func buildDefenseRows(rec *game.Record, teamIndex int) []PlayerDefenseRow {
	team := rec.Team(teamIndex)
	out := make([]PlayerDefenseRow, 0, len(team.Players))
	for i := range team.Players {
		p := &team.Players[i]
		if p.Name == teamPlaceholderName || !p.HasDefenseStats() {
			continue
		}

		row := PlayerDefenseRow{
			Name:    FormatPlayerName(p.Name, p.Position()),
			Uniform: p.Uniform,

			Solo:          groupCell(p, "defense", "tackua"),
			Assist:        groupCell(p, "defense", "tacka"),
			TFLSolo:       groupCell(p, "defense", "tflua"),
			TFLAssist:     groupCell(p, "defense", "tfla"),
			Sacks:         groupCell(p, "defense", "sacks"),
			SackYards:     groupCell(p, "defense", "sackyds"),
			BrUp:          groupCell(p, "defense", "brup"),
			ForcedFum:     groupCell(p, "defense", "ff"),
			FumRecovered:  groupCell(p, "defense", "fr"),
			Interceptions: groupCell(p, "int", "no"),
			IntYards:      groupCell(p, "int", "yds"),
		}
		row.TotalTackles = totalTackles(row.Solo, row.Assist, groupCell(p, "defense", "tot_tack"))
		out = append(out, row)
	}
	return out
}

// totalTackles sums the two tackle components. The feed carries its own
// tot_tack aggregate; that reported value is only trusted when the
// components cannot be summed.
func totalTackles(solo, assist, reported PlayerCell) game.Value {
	s, okS := solo.Value.Int()
	a, okA := assist.Value.Int()
	if okS && okA {
		return game.Value{Raw: strconv.Itoa(s + a)}
	}
	if reported.GroupAbsent {
		return game.Missing
	}
	return reported.Value
}

func groupCell(p *game.PlayerRecord, groupKey, field string) PlayerCell {
	group, ok := p.Group(groupKey)
	if !ok {
		return PlayerCell{GroupAbsent: true, Value: game.Missing}
	}
	raw, ok := group.Field(field)
	if !ok {
		return PlayerCell{Value: game.Missing}
	}
	return PlayerCell{Value: game.ValueOf(raw)}
}

// PeriodTotals is a team's per-period scoring with the summed final.
type PeriodTotals struct {
	PerPeriod []int
	Final     int
}

// ComputePeriodTotals sums the linescore. Unparsable period entries count as
// zero so a garbled period cannot poison the sum.
func ComputePeriodTotals(team *game.TeamRecord) PeriodTotals {
	out := PeriodTotals{PerPeriod: make([]int, 0, len(team.LineScore))}
	for _, p := range team.LineScore {
		n := game.ValueOf(p.Score).IntOrZero()
		out.PerPeriod = append(out.PerPeriod, n)
		out.Final += n
	}
	return out
}

// VenueSummary is the venue block with the missing-value policy applied per
// field.
type VenueSummary struct {
	GameID     game.Value
	Date       game.Value
	Location   game.Value
	Stadium    game.Value
	Start      game.Value
	End        game.Value
	Duration   game.Value
	Attendance game.Value
	Temp       game.Value
	Wind       game.Value
	Weather    game.Value
}

type TeamSummary struct {
	ID            string
	Name          string
	Side          string
	Color         string
	Periods       PeriodTotals
	ReportedScore game.Value
}

// GameSummary is the top-level view: venue plus both team summaries in
// visitor-home order.
type GameSummary struct {
	Source      string
	GeneratedAt string
	Venue       VenueSummary
	Teams       [2]TeamSummary
}

func (s *BoxscoreService) GameSummary(ctx context.Context) (*GameSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoxscoreService.GameSummary")
	defer span.End()

	loaded, ok := s.source.Current()
	if !ok {
		return nil, fmt.Errorf("%w: no game document loaded", ErrNotFound)
	}
	rec := loaded.Record

	summary := &GameSummary{
		Source:      rec.Source,
		GeneratedAt: rec.GeneratedAt,
		Venue:       buildVenueSummary(&rec.Venue),
	}
	for i := 0; i < 2; i++ {
		team := rec.Team(i)
		totals := ComputePeriodTotals(team)
		reported := game.ValueOf(team.ReportedScore)
		if n, ok := reported.Int(); ok && n != totals.Final {
			// Computed sum wins for display; the disagreement is a feed
			// data-quality problem worth surfacing.
			s.logger.WarnContext(ctx, "linescore sum disagrees with reported score",
				"team", team.ID,
				"computed", totals.Final,
				"reported", n,
			)
		}
		summary.Teams[i] = TeamSummary{
			ID:            team.ID,
			Name:          team.Name,
			Side:          team.Side,
			Color:         s.TeamColor(team.Name),
			Periods:       totals,
			ReportedScore: reported,
		}
	}
	return summary, nil
}

func buildVenueSummary(v *game.VenueInfo) VenueSummary {
	return VenueSummary{
		GameID:     game.ValueOf(v.GameID),
		Date:       game.ValueOf(v.Date),
		Location:   game.ValueOf(v.Location),
		Stadium:    game.ValueOf(v.Stadium),
		Start:      game.ValueOf(v.Start),
		End:        game.ValueOf(v.End),
		Duration:   game.ValueOf(v.Duration),
		Attendance: game.ValueOf(v.Attendance),
		Temp:       game.ValueOf(v.Temp),
		Wind:       game.ValueOf(v.Wind),
		Weather:    game.ValueOf(v.Weather),
	}
}

// ScoringPlays returns the scores block in feed order.
func (s *BoxscoreService) ScoringPlays(ctx context.Context) ([]game.ScoringPlay, error) {
	_, span := startUsecaseSpan(ctx, "usecase.BoxscoreService.ScoringPlays")
	defer span.End()

	loaded, ok := s.source.Current()
	if !ok {
		return nil, fmt.Errorf("%w: no game document loaded", ErrNotFound)
	}
	return loaded.Record.ScoringPlays, nil
}

// Drives returns the drives block in feed order.
func (s *BoxscoreService) Drives(ctx context.Context) ([]game.Drive, error) {
	_, span := startUsecaseSpan(ctx, "usecase.BoxscoreService.Drives")
	defer span.End()

	loaded, ok := s.source.Current()
	if !ok {
		return nil, fmt.Errorf("%w: no game document loaded", ErrNotFound)
	}
	return loaded.Record.Drives, nil
}

// TeamColor resolves a display color from the injected palette.
func (s *BoxscoreService) TeamColor(teamName string) string {
	if color, ok := s.colors[strings.TrimSpace(teamName)]; ok && color != "" {
		return color
	}
	return DefaultTeamColor
}

// WarmProjections precomputes the row projections for a freshly committed
// load so first readers hit the cache. Best effort.
func (s *BoxscoreService) WarmProjections(ctx context.Context, loaded *LoadedGame) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoxscoreService.WarmProjections")
	defer span.End()

	if loaded == nil || s.cache == nil {
		return
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		_, _ = s.TeamComparisonRows(ctx)
	})
	for teamIndex := 0; teamIndex < 2; teamIndex++ {
		idx := teamIndex
		wg.Go(func() {
			_, _ = s.PlayerOffenseRows(ctx, idx)
		})
		wg.Go(func() {
			_, _ = s.PlayerDefenseRows(ctx, idx)
		})
	}
	if rec := wg.WaitAndRecover(); rec != nil {
		s.logger.ErrorContext(ctx, "projection warm-up panicked", "panic", rec.Value)
	}
}

// InvalidateGeneration drops cached projections for a superseded load. The
// TTL would reclaim them anyway; this just frees them eagerly.
func (s *BoxscoreService) InvalidateGeneration(ctx context.Context, generation uint64) {
	if s.cache == nil || generation == 0 {
		return
	}
	s.cache.Delete(ctx, fmt.Sprintf("comparison:%d", generation))
	s.cache.DeletePrefix(ctx, fmt.Sprintf("offense:%d:", generation))
	s.cache.DeletePrefix(ctx, fmt.Sprintf("defense:%d:", generation))
}

func (s *BoxscoreService) cached(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.cache == nil {
		return loader(ctx)
	}
	return s.cache.GetOrLoad(ctx, key, loader)
}

// FormatPlayerName turns the feed's "Last, First" into "First Last (POS)".
// Names without a comma (e.g. the TEAM placeholder) pass through unchanged.
func FormatPlayerName(name, position string) string {
	last, first, found := strings.Cut(name, ",")
	if !found {
		return name
	}
	formatted := strings.TrimSpace(first) + " " + strings.TrimSpace(last)
	if position != "" {
		formatted += " (" + position + ")"
	}
	return formatted
}
