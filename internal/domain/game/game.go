package game

import "fmt"

const (
	SideVisitor = "visitor"
	SideHome    = "home"
)

// Record is the fully parsed representation of one game's box score. It is
// built once per document load and never mutated afterwards.
type Record struct {
	Source      string
	Version     string
	GeneratedAt string

	Venue VenueInfo
	Teams [2]TeamRecord

	ScoringPlays []ScoringPlay
	Drives       []Drive
}

// Team returns the team at index 0 (visitor) or 1 (home). Any other index is
// a caller bug, not a data condition.
func (r *Record) Team(index int) *TeamRecord {
	if index < 0 || index > 1 {
		panic(fmt.Sprintf("game: team index %d out of range [0,1]", index))
	}
	return &r.Teams[index]
}

// VenueInfo carries the venue block attributes. All fields are free-form
// strings from the feed; nothing here is coerced.
type VenueInfo struct {
	GameID      string
	VisitorID   string
	HomeID      string
	VisitorName string
	HomeName    string
	Date        string
	Location    string
	Stadium     string
	Start       string
	End         string
	Duration    string
	Attendance  string
	Temp        string
	Wind        string
	Weather     string
}

type TeamRecord struct {
	ID   string
	Name string
	Side string

	// LineScore is the per-period scoring in feed order. ReportedScore is the
	// feed's own redundant aggregate and may disagree with the summed periods.
	LineScore     []PeriodScore
	ReportedScore string

	Totals  TeamTotals
	Players []PlayerRecord
}

type PeriodScore struct {
	Period string
	Score  string
}

// ScoringPlay is one entry of the scores block, attributes passed through.
type ScoringPlay struct {
	Period       string
	Clock        string
	TeamID       string
	Type         string
	Description  string
	VisitorScore string
	HomeScore    string
}

// Drive is one entry of the drives block.
type Drive struct {
	TeamID string
	Start  string
	End    string
	Plays  string
	Yards  string
	Top    string
	Result string
}
