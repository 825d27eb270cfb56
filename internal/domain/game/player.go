package game

// PlayerRecord is one player entry under a team. Stat groups the feed did not
// emit for the player stay nil; the projection layer renders absent groups as
// a dash, not as per-field missing values.
type PlayerRecord struct {
	Name        string
	ShortName   string
	Uniform     string
	Class       string
	GamesPlayed string

	// OffensePos/DefensePos come from the opos/dpos attributes; either or
	// both may be empty.
	OffensePos string
	DefensePos string

	Passing       *PassingStats
	Rushing       *RushingStats
	Receiving     *ReceivingStats
	Defense       *DefenseStats
	Interceptions *ReturnStats
	Fumbles       *FumbleStats
	PuntReturns   *ReturnStats
	KickReturns   *ReturnStats
}

// Position prefers the offensive position code.
func (p *PlayerRecord) Position() string {
	if p.OffensePos != "" {
		return p.OffensePos
	}
	return p.DefensePos
}

// HasOffenseStats classifies the player as an offense row. Derived from which
// groups are populated, never stored.
func (p *PlayerRecord) HasOffenseStats() bool {
	return p.Passing != nil || p.Rushing != nil || p.Receiving != nil
}

// HasDefenseStats classifies the player as a defense row.
func (p *PlayerRecord) HasDefenseStats() bool {
	return p.Defense != nil || p.Interceptions != nil || p.Fumbles != nil
}

// Group resolves a player stat group by its feed key. Absent groups return
// ok=false so callers can distinguish a missing group from a blank field.
func (p *PlayerRecord) Group(key string) (FieldSet, bool) {
	var fs FieldSet
	switch key {
	case "pass":
		if p.Passing != nil {
			fs = p.Passing
		}
	case "rush":
		if p.Rushing != nil {
			fs = p.Rushing
		}
	case "rcv":
		if p.Receiving != nil {
			fs = p.Receiving
		}
	case "defense":
		if p.Defense != nil {
			fs = p.Defense
		}
	case "int":
		if p.Interceptions != nil {
			fs = p.Interceptions
		}
	case "fumbles":
		if p.Fumbles != nil {
			fs = p.Fumbles
		}
	case "pr":
		if p.PuntReturns != nil {
			fs = p.PuntReturns
		}
	case "kr":
		if p.KickReturns != nil {
			fs = p.KickReturns
		}
	}
	if fs == nil {
		return nil, false
	}
	return fs, true
}
