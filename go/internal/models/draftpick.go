package models

// DraftSelection is one completed selection in a season's draft.
type DraftSelection struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name,omitempty"`
	Round      int    `json:"round"`
	Slot       int    `json:"draft_slot"`
	PickNo     int    `json:"pick_no"`
	RosterID   int    `json:"roster_id"`
	PickedBy   string `json:"picked_by,omitempty"`
}

// DraftBoard is the draft of a single season: who held which slot and who
// was taken with each (round, slot).
type DraftBoard struct {
	Season       string           `json:"season"`
	LeagueID     string           `json:"league_id"`
	DraftID      string           `json:"draft_id"`
	Status       string           `json:"status"`
	SlotByUser   map[string]int   `json:"slot_by_user,omitempty"`
	SlotByRoster map[int]int      `json:"slot_by_roster,omitempty"`
	Selections   []DraftSelection `json:"selections,omitempty"`
}

// Drafted reports whether the season's draft has already produced players.
func (b DraftBoard) Drafted() bool {
	return len(b.Selections) > 0
}

// SlotFor returns the draft slot of a roster, looked up by owning user first
// and by roster id second.
func (b DraftBoard) SlotFor(userID string, rosterID int) (int, bool) {
	if userID != "" {
		if slot, ok := b.SlotByUser[userID]; ok && slot > 0 {
			return slot, true
		}
	}
	if slot, ok := b.SlotByRoster[rosterID]; ok && slot > 0 {
		return slot, true
	}
	return 0, false
}

// DraftBoards holds draft boards keyed by season.
type DraftBoards map[string]DraftBoard

// PickRange buckets a draft slot into early, mid or late.
type PickRange string

const (
	PickRangeEarly PickRange = "Early"
	PickRangeMid   PickRange = "Mid"
	PickRangeLate  PickRange = "Late"
)

// PickRangeForSlot buckets a slot: 1-4 early, 9+ late, anything else
// (including unknown slot 0) mid.
func PickRangeForSlot(slot int) PickRange {
	switch {
	case slot >= 1 && slot <= 4:
		return PickRangeEarly
	case slot >= 9:
		return PickRangeLate
	default:
		return PickRangeMid
	}
}

// PickResolution is the state a traded draft pick resolved to.
type PickResolution string

const (
	PickResolvedToPlayer     PickResolution = "player"
	PickResolvedToProxyValue PickResolution = "proxy"
)
