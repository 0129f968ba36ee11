package domain

// AILevel selects the strategy used for a computer-controlled seat.
type AILevel string

const (
	LevelApprentice AILevel = "apprentice"
	LevelSeasoned   AILevel = "seasoned"
	LevelExpert     AILevel = "expert"
	LevelChampion   AILevel = "champion"
)

// Player is one seat's participant: identity, hand, and the belote
// announcement flags for the active round.
type Player struct {
	ID       string
	Name     string
	Position Position
	Team     Team
	IsHuman  bool
	Level    AILevel

	Hand *Hand

	beloteAnnounced   bool
	rebeloteAnnounced bool
}

// NewHumanPlayer creates a human-controlled player at the given seat.
func NewHumanPlayer(id, name string, pos Position) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Position: pos,
		Team:     pos.Team(),
		IsHuman:  true,
		Hand:     NewHand(),
	}
}

// NewAIPlayer creates a computer-controlled player at the given seat.
func NewAIPlayer(id, name string, pos Position, level AILevel) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Position: pos,
		Team:     pos.Team(),
		Level:    level,
		Hand:     NewHand(),
	}
}

// Partner returns the seat of the player's partner.
func (p *Player) Partner() Position {
	return p.Position.Partner()
}

// AnnounceBelote records the first belote announcement of the round.
func (p *Player) AnnounceBelote() {
	p.beloteAnnounced = true
}

// AnnounceRebelote records the second announcement. The +20 bonus is earned
// only when both flags are set at round finalization.
func (p *Player) AnnounceRebelote() {
	p.rebeloteAnnounced = true
}

// BeloteAnnounced reports whether the player has announced belote this round.
func (p *Player) BeloteAnnounced() bool {
	return p.beloteAnnounced
}

// RebeloteAnnounced reports whether the player has announced rebelote this
// round.
func (p *Player) RebeloteAnnounced() bool {
	return p.rebeloteAnnounced
}

// HasCompleteBelote reports whether both announcements were made.
func (p *Player) HasCompleteBelote() bool {
	return p.beloteAnnounced && p.rebeloteAnnounced
}

// ResetForRound clears the hand and announcement flags for a new deal.
func (p *Player) ResetForRound() {
	p.Hand.Clear()
	p.beloteAnnounced = false
	p.rebeloteAnnounced = false
}
