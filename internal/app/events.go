package app

import "belote/internal/domain"

// EventKind identifies emitted game events for Nakama dispatch.
type EventKind string

const (
	EventRoundStarted    EventKind = "round_started"
	EventHandDealt       EventKind = "hand_dealt"
	EventCardPlayed      EventKind = "card_played"
	EventBeloteAnnounced EventKind = "belote_announced"
	EventTrickCompleted  EventKind = "trick_completed"
	EventRoundCompleted  EventKind = "round_completed"
	EventGameEnded       EventKind = "game_ended"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type TeamScores struct {
	NS int `json:"ns"`
	EW int `json:"ew"`
}

type RoundStartedPayload struct {
	Round       int             `json:"round"`
	Trump       domain.Suit     `json:"trump"`
	Dealer      domain.Position `json:"dealer"`
	FirstLeader domain.Position `json:"firstLeader"`
	Scores      TeamScores      `json:"scores"`
}

type HandDealtPayload struct {
	UserID   string          `json:"userId"`
	Position domain.Position `json:"position"`
	Hand     []domain.Card   `json:"hand"`
}

type CardPlayedPayload struct {
	UserID       string              `json:"userId"`
	Position     domain.Position     `json:"position"`
	Card         domain.Card         `json:"card"`
	Announcement domain.Announcement `json:"announcement,omitempty"`
	NextPlayer   domain.Position     `json:"nextPlayer,omitempty"`
}

type BeloteAnnouncedPayload struct {
	UserID       string              `json:"userId"`
	Position     domain.Position     `json:"position"`
	Announcement domain.Announcement `json:"announcement"`
}

type TrickCompletedPayload struct {
	Trick      int             `json:"trick"`
	Winner     domain.Position `json:"winner"`
	Points     int             `json:"points"`
	NextLeader domain.Position `json:"nextLeader,omitempty"`
}

type TeamRoundResult struct {
	CardPoints     int `json:"cardPoints"`
	BeloteBonus    int `json:"beloteBonus"`
	LastTrickBonus int `json:"lastTrickBonus"`
	Total          int `json:"total"`
}

type RoundCompletedPayload struct {
	Round   int                             `json:"round"`
	Results map[domain.Team]TeamRoundResult `json:"results"`
	Scores  TeamScores                      `json:"scores"`
}

type GameEndedPayload struct {
	Winner domain.Team `json:"winner"`
	Scores TeamScores  `json:"scores"`
}
