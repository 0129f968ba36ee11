package nakama

import (
	"belote/internal/domain"
)

// Wire messages exchanged with clients. Everything on this surface is JSON;
// the domain types carry their own tags.

// MatchLabel is the queryable listing entry for a table.
type MatchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	State string `json:"state"` // lobby or playing
}

// StartGameRequest asks the server to start (or continue) the game. The
// settings are honored only on the first start of a table.
type StartGameRequest struct {
	TargetScore int    `json:"targetScore,omitempty"`
	TrumpSuit   string `json:"trumpSuit,omitempty"`
	BotLevel    string `json:"botLevel,omitempty"`
}

// PlayCardRequest submits one card for the sender's turn.
type PlayCardRequest struct {
	Card domain.Card `json:"card"`
}

// PlayerState describes one occupied seat in the snapshot.
type PlayerState struct {
	UserID         string          `json:"userId"`
	Position       domain.Position `json:"position"`
	DisplayName    string          `json:"displayName"`
	IsOwner        bool            `json:"isOwner"`
	IsBot          bool            `json:"isBot"`
	CardsRemaining int             `json:"cardsRemaining"`
}

// MatchStateSnapshot is broadcast whenever the seat layout changes.
type MatchStateSnapshot struct {
	Players []PlayerState   `json:"players"`
	Owner   domain.Position `json:"owner,omitempty"`
	Phase   domain.Phase    `json:"phase,omitempty"`
	ScoreNS int             `json:"scoreNS"`
	ScoreEW int             `json:"scoreEW"`
	Turn    domain.Position `json:"turn,omitempty"`
	Trump   domain.Suit     `json:"trump,omitempty"`
}

// GameErrorEvent is sent privately to the player whose request failed.
type GameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
