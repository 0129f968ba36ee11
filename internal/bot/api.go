package bot

import (
	"belote/internal/domain"
)

// Context is the snapshot a strategy sees when asked for a card: the player's
// own hand, the in-progress trick and the legal set already computed by the
// rules engine. Strategies never see other hands.
type Context struct {
	Trump  domain.Suit
	Trick  *domain.Trick
	Player *domain.Player
	Legal  []domain.Card
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	ChooseCard(ctx Context) (domain.Card, error)
	OnEvent(event any)
}
