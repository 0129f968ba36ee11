package bot

import (
	"errors"
	"math/rand"

	"belote/internal/domain"
)

// ErrNoLegalCard is returned when a strategy is consulted with an empty legal
// set, which means the caller asked at the wrong moment.
var ErrNoLegalCard = errors.New("no legal card to choose from")

// CardObserved notifies a strategy that a card was played at the table, by
// anyone including itself.
type CardObserved struct {
	Position domain.Position
	Card     domain.Card
}

// RoundReset notifies a strategy that a new round was dealt.
type RoundReset struct{}

// noopObserver is embedded by strategies that ignore table events.
type noopObserver struct{}

func (noopObserver) OnEvent(any) {}

// ApprenticeBot plays a uniformly random legal card. It follows the rules
// perfectly, and nothing else.
type ApprenticeBot struct {
	noopObserver
	rng *rand.Rand
}

func (b *ApprenticeBot) ChooseCard(ctx Context) (domain.Card, error) {
	if len(ctx.Legal) == 0 {
		return domain.Card{}, ErrNoLegalCard
	}
	return ctx.Legal[b.rng.Intn(len(ctx.Legal))], nil
}
