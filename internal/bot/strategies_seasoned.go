package bot

import (
	"math/rand"

	"belote/internal/bot/internal"
	"belote/internal/domain"
)

// SeasonedBot is the default opponent: it takes tricks that are worth taking
// with the cheapest winner and dumps its cheapest card otherwise, with an
// occasional lapse.
type SeasonedBot struct {
	noopObserver
	rng    *rand.Rand
	tuning Tuning
}

func (b *SeasonedBot) ChooseCard(ctx Context) (domain.Card, error) {
	if len(ctx.Legal) == 0 {
		return domain.Card{}, ErrNoLegalCard
	}
	if len(ctx.Legal) == 1 {
		return ctx.Legal[0], nil
	}
	if b.rng.Float64() < b.tuning.MistakeRate {
		return ctx.Legal[b.rng.Intn(len(ctx.Legal))], nil
	}

	if ctx.Trick.IsEmpty() {
		return b.lead(ctx), nil
	}
	return b.follow(ctx), nil
}

// lead opens a trick with the strongest plain card, keeping trump for cuts.
func (b *SeasonedBot) lead(ctx Context) domain.Card {
	if plain := withoutTrump(ctx.Legal, ctx.Trump); len(plain) > 0 {
		return internal.HighestCard(plain, ctx.Trump)
	}
	return internal.HighestCard(ctx.Legal, ctx.Trump)
}

func (b *SeasonedBot) follow(ctx Context) domain.Card {
	winner, canWin := internal.CheapestWinner(ctx.Legal, ctx.Trick, ctx.Trump)
	if !canWin {
		return internal.LowestPointCard(ctx.Legal, ctx.Trump)
	}

	// Last to play: the trick is settled, take it whenever it pays.
	if ctx.Trick.PlayCount() == 3 {
		if ctx.Trick.TotalPoints() > 0 {
			return winner
		}
		return internal.LowestPointCard(ctx.Legal, ctx.Trump)
	}

	if ctx.Trick.TotalPoints() >= b.tuning.TakeThreshold {
		return winner
	}
	return internal.LowestPointCard(ctx.Legal, ctx.Trump)
}

func withoutTrump(cards []domain.Card, trump domain.Suit) []domain.Card {
	var out []domain.Card
	for _, c := range cards {
		if !c.IsTrump(trump) {
			out = append(out, c)
		}
	}
	return out
}
