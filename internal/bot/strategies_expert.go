package bot

import (
	"math/rand"

	"belote/internal/bot/internal"
	"belote/internal/domain"
)

// ExpertBot extends the seasoned play with partnership awareness: it feeds
// points to a partner who holds the trick and spends honors instead of
// wasting them under an opponent's master.
type ExpertBot struct {
	noopObserver
	rng    *rand.Rand
	tuning Tuning
}

func (b *ExpertBot) ChooseCard(ctx Context) (domain.Card, error) {
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

// lead opens with the jack of trump while it is still held, pulling the
// opponents' trumps; otherwise with the strongest plain card.
func (b *ExpertBot) lead(ctx Context) domain.Card {
	jack := domain.Card{Suit: ctx.Trump, Rank: domain.Jack}
	for _, c := range ctx.Legal {
		if c == jack {
			return jack
		}
	}
	if plain := withoutTrump(ctx.Legal, ctx.Trump); len(plain) > 0 {
		return internal.HighestCard(plain, ctx.Trump)
	}
	return internal.HighestCard(ctx.Legal, ctx.Trump)
}

func (b *ExpertBot) follow(ctx Context) domain.Card {
	// Partner already holds the trick and plays after the remaining
	// opponents can no longer raise: load it with points.
	if b.partnerHoldsTrick(ctx) && ctx.Trick.PlayCount() == 3 {
		return internal.HighestPointCard(ctx.Legal, ctx.Trump)
	}

	winner, canWin := internal.CheapestWinner(ctx.Legal, ctx.Trick, ctx.Trump)
	if !canWin {
		if b.partnerHoldsTrick(ctx) {
			// Partner may still be overtaken; give measured points.
			return internal.HighestPointCard(ctx.Legal, ctx.Trump)
		}
		return internal.LowestPointCard(ctx.Legal, ctx.Trump)
	}

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

func (b *ExpertBot) partnerHoldsTrick(ctx Context) bool {
	holder, ok := ctx.Trick.CurrentWinner()
	if !ok {
		return false
	}
	return domain.ArePartners(holder, ctx.Player.Position)
}
