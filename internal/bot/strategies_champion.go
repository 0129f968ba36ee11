package bot

import (
	"math/rand"

	"belote/internal/bot/brain"
	"belote/internal/bot/internal"
	"belote/internal/domain"
)

// ChampionBot plays the expert line without lapses and keeps a memory of
// every card seen, so it cashes plain masters the moment the trumps are out
// and never wastes a winner under a standing master.
type ChampionBot struct {
	rng    *rand.Rand
	tuning Tuning
	memory *brain.Memory
}

func (b *ChampionBot) OnEvent(event any) {
	switch ev := event.(type) {
	case CardObserved:
		b.memory.Observe(ev.Card)
	case RoundReset:
		b.memory.Reset()
	}
}

func (b *ChampionBot) ChooseCard(ctx Context) (domain.Card, error) {
	if len(ctx.Legal) == 0 {
		return domain.Card{}, ErrNoLegalCard
	}
	if len(ctx.Legal) == 1 {
		return ctx.Legal[0], nil
	}

	if ctx.Trick.IsEmpty() {
		return b.lead(ctx), nil
	}
	return b.follow(ctx), nil
}

func (b *ChampionBot) lead(ctx Context) domain.Card {
	hand := ctx.Player.Hand.Cards()

	// Pull trumps while holding the master trump.
	if trumps := ctx.Player.Hand.TrumpCards(ctx.Trump); len(trumps) > 0 {
		high := internal.HighestCard(trumps, ctx.Trump)
		if b.memory.IsMaster(high, hand, ctx.Trump) && !b.memory.TrumpsOut(hand, ctx.Trump) {
			return high
		}
	}

	// Cash a plain master once no trump can cut it.
	if b.memory.TrumpsOut(hand, ctx.Trump) {
		for _, c := range withoutTrump(ctx.Legal, ctx.Trump) {
			if b.memory.IsMaster(c, hand, ctx.Trump) {
				return c
			}
		}
	}

	// Otherwise lead strength and keep the rest.
	if plain := withoutTrump(ctx.Legal, ctx.Trump); len(plain) > 0 {
		return internal.HighestCard(plain, ctx.Trump)
	}
	return internal.HighestCard(ctx.Legal, ctx.Trump)
}

func (b *ChampionBot) follow(ctx Context) domain.Card {
	partnerHolds := b.partnerHoldsTrick(ctx)

	if partnerHolds && ctx.Trick.PlayCount() == 3 {
		return internal.HighestPointCard(ctx.Legal, ctx.Trump)
	}

	// When the partner's standing card is a known master, points are safe
	// even before the trick closes.
	if partnerHolds {
		if standing, ok := ctx.Trick.WinningCard(); ok &&
			b.memory.IsMaster(standing, ctx.Player.Hand.Cards(), ctx.Trump) &&
			(standing.IsTrump(ctx.Trump) || b.memory.TrumpsOut(ctx.Player.Hand.Cards(), ctx.Trump)) {
			return internal.HighestPointCard(ctx.Legal, ctx.Trump)
		}
	}

	winner, canWin := internal.CheapestWinner(ctx.Legal, ctx.Trick, ctx.Trump)
	if !canWin {
		if partnerHolds {
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

func (b *ChampionBot) partnerHoldsTrick(ctx Context) bool {
	holder, ok := ctx.Trick.CurrentWinner()
	if !ok {
		return false
	}
	return domain.ArePartners(holder, ctx.Player.Position)
}
