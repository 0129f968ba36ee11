package internal

import "belote/internal/domain"

// LowestCard returns the weakest card of the set by trick strength.
func LowestCard(cards []domain.Card, trump domain.Suit) domain.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if relativeStrength(c, trump) < relativeStrength(best, trump) {
			best = c
		}
	}
	return best
}

// HighestCard returns the strongest card of the set by trick strength.
func HighestCard(cards []domain.Card, trump domain.Suit) domain.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if relativeStrength(c, trump) > relativeStrength(best, trump) {
			best = c
		}
	}
	return best
}

// LowestPointCard returns the cheapest card of the set, breaking ties toward
// the weaker card so honors are kept.
func LowestPointCard(cards []domain.Card, trump domain.Suit) domain.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Points(trump) < best.Points(trump) ||
			(c.Points(trump) == best.Points(trump) && relativeStrength(c, trump) < relativeStrength(best, trump)) {
			best = c
		}
	}
	return best
}

// HighestPointCard returns the most valuable card of the set, breaking ties
// toward the weaker card so the side keeps its strongest material.
func HighestPointCard(cards []domain.Card, trump domain.Suit) domain.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Points(trump) > best.Points(trump) ||
			(c.Points(trump) == best.Points(trump) && relativeStrength(c, trump) < relativeStrength(best, trump)) {
			best = c
		}
	}
	return best
}

// WinningCards filters the legal set down to the cards that would take the
// trick as it currently stands. On a lead every card is provisionally
// winning.
func WinningCards(legal []domain.Card, trick *domain.Trick, trump domain.Suit) []domain.Card {
	standing, ok := trick.WinningCard()
	if !ok {
		return legal
	}
	lead, _ := trick.LeadSuit()
	var out []domain.Card
	for _, c := range legal {
		if c.Beats(standing, trump, lead) {
			out = append(out, c)
		}
	}
	return out
}

// CheapestWinner returns the lowest winning card, if any card wins at all.
func CheapestWinner(legal []domain.Card, trick *domain.Trick, trump domain.Suit) (domain.Card, bool) {
	winners := WinningCards(legal, trick, trump)
	if len(winners) == 0 {
		return domain.Card{}, false
	}
	return LowestCard(winners, trump), true
}

// relativeStrength orders cards across suits for "lowest"/"highest" picks:
// any trump outranks any plain card, and within a group the rules order
// applies. The cross-suit comparison is a heuristic, not a trick rule.
func relativeStrength(c domain.Card, trump domain.Suit) int {
	if c.IsTrump(trump) {
		return 100 + c.Order(trump)
	}
	return c.Order(trump)
}
