package domain

import "sort"

// Hand holds the cards of one seat for the active round.
type Hand struct {
	cards []Card
}

// NewHand returns an empty hand.
func NewHand() *Hand {
	return &Hand{}
}

// AddCard appends a card to the hand.
func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

// AddCards appends multiple cards to the hand.
func (h *Hand) AddCards(cards []Card) {
	h.cards = append(h.cards, cards...)
}

// RemoveCard removes the card from the hand and reports whether it was
// present. Callers decide how to treat a miss; the hand never panics.
func (h *Hand) RemoveCard(c Card) bool {
	for i, held := range h.cards {
		if held == c {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return true
		}
	}
	return false
}

// HasCard reports whether the hand holds the card.
func (h *Hand) HasCard(c Card) bool {
	for _, held := range h.cards {
		if held == c {
			return true
		}
	}
	return false
}

// Cards returns a copy of the hand's cards.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// CardsOfSuit returns the cards of the given suit.
func (h *Hand) CardsOfSuit(s Suit) []Card {
	var out []Card
	for _, c := range h.cards {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

// CardsFollowingSuit returns the cards that would follow the lead suit.
func (h *Hand) CardsFollowingSuit(lead Suit) []Card {
	return h.CardsOfSuit(lead)
}

// TrumpCards returns the trump cards in the hand.
func (h *Hand) TrumpCards(trump Suit) []Card {
	return h.CardsOfSuit(trump)
}

// NonTrumpCards returns the cards outside the trump suit.
func (h *Hand) NonTrumpCards(trump Suit) []Card {
	var out []Card
	for _, c := range h.cards {
		if !c.IsTrump(trump) {
			out = append(out, c)
		}
	}
	return out
}

// CanFollowSuit reports whether the hand holds any card of the lead suit.
func (h *Hand) CanFollowSuit(lead Suit) bool {
	for _, c := range h.cards {
		if c.Suit == lead {
			return true
		}
	}
	return false
}

// HasTrump reports whether the hand holds any trump card.
func (h *Hand) HasTrump(trump Suit) bool {
	return h.CanFollowSuit(trump)
}

// HasBelote reports whether the hand currently holds both the king and queen
// of trump. This is a snapshot of the hand, not a play-history check.
func (h *Hand) HasBelote(trump Suit) bool {
	return h.HasCard(Card{Suit: trump, Rank: King}) && h.HasCard(Card{Suit: trump, Rank: Queen})
}

// BeloteCards returns the king and queen of trump when both are held.
func (h *Hand) BeloteCards(trump Suit) []Card {
	if !h.HasBelote(trump) {
		return nil
	}
	return []Card{{Suit: trump, Rank: King}, {Suit: trump, Rank: Queen}}
}

// HighestTrump returns the strongest trump card held, if any.
func (h *Hand) HighestTrump(trump Suit) (Card, bool) {
	trumps := h.TrumpCards(trump)
	if len(trumps) == 0 {
		return Card{}, false
	}
	best := trumps[0]
	for _, c := range trumps[1:] {
		if c.Order(trump) > best.Order(trump) {
			best = c
		}
	}
	return best, true
}

// Size returns the number of cards held.
func (h *Hand) Size() int {
	return len(h.cards)
}

// IsEmpty reports whether the hand holds no cards.
func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// TotalPoints sums the point values of the held cards.
func (h *Hand) TotalPoints(trump Suit) int {
	total := 0
	for _, c := range h.cards {
		total += c.Points(trump)
	}
	return total
}

// Sort orders the hand for presentation: trump cards first, then by suit,
// strongest first within a suit. The rules engine never depends on it.
func (h *Hand) Sort(trump Suit) {
	sort.SliceStable(h.cards, func(i, j int) bool {
		a, b := h.cards[i], h.cards[j]
		if a.IsTrump(trump) != b.IsTrump(trump) {
			return a.IsTrump(trump)
		}
		if a.Suit != b.Suit {
			return a.Suit < b.Suit
		}
		return a.Order(trump) > b.Order(trump)
	})
}

// Clear removes every card from the hand.
func (h *Hand) Clear() {
	h.cards = nil
}
