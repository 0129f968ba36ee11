package brain

import "belote/internal/domain"

// Memory tracks every card seen in completed and in-progress tricks, so a
// strategy can tell when one of its cards has become the master of its suit.
type Memory struct {
	seen map[domain.Card]bool
}

// NewMemory returns an empty card memory.
func NewMemory() *Memory {
	return &Memory{seen: make(map[domain.Card]bool)}
}

// Observe records a played card.
func (m *Memory) Observe(c domain.Card) {
	m.seen[c] = true
}

// Seen reports whether the card has been played this round.
func (m *Memory) Seen(c domain.Card) bool {
	return m.seen[c]
}

// SeenCount returns the number of distinct cards observed.
func (m *Memory) SeenCount() int {
	return len(m.seen)
}

// IsMaster reports whether no unseen card outside the given hand can beat c
// in its own suit group. For a plain card that means every higher card of its
// suit is accounted for; a plain master can still lose to a cut, which the
// caller weighs separately.
func (m *Memory) IsMaster(c domain.Card, hand []domain.Card, trump domain.Suit) bool {
	held := make(map[domain.Card]bool, len(hand))
	for _, h := range hand {
		held[h] = true
	}
	for _, r := range domain.Ranks() {
		other := domain.Card{Suit: c.Suit, Rank: r}
		if other == c || m.seen[other] || held[other] {
			continue
		}
		lead := c.Suit
		if other.Beats(c, trump, lead) {
			return false
		}
	}
	return true
}

// TrumpsOut reports whether every trump card outside the given hand has been
// seen, which makes plain masters safe from cuts.
func (m *Memory) TrumpsOut(hand []domain.Card, trump domain.Suit) bool {
	held := make(map[domain.Card]bool, len(hand))
	for _, h := range hand {
		held[h] = true
	}
	for _, r := range domain.Ranks() {
		c := domain.Card{Suit: trump, Rank: r}
		if !m.seen[c] && !held[c] {
			return false
		}
	}
	return true
}

// Reset clears the memory for a new round.
func (m *Memory) Reset() {
	m.seen = make(map[domain.Card]bool)
}
