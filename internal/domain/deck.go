package domain

import (
	"errors"
	"fmt"
)

// ErrInsufficientCards is returned by Deal when the deck holds fewer cards
// than requested. It indicates a bug in the dealing orchestration.
var ErrInsufficientCards = errors.New("insufficient cards in deck")

// Deck is the 32-card Belote deck. A fresh deck is ordered; callers shuffle
// it with an injected randomness source so a fixed seed reproduces a fixed
// deal.
type Deck struct {
	cards []Card
}

// NewDeck builds a full ordered deck.
func NewDeck() *Deck {
	d := &Deck{}
	d.Reset()
	return d
}

// Reset restores the deck to the full 32 cards in build order.
func (d *Deck) Reset() {
	d.cards = make([]Card, 0, 32)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			d.cards = append(d.cards, Card{Suit: s, Rank: r})
		}
	}
}

// Shuffle permutes the deck in place with a Fisher-Yates pass. randFn must
// return values in [0, 1) and is the only randomness consulted.
func (d *Deck) Shuffle(randFn func() float64) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := int(randFn() * float64(i+1))
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the first n cards.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("deal %d of %d remaining: %w", n, len(d.cards), ErrInsufficientCards)
	}
	dealt := d.cards[:n]
	d.cards = d.cards[n:]
	return dealt, nil
}

// Size returns the number of cards left in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// IsEmpty reports whether all cards have been dealt.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards in order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// TotalPoints sums the point values of the remaining cards for the given
// trump suit. A full deck totals 152 for any trump choice.
func (d *Deck) TotalPoints(trump Suit) int {
	total := 0
	for _, c := range d.cards {
		total += c.Points(trump)
	}
	return total
}
