package domain

import "fmt"

// Suit is one of the four card suits.
type Suit string

const (
	Clubs    Suit = "C"
	Diamonds Suit = "D"
	Hearts   Suit = "H"
	Spades   Suit = "S"
)

// Suits returns all four suits in deck-building order.
func Suits() [4]Suit {
	return [4]Suit{Clubs, Diamonds, Hearts, Spades}
}

// Rank is a card rank in the 32-card Belote deck.
type Rank int

const (
	Seven Rank = iota
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks returns all eight ranks in deck-building order.
func Ranks() [8]Rank {
	return [8]Rank{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

func (r Rank) String() string {
	switch r {
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// cardValue holds the scoring and comparison constants for one rank.
type cardValue struct {
	points      int // point value outside the trump suit
	trumpPoints int // point value inside the trump suit
	order       int // comparison strength outside the trump suit
	trumpOrder  int // comparison strength inside the trump suit
}

// Per-rank constants of the game. Trump ace and trump nine share order 7;
// Beats compares strictly, so on that tie the earlier play keeps the trick.
var cardValues = [8]cardValue{
	Seven: {points: 0, trumpPoints: 0, order: 1, trumpOrder: 1},
	Eight: {points: 0, trumpPoints: 0, order: 2, trumpOrder: 2},
	Nine:  {points: 0, trumpPoints: 14, order: 3, trumpOrder: 7},
	Ten:   {points: 10, trumpPoints: 10, order: 6, trumpOrder: 5},
	Jack:  {points: 2, trumpPoints: 20, order: 4, trumpOrder: 8},
	Queen: {points: 3, trumpPoints: 3, order: 5, trumpOrder: 4},
	King:  {points: 4, trumpPoints: 4, order: 7, trumpOrder: 6},
	Ace:   {points: 11, trumpPoints: 11, order: 8, trumpOrder: 7},
}

// Card is a single playing card. Identity is the (Suit, Rank) pair; exactly
// 32 distinct cards exist and comparison is plain struct equality.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Points returns the card's point value given the round's trump suit.
func (c Card) Points(trump Suit) int {
	if c.Suit == trump {
		return cardValues[c.Rank].trumpPoints
	}
	return cardValues[c.Rank].points
}

// Order returns the card's comparison strength given the round's trump suit.
// Order values are only meaningful between cards of the same trump status.
func (c Card) Order(trump Suit) int {
	if c.Suit == trump {
		return cardValues[c.Rank].trumpOrder
	}
	return cardValues[c.Rank].order
}

// IsTrump reports whether the card belongs to the trump suit.
func (c Card) IsTrump(trump Suit) bool {
	return c.Suit == trump
}

// IsTrumpJack reports whether the card is the jack of trump, the strongest
// card of the round.
func (c Card) IsTrumpJack(trump Suit) bool {
	return c.Suit == trump && c.Rank == Jack
}

// IsTrumpNine reports whether the card is the nine of trump.
func (c Card) IsTrumpNine(trump Suit) bool {
	return c.Suit == trump && c.Rank == Nine
}

// Beats reports whether c wins over other within a trick, given the trump
// suit and the suit that was led. It is a pure predicate: a card that cannot
// legally beat (off-suit without trump) simply yields false.
func (c Card) Beats(other Card, trump, lead Suit) bool {
	if c.IsTrump(trump) && !other.IsTrump(trump) {
		return true
	}
	if !c.IsTrump(trump) && other.IsTrump(trump) {
		return false
	}
	if c.IsTrump(trump) && other.IsTrump(trump) {
		return c.Order(trump) > other.Order(trump)
	}

	// Neither is trump: only cards following the lead suit can win.
	if c.Suit != lead {
		return false
	}
	if other.Suit != lead {
		return true
	}
	return c.Order(trump) > other.Order(trump)
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}
