package domain

import "fmt"

// TrickPlay is one card played into a trick.
type TrickPlay struct {
	Position Position
	Card     Card
}

// Trick is one exchange of four plays in strict rotation from the leader.
// It is created by Round and immutable once completed.
type Trick struct {
	Number    int
	Leader    Position
	Trump     Suit
	plays     []TrickPlay
	completed bool
}

// NewTrick starts an empty trick led by the given seat.
func NewTrick(number int, leader Position, trump Suit) *Trick {
	return &Trick{Number: number, Leader: leader, Trump: trump}
}

// AddPlay records the next card of the trick. The position must be the next
// expected seat; anything else is a bug in the orchestrating layer, so the
// trick panics rather than correcting it. The fourth play completes the
// trick atomically.
func (t *Trick) AddPlay(pos Position, c Card) {
	if t.completed {
		panic(fmt.Sprintf("trick %d: play added to completed trick", t.Number))
	}
	expected, _ := t.NextPlayer()
	if pos != expected {
		panic(fmt.Sprintf("trick %d: out of turn: expected %s, got %s", t.Number, expected, pos))
	}
	t.plays = append(t.plays, TrickPlay{Position: pos, Card: c})
	if len(t.plays) == 4 {
		t.completed = true
	}
}

// NextPlayer returns the seat expected to play next. ok is false once the
// trick is completed.
func (t *Trick) NextPlayer() (Position, bool) {
	if t.completed {
		return "", false
	}
	order := PlayOrderFrom(t.Leader)
	return order[len(t.plays)], true
}

// LeadSuit returns the suit of the first card played, if any.
func (t *Trick) LeadSuit() (Suit, bool) {
	if len(t.plays) == 0 {
		return "", false
	}
	return t.plays[0].Card.Suit, true
}

// Winner returns the seat that won the trick. It is defined only once the
// trick is completed.
func (t *Trick) Winner() (Position, bool) {
	if !t.completed {
		return "", false
	}
	return t.bestPlay()
}

// CurrentWinner returns the seat holding the highest standing card so far.
// Unlike Winner it is defined for a partial trick; the legal-move engine
// uses it for the partner-is-winning exemption.
func (t *Trick) CurrentWinner() (Position, bool) {
	return t.bestPlay()
}

func (t *Trick) bestPlay() (Position, bool) {
	if len(t.plays) == 0 {
		return "", false
	}
	lead := t.plays[0].Card.Suit
	best := t.plays[0]
	for _, play := range t.plays[1:] {
		if play.Card.Beats(best.Card, t.Trump, lead) {
			best = play
		}
	}
	return best.Position, true
}

// WinningCard returns the card that currently stands highest in the trick.
func (t *Trick) WinningCard() (Card, bool) {
	pos, ok := t.bestPlay()
	if !ok {
		return Card{}, false
	}
	return t.CardByPosition(pos)
}

// TotalPoints sums the point values of the cards played so far.
func (t *Trick) TotalPoints() int {
	total := 0
	for _, play := range t.plays {
		total += play.Card.Points(t.Trump)
	}
	return total
}

// IsCompleted reports whether all four plays have been made.
func (t *Trick) IsCompleted() bool {
	return t.completed
}

// IsEmpty reports whether no card has been played yet.
func (t *Trick) IsEmpty() bool {
	return len(t.plays) == 0
}

// PlayCount returns the number of plays made so far.
func (t *Trick) PlayCount() int {
	return len(t.plays)
}

// Plays returns a copy of the plays in order.
func (t *Trick) Plays() []TrickPlay {
	return append([]TrickPlay(nil), t.plays...)
}

// Cards returns the cards played so far, in play order.
func (t *Trick) Cards() []Card {
	out := make([]Card, len(t.plays))
	for i, play := range t.plays {
		out[i] = play.Card
	}
	return out
}

// CardByPosition returns the card played by the given seat, if it has played.
func (t *Trick) CardByPosition(pos Position) (Card, bool) {
	for _, play := range t.plays {
		if play.Position == pos {
			return play.Card, true
		}
	}
	return Card{}, false
}

// HasPlayed reports whether the seat has already played into this trick.
func (t *Trick) HasPlayed(pos Position) bool {
	_, ok := t.CardByPosition(pos)
	return ok
}
