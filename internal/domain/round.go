package domain

import "fmt"

// TricksPerRound is the number of tricks in a completed deal.
const TricksPerRound = 8

// dealPattern is the conventional Belote deal: for each group size, every
// seat receives that many cards before the next group starts.
var dealPattern = [3]int{3, 2, 3}

// Round is one deal: the trump suit, the eight tricks played from it, and
// the per-team score accumulators it credits on finalization.
type Round struct {
	Number int
	Trump  Suit
	Dealer Position

	players map[Position]*Player
	scores  map[Team]*TeamScore
	deck    *Deck
	tricks  []*Trick

	finalized bool
}

// NewRound creates a round for the given players, crediting the provided
// team scores at finalization.
func NewRound(number int, trump Suit, dealer Position, players map[Position]*Player, scores map[Team]*TeamScore) *Round {
	return &Round{
		Number:  number,
		Trump:   trump,
		Dealer:  dealer,
		players: players,
		scores:  scores,
		deck:    NewDeck(),
	}
}

// DealCards shuffles with the injected randomness source and deals eight
// cards to each seat in the 3-2-3 pattern, starting left of the dealer. For
// each group size all four seats are served before the next group.
func (r *Round) DealCards(randFn func() float64) error {
	for _, p := range r.players {
		p.Hand.Clear()
	}

	r.deck.Reset()
	r.deck.Shuffle(randFn)

	order := PlayOrderFrom(r.Dealer.Next())
	for _, n := range dealPattern {
		for _, pos := range order {
			cards, err := r.deck.Deal(n)
			if err != nil {
				return fmt.Errorf("deal round %d: %w", r.Number, err)
			}
			r.players[pos].Hand.AddCards(cards)
		}
	}

	for _, p := range r.players {
		p.Hand.Sort(r.Trump)
	}
	return nil
}

// FirstLeader returns the seat that leads the first trick: left of dealer.
func (r *Round) FirstLeader() Position {
	return r.Dealer.Next()
}

// StartTrick opens the next trick. Starting a ninth trick, or starting one
// while the previous is still open, is a bug in the orchestration and
// panics.
func (r *Round) StartTrick(leader Position) *Trick {
	if len(r.tricks) >= TricksPerRound {
		panic(fmt.Sprintf("round %d: all %d tricks already started", r.Number, TricksPerRound))
	}
	if current := r.CurrentTrick(); current != nil && !current.IsCompleted() {
		panic(fmt.Sprintf("round %d: trick %d still in progress", r.Number, current.Number))
	}
	trick := NewTrick(len(r.tricks)+1, leader, r.Trump)
	r.tricks = append(r.tricks, trick)
	return trick
}

// CurrentTrick returns the most recently started trick, or nil before the
// first deal.
func (r *Round) CurrentTrick() *Trick {
	if len(r.tricks) == 0 {
		return nil
	}
	return r.tricks[len(r.tricks)-1]
}

// Tricks returns the tricks started so far, in order.
func (r *Round) Tricks() []*Trick {
	return append([]*Trick(nil), r.tricks...)
}

// IsCompleted reports whether all eight tricks have been played out.
func (r *Round) IsCompleted() bool {
	if len(r.tricks) != TricksPerRound {
		return false
	}
	for _, t := range r.tricks {
		if !t.IsCompleted() {
			return false
		}
	}
	return true
}

// NextTrickLeader returns the winner of the current trick, who leads the
// next one.
func (r *Round) NextTrickLeader() (Position, bool) {
	current := r.CurrentTrick()
	if current == nil {
		return "", false
	}
	return current.Winner()
}

// FinalizeRound settles the deal: every completed trick's points go to the
// winning side, the eighth trick's winner collects the fixed last-trick
// bonus, and a completed belote/rebelote earns its team the announcement
// bonus. Repeat calls are no-ops, so scores are never double-credited.
// Across both teams the card points always sum to 152 and the last-trick
// bonus to 10.
func (r *Round) FinalizeRound() {
	if r.finalized {
		return
	}

	for _, trick := range r.tricks {
		if !trick.IsCompleted() {
			continue
		}
		winner, _ := trick.Winner()
		r.scores[winner.Team()].AddCardPoints(trick.TotalPoints())
	}

	if len(r.tricks) == TricksPerRound {
		last := r.tricks[TricksPerRound-1]
		if last.IsCompleted() {
			winner, _ := last.Winner()
			r.scores[winner.Team()].AddLastTrickBonus()
		}
	}

	for _, p := range r.players {
		if p.HasCompleteBelote() {
			r.scores[p.Team].AddBeloteBonus()
		}
	}

	r.finalized = true
}

// IsFinalized reports whether the round's scores have been settled.
func (r *Round) IsFinalized() bool {
	return r.finalized
}

// TeamScore returns the score accumulator credited by this round.
func (r *Round) TeamScore(team Team) *TeamScore {
	return r.scores[team]
}

// Player returns the player seated at pos.
func (r *Round) Player(pos Position) *Player {
	return r.players[pos]
}
