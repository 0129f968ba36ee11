package domain

import "fmt"

// LegalCards computes the exact set of cards that may be played from hand
// into the in-progress trick. The obligations are evaluated in strict
// precedence: follow suit, then (when unable) the trump-led free-play case,
// the partner-is-winning exemption, the cut/overcut duty, and finally free
// discard. An empty hand yields an empty set, which callers treat as "no
// move". Consulting a completed trick is an orchestration bug and panics.
func LegalCards(hand *Hand, trick *Trick, trump Suit) []Card {
	if trick.IsCompleted() {
		panic(fmt.Sprintf("trick %d: legal cards requested for completed trick", trick.Number))
	}

	handCards := hand.Cards()
	if len(handCards) == 0 {
		return nil
	}

	lead, ok := trick.LeadSuit()
	if !ok {
		// Leading: any card.
		return handCards
	}

	// Follow suit when able, before any cut obligation is considered.
	if following := hand.CardsFollowingSuit(lead); len(following) > 0 {
		return following
	}

	// Trump was led and we hold none of it: free play.
	if lead == trump {
		return handCards
	}

	// Partner holding the highest standing card lifts every obligation.
	if partnerCurrentlyWinning(trick) {
		return handCards
	}

	trumps := hand.TrumpCards(trump)
	if len(trumps) > 0 {
		// Must cut; must overcut when the trick already holds trump and a
		// higher one is available.
		if highest, ok := highestTrumpInTrick(trick, trump); ok {
			var overcuts []Card
			for _, c := range trumps {
				if c.Order(trump) > highest.Order(trump) {
					overcuts = append(overcuts, c)
				}
			}
			if len(overcuts) > 0 {
				return overcuts
			}
		}
		return trumps
	}

	return hand.NonTrumpCards(trump)
}

// IsValidPlay reports whether the card is held and legal for the current
// trick state.
func IsValidPlay(card Card, hand *Hand, trick *Trick, trump Suit) bool {
	if !hand.HasCard(card) {
		return false
	}
	for _, legal := range LegalCards(hand, trick, trump) {
		if legal == card {
			return true
		}
	}
	return false
}

// MustCut reports whether the hand is obliged to play a trump card.
func MustCut(hand *Hand, trick *Trick, trump Suit) bool {
	lead, ok := trick.LeadSuit()
	if !ok || lead == trump {
		return false
	}
	if hand.CanFollowSuit(lead) {
		return false
	}
	if partnerCurrentlyWinning(trick) {
		return false
	}
	return hand.HasTrump(trump)
}

// MustOvercut reports whether the hand is obliged to beat the highest trump
// already in the trick.
func MustOvercut(hand *Hand, trick *Trick, trump Suit) bool {
	if !MustCut(hand, trick, trump) {
		return false
	}
	highest, ok := highestTrumpInTrick(trick, trump)
	if !ok {
		return false
	}
	for _, c := range hand.TrumpCards(trump) {
		if c.Order(trump) > highest.Order(trump) {
			return true
		}
	}
	return false
}

// OnlyLegalCard returns the single legal card when the player has no actual
// choice, letting callers auto-play forced moves.
func OnlyLegalCard(hand *Hand, trick *Trick, trump Suit) (Card, bool) {
	legal := LegalCards(hand, trick, trump)
	if len(legal) == 1 {
		return legal[0], true
	}
	return Card{}, false
}

// partnerCurrentlyWinning reports whether the partner of the seat about to
// play holds the highest standing card in the trick. The check folds the
// beat relation over the plays made so far, not merely the highest trump.
func partnerCurrentlyWinning(trick *Trick) bool {
	winner, ok := trick.CurrentWinner()
	if !ok {
		return false
	}
	next, ok := trick.NextPlayer()
	if !ok {
		return false
	}
	return ArePartners(winner, next)
}

// highestTrumpInTrick returns the strongest trump played so far, if any.
func highestTrumpInTrick(trick *Trick, trump Suit) (Card, bool) {
	var highest Card
	found := false
	for _, c := range trick.Cards() {
		if !c.IsTrump(trump) {
			continue
		}
		if !found || c.Order(trump) > highest.Order(trump) {
			highest = c
			found = true
		}
	}
	return highest, found
}
