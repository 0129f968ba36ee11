package domain

import "testing"

func handOf(cards ...Card) *Hand {
	h := NewHand()
	h.AddCards(cards)
	return h
}

func sameCardSet(t *testing.T, got, expected []Card) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("expected %d legal cards %v, got %d %v", len(expected), expected, len(got), got)
	}
	for _, want := range expected {
		found := false
		for _, c := range got {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %s in legal set %v", want, got)
		}
	}
}

func TestLegalCardsLeading(t *testing.T) {
	hand := handOf(Card{Spades, Seven}, Card{Hearts, Ace}, Card{Clubs, Jack})
	trick := NewTrick(1, South, Clubs)

	legal := LegalCards(hand, trick, Clubs)
	sameCardSet(t, legal, hand.Cards())
}

func TestLegalCardsMustFollowSuit(t *testing.T) {
	// Holding lead-suit cards restricts the set to them even when a trump is
	// also held.
	hand := handOf(Card{Spades, Seven}, Card{Spades, King}, Card{Hearts, Ace})
	trick := NewTrick(1, West, Clubs)
	trick.AddPlay(West, Card{Spades, Nine})

	legal := LegalCards(hand, trick, Clubs)
	sameCardSet(t, legal, []Card{{Spades, Seven}, {Spades, King}})
}

func TestLegalCardsMustCut(t *testing.T) {
	// No lead suit, opponent winning, trump in hand: must cut.
	hand := handOf(Card{Clubs, Seven}, Card{Hearts, Ace}, Card{Diamonds, King})
	trick := NewTrick(1, West, Clubs)
	trick.AddPlay(West, Card{Spades, Nine})

	legal := LegalCards(hand, trick, Clubs)
	sameCardSet(t, legal, []Card{{Clubs, Seven}})

	if !MustCut(hand, trick, Clubs) {
		t.Error("expected a cut obligation")
	}
}

func TestLegalCardsMustOvercut(t *testing.T) {
	// Trick already cut with 9C; holding 7C and JC only the jack may be
	// played.
	hand := handOf(Card{Clubs, Seven}, Card{Clubs, Jack}, Card{Hearts, Ace})
	trick := NewTrick(1, West, Clubs)
	trick.AddPlay(West, Card{Spades, Ace})
	trick.AddPlay(North, Card{Clubs, Nine})

	legal := LegalCards(hand, trick, Clubs)
	sameCardSet(t, legal, []Card{{Clubs, Jack}})

	if !MustOvercut(hand, trick, Clubs) {
		t.Error("expected an overcut obligation")
	}
}

func TestLegalCardsUndercutWhenNoHigherTrump(t *testing.T) {
	// Unable to overcut the jack: any trump is allowed, still no discard.
	hand := handOf(Card{Clubs, Seven}, Card{Clubs, Eight}, Card{Hearts, Ace})
	trick := NewTrick(1, West, Clubs)
	trick.AddPlay(West, Card{Spades, Ace})
	trick.AddPlay(North, Card{Clubs, Jack})

	legal := LegalCards(hand, trick, Clubs)
	sameCardSet(t, legal, []Card{{Clubs, Seven}, {Clubs, Eight}})
}

func TestLegalCardsPartnerWinningLiftsCut(t *testing.T) {
	// North led the spade ace and still holds the trick, so South may discard
	// freely despite holding trump.
	hand := handOf(Card{Clubs, Seven}, Card{Hearts, Ace}, Card{Diamonds, King})
	trick := NewTrick(1, North, Clubs)
	trick.AddPlay(North, Card{Spades, Ace})
	trick.AddPlay(East, Card{Hearts, Seven})

	next, _ := trick.NextPlayer()
	if next != South {
		t.Fatalf("expected South to play next, got %s", next)
	}

	legal := LegalCards(hand, trick, Clubs)
	sameCardSet(t, legal, hand.Cards())

	if MustCut(hand, trick, Clubs) {
		t.Error("partner winning must lift the cut obligation")
	}
}

func TestLegalCardsPartnerOvercutByOpponent(t *testing.T) {
	// Partner led high but an opponent cut: the exemption does not apply.
	hand := handOf(Card{Clubs, Seven}, Card{Hearts, Ace})
	trick := NewTrick(1, North, Clubs)
	trick.AddPlay(North, Card{Spades, Ace})
	trick.AddPlay(East, Card{Clubs, Eight})

	next, _ := trick.NextPlayer()
	if next != South {
		t.Fatalf("expected South to play next, got %s", next)
	}

	legal := LegalCards(hand, trick, Clubs)
	sameCardSet(t, legal, []Card{{Clubs, Seven}})
}

func TestLegalCardsTrumpLedNoTrump(t *testing.T) {
	// Trump led and none held: free play, no overcut duty applies.
	hand := handOf(Card{Hearts, Ace}, Card{Diamonds, Seven})
	trick := NewTrick(1, West, Clubs)
	trick.AddPlay(West, Card{Clubs, Jack})

	legal := LegalCards(hand, trick, Clubs)
	sameCardSet(t, legal, hand.Cards())
}

func TestLegalCardsTrumpLedMustFollow(t *testing.T) {
	hand := handOf(Card{Clubs, Seven}, Card{Hearts, Ace})
	trick := NewTrick(1, West, Clubs)
	trick.AddPlay(West, Card{Clubs, Nine})

	legal := LegalCards(hand, trick, Clubs)
	sameCardSet(t, legal, []Card{{Clubs, Seven}})
}

func TestLegalCardsNoTrumpNoLeadSuit(t *testing.T) {
	hand := handOf(Card{Hearts, Ace}, Card{Diamonds, King})
	trick := NewTrick(1, West, Clubs)
	trick.AddPlay(West, Card{Spades, Nine})

	legal := LegalCards(hand, trick, Clubs)
	sameCardSet(t, legal, hand.Cards())
}

func TestLegalCardsEmptyHand(t *testing.T) {
	trick := NewTrick(1, South, Clubs)
	if legal := LegalCards(NewHand(), trick, Clubs); len(legal) != 0 {
		t.Errorf("expected no legal cards for empty hand, got %v", legal)
	}
}

func TestLegalCardsCompletedTrickPanics(t *testing.T) {
	trick := NewTrick(1, South, Clubs)
	for i, pos := range PlayOrderFrom(South) {
		trick.AddPlay(pos, Card{Hearts, Rank(i)})
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic when consulting a completed trick")
		}
	}()
	LegalCards(handOf(Card{Spades, Ace}), trick, Clubs)
}

func TestIsValidPlay(t *testing.T) {
	hand := handOf(Card{Spades, Seven}, Card{Hearts, Ace})
	trick := NewTrick(1, West, Clubs)
	trick.AddPlay(West, Card{Spades, Nine})

	if !IsValidPlay(Card{Spades, Seven}, hand, trick, Clubs) {
		t.Error("following suit must be valid")
	}
	if IsValidPlay(Card{Hearts, Ace}, hand, trick, Clubs) {
		t.Error("discarding while able to follow must be invalid")
	}
	if IsValidPlay(Card{Spades, King}, hand, trick, Clubs) {
		t.Error("a card outside the hand must be invalid")
	}
}

func TestOnlyLegalCard(t *testing.T) {
	hand := handOf(Card{Spades, Seven}, Card{Hearts, Ace})
	trick := NewTrick(1, West, Clubs)
	trick.AddPlay(West, Card{Spades, Nine})

	card, ok := OnlyLegalCard(hand, trick, Clubs)
	if !ok || (card != Card{Spades, Seven}) {
		t.Errorf("expected forced 7S, got %s (ok=%v)", card, ok)
	}

	lead := NewTrick(1, South, Clubs)
	if _, ok := OnlyLegalCard(hand, lead, Clubs); ok {
		t.Error("leading with two cards is not a forced move")
	}
}
