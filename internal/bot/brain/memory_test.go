package brain

import (
	"testing"

	"belote/internal/domain"
)

func TestMemoryObserve(t *testing.T) {
	m := NewMemory()
	c := domain.Card{Suit: domain.Hearts, Rank: domain.Ace}

	if m.Seen(c) {
		t.Error("fresh memory must be empty")
	}
	m.Observe(c)
	if !m.Seen(c) {
		t.Error("observed card must be remembered")
	}
	m.Reset()
	if m.Seen(c) || m.SeenCount() != 0 {
		t.Error("reset must clear the memory")
	}
}

func TestIsMaster(t *testing.T) {
	m := NewMemory()
	hand := []domain.Card{{Suit: domain.Hearts, Rank: domain.King}}
	king := hand[0]

	// The ace is still out, so the king is not a master.
	if m.IsMaster(king, hand, domain.Clubs) {
		t.Error("king is not a master while the ace is unseen")
	}

	m.Observe(domain.Card{Suit: domain.Hearts, Rank: domain.Ace})
	if !m.IsMaster(king, hand, domain.Clubs) {
		t.Error("king becomes the master once the ace has been played")
	}
}

func TestIsMasterCountsOwnHand(t *testing.T) {
	m := NewMemory()
	hand := []domain.Card{
		{Suit: domain.Hearts, Rank: domain.Ace},
		{Suit: domain.Hearts, Rank: domain.King},
	}
	// Holding the ace ourselves makes the king a master too.
	if !m.IsMaster(hand[1], hand, domain.Clubs) {
		t.Error("cards in our own hand cannot beat us")
	}
}

func TestTrumpsOut(t *testing.T) {
	m := NewMemory()
	hand := []domain.Card{{Suit: domain.Clubs, Rank: domain.Jack}}

	if m.TrumpsOut(hand, domain.Clubs) {
		t.Error("seven unseen trumps remain")
	}
	for _, r := range domain.Ranks() {
		if r == domain.Jack {
			continue
		}
		m.Observe(domain.Card{Suit: domain.Clubs, Rank: r})
	}
	if !m.TrumpsOut(hand, domain.Clubs) {
		t.Error("all trumps are either seen or held")
	}
}
