package domain

import "testing"

func TestPlayCard(t *testing.T) {
	p := NewHumanPlayer("p1", "Ana", South)
	p.Hand.AddCards([]Card{{Hearts, Ace}, {Spades, Seven}})
	trick := NewTrick(1, South, Clubs)

	result := PlayCard(Card{Hearts, Ace}, p, trick, Clubs)
	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if p.Hand.HasCard(Card{Hearts, Ace}) {
		t.Error("played card still in hand")
	}
	if trick.PlayCount() != 1 {
		t.Errorf("expected 1 play in trick, got %d", trick.PlayCount())
	}
	if result.TrickCompleted {
		t.Error("trick must not be completed after one play")
	}
	if result.NextPlayer != West {
		t.Errorf("expected West next, got %s", result.NextPlayer)
	}
}

func TestPlayCardRejections(t *testing.T) {
	tests := []struct {
		name string
		play func() PlayResult
	}{
		{
			name: "card not held",
			play: func() PlayResult {
				p := NewHumanPlayer("p1", "Ana", South)
				p.Hand.AddCard(Card{Hearts, Ace})
				trick := NewTrick(1, South, Clubs)
				return PlayCard(Card{Spades, King}, p, trick, Clubs)
			},
		},
		{
			name: "out of turn",
			play: func() PlayResult {
				p := NewHumanPlayer("p1", "Ana", North)
				p.Hand.AddCard(Card{Hearts, Ace})
				trick := NewTrick(1, South, Clubs)
				return PlayCard(Card{Hearts, Ace}, p, trick, Clubs)
			},
		},
		{
			name: "illegal discard while able to follow",
			play: func() PlayResult {
				p := NewHumanPlayer("p1", "Ana", West)
				p.Hand.AddCards([]Card{{Spades, Seven}, {Hearts, Ace}})
				trick := NewTrick(1, South, Clubs)
				trick.AddPlay(South, Card{Spades, Nine})
				return PlayCard(Card{Hearts, Ace}, p, trick, Clubs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.play()
			if result.Success {
				t.Fatal("expected rejection")
			}
			if result.Error == "" {
				t.Error("rejection must carry a reason")
			}
		})
	}
}

func TestPlayCardCompletesTrick(t *testing.T) {
	players := map[Position]*Player{}
	for _, pos := range Positions() {
		players[pos] = NewHumanPlayer(string(pos), string(pos), pos)
	}
	cards := map[Position]Card{
		South: {Hearts, Seven},
		West:  {Hearts, Ace},
		North: {Hearts, Ten},
		East:  {Hearts, King},
	}
	for pos, c := range cards {
		players[pos].Hand.AddCard(c)
	}

	trick := NewTrick(1, South, Clubs)
	var last PlayResult
	for _, pos := range PlayOrderFrom(South) {
		last = PlayCard(cards[pos], players[pos], trick, Clubs)
		if !last.Success {
			t.Fatalf("%s: unexpected rejection %q", pos, last.Error)
		}
	}

	if !last.TrickCompleted {
		t.Fatal("expected final play to complete the trick")
	}
	if last.TrickWinner != West {
		t.Errorf("expected West to win, got %s", last.TrickWinner)
	}
}

func TestBeloteAnnouncements(t *testing.T) {
	p := NewHumanPlayer("p1", "Ana", South)
	p.Hand.AddCards([]Card{{Clubs, King}, {Clubs, Queen}, {Hearts, Ace}})

	// First qualifying play announces belote.
	trick := NewTrick(1, South, Clubs)
	result := PlayCard(Card{Clubs, King}, p, trick, Clubs)
	if !result.Success {
		t.Fatalf("unexpected rejection %q", result.Error)
	}
	if result.Announcement != AnnouncementBelote {
		t.Fatalf("expected belote, got %q", result.Announcement)
	}
	if !p.BeloteAnnounced() || p.RebeloteAnnounced() {
		t.Error("only the belote flag must be set after the first play")
	}

	// Complete the trick so the queen can go out on the next lead.
	trick.AddPlay(West, Card{Hearts, Seven})
	trick.AddPlay(North, Card{Hearts, Eight})
	trick.AddPlay(East, Card{Hearts, Nine})

	second := NewTrick(2, South, Clubs)
	result = PlayCard(Card{Clubs, Queen}, p, second, Clubs)
	if !result.Success {
		t.Fatalf("unexpected rejection %q", result.Error)
	}
	if result.Announcement != AnnouncementRebelote {
		t.Fatalf("expected rebelote, got %q", result.Announcement)
	}
	if !p.HasCompleteBelote() {
		t.Error("expected a complete belote after both plays")
	}
}

func TestNoBeloteWithoutBothCards(t *testing.T) {
	p := NewHumanPlayer("p1", "Ana", South)
	p.Hand.AddCards([]Card{{Clubs, King}, {Hearts, Ace}})

	trick := NewTrick(1, South, Clubs)
	result := PlayCard(Card{Clubs, King}, p, trick, Clubs)
	if !result.Success {
		t.Fatalf("unexpected rejection %q", result.Error)
	}
	if result.Announcement != AnnouncementNone {
		t.Errorf("king without queen must not announce, got %q", result.Announcement)
	}
	if p.BeloteAnnounced() {
		t.Error("belote flag must stay clear")
	}
}

func TestNoBeloteOutsideTrump(t *testing.T) {
	p := NewHumanPlayer("p1", "Ana", South)
	p.Hand.AddCards([]Card{{Hearts, King}, {Hearts, Queen}})

	trick := NewTrick(1, South, Clubs)
	result := PlayCard(Card{Hearts, King}, p, trick, Clubs)
	if result.Announcement != AnnouncementNone {
		t.Errorf("king and queen outside trump must not announce, got %q", result.Announcement)
	}
}
