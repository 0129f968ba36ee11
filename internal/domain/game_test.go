package domain

import (
	"math/rand"
	"testing"
)

func TestNewSoloGame(t *testing.T) {
	g := NewSoloGame("m1", "user-1", "Ana", Settings{})

	human := g.Player(South)
	if human == nil || !human.IsHuman || human.ID != "user-1" {
		t.Fatalf("expected human at South, got %+v", human)
	}
	for _, pos := range []Position{West, North, East} {
		p := g.Player(pos)
		if p == nil || p.IsHuman {
			t.Errorf("expected AI at %s", pos)
		}
		if p.Level != LevelSeasoned {
			t.Errorf("%s: expected default level %s, got %s", pos, LevelSeasoned, p.Level)
		}
	}

	if g.Settings.TargetScore != DefaultTargetScore {
		t.Errorf("expected default target %d, got %d", DefaultTargetScore, g.Settings.TargetScore)
	}
	if g.Settings.TrumpSuit != Spades {
		t.Errorf("expected default trump spades, got %s", g.Settings.TrumpSuit)
	}
	if g.Phase() != PhaseDealing {
		t.Errorf("expected dealing phase, got %s", g.Phase())
	}
}

func TestDealerRotation(t *testing.T) {
	g := NewSoloGame("m1", "user-1", "Ana", Settings{TargetScore: 100000})
	rng := rand.New(rand.NewSource(1))

	expected := []Position{South, West, North, East, South}
	for i, dealer := range expected {
		if g.Dealer() != dealer {
			t.Fatalf("round %d: expected dealer %s, got %s", i+1, dealer, g.Dealer())
		}
		round := g.StartRound()
		if round == nil {
			t.Fatalf("round %d: unexpected nil round", i+1)
		}
		if err := round.DealCards(rng.Float64); err != nil {
			t.Fatal(err)
		}
		playOutRound(t, round, rng)
		g.FinishRound()
	}
}

func TestGameWinCondition(t *testing.T) {
	g := NewSoloGame("m1", "user-1", "Ana", Settings{TargetScore: 100})

	round := g.StartRound()
	// Hand-credit a decisive round instead of playing it out; finalizing a
	// trickless round adds nothing further.
	round.TeamScore(TeamNS).AddCardPoints(120)
	round.TeamScore(TeamEW).AddCardPoints(32)
	round.TeamScore(TeamNS).AddLastTrickBonus()

	results := g.FinishRound()
	if results[TeamNS].Total != 130 {
		t.Errorf("expected NS round total 130, got %d", results[TeamNS].Total)
	}

	winner, ok := g.Winner()
	if !ok || winner != TeamNS {
		t.Fatalf("expected NS to win, got %s (ok=%v)", winner, ok)
	}
	if g.Phase() != PhaseEnded {
		t.Errorf("expected ended phase, got %s", g.Phase())
	}
	if g.StartRound() != nil {
		t.Error("a completed game must not start another round")
	}
}

func TestGameContinuesBelowTarget(t *testing.T) {
	g := NewSoloGame("m1", "user-1", "Ana", Settings{TargetScore: 1000})

	round := g.StartRound()
	round.TeamScore(TeamNS).AddCardPoints(90)
	round.TeamScore(TeamEW).AddCardPoints(62)
	round.TeamScore(TeamEW).AddLastTrickBonus()
	g.FinishRound()

	if g.IsCompleted() {
		t.Fatal("game must continue below the target")
	}
	if g.Phase() != PhaseDealing {
		t.Errorf("expected dealing phase, got %s", g.Phase())
	}
	if g.Dealer() != West {
		t.Errorf("expected dealer to rotate to West, got %s", g.Dealer())
	}
}

func TestGameTargetTieContinues(t *testing.T) {
	g := NewSoloGame("m1", "user-1", "Ana", Settings{TargetScore: 100})

	round := g.StartRound()
	round.TeamScore(TeamNS).AddCardPoints(100)
	round.TeamScore(TeamEW).AddCardPoints(100)
	g.FinishRound()

	if g.IsCompleted() {
		t.Fatal("equal scores at the target must not end the game")
	}

	// The next round breaks the tie.
	round = g.StartRound()
	if round == nil {
		t.Fatal("expected another round after the tie")
	}
	round.TeamScore(TeamNS).AddCardPoints(90)
	round.TeamScore(TeamEW).AddCardPoints(62)
	g.FinishRound()

	winner, ok := g.Winner()
	if !ok || winner != TeamNS {
		t.Errorf("expected NS to win after the tiebreak round, got %s (ok=%v)", winner, ok)
	}
}

func TestGameHigherScoreWinsWhenBothPassTarget(t *testing.T) {
	g := NewSoloGame("m1", "user-1", "Ana", Settings{TargetScore: 100})

	round := g.StartRound()
	round.TeamScore(TeamNS).AddCardPoints(110)
	round.TeamScore(TeamEW).AddCardPoints(120)
	g.FinishRound()

	winner, ok := g.Winner()
	if !ok || winner != TeamEW {
		t.Errorf("expected EW to win with the higher score, got %s (ok=%v)", winner, ok)
	}
}

func TestGameReset(t *testing.T) {
	g := NewSoloGame("m1", "user-1", "Ana", Settings{TargetScore: 100})
	round := g.StartRound()
	round.TeamScore(TeamNS).AddCardPoints(152)
	g.FinishRound()

	g.Reset()
	if g.IsCompleted() || g.Rounds() != 0 || g.Dealer() != South {
		t.Errorf("expected pristine game after reset")
	}
	if g.TeamScore(TeamNS).GameScore != 0 {
		t.Errorf("expected zeroed scores after reset")
	}
}
