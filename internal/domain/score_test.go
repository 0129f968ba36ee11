package domain

import "testing"

func TestTeamScoreRound(t *testing.T) {
	s := NewTeamScore(TeamNS)
	s.AddCardPoints(57)
	s.AddCardPoints(30)
	s.AddLastTrickBonus()
	s.AddBeloteBonus()

	if got := s.RoundTotal(); got != 117 {
		t.Fatalf("expected round total 117, got %d", got)
	}

	result := s.FinalizeRound()
	if result.CardPoints != 87 || result.LastTrickBonus != LastTrickBonus || result.BeloteBonus != BeloteBonus {
		t.Errorf("unexpected round result %+v", result)
	}
	if result.Total != 117 {
		t.Errorf("expected settled total 117, got %d", result.Total)
	}
	if s.GameScore != 117 {
		t.Errorf("expected game score 117, got %d", s.GameScore)
	}
	if s.RoundTotal() != 0 {
		t.Errorf("round accumulators must reset, got %d", s.RoundTotal())
	}
}

func TestTeamScoreAccumulates(t *testing.T) {
	s := NewTeamScore(TeamEW)
	s.AddCardPoints(100)
	s.FinalizeRound()
	s.AddCardPoints(52)
	s.AddLastTrickBonus()
	s.FinalizeRound()

	if s.GameScore != 162 {
		t.Errorf("expected 162 after two rounds, got %d", s.GameScore)
	}
}

func TestHasWon(t *testing.T) {
	s := NewTeamScore(TeamNS)
	s.GameScore = 999
	if s.HasWon(1000) {
		t.Error("999 must not reach a 1000 target")
	}
	s.GameScore = 1000
	if !s.HasWon(1000) {
		t.Error("exactly the target must win")
	}
	s.GameScore = 1400
	if !s.HasWon(1000) {
		t.Error("above the target must win")
	}
}

func TestResetGame(t *testing.T) {
	s := NewTeamScore(TeamNS)
	s.AddCardPoints(80)
	s.FinalizeRound()
	s.AddCardPoints(10)
	s.ResetGame()

	if s.GameScore != 0 || s.RoundTotal() != 0 {
		t.Errorf("expected zeroed score, got game=%d round=%d", s.GameScore, s.RoundTotal())
	}
}
