package config

import "testing"

func TestDefaultsWithoutLoad(t *testing.T) {
	c := GetGameConfig()
	if c.TargetScore != defaultTargetScore {
		t.Errorf("expected default target %d, got %d", defaultTargetScore, c.TargetScore)
	}
	if c.TrumpSuit != defaultTrumpSuit {
		t.Errorf("expected default trump %q, got %q", defaultTrumpSuit, c.TrumpSuit)
	}
	if c.BotLevel != defaultBotLevel {
		t.Errorf("expected default bot level %q, got %q", defaultBotLevel, c.BotLevel)
	}
	if c.BotPlayDelayTicks <= 0 || c.BotAutoFillDelaySeconds <= 0 {
		t.Error("bot pacing defaults must be positive")
	}
}
