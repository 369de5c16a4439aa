package gamification

import (
	"errors"
	"testing"
)

func TestLevelForTable(t *testing.T) {
	tests := []struct {
		xp          int64
		level       int
		nextLevelXP int64
	}{
		{0, 1, 100},
		{50, 1, 100},
		{99, 1, 100},
		{100, 2, 250},
		{249, 2, 250},
		{250, 3, 500},
		{999, 4, 1000},
		{1000, 5, 2000},
		{7500, 9, 10000},
		{9999, 9, 10000},
		{10000, 10, 10000},
		{250000, 10, 10000},
	}

	for _, tt := range tests {
		got, err := LevelFor(tt.xp)
		if err != nil {
			t.Fatalf("LevelFor(%d) error: %v", tt.xp, err)
		}
		if got.Level != tt.level {
			t.Errorf("LevelFor(%d).Level = %d, want %d", tt.xp, got.Level, tt.level)
		}
		if got.NextLevelXP != tt.nextLevelXP {
			t.Errorf("LevelFor(%d).NextLevelXP = %d, want %d", tt.xp, got.NextLevelXP, tt.nextLevelXP)
		}
	}
}

func TestLevelForZero(t *testing.T) {
	got, err := LevelFor(0)
	if err != nil {
		t.Fatalf("LevelFor(0) error: %v", err)
	}
	if got.Level != 1 || got.NextLevelXP != 100 || got.ProgressPercent != 0 {
		t.Errorf("LevelFor(0) = %+v, want {1 100 0}", got)
	}
}

func TestLevelForProgress(t *testing.T) {
	// Halfway from level 1 (0 XP) to level 2 (100 XP)
	got, _ := LevelFor(50)
	if got.ProgressPercent != 50 {
		t.Errorf("LevelFor(50).ProgressPercent = %f, want 50", got.ProgressPercent)
	}

	// 80 XP toward level 2 → 80%
	got, _ = LevelFor(80)
	if got.ProgressPercent != 80 {
		t.Errorf("LevelFor(80).ProgressPercent = %f, want 80", got.ProgressPercent)
	}

	// At max level progress pins at 100
	got, _ = LevelFor(10000)
	if got.ProgressPercent != 100 {
		t.Errorf("LevelFor(10000).ProgressPercent = %f, want 100", got.ProgressPercent)
	}
	got, _ = LevelFor(99999)
	if got.ProgressPercent != 100 {
		t.Errorf("LevelFor(99999).ProgressPercent = %f, want 100", got.ProgressPercent)
	}
}

func TestLevelForMonotonic(t *testing.T) {
	prevLevel := 0
	for xp := int64(0); xp <= 12000; xp += 7 {
		got, err := LevelFor(xp)
		if err != nil {
			t.Fatalf("LevelFor(%d) error: %v", xp, err)
		}
		if got.Level < prevLevel {
			t.Fatalf("LevelFor(%d).Level = %d, below previous level %d", xp, got.Level, prevLevel)
		}
		if got.ProgressPercent < 0 || got.ProgressPercent > 100 {
			t.Fatalf("LevelFor(%d).ProgressPercent = %f, outside [0,100]", xp, got.ProgressPercent)
		}
		prevLevel = got.Level
	}
}

func TestLevelForNegative(t *testing.T) {
	_, err := LevelFor(-1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("LevelFor(-1) error = %v, want ErrInvalidArgument", err)
	}
}
