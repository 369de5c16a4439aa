package gamification

import (
	"testing"
	"time"
)

var streakToday = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func at(t time.Time) *time.Time { return &t }

func TestNextStreakFirstActivity(t *testing.T) {
	if got := NextStreak(nil, 0, streakToday); got != 1 {
		t.Errorf("NextStreak(nil, 0) = %d, want 1", got)
	}
}

func TestNextStreakSameDay(t *testing.T) {
	// Same day, different hour — no double increment
	morning := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	if got := NextStreak(at(morning), 7, streakToday); got != 7 {
		t.Errorf("same-day NextStreak = %d, want 7", got)
	}
}

func TestNextStreakConsecutiveDay(t *testing.T) {
	yesterday := streakToday.AddDate(0, 0, -1)
	if got := NextStreak(at(yesterday), 7, streakToday); got != 8 {
		t.Errorf("consecutive-day NextStreak = %d, want 8", got)
	}
}

func TestNextStreakGapResets(t *testing.T) {
	tests := []struct {
		daysAgo int
	}{
		{2},
		{3},
		{30},
	}
	for _, tt := range tests {
		last := streakToday.AddDate(0, 0, -tt.daysAgo)
		if got := NextStreak(at(last), 7, streakToday); got != 1 {
			t.Errorf("NextStreak(%d days ago, 7) = %d, want 1", tt.daysAgo, got)
		}
	}
}

func TestNextStreakFutureDateResets(t *testing.T) {
	tomorrow := streakToday.AddDate(0, 0, 1)
	if got := NextStreak(at(tomorrow), 7, streakToday); got != 1 {
		t.Errorf("future-date NextStreak = %d, want 1", got)
	}
}

func TestNextStreakDayBoundary(t *testing.T) {
	// 23:59 yesterday vs 00:01 today is still a consecutive day
	lateYesterday := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	earlyToday := time.Date(2026, 3, 15, 0, 1, 0, 0, time.UTC)
	if got := NextStreak(at(lateYesterday), 3, earlyToday); got != 4 {
		t.Errorf("boundary NextStreak = %d, want 4", got)
	}
}

func TestNextStreakNonUTCInput(t *testing.T) {
	// Timestamps are truncated in UTC regardless of their zone
	offset := time.FixedZone("UTC-5", -5*60*60)
	// 20:00 UTC-5 on the 14th is 01:00 UTC on the 15th — same UTC day as today
	lastLocal := time.Date(2026, 3, 14, 20, 0, 0, 0, offset)
	if got := NextStreak(at(lastLocal), 5, streakToday); got != 5 {
		t.Errorf("non-UTC same-day NextStreak = %d, want 5", got)
	}
}
