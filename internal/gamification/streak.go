package gamification

import "time"

// NextStreak decides the streak count for activity happening today.
// Dates are compared at UTC day granularity:
//   - no prior activity → 1
//   - last activity today → unchanged (same-day repeats don't stack)
//   - last activity yesterday → currentStreak + 1
//   - anything else (gap of 2+ days, or a future date) → 1
//
// Pure function; the caller persists the result and the new activity
// date.
func NextStreak(lastActivity *time.Time, currentStreak int, today time.Time) int {
	if lastActivity == nil {
		return 1
	}

	last := utcDate(*lastActivity)
	day := utcDate(today)

	switch {
	case last.Equal(day):
		return currentStreak
	case last.Equal(day.AddDate(0, 0, -1)):
		return currentStreak + 1
	default:
		return 1
	}
}

// utcDate truncates a timestamp to its UTC calendar date.
func utcDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
