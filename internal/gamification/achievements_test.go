package gamification

import "testing"

func unlockedSet(stats ProgressStats) map[string]bool {
	set := make(map[string]bool)
	for _, k := range UnlockedKeys(stats) {
		set[k] = true
	}
	return set
}

func TestAchievementDefsComplete(t *testing.T) {
	want := []string{
		"first_lesson", "five_lessons", "ten_lessons", "twenty_lessons",
		"perfect_lesson", "streak_7", "level_3", "level_5", "level_10",
	}

	have := make(map[string]bool)
	for _, def := range AchievementDefs {
		have[def.ID] = true
	}

	for _, id := range want {
		if !have[id] {
			t.Errorf("achievement %q not defined", id)
		}
	}
	if len(AchievementDefs) != len(want) {
		t.Errorf("got %d achievement definitions, want %d", len(AchievementDefs), len(want))
	}
}

func TestAchievementThresholds(t *testing.T) {
	// Fresh user: nothing unlocked (level starts at 1)
	got := unlockedSet(ProgressStats{LessonsCompleted: 0, Level: 1})
	if len(got) != 0 {
		t.Errorf("fresh user unlocked %v, want none", got)
	}

	// One completed lesson unlocks exactly first_lesson
	got = unlockedSet(ProgressStats{LessonsCompleted: 1, Level: 1})
	if !got["first_lesson"] || len(got) != 1 {
		t.Errorf("one lesson unlocked %v, want only first_lesson", got)
	}

	// Five lessons adds five_lessons
	got = unlockedSet(ProgressStats{LessonsCompleted: 5, Level: 2})
	if !got["first_lesson"] || !got["five_lessons"] || len(got) != 2 {
		t.Errorf("five lessons unlocked %v", got)
	}

	// Level 5 implies level_3 too
	got = unlockedSet(ProgressStats{LessonsCompleted: 8, Level: 5})
	if !got["level_3"] || !got["level_5"] || got["level_10"] {
		t.Errorf("level 5 unlocked %v", got)
	}

	// A perfect score unlocks perfect_lesson regardless of lesson count
	got = unlockedSet(ProgressStats{LessonsCompleted: 1, PerfectLessons: 1, Level: 1})
	if !got["perfect_lesson"] {
		t.Errorf("perfect score unlocked %v, want perfect_lesson included", got)
	}

	// Streak of 6 is not enough; 7 unlocks streak_7
	got = unlockedSet(ProgressStats{LessonsCompleted: 1, StreakDays: 6, Level: 1})
	if got["streak_7"] {
		t.Errorf("6-day streak unlocked streak_7 early: %v", got)
	}
	got = unlockedSet(ProgressStats{LessonsCompleted: 1, StreakDays: 7, Level: 1})
	if !got["streak_7"] {
		t.Errorf("7-day streak unlocked %v, want streak_7 included", got)
	}

	// Everything at the top end
	got = unlockedSet(ProgressStats{LessonsCompleted: 20, PerfectLessons: 3, StreakDays: 10, Level: 10})
	if len(got) != len(AchievementDefs) {
		t.Errorf("maxed user unlocked %d of %d", len(got), len(AchievementDefs))
	}
}

func TestAchievementProgress(t *testing.T) {
	achievements := EvaluateAchievements(ProgressStats{LessonsCompleted: 3, Level: 2})

	byID := make(map[string]float64)
	for _, a := range achievements {
		byID[a.ID] = a.ProgressPercent
	}

	if byID["five_lessons"] != 60 {
		t.Errorf("five_lessons progress = %f, want 60", byID["five_lessons"])
	}
	if byID["ten_lessons"] != 30 {
		t.Errorf("ten_lessons progress = %f, want 30", byID["ten_lessons"])
	}
	if byID["twenty_lessons"] != 15 {
		t.Errorf("twenty_lessons progress = %f, want 15", byID["twenty_lessons"])
	}
	if byID["first_lesson"] != 100 {
		t.Errorf("first_lesson progress = %f, want 100", byID["first_lesson"])
	}
}

func TestNewlyUnlocked(t *testing.T) {
	before := ProgressStats{LessonsCompleted: 4, Level: 2}
	after := ProgressStats{LessonsCompleted: 5, Level: 3}

	got := NewlyUnlocked(before, after)
	want := map[string]bool{"five_lessons": true, "level_3": true}
	if len(got) != len(want) {
		t.Fatalf("NewlyUnlocked = %v, want %v", got, want)
	}
	for _, k := range got {
		if !want[k] {
			t.Errorf("unexpected newly unlocked %q", k)
		}
	}

	// No change → empty, not nil
	got = NewlyUnlocked(after, after)
	if got == nil || len(got) != 0 {
		t.Errorf("NewlyUnlocked(same, same) = %v, want empty slice", got)
	}

	// First perfect score surfaces perfect_lesson
	got = NewlyUnlocked(
		ProgressStats{LessonsCompleted: 2, Level: 2},
		ProgressStats{LessonsCompleted: 3, PerfectLessons: 1, Level: 2},
	)
	if len(got) != 1 || got[0] != "perfect_lesson" {
		t.Errorf("NewlyUnlocked after perfect score = %v, want [perfect_lesson]", got)
	}
}
