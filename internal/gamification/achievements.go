package gamification

import "github.com/sagrapp/backend/internal/models"

// ProgressStats is the snapshot achievements are evaluated against.
type ProgressStats struct {
	LessonsCompleted int
	PerfectLessons   int
	StreakDays       int
	Level            int
}

// AchievementDef defines a single achievement and how to measure
// progress toward it.
type AchievementDef struct {
	ID          string
	Title       string
	Description string
	XP          int
	Target      func(ProgressStats) (current, goal int)
}

// AchievementDefs lists all achievements in display order. They are
// derived from progress on every read, not persisted.
var AchievementDefs = []AchievementDef{
	{
		ID:          "first_lesson",
		Title:       "Primer Paso",
		Description: "Completa tu primera lección",
		XP:          50,
		Target:      func(s ProgressStats) (int, int) { return s.LessonsCompleted, 1 },
	},
	{
		ID:          "five_lessons",
		Title:       "Estudioso",
		Description: "Completa 5 lecciones",
		XP:          100,
		Target:      func(s ProgressStats) (int, int) { return s.LessonsCompleted, 5 },
	},
	{
		ID:          "ten_lessons",
		Title:       "Discípulo",
		Description: "Completa 10 lecciones",
		XP:          200,
		Target:      func(s ProgressStats) (int, int) { return s.LessonsCompleted, 10 },
	},
	{
		ID:          "twenty_lessons",
		Title:       "Disciplinado",
		Description: "Completa 20 lecciones",
		XP:          300,
		Target:      func(s ProgressStats) (int, int) { return s.LessonsCompleted, 20 },
	},
	{
		ID:          "perfect_lesson",
		Title:       "Perfeccionista",
		Description: "Obtén una puntuación perfecta en una lección",
		XP:          150,
		Target:      func(s ProgressStats) (int, int) { return s.PerfectLessons, 1 },
	},
	{
		ID:          "streak_7",
		Title:       "En Llamas",
		Description: "Mantén una racha de 7 días",
		XP:          200,
		Target:      func(s ProgressStats) (int, int) { return s.StreakDays, 7 },
	},
	{
		ID:          "level_3",
		Title:       "Dedicado",
		Description: "Alcanza el nivel 3",
		XP:          150,
		Target:      func(s ProgressStats) (int, int) { return s.Level, 3 },
	},
	{
		ID:          "level_5",
		Title:       "Experto",
		Description: "Alcanza el nivel 5",
		XP:          250,
		Target:      func(s ProgressStats) (int, int) { return s.Level, 5 },
	},
	{
		ID:          "level_10",
		Title:       "Maestro",
		Description: "Alcanza el nivel 10",
		XP:          500,
		Target:      func(s ProgressStats) (int, int) { return s.Level, 10 },
	},
}

// EvaluateAchievements computes the full achievement list with unlock
// state and progress percent for the given stats.
func EvaluateAchievements(stats ProgressStats) []models.Achievement {
	achievements := make([]models.Achievement, 0, len(AchievementDefs))
	for _, def := range AchievementDefs {
		current, goal := def.Target(stats)
		progress := float64(current) / float64(goal) * 100
		if progress > 100 {
			progress = 100
		}
		achievements = append(achievements, models.Achievement{
			ID:              def.ID,
			Title:           def.Title,
			Description:     def.Description,
			XP:              def.XP,
			Unlocked:        current >= goal,
			ProgressPercent: progress,
		})
	}
	return achievements
}

// UnlockedKeys returns the ids of achievements unlocked at the given
// stats.
func UnlockedKeys(stats ProgressStats) []string {
	var keys []string
	for _, a := range EvaluateAchievements(stats) {
		if a.Unlocked {
			keys = append(keys, a.ID)
		}
	}
	return keys
}

// NewlyUnlocked returns the ids unlocked in after but not in before.
func NewlyUnlocked(before, after ProgressStats) []string {
	prior := make(map[string]bool)
	for _, k := range UnlockedKeys(before) {
		prior[k] = true
	}

	unlocked := []string{}
	for _, k := range UnlockedKeys(after) {
		if !prior[k] {
			unlocked = append(unlocked, k)
		}
	}
	return unlocked
}
