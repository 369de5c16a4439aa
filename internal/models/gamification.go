package models

import "time"

type UserProgress struct {
	UserID      int64      `json:"user_id"`
	LessonID    int64      `json:"lesson_id"`
	Completed   bool       `json:"completed"`
	Score       int        `json:"score"`
	XPEarned    int        `json:"xp_earned"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type UserDecision struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	DecisionID int64     `json:"decision_id"`
	Response   string    `json:"response"`
	CreatedAt  time.Time `json:"created_at"`
}

type CompleteLessonRequest struct {
	// Answers maps question id to the submitted answer text.
	Answers map[int64]string `json:"answers"`
}

type LevelInfo struct {
	Level           int     `json:"level"`
	NextLevelXP     int64   `json:"next_level_xp"`
	ProgressPercent float64 `json:"progress_percent"`
}

type CompleteLessonResponse struct {
	ScorePercent         int       `json:"score_percent"`
	XPEarned             int       `json:"xp_earned"`
	TotalXP              int64     `json:"total_xp"`
	Level                LevelInfo `json:"level"`
	StreakDays           int       `json:"streak_days"`
	AchievementsUnlocked []string  `json:"achievements_unlocked"`
}

type GamificationResponse struct {
	TotalXP          int64     `json:"total_xp"`
	Level            LevelInfo `json:"level"`
	StreakDays       int       `json:"streak_days"`
	LastActivity     string    `json:"last_activity,omitempty"`
	LessonsCompleted int       `json:"lessons_completed"`
	PerfectLessons   int       `json:"perfect_lessons"`
}

type StreakResponse struct {
	StreakDays int    `json:"streak_days"`
	ActiveDate string `json:"active_date"`
}

type Achievement struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	XP              int     `json:"xp"`
	Unlocked        bool    `json:"unlocked"`
	ProgressPercent float64 `json:"progress_percent"`
}

type AchievementsResponse struct {
	Achievements []Achievement `json:"achievements"`
	Unlocked     int           `json:"unlocked"`
	Total        int           `json:"total"`
}
