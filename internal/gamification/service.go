package gamification

import (
	"fmt"
	"log"
	"time"

	"github.com/sagrapp/backend/internal/models"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// ── Lesson Completion ───────────────────────────────────

// CompleteLesson scores a lesson attempt, persists the progress record,
// awards XP, and bumps the streak. Side effects go through atomic store
// operations; the arithmetic itself is pure.
func (s *Service) CompleteLesson(userID, lessonID int64, answers map[int64]string) (*models.CompleteLessonResponse, error) {
	key, err := s.store.LessonAnswerKey(lessonID)
	if err != nil {
		return nil, err
	}

	result, err := ScoreLesson(key, answers)
	if err != nil {
		return nil, err
	}

	before, err := s.snapshotStats(userID)
	if err != nil {
		return nil, fmt.Errorf("snapshot stats: %w", err)
	}

	now := time.Now().UTC()
	progress := models.UserProgress{
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   true,
		Score:       result.ScorePercent,
		XPEarned:    result.XPEarned,
		CompletedAt: &now,
	}
	if err := s.store.UpsertProgress(progress); err != nil {
		return nil, err
	}
	if err := s.store.AddXP(userID, result.XPEarned); err != nil {
		return nil, fmt.Errorf("award xp: %w", err)
	}
	if err := s.bumpStreak(userID, now); err != nil {
		log.Printf("[gamification] failed to bump streak for user %d: %v", userID, err)
	}

	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	after, err := s.snapshotStats(userID)
	if err != nil {
		return nil, fmt.Errorf("snapshot stats: %w", err)
	}

	level, err := LevelFor(user.XP)
	if err != nil {
		return nil, err
	}

	return &models.CompleteLessonResponse{
		ScorePercent:         result.ScorePercent,
		XPEarned:             result.XPEarned,
		TotalXP:              user.XP,
		Level:                level,
		StreakDays:           user.StreakDays,
		AchievementsUnlocked: NewlyUnlocked(before, after),
	}, nil
}

// ── Streak ──────────────────────────────────────────────

// RefreshStreak is the session-start touch: it recomputes the streak for
// today and persists it. Safe to call any number of times per day.
func (s *Service) RefreshStreak(userID int64) (*models.StreakResponse, error) {
	now := time.Now().UTC()
	if err := s.bumpStreak(userID, now); err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	return &models.StreakResponse{
		StreakDays: user.StreakDays,
		ActiveDate: now.Format("2006-01-02"),
	}, nil
}

func (s *Service) bumpStreak(userID int64, now time.Time) error {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return err
	}

	newStreak := NextStreak(user.LastActivity, user.StreakDays, now)
	// The guarded write is a no-op when another event already counted today.
	_, err = s.store.TouchStreak(userID, newStreak, now)
	return err
}

// ── Profile ─────────────────────────────────────────────

func (s *Service) GetGamification(userID int64) (*models.GamificationResponse, error) {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	completed, perfect, err := s.store.ProgressCounts(userID)
	if err != nil {
		return nil, err
	}

	level, err := LevelFor(user.XP)
	if err != nil {
		return nil, err
	}

	resp := &models.GamificationResponse{
		TotalXP:          user.XP,
		Level:            level,
		StreakDays:       user.StreakDays,
		LessonsCompleted: completed,
		PerfectLessons:   perfect,
	}
	if user.LastActivity != nil {
		resp.LastActivity = user.LastActivity.UTC().Format("2006-01-02")
	}
	return resp, nil
}

func (s *Service) GetAchievements(userID int64) (*models.AchievementsResponse, error) {
	stats, err := s.snapshotStats(userID)
	if err != nil {
		return nil, err
	}

	achievements := EvaluateAchievements(stats)
	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
	}

	return &models.AchievementsResponse{
		Achievements: achievements,
		Unlocked:     unlocked,
		Total:        len(achievements),
	}, nil
}

func (s *Service) snapshotStats(userID int64) (ProgressStats, error) {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return ProgressStats{}, err
	}
	completed, perfect, err := s.store.ProgressCounts(userID)
	if err != nil {
		return ProgressStats{}, err
	}
	level, err := LevelFor(user.XP)
	if err != nil {
		return ProgressStats{}, err
	}
	return ProgressStats{
		LessonsCompleted: completed,
		PerfectLessons:   perfect,
		StreakDays:       user.StreakDays,
		Level:            level.Level,
	}, nil
}
