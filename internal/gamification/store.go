package gamification

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sagrapp/backend/internal/models"
)

var ErrLessonNotFound = errors.New("lesson not found")

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetUser(userID int64) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(
		`SELECT id, email, name, is_admin, xp, streak_days, last_activity, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&u.ID, &u.Email, &u.Name, &u.IsAdmin, &u.XP, &u.StreakDays, &u.LastActivity, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// AddXP adds amount to the user's XP counter server-side, so concurrent
// awards cannot lose updates. XP only ever goes up; negative amounts are
// rejected.
func (s *Store) AddXP(userID int64, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative xp amount %d", ErrInvalidArgument, amount)
	}
	_, err := s.db.Exec(
		`UPDATE users SET xp = xp + $2, updated_at = NOW() WHERE id = $1`,
		userID, amount,
	)
	return err
}

// UpsertProgress records a lesson completion, keyed by (user_id,
// lesson_id). Replaying a lesson overwrites the previous attempt.
func (s *Store) UpsertProgress(p models.UserProgress) error {
	_, err := s.db.Exec(
		`INSERT INTO user_progress (user_id, lesson_id, completed, score, xp_earned, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, lesson_id) DO UPDATE SET
		     completed = $3, score = $4, xp_earned = $5, completed_at = $6`,
		p.UserID, p.LessonID, p.Completed, p.Score, p.XPEarned, p.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

// TouchStreak writes the new streak and activity date in one guarded
// statement. The guard makes same-day repeats a no-op, so two concurrent
// activity events cannot double-increment the streak. Returns whether
// the write applied.
func (s *Store) TouchStreak(userID int64, newStreak int, today time.Time) (bool, error) {
	day := today.UTC().Format("2006-01-02")
	result, err := s.db.Exec(
		`UPDATE users SET streak_days = $2, last_activity = $3, updated_at = NOW()
		 WHERE id = $1 AND (last_activity IS NULL OR last_activity < $3)`,
		userID, newStreak, day,
	)
	if err != nil {
		return false, fmt.Errorf("touch streak: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// LessonAnswerKey returns the lesson's questions as (id, correct answer)
// pairs in serving order.
func (s *Store) LessonAnswerKey(lessonID int64) ([]AnswerKey, error) {
	var exists bool
	if err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM lessons WHERE id = $1)`, lessonID,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check lesson: %w", err)
	}
	if !exists {
		return nil, ErrLessonNotFound
	}

	rows, err := s.db.Query(
		`SELECT id, correct_answer FROM questions WHERE lesson_id = $1 ORDER BY sort_order`,
		lessonID,
	)
	if err != nil {
		return nil, fmt.Errorf("get answer key: %w", err)
	}
	defer rows.Close()

	var key []AnswerKey
	for rows.Next() {
		var k AnswerKey
		if err := rows.Scan(&k.QuestionID, &k.CorrectAnswer); err != nil {
			return nil, err
		}
		key = append(key, k)
	}
	return key, rows.Err()
}

// ProgressCounts returns how many lessons the user has completed and how
// many of those were perfect scores.
func (s *Store) ProgressCounts(userID int64) (completed, perfect int, err error) {
	err = s.db.QueryRow(
		`SELECT COUNT(*) FILTER (WHERE completed),
		        COUNT(*) FILTER (WHERE completed AND score = 100)
		 FROM user_progress WHERE user_id = $1`,
		userID,
	).Scan(&completed, &perfect)
	if err != nil {
		return 0, 0, fmt.Errorf("progress counts: %w", err)
	}
	return completed, perfect, nil
}
