package admin

import (
	"database/sql"
	"fmt"

	"github.com/sagrapp/backend/internal/gamification"
	"github.com/sagrapp/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetStats() (*models.AdminStats, error) {
	var stats models.AdminStats
	err := s.db.QueryRow(
		`SELECT (SELECT COUNT(*) FROM users),
		        (SELECT COUNT(*) FROM courses),
		        (SELECT COUNT(*) FROM lessons),
		        (SELECT COUNT(*) FROM user_progress WHERE completed),
		        (SELECT COUNT(*) FROM user_decisions)`,
	).Scan(&stats.Users, &stats.Courses, &stats.Lessons, &stats.Completions, &stats.Decisions)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return &stats, nil
}

func (s *Store) ListUsers() ([]models.AdminUserEntry, error) {
	rows, err := s.db.Query(
		`SELECT u.id, u.email, u.name, u.xp, u.streak_days, u.created_at,
		        COUNT(up.lesson_id) FILTER (WHERE up.completed) AS lessons_completed
		 FROM users u
		 LEFT JOIN user_progress up ON up.user_id = u.id
		 GROUP BY u.id
		 ORDER BY u.xp DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.AdminUserEntry
	for rows.Next() {
		var u models.AdminUserEntry
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.XP, &u.StreakDays, &u.CreatedAt, &u.LessonsCompleted); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.DisplayName = models.User{Name: u.Name}.DisplayName()
		level, err := gamification.LevelFor(u.XP)
		if err != nil {
			return nil, err
		}
		u.Level = level.Level
		users = append(users, u)
	}
	if users == nil {
		users = []models.AdminUserEntry{}
	}
	return users, rows.Err()
}

// ListDecisions returns decision records newest first, joined with the
// user's email and the prompt. query filters on email, prompt, or
// response text.
func (s *Store) ListDecisions(query string) ([]models.DecisionRecord, error) {
	sqlQuery := `SELECT ud.id, u.email, d.prompt, ud.response, ud.created_at
	             FROM user_decisions ud
	             JOIN users u ON u.id = ud.user_id
	             JOIN decisions d ON d.id = ud.decision_id`
	args := []interface{}{}
	if query != "" {
		sqlQuery += ` WHERE u.email ILIKE $1 OR d.prompt ILIKE $1 OR ud.response ILIKE $1`
		args = append(args, "%"+query+"%")
	}
	sqlQuery += ` ORDER BY ud.created_at DESC LIMIT 200`

	rows, err := s.db.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var records []models.DecisionRecord
	for rows.Next() {
		var rec models.DecisionRecord
		if err := rows.Scan(&rec.ID, &rec.UserEmail, &rec.Prompt, &rec.Response, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan decision record: %w", err)
		}
		records = append(records, rec)
	}
	if records == nil {
		records = []models.DecisionRecord{}
	}
	return records, rows.Err()
}
