package generator

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sagrapp/backend/internal/models"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetLesson(lessonID int64) (*models.Lesson, error) {
	var l models.Lesson
	err := s.db.QueryRow(
		`SELECT id, course_id, title, devotional_text, sort_order, is_locked, created_at, updated_at
		 FROM lessons WHERE id = $1`,
		lessonID,
	).Scan(&l.ID, &l.CourseID, &l.Title, &l.DevotionalText, &l.SortOrder, &l.IsLocked, &l.CreatedAt, &l.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	return &l, nil
}

// InsertDrafts stores a generated batch as draft rows awaiting review.
func (s *Store) InsertDrafts(lessonID int64, batch *GeneratedBatch, model string) ([]models.GeneratedQuestion, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin insert drafts: %w", err)
	}
	defer tx.Rollback()

	var drafts []models.GeneratedQuestion
	for _, q := range batch.Questions {
		var d models.GeneratedQuestion
		err := tx.QueryRow(
			`INSERT INTO generated_questions (lesson_id, question_text, question_type, options, correct_answer, model_used)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id, lesson_id, question_text, question_type, options, correct_answer, status, created_at`,
			lessonID, q.Prompt, q.Type, pq.Array(q.Options), q.CorrectAnswer, model,
		).Scan(&d.ID, &d.LessonID, &d.QuestionText, &d.QuestionType, pq.Array(&d.Options), &d.CorrectAnswer, &d.Status, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("insert draft: %w", err)
		}
		drafts = append(drafts, d)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit drafts: %w", err)
	}
	return drafts, nil
}

func (s *Store) ListDrafts(lessonID int64) ([]models.GeneratedQuestion, error) {
	rows, err := s.db.Query(
		`SELECT id, lesson_id, question_text, question_type, options, correct_answer, status, created_at
		 FROM generated_questions WHERE lesson_id = $1 AND status = 'draft' ORDER BY id`,
		lessonID,
	)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []models.GeneratedQuestion
	for rows.Next() {
		var d models.GeneratedQuestion
		if err := rows.Scan(&d.ID, &d.LessonID, &d.QuestionText, &d.QuestionType, pq.Array(&d.Options), &d.CorrectAnswer, &d.Status, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		drafts = append(drafts, d)
	}
	if drafts == nil {
		drafts = []models.GeneratedQuestion{}
	}
	return drafts, rows.Err()
}

// ApproveDraft copies the draft into the lesson's question list and marks
// it approved, in one transaction.
func (s *Store) ApproveDraft(draftID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin approve: %w", err)
	}
	defer tx.Rollback()

	var d models.GeneratedQuestion
	err = tx.QueryRow(
		`SELECT id, lesson_id, question_text, question_type, options, correct_answer
		 FROM generated_questions WHERE id = $1 AND status = 'draft' FOR UPDATE`,
		draftID,
	).Scan(&d.ID, &d.LessonID, &d.QuestionText, &d.QuestionType, pq.Array(&d.Options), &d.CorrectAnswer)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load draft: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO questions (lesson_id, question_text, question_type, options, correct_answer, sort_order)
		 VALUES ($1, $2, $3, $4, $5, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM questions WHERE lesson_id = $1))`,
		d.LessonID, d.QuestionText, d.QuestionType, pq.Array(d.Options), d.CorrectAnswer,
	)
	if err != nil {
		return fmt.Errorf("copy draft to questions: %w", err)
	}

	_, err = tx.Exec(
		`UPDATE generated_questions SET status = 'approved', reviewed_at = NOW() WHERE id = $1`,
		draftID,
	)
	if err != nil {
		return fmt.Errorf("mark approved: %w", err)
	}

	return tx.Commit()
}

func (s *Store) RejectDraft(draftID int64) error {
	result, err := s.db.Exec(
		`UPDATE generated_questions SET status = 'rejected', reviewed_at = NOW()
		 WHERE id = $1 AND status = 'draft'`,
		draftID,
	)
	if err != nil {
		return fmt.Errorf("reject draft: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
