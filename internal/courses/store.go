package courses

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

// ── Catalog Reads ───────────────────────────────────────

// ListCoursesWithProgress returns all courses in display order with the
// user's completion percentage for each.
func (s *Store) ListCoursesWithProgress(userID int64) ([]models.CourseSummary, error) {
	rows, err := s.db.Query(
		`SELECT c.id, c.title, c.description, COALESCE(c.image_url, ''), c.sort_order, c.is_locked,
		        c.created_at, c.updated_at,
		        COUNT(l.id) AS total_lessons,
		        COUNT(up.lesson_id) FILTER (WHERE up.completed) AS completed_lessons
		 FROM courses c
		 LEFT JOIN lessons l ON l.course_id = c.id
		 LEFT JOIN user_progress up ON up.lesson_id = l.id AND up.user_id = $1
		 GROUP BY c.id
		 ORDER BY c.sort_order`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []models.CourseSummary
	for rows.Next() {
		var c models.CourseSummary
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.SortOrder, &c.IsLocked,
			&c.CreatedAt, &c.UpdatedAt, &c.TotalLessons, &c.CompletedLessons); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		if c.TotalLessons > 0 {
			c.ProgressPercent = float64(c.CompletedLessons) / float64(c.TotalLessons) * 100
		}
		courses = append(courses, c)
	}
	if courses == nil {
		courses = []models.CourseSummary{}
	}
	return courses, rows.Err()
}

func (s *Store) GetCourse(courseID int64) (*models.Course, error) {
	var c models.Course
	err := s.db.QueryRow(
		`SELECT id, title, description, COALESCE(image_url, ''), sort_order, is_locked, created_at, updated_at
		 FROM courses WHERE id = $1`,
		courseID,
	).Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.SortOrder, &c.IsLocked, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	return &c, nil
}

// ListLessonsWithProgress returns a course's lessons in order, each with
// the user's completion state and score.
func (s *Store) ListLessonsWithProgress(courseID, userID int64) ([]models.LessonSummary, error) {
	rows, err := s.db.Query(
		`SELECT l.id, l.title, l.sort_order, l.is_locked,
		        COALESCE(up.completed, FALSE), COALESCE(up.score, 0)
		 FROM lessons l
		 LEFT JOIN user_progress up ON up.lesson_id = l.id AND up.user_id = $2
		 WHERE l.course_id = $1
		 ORDER BY l.sort_order`,
		courseID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.LessonSummary
	for rows.Next() {
		var l models.LessonSummary
		if err := rows.Scan(&l.ID, &l.Title, &l.SortOrder, &l.IsLocked, &l.Completed, &l.Score); err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, l)
	}
	if lessons == nil {
		lessons = []models.LessonSummary{}
	}
	return lessons, rows.Err()
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

// ListQuizQuestions returns a lesson's questions in serving order,
// without correct answers.
func (s *Store) ListQuizQuestions(lessonID int64) ([]models.QuizQuestion, error) {
	rows, err := s.db.Query(
		`SELECT id, question_text, question_type, options
		 FROM questions WHERE lesson_id = $1 ORDER BY sort_order`,
		lessonID,
	)
	if err != nil {
		return nil, fmt.Errorf("list quiz questions: %w", err)
	}
	defer rows.Close()

	var questions []models.QuizQuestion
	for rows.Next() {
		var q models.QuizQuestion
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.QuestionType, pq.Array(&q.Options)); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if questions == nil {
		questions = []models.QuizQuestion{}
	}
	return questions, rows.Err()
}

// GetEnabledDecision returns the lesson's enabled decision prompt, or
// nil if there is none.
func (s *Store) GetEnabledDecision(lessonID int64) (*models.Decision, error) {
	var d models.Decision
	err := s.db.QueryRow(
		`SELECT id, lesson_id, prompt, is_enabled
		 FROM decisions WHERE lesson_id = $1 AND is_enabled = TRUE
		 ORDER BY id LIMIT 1`,
		lessonID,
	).Scan(&d.ID, &d.LessonID, &d.Prompt, &d.IsEnabled)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get decision: %w", err)
	}
	return &d, nil
}

func (s *Store) ListActivities(lessonID int64) ([]models.Activity, error) {
	rows, err := s.db.Query(
		`SELECT id, lesson_id, activity_type, content, is_required
		 FROM activities WHERE lesson_id = $1 ORDER BY id`,
		lessonID,
	)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.LessonID, &a.ActivityType, &a.Content, &a.IsRequired); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	return activities, rows.Err()
}

// ── Decision Responses ──────────────────────────────────

func (s *Store) CreateDecisionResponse(userID, decisionID int64, response string) (*models.UserDecision, error) {
	var enabled bool
	err := s.db.QueryRow(
		`SELECT is_enabled FROM decisions WHERE id = $1`, decisionID,
	).Scan(&enabled)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("check decision: %w", err)
	}
	if !enabled {
		return nil, ErrNotFound
	}

	ud := models.UserDecision{UserID: userID, DecisionID: decisionID, Response: response}
	err = s.db.QueryRow(
		`INSERT INTO user_decisions (user_id, decision_id, response)
		 VALUES ($1, $2, $3) RETURNING id, created_at`,
		userID, decisionID, response,
	).Scan(&ud.ID, &ud.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert decision response: %w", err)
	}
	return &ud, nil
}

// ── Admin CRUD ──────────────────────────────────────────

func (s *Store) CreateCourse(req models.CourseRequest) (*models.Course, error) {
	var c models.Course
	err := s.db.QueryRow(
		`INSERT INTO courses (title, description, image_url, sort_order, is_locked)
		 VALUES ($1, $2, $3, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM courses), $4)
		 RETURNING id, title, description, COALESCE(image_url, ''), sort_order, is_locked, created_at, updated_at`,
		req.Title, req.Description, nullIfEmpty(req.ImageURL), req.IsLocked,
	).Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.SortOrder, &c.IsLocked, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return &c, nil
}

func (s *Store) UpdateCourse(courseID int64, req models.CourseRequest) error {
	result, err := s.db.Exec(
		`UPDATE courses SET title = $2, description = $3, image_url = $4, is_locked = $5, updated_at = NOW()
		 WHERE id = $1`,
		courseID, req.Title, req.Description, nullIfEmpty(req.ImageURL), req.IsLocked,
	)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return checkFound(result)
}

func (s *Store) DeleteCourse(courseID int64) error {
	result, err := s.db.Exec(`DELETE FROM courses WHERE id = $1`, courseID)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return checkFound(result)
}

func (s *Store) CreateLesson(courseID int64, req models.LessonRequest) (*models.Lesson, error) {
	var l models.Lesson
	err := s.db.QueryRow(
		`INSERT INTO lessons (course_id, title, devotional_text, sort_order, is_locked)
		 VALUES ($1, $2, $3, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM lessons WHERE course_id = $1), $4)
		 RETURNING id, course_id, title, devotional_text, sort_order, is_locked, created_at, updated_at`,
		courseID, req.Title, req.DevotionalText, req.IsLocked,
	).Scan(&l.ID, &l.CourseID, &l.Title, &l.DevotionalText, &l.SortOrder, &l.IsLocked, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("create lesson: %w", err)
	}
	return &l, nil
}

func (s *Store) UpdateLesson(lessonID int64, req models.LessonRequest) error {
	result, err := s.db.Exec(
		`UPDATE lessons SET title = $2, devotional_text = $3, is_locked = $4, updated_at = NOW()
		 WHERE id = $1`,
		lessonID, req.Title, req.DevotionalText, req.IsLocked,
	)
	if err != nil {
		return fmt.Errorf("update lesson: %w", err)
	}
	return checkFound(result)
}

func (s *Store) DeleteLesson(lessonID int64) error {
	result, err := s.db.Exec(`DELETE FROM lessons WHERE id = $1`, lessonID)
	if err != nil {
		return fmt.Errorf("delete lesson: %w", err)
	}
	return checkFound(result)
}

// ListQuestions returns a lesson's questions with answer keys, for the
// admin dashboard.
func (s *Store) ListQuestions(lessonID int64) ([]models.Question, error) {
	rows, err := s.db.Query(
		`SELECT id, lesson_id, question_text, question_type, options, correct_answer, sort_order
		 FROM questions WHERE lesson_id = $1 ORDER BY sort_order`,
		lessonID,
	)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.LessonID, &q.QuestionText, &q.QuestionType,
			pq.Array(&q.Options), &q.CorrectAnswer, &q.SortOrder); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return questions, rows.Err()
}

func (s *Store) CreateQuestion(lessonID int64, req models.QuestionRequest) (*models.Question, error) {
	var q models.Question
	err := s.db.QueryRow(
		`INSERT INTO questions (lesson_id, question_text, question_type, options, correct_answer, sort_order)
		 VALUES ($1, $2, $3, $4, $5, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM questions WHERE lesson_id = $1))
		 RETURNING id, lesson_id, question_text, question_type, options, correct_answer, sort_order`,
		lessonID, req.QuestionText, req.QuestionType, pq.Array(req.Options), req.CorrectAnswer,
	).Scan(&q.ID, &q.LessonID, &q.QuestionText, &q.QuestionType, pq.Array(&q.Options), &q.CorrectAnswer, &q.SortOrder)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("create question: %w", err)
	}
	return &q, nil
}

func (s *Store) UpdateQuestion(questionID int64, req models.QuestionRequest) error {
	result, err := s.db.Exec(
		`UPDATE questions SET question_text = $2, question_type = $3, options = $4, correct_answer = $5
		 WHERE id = $1`,
		questionID, req.QuestionText, req.QuestionType, pq.Array(req.Options), req.CorrectAnswer,
	)
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	return checkFound(result)
}

func (s *Store) DeleteQuestion(questionID int64) error {
	result, err := s.db.Exec(`DELETE FROM questions WHERE id = $1`, questionID)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	return checkFound(result)
}

// ── Helpers ─────────────────────────────────────────────

func checkFound(result sql.Result) error {
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
