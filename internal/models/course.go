package models

import "time"

// Question types served in lessons.
const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionTrueFalse      = "true_false"
	QuestionFillBlank      = "fill_blank"
)

// Activity types attached to lessons.
const (
	ActivityMemorizeVerse = "memorize_verse"
	ActivityPrayer        = "prayer"
	ActivityShare         = "share"
)

type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	SortOrder   int       `json:"sort_order"`
	IsLocked    bool      `json:"is_locked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Lesson struct {
	ID             int64     `json:"id"`
	CourseID       int64     `json:"course_id"`
	Title          string    `json:"title"`
	DevotionalText string    `json:"devotional_text"`
	SortOrder      int       `json:"sort_order"`
	IsLocked       bool      `json:"is_locked"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Question is the full record, including the answer key. Served only to
// admin endpoints — the app receives QuizQuestion instead.
type Question struct {
	ID            int64    `json:"id"`
	LessonID      int64    `json:"lesson_id"`
	QuestionText  string   `json:"question_text"`
	QuestionType  string   `json:"question_type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	SortOrder     int      `json:"sort_order"`
}

// QuizQuestion is the app-facing shape of a question. The correct answer
// stays server-side; scoring happens on lesson completion.
type QuizQuestion struct {
	ID           int64    `json:"id"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	Options      []string `json:"options"`
}

type Decision struct {
	ID        int64  `json:"id"`
	LessonID  int64  `json:"lesson_id"`
	Prompt    string `json:"prompt"`
	IsEnabled bool   `json:"is_enabled"`
}

type Activity struct {
	ID           int64  `json:"id"`
	LessonID     int64  `json:"lesson_id"`
	ActivityType string `json:"activity_type"`
	Content      string `json:"content"`
	IsRequired   bool   `json:"is_required"`
}

// CourseSummary is a course plus the caller's completion percentage.
type CourseSummary struct {
	Course
	TotalLessons     int     `json:"total_lessons"`
	CompletedLessons int     `json:"completed_lessons"`
	ProgressPercent  float64 `json:"progress_percent"`
}

// LessonSummary is a lesson row in a course detail view, with the
// caller's progress on it.
type LessonSummary struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	SortOrder int    `json:"sort_order"`
	IsLocked  bool   `json:"is_locked"`
	Completed bool   `json:"completed"`
	Score     int    `json:"score"`
}

type CourseDetailResponse struct {
	Course  Course          `json:"course"`
	Lessons []LessonSummary `json:"lessons"`
}

// LessonContentResponse is everything the app needs to run a lesson
// session: devotional text, quiz questions, the enabled decision prompt
// (if any), and activities.
type LessonContentResponse struct {
	Lesson     Lesson         `json:"lesson"`
	Questions  []QuizQuestion `json:"questions"`
	Decision   *Decision      `json:"decision,omitempty"`
	Activities []Activity     `json:"activities"`
}

type CourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsLocked    bool   `json:"is_locked"`
}

type LessonRequest struct {
	Title          string `json:"title"`
	DevotionalText string `json:"devotional_text"`
	IsLocked       bool   `json:"is_locked"`
}

type QuestionRequest struct {
	QuestionText  string   `json:"question_text"`
	QuestionType  string   `json:"question_type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type MoveRequest struct {
	Direction string `json:"direction"` // "up" or "down"
}

type DecisionResponseRequest struct {
	Response string `json:"response"`
}
