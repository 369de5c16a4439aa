package models

import "time"

type AdminStats struct {
	Users       int `json:"users"`
	Courses     int `json:"courses"`
	Lessons     int `json:"lessons"`
	Completions int `json:"completions"`
	Decisions   int `json:"decisions"`
}

type AdminUserEntry struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	DisplayName      string    `json:"display_name"`
	XP               int64     `json:"xp"`
	Level            int       `json:"level"`
	StreakDays       int       `json:"streak_days"`
	LessonsCompleted int       `json:"lessons_completed"`
	CreatedAt        time.Time `json:"created_at"`
}

// DecisionRecord is a user decision joined with the user's email and the
// prompt it answered, for the admin decisions view.
type DecisionRecord struct {
	ID        int64     `json:"id"`
	UserEmail string    `json:"user_email"`
	Prompt    string    `json:"decision_prompt"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// GeneratedQuestion is an AI-generated draft awaiting admin review.
type GeneratedQuestion struct {
	ID            int64     `json:"id"`
	LessonID      int64     `json:"lesson_id"`
	QuestionText  string    `json:"question_text"`
	QuestionType  string    `json:"question_type"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type GenerateQuestionsRequest struct {
	Count int `json:"count"`
}

type ReviewGeneratedRequest struct {
	Action string `json:"action"` // "approve" or "reject"
}
