package gamification

import (
	"fmt"
	"math"
)

// XP award for a completed lesson: a fixed base plus a bonus per correct
// answer.
const (
	LessonBaseXP       = 50
	XPPerCorrectAnswer = 10
)

// AnswerKey is one question's id and its correct answer.
type AnswerKey struct {
	QuestionID    int64
	CorrectAnswer string
}

// LessonScore is the result of scoring one lesson attempt.
type LessonScore struct {
	ScorePercent int
	XPEarned     int
}

// ScoreLesson compares submitted answers against the lesson's answer key.
// Comparison is exact string equality, case-sensitive. An empty question
// set scores 0 with the base XP only. Duplicate question ids and
// submitted ids that are not in the key fail with ErrInvalidArgument.
func ScoreLesson(questions []AnswerKey, answers map[int64]string) (LessonScore, error) {
	seen := make(map[int64]bool, len(questions))
	for _, q := range questions {
		if seen[q.QuestionID] {
			return LessonScore{}, fmt.Errorf("%w: duplicate question id %d", ErrInvalidArgument, q.QuestionID)
		}
		seen[q.QuestionID] = true
	}
	for id := range answers {
		if !seen[id] {
			return LessonScore{}, fmt.Errorf("%w: answer for unknown question id %d", ErrInvalidArgument, id)
		}
	}

	correct := 0
	for _, q := range questions {
		if submitted, ok := answers[q.QuestionID]; ok && submitted == q.CorrectAnswer {
			correct++
		}
	}

	score := 0
	if len(questions) > 0 {
		score = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	}

	return LessonScore{
		ScorePercent: score,
		XPEarned:     LessonBaseXP + XPPerCorrectAnswer*correct,
	}, nil
}
