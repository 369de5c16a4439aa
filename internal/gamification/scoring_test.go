package gamification

import (
	"errors"
	"testing"
)

func key(ids ...int64) []AnswerKey {
	var k []AnswerKey
	for _, id := range ids {
		k = append(k, AnswerKey{QuestionID: id, CorrectAnswer: "A"})
	}
	return k
}

func TestScoreLessonFullScore(t *testing.T) {
	questions := key(1, 2, 3, 4, 5)
	answers := map[int64]string{1: "A", 2: "A", 3: "A", 4: "A", 5: "A"}

	got, err := ScoreLesson(questions, answers)
	if err != nil {
		t.Fatalf("ScoreLesson error: %v", err)
	}
	if got.ScorePercent != 100 {
		t.Errorf("ScorePercent = %d, want 100", got.ScorePercent)
	}
	if got.XPEarned != 100 { // 50 base + 10*5
		t.Errorf("XPEarned = %d, want 100", got.XPEarned)
	}
}

func TestScoreLessonPartial(t *testing.T) {
	// 3 of 4 correct → 75%, 50 + 30 XP
	questions := []AnswerKey{
		{QuestionID: 1, CorrectAnswer: "Jesús"},
		{QuestionID: 2, CorrectAnswer: "Verdadero"},
		{QuestionID: 3, CorrectAnswer: "Moisés"},
		{QuestionID: 4, CorrectAnswer: "Falso"},
	}
	answers := map[int64]string{1: "Jesús", 2: "Verdadero", 3: "Moisés", 4: "Verdadero"}

	got, err := ScoreLesson(questions, answers)
	if err != nil {
		t.Fatalf("ScoreLesson error: %v", err)
	}
	if got.ScorePercent != 75 {
		t.Errorf("ScorePercent = %d, want 75", got.ScorePercent)
	}
	if got.XPEarned != 80 {
		t.Errorf("XPEarned = %d, want 80", got.XPEarned)
	}
}

func TestScoreLessonCaseSensitive(t *testing.T) {
	questions := []AnswerKey{{QuestionID: 1, CorrectAnswer: "Pedro"}}
	got, err := ScoreLesson(questions, map[int64]string{1: "pedro"})
	if err != nil {
		t.Fatalf("ScoreLesson error: %v", err)
	}
	if got.ScorePercent != 0 {
		t.Errorf("ScorePercent = %d, want 0 for case mismatch", got.ScorePercent)
	}
}

func TestScoreLessonMissingAnswers(t *testing.T) {
	// Unanswered questions count as wrong
	got, err := ScoreLesson(key(1, 2), map[int64]string{1: "A"})
	if err != nil {
		t.Fatalf("ScoreLesson error: %v", err)
	}
	if got.ScorePercent != 50 {
		t.Errorf("ScorePercent = %d, want 50", got.ScorePercent)
	}
	if got.XPEarned != 60 {
		t.Errorf("XPEarned = %d, want 60", got.XPEarned)
	}
}

func TestScoreLessonEmpty(t *testing.T) {
	got, err := ScoreLesson(nil, map[int64]string{})
	if err != nil {
		t.Fatalf("ScoreLesson error: %v", err)
	}
	if got.ScorePercent != 0 {
		t.Errorf("ScorePercent = %d, want 0 for empty question set", got.ScorePercent)
	}
	if got.XPEarned != LessonBaseXP {
		t.Errorf("XPEarned = %d, want base award %d", got.XPEarned, LessonBaseXP)
	}
}

func TestScoreLessonRounding(t *testing.T) {
	// 1 of 3 → 33.33 rounds to 33; 2 of 3 → 66.67 rounds to 67
	got, _ := ScoreLesson(key(1, 2, 3), map[int64]string{1: "A"})
	if got.ScorePercent != 33 {
		t.Errorf("1/3 ScorePercent = %d, want 33", got.ScorePercent)
	}
	got, _ = ScoreLesson(key(1, 2, 3), map[int64]string{1: "A", 2: "A"})
	if got.ScorePercent != 67 {
		t.Errorf("2/3 ScorePercent = %d, want 67", got.ScorePercent)
	}
}

func TestScoreLessonIdempotent(t *testing.T) {
	questions := key(1, 2, 3)
	answers := map[int64]string{1: "A", 2: "B"}

	first, err := ScoreLesson(questions, answers)
	if err != nil {
		t.Fatalf("ScoreLesson error: %v", err)
	}
	second, err := ScoreLesson(questions, answers)
	if err != nil {
		t.Fatalf("ScoreLesson error: %v", err)
	}
	if first != second {
		t.Errorf("repeat scoring differs: %+v vs %+v", first, second)
	}
}

func TestScoreLessonDuplicateIDs(t *testing.T) {
	questions := []AnswerKey{
		{QuestionID: 1, CorrectAnswer: "A"},
		{QuestionID: 1, CorrectAnswer: "B"},
	}
	_, err := ScoreLesson(questions, map[int64]string{1: "A"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("duplicate ids error = %v, want ErrInvalidArgument", err)
	}
}

func TestScoreLessonUnknownAnswerID(t *testing.T) {
	_, err := ScoreLesson(key(1, 2), map[int64]string{99: "A"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown answer id error = %v, want ErrInvalidArgument", err)
	}
}
