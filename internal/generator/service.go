package generator

import (
	"context"
	"fmt"
	"log"

	"github.com/sagrapp/backend/internal/models"
)

const (
	defaultQuestionCount = 4
	maxQuestionCount     = 10
)

type Service struct {
	store *Store
	gen   *Generator
}

func NewService(store *Store, gen *Generator) *Service {
	return &Service{store: store, gen: gen}
}

// GenerateForLesson asks the model for a question batch and stores it as
// drafts. The drafts only reach the live quiz after admin approval.
func (s *Service) GenerateForLesson(ctx context.Context, lessonID int64, count int) ([]models.GeneratedQuestion, error) {
	if count <= 0 {
		count = defaultQuestionCount
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}

	lesson, err := s.store.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}
	if lesson.DevotionalText == "" {
		return nil, fmt.Errorf("lesson %d has no devotional text to generate from", lessonID)
	}

	batch, resp, err := s.gen.GenerateForLesson(ctx, lesson, count)
	if err != nil {
		return nil, err
	}
	log.Printf("[generator] lesson %d: %d questions, %d prompt / %d output tokens",
		lessonID, len(batch.Questions), resp.PromptTokens, resp.OutputTokens)

	return s.store.InsertDrafts(lessonID, batch, s.gen.ModelName())
}

func (s *Service) ListDrafts(lessonID int64) ([]models.GeneratedQuestion, error) {
	return s.store.ListDrafts(lessonID)
}

func (s *Service) ReviewDraft(draftID int64, action string) error {
	switch action {
	case "approve":
		return s.store.ApproveDraft(draftID)
	case "reject":
		return s.store.RejectDraft(draftID)
	default:
		return fmt.Errorf("invalid review action %q", action)
	}
}
