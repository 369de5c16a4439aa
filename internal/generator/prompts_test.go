package generator

import (
	"strings"
	"testing"

	"github.com/sagrapp/backend/internal/models"
)

func TestSystemPromptNamesAllTypes(t *testing.T) {
	prompt := SystemPrompt()
	for _, typ := range []string{"multiple_choice", "true_false", "fill_blank"} {
		if !strings.Contains(prompt, typ) {
			t.Errorf("system prompt missing question type %q", typ)
		}
	}
	if !strings.Contains(prompt, "Spanish") {
		t.Error("system prompt does not require Spanish output")
	}
}

func TestBuildUserPrompt(t *testing.T) {
	lesson := &models.Lesson{
		Title:          "La fe de Abraham",
		DevotionalText: "Abraham creyó a Dios y le fue contado por justicia.",
	}

	prompt := BuildUserPrompt(lesson, 5)

	if !strings.Contains(prompt, "5 quiz questions") {
		t.Error("prompt does not request the question count")
	}
	if !strings.Contains(prompt, lesson.Title) {
		t.Error("prompt missing lesson title")
	}
	if !strings.Contains(prompt, lesson.DevotionalText) {
		t.Error("prompt missing devotional text")
	}
}
