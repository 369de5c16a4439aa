package generator

import (
	"fmt"
	"strings"

	"github.com/sagrapp/backend/internal/models"
)

func SystemPrompt() string {
	return `You are a content author for a Spanish-language Bible study app. You write quiz questions that test comprehension of a short devotional reading.

All question prompts, options, and answers MUST be in Spanish.

You produce three question types:
- "multiple_choice": 4 options, exactly one correct. The correct_answer must be copied verbatim from the options array.
- "true_false": options are exactly ["Verdadero", "Falso"] and correct_answer is one of them.
- "fill_blank": the prompt contains a blank written as ____, options is an empty array, and correct_answer is the missing word or short phrase.

Rules:
- Every question must be answerable from the devotional text alone.
- Do not write trick questions or questions about trivia outside the reading.
- Keep prompts under 200 characters.

Respond with ONLY a JSON object in this exact format, no markdown fences, no commentary:

{
  "questions": [
    {
      "type": "multiple_choice",
      "prompt": "...",
      "options": ["...", "...", "...", "..."],
      "correct_answer": "..."
    }
  ]
}`
}

func BuildUserPrompt(lesson *models.Lesson, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write %d quiz questions for the following lesson.\n\n", count)
	fmt.Fprintf(&b, "Lesson title: %s\n", lesson.Title)
	b.WriteString("\nDevotional text:\n")
	b.WriteString(lesson.DevotionalText)
	b.WriteString("\n\nMix the question types. At most one fill_blank question per batch.")

	return b.String()
}
