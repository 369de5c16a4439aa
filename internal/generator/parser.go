package generator

import (
	"encoding/json"
	"fmt"
	"strings"
)

type GeneratedBatch struct {
	Questions []DraftQuestion `json:"questions"`
}

// DraftQuestion is the JSON shape the model returns for one question.
type DraftQuestion struct {
	Type          string   `json:"type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

func ParseResponse(responseBody string) (*GeneratedBatch, error) {
	cleaned := stripCodeFences(responseBody)

	var batch GeneratedBatch
	if err := json.Unmarshal([]byte(cleaned), &batch); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateBatch(&batch); err != nil {
		return nil, err
	}

	return &batch, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

func validateBatch(batch *GeneratedBatch) error {
	var errs []string

	if len(batch.Questions) == 0 {
		return &ValidationError{Errors: []string{"no questions in batch"}}
	}

	for i, q := range batch.Questions {
		qNum := i + 1

		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("question %d: empty prompt", qNum))
		}
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			errs = append(errs, fmt.Sprintf("question %d: empty correct_answer", qNum))
		}

		switch q.Type {
		case "multiple_choice":
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("question %d: multiple_choice needs at least 2 options, got %d", qNum, len(q.Options)))
			} else if !containsOption(q.Options, q.CorrectAnswer) {
				errs = append(errs, fmt.Sprintf("question %d: correct_answer not among options", qNum))
			}
		case "true_false":
			if len(q.Options) != 2 {
				errs = append(errs, fmt.Sprintf("question %d: true_false needs exactly 2 options, got %d", qNum, len(q.Options)))
			} else if !containsOption(q.Options, q.CorrectAnswer) {
				errs = append(errs, fmt.Sprintf("question %d: correct_answer not among options", qNum))
			}
		case "fill_blank":
			if !strings.Contains(q.Prompt, "____") {
				errs = append(errs, fmt.Sprintf("question %d: fill_blank prompt has no blank", qNum))
			}
		default:
			errs = append(errs, fmt.Sprintf("question %d: invalid type %q", qNum, q.Type))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
