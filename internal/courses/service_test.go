package courses

import (
	"testing"

	"github.com/sagrapp/backend/internal/models"
)

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name    string
		req     models.QuestionRequest
		wantErr bool
	}{
		{
			name: "valid multiple choice",
			req: models.QuestionRequest{
				QuestionText:  "¿Quién construyó el arca?",
				QuestionType:  models.QuestionMultipleChoice,
				Options:       []string{"Noé", "Moisés", "Abraham", "David"},
				CorrectAnswer: "Noé",
			},
		},
		{
			name: "valid true false",
			req: models.QuestionRequest{
				QuestionText:  "Jesús nació en Belén",
				QuestionType:  models.QuestionTrueFalse,
				Options:       []string{"Verdadero", "Falso"},
				CorrectAnswer: "Verdadero",
			},
		},
		{
			name: "valid fill blank without options",
			req: models.QuestionRequest{
				QuestionText:  "En el principio creó Dios los ___ y la tierra",
				QuestionType:  models.QuestionFillBlank,
				CorrectAnswer: "cielos",
			},
		},
		{
			name: "empty question text",
			req: models.QuestionRequest{
				QuestionType:  models.QuestionFillBlank,
				CorrectAnswer: "cielos",
			},
			wantErr: true,
		},
		{
			name: "multiple choice with one option",
			req: models.QuestionRequest{
				QuestionText:  "¿Quién construyó el arca?",
				QuestionType:  models.QuestionMultipleChoice,
				Options:       []string{"Noé"},
				CorrectAnswer: "Noé",
			},
			wantErr: true,
		},
		{
			name: "correct answer not among options",
			req: models.QuestionRequest{
				QuestionText:  "¿Quién construyó el arca?",
				QuestionType:  models.QuestionMultipleChoice,
				Options:       []string{"Moisés", "Abraham"},
				CorrectAnswer: "Noé",
			},
			wantErr: true,
		},
		{
			name: "true false with three options",
			req: models.QuestionRequest{
				QuestionText:  "Jesús nació en Belén",
				QuestionType:  models.QuestionTrueFalse,
				Options:       []string{"Verdadero", "Falso", "Quizás"},
				CorrectAnswer: "Verdadero",
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			req: models.QuestionRequest{
				QuestionText:  "¿Quién construyó el arca?",
				QuestionType:  "essay",
				CorrectAnswer: "Noé",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		err := ValidateQuestion(tt.req)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: ValidateQuestion error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
