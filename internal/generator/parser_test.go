package generator

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const validBatchJSON = `{"questions":[
	{"type":"multiple_choice","prompt":"¿Quién construyó el arca?","options":["Noé","Moisés","David","Pedro"],"correct_answer":"Noé"},
	{"type":"true_false","prompt":"David venció a Goliat.","options":["Verdadero","Falso"],"correct_answer":"Verdadero"},
	{"type":"fill_blank","prompt":"En el principio creó Dios los cielos y la ____.","options":[],"correct_answer":"tierra"}
]}`

func TestParseResponseValid(t *testing.T) {
	batch, err := ParseResponse(validBatchJSON)
	if err != nil {
		t.Fatalf("ParseResponse returned error: %v", err)
	}
	if len(batch.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(batch.Questions))
	}
	if batch.Questions[0].CorrectAnswer != "Noé" {
		t.Errorf("expected correct answer Noé, got %q", batch.Questions[0].CorrectAnswer)
	}
}

func TestParseResponseStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validBatchJSON + "\n```"
	batch, err := ParseResponse(fenced)
	if err != nil {
		t.Fatalf("ParseResponse returned error: %v", err)
	}
	if len(batch.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(batch.Questions))
	}
}

func TestParseResponseInvalidJSON(t *testing.T) {
	_, err := ParseResponse("not json at all")
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseResponseEmptyBatch(t *testing.T) {
	_, err := ParseResponse(`{"questions":[]}`)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidateBatchRejections(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{
			name:    "answer not among options",
			json:    `{"questions":[{"type":"multiple_choice","prompt":"¿Quién?","options":["Noé","Moisés"],"correct_answer":"David"}]}`,
			wantErr: "correct_answer not among options",
		},
		{
			name:    "true_false with wrong option count",
			json:    `{"questions":[{"type":"true_false","prompt":"¿Verdad?","options":["Verdadero"],"correct_answer":"Verdadero"}]}`,
			wantErr: "needs exactly 2 options",
		},
		{
			name:    "fill_blank without blank",
			json:    `{"questions":[{"type":"fill_blank","prompt":"Sin espacio","options":[],"correct_answer":"x"}]}`,
			wantErr: "no blank",
		},
		{
			name:    "unknown type",
			json:    `{"questions":[{"type":"essay","prompt":"Escribe","options":[],"correct_answer":"x"}]}`,
			wantErr: "invalid type",
		},
		{
			name:    "empty prompt",
			json:    `{"questions":[{"type":"fill_blank","prompt":"","options":[],"correct_answer":"x"}]}`,
			wantErr: "empty prompt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.json)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMockClientProducesValidBatch(t *testing.T) {
	resp, err := NewMockClient().Generate(context.Background(), "", "")
	if err != nil {
		t.Fatalf("mock generate failed: %v", err)
	}
	batch, err := ParseResponse(resp.Content)
	if err != nil {
		t.Fatalf("mock output failed validation: %v", err)
	}
	if len(batch.Questions) == 0 {
		t.Fatal("mock batch has no questions")
	}
}
