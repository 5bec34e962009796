package errors

import (
	"strings"
	"testing"
)

func TestValidateDocuments(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"single", []string{"a.pdf"}, false},
		{"duplicates allowed", []string{"a.pdf", "a.pdf"}, false},
		{"paths allowed", []string{"laws/2020/a.pdf"}, false},
		{"unicode", []string{"Gesetz-ü.pdf"}, false},

		{"nil", nil, true},
		{"empty list", []string{}, true},
		{"empty id", []string{"a.pdf", ""}, true},
		{"blank id", []string{"   "}, true},
		{"too long", []string{strings.Repeat("a", MaxDocumentIDLength+1)}, true},
		{"null byte", []string{"a\x00b"}, true},
		{"newline", []string{"a\nb"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocuments(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocuments(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	if err := ValidateFormat("svg", "dot", "svg"); err != nil {
		t.Errorf("ValidateFormat(svg) = %v", err)
	}

	err := ValidateFormat("png", "dot", "svg")
	if !Is(err, ErrCodeInvalidFormat) {
		t.Fatalf("ValidateFormat(png) = %v, want INVALID_FORMAT", err)
	}
	if !strings.Contains(err.Error(), "dot, svg") {
		t.Errorf("message %q should list allowed formats", err.Error())
	}
}
