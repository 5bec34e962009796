package pipeline

import (
	"strings"
	"testing"

	"github.com/matzehuels/docgraph/pkg/errors"
	"github.com/matzehuels/docgraph/pkg/layout"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
		wantMsg  string
		wantDocs int
	}{
		{
			name:     "strict",
			input:    `{"documents":["a.pdf","b.pdf"],"relationships":[{"from":"a.pdf","to":"b.pdf","type":"refers"}]}`,
			wantDocs: 2,
		},
		{
			name:     "missing relationships",
			input:    `{"documents":["a"]}`,
			wantDocs: 1,
		},
		{
			name:     "trailing comma repaired",
			input:    `{"documents":["a","b",],"relationships":[]}`,
			wantDocs: 2,
		},
		{
			name:     "double encoded",
			input:    `"{\"documents\":[\"a\"],\"relationships\":[]}"`,
			wantDocs: 1,
		},
		{
			name:     "no documents",
			input:    `{"documents":[],"relationships":[]}`,
			wantCode: errors.ErrCodeInvalidInput,
			wantMsg:  "Documents",
		},
		{
			name:     "missing documents",
			input:    `{"relationships":[]}`,
			wantCode: errors.ErrCodeInvalidInput,
			wantMsg:  "Documents is required",
		},
		{
			name:     "empty document id",
			input:    `{"documents":["a",""]}`,
			wantCode: errors.ErrCodeInvalidInput,
			wantMsg:  "Documents[1] is required",
		},
		{
			name:     "empty endpoint left to the reference check",
			input:    `{"documents":["a"],"relationships":[{"from":"a","to":"","type":"t"}]}`,
			wantDocs: 1,
		},
		{
			name:     "control character",
			input:    `{"documents":["a\u0007"]}`,
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "undeclared reference passes parsing",
			input:    `{"documents":["a"],"relationships":[{"from":"a","to":"x","type":"t"}]}`,
			wantDocs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequest([]byte(tt.input))
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("err = %v, want code %s", err, tt.wantCode)
				}
				if !strings.Contains(err.Error(), tt.wantMsg) {
					t.Errorf("err = %q, want it to contain %q", err, tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRequest: %v", err)
			}
			if len(req.Documents) != tt.wantDocs {
				t.Errorf("documents = %v, want %d", req.Documents, tt.wantDocs)
			}
		})
	}
}

func TestParseRequestGarbage(t *testing.T) {
	_, err := ParseRequest([]byte(`<<<not json at all`))
	if err == nil {
		t.Fatal("garbage should fail")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidFormat && code != errors.ErrCodeInvalidInput {
		t.Errorf("code = %s, want INVALID_FORMAT or INVALID_INPUT", code)
	}
}

// Empty endpoints and undeclared documents are both invalid references
// and must be reported together.
func TestParseThenBuildListsEveryInvalidPair(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "undeclared then empty target",
			input: `{"documents":["a"],"relationships":[{"from":"a","to":"x"},{"from":"a","to":""}]}`,
			want:  "invalid document references in relationships: a -> x, a -> ",
		},
		{
			name:  "empty source then undeclared",
			input: `{"documents":["a"],"relationships":[{"from":"","to":"a"},{"from":"y","to":"a"}]}`,
			want:  "invalid document references in relationships:  -> a, y -> a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequest([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseRequest: %v", err)
			}
			_, err = Build(req, layout.Options{})
			if !errors.Is(err, errors.ErrCodeInvalidReference) {
				t.Fatalf("err = %v, want INVALID_REFERENCE", err)
			}
			if got := errors.UserMessage(err); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}
