package relgraph

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		docs      []DocumentID
		rels      []Relationship
		wantErr   bool
		wantPairs []string
	}{
		{
			name: "NoRelationships",
			docs: []DocumentID{"a"},
		},
		{
			name: "AllDeclared",
			docs: []DocumentID{"a.pdf", "b.pdf"},
			rels: []Relationship{{From: "a.pdf", To: "b.pdf", Type: "refers"}},
		},
		{
			name: "SelfLoopIsValid",
			docs: []DocumentID{"a"},
			rels: []Relationship{{From: "a", To: "a"}},
		},
		{
			name:      "UnknownTarget",
			docs:      []DocumentID{"a"},
			rels:      []Relationship{{From: "a", To: "x", Type: "t"}},
			wantErr:   true,
			wantPairs: []string{"a -> x"},
		},
		{
			name:      "UnknownSource",
			docs:      []DocumentID{"a"},
			rels:      []Relationship{{From: "x", To: "a"}},
			wantErr:   true,
			wantPairs: []string{"x -> a"},
		},
		{
			name: "EveryOffenderListed",
			docs: []DocumentID{"a", "b"},
			rels: []Relationship{
				{From: "a", To: "x"},
				{From: "a", To: "b"},
				{From: "y", To: "z"},
				{From: "b", To: "w"},
			},
			wantErr:   true,
			wantPairs: []string{"a -> x", "y -> z", "b -> w"},
		},
		{
			name:      "EmptyDocuments",
			rels:      []Relationship{{From: "a", To: "b"}},
			wantErr:   true,
			wantPairs: []string{"a -> b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.docs, tt.rels)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			if !errors.Is(err, ErrInvalidReference) {
				t.Error("errors.Is(err, ErrInvalidReference) = false")
			}
			var ref *InvalidReferenceError
			if !errors.As(err, &ref) {
				t.Fatalf("error type = %T, want *InvalidReferenceError", err)
			}
			if len(ref.Relationships) != len(tt.wantPairs) {
				t.Errorf("offenders = %d, want %d", len(ref.Relationships), len(tt.wantPairs))
			}

			want := strings.Join(tt.wantPairs, ", ")
			if !strings.HasSuffix(err.Error(), want) {
				t.Errorf("Error() = %q, want suffix %q", err.Error(), want)
			}
		})
	}
}
