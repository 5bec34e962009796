package relgraph

import (
	"errors"
	"strings"
)

// ErrInvalidReference is matched by every *InvalidReferenceError via errors.Is.
var ErrInvalidReference = errors.New("invalid document reference")

// InvalidReferenceError reports relationships that name undeclared documents.
type InvalidReferenceError struct {
	// Relationships holds every offending relationship in input order.
	Relationships []Relationship
}

// Error lists every offending pair as "from -> to", comma-joined.
func (e *InvalidReferenceError) Error() string {
	pairs := make([]string, len(e.Relationships))
	for i, r := range e.Relationships {
		pairs[i] = r.String()
	}
	return "invalid document references in relationships: " + strings.Join(pairs, ", ")
}

// Is makes errors.Is(err, ErrInvalidReference) succeed.
func (e *InvalidReferenceError) Is(target error) bool { return target == ErrInvalidReference }

// Validate returns an *InvalidReferenceError if any relationship has a from or
// to that is not among documents. It returns nil otherwise.
func Validate(documents []DocumentID, relationships []Relationship) error {
	declared := make(map[DocumentID]struct{}, len(documents))
	for _, d := range documents {
		declared[d] = struct{}{}
	}

	var invalid []Relationship
	for _, r := range relationships {
		_, fromOK := declared[r.From]
		_, toOK := declared[r.To]
		if !fromOK || !toOK {
			invalid = append(invalid, r)
		}
	}

	if len(invalid) > 0 {
		return &InvalidReferenceError{Relationships: invalid}
	}
	return nil
}
