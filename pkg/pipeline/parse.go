package pipeline

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/matzehuels/docgraph/pkg/errors"
	"github.com/matzehuels/docgraph/pkg/graph"
)

var validate = validator.New()

// ParseRequest decodes and validates a request.
//
// Undecodable input fails with ErrCodeInvalidFormat; structurally invalid
// requests fail with ErrCodeInvalidInput. References are not checked here;
// that is Build's job, so the full list of bad pairs can be reported.
func ParseRequest(data []byte) (graph.Request, error) {
	req, err := graph.UnmarshalRequest(data)
	if err != nil {
		return graph.Request{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "malformed request")
	}
	if err := ValidateRequest(req); err != nil {
		return graph.Request{}, err
	}
	return req, nil
}

// ValidateRequest checks the struct-tag constraints of req (non-empty
// document list) and the document ids themselves. Relationship endpoints,
// empty ones included, are left to Build's reference check.
func ValidateRequest(req graph.Request) error {
	if err := validate.Struct(req); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			return errors.New(errors.ErrCodeInvalidInput, "%s", describe(fieldErrs))
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request")
	}
	return errors.ValidateDocuments(req.Documents)
}

func describe(fieldErrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "Request.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must have at least %s entries", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
