package api

import (
	"encoding/json"
	"errors"
	"net/http"

	docerrors "github.com/matzehuels/docgraph/pkg/errors"
	"github.com/matzehuels/docgraph/pkg/observability"
	"github.com/matzehuels/docgraph/pkg/relgraph"
)

// errorBody is the JSON shape of every failed response.
type errorBody struct {
	Code      string                  `json:"code"`
	Error     string                  `json:"error"`
	Invalid   []relgraph.Relationship `json:"invalid,omitempty"`
	RequestID string                  `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, errorBody{
		Code:      code,
		Error:     message,
		RequestID: RequestIDFromContext(r.Context()),
	})
}

// fail maps err to a status code and writes it.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := docerrors.GetCode(err)
	status := statusFor(code)

	body := errorBody{
		Code:      string(code),
		Error:     docerrors.UserMessage(err),
		RequestID: RequestIDFromContext(r.Context()),
	}
	var refErr *relgraph.InvalidReferenceError
	if errors.As(err, &refErr) {
		body.Invalid = refErr.Relationships
	}

	if status >= http.StatusInternalServerError {
		if body.Code == "" {
			body.Code = string(docerrors.ErrCodeInternal)
		}
		body.Error = "internal error"
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", body.RequestID, "error", err)
	}
	writeJSON(w, status, body)
}

func statusFor(code docerrors.Code) int {
	switch code {
	case docerrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case docerrors.ErrCodeInvalidInput, docerrors.ErrCodeInvalidReference:
		return http.StatusUnprocessableEntity
	case docerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case docerrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}
