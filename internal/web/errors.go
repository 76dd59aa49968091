package web

// errors.go maps core errors onto HTTP responses.
//
// The dataset package's taxonomy drives the split:
//   - *dataset.InvalidInputError -> 400, "please correct your input"; the
//     table stays usable and the next search proceeds normally
//   - anything else -> 500; search calls over a loaded table have no other
//     expected failure mode
//
// Load and parse failures never reach a handler: the server refuses to start
// without a usable table, which is this deployment's "data unavailable".

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/estatequery/estatequery/internal/dataset"
	"github.com/estatequery/estatequery/internal/logging"
)

// UserMessage is a user-facing rendering of an error, with a stable code that
// can be quoted to support staff.
type UserMessage struct {
	Message string
	Action  string
	Code    string
}

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
	Code   string `json:"code"`
}

var (
	invalidInputMessage = UserMessage{
		Message: "Please correct your input",
		Action:  "Supply a non-empty search key in a recognized format",
		Code:    "INP001",
	}
	rateLimitedMessage = UserMessage{
		Message: "Too many requests",
		Action:  "Please wait a moment and try again",
		Code:    "RATE001",
	}
	internalMessage = UserMessage{
		Message: "Something went wrong processing the search",
		Action:  "Please try again",
		Code:    "SRV000",
	}
)

// mapError converts an error to an HTTP status and user message.
func mapError(err error) (int, UserMessage) {
	var invalid *dataset.InvalidInputError
	if errors.As(err, &invalid) {
		msg := invalidInputMessage
		msg.Message = "Please correct your input: " + invalid.Reason
		return http.StatusBadRequest, msg
	}
	return http.StatusInternalServerError, internalMessage
}

// respondError logs the technical error with request context and writes the
// user-facing JSON response.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := mapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", msg.Code,
	)

	respondErrorJSON(w, msg, status)
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, msg UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:  msg.Message,
		Action: msg.Action,
		Code:   msg.Code,
	})
}
