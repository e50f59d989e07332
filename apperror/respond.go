package apperror

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status.
// A nil payload writes only the status line, never a literal "null" body.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// The status line is already out; all we can do is log.
			log.Printf("failed to encode response: %v", err)
		}
	}
}

// WriteError writes a standardized error response. Errors that are not already
// an *AppError are wrapped as internal errors so that no raw lower-level
// failure ever escapes to the client. When debug is true the underlying error
// detail is included in the payload; production callers pass false.
func WriteError(w http.ResponseWriter, err error, debug bool) {
	appErr, ok := FromError(err)
	if !ok {
		appErr = NewInternalError("an unexpected error occurred", err)
	}
	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("internal error: %v", appErr)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse(debug))
}
