package helpers

import (
	"encoding/json"
	"net/http"

	"github.com/getsentry/sentry-go"
)

// MessageResponse is the body of every non-list API response that carries no resource.
// Error is only set on failures that expose the underlying error text.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteMessage writes {"message": message}.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteFailure writes {"message": message, "error": err.Error()}.
func WriteFailure(w http.ResponseWriter, statusCode int, message string, err error) {
	resp := MessageResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	WriteJSON(w, statusCode, resp)
}

// ReportError forwards err to the Sentry hub bound to the request, if any.
func ReportError(r *http.Request, err error) {
	if err == nil {
		return
	}
	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		hub.CaptureException(err)
	}
}
