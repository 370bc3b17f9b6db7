package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"artisthub/internal/app/artists"
	"artisthub/internal/logging"
)

// ErrorMessage is the body returned when a requested artist does not exist.
type ErrorMessage struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []artists.FieldError `json:"fields,omitempty"`
}

// writeServiceError translates a service error into a response. NotFound is
// the only domain error with its own body; everything else is a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *artists.NotFoundError
	if errors.As(err, &nf) {
		writeJSON(w, http.StatusNotFound, ErrorMessage{
			Message: nf.Error(),
			Status:  statusLabel(http.StatusNotFound),
		})
		return
	}

	logging.WithContext(r.Context()).Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// statusLabel renders a status as "404 NOT_FOUND".
func statusLabel(code int) string {
	reason := strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
	return fmt.Sprintf("%d %s", code, reason)
}
