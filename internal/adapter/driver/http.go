package driver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alorle/streamline/internal/application"
	"github.com/alorle/streamline/internal/playlist"
)

// loadFailureMessage is the user-facing message for an unavailable playlist.
const loadFailureMessage = "unable to load TV channels"

// errorResponse represents a JSON error response.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeCatalogError maps catalog errors to a response.
// Playlist load failures become 502 with a generic message.
func writeCatalogError(w http.ResponseWriter, err error) {
	if playlist.IsLoadFailure(err) {
		writeError(w, http.StatusBadGateway, loadFailureMessage)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// errInvalidAdult is returned for an adult query value that is not a boolean.
var errInvalidAdult = errors.New("invalid adult parameter")

// parseQuery reads the q, category and adult query parameters.
func parseQuery(r *http.Request) (application.Query, error) {
	values := r.URL.Query()
	q := application.Query{
		Search:   values.Get("q"),
		Category: values.Get("category"),
	}

	if adult := values.Get("adult"); adult != "" {
		enabled, err := strconv.ParseBool(adult)
		if err != nil {
			return application.Query{}, errInvalidAdult
		}
		q.AdultEnabled = enabled
	}

	return q, nil
}
