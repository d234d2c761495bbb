package driver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/alorle/streamline/internal/application"
	"github.com/alorle/streamline/internal/favorite"
)

// FavoritesHTTPHandler handles HTTP requests for favorite channels.
type FavoritesHTTPHandler struct {
	service *application.FavoritesService
}

// NewFavoritesHTTPHandler creates a new HTTP handler for favorites.
func NewFavoritesHTTPHandler(service *application.FavoritesService) *FavoritesHTTPHandler {
	return &FavoritesHTTPHandler{service: service}
}

// favoritesResponse represents the favorite ids in JSON format.
// Favorite is set for single-channel operations.
type favoritesResponse struct {
	IDs      []string `json:"ids"`
	Favorite *bool    `json:"favorite,omitempty"`
}

// ServeHTTP routes the request to the appropriate handler based on method and path.
func (h *FavoritesHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/favorites")

	// GET /favorites - list favorites
	if path == "" || path == "/" {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleList(w, r)
		return
	}

	id := strings.TrimPrefix(path, "/")

	// POST /favorites/{id}/toggle - flip a favorite
	// Ids ending in "/toggle" are therefore not addressable.
	if toggled, ok := strings.CutSuffix(id, "/toggle"); ok {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleUpdate(w, r, toggled, h.service.Toggle)
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.handleUpdate(w, r, id, h.service.Add)
	case http.MethodDelete:
		h.handleUpdate(w, r, id, h.service.Remove)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleList handles GET /favorites
func (h *FavoritesHTTPHandler) handleList(w http.ResponseWriter, r *http.Request) {
	set, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, favoritesResponse{IDs: set.IDs()})
}

type favoritesUpdate func(ctx context.Context, id string) (favorite.Set, error)

// handleUpdate handles PUT, DELETE /favorites/{id} and POST /favorites/{id}/toggle
func (h *FavoritesHTTPHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id string, update favoritesUpdate) {
	set, err := update(r.Context(), id)
	if err != nil {
		if errors.Is(err, favorite.ErrEmptyID) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	isFavorite := set.Contains(id)
	writeJSON(w, http.StatusOK, favoritesResponse{
		IDs:      set.IDs(),
		Favorite: &isFavorite,
	})
}
