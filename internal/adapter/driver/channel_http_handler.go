package driver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alorle/streamline/internal/application"
	"github.com/alorle/streamline/internal/channel"
	"github.com/alorle/streamline/internal/favorite"
)

// ChannelHTTPHandler handles HTTP requests for browsing the channel catalog.
type ChannelHTTPHandler struct {
	catalog   *application.CatalogService
	favorites *application.FavoritesService
}

// NewChannelHTTPHandler creates a new HTTP handler for channels.
func NewChannelHTTPHandler(catalog *application.CatalogService, favorites *application.FavoritesService) *ChannelHTTPHandler {
	return &ChannelHTTPHandler{
		catalog:   catalog,
		favorites: favorites,
	}
}

// ServeHTTP routes the request to the appropriate handler based on method and path.
func (h *ChannelHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/channels")
	switch path {
	case "", "/":
		h.handleList(w, r)
	case "/featured":
		// Shadows a channel whose id is "featured".
		h.handleFeatured(w, r)
	default:
		h.handleGet(w, r, strings.TrimPrefix(path, "/"))
	}
}

// handleList handles GET /channels
func (h *ChannelHTTPHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var favs favorite.Set
	if q.Category == application.CategoryFavorites {
		favs, err = h.favorites.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	channels, err := h.catalog.Filter(r.Context(), q, favs)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, channels)
}

// handleFeatured handles GET /channels/featured
func (h *ChannelHTTPHandler) handleFeatured(w http.ResponseWriter, r *http.Request) {
	ch, err := h.catalog.Featured(r.Context())
	if err != nil {
		if errors.Is(err, channel.ErrChannelNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ch)
}

// handleGet handles GET /channels/{id}
func (h *ChannelHTTPHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	ch, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, channel.ErrChannelNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ch)
}
