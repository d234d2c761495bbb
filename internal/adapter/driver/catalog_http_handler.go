package driver

import (
	"net/http"
	"time"

	"github.com/alorle/streamline/internal/application"
)

// CatalogHTTPHandler handles HTTP requests for managing the catalog snapshot.
type CatalogHTTPHandler struct {
	catalog *application.CatalogService
}

// NewCatalogHTTPHandler creates a new HTTP handler for the catalog.
func NewCatalogHTTPHandler(catalog *application.CatalogService) *CatalogHTTPHandler {
	return &CatalogHTTPHandler{catalog: catalog}
}

// catalogResponse represents the catalog status in JSON format.
type catalogResponse struct {
	Channels int    `json:"channels"`
	LoadedAt string `json:"loaded_at,omitempty"`
}

// ServeHTTP handles POST /catalog/refresh
func (h *CatalogHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/catalog/refresh" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if _, err := h.catalog.Refresh(r.Context()); err != nil {
		writeCatalogError(w, err)
		return
	}

	status := h.catalog.Status()
	resp := catalogResponse{Channels: status.Channels}
	if status.Loaded {
		resp.LoadedAt = status.LoadedAt.Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, resp)
}
