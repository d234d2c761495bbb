package driver

import (
	"net/http"

	"github.com/alorle/streamline/internal/application"
)

// CategoryHTTPHandler handles HTTP requests for category counts.
type CategoryHTTPHandler struct {
	catalog *application.CatalogService
}

// NewCategoryHTTPHandler creates a new HTTP handler for categories.
func NewCategoryHTTPHandler(catalog *application.CatalogService) *CategoryHTTPHandler {
	return &CategoryHTTPHandler{catalog: catalog}
}

// categoryResponse represents a category count in JSON format.
type categoryResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ServeHTTP handles GET /categories
func (h *CategoryHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	counts, err := h.catalog.Categories(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	response := make([]categoryResponse, len(counts))
	for i, c := range counts {
		response[i] = categoryResponse{
			Name:  c.Category.String(),
			Count: c.Count,
		}
	}

	writeJSON(w, http.StatusOK, response)
}
