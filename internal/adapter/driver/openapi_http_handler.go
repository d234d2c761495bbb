package driver

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPIHTTPHandler serves the API description.
type OpenAPIHTTPHandler struct {
	doc *openapi3.T
}

// NewOpenAPIHTTPHandler creates a new HTTP handler for the OpenAPI document.
func NewOpenAPIHTTPHandler(doc *openapi3.T) *OpenAPIHTTPHandler {
	return &OpenAPIHTTPHandler{doc: doc}
}

// ServeHTTP handles GET /openapi.json
func (h *OpenAPIHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, h.doc)
}
