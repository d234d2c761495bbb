package api

import (
	"encoding/json"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	nethttpmiddleware "github.com/oapi-codegen/nethttp-middleware"
)

// RequestValidator returns middleware rejecting requests that do not match doc.
// Paths are matched without the server prefix, so the middleware must be
// mounted behind http.StripPrefix.
func RequestValidator(doc *openapi3.T) func(http.Handler) http.Handler {
	doc.Servers = nil

	return nethttpmiddleware.OapiRequestValidatorWithOptions(doc, &nethttpmiddleware.Options{
		ErrorHandler: func(w http.ResponseWriter, message string, statusCode int) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(statusCode)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
		},
	})
}
