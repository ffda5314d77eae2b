// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration. HTTP method validation is
// handled by Go 1.22+ router pattern matching.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Flag store
		{Method: http.MethodGet, Path: "/api/v1/flags", Handler: h.GetFlags},
		{Method: http.MethodPut, Path: "/api/v1/flags/{name}", Handler: h.SetFlag},

		// Sizing
		{Method: http.MethodPost, Path: "/api/v1/sizing", Handler: h.ComputeSizing},
		{Method: http.MethodPost, Path: "/api/v1/sizing/preview", Handler: h.PreviewSizing},
	}
}
