// ABOUTME: HTTP handlers for the heap sizing analyzer API
// ABOUTME: Provides health, flag store access, and sizing computation endpoints

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/markalston/heap-sizing-analyzer/config"
	"github.com/markalston/heap-sizing-analyzer/flags"
	"github.com/markalston/heap-sizing-analyzer/services"
)

// maxRequestBodySize caps request bodies; sizing payloads are tiny.
const maxRequestBodySize = 64 * 1024

type Handler struct {
	cfg    *config.Config
	store  *flags.Store
	policy *services.SizingPolicy

	// Serializes compute+write-back so concurrent sizing requests observe
	// a consistent store.
	sizingMutex sync.Mutex
}

func NewHandler(cfg *config.Config, store *flags.Store) *Handler {
	return &Handler{
		cfg:    cfg,
		store:  store,
		policy: services.NewSizingPolicy(),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"flags":  len(h.store.All()),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
