// ABOUTME: HTTP handlers for sizing computation endpoints
// ABOUTME: Runs the policy over the live flag store or a posted what-if configuration

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/markalston/heap-sizing-analyzer/models"
	"github.com/markalston/heap-sizing-analyzer/services"
)

// ComputeSizing runs a sizing pass over the live flag store, applies the
// ergonomic write-backs, and returns the full report.
func (h *Handler) ComputeSizing(w http.ResponseWriter, r *http.Request) {
	h.sizingMutex.Lock()
	defer h.sizingMutex.Unlock()

	snapshot := h.store.Snapshot()
	if err := services.ValidateHeapConfiguration(snapshot); err != nil {
		h.writeError(w, err.Error(), http.StatusConflict)
		return
	}

	sizes := h.policy.Compute(snapshot)
	updates := h.policy.ErgonomicUpdates(snapshot, sizes)
	h.store.ApplyErgonomic(updates)

	h.writeJSON(w, http.StatusOK, models.SizingReport{
		Config:  snapshot,
		Sizes:   sizes,
		Updates: updates,
	})
}

// PreviewSizing computes generation sizes for a posted configuration without
// touching the flag store. What-if analysis for operators comparing layouts.
func (h *Handler) PreviewSizing(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var cfg models.HeapConfiguration
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := services.ValidateHeapConfiguration(cfg); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sizes := h.policy.Compute(cfg)
	h.writeJSON(w, http.StatusOK, models.SizingReport{
		Config:  cfg,
		Sizes:   sizes,
		Updates: h.policy.ErgonomicUpdates(cfg, sizes),
	})
}
