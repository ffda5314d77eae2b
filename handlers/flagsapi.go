// ABOUTME: HTTP handlers for the flag store endpoints
// ABOUTME: Exposes origin-tagged flag values and operator overrides

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/markalston/heap-sizing-analyzer/flags"
)

// setFlagRequest carries an operator override. Either a raw byte count or a
// suffixed size string ("512m") may be supplied; the string wins if both are.
type setFlagRequest struct {
	Bytes uint64 `json:"bytes"`
	Size  string `json:"size"`
}

// GetFlags returns every flag with its current value and origin.
func (h *Handler) GetFlags(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.All())
}

// SetFlag fixes a flag value on behalf of the operator. Values set here
// carry command-line origin: later ergonomic passes will not overwrite them.
func (h *Handler) SetFlag(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req setFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	bytes := req.Bytes
	if req.Size != "" {
		parsed, err := flags.ParseSize(req.Size)
		if err != nil {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		bytes = parsed
	}

	name := r.PathValue("name")
	if err := h.store.SetCommandLine(name, bytes); err != nil {
		h.writeError(w, err.Error(), http.StatusNotFound)
		return
	}

	state, _ := h.store.Lookup(name)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"name":   name,
		"bytes":  state.Bytes,
		"origin": state.Origin,
	})
}
