// internal/adapters/http_server/handlers.go
package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"youth_housing/internal/app"
	"youth_housing/internal/domain"
)

type Handlers struct{ A *app.Aggregator }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/housing/complexes", h.listComplexes)
	s.mux.Get("/v1/housing/notices", h.listNotices)
	s.mux.Get("/v1/policies", h.listPolicies)
	s.mux.Get("/v1/snapshot", h.snapshot)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeSourceError maps a facade error onto a problem response.
func writeSourceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		writeProblem(w, http.StatusGatewayTimeout, "Upstream Timeout", err.Error())
	case errors.Is(err, domain.ErrUnknownSource):
		writeProblem(w, http.StatusInternalServerError, "Source Not Configured", err.Error())
	case errors.Is(err, domain.ErrResponseTooLarge),
		errors.Is(err, domain.ErrMalformedResponse),
		errors.Is(err, domain.ErrFieldTypeMismatch):
		writeProblem(w, http.StatusBadGateway, "Invalid Upstream Response", err.Error())
	case errors.Is(err, domain.ErrTransport):
		writeProblem(w, http.StatusBadGateway, "Upstream Unavailable", err.Error())
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", err.Error())
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "encode response")
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func list[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items, Count: len(items)}
}

func (h *Handlers) listComplexes(w http.ResponseWriter, r *http.Request) {
	out, err := h.A.HousingComplexes(r.Context(), r.URL.Query())
	if err != nil {
		writeSourceError(w, err)
		return
	}
	writeJSON(w, r, list(out))
}

func (h *Handlers) listNotices(w http.ResponseWriter, r *http.Request) {
	out, err := h.A.HousingNotices(r.Context(), r.URL.Query())
	if err != nil {
		writeSourceError(w, err)
		return
	}
	writeJSON(w, r, list(out))
}

func (h *Handlers) listPolicies(w http.ResponseWriter, r *http.Request) {
	out, err := h.A.YouthPolicies(r.Context(), r.URL.Query())
	if err != nil {
		writeSourceError(w, err)
		return
	}
	writeJSON(w, r, list(out))
}

// snapshot always answers 200; failed sources are listed under "failures".
func (h *Handlers) snapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.A.Snapshot(r.Context(), nil))
}
