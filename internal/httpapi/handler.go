// Package httpapi exposes the flag composition library over HTTP.
//
// The binding keeps the library's two-outcome contract: an unknown
// identifier is a 404 with a JSON error envelope, never a 500. Routes
// live under /v1.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	veximoji "github.com/roz0n/Veximoji"
)

// Handler wires flag lookup endpoints to a Composer.
type Handler struct {
	composer *veximoji.Composer
	logger   *slog.Logger
	metrics  *Metrics
}

// NewHandler constructs a Handler with its dependencies. A nil logger
// falls back to the library's configured logger.
func NewHandler(composer *veximoji.Composer, logger *slog.Logger, metrics *Metrics) *Handler {
	if composer == nil {
		composer = veximoji.New()
	}
	if logger == nil {
		logger = veximoji.Logger()
	}
	return &Handler{
		composer: composer,
		logger:   logger,
		metrics:  metrics,
	}
}

// Register mounts all lookup endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/v1/flags/{query}", h.handleFlag)
	r.Get("/v1/countries", h.handleCountryList)
	r.Get("/v1/countries/{code}", h.handleCountry)
	r.Get("/v1/subdivisions", h.handleSubdivisionList)
	r.Get("/v1/subdivisions/{code}", h.handleSubdivision)
	r.Get("/v1/international", h.handleInternationalList)
	r.Get("/v1/international/{code}", h.handleInternational)
	r.Get("/v1/cultural", h.handleCulturalList)
	r.Get("/v1/cultural/{term}", h.handleCultural)
	r.Get("/v1/decode", h.handleDecode)
}

// flagResponse is the JSON envelope for a single composed flag.
type flagResponse struct {
	Kind string `json:"kind"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

func (h *Handler) handleFlag(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	flag, kind, ok := h.composer.Lookup(query)
	if !ok {
		h.respondMiss(w, "flag")
		return
	}
	h.respondFlag(w, kind, query, flag)
}

func (h *Handler) handleCountry(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	flag, ok := h.composer.Country(code)
	if !ok {
		h.respondMiss(w, veximoji.KindCountry.String())
		return
	}
	h.respondFlag(w, veximoji.KindCountry, code, flag)
}

func (h *Handler) handleSubdivision(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	flag, ok := h.composer.Subdivision(code)
	if !ok {
		h.respondMiss(w, veximoji.KindSubdivision.String())
		return
	}
	h.respondFlag(w, veximoji.KindSubdivision, code, flag)
}

func (h *Handler) handleInternational(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	flag, ok := h.composer.International(code)
	if !ok {
		h.respondMiss(w, veximoji.KindInternational.String())
		return
	}
	h.respondFlag(w, veximoji.KindInternational, code, flag)
}

func (h *Handler) handleCultural(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")
	flag, ok := h.composer.Cultural(veximoji.CulturalTerm(term))
	if !ok {
		h.respondMiss(w, veximoji.KindCultural.String())
		return
	}
	h.respondFlag(w, veximoji.KindCultural, term, flag)
}

func (h *Handler) handleCountryList(w http.ResponseWriter, r *http.Request) {
	var out []flagResponse
	for _, code := range h.composer.CountryCodes() {
		if flag, ok := h.composer.Country(code); ok {
			out = append(out, flagResponse{Kind: veximoji.KindCountry.String(), Code: code, Flag: flag})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleSubdivisionList(w http.ResponseWriter, r *http.Request) {
	var out []flagResponse
	for _, code := range h.composer.SubdivisionCodes() {
		if flag, ok := h.composer.Subdivision(code); ok {
			out = append(out, flagResponse{Kind: veximoji.KindSubdivision.String(), Code: code, Flag: flag})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleInternationalList(w http.ResponseWriter, r *http.Request) {
	var out []flagResponse
	for _, code := range h.composer.InternationalCodes() {
		if flag, ok := h.composer.International(code); ok {
			out = append(out, flagResponse{Kind: veximoji.KindInternational.String(), Code: code, Flag: flag})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCulturalList(w http.ResponseWriter, r *http.Request) {
	var out []flagResponse
	for _, term := range h.composer.CulturalTerms() {
		if flag, ok := h.composer.Cultural(term); ok {
			out = append(out, flagResponse{Kind: veximoji.KindCultural.String(), Code: string(term), Flag: flag})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleDecode(w http.ResponseWriter, r *http.Request) {
	flag := r.URL.Query().Get("flag")
	decoded, ok := h.composer.Decode(flag)
	if !ok {
		h.metrics.IncrementLookup("decode", false)
		writeError(w, http.StatusNotFound, "unknown_flag")
		return
	}
	h.metrics.IncrementLookup("decode", true)
	writeJSON(w, http.StatusOK, flagResponse{
		Kind: decoded.Kind.String(),
		Code: decoded.Code,
		Flag: flag,
	})
}

// respondFlag writes a hit and records it.
func (h *Handler) respondFlag(w http.ResponseWriter, kind veximoji.FlagKind, code, flag string) {
	h.metrics.IncrementLookup(kind.String(), true)
	writeJSON(w, http.StatusOK, flagResponse{Kind: kind.String(), Code: code, Flag: flag})
}

// respondMiss writes the 404 envelope for an unknown identifier. A miss
// is a normal outcome of the library contract, not a server fault.
func (h *Handler) respondMiss(w http.ResponseWriter, kind string) {
	h.metrics.IncrementLookup(kind, false)
	writeError(w, http.StatusNotFound, "unknown_flag")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError centralizes the JSON error envelope so every route reports
// misses the same way.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": code,
	})
}
