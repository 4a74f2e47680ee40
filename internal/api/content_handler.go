package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/go-chi/render"
	"github.com/rs/zerolog"

	"github.com/cineverse/catalog/pkg/catalog"
)

// ContentHandler handles HTTP requests for catalog content
type ContentHandler struct {
	service   catalog.Service
	tokenAuth *jwtauth.JWTAuth
	log       zerolog.Logger
}

// NewContentHandler creates a new content handler. tokenAuth carries the
// verification key for admin bearer tokens; issuance belongs to the
// external auth service.
func NewContentHandler(service catalog.Service, tokenAuth *jwtauth.JWTAuth, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		service:   service,
		tokenAuth: tokenAuth,
		log:       log,
	}
}

// Routes returns the routes for content. Browsing is public; every
// mutating route and the dashboard sit behind the admin capability check,
// which runs before anything reaches the store.
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/content", h.ListContent)
	r.Get("/content/{id}", h.GetContent)

	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(h.tokenAuth))
		r.Use(jwtauth.Authenticator)

		r.Post("/content", h.CreateContent)
		r.Put("/content/{id}", h.UpdateContent)
		r.Delete("/content/{id}", h.DeleteContent)
		r.Get("/admin/stats", h.Stats)
	})

	return r
}

// ErrorResponse is the error body for all failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteResponse acknowledges a successful delete
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ListContent lists content with optional type filtering and search
func (h *ContentHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	q := catalog.ListQuery{
		TypeFilter: r.URL.Query().Get("type"),
		SearchTerm: r.URL.Query().Get("search"),
	}

	contents, err := h.service.ListContent(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if contents == nil {
		contents = []*catalog.Content{}
	}
	render.JSON(w, r, contents)
}

// GetContent retrieves a single content record by ID
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	content, err := h.service.GetContent(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	render.JSON(w, r, content)
}

// CreateContent creates a new content record
func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var in catalog.ContentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	content, err := h.service.CreateContent(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, content)
}

// UpdateContent fully replaces a content record
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in catalog.ContentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	content, err := h.service.UpdateContent(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	render.JSON(w, r, content)
}

// DeleteContent deletes a content record and its nested download groups
func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteContent(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	render.JSON(w, r, DeleteResponse{Success: true})
}

// Stats returns the dashboard category counts
func (h *ContentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	render.JSON(w, r, counts)
}

// writeError maps domain errors to HTTP statuses without conflating
// kinds: bad input is 400, a missing id is 404, store faults are 500.
func (h *ContentHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case catalog.IsValidation(err):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrContentNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: "Content not found"})
	default:
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: "internal server error"})
	}
}
