// internal/loans/handler.go
package loans

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"biblioteca/internal/apperr"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the loan endpoints on a chi router. The paths are kept
// for compatibility with existing clients.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/crear", h.handleCreate)
	r.Get("/traer", h.handleList)
	r.Get("/traer/{id}", h.handleGet)
	r.Put("/editar/{id}", h.handleEdit)
	r.Delete("/eliminar/{id}", h.handleDelete)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, err, "an error occurred while creating the loan")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(view)
}

// handleList answers 200 with a friendly message when no loans exist,
// unlike the 404 the user and book listings produce on empty stores.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err, "an error occurred while listing loans")
		return
	}
	if len(views) == 0 {
		w.Write([]byte("no loans registered yet, please create one"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid loan id", http.StatusBadRequest)
		return
	}

	view, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "an error occurred while fetching the loan")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid loan id", http.StatusBadRequest)
		return
	}

	var p Patch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.service.Edit(r.Context(), id, p)
	if err != nil {
		writeError(w, err, "an error occurred while updating the loan")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid loan id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err, "an error occurred while deleting the loan")
		return
	}

	w.Write([]byte("loan deleted successfully"))
}

// writeError maps taxonomy errors to their status and hides anything
// else behind a generic 500 message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	if apperr.KindOf(err) == apperr.KindInternal {
		http.Error(w, fallback, http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), apperr.Status(err))
}
