package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"betcontrol/internal/adapter/http/dto"
	"betcontrol/internal/domain"
	"betcontrol/internal/usecase"
)

// LimiteService defines the behavior needed by LimiteHandler.
type LimiteService interface {
	CreateLimite(ctx context.Context, input usecase.CreateLimiteInput) (*domain.Limite, error)
	GetLimite(ctx context.Context, id string) (*domain.Limite, error)
	ListLimites(ctx context.Context, input usecase.ListLimitesInput) ([]*domain.Limite, error)
	UpdateLimite(ctx context.Context, id string, input usecase.UpdateLimiteInput) error
	DeleteLimite(ctx context.Context, id string) error
}

// LimiteHandler handles limite-related HTTP requests.
type LimiteHandler struct {
	limiteUC LimiteService
}

// NewLimiteHandler creates a new LimiteHandler.
func NewLimiteHandler(limiteUC LimiteService) *LimiteHandler {
	return &LimiteHandler{limiteUC: limiteUC}
}

// Create creates a new limite. MesReferencia defaults to the current UTC
// month and ValorAtual is initialized from the user's existing bets.
func (h *LimiteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLimiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	limite, err := h.limiteUC.CreateLimite(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create limite", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.LimiteFromDomain(limite))
}

// Get retrieves a limite by ID.
func (h *LimiteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	limite, err := h.limiteUC.GetLimite(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get limite", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LimiteFromDomain(limite))
}

// List lists limites.
func (h *LimiteHandler) List(w http.ResponseWriter, r *http.Request) {
	limites, err := h.limiteUC.ListLimites(r.Context(), usecase.ListLimitesInput{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list limites", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LimitesFromDomain(limites))
}

// Update replaces a limite's fields as given, ValorAtual included.
func (h *LimiteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateLimiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := checkIDMatch(id, req.ID); err != nil {
		writeError(w, http.StatusBadRequest, "id mismatch", err.Error())
		return
	}

	if err := h.limiteUC.UpdateLimite(r.Context(), id, req.ToUseCaseInput()); err != nil {
		writeError(w, mapDomainError(err), "failed to update limite", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a limite. Bookkeeping for that bucket simply stops.
func (h *LimiteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.limiteUC.DeleteLimite(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete limite", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
