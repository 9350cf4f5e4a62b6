package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"betcontrol/internal/adapter/http/dto"
	"betcontrol/internal/domain"
	"betcontrol/internal/usecase"
)

// ApostaService defines the behavior needed by ApostaHandler.
type ApostaService interface {
	CreateAposta(ctx context.Context, input usecase.CreateApostaInput) (*domain.Aposta, error)
	GetAposta(ctx context.Context, id string) (*domain.Aposta, error)
	ListApostas(ctx context.Context, input usecase.ListApostasInput) ([]*domain.Aposta, error)
	UpdateAposta(ctx context.Context, id string, input usecase.UpdateApostaInput) error
	DeleteAposta(ctx context.Context, id string) error
	MediaApostas(ctx context.Context) (decimal.Decimal, error)
	ApostasAcimaDaMedia(ctx context.Context) ([]*domain.Aposta, error)
	ConverterValorUSD(ctx context.Context, id string) (*usecase.ConversaoUSD, error)
}

// ApostaHandler handles aposta-related HTTP requests.
type ApostaHandler struct {
	apostaUC ApostaService
}

// NewApostaHandler creates a new ApostaHandler.
func NewApostaHandler(apostaUC ApostaService) *ApostaHandler {
	return &ApostaHandler{apostaUC: apostaUC}
}

// Create creates a new aposta and runs the limit bookkeeping for its bucket.
func (h *ApostaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateApostaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	aposta, err := h.apostaUC.CreateAposta(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create aposta", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ApostaFromDomain(aposta))
}

// Get retrieves an aposta by ID.
func (h *ApostaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	aposta, err := h.apostaUC.GetAposta(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get aposta", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ApostaFromDomain(aposta))
}

// List lists apostas.
func (h *ApostaHandler) List(w http.ResponseWriter, r *http.Request) {
	apostas, err := h.apostaUC.ListApostas(r.Context(), usecase.ListApostasInput{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list apostas", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ApostasFromDomain(apostas))
}

// Update replaces an aposta's fields, adjusting the bucket's running total
// when the user and month are unchanged.
func (h *ApostaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateApostaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := checkIDMatch(id, req.ID); err != nil {
		writeError(w, http.StatusBadRequest, "id mismatch", err.Error())
		return
	}

	if err := h.apostaUC.UpdateAposta(r.Context(), id, req.ToUseCaseInput()); err != nil {
		writeError(w, mapDomainError(err), "failed to update aposta", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes an aposta, subtracting its amount from the bucket's running
// total.
func (h *ApostaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.apostaUC.DeleteAposta(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete aposta", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Media returns the average bet amount, zero when there are no bets.
func (h *ApostaHandler) Media(w http.ResponseWriter, r *http.Request) {
	media, err := h.apostaUC.MediaApostas(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute media", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MediaResponse{Media: media})
}

// AcimaDaMedia lists bets strictly above the current average.
func (h *ApostaHandler) AcimaDaMedia(w http.ResponseWriter, r *http.Request) {
	apostas, err := h.apostaUC.ApostasAcimaDaMedia(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list apostas acima da media", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ApostasFromDomain(apostas))
}

// ValorUSD converts a bet's amount to USD at the current quote. A quote
// failure is a 502, a missing bet a 404.
func (h *ApostaHandler) ValorUSD(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	conversao, err := h.apostaUC.ConverterValorUSD(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to convert valor to USD", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConversaoUSDFromUseCase(conversao))
}
