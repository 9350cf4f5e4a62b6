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

// UsuarioService defines the behavior needed by UsuarioHandler.
type UsuarioService interface {
	CreateUsuario(ctx context.Context, input usecase.CreateUsuarioInput) (*domain.Usuario, error)
	GetUsuario(ctx context.Context, id string) (*domain.Usuario, error)
	ListUsuarios(ctx context.Context, input usecase.ListUsuariosInput) ([]*domain.Usuario, error)
	UpdateUsuario(ctx context.Context, id string, input usecase.UpdateUsuarioInput) error
	DeleteUsuario(ctx context.Context, id string) error
	ExcederamLimite(ctx context.Context, mes string) ([]*domain.LimiteExcedido, error)
}

// UsuarioHandler handles usuario-related HTTP requests.
type UsuarioHandler struct {
	usuarioUC UsuarioService
}

// NewUsuarioHandler creates a new UsuarioHandler.
func NewUsuarioHandler(usuarioUC UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioUC: usuarioUC}
}

// Create creates a new usuario.
func (h *UsuarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	usuario, err := h.usuarioUC.CreateUsuario(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create usuario", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.UsuarioFromDomain(usuario))
}

// Get retrieves a usuario by ID.
func (h *UsuarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	usuario, err := h.usuarioUC.GetUsuario(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get usuario", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UsuarioFromDomain(usuario))
}

// List lists usuarios.
func (h *UsuarioHandler) List(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.usuarioUC.ListUsuarios(r.Context(), usecase.ListUsuariosInput{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list usuarios", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UsuariosFromDomain(usuarios))
}

// Update replaces a usuario's fields. The payload id, when present, must
// match the path.
func (h *UsuarioHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := checkIDMatch(id, req.ID); err != nil {
		writeError(w, http.StatusBadRequest, "id mismatch", err.Error())
		return
	}

	if err := h.usuarioUC.UpdateUsuario(r.Context(), id, req.ToUseCaseInput()); err != nil {
		writeError(w, mapDomainError(err), "failed to update usuario", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a usuario and, via cascade, its apostas and limites.
func (h *UsuarioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.usuarioUC.DeleteUsuario(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete usuario", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExcederamLimite reports users whose live month spend exceeds their cap.
func (h *UsuarioHandler) ExcederamLimite(w http.ResponseWriter, r *http.Request) {
	mes := chi.URLParam(r, "mes")

	rows, err := h.usuarioUC.ExcederamLimite(r.Context(), mes)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build exceeded-limit report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LimitesExcedidosFromDomain(rows))
}
