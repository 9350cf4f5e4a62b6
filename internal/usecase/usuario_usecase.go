package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"betcontrol/internal/domain"
)

// UsuarioUseCase handles user business logic.
type UsuarioUseCase struct {
	usuarioRepo UsuarioRepository
	idGen       IDGenerator
}

// NewUsuarioUseCase creates a new UsuarioUseCase.
func NewUsuarioUseCase(usuarioRepo UsuarioRepository, idGen IDGenerator) *UsuarioUseCase {
	return &UsuarioUseCase{
		usuarioRepo: usuarioRepo,
		idGen:       idGen,
	}
}

// CreateUsuarioInput represents input for creating a user.
type CreateUsuarioInput struct {
	Nome  string
	Email string
	Saldo decimal.Decimal
}

// CreateUsuario creates a new user.
func (uc *UsuarioUseCase) CreateUsuario(ctx context.Context, input CreateUsuarioInput) (*domain.Usuario, error) {
	now := time.Now().UTC()

	usuario := &domain.Usuario{
		ID:        uc.idGen.Generate(),
		Nome:      input.Nome,
		Email:     input.Email,
		Saldo:     input.Saldo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := usuario.Validate(); err != nil {
		return nil, err
	}

	if err := uc.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, err
	}

	return usuario, nil
}

// GetUsuario retrieves a user by ID.
func (uc *UsuarioUseCase) GetUsuario(ctx context.Context, id string) (*domain.Usuario, error) {
	return uc.usuarioRepo.GetByID(ctx, id)
}

// ListUsuariosInput represents input for listing users.
type ListUsuariosInput struct {
	Limit  int
	Offset int
}

// ListUsuarios lists users with pagination.
func (uc *UsuarioUseCase) ListUsuarios(ctx context.Context, input ListUsuariosInput) ([]*domain.Usuario, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.usuarioRepo.List(ctx, input.Limit, input.Offset)
}

// UpdateUsuarioInput represents input for updating a user.
type UpdateUsuarioInput struct {
	Nome  string
	Email string
	Saldo decimal.Decimal
}

// UpdateUsuario replaces a user's mutable fields.
func (uc *UsuarioUseCase) UpdateUsuario(ctx context.Context, id string, input UpdateUsuarioInput) error {
	existing, err := uc.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	existing.Nome = input.Nome
	existing.Email = input.Email
	existing.Saldo = input.Saldo
	existing.UpdatedAt = time.Now().UTC()

	if err := existing.Validate(); err != nil {
		return err
	}

	return uc.usuarioRepo.Update(ctx, existing)
}

// DeleteUsuario removes a user. Their apostas and limites go with them via
// cascade delete at the storage layer.
func (uc *UsuarioUseCase) DeleteUsuario(ctx context.Context, id string) error {
	if _, err := uc.usuarioRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.usuarioRepo.Delete(ctx, id)
}

// ExcederamLimite reports users whose live month spend exceeds their cap.
func (uc *UsuarioUseCase) ExcederamLimite(ctx context.Context, mes string) ([]*domain.LimiteExcedido, error) {
	if err := domain.ValidateMesReferencia(mes); err != nil {
		return nil, err
	}

	return uc.usuarioRepo.ListExcederamLimite(ctx, mes)
}
