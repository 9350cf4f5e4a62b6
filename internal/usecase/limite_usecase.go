package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"betcontrol/internal/domain"
)

// LimiteUseCase handles monthly-limit business logic.
type LimiteUseCase struct {
	limiteRepo  LimiteRepository
	apostaRepo  ApostaRepository
	usuarioRepo UsuarioRepository
	idGen       IDGenerator
}

// NewLimiteUseCase creates a new LimiteUseCase.
func NewLimiteUseCase(
	limiteRepo LimiteRepository,
	apostaRepo ApostaRepository,
	usuarioRepo UsuarioRepository,
	idGen IDGenerator,
) *LimiteUseCase {
	return &LimiteUseCase{
		limiteRepo:  limiteRepo,
		apostaRepo:  apostaRepo,
		usuarioRepo: usuarioRepo,
		idGen:       idGen,
	}
}

// CreateLimiteInput represents input for creating a monthly limit.
type CreateLimiteInput struct {
	UsuarioID         string
	ValorMaximoMensal decimal.Decimal
	MesReferencia     string
}

// CreateLimite creates a monthly limit. When MesReferencia is blank it
// defaults to the current UTC month. ValorAtual starts as the sum of the
// user's existing bets for the month — a one-time catch-up, not a live
// recomputation. A second limit for the same (usuario, mes) fails with a
// conflict from the storage layer.
func (uc *LimiteUseCase) CreateLimite(ctx context.Context, input CreateLimiteInput) (*domain.Limite, error) {
	now := time.Now().UTC()

	mes := input.MesReferencia
	if mes == "" {
		mes = domain.MesReferencia(now)
	}

	limite := &domain.Limite{
		ID:                uc.idGen.Generate(),
		UsuarioID:         input.UsuarioID,
		ValorMaximoMensal: input.ValorMaximoMensal,
		ValorAtual:        decimal.Zero,
		MesReferencia:     mes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := limite.Validate(); err != nil {
		return nil, err
	}

	exists, err := uc.usuarioRepo.Exists(ctx, input.UsuarioID)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, domain.ErrUsuarioIDInvalido
	}

	gasto, err := uc.apostaRepo.SumValorByUsuarioMes(ctx, input.UsuarioID, mes)
	if err != nil {
		return nil, err
	}

	limite.ValorAtual = gasto

	if err := uc.limiteRepo.Create(ctx, limite); err != nil {
		return nil, err
	}

	return limite, nil
}

// GetLimite retrieves a limit by ID.
func (uc *LimiteUseCase) GetLimite(ctx context.Context, id string) (*domain.Limite, error) {
	return uc.limiteRepo.GetByID(ctx, id)
}

// ListLimitesInput represents input for listing limits.
type ListLimitesInput struct {
	Limit  int
	Offset int
}

// ListLimites lists limits with pagination.
func (uc *LimiteUseCase) ListLimites(ctx context.Context, input ListLimitesInput) ([]*domain.Limite, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.limiteRepo.List(ctx, input.Limit, input.Offset)
}

// UpdateLimiteInput represents input for updating a limit.
type UpdateLimiteInput struct {
	UsuarioID         string
	ValorMaximoMensal decimal.Decimal
	ValorAtual        decimal.Decimal
	MesReferencia     string
}

// UpdateLimite replaces a limit's fields. No recomputation of ValorAtual
// happens here; the caller is trusted to supply a consistent value.
func (uc *LimiteUseCase) UpdateLimite(ctx context.Context, id string, input UpdateLimiteInput) error {
	existing, err := uc.limiteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	existing.UsuarioID = input.UsuarioID
	existing.ValorMaximoMensal = input.ValorMaximoMensal
	existing.ValorAtual = input.ValorAtual
	existing.MesReferencia = input.MesReferencia
	existing.UpdatedAt = time.Now().UTC()

	if err := existing.Validate(); err != nil {
		return err
	}

	return uc.limiteRepo.Update(ctx, existing)
}

// DeleteLimite removes a limit. Tracking for that (usuario, mes) simply stops.
func (uc *LimiteUseCase) DeleteLimite(ctx context.Context, id string) error {
	if _, err := uc.limiteRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.limiteRepo.Delete(ctx, id)
}
