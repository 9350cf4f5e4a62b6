package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"betcontrol/internal/domain"
	"betcontrol/internal/infrastructure/metrics"
)

// ApostaUseCase handles bet business logic, including the limit bookkeeping
// that runs as a side effect of every bet mutation.
type ApostaUseCase struct {
	txManager   TransactionManager
	apostaRepo  ApostaRepository
	usuarioRepo UsuarioRepository
	limiteRepo  LimiteRepository
	rates       RateProvider
	idGen       IDGenerator
}

// NewApostaUseCase creates a new ApostaUseCase.
func NewApostaUseCase(
	txManager TransactionManager,
	apostaRepo ApostaRepository,
	usuarioRepo UsuarioRepository,
	limiteRepo LimiteRepository,
	rates RateProvider,
	idGen IDGenerator,
) *ApostaUseCase {
	return &ApostaUseCase{
		txManager:   txManager,
		apostaRepo:  apostaRepo,
		usuarioRepo: usuarioRepo,
		limiteRepo:  limiteRepo,
		rates:       rates,
		idGen:       idGen,
	}
}

// CreateApostaInput represents input for creating a bet.
type CreateApostaInput struct {
	UsuarioID string
	Valor     decimal.Decimal
	Tipo      string
	Data      *time.Time
	Ganhou    bool
}

// CreateAposta creates a bet and, when the bet's (usuario, month) bucket has a
// limit, adds the bet amount to that limit's running total. Both writes commit
// or roll back together.
func (uc *ApostaUseCase) CreateAposta(ctx context.Context, input CreateApostaInput) (*domain.Aposta, error) {
	now := time.Now().UTC()

	data := now
	if input.Data != nil {
		data = input.Data.UTC()
	}

	aposta := &domain.Aposta{
		ID:        uc.idGen.Generate(),
		UsuarioID: input.UsuarioID,
		Valor:     input.Valor,
		Tipo:      input.Tipo,
		Data:      data,
		Ganhou:    input.Ganhou,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := aposta.Validate(); err != nil {
		return nil, err
	}

	exists, err := uc.usuarioRepo.Exists(ctx, input.UsuarioID)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, domain.ErrUsuarioIDInvalido
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.apostaRepo.Create(ctx, tx, aposta); err != nil {
		return nil, err
	}

	if err := uc.ajustarLimite(ctx, tx, aposta.UsuarioID, aposta.MesAposta(), aposta.Valor, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.ApostasCriadas.Inc()

	return aposta, nil
}

// UpdateApostaInput represents input for updating a bet.
type UpdateApostaInput struct {
	UsuarioID string
	Valor     decimal.Decimal
	Tipo      string
	Data      time.Time
	Ganhou    bool
}

// UpdateAposta replaces a bet. When the owning user and month key are
// unchanged, the bucket's running total is adjusted by the amount delta.
// Moving a bet to another user or month reconciles neither bucket; callers
// that need that must delete and recreate the bet.
func (uc *ApostaUseCase) UpdateAposta(ctx context.Context, id string, input UpdateApostaInput) error {
	original, err := uc.apostaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	incoming := &domain.Aposta{
		ID:        id,
		UsuarioID: input.UsuarioID,
		Valor:     input.Valor,
		Tipo:      input.Tipo,
		Data:      input.Data.UTC(),
		Ganhou:    input.Ganhou,
		CreatedAt: original.CreatedAt,
		UpdatedAt: now,
	}

	if err := incoming.Validate(); err != nil {
		return err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if original.MesmoBucket(incoming) {
		delta := incoming.Valor.Sub(original.Valor)

		if err := uc.ajustarLimite(ctx, tx, incoming.UsuarioID, incoming.MesAposta(), delta, now); err != nil {
			return err
		}
	}

	if err := uc.apostaRepo.Update(ctx, tx, incoming); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// DeleteAposta removes a bet and subtracts its amount from the bucket's
// running total, floored at zero.
func (uc *ApostaUseCase) DeleteAposta(ctx context.Context, id string) error {
	aposta, err := uc.apostaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	limite, err := uc.limiteRepo.GetByUsuarioMesForUpdate(ctx, tx, aposta.UsuarioID, aposta.MesAposta())
	if err != nil {
		return err
	}

	if limite != nil {
		novo := limite.ValorAtual.Sub(aposta.Valor)
		if novo.IsNegative() {
			novo = decimal.Zero
		}

		if err := uc.limiteRepo.UpdateValorAtual(ctx, tx, limite.ID, novo, now); err != nil {
			return err
		}

		metrics.AjustesLimite.Inc()
	}

	if err := uc.apostaRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ajustarLimite adds delta to the running total of the (usuario, mes) bucket's
// limit, when one exists. Absence of a limit is a silent no-op: limits are
// opt-in per month.
func (uc *ApostaUseCase) ajustarLimite(ctx context.Context, tx Transaction, usuarioID, mes string, delta decimal.Decimal, now time.Time) error {
	limite, err := uc.limiteRepo.GetByUsuarioMesForUpdate(ctx, tx, usuarioID, mes)
	if err != nil {
		return err
	}

	if limite == nil {
		return nil
	}

	if err := uc.limiteRepo.UpdateValorAtual(ctx, tx, limite.ID, limite.ValorAtual.Add(delta), now); err != nil {
		return err
	}

	metrics.AjustesLimite.Inc()

	return nil
}

// GetAposta retrieves a bet by ID.
func (uc *ApostaUseCase) GetAposta(ctx context.Context, id string) (*domain.Aposta, error) {
	return uc.apostaRepo.GetByID(ctx, id)
}

// ListApostasInput represents input for listing bets.
type ListApostasInput struct {
	Limit  int
	Offset int
}

// ListApostas lists bets with pagination.
func (uc *ApostaUseCase) ListApostas(ctx context.Context, input ListApostasInput) ([]*domain.Aposta, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.apostaRepo.List(ctx, input.Limit, input.Offset)
}

// MediaApostas returns the arithmetic mean of all bet amounts, zero when
// there are no bets.
func (uc *ApostaUseCase) MediaApostas(ctx context.Context) (decimal.Decimal, error) {
	return uc.apostaRepo.MediaValor(ctx)
}

// ApostasAcimaDaMedia lists bets strictly above the current average.
func (uc *ApostaUseCase) ApostasAcimaDaMedia(ctx context.Context) ([]*domain.Aposta, error) {
	return uc.apostaRepo.ListAcimaDaMedia(ctx)
}

// ConversaoUSD is the result of converting a bet's amount to USD.
type ConversaoUSD struct {
	ApostaID string
	Valor    decimal.Decimal
	USD      decimal.Decimal
	Cotacao  decimal.Decimal
}

// ConverterValorUSD converts a bet's amount to USD at the current quote. A
// missing bet is a not-found error; any quote failure surfaces as
// domain.ErrCotacaoIndisponivel, with no retry.
func (uc *ApostaUseCase) ConverterValorUSD(ctx context.Context, id string) (*ConversaoUSD, error) {
	aposta, err := uc.apostaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cotacao, err := uc.rates.BRLToUSD(ctx)
	if err != nil {
		metrics.CotacoesFalhas.Inc()
		return nil, err
	}

	metrics.CotacoesObtidas.Inc()

	return &ConversaoUSD{
		ApostaID: aposta.ID,
		Valor:    aposta.Valor,
		USD:      aposta.Valor.Mul(cotacao),
		Cotacao:  cotacao,
	}, nil
}
