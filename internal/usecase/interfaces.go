package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"betcontrol/internal/domain"
)

// UsuarioRepository defines data access for usuarios.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *domain.Usuario) error
	GetByID(ctx context.Context, id string) (*domain.Usuario, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Usuario, error)
	Update(ctx context.Context, usuario *domain.Usuario) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	// ListExcederamLimite returns, for the given month key, every user whose
	// live bet sum for the month strictly exceeds the configured cap. The
	// cached ValorAtual plays no part in this query.
	ListExcederamLimite(ctx context.Context, mes string) ([]*domain.LimiteExcedido, error)
}

// ApostaRepository defines data access for apostas. Mutations take a
// Transaction so they commit together with limit bookkeeping.
type ApostaRepository interface {
	Create(ctx context.Context, tx Transaction, aposta *domain.Aposta) error
	GetByID(ctx context.Context, id string) (*domain.Aposta, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Aposta, error)
	Update(ctx context.Context, tx Transaction, aposta *domain.Aposta) error
	Delete(ctx context.Context, tx Transaction, id string) error
	SumValorByUsuarioMes(ctx context.Context, usuarioID, mes string) (decimal.Decimal, error)
	MediaValor(ctx context.Context) (decimal.Decimal, error)
	ListAcimaDaMedia(ctx context.Context) ([]*domain.Aposta, error)
}

// LimiteRepository defines data access for limites.
type LimiteRepository interface {
	Create(ctx context.Context, limite *domain.Limite) error
	GetByID(ctx context.Context, id string) (*domain.Limite, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Limite, error)
	Update(ctx context.Context, limite *domain.Limite) error
	Delete(ctx context.Context, id string) error
	// GetByUsuarioMesForUpdate locks and returns the limite row for the
	// (usuario, mes) bucket, or (nil, nil) when the bucket has no limit —
	// absence is a bookkeeping no-op, not an error.
	GetByUsuarioMesForUpdate(ctx context.Context, tx Transaction, usuarioID, mes string) (*domain.Limite, error)
	UpdateValorAtual(ctx context.Context, tx Transaction, id string, valorAtual decimal.Decimal, updatedAt time.Time) error
}

// RateProvider quotes the BRL→USD exchange rate.
type RateProvider interface {
	BRLToUSD(ctx context.Context) (decimal.Decimal, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
