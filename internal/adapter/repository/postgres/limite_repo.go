package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"betcontrol/internal/domain"
	"betcontrol/internal/usecase"
)

// LimiteRepository implements usecase.LimiteRepository.
type LimiteRepository struct {
	pool *pgxpool.Pool
}

// NewLimiteRepository creates a new LimiteRepository.
func NewLimiteRepository(pool *pgxpool.Pool) *LimiteRepository {
	return &LimiteRepository{pool: pool}
}

const selectLimite = `
	SELECT id, usuario_id, valor_maximo_mensal, valor_atual, mes_referencia, created_at, updated_at
	FROM limites`

// Create inserts a new limite. A second limite for the same (usuario, mes)
// surfaces as domain.ErrLimiteJaCadastrado.
func (r *LimiteRepository) Create(ctx context.Context, limite *domain.Limite) error {
	query := `
		INSERT INTO limites (id, usuario_id, valor_maximo_mensal, valor_atual, mes_referencia, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		limite.ID,
		limite.UsuarioID,
		limite.ValorMaximoMensal,
		limite.ValorAtual,
		limite.MesReferencia,
		limite.CreatedAt,
		limite.UpdatedAt,
	)

	if isUniqueViolation(err, "limites_usuario_id_mes_referencia_key") {
		return domain.ErrLimiteJaCadastrado
	}

	if isForeignKeyViolation(err, "limites_usuario_id_fkey") {
		return domain.ErrUsuarioIDInvalido
	}

	return err
}

// GetByID retrieves a limite by ID.
func (r *LimiteRepository) GetByID(ctx context.Context, id string) (*domain.Limite, error) {
	row := r.pool.QueryRow(ctx, selectLimite+` WHERE id = $1`, id)

	limite, err := scanLimite(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrLimiteNotFound
	}

	if err != nil {
		return nil, err
	}

	return limite, nil
}

// List retrieves limites with pagination.
func (r *LimiteRepository) List(ctx context.Context, limit, offset int) ([]*domain.Limite, error) {
	query := selectLimite + ` ORDER BY mes_referencia DESC, created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var limites []*domain.Limite
	for rows.Next() {
		limite, err := scanLimite(rows)
		if err != nil {
			return nil, err
		}

		limites = append(limites, limite)
	}

	return limites, rows.Err()
}

// Update replaces a limite's fields. No bookkeeping recomputation happens
// here; constraint violations surface as the matching domain errors.
func (r *LimiteRepository) Update(ctx context.Context, limite *domain.Limite) error {
	query := `
		UPDATE limites
		SET usuario_id = $2, valor_maximo_mensal = $3, valor_atual = $4, mes_referencia = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		limite.ID,
		limite.UsuarioID,
		limite.ValorMaximoMensal,
		limite.ValorAtual,
		limite.MesReferencia,
		limite.UpdatedAt,
	)

	if isUniqueViolation(err, "limites_usuario_id_mes_referencia_key") {
		return domain.ErrLimiteJaCadastrado
	}

	if isForeignKeyViolation(err, "limites_usuario_id_fkey") {
		return domain.ErrUsuarioIDInvalido
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrLimiteNotFound
	}

	return nil
}

// Delete removes a limite.
func (r *LimiteRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM limites WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrLimiteNotFound
	}

	return nil
}

// GetByUsuarioMesForUpdate locks and returns the limite row for the
// (usuario, mes) bucket. Absence is reported as (nil, nil): bookkeeping
// silently no-ops for months without a limit.
func (r *LimiteRepository) GetByUsuarioMesForUpdate(ctx context.Context, tx usecase.Transaction, usuarioID, mes string) (*domain.Limite, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := selectLimite + `
		WHERE usuario_id = $1 AND mes_referencia = $2
		FOR UPDATE`

	limite, err := scanLimite(pgxTx.QueryRow(ctx, query, usuarioID, mes))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return limite, nil
}

// UpdateValorAtual sets the running total of a limite inside tx.
func (r *LimiteRepository) UpdateValorAtual(ctx context.Context, tx usecase.Transaction, id string, valorAtual decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE limites
		SET valor_atual = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := pgxTx.Exec(ctx, query, id, valorAtual, updatedAt)

	return err
}

func scanLimite(row pgx.Row) (*domain.Limite, error) {
	var limite domain.Limite
	err := row.Scan(
		&limite.ID,
		&limite.UsuarioID,
		&limite.ValorMaximoMensal,
		&limite.ValorAtual,
		&limite.MesReferencia,
		&limite.CreatedAt,
		&limite.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &limite, nil
}
