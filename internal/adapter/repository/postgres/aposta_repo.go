package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"betcontrol/internal/domain"
	"betcontrol/internal/usecase"
)

// ApostaRepository implements usecase.ApostaRepository.
type ApostaRepository struct {
	pool *pgxpool.Pool
}

// NewApostaRepository creates a new ApostaRepository.
func NewApostaRepository(pool *pgxpool.Pool) *ApostaRepository {
	return &ApostaRepository{pool: pool}
}

// Create inserts a new aposta inside tx.
func (r *ApostaRepository) Create(ctx context.Context, tx usecase.Transaction, aposta *domain.Aposta) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO apostas (id, usuario_id, valor, tipo, data, ganhou, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := pgxTx.Exec(ctx, query,
		aposta.ID,
		aposta.UsuarioID,
		aposta.Valor,
		aposta.Tipo,
		aposta.Data,
		aposta.Ganhou,
		aposta.CreatedAt,
		aposta.UpdatedAt,
	)

	if isForeignKeyViolation(err, "apostas_usuario_id_fkey") {
		return domain.ErrUsuarioIDInvalido
	}

	return err
}

// GetByID retrieves an aposta by ID.
func (r *ApostaRepository) GetByID(ctx context.Context, id string) (*domain.Aposta, error) {
	row := r.pool.QueryRow(ctx, selectAposta+` WHERE id = $1`, id)

	aposta, err := scanAposta(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrApostaNotFound
	}

	if err != nil {
		return nil, err
	}

	return aposta, nil
}

// List retrieves apostas with pagination.
func (r *ApostaRepository) List(ctx context.Context, limit, offset int) ([]*domain.Aposta, error) {
	query := selectAposta + ` ORDER BY data DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApostas(rows)
}

// Update replaces an aposta's fields inside tx.
func (r *ApostaRepository) Update(ctx context.Context, tx usecase.Transaction, aposta *domain.Aposta) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE apostas
		SET usuario_id = $2, valor = $3, tipo = $4, data = $5, ganhou = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := pgxTx.Exec(ctx, query,
		aposta.ID,
		aposta.UsuarioID,
		aposta.Valor,
		aposta.Tipo,
		aposta.Data,
		aposta.Ganhou,
		aposta.UpdatedAt,
	)

	if isForeignKeyViolation(err, "apostas_usuario_id_fkey") {
		return domain.ErrUsuarioIDInvalido
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrApostaNotFound
	}

	return nil
}

// Delete removes an aposta inside tx.
func (r *ApostaRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM apostas WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrApostaNotFound
	}

	return nil
}

// SumValorByUsuarioMes returns the sum of a user's bet amounts whose UTC
// month key matches mes, zero when there are none.
func (r *ApostaRepository) SumValorByUsuarioMes(ctx context.Context, usuarioID, mes string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(valor), 0)
		FROM apostas
		WHERE usuario_id = $1
		  AND to_char(data AT TIME ZONE 'UTC', 'YYYY-MM') = $2
	`

	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx, query, usuarioID, mes).Scan(&sum)

	return sum, err
}

// MediaValor returns the average bet amount over all apostas, zero when the
// table is empty.
func (r *ApostaRepository) MediaValor(ctx context.Context) (decimal.Decimal, error) {
	var media decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(AVG(valor), 0) FROM apostas`).Scan(&media)

	return media, err
}

// ListAcimaDaMedia returns apostas with valor strictly above the current
// average. The subquery yields NULL on an empty table, so no rows match.
func (r *ApostaRepository) ListAcimaDaMedia(ctx context.Context) ([]*domain.Aposta, error) {
	query := selectAposta + `
		WHERE valor > (SELECT AVG(valor) FROM apostas)
		ORDER BY valor DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApostas(rows)
}

const selectAposta = `
	SELECT id, usuario_id, valor, tipo, data, ganhou, created_at, updated_at
	FROM apostas`

func scanAposta(row pgx.Row) (*domain.Aposta, error) {
	var aposta domain.Aposta
	err := row.Scan(
		&aposta.ID,
		&aposta.UsuarioID,
		&aposta.Valor,
		&aposta.Tipo,
		&aposta.Data,
		&aposta.Ganhou,
		&aposta.CreatedAt,
		&aposta.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &aposta, nil
}

func collectApostas(rows pgx.Rows) ([]*domain.Aposta, error) {
	var apostas []*domain.Aposta
	for rows.Next() {
		aposta, err := scanAposta(rows)
		if err != nil {
			return nil, err
		}

		apostas = append(apostas, aposta)
	}

	return apostas, rows.Err()
}
