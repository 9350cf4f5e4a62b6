package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"betcontrol/internal/domain"
)

// UsuarioRepository implements usecase.UsuarioRepository.
type UsuarioRepository struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository creates a new UsuarioRepository.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepository {
	return &UsuarioRepository{pool: pool}
}

// Create inserts a new usuario. A duplicate email surfaces as
// domain.ErrEmailJaCadastrado.
func (r *UsuarioRepository) Create(ctx context.Context, usuario *domain.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nome, email, saldo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		usuario.ID,
		usuario.Nome,
		usuario.Email,
		usuario.Saldo,
		usuario.CreatedAt,
		usuario.UpdatedAt,
	)

	if isUniqueViolation(err, "usuarios_email_key") {
		return domain.ErrEmailJaCadastrado
	}

	return err
}

// GetByID retrieves a usuario by ID.
func (r *UsuarioRepository) GetByID(ctx context.Context, id string) (*domain.Usuario, error) {
	query := `
		SELECT id, nome, email, saldo, created_at, updated_at
		FROM usuarios
		WHERE id = $1
	`

	var usuario domain.Usuario
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&usuario.ID,
		&usuario.Nome,
		&usuario.Email,
		&usuario.Saldo,
		&usuario.CreatedAt,
		&usuario.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUsuarioNotFound
	}

	if err != nil {
		return nil, err
	}

	return &usuario, nil
}

// List retrieves usuarios with pagination.
func (r *UsuarioRepository) List(ctx context.Context, limit, offset int) ([]*domain.Usuario, error) {
	query := `
		SELECT id, nome, email, saldo, created_at, updated_at
		FROM usuarios
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usuarios []*domain.Usuario
	for rows.Next() {
		var usuario domain.Usuario
		err := rows.Scan(
			&usuario.ID,
			&usuario.Nome,
			&usuario.Email,
			&usuario.Saldo,
			&usuario.CreatedAt,
			&usuario.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		usuarios = append(usuarios, &usuario)
	}

	return usuarios, rows.Err()
}

// Update updates a usuario.
func (r *UsuarioRepository) Update(ctx context.Context, usuario *domain.Usuario) error {
	query := `
		UPDATE usuarios
		SET nome = $2, email = $3, saldo = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		usuario.ID,
		usuario.Nome,
		usuario.Email,
		usuario.Saldo,
		usuario.UpdatedAt,
	)

	if isUniqueViolation(err, "usuarios_email_key") {
		return domain.ErrEmailJaCadastrado
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNotFound
	}

	return nil
}

// Delete removes a usuario. Apostas and limites go with it via ON DELETE
// CASCADE.
func (r *UsuarioRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNotFound
	}

	return nil
}

// Exists reports whether a usuario with the given ID exists.
func (r *UsuarioRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM usuarios WHERE id = $1)`, id).Scan(&exists)

	return exists, err
}

// ListExcederamLimite returns the users whose live bet sum for the given month
// strictly exceeds their configured cap. The sum is recomputed from the
// apostas table; the cached valor_atual column is deliberately ignored.
func (r *UsuarioRepository) ListExcederamLimite(ctx context.Context, mes string) ([]*domain.LimiteExcedido, error) {
	query := `
		SELECT u.id, u.nome, u.email, l.mes_referencia, l.valor_maximo_mensal,
		       COALESCE(g.gasto, 0) AS gasto
		FROM limites l
		JOIN usuarios u ON u.id = l.usuario_id
		LEFT JOIN LATERAL (
			SELECT SUM(a.valor) AS gasto
			FROM apostas a
			WHERE a.usuario_id = l.usuario_id
			  AND to_char(a.data AT TIME ZONE 'UTC', 'YYYY-MM') = l.mes_referencia
		) g ON true
		WHERE l.mes_referencia = $1
		  AND COALESCE(g.gasto, 0) > l.valor_maximo_mensal
		ORDER BY u.nome
	`

	rows, err := r.pool.Query(ctx, query, mes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.LimiteExcedido
	for rows.Next() {
		var row domain.LimiteExcedido
		err := rows.Scan(
			&row.UsuarioID,
			&row.Nome,
			&row.Email,
			&row.MesReferencia,
			&row.Limite,
			&row.Gasto,
		)
		if err != nil {
			return nil, err
		}

		result = append(result, &row)
	}

	return result, rows.Err()
}
