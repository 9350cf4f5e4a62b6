package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Usuario represents a registered bettor.
type Usuario struct {
	ID        string
	Nome      string
	Email     string
	Saldo     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the Usuario fields against the entity rules.
func (u *Usuario) Validate() error {
	if err := ValidateNome(u.Nome); err != nil {
		return err
	}

	if err := ValidateEmail(u.Email); err != nil {
		return err
	}

	if u.Saldo.IsNegative() {
		return ErrSaldoNegativo
	}

	return nil
}

// LimiteExcedido is one row of the exceeded-limit report: a user whose live
// month spend is strictly above the configured cap.
type LimiteExcedido struct {
	UsuarioID     string
	Nome          string
	Email         string
	MesReferencia string
	Limite        decimal.Decimal
	Gasto         decimal.Decimal
}
