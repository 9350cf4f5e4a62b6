package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Limite represents a user's spending limit for one reference month.
//
// ValorAtual is a derived running total of the user's bet amounts for the
// month. It is adjusted as a side effect of bet mutations and is advisory:
// anything that decides whether a limit was exceeded recomputes the live sum
// instead of trusting this field.
type Limite struct {
	ID                string
	UsuarioID         string
	ValorMaximoMensal decimal.Decimal
	ValorAtual        decimal.Decimal
	MesReferencia     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks the Limite fields against the entity rules.
func (l *Limite) Validate() error {
	if l.UsuarioID == "" {
		return ErrUsuarioIDInvalido
	}

	if l.ValorMaximoMensal.IsNegative() {
		return ErrValorMaximoNegativo
	}

	if l.ValorAtual.IsNegative() {
		return ErrValorAtualNegativo
	}

	return ValidateMesReferencia(l.MesReferencia)
}

// MesReferencia converts a timestamp to its month key (yyyy-MM), computed
// from the UTC representation.
func MesReferencia(t time.Time) string {
	return t.UTC().Format("2006-01")
}
