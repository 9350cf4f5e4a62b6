package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Aposta represents a single bet placed by a user.
type Aposta struct {
	ID        string
	UsuarioID string
	Valor     decimal.Decimal
	Tipo      string
	Data      time.Time
	Ganhou    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the Aposta fields against the entity rules. Existence of the
// owning user is a storage concern and is checked separately.
func (a *Aposta) Validate() error {
	if a.UsuarioID == "" {
		return ErrUsuarioIDInvalido
	}

	if err := ValidateValorAposta(a.Valor); err != nil {
		return err
	}

	return ValidateTipo(a.Tipo)
}

// MesAposta returns the month key of the bet's timestamp.
func (a *Aposta) MesAposta() string {
	return MesReferencia(a.Data)
}

// MesmoBucket reports whether two bets fall in the same bookkeeping bucket,
// i.e. same owning user and same month key.
func (a *Aposta) MesmoBucket(other *Aposta) bool {
	return a.UsuarioID == other.UsuarioID && a.MesAposta() == other.MesAposta()
}
