package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidNome          = errors.New("invalid nome")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidValor         = errors.New("invalid valor")
	ErrInvalidTipo          = errors.New("invalid tipo")
	ErrInvalidMesReferencia = errors.New("invalid mes de referencia")
)

// Field limits
const (
	MaxNomeLength          = 120
	MaxEmailLength         = 160
	MaxTipoLength          = 60
	MaxMesReferenciaLength = 7

	// MinValorAposta is the exclusive lower bound for bet amounts.
	MinValorAposta = "0.01"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mesRegex   = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// ValidateNome validates a user's display name.
func ValidateNome(nome string) error {
	nome = strings.TrimSpace(nome)

	if nome == "" {
		return fmt.Errorf("%w: nome cannot be empty", ErrInvalidNome)
	}

	if len(nome) > MaxNomeLength {
		return fmt.Errorf("%w: nome exceeds %d characters", ErrInvalidNome, MaxNomeLength)
	}

	return nil
}

// ValidateEmail validates email shape and length.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)

	if email == "" {
		return fmt.Errorf("%w: email cannot be empty", ErrInvalidEmail)
	}

	if len(email) > MaxEmailLength {
		return fmt.Errorf("%w: email exceeds %d characters", ErrInvalidEmail, MaxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidateValorAposta validates a bet amount. Amounts at or below 0.01 are
// rejected.
func ValidateValorAposta(valor decimal.Decimal) error {
	min := decimal.RequireFromString(MinValorAposta)

	if valor.LessThanOrEqual(min) {
		return fmt.Errorf("%w: valor must be greater than %s", ErrInvalidValor, MinValorAposta)
	}

	return nil
}

// ValidateTipo validates a bet category label.
func ValidateTipo(tipo string) error {
	tipo = strings.TrimSpace(tipo)

	if tipo == "" {
		return fmt.Errorf("%w: tipo cannot be empty", ErrInvalidTipo)
	}

	if len(tipo) > MaxTipoLength {
		return fmt.Errorf("%w: tipo exceeds %d characters", ErrInvalidTipo, MaxTipoLength)
	}

	return nil
}

// ValidateMesReferencia validates a month key in yyyy-MM form.
func ValidateMesReferencia(mes string) error {
	if mes == "" {
		return fmt.Errorf("%w: mes cannot be empty", ErrInvalidMesReferencia)
	}

	if len(mes) > MaxMesReferenciaLength {
		return fmt.Errorf("%w: mes exceeds %d characters", ErrInvalidMesReferencia, MaxMesReferenciaLength)
	}

	if !mesRegex.MatchString(mes) {
		return fmt.Errorf("%w: mes must be in yyyy-MM format", ErrInvalidMesReferencia)
	}

	return nil
}
