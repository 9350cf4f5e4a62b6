package domain

import "errors"

var (
	// Not-found errors
	ErrUsuarioNotFound = errors.New("usuario not found")
	ErrApostaNotFound  = errors.New("aposta not found")
	ErrLimiteNotFound  = errors.New("limite not found")

	// Conflict errors, surfaced from storage unique constraints
	ErrEmailJaCadastrado  = errors.New("email already registered")
	ErrLimiteJaCadastrado = errors.New("limite already exists for this user and month")

	// Validation errors
	ErrUsuarioIDInvalido   = errors.New("usuario id does not reference an existing usuario")
	ErrSaldoNegativo       = errors.New("saldo cannot be negative")
	ErrValorMaximoNegativo = errors.New("valor maximo mensal cannot be negative")
	ErrValorAtualNegativo  = errors.New("valor atual cannot be negative")
	ErrIDMismatch          = errors.New("id in path does not match id in payload")

	// ErrCotacaoIndisponivel marks an upstream quote-service failure. It is
	// never conflated with a not-found error.
	ErrCotacaoIndisponivel = errors.New("exchange rate service unavailable")
)
