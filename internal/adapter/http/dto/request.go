package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"betcontrol/internal/usecase"
)

// CreateUsuarioRequest represents a request to create a usuario.
type CreateUsuarioRequest struct {
	Nome  string          `json:"nome"`
	Email string          `json:"email"`
	Saldo decimal.Decimal `json:"saldo"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateUsuarioRequest) ToUseCaseInput() usecase.CreateUsuarioInput {
	return usecase.CreateUsuarioInput{
		Nome:  r.Nome,
		Email: r.Email,
		Saldo: r.Saldo,
	}
}

// UpdateUsuarioRequest represents a request to update a usuario. The ID, when
// present, must match the path.
type UpdateUsuarioRequest struct {
	ID    string          `json:"id"`
	Nome  string          `json:"nome"`
	Email string          `json:"email"`
	Saldo decimal.Decimal `json:"saldo"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateUsuarioRequest) ToUseCaseInput() usecase.UpdateUsuarioInput {
	return usecase.UpdateUsuarioInput{
		Nome:  r.Nome,
		Email: r.Email,
		Saldo: r.Saldo,
	}
}

// CreateApostaRequest represents a request to create an aposta. Data is
// optional and defaults to the creation time.
type CreateApostaRequest struct {
	UsuarioID string          `json:"usuario_id"`
	Valor     decimal.Decimal `json:"valor"`
	Tipo      string          `json:"tipo"`
	Data      *time.Time      `json:"data,omitempty"`
	Ganhou    bool            `json:"ganhou"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateApostaRequest) ToUseCaseInput() usecase.CreateApostaInput {
	return usecase.CreateApostaInput{
		UsuarioID: r.UsuarioID,
		Valor:     r.Valor,
		Tipo:      r.Tipo,
		Data:      r.Data,
		Ganhou:    r.Ganhou,
	}
}

// UpdateApostaRequest represents a request to update an aposta.
type UpdateApostaRequest struct {
	ID        string          `json:"id"`
	UsuarioID string          `json:"usuario_id"`
	Valor     decimal.Decimal `json:"valor"`
	Tipo      string          `json:"tipo"`
	Data      time.Time       `json:"data"`
	Ganhou    bool            `json:"ganhou"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateApostaRequest) ToUseCaseInput() usecase.UpdateApostaInput {
	return usecase.UpdateApostaInput{
		UsuarioID: r.UsuarioID,
		Valor:     r.Valor,
		Tipo:      r.Tipo,
		Data:      r.Data,
		Ganhou:    r.Ganhou,
	}
}

// CreateLimiteRequest represents a request to create a limite. MesReferencia
// is optional and defaults to the current UTC month.
type CreateLimiteRequest struct {
	UsuarioID         string          `json:"usuario_id"`
	ValorMaximoMensal decimal.Decimal `json:"valor_maximo_mensal"`
	MesReferencia     string          `json:"mes_referencia,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLimiteRequest) ToUseCaseInput() usecase.CreateLimiteInput {
	return usecase.CreateLimiteInput{
		UsuarioID:         r.UsuarioID,
		ValorMaximoMensal: r.ValorMaximoMensal,
		MesReferencia:     r.MesReferencia,
	}
}

// UpdateLimiteRequest represents a request to update a limite.
type UpdateLimiteRequest struct {
	ID                string          `json:"id"`
	UsuarioID         string          `json:"usuario_id"`
	ValorMaximoMensal decimal.Decimal `json:"valor_maximo_mensal"`
	ValorAtual        decimal.Decimal `json:"valor_atual"`
	MesReferencia     string          `json:"mes_referencia"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateLimiteRequest) ToUseCaseInput() usecase.UpdateLimiteInput {
	return usecase.UpdateLimiteInput{
		UsuarioID:         r.UsuarioID,
		ValorMaximoMensal: r.ValorMaximoMensal,
		ValorAtual:        r.ValorAtual,
		MesReferencia:     r.MesReferencia,
	}
}
