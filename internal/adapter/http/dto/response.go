package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"betcontrol/internal/domain"
	"betcontrol/internal/usecase"
)

// UsuarioResponse represents a usuario in API responses.
type UsuarioResponse struct {
	ID        string          `json:"id"`
	Nome      string          `json:"nome"`
	Email     string          `json:"email"`
	Saldo     decimal.Decimal `json:"saldo"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// UsuarioFromDomain converts a domain usuario to a response.
func UsuarioFromDomain(u *domain.Usuario) *UsuarioResponse {
	return &UsuarioResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		Saldo:     u.Saldo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UsuariosFromDomain converts domain usuarios to responses.
func UsuariosFromDomain(usuarios []*domain.Usuario) []*UsuarioResponse {
	result := make([]*UsuarioResponse, len(usuarios))
	for i, u := range usuarios {
		result[i] = UsuarioFromDomain(u)
	}

	return result
}

// ApostaResponse represents an aposta in API responses.
type ApostaResponse struct {
	ID        string          `json:"id"`
	UsuarioID string          `json:"usuario_id"`
	Valor     decimal.Decimal `json:"valor"`
	Tipo      string          `json:"tipo"`
	Data      time.Time       `json:"data"`
	Ganhou    bool            `json:"ganhou"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ApostaFromDomain converts a domain aposta to a response.
func ApostaFromDomain(a *domain.Aposta) *ApostaResponse {
	return &ApostaResponse{
		ID:        a.ID,
		UsuarioID: a.UsuarioID,
		Valor:     a.Valor,
		Tipo:      a.Tipo,
		Data:      a.Data,
		Ganhou:    a.Ganhou,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ApostasFromDomain converts domain apostas to responses.
func ApostasFromDomain(apostas []*domain.Aposta) []*ApostaResponse {
	result := make([]*ApostaResponse, len(apostas))
	for i, a := range apostas {
		result[i] = ApostaFromDomain(a)
	}

	return result
}

// LimiteResponse represents a limite in API responses.
type LimiteResponse struct {
	ID                string          `json:"id"`
	UsuarioID         string          `json:"usuario_id"`
	ValorMaximoMensal decimal.Decimal `json:"valor_maximo_mensal"`
	ValorAtual        decimal.Decimal `json:"valor_atual"`
	MesReferencia     string          `json:"mes_referencia"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// LimiteFromDomain converts a domain limite to a response.
func LimiteFromDomain(l *domain.Limite) *LimiteResponse {
	return &LimiteResponse{
		ID:                l.ID,
		UsuarioID:         l.UsuarioID,
		ValorMaximoMensal: l.ValorMaximoMensal,
		ValorAtual:        l.ValorAtual,
		MesReferencia:     l.MesReferencia,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// LimitesFromDomain converts domain limites to responses.
func LimitesFromDomain(limites []*domain.Limite) []*LimiteResponse {
	result := make([]*LimiteResponse, len(limites))
	for i, l := range limites {
		result[i] = LimiteFromDomain(l)
	}

	return result
}

// LimiteExcedidoResponse is one row of the exceeded-limit report.
type LimiteExcedidoResponse struct {
	UsuarioID     string          `json:"usuario_id"`
	Nome          string          `json:"nome"`
	Email         string          `json:"email"`
	MesReferencia string          `json:"mes_referencia"`
	Limite        decimal.Decimal `json:"limite"`
	Gasto         decimal.Decimal `json:"gasto"`
}

// LimitesExcedidosFromDomain converts report rows to responses.
func LimitesExcedidosFromDomain(rows []*domain.LimiteExcedido) []*LimiteExcedidoResponse {
	result := make([]*LimiteExcedidoResponse, len(rows))
	for i, row := range rows {
		result[i] = &LimiteExcedidoResponse{
			UsuarioID:     row.UsuarioID,
			Nome:          row.Nome,
			Email:         row.Email,
			MesReferencia: row.MesReferencia,
			Limite:        row.Limite,
			Gasto:         row.Gasto,
		}
	}

	return result
}

// MediaResponse carries the average bet amount.
type MediaResponse struct {
	Media decimal.Decimal `json:"media"`
}

// ConversaoUSDResponse carries a bet amount converted to USD.
type ConversaoUSDResponse struct {
	ID      string          `json:"id"`
	Valor   decimal.Decimal `json:"valor"`
	USD     decimal.Decimal `json:"usd"`
	Cotacao decimal.Decimal `json:"cotacao"`
}

// ConversaoUSDFromUseCase converts a conversion result to a response.
func ConversaoUSDFromUseCase(c *usecase.ConversaoUSD) *ConversaoUSDResponse {
	return &ConversaoUSDResponse{
		ID:      c.ApostaID,
		Valor:   c.Valor,
		USD:     c.USD,
		Cotacao: c.Cotacao,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
