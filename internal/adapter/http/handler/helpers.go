package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"betcontrol/internal/adapter/http/dto"
	"betcontrol/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes. Upstream quote
// failures map to 502 and are never conflated with 404.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUsuarioNotFound),
		errors.Is(err, domain.ErrApostaNotFound),
		errors.Is(err, domain.ErrLimiteNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailJaCadastrado),
		errors.Is(err, domain.ErrLimiteJaCadastrado):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCotacaoIndisponivel):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrInvalidNome),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidValor),
		errors.Is(err, domain.ErrInvalidTipo),
		errors.Is(err, domain.ErrInvalidMesReferencia),
		errors.Is(err, domain.ErrUsuarioIDInvalido),
		errors.Is(err, domain.ErrSaldoNegativo),
		errors.Is(err, domain.ErrValorMaximoNegativo),
		errors.Is(err, domain.ErrValorAtualNegativo),
		errors.Is(err, domain.ErrIDMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}

	return i
}

// checkIDMatch enforces that a payload id, when present, matches the path id.
func checkIDMatch(pathID, payloadID string) error {
	if payloadID != "" && payloadID != pathID {
		return domain.ErrIDMismatch
	}

	return nil
}
