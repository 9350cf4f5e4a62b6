package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"betcontrol/internal/adapter/http/dto"
	"betcontrol/tests/testutil"
)

func TestApostaBookkeeping(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	usuario := testDB.CreateTestUsuario(ctx, "Maria Silva", "maria@example.com")
	limite := testDB.CreateTestLimite(ctx, usuario.ID, "2025-10", decimal.NewFromInt(500), decimal.Zero)

	data := time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)

	postAposta := func(t *testing.T, valor decimal.Decimal) dto.ApostaResponse {
		t.Helper()

		body, _ := json.Marshal(dto.CreateApostaRequest{
			UsuarioID: usuario.ID,
			Valor:     valor,
			Tipo:      "futebol",
			Data:      &data,
		})

		r := httptest.NewRequest(http.MethodPost, "/api/v1/apostas", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var resp dto.ApostaResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		return resp
	}

	first := postAposta(t, decimal.NewFromInt(100))
	second := postAposta(t, decimal.NewFromInt(50))

	t.Run("create accumulates into the month limite", func(t *testing.T) {
		if got := testDB.LimiteValorAtual(ctx, limite.ID); !got.Equal(decimal.NewFromInt(150)) {
			t.Fatalf("expected valor_atual 150 after two bets, got %s", got)
		}
	})

	t.Run("delete subtracts the bet amount", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/apostas/"+first.ID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected status %d, got %d: %s", http.StatusNoContent, w.Code, w.Body.String())
		}

		if got := testDB.LimiteValorAtual(ctx, limite.ID); !got.Equal(decimal.NewFromInt(50)) {
			t.Fatalf("expected valor_atual 50 after deleting the 100 bet, got %s", got)
		}
	})

	t.Run("delete floors the running total at zero", func(t *testing.T) {
		// Desynchronize the cached total below the remaining bet amount.
		if _, err := testDB.Pool.Exec(ctx, `UPDATE limites SET valor_atual = 10 WHERE id = $1`, limite.ID); err != nil {
			t.Fatalf("failed to desync valor_atual: %v", err)
		}

		r := httptest.NewRequest(http.MethodDelete, "/api/v1/apostas/"+second.ID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected status %d, got %d: %s", http.StatusNoContent, w.Code, w.Body.String())
		}

		if got := testDB.LimiteValorAtual(ctx, limite.ID); !got.Equal(decimal.Zero) {
			t.Fatalf("expected valor_atual floored at 0, got %s", got)
		}
	})
}

func TestApostaCreateUsuarioInexistente(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	body, _ := json.Marshal(dto.CreateApostaRequest{
		UsuarioID: "no-such-usuario",
		Valor:     decimal.NewFromInt(10),
		Tipo:      "futebol",
	})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/apostas", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, w.Code, w.Body.String())
	}
}
