package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"betcontrol/internal/adapter/http/dto"
	"betcontrol/internal/domain"
	"betcontrol/internal/usecase"
)

type apostaServiceStub struct {
	createFn       func(ctx context.Context, input usecase.CreateApostaInput) (*domain.Aposta, error)
	getFn          func(ctx context.Context, id string) (*domain.Aposta, error)
	listFn         func(ctx context.Context, input usecase.ListApostasInput) ([]*domain.Aposta, error)
	updateFn       func(ctx context.Context, id string, input usecase.UpdateApostaInput) error
	deleteFn       func(ctx context.Context, id string) error
	mediaFn        func(ctx context.Context) (decimal.Decimal, error)
	acimaDaMediaFn func(ctx context.Context) ([]*domain.Aposta, error)
	converterFn    func(ctx context.Context, id string) (*usecase.ConversaoUSD, error)
}

func (s *apostaServiceStub) CreateAposta(ctx context.Context, input usecase.CreateApostaInput) (*domain.Aposta, error) {
	return s.createFn(ctx, input)
}

func (s *apostaServiceStub) GetAposta(ctx context.Context, id string) (*domain.Aposta, error) {
	return s.getFn(ctx, id)
}

func (s *apostaServiceStub) ListApostas(ctx context.Context, input usecase.ListApostasInput) ([]*domain.Aposta, error) {
	return s.listFn(ctx, input)
}

func (s *apostaServiceStub) UpdateAposta(ctx context.Context, id string, input usecase.UpdateApostaInput) error {
	return s.updateFn(ctx, id, input)
}

func (s *apostaServiceStub) DeleteAposta(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *apostaServiceStub) MediaApostas(ctx context.Context) (decimal.Decimal, error) {
	return s.mediaFn(ctx)
}

func (s *apostaServiceStub) ApostasAcimaDaMedia(ctx context.Context) ([]*domain.Aposta, error) {
	return s.acimaDaMediaFn(ctx)
}

func (s *apostaServiceStub) ConverterValorUSD(ctx context.Context, id string) (*usecase.ConversaoUSD, error) {
	return s.converterFn(ctx, id)
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

func TestApostaHandler_Create_Success(t *testing.T) {
	aposta := &domain.Aposta{
		ID:        "ap-1",
		UsuarioID: "user-1",
		Valor:     decimal.NewFromInt(100),
		Tipo:      "esportiva",
		Data:      time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
	}

	var captured usecase.CreateApostaInput
	handler := NewApostaHandler(&apostaServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateApostaInput) (*domain.Aposta, error) {
			captured = input
			return aposta, nil
		},
	})

	body, _ := json.Marshal(dto.CreateApostaRequest{
		UsuarioID: "user-1",
		Valor:     decimal.NewFromInt(100),
		Tipo:      "esportiva",
	})

	req := httptest.NewRequest(http.MethodPost, "/apostas", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.UsuarioID != "user-1" || !captured.Valor.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.ApostaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "ap-1" {
		t.Fatalf("expected aposta ID ap-1, got %s", resp.ID)
	}
}

func TestApostaHandler_Create_UsuarioInvalido(t *testing.T) {
	handler := NewApostaHandler(&apostaServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateApostaInput) (*domain.Aposta, error) {
			return nil, domain.ErrUsuarioIDInvalido
		},
	})

	body, _ := json.Marshal(dto.CreateApostaRequest{UsuarioID: "ghost", Valor: decimal.NewFromInt(100), Tipo: "esportiva"})
	req := httptest.NewRequest(http.MethodPost, "/apostas", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestApostaHandler_Get_NotFound(t *testing.T) {
	handler := NewApostaHandler(&apostaServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Aposta, error) {
			return nil, domain.ErrApostaNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/apostas/ghost", nil)
	req = setChiURLParam(req, "id", "ghost")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestApostaHandler_Update_IDMismatch(t *testing.T) {
	handler := NewApostaHandler(&apostaServiceStub{
		updateFn: func(ctx context.Context, id string, input usecase.UpdateApostaInput) error {
			t.Fatal("UpdateAposta should not be called on id mismatch")
			return nil
		},
	})

	body, _ := json.Marshal(dto.UpdateApostaRequest{
		ID:        "other",
		UsuarioID: "user-1",
		Valor:     decimal.NewFromInt(100),
		Tipo:      "esportiva",
		Data:      time.Now(),
	})

	req := httptest.NewRequest(http.MethodPut, "/apostas/ap-1", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "ap-1")
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestApostaHandler_Update_Success(t *testing.T) {
	var capturedID string
	handler := NewApostaHandler(&apostaServiceStub{
		updateFn: func(ctx context.Context, id string, input usecase.UpdateApostaInput) error {
			capturedID = id
			return nil
		},
	})

	body, _ := json.Marshal(dto.UpdateApostaRequest{
		ID:        "ap-1",
		UsuarioID: "user-1",
		Valor:     decimal.NewFromInt(150),
		Tipo:      "esportiva",
		Data:      time.Now(),
	})

	req := httptest.NewRequest(http.MethodPut, "/apostas/ap-1", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "ap-1")
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	if capturedID != "ap-1" {
		t.Fatalf("expected id ap-1, got %s", capturedID)
	}
}

func TestApostaHandler_Delete_Success(t *testing.T) {
	handler := NewApostaHandler(&apostaServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/apostas/ap-1", nil)
	req = setChiURLParam(req, "id", "ap-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestApostaHandler_Media(t *testing.T) {
	handler := NewApostaHandler(&apostaServiceStub{
		mediaFn: func(ctx context.Context) (decimal.Decimal, error) {
			return decimal.RequireFromString("75.5"), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/apostas/media", nil)
	rec := httptest.NewRecorder()

	handler.Media(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.MediaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Media.Equal(decimal.RequireFromString("75.5")) {
		t.Fatalf("expected media 75.5, got %s", resp.Media)
	}
}

func TestApostaHandler_AcimaDaMedia_Empty(t *testing.T) {
	handler := NewApostaHandler(&apostaServiceStub{
		acimaDaMediaFn: func(ctx context.Context) ([]*domain.Aposta, error) {
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/apostas/acima-da-media", nil)
	rec := httptest.NewRecorder()

	handler.AcimaDaMedia(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestApostaHandler_ValorUSD_Success(t *testing.T) {
	handler := NewApostaHandler(&apostaServiceStub{
		converterFn: func(ctx context.Context, id string) (*usecase.ConversaoUSD, error) {
			return &usecase.ConversaoUSD{
				ApostaID: id,
				Valor:    decimal.NewFromInt(100),
				USD:      decimal.NewFromInt(20),
				Cotacao:  decimal.RequireFromString("0.2"),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/apostas/ap-1/valor-usd", nil)
	req = setChiURLParam(req, "id", "ap-1")
	rec := httptest.NewRecorder()

	handler.ValorUSD(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ConversaoUSDResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.USD.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected 20 USD, got %s", resp.USD)
	}
}

func TestApostaHandler_ValorUSD_CotacaoIndisponivel(t *testing.T) {
	handler := NewApostaHandler(&apostaServiceStub{
		converterFn: func(ctx context.Context, id string) (*usecase.ConversaoUSD, error) {
			return nil, domain.ErrCotacaoIndisponivel
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/apostas/ap-1/valor-usd", nil)
	req = setChiURLParam(req, "id", "ap-1")
	rec := httptest.NewRecorder()

	handler.ValorUSD(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestApostaHandler_ValorUSD_NotFound(t *testing.T) {
	handler := NewApostaHandler(&apostaServiceStub{
		converterFn: func(ctx context.Context, id string) (*usecase.ConversaoUSD, error) {
			return nil, domain.ErrApostaNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/apostas/ghost/valor-usd", nil)
	req = setChiURLParam(req, "id", "ghost")
	rec := httptest.NewRecorder()

	handler.ValorUSD(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
