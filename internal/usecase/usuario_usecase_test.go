package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"betcontrol/internal/domain"
	"betcontrol/internal/usecase"
	"betcontrol/internal/usecase/mocks"
)

func TestUsuarioUseCase_CreateUsuario(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateUsuarioInput
		expectError bool
		errorType   error
	}{
		{
			name: "successful create",
			input: usecase.CreateUsuarioInput{
				Nome:  "Maria Silva",
				Email: "maria@example.com",
				Saldo: decimal.NewFromInt(1000),
			},
		},
		{
			name: "empty nome",
			input: usecase.CreateUsuarioInput{
				Email: "maria@example.com",
			},
			expectError: true,
			errorType:   domain.ErrInvalidNome,
		},
		{
			name: "malformed email",
			input: usecase.CreateUsuarioInput{
				Nome:  "Maria Silva",
				Email: "not-an-email",
			},
			expectError: true,
			errorType:   domain.ErrInvalidEmail,
		},
		{
			name: "negative saldo",
			input: usecase.CreateUsuarioInput{
				Nome:  "Maria Silva",
				Email: "maria@example.com",
				Saldo: decimal.NewFromInt(-1),
			},
			expectError: true,
			errorType:   domain.ErrSaldoNegativo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewUsuarioUseCase(mocks.NewMockUsuarioRepository(), mocks.NewMockIDGenerator())

			usuario, err := uc.CreateUsuario(context.Background(), tt.input)

			if tt.expectError {
				if !errors.Is(err, tt.errorType) {
					t.Errorf("expected %v, got %v", tt.errorType, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if usuario.ID == "" {
				t.Error("expected generated ID")
			}
		})
	}
}

func TestUsuarioUseCase_CreateUsuario_EmailDuplicado(t *testing.T) {
	usuarioRepo := mocks.NewMockUsuarioRepository()
	usuarioRepo.CreateFunc = func(ctx context.Context, usuario *domain.Usuario) error {
		return domain.ErrEmailJaCadastrado
	}

	uc := usecase.NewUsuarioUseCase(usuarioRepo, mocks.NewMockIDGenerator())

	_, err := uc.CreateUsuario(context.Background(), usecase.CreateUsuarioInput{
		Nome:  "Maria Silva",
		Email: "maria@example.com",
	})

	if !errors.Is(err, domain.ErrEmailJaCadastrado) {
		t.Errorf("expected ErrEmailJaCadastrado, got %v", err)
	}
}

func TestUsuarioUseCase_UpdateUsuario(t *testing.T) {
	usuarioRepo := mocks.NewMockUsuarioRepository()
	seedUsuario(t, usuarioRepo, "user-1")

	uc := usecase.NewUsuarioUseCase(usuarioRepo, mocks.NewMockIDGenerator())

	err := uc.UpdateUsuario(context.Background(), "user-1", usecase.UpdateUsuarioInput{
		Nome:  "Maria Souza",
		Email: "souza@example.com",
		Saldo: decimal.NewFromInt(250),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	usuario, err := uc.GetUsuario(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if usuario.Nome != "Maria Souza" {
		t.Errorf("expected nome updated, got %s", usuario.Nome)
	}
}

func TestUsuarioUseCase_UpdateUsuario_Inexistente(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(mocks.NewMockUsuarioRepository(), mocks.NewMockIDGenerator())

	err := uc.UpdateUsuario(context.Background(), "ghost", usecase.UpdateUsuarioInput{
		Nome:  "Maria Silva",
		Email: "maria@example.com",
	})

	if !errors.Is(err, domain.ErrUsuarioNotFound) {
		t.Errorf("expected ErrUsuarioNotFound, got %v", err)
	}
}

func TestUsuarioUseCase_DeleteUsuario_Inexistente(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(mocks.NewMockUsuarioRepository(), mocks.NewMockIDGenerator())

	err := uc.DeleteUsuario(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrUsuarioNotFound) {
		t.Errorf("expected ErrUsuarioNotFound, got %v", err)
	}
}

func TestUsuarioUseCase_ExcederamLimite(t *testing.T) {
	usuarioRepo := mocks.NewMockUsuarioRepository()
	usuarioRepo.ListExcederamLimiteFunc = func(ctx context.Context, mes string) ([]*domain.LimiteExcedido, error) {
		return []*domain.LimiteExcedido{
			{
				UsuarioID:     "user-1",
				Nome:          "Maria Silva",
				Email:         "maria@example.com",
				MesReferencia: mes,
				Limite:        decimal.NewFromInt(500),
				Gasto:         decimal.NewFromInt(700),
			},
		}, nil
	}

	uc := usecase.NewUsuarioUseCase(usuarioRepo, mocks.NewMockIDGenerator())

	rows, err := uc.ExcederamLimite(context.Background(), "2026-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	if !rows[0].Gasto.GreaterThan(rows[0].Limite) {
		t.Error("expected gasto above limite")
	}
}

func TestUsuarioUseCase_ExcederamLimite_MesInvalido(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(mocks.NewMockUsuarioRepository(), mocks.NewMockIDGenerator())

	_, err := uc.ExcederamLimite(context.Background(), "08-2026")
	if !errors.Is(err, domain.ErrInvalidMesReferencia) {
		t.Errorf("expected ErrInvalidMesReferencia, got %v", err)
	}
}
