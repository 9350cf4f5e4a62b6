package integration

import (
	"context"
	"net/http"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	adaptershttp "betcontrol/internal/adapter/http"
	"betcontrol/internal/adapter/http/handler"
	"betcontrol/internal/adapter/repository/postgres"
	"betcontrol/internal/usecase"
	"betcontrol/tests/testutil"
)

// fixedRateProvider serves a constant quote so conversion paths work without
// the external rate service.
type fixedRateProvider struct {
	rate decimal.Decimal
}

func (p *fixedRateProvider) BRLToUSD(ctx context.Context) (decimal.Decimal, error) {
	return p.rate, nil
}

// newTestRouter wires the full HTTP stack against the test database. Redis is
// an in-process instance so the suite only needs postgres running.
func newTestRouter(t *testing.T, db *testutil.TestDB) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	pool := db.Pool
	txManager := postgres.NewTxManager(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	apostaRepo := postgres.NewApostaRepository(pool)
	limiteRepo := postgres.NewLimiteRepository(pool)
	idGen := postgres.NewULIDGenerator()
	rates := &fixedRateProvider{rate: decimal.RequireFromString("0.2")}

	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, idGen)
	apostaUC := usecase.NewApostaUseCase(txManager, apostaRepo, usuarioRepo, limiteRepo, rates, idGen)
	limiteUC := usecase.NewLimiteUseCase(limiteRepo, apostaRepo, usuarioRepo, idGen)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		UsuarioHandler: handler.NewUsuarioHandler(usuarioUC),
		ApostaHandler:  handler.NewApostaHandler(apostaUC),
		LimiteHandler:  handler.NewLimiteHandler(limiteUC),
		HealthHandler:  handler.NewHealthHandler(pool, redisClient),
		Logger:         zerolog.Nop(),
	})
}
