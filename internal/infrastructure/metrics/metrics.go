// Package metrics holds the Prometheus instruments for domain operations.
// HTTP-level metrics live in the http middleware; these counters track what
// the business layer actually did.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ApostasCriadas counts successfully committed bet creations.
	ApostasCriadas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betcontrol_apostas_criadas_total",
		Help: "Total number of bets created",
	})

	// AjustesLimite counts running-total adjustments applied to limite rows
	// as a side effect of bet mutations.
	AjustesLimite = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betcontrol_limite_ajustes_total",
		Help: "Total number of limite running-total adjustments",
	})

	// CotacoesObtidas counts successful BRL->USD quotes.
	CotacoesObtidas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betcontrol_cotacoes_obtidas_total",
		Help: "Total number of successful exchange-rate quotes",
	})

	// CotacoesFalhas counts quote attempts that failed upstream.
	CotacoesFalhas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betcontrol_cotacoes_falhas_total",
		Help: "Total number of failed exchange-rate quotes",
	})
)
