// Package rates talks to the external exchange-rate service. The service
// returns a mapping of currency codes to rates; only the USD entry is
// consumed.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"betcontrol/internal/domain"
)

// Client fetches BRL→USD quotes over HTTP. Every failure mode — transport
// error, bad status, malformed body, missing USD entry, non-positive rate —
// wraps domain.ErrCotacaoIndisponivel. One attempt, no retry.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new quote client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type quoteResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// BRLToUSD fetches the current BRL→USD rate.
func (c *Client) BRLToUSD(ctx context.Context) (decimal.Decimal, error) {
	url := c.baseURL + "/latest?base=BRL&symbols=USD"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrCotacaoIndisponivel, err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrCotacaoIndisponivel, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: upstream returned status %d", domain.ErrCotacaoIndisponivel, res.StatusCode)
	}

	var quote quoteResponse
	if err := json.NewDecoder(res.Body).Decode(&quote); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrCotacaoIndisponivel, err)
	}

	usd, ok := quote.Rates["USD"]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: USD rate missing from response", domain.ErrCotacaoIndisponivel)
	}

	rate := decimal.NewFromFloat(usd)
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: non-positive rate %s", domain.ErrCotacaoIndisponivel, rate)
	}

	return rate, nil
}
