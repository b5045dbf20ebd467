package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type coinmarketcapResponse struct {
	Status struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
	Data map[string]struct {
		Quote struct {
			USD struct {
				Price float64 `json:"price"`
			} `json:"USD"`
		} `json:"quote"`
	} `json:"data"`
}

// CoinmarketcapAPI resolves token symbols to USD prices. Prices are for
// display only and never feed the swap pipeline, so float precision is
// acceptable here.
type CoinmarketcapAPI struct {
	HTTPClient *http.Client
	url        string
	apiKey     string
}

func NewCoinmarketcapAPI(url string, apiKey string) *CoinmarketcapAPI {
	return &CoinmarketcapAPI{
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		url:    url,
		apiKey: apiKey,
	}
}

func (c *CoinmarketcapAPI) TokenPrice(ctx context.Context, symbol string) (float64, error) {
	url := fmt.Sprintf("%s/v1/cryptocurrency/quotes/latest?symbol=%s", c.url, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accepts", "application/json")
	req.Header.Set("X-CMC_PRO_API_KEY", c.apiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	var cmcResponse coinmarketcapResponse
	if err := json.Unmarshal(body, &cmcResponse); err != nil {
		return 0, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if cmcResponse.Status.ErrorCode != 0 {
		return 0, fmt.Errorf("price API error: %d - %s", cmcResponse.Status.ErrorCode, cmcResponse.Status.ErrorMessage)
	}

	data, ok := cmcResponse.Data[symbol]
	if !ok {
		return 0, fmt.Errorf("no price for symbol %s", symbol)
	}

	return data.Quote.USD.Price, nil
}
