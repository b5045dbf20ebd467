package router

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-quoter/tokens"
)

const (
	DEFAULT_ROUTER_API_URL = "https://api.uniswap.org/v1"
)

type Config struct {
	BaseURL string
	APIKey  string

	SupportedChains  []uint64
	NativeCurrencies tokens.NativeCurrencies
	// per-chain swap router contract the assembled payload targets
	Routers map[uint64]common.Address

	NativeInputOnly bool
	DefaultOptions  RouteOptions
}

// API is the client for the swap routing API. It holds no per-call state,
// so a single instance may be used concurrently.
type API struct {
	HTTPClient *http.Client
	cfg        Config
}

func NewAPI(cfg Config) *API {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DEFAULT_ROUTER_API_URL
	}

	return &API{
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cfg: cfg,
	}
}

// Quote fetches a price quote without requesting a submittable route.
func (a *API) Quote(
	ctx context.Context,
	tokenIn, tokenOut tokens.TokenInfo,
	amount decimal.Decimal,
	tradeType TradeType,
) (*QuoteDetails, error) {
	if err := a.Validate(tokenIn, tokenOut, nil, nil); err != nil {
		return nil, err
	}

	url := a.quoteURL(tokenIn, tokenOut, amount, tradeType, nil, "")
	return fetch[QuoteDetails](ctx, a, url)
}

// Route fetches a quote together with the method parameters of a
// submittable swap. The balance is checked against the input amount before
// any network call is made.
func (a *API) Route(
	ctx context.Context,
	tokenIn, tokenOut tokens.TokenInfo,
	amount, balance decimal.Decimal,
	recipient string,
	tradeType TradeType,
	opts *RouteOptions,
) (*RouteDetails, error) {
	if err := a.Validate(tokenIn, tokenOut, &amount, &balance); err != nil {
		return nil, err
	}

	if opts == nil {
		opts = &a.cfg.DefaultOptions
	}

	url := a.quoteURL(tokenIn, tokenOut, amount, tradeType, opts, recipient)
	return fetch[RouteDetails](ctx, a, url)
}

// SwapParams fetches a route and assembles it into a chain-submittable
// transaction descriptor.
func (a *API) SwapParams(
	ctx context.Context,
	tokenIn, tokenOut tokens.TokenInfo,
	amount, balance decimal.Decimal,
	recipient string,
	tradeType TradeType,
	opts *RouteOptions,
) (*SwapParams, error) {
	route, err := a.Route(ctx, tokenIn, tokenOut, amount, balance, recipient, tradeType, opts)
	if err != nil {
		return nil, err
	}

	return a.Assemble(tokenIn.ChainID, route)
}

// fetch issues the GET request and decodes the JSON body. Error bodies are
// JSON too, so decoding happens regardless of status code. Cancelling the
// context aborts the in-flight request; the resulting error wraps
// context.Canceled and stays distinguishable from network failures with
// errors.Is.
func fetch[T any](ctx context.Context, a *API, url string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", a.cfg.APIKey)

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		t := new(T)
		if err := json.Unmarshal(body, t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
		}
		return t, nil
	}

	return nil, classifyStatus(resp.StatusCode, body)
}

// classifyStatus maps every non-2xx status to exactly one APIError kind.
func classifyStatus(status int, body []byte) *APIError {
	var payload APIErrorPayload
	// payload is best effort on unknown statuses
	_ = json.Unmarshal(body, &payload)

	kind := UnknownError
	switch status {
	case http.StatusBadRequest:
		kind = InvalidParams
	case http.StatusUnprocessableEntity:
		kind = InvalidRequestBody
	case http.StatusInternalServerError:
		kind = InternalProviderError
	}

	return &APIError{
		Kind:    kind,
		Status:  status,
		Payload: payload,
	}
}
