package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/sprintertech/sprinter-quoter/protocol/router"
	"github.com/sprintertech/sprinter-quoter/tokens"
)

// QuoteHandler serves price quotes and full routes over HTTP on top of
// the routing API client.
type QuoteHandler struct {
	api   *router.API
	store *tokens.Store
}

func NewQuoteHandler(api *router.API, store *tokens.Store) *QuoteHandler {
	return &QuoteHandler{
		api:   api,
		store: store,
	}
}

type quoteQuery struct {
	chainID   uint64
	tokenIn   tokens.TokenInfo
	tokenOut  tokens.TokenInfo
	amount    decimal.Decimal
	tradeType router.TradeType
}

func (h *QuoteHandler) parseQuery(r *http.Request) (*quoteQuery, error) {
	chainID, err := strconv.ParseUint(mux.Vars(r)["chainId"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chain ID: %w", err)
	}

	q := r.URL.Query()
	tokenIn, err := h.store.BySymbol(chainID, q.Get("tokenIn"))
	if err != nil {
		return nil, err
	}
	tokenOut, err := h.store.BySymbol(chainID, q.Get("tokenOut"))
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	tradeType := router.ExactIn
	switch q.Get("type") {
	case "", string(router.ExactIn):
	case string(router.ExactOut):
		tradeType = router.ExactOut
	default:
		return nil, fmt.Errorf("invalid trade type: %s", q.Get("type"))
	}

	return &quoteQuery{
		chainID:   chainID,
		tokenIn:   tokenIn,
		tokenOut:  tokenOut,
		amount:    amount,
		tradeType: tradeType,
	}, nil
}

func (h *QuoteHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	quote, err := h.api.Quote(r.Context(), q.tokenIn, q.tokenOut, q.amount, q.tradeType)
	if err != nil {
		log.Err(err).Msgf("Failed fetching quote for %s/%s", q.tokenIn.Symbol, q.tokenOut.Symbol)
		JSONError(w, err, statusForError(err))
		return
	}

	writeJSON(w, quote)
}

func (h *QuoteHandler) parseRouteQuery(r *http.Request) (*quoteQuery, string, decimal.Decimal, *router.RouteOptions, error) {
	q, err := h.parseQuery(r)
	if err != nil {
		return nil, "", decimal.Decimal{}, nil, err
	}

	query := r.URL.Query()
	recipient := query.Get("recipient")
	if recipient == "" {
		return nil, "", decimal.Decimal{}, nil, fmt.Errorf("recipient is required")
	}

	balance, err := decimal.NewFromString(query.Get("balance"))
	if err != nil {
		return nil, "", decimal.Decimal{}, nil, fmt.Errorf("invalid balance: %w", err)
	}

	var opts *router.RouteOptions
	if query.Get("slippageTolerance") != "" || query.Get("deadline") != "" {
		slippage, err := strconv.ParseUint(query.Get("slippageTolerance"), 10, 64)
		if err != nil {
			return nil, "", decimal.Decimal{}, nil, fmt.Errorf("invalid slippage tolerance: %w", err)
		}
		deadline, err := strconv.ParseUint(query.Get("deadline"), 10, 64)
		if err != nil {
			return nil, "", decimal.Decimal{}, nil, fmt.Errorf("invalid deadline: %w", err)
		}
		opts = &router.RouteOptions{
			SlippageTolerance: slippage,
			Deadline:          deadline,
		}
	}

	return q, recipient, balance, opts, nil
}

func (h *QuoteHandler) HandleRoute(w http.ResponseWriter, r *http.Request) {
	q, recipient, balance, opts, err := h.parseRouteQuery(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	route, err := h.api.Route(r.Context(), q.tokenIn, q.tokenOut, q.amount, balance, recipient, q.tradeType, opts)
	if err != nil {
		log.Err(err).Msgf("Failed fetching route for %s/%s", q.tokenIn.Symbol, q.tokenOut.Symbol)
		JSONError(w, err, statusForError(err))
		return
	}

	writeJSON(w, route)
}

type swapResponse struct {
	To       string `json:"to"`
	Data     string `json:"data"`
	Value    string `json:"value"`
	GasPrice string `json:"gasPrice"`
}

func (h *QuoteHandler) HandleSwap(w http.ResponseWriter, r *http.Request) {
	q, recipient, balance, opts, err := h.parseRouteQuery(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	params, err := h.api.SwapParams(r.Context(), q.tokenIn, q.tokenOut, q.amount, balance, recipient, q.tradeType, opts)
	if err != nil {
		log.Err(err).Msgf("Failed assembling swap for %s/%s", q.tokenIn.Symbol, q.tokenOut.Symbol)
		JSONError(w, err, statusForError(err))
		return
	}

	writeJSON(w, swapResponse{
		To:       params.To.Hex(),
		Data:     params.Data,
		Value:    params.Value.String(),
		GasPrice: params.GasPrice.String(),
	})
}
