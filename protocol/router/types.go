package router

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type TradeType string

const (
	ExactIn  TradeType = "exactIn"
	ExactOut TradeType = "exactOut"
)

type BigInt struct {
	*big.Int
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	if b.Int == nil {
		b.Int = new(big.Int)
	}

	s := strings.Trim(string(data), "\"")
	_, ok := b.SetString(s, 10)
	if !ok {
		return fmt.Errorf("failed to parse big.Int from %s", s)
	}

	return nil
}

func (b *BigInt) MarshalJSON() ([]byte, error) {
	return []byte(b.String()), nil
}

// QuoteDetails is the routing API's best-effort price quote. Amount fields
// are kept as the raw strings the API returns; only the gas price is
// parsed, since payload assembly needs it as an exact integer.
type QuoteDetails struct {
	BlockNumber                 string  `json:"blockNumber"`
	Amount                      string  `json:"amount"`
	AmountDecimals              string  `json:"amountDecimals"`
	Quote                       string  `json:"quote"`
	QuoteDecimals               string  `json:"quoteDecimals"`
	QuoteGasAdjusted            string  `json:"quoteGasAdjusted"`
	QuoteGasAdjustedDecimals    string  `json:"quoteGasAdjustedDecimals"`
	GasUseEstimateQuote         string  `json:"gasUseEstimateQuote"`
	GasUseEstimateQuoteDecimals string  `json:"gasUseEstimateQuoteDecimals"`
	GasUseEstimate              string  `json:"gasUseEstimate"`
	GasUseEstimateUSD           string  `json:"gasUseEstimateUSD"`
	GasPriceWei                 *BigInt `json:"gasPriceWei"`
	// Route is an opaque description of the chosen path, passed through
	// untouched.
	Route       json.RawMessage `json:"route"`
	RouteString string          `json:"routeString"`
	QuoteID     string          `json:"quoteId"`
}

type MethodParameters struct {
	Calldata string `json:"calldata"`
	Value    string `json:"value"`
}

// RouteDetails is a quote plus, when the API could build one, the method
// parameters of a submittable swap transaction. A nil MethodParameters is
// the sole discriminator between a bare quote and a full route - the API
// returns 200 in both cases.
type RouteDetails struct {
	QuoteDetails
	MethodParameters *MethodParameters `json:"methodParameters,omitempty"`
}

// Submittable reports whether the route carries method parameters. This is
// the single point where the quote/route shape is inspected.
func (r *RouteDetails) Submittable() bool {
	return r.MethodParameters != nil
}

// SwapParams is the assembled transaction descriptor, ready for handoff to
// a signing collaborator. Value and GasPrice are exact integers.
type SwapParams struct {
	To       common.Address `json:"to"`
	Data     string         `json:"data"`
	Value    *big.Int       `json:"value"`
	GasPrice *big.Int       `json:"gasPrice"`
}

// RouteOptions are the optional parameters of a full route request.
type RouteOptions struct {
	SlippageTolerance uint64
	Deadline          uint64
}
