package price_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/sprintertech/sprinter-quoter/price"
)

// roundTripperFunc allows mocking HTTP transport
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func Test_TokenPrice(t *testing.T) {
	tests := []struct {
		name         string
		symbol       string
		mockResponse []byte
		statusCode   int
		mockError    error
		wantPrice    float64
		wantErr      bool
	}{
		{
			name:   "successful response",
			symbol: "ETH",
			mockResponse: []byte(`{
				"status": {"error_code": 0},
				"data": {"ETH": {"quote": {"USD": {"price": 1850.25}}}}
			}`),
			statusCode: http.StatusOK,
			wantPrice:  1850.25,
		},
		{
			name:      "HTTP error",
			symbol:    "ETH",
			mockError: errors.New("connection refused"),
			wantErr:   true,
		},
		{
			name:         "non-200 status",
			symbol:       "ETH",
			mockResponse: []byte(`{}`),
			statusCode:   http.StatusTooManyRequests,
			wantErr:      true,
		},
		{
			name:   "API error status",
			symbol: "ETH",
			mockResponse: []byte(`{
				"status": {"error_code": 1002, "error_message": "API key missing"}
			}`),
			statusCode: http.StatusOK,
			wantErr:    true,
		},
		{
			name:   "missing symbol",
			symbol: "UNKNOWN",
			mockResponse: []byte(`{
				"status": {"error_code": 0},
				"data": {}
			}`),
			statusCode: http.StatusOK,
			wantErr:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := price.NewCoinmarketcapAPI("https://price.example", "cmc-key")
			api.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				if got := req.Header.Get("X-CMC_PRO_API_KEY"); got != "cmc-key" {
					t.Errorf("unexpected API key header: %s", got)
				}
				if tc.mockError != nil {
					return nil, tc.mockError
				}

				return &http.Response{
					StatusCode: tc.statusCode,
					Body:       io.NopCloser(bytes.NewReader(tc.mockResponse)),
					Header:     make(http.Header),
				}, nil
			})

			got, err := api.TokenPrice(context.Background(), tc.symbol)

			if tc.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.wantPrice {
				t.Errorf("expected %f, got %f", tc.wantPrice, got)
			}
		})
	}
}
