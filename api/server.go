package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/sprinter-quoter/api/handlers"
	"github.com/sprintertech/sprinter-quoter/metrics"
)

func Serve(
	ctx context.Context,
	addr string,
	quoteHandler *handlers.QuoteHandler,
	requestMetrics *metrics.RequestMetrics,
) {
	r := mux.NewRouter()
	r.Use(requestMetrics.Middleware)
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/quote", quoteHandler.HandleQuote).Methods("GET")
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/route", quoteHandler.HandleRoute).Methods("GET")
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/swap", quoteHandler.HandleSwap).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")

	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
