package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/algo-wallet/algorand"
	_ "github.com/AlexZinkM/algo-wallet/docs"
	"github.com/AlexZinkM/algo-wallet/internal/api"
	"github.com/AlexZinkM/algo-wallet/internal/client"
	"github.com/AlexZinkM/algo-wallet/internal/config"
	"github.com/AlexZinkM/algo-wallet/internal/handler"

	"github.com/rs/zerolog"
)

// @title        Algo Wallet API
// @version      1.0
// @description  Local Algorand wallet: account creation and recovery, balances, payments, confirmation tracking and history.
// @host         localhost:8080
// @BasePath     /
func main() {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	// Configuration comes from the environment.
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}
	cfg := config.Get()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Str("level", cfg.LogLevel).Err(err).Msg("could not parse log level")
	}
	log = log.Level(level)

	// Ledger clients.
	algodClient, err := client.NewAlgodClient(log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create algod client")
	}
	indexerClient, err := client.NewIndexerClient(log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create indexer client")
	}

	var quote algorand.QuoteClient
	if cfg.QuoteEnabled {
		quote = client.NewCoinGeckoClient()
	}

	svc := algorand.NewService(algodClient, indexerClient, quote, cfg.ConfirmationRounds, log)
	walletHandler := handler.NewWalletHandler(svc, log)
	router := api.SetupRouter(walletHandler)

	// Write timeout leaves room for a full confirmation wait.
	server := &http.Server{
		Addr:         fmt.Sprint(":", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("algod", cfg.AlgodAddress).Msg("wallet server starting")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("wallet server encountered error")
		}
		log.Info().Msg("wallet server stopped")
	}()

	<-sig
	log.Info().Msg("wallet server stopping")
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// Give in-flight confirmation waits a chance to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("could not shut down gracefully")
		os.Exit(1)
	}

	os.Exit(0)
}
