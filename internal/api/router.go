package api

import (
	"net/http"

	"github.com/AlexZinkM/algo-wallet/internal/handler"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(walletHandler *handler.WalletHandler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	// Wallet endpoints
	mux.HandleFunc("/api/create-account", walletHandler.CreateAccount)
	mux.HandleFunc("/api/recover-account", walletHandler.RecoverAccount)
	mux.HandleFunc("/api/balance", walletHandler.GetBalance)
	mux.HandleFunc("/api/send-transaction", walletHandler.SendTransaction)
	mux.HandleFunc("/api/transaction-status", walletHandler.TransactionStatus)
	mux.HandleFunc("/api/transaction-history", walletHandler.TransactionHistory)
	mux.HandleFunc("/api/network-status", walletHandler.NetworkStatus)

	return mux
}
