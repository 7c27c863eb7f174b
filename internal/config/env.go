package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port               string `envconfig:"PORT" default:"8080"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"`
	AlgodAddress       string `envconfig:"ALGOD_ADDRESS" default:"https://testnet-api.algonode.cloud"`
	AlgodToken         string `envconfig:"ALGOD_TOKEN" default:""`
	IndexerAddress     string `envconfig:"INDEXER_ADDRESS" default:"https://testnet-idx.algonode.cloud"`
	IndexerToken       string `envconfig:"INDEXER_TOKEN" default:""`
	ConfirmationRounds uint64 `envconfig:"CONFIRMATION_ROUNDS" default:"10"`
	QuoteEnabled       bool   `envconfig:"QUOTE_ENABLED" default:"false"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetLogLevel returns the log level name from configuration
func GetLogLevel() string {
	return Get().LogLevel
}

// GetAlgodAddress returns the algod node URL from configuration
func GetAlgodAddress() string {
	return Get().AlgodAddress
}

// GetAlgodToken returns the algod API token from configuration
func GetAlgodToken() string {
	return Get().AlgodToken
}

// GetIndexerAddress returns the indexer URL from configuration
func GetIndexerAddress() string {
	return Get().IndexerAddress
}

// GetIndexerToken returns the indexer API token from configuration
func GetIndexerToken() string {
	return Get().IndexerToken
}

// GetConfirmationRounds returns how many rounds a confirmation wait may span
func GetConfirmationRounds() uint64 {
	return Get().ConfirmationRounds
}

// GetQuoteEnabled reports whether balance responses include a USD quote
func GetQuoteEnabled() bool {
	return Get().QuoteEnabled
}
