package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AlexZinkM/algo-wallet/algorand"
	"github.com/AlexZinkM/algo-wallet/internal/client"
	"github.com/AlexZinkM/algo-wallet/internal/config"
)

var rootCmd = &cobra.Command{
	Use:          "algowallet",
	Short:        "Local Algorand wallet",
	Long:         "Create and recover accounts, check balances, send payments and inspect transactions on the Algorand network.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(recoverCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(rekeyCmd)
}

// newService wires the ledger clients from environment configuration.
func newService() (*algorand.Service, error) {
	err := config.Init()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(config.GetLogLevel())
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	log = log.Level(level)

	algodClient, err := client.NewAlgodClient(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create algod client: %w", err)
	}
	indexerClient, err := client.NewIndexerClient(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer client: %w", err)
	}

	var quote algorand.QuoteClient
	if config.GetQuoteEnabled() {
		quote = client.NewCoinGeckoClient()
	}

	return algorand.NewService(algodClient, indexerClient, quote, config.GetConfirmationRounds(), log), nil
}

// promptPassphrase reads a hidden passphrase from the terminal. The caller
// must clear the returned slice once done with it.
func promptPassphrase(label string) ([]byte, error) {
	// 1. Make sure we can actually prompt
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the command interactively to enter the passphrase")
	}

	fmt.Fprint(os.Stderr, label)
	defer fmt.Fprintln(os.Stderr)

	// 2. Read without echo
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("passphrase cannot be empty")
	}

	// 3. Hand back a copy and wipe the original buffer
	passphrase := make([]byte, len(raw))
	copy(passphrase, raw)
	clear(raw)

	return passphrase, nil
}

// promptNewPassphrase asks for a passphrase twice and verifies both entries
// match before accepting it.
func promptNewPassphrase() ([]byte, error) {
	first, err := promptPassphrase("Enter passphrase for the wallet file: ")
	if err != nil {
		return nil, err
	}

	second, err := promptPassphrase("Repeat passphrase: ")
	if err != nil {
		clear(first)
		return nil, err
	}

	if !bytes.Equal(first, second) {
		clear(first)
		clear(second)
		return nil, errors.New("passphrases do not match")
	}
	clear(second)

	return first, nil
}

// promptPhrase reads a recovery phrase from stdin. Phrases are typed in the
// clear: hidden input makes a 25-word entry impossible to verify.
func promptPhrase() (string, error) {
	fmt.Fprint(os.Stderr, "Enter 25-word recovery phrase: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read recovery phrase: %w", err)
	}

	return line, nil
}
