package algorand

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/AlexZinkM/algo-wallet/internal/common"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/skip2/go-qrcode"
)

// phraseWordCount is the fixed length of a recovery phrase: 24 words of key
// material plus one checksum word.
const phraseWordCount = 25

// CreatedAccount is a freshly generated account with its recovery phrase.
// The phrase is handed to the caller exactly once and never stored here.
type CreatedAccount struct {
	Address  string
	Mnemonic string
	QR       string
}

// RecoveredAccount carries only the public outcome of a phrase recovery.
type RecoveredAccount struct {
	Address string
}

// CreateAccount generates fresh key material and its 25-word recovery phrase.
// Fails only if the entropy source fails, which is fatal and not retryable.
func (s *Service) CreateAccount() (*CreatedAccount, error) {
	_, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key material: %w", err)
	}

	// Always clear the private key from memory
	defer clear(sk)

	account, err := crypto.AccountFromPrivateKey(sk)
	if err != nil {
		return nil, fmt.Errorf("failed to derive account: %w", err)
	}

	phrase, err := mnemonic.FromPrivateKey(sk)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recovery phrase: %w", err)
	}

	address := account.Address.String()

	qr, err := generateQRCode(address)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	s.log.Info().Str("address", common.ShortAddress(address)).Msg("account created")

	return &CreatedAccount{
		Address:  address,
		Mnemonic: phrase,
		QR:       qr,
	}, nil
}

// RecoverAccount validates the phrase and derives the account address.
// The error never reveals which word broke the checksum.
func (s *Service) RecoverAccount(phrase string) (*RecoveredAccount, error) {
	sk, address, err := recoverKey(phrase)
	if err != nil {
		return nil, err
	}
	clear(sk)

	return &RecoveredAccount{Address: address}, nil
}

// recoverKey derives the signing key and address from a recovery phrase.
// The caller must clear the returned key when done.
func recoverKey(phrase string) (ed25519.PrivateKey, string, error) {
	words := strings.Fields(phrase)
	if len(words) != phraseWordCount {
		return nil, "", ErrInvalidPhrase
	}

	sk, err := mnemonic.ToPrivateKey(strings.Join(words, " "))
	if err != nil {
		return nil, "", ErrInvalidPhrase
	}

	account, err := crypto.AccountFromPrivateKey(sk)
	if err != nil {
		clear(sk)
		return nil, "", fmt.Errorf("failed to derive account: %w", err)
	}

	return sk, account.Address.String(), nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	// Get PNG image
	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	// Encode to base64
	return base64.StdEncoding.EncodeToString(png), nil
}
