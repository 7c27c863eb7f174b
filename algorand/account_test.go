package algorand

import (
	"crypto/ed25519"
	"strings"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount(t *testing.T) {
	t.Parallel()

	s := NewService(nil, nil, nil, 0, zerolog.Nop())

	created, err := s.CreateAccount()
	require.NoError(t, err)

	assert.Len(t, created.Address, 58)
	assert.Len(t, strings.Fields(created.Mnemonic), 25)
	assert.NotEmpty(t, created.QR)

	// The phrase must round-trip to the same address
	recovered, err := s.RecoverAccount(created.Mnemonic)
	require.NoError(t, err)
	assert.Equal(t, created.Address, recovered.Address)
}

func TestCreateAccountUnique(t *testing.T) {
	t.Parallel()

	s := NewService(nil, nil, nil, 0, zerolog.Nop())

	first, err := s.CreateAccount()
	require.NoError(t, err)

	second, err := s.CreateAccount()
	require.NoError(t, err)

	assert.NotEqual(t, first.Address, second.Address)
	assert.NotEqual(t, first.Mnemonic, second.Mnemonic)
}

func TestRecoverAccountDeterministic(t *testing.T) {
	t.Parallel()

	phrase, address := testAccount(t)

	s := NewService(nil, nil, nil, 0, zerolog.Nop())

	for i := 0; i < 3; i++ {
		recovered, err := s.RecoverAccount(phrase)
		require.NoError(t, err)
		assert.Equal(t, address, recovered.Address)
	}
}

func TestRecoverAccountKnownSeed(t *testing.T) {
	t.Parallel()

	// An all-zero seed is a fixed vector: every key word is the wordlist's
	// first word and the derived address is pinned.
	sk := ed25519.NewKeyFromSeed(make([]byte, 32))
	phrase, err := mnemonic.FromPrivateKey(sk)
	require.NoError(t, err)

	words := strings.Fields(phrase)
	require.Len(t, words, 25)
	for _, word := range words[:24] {
		assert.Equal(t, "abandon", word)
	}

	s := NewService(nil, nil, nil, 0, zerolog.Nop())

	recovered, err := s.RecoverAccount(phrase)
	require.NoError(t, err)
	assert.Equal(t, "HNVCPPGOW2SC2YVDVDICU3YNONSTEFLXDXREHJR2YBEKDC2Z3IUZSC6YGI", recovered.Address)
}

func TestRecoverAccountWhitespace(t *testing.T) {
	t.Parallel()

	phrase, address := testAccount(t)
	messy := "  " + strings.ReplaceAll(phrase, " ", "   ") + " \n"

	s := NewService(nil, nil, nil, 0, zerolog.Nop())

	recovered, err := s.RecoverAccount(messy)
	require.NoError(t, err)
	assert.Equal(t, address, recovered.Address)
}

func TestRecoverAccountInvalidPhrase(t *testing.T) {
	t.Parallel()

	valid, _ := testAccount(t)
	words := strings.Fields(valid)

	tests := map[string]string{
		"empty":             "",
		"too few words":     strings.Join(words[:24], " "),
		"too many words":    valid + " abandon",
		"unknown word":      strings.Join(append([]string{"notaword"}, words[1:]...), " "),
		"checksum mismatch": strings.Join(append(append([]string{}, words[:24]...), "abandon"), " "),
	}

	s := NewService(nil, nil, nil, 0, zerolog.Nop())

	for name, phrase := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := s.RecoverAccount(phrase)
			assert.ErrorIs(t, err, ErrInvalidPhrase)
		})
	}
}
