package algorand

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/stretchr/testify/require"
)

// testReceiver is the ledger's zero address, valid checksum included.
const testReceiver = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAY5HFKQ"

var testGenesisHash = bytes.Repeat([]byte{0x4a}, 32)

// testAccount derives a deterministic account from an all-zero seed and
// returns its recovery phrase and address.
func testAccount(t *testing.T) (string, string) {
	t.Helper()

	sk := ed25519.NewKeyFromSeed(make([]byte, 32))

	phrase, err := mnemonic.FromPrivateKey(sk)
	require.NoError(t, err)

	acct, err := crypto.AccountFromPrivateKey(sk)
	require.NoError(t, err)

	return phrase, acct.Address.String()
}

type nodeMock struct {
	SuggestedParamsFunc      func(ctx context.Context) (model.NetworkParams, error)
	AccountStateFunc         func(ctx context.Context, address string) (model.AccountState, error)
	SubmitRawTransactionFunc func(ctx context.Context, stx []byte) (string, error)
	PendingByIDFunc          func(ctx context.Context, txid string) (model.PendingTransaction, error)
	CurrentRoundFunc         func(ctx context.Context) (uint64, error)
	WaitForRoundAfterFunc    func(ctx context.Context, round uint64) (uint64, error)
}

// baselineNode returns a node mock for the nominal path: a funded account,
// minimum fee parameters and a transaction that confirms on the first poll.
func baselineNode(t *testing.T) *nodeMock {
	t.Helper()

	return &nodeMock{
		SuggestedParamsFunc: func(context.Context) (model.NetworkParams, error) {
			return model.NetworkParams{
				FeePerByte:  0,
				MinFee:      1000,
				GenesisID:   "testnet-v1.0",
				GenesisHash: testGenesisHash,
				FirstValid:  1000,
				LastValid:   2000,
			}, nil
		},
		AccountStateFunc: func(_ context.Context, address string) (model.AccountState, error) {
			return model.AccountState{
				Address:              address,
				AmountMicroAlgos:     10_000_000,
				MinBalanceMicroAlgos: 100000,
				Status:               "Offline",
				Round:                1000,
			}, nil
		},
		SubmitRawTransactionFunc: func(context.Context, []byte) (string, error) {
			return "", nil
		},
		PendingByIDFunc: func(_ context.Context, txid string) (model.PendingTransaction, error) {
			return model.PendingTransaction{TxID: txid, ConfirmedRound: 1001, Type: "pay"}, nil
		},
		CurrentRoundFunc: func(context.Context) (uint64, error) {
			return 1000, nil
		},
		WaitForRoundAfterFunc: func(_ context.Context, round uint64) (uint64, error) {
			return round + 1, nil
		},
	}
}

func (n *nodeMock) SuggestedParams(ctx context.Context) (model.NetworkParams, error) {
	return n.SuggestedParamsFunc(ctx)
}

func (n *nodeMock) AccountState(ctx context.Context, address string) (model.AccountState, error) {
	return n.AccountStateFunc(ctx, address)
}

func (n *nodeMock) SubmitRawTransaction(ctx context.Context, stx []byte) (string, error) {
	return n.SubmitRawTransactionFunc(ctx, stx)
}

func (n *nodeMock) PendingByID(ctx context.Context, txid string) (model.PendingTransaction, error) {
	return n.PendingByIDFunc(ctx, txid)
}

func (n *nodeMock) CurrentRound(ctx context.Context) (uint64, error) {
	return n.CurrentRoundFunc(ctx)
}

func (n *nodeMock) WaitForRoundAfter(ctx context.Context, round uint64) (uint64, error) {
	return n.WaitForRoundAfterFunc(ctx, round)
}

type searchMock struct {
	SearchByAddressFunc func(ctx context.Context, address string, limit uint64, txType string) ([]model.RawTransaction, error)
}

func (s *searchMock) SearchByAddress(ctx context.Context, address string, limit uint64, txType string) ([]model.RawTransaction, error) {
	return s.SearchByAddressFunc(ctx, address, limit, txType)
}

type quoteMock struct {
	GetALGOToUSDRateFunc func(ctx context.Context) (string, error)
}

func (q *quoteMock) GetALGOToUSDRate(ctx context.Context) (string, error) {
	return q.GetALGOToUSDRateFunc(ctx)
}
