package algorand

import (
	"context"

	"github.com/AlexZinkM/algo-wallet/internal/model"
)

// NodeGateway is the submit/query side of the ledger: live parameters,
// account state, raw submission and pending-transaction lookups.
type NodeGateway interface {
	SuggestedParams(ctx context.Context) (model.NetworkParams, error)
	AccountState(ctx context.Context, address string) (model.AccountState, error)
	SubmitRawTransaction(ctx context.Context, stx []byte) (string, error)
	PendingByID(ctx context.Context, txid string) (model.PendingTransaction, error)
	CurrentRound(ctx context.Context) (uint64, error)
	WaitForRoundAfter(ctx context.Context, round uint64) (uint64, error)
}

// SearchGateway is the historical search side of the ledger.
type SearchGateway interface {
	SearchByAddress(ctx context.Context, address string, limit uint64, txType string) ([]model.RawTransaction, error)
}

// QuoteClient provides a fiat price for the native token.
type QuoteClient interface {
	GetALGOToUSDRate(ctx context.Context) (string, error)
}
