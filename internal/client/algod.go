package client

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexZinkM/algo-wallet/algorand"
	"github.com/AlexZinkM/algo-wallet/internal/common"
	"github.com/AlexZinkM/algo-wallet/internal/config"
	"github.com/AlexZinkM/algo-wallet/internal/metrics"
	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/rs/zerolog"
)

// AlgodClient is a client for the algod node API: live parameters, account
// state, submission and pending-transaction lookups.
type AlgodClient struct {
	c   *algod.Client
	url string
	log zerolog.Logger
}

// NewAlgodClient creates a new algod client from configuration.
func NewAlgodClient(log zerolog.Logger) (*AlgodClient, error) {
	url := config.GetAlgodAddress()
	c, err := algod.MakeClient(url, config.GetAlgodToken())
	if err != nil {
		return nil, fmt.Errorf("failed to create algod client: %w", err)
	}
	return &AlgodClient{c: c, url: url, log: log}, nil
}

// SuggestedParams fetches fresh transaction parameters from the node.
func (c *AlgodClient) SuggestedParams(ctx context.Context) (model.NetworkParams, error) {
	start := time.Now()
	sp, err := c.c.SuggestedParams().Do(ctx)
	metrics.ObserveNodeRequest("suggested_params", start, err)
	if err != nil {
		return model.NetworkParams{}, &algorand.NetworkError{Op: "suggested params", Err: err}
	}
	return model.NetworkParams{
		FeePerByte:  uint64(sp.Fee),
		MinFee:      sp.MinFee,
		GenesisID:   sp.GenesisID,
		GenesisHash: sp.GenesisHash,
		FirstValid:  uint64(sp.FirstRoundValid),
		LastValid:   uint64(sp.LastRoundValid),
	}, nil
}

// AccountState fetches the current state of an account. An address with zero
// activity still has a defined, all-zero state.
func (c *AlgodClient) AccountState(ctx context.Context, address string) (model.AccountState, error) {
	start := time.Now()
	acct, err := c.c.AccountInformation(address).Do(ctx)
	metrics.ObserveNodeRequest("account_information", start, err)
	if err != nil {
		return model.AccountState{}, &algorand.NetworkError{Op: "account information", Err: err}
	}
	return model.AccountState{
		Address:              acct.Address,
		AmountMicroAlgos:     acct.Amount,
		MinBalanceMicroAlgos: acct.MinBalance,
		AssetCount:           acct.TotalAssetsOptedIn,
		AppCount:             acct.TotalAppsOptedIn,
		Status:               acct.Status,
		Round:                acct.Round,
	}, nil
}

// SubmitRawTransaction broadcasts signed transaction bytes exactly once.
// A node-side refusal is a terminal rejection, distinct from transport failure.
func (c *AlgodClient) SubmitRawTransaction(ctx context.Context, stx []byte) (string, error) {
	start := time.Now()
	txid, err := c.c.SendRawTransaction(stx).Do(ctx)
	metrics.ObserveNodeRequest("send_raw_transaction", start, err)
	if err != nil {
		if isRejectionError(err) {
			return "", &algorand.RejectedError{Reason: rejectionReason(err)}
		}
		return "", &algorand.NetworkError{Op: "send raw transaction", Err: err}
	}
	c.log.Debug().Str("txid", common.ShortTxID(txid)).Msg("transaction submitted")
	return txid, nil
}

// PendingByID fetches algod's view of a submitted transaction.
func (c *AlgodClient) PendingByID(ctx context.Context, txid string) (model.PendingTransaction, error) {
	start := time.Now()
	info, stxn, err := c.c.PendingTransactionInformation(txid).Do(ctx)
	metrics.ObserveNodeRequest("pending_transaction_information", start, err)
	if err != nil {
		if isNotFoundError(err) {
			return model.PendingTransaction{}, algorand.ErrNotFound
		}
		return model.PendingTransaction{}, &algorand.NetworkError{Op: "pending transaction information", Err: err}
	}

	txn := stxn.Txn
	pending := model.PendingTransaction{
		TxID:             txid,
		ConfirmedRound:   info.ConfirmedRound,
		PoolError:        info.PoolError,
		Type:             string(txn.Type),
		Sender:           txn.Sender.String(),
		AmountMicroAlgos: uint64(txn.Amount),
		FeeMicroAlgos:    uint64(txn.Fee),
		Note:             txn.Note,
	}
	if !txn.Receiver.IsZero() {
		pending.Receiver = txn.Receiver.String()
	}
	return pending, nil
}

// CurrentRound returns the last round the node has processed.
func (c *AlgodClient) CurrentRound(ctx context.Context) (uint64, error) {
	start := time.Now()
	status, err := c.c.Status().Do(ctx)
	metrics.ObserveNodeRequest("status", start, err)
	if err != nil {
		return 0, &algorand.NetworkError{Op: "status", Err: err}
	}
	return status.LastRound, nil
}

// WaitForRoundAfter blocks until the node has processed the given round.
func (c *AlgodClient) WaitForRoundAfter(ctx context.Context, round uint64) (uint64, error) {
	start := time.Now()
	status, err := c.c.StatusAfterBlock(round).Do(ctx)
	metrics.ObserveNodeRequest("status_after_block", start, err)
	if err != nil {
		return 0, &algorand.NetworkError{Op: "status after block", Err: err}
	}
	return status.LastRound, nil
}
