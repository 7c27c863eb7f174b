package client

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/algo-wallet/algorand"
	"github.com/AlexZinkM/algo-wallet/internal/config"
	"github.com/AlexZinkM/algo-wallet/internal/metrics"
	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/common/models"
	"github.com/algorand/go-algorand-sdk/v2/client/v2/indexer"
	"github.com/rs/zerolog"
)

// IndexerClient is a client for the historical transaction search API.
type IndexerClient struct {
	c   *indexer.Client
	log zerolog.Logger
}

// NewIndexerClient creates a new indexer client from configuration.
func NewIndexerClient(log zerolog.Logger) (*IndexerClient, error) {
	c, err := indexer.MakeClient(config.GetIndexerAddress(), config.GetIndexerToken())
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer client: %w", err)
	}
	return &IndexerClient{c: c, log: log}, nil
}

// SearchByAddress fetches transactions involving the address, following the
// indexer's next-token pagination until limit records or exhaustion. Each call
// restarts the search from scratch; nothing is cached.
func (c *IndexerClient) SearchByAddress(ctx context.Context, address string, limit uint64, txType string) ([]model.RawTransaction, error) {
	out := make([]model.RawTransaction, 0, limit)
	next := ""

	for uint64(len(out)) < limit {
		query := c.c.SearchForTransactions().AddressString(address).Limit(limit - uint64(len(out)))
		if txType != "" {
			query = query.TxType(txType)
		}
		if next != "" {
			query = query.NextToken(next)
		}

		resp, err := query.Do(ctx)
		metrics.ObserveIndexerRequest("search_for_transactions", err)
		if err != nil {
			return nil, &algorand.NetworkError{Op: "search transactions", Err: err}
		}

		for _, txn := range resp.Transactions {
			out = append(out, flattenTransaction(txn))
		}
		if resp.NextToken == "" || len(resp.Transactions) == 0 {
			break
		}
		next = resp.NextToken
	}

	return out, nil
}

// flattenTransaction extracts the fields status and history need from an indexer record.
func flattenTransaction(txn models.Transaction) model.RawTransaction {
	raw := model.RawTransaction{
		ID:             txn.Id,
		ConfirmedRound: txn.ConfirmedRound,
		RoundTime:      txn.RoundTime,
		Type:           txn.Type,
		Sender:         txn.Sender,
		FeeMicroAlgos:  txn.Fee,
		Note:           txn.Note,
	}
	if txn.Type == "pay" {
		raw.Receiver = txn.PaymentTransaction.Receiver
		raw.AmountMicroAlgos = txn.PaymentTransaction.Amount
	}
	return raw
}
