package algorand

import (
	"context"
	"encoding/base64"

	"github.com/AlexZinkM/algo-wallet/internal/common"
	"github.com/AlexZinkM/algo-wallet/internal/model"
)

// Status looks up a transaction by id and normalizes the node's view of it.
// A pending transaction has a nil round; one the node has never seen is
// ErrNotFound.
func (s *Service) Status(ctx context.Context, txid string) (*model.TransactionRecord, error) {
	if txid == "" {
		return nil, ErrNotFound
	}

	pending, err := s.node.PendingByID(ctx, txid)
	if err != nil {
		return nil, err
	}

	return normalizePending(pending), nil
}

// normalizePending converts algod's pending view into a TransactionRecord.
func normalizePending(p model.PendingTransaction) *model.TransactionRecord {
	record := &model.TransactionRecord{
		ID:               p.TxID,
		Type:             p.Type,
		Sender:           p.Sender,
		Receiver:         p.Receiver,
		AmountMicroAlgos: p.AmountMicroAlgos,
		AmountAlgo:       common.MicroAlgosToAlgo(p.AmountMicroAlgos),
		FeeMicroAlgos:    p.FeeMicroAlgos,
		FeeAlgo:          common.MicroAlgosToAlgo(p.FeeMicroAlgos),
		Confirmed:        p.ConfirmedRound > 0,
	}
	if p.ConfirmedRound > 0 {
		round := p.ConfirmedRound
		record.Round = &round
	}
	if len(p.Note) > 0 {
		record.Note = base64.StdEncoding.EncodeToString(p.Note)
	}
	return record
}
