package algorand

import (
	"context"
	"encoding/base64"
	"math"
	"sort"
	"time"

	"github.com/AlexZinkM/algo-wallet/internal/common"
	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/algorand/go-algorand-sdk/v2/types"
)

// DefaultHistoryLimit is used when the caller does not ask for a limit.
const DefaultHistoryLimit = 10

// History returns the address's transactions, newest first, at most limit
// records. An address with no history yields an empty list, not an error.
func (s *Service) History(ctx context.Context, address string, limit uint64, txType string) (*model.HistoryResponse, error) {
	if _, err := types.DecodeAddress(address); err != nil {
		return nil, ErrInvalidAddress
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit > model.HistoryLimitMax {
		limit = model.HistoryLimitMax
	}

	raw, err := s.search.SearchByAddress(ctx, address, limit, txType)
	if err != nil {
		return nil, err
	}

	records := make([]model.TransactionRecord, 0, len(raw))
	for _, txn := range raw {
		records = append(records, normalizeRaw(txn))
	}

	// Sort newest first; the indexer's own order is not trusted
	sort.Slice(records, func(i, j int) bool {
		return newerThan(records[i], records[j])
	})

	if uint64(len(records)) > limit {
		records = records[:limit]
	}

	return &model.HistoryResponse{
		Address:      address,
		Count:        len(records),
		Transactions: records,
	}, nil
}

// normalizeRaw converts a flattened indexer record into a TransactionRecord.
func normalizeRaw(txn model.RawTransaction) model.TransactionRecord {
	record := model.TransactionRecord{
		ID:               txn.ID,
		Type:             txn.Type,
		Sender:           txn.Sender,
		Receiver:         txn.Receiver,
		AmountMicroAlgos: txn.AmountMicroAlgos,
		AmountAlgo:       common.MicroAlgosToAlgo(txn.AmountMicroAlgos),
		FeeMicroAlgos:    txn.FeeMicroAlgos,
		FeeAlgo:          common.MicroAlgosToAlgo(txn.FeeMicroAlgos),
		Confirmed:        txn.ConfirmedRound > 0,
	}
	if txn.ConfirmedRound > 0 {
		round := txn.ConfirmedRound
		record.Round = &round
	}
	if txn.RoundTime > 0 {
		record.Timestamp = time.Unix(int64(txn.RoundTime), 0).UTC()
	}
	if len(txn.Note) > 0 {
		record.Note = base64.StdEncoding.EncodeToString(txn.Note)
	}
	return record
}

// newerThan orders records newest first: pending before confirmed, then by
// descending round, with block time as the tie breaker.
func newerThan(a, b model.TransactionRecord) bool {
	ar, br := recordRound(a), recordRound(b)
	if ar != br {
		return ar > br
	}
	return a.Timestamp.After(b.Timestamp)
}

func recordRound(r model.TransactionRecord) uint64 {
	if r.Round == nil {
		return math.MaxUint64
	}
	return *r.Round
}
