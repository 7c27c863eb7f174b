package model

import (
	"fmt"
	"time"
)

// HistoryLimitMax caps how many records a single history call may return.
const HistoryLimitMax = 1000

// TransactionRecord is a normalized ledger transaction.
// Round is nil while the transaction is broadcast but not yet included.
type TransactionRecord struct {
	ID               string    `json:"id"`
	Round            *uint64   `json:"round"`
	Type             string    `json:"type"`
	Timestamp        time.Time `json:"timestamp,omitzero"`
	Sender           string    `json:"sender"`
	Receiver         string    `json:"receiver,omitempty"`
	AmountMicroAlgos uint64    `json:"amount_microalgos"`
	AmountAlgo       string    `json:"amount_algo"`
	FeeMicroAlgos    uint64    `json:"fee_microalgos"`
	FeeAlgo          string    `json:"fee_algo"`
	Note             string    `json:"note,omitempty"`
	Confirmed        bool      `json:"confirmed"`
}

// HistoryRequest represents request parameters for GET /api/transaction-history
type HistoryRequest struct {
	Address string
	Limit   uint64
	TxType  string
}

// Validate validates HistoryRequest filter parameters.
func (r *HistoryRequest) Validate() error {
	if r.Address == "" {
		return fmt.Errorf("address is required")
	}
	if r.Limit == 0 || r.Limit > HistoryLimitMax {
		return fmt.Errorf("limit must be between 1 and %d", HistoryLimitMax)
	}
	if r.TxType != "" && r.TxType != "pay" && r.TxType != "axfer" && r.TxType != "appl" {
		return fmt.Errorf("type must be pay, axfer or appl")
	}
	return nil
}

// HistoryResponse represents response for GET /api/transaction-history
type HistoryResponse struct {
	Address      string              `json:"address"`
	Count        int                 `json:"count"`
	Transactions []TransactionRecord `json:"transactions"`
}
