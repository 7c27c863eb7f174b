package model

import "fmt"

// SendRequest represents request for POST /api/send-transaction
type SendRequest struct {
	SenderMnemonic string `json:"sender_mnemonic" binding:"required"`
	Receiver       string `json:"receiver" binding:"required"`
	AmountAlgo     string `json:"amount_algo" binding:"required"`
	Note           string `json:"note,omitempty"`
}

// Validate checks that required fields are present.
func (r *SendRequest) Validate() error {
	if r.SenderMnemonic == "" {
		return fmt.Errorf("sender_mnemonic is required")
	}
	if r.Receiver == "" {
		return fmt.Errorf("receiver is required")
	}
	if r.AmountAlgo == "" {
		return fmt.Errorf("amount_algo is required")
	}
	return nil
}

// SendResponse represents response for POST /api/send-transaction
type SendResponse struct {
	Success        bool    `json:"success"`
	TransactionID  string  `json:"transaction_id"`
	ConfirmedRound *uint64 `json:"confirmed_round"`
	Message        string  `json:"message"`
}
