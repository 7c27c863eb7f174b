package algorand

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/algo-wallet/internal/common"
)

// Validation failures are detected before any network call and are never retried.
var (
	ErrInvalidPhrase  = errors.New("invalid recovery phrase")
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidAmount  = errors.New("amount must be a positive number of microAlgos")
	ErrNoteTooLong    = fmt.Errorf("note exceeds the maximum of %d bytes", MaxNoteBytes)
	ErrSelfTransfer   = errors.New("cannot send to the same address")
	ErrNotFound       = errors.New("transaction not found")
)

// NetworkError reports a transport failure talking to algod or the indexer.
// Read operations that fail this way are safe to retry.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network unavailable during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError checks if error indicates a transient transport failure.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// RejectedError reports that the network validated a transaction and refused it.
// Terminal for that transaction; retrying requires a fresh build.
type RejectedError struct {
	TxID   string
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("transaction rejected by the network: %s", e.Reason)
}

// IsRejectedError checks if error indicates a network-side rejection.
func IsRejectedError(err error) bool {
	var rejErr *RejectedError
	return errors.As(err, &rejErr)
}

// InsufficientBalanceError reports that the sender cannot cover
// amount + fee + minimum balance.
type InsufficientBalanceError struct {
	RequiredMicroAlgos  uint64
	AvailableMicroAlgos uint64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: need %s ALGO (amount + fee + minimum balance), have %s ALGO",
		common.MicroAlgosToAlgo(e.RequiredMicroAlgos), common.MicroAlgosToAlgo(e.AvailableMicroAlgos))
}

// IsInsufficientBalanceError checks if error indicates the sender cannot
// cover the transfer.
func IsInsufficientBalanceError(err error) bool {
	var balErr *InsufficientBalanceError
	return errors.As(err, &balErr)
}
