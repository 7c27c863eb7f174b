package algorand

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/algo-wallet/internal/common"
	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

// MaxNoteBytes is the ledger's limit on the optional transaction note.
const MaxNoteBytes = 1024

// TransferIntent describes a single payment. An intent is consumed by one
// Send call; retrying requires a fresh intent and a fresh build.
type TransferIntent struct {
	SenderMnemonic   string
	Receiver         string
	AmountMicroAlgos uint64
	Note             []byte
}

// SendResult reports the outcome of a submitted payment. TxID is set whenever
// submission succeeded, whatever happened during the confirmation wait.
type SendResult struct {
	TxID           string
	Sender         string
	FeeMicroAlgos  uint64
	Confirmed      bool
	ConfirmedRound uint64
	TimedOut       bool
}

// Send validates the intent, builds a payment with freshly fetched network
// parameters, signs it, submits it exactly once and waits for confirmation.
func (s *Service) Send(ctx context.Context, intent TransferIntent) (*SendResult, error) {
	// Validate everything local before touching the network
	if intent.AmountMicroAlgos == 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := types.DecodeAddress(intent.Receiver); err != nil {
		return nil, ErrInvalidAddress
	}
	if len(intent.Note) > MaxNoteBytes {
		return nil, ErrNoteTooLong
	}

	sk, sender, err := recoverKey(intent.SenderMnemonic)
	if err != nil {
		return nil, err
	}

	// Always clear the private key from memory
	defer clear(sk)

	if sender == intent.Receiver {
		return nil, ErrSelfTransfer
	}

	// Fresh parameters for every build, never reused across transactions
	params, err := s.node.SuggestedParams(ctx)
	if err != nil {
		return nil, err
	}
	fee := params.MinFee
	if fee == 0 {
		fee = transaction.MinTxnFee
	}

	// Check the sender can cover amount, fee and the post-send minimum balance
	state, err := s.node.AccountState(ctx, sender)
	if err != nil {
		return nil, err
	}
	_, minBalance, _ := ComputeSpendable(state)
	required := intent.AmountMicroAlgos + fee + minBalance
	if state.AmountMicroAlgos < required {
		return nil, &InsufficientBalanceError{
			RequiredMicroAlgos:  required,
			AvailableMicroAlgos: state.AmountMicroAlgos,
		}
	}

	txn, err := buildPayment(sender, intent, fee, params)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}

	// Signing is pure, no network involved
	txid, stx, err := crypto.SignTransaction(sk, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	submittedID, err := s.node.SubmitRawTransaction(ctx, stx)
	if err != nil {
		return nil, err
	}
	if submittedID != "" {
		txid = submittedID
	}

	s.log.Info().
		Str("txid", common.ShortTxID(txid)).
		Str("from", common.ShortAddress(sender)).
		Str("to", common.ShortAddress(intent.Receiver)).
		Uint64("amount", intent.AmountMicroAlgos).
		Msg("transaction submitted")

	result := &SendResult{TxID: txid, Sender: sender, FeeMicroAlgos: fee}

	outcome, err := s.WaitForConfirmation(ctx, txid)
	if err != nil {
		// Already on the network; hand the id back along with the error
		return result, err
	}

	result.Confirmed = outcome.Confirmed
	result.ConfirmedRound = outcome.ConfirmedRound
	result.TimedOut = outcome.TimedOut
	return result, nil
}

// buildPayment assembles the unsigned payment. Fee policy is fixed: a flat
// fee of exactly the network minimum, no bidding above it.
func buildPayment(sender string, intent TransferIntent, fee uint64, params model.NetworkParams) (types.Transaction, error) {
	sp := types.SuggestedParams{
		Fee:             types.MicroAlgos(fee),
		FlatFee:         true,
		GenesisID:       params.GenesisID,
		GenesisHash:     params.GenesisHash,
		FirstRoundValid: types.Round(params.FirstValid),
		LastRoundValid:  types.Round(params.LastValid),
		MinFee:          params.MinFee,
	}
	return transaction.MakePaymentTxn(sender, intent.Receiver, intent.AmountMicroAlgos, intent.Note, "", sp)
}
