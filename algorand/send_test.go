package algorand

import (
	"bytes"
	"context"
	"testing"

	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	t.Parallel()

	phrase, sender := testAccount(t)

	var submissions int
	node := baselineNode(t)
	node.SubmitRawTransactionFunc = func(_ context.Context, stx []byte) (string, error) {
		submissions++
		assert.NotEmpty(t, stx)
		return "", nil
	}

	s := NewService(node, nil, nil, 0, zerolog.Nop())

	result, err := s.Send(context.Background(), TransferIntent{
		SenderMnemonic:   phrase,
		Receiver:         testReceiver,
		AmountMicroAlgos: 1_000_000,
		Note:             []byte("lunch"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, submissions)
	assert.Len(t, result.TxID, 52)
	assert.Equal(t, sender, result.Sender)
	assert.Equal(t, uint64(1000), result.FeeMicroAlgos)
	assert.True(t, result.Confirmed)
	assert.Equal(t, uint64(1001), result.ConfirmedRound)
	assert.False(t, result.TimedOut)
}

func TestSendValidation(t *testing.T) {
	t.Parallel()

	phrase, sender := testAccount(t)

	tests := map[string]struct {
		intent  TransferIntent
		wantErr error
	}{
		"zero amount": {
			intent:  TransferIntent{SenderMnemonic: phrase, Receiver: testReceiver},
			wantErr: ErrInvalidAmount,
		},
		"invalid receiver": {
			intent:  TransferIntent{SenderMnemonic: phrase, Receiver: "not-an-address", AmountMicroAlgos: 1},
			wantErr: ErrInvalidAddress,
		},
		"note too long": {
			intent: TransferIntent{
				SenderMnemonic:   phrase,
				Receiver:         testReceiver,
				AmountMicroAlgos: 1,
				Note:             bytes.Repeat([]byte{0x42}, MaxNoteBytes+1),
			},
			wantErr: ErrNoteTooLong,
		},
		"invalid phrase": {
			intent:  TransferIntent{SenderMnemonic: "abandon abandon", Receiver: testReceiver, AmountMicroAlgos: 1},
			wantErr: ErrInvalidPhrase,
		},
		"self transfer": {
			intent:  TransferIntent{SenderMnemonic: phrase, Receiver: sender, AmountMicroAlgos: 1},
			wantErr: ErrSelfTransfer,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Validation failures must never reach the network
			node := &nodeMock{
				SuggestedParamsFunc: func(context.Context) (model.NetworkParams, error) {
					t.Fatal("network touched for an invalid intent")
					return model.NetworkParams{}, nil
				},
			}

			s := NewService(node, nil, nil, 0, zerolog.Nop())

			result, err := s.Send(context.Background(), test.intent)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, test.wantErr)
		})
	}
}

func TestSendInsufficientBalance(t *testing.T) {
	t.Parallel()

	phrase, _ := testAccount(t)

	node := baselineNode(t)
	node.AccountStateFunc = func(_ context.Context, addr string) (model.AccountState, error) {
		return model.AccountState{Address: addr, AmountMicroAlgos: 1_000_000, MinBalanceMicroAlgos: 100000}, nil
	}
	node.SubmitRawTransactionFunc = func(context.Context, []byte) (string, error) {
		t.Fatal("underfunded transaction submitted")
		return "", nil
	}

	s := NewService(node, nil, nil, 0, zerolog.Nop())

	_, err := s.Send(context.Background(), TransferIntent{
		SenderMnemonic:   phrase,
		Receiver:         testReceiver,
		AmountMicroAlgos: 950_000,
	})

	var balErr *InsufficientBalanceError
	require.ErrorAs(t, err, &balErr)
	assert.Equal(t, uint64(1_051_000), balErr.RequiredMicroAlgos)
	assert.Equal(t, uint64(1_000_000), balErr.AvailableMicroAlgos)
}

func TestSendFetchesFreshParams(t *testing.T) {
	t.Parallel()

	phrase, _ := testAccount(t)

	var fetches int
	node := baselineNode(t)
	base := node.SuggestedParamsFunc
	node.SuggestedParamsFunc = func(ctx context.Context) (model.NetworkParams, error) {
		fetches++
		return base(ctx)
	}

	s := NewService(node, nil, nil, 0, zerolog.Nop())

	intent := TransferIntent{SenderMnemonic: phrase, Receiver: testReceiver, AmountMicroAlgos: 1_000_000}

	_, err := s.Send(context.Background(), intent)
	require.NoError(t, err)

	_, err = s.Send(context.Background(), intent)
	require.NoError(t, err)

	// One fetch per build, never reused
	assert.Equal(t, 2, fetches)
}

func TestSendRejectedAtSubmit(t *testing.T) {
	t.Parallel()

	phrase, _ := testAccount(t)

	node := baselineNode(t)
	node.SubmitRawTransactionFunc = func(context.Context, []byte) (string, error) {
		return "", &RejectedError{Reason: "transaction already in ledger"}
	}

	s := NewService(node, nil, nil, 0, zerolog.Nop())

	result, err := s.Send(context.Background(), TransferIntent{
		SenderMnemonic:   phrase,
		Receiver:         testReceiver,
		AmountMicroAlgos: 1_000_000,
	})

	assert.Nil(t, result)
	assert.True(t, IsRejectedError(err))
}

func TestSendTimesOutStillReturnsID(t *testing.T) {
	t.Parallel()

	phrase, _ := testAccount(t)

	var waits int
	node := baselineNode(t)
	node.PendingByIDFunc = func(_ context.Context, txid string) (model.PendingTransaction, error) {
		return model.PendingTransaction{TxID: txid}, nil
	}
	base := node.WaitForRoundAfterFunc
	node.WaitForRoundAfterFunc = func(ctx context.Context, round uint64) (uint64, error) {
		waits++
		return base(ctx, round)
	}

	s := NewService(node, nil, nil, 3, zerolog.Nop())

	result, err := s.Send(context.Background(), TransferIntent{
		SenderMnemonic:   phrase,
		Receiver:         testReceiver,
		AmountMicroAlgos: 1_000_000,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, waits)
	assert.Len(t, result.TxID, 52)
	assert.False(t, result.Confirmed)
	assert.True(t, result.TimedOut)
}

func TestSendPoolErrorDuringWait(t *testing.T) {
	t.Parallel()

	phrase, _ := testAccount(t)

	node := baselineNode(t)
	node.PendingByIDFunc = func(_ context.Context, txid string) (model.PendingTransaction, error) {
		return model.PendingTransaction{TxID: txid, PoolError: "overspend"}, nil
	}

	s := NewService(node, nil, nil, 0, zerolog.Nop())

	result, err := s.Send(context.Background(), TransferIntent{
		SenderMnemonic:   phrase,
		Receiver:         testReceiver,
		AmountMicroAlgos: 1_000_000,
	})

	// The id is handed back even though the network refused the transaction
	require.NotNil(t, result)
	assert.Len(t, result.TxID, 52)

	var rejErr *RejectedError
	require.ErrorAs(t, err, &rejErr)
	assert.Equal(t, "overspend", rejErr.Reason)
}

func TestSendNodeRespondsWithID(t *testing.T) {
	t.Parallel()

	phrase, _ := testAccount(t)

	node := baselineNode(t)
	node.SubmitRawTransactionFunc = func(context.Context, []byte) (string, error) {
		return "NODEASSIGNEDID", nil
	}

	s := NewService(node, nil, nil, 0, zerolog.Nop())

	result, err := s.Send(context.Background(), TransferIntent{
		SenderMnemonic:   phrase,
		Receiver:         testReceiver,
		AmountMicroAlgos: 1_000_000,
	})
	require.NoError(t, err)

	assert.Equal(t, "NODEASSIGNEDID", result.TxID)
}
