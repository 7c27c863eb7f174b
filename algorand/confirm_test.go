package algorand

import (
	"context"
	"errors"
	"testing"

	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForConfirmation(t *testing.T) {
	t.Parallel()

	var polls int
	node := baselineNode(t)
	node.PendingByIDFunc = func(_ context.Context, txid string) (model.PendingTransaction, error) {
		polls++
		if polls < 3 {
			return model.PendingTransaction{TxID: txid}, nil
		}
		return model.PendingTransaction{TxID: txid, ConfirmedRound: 1003}, nil
	}

	s := NewService(node, nil, nil, 0, zerolog.Nop())

	outcome, err := s.WaitForConfirmation(context.Background(), "SOMEID")
	require.NoError(t, err)

	assert.True(t, outcome.Confirmed)
	assert.Equal(t, uint64(1003), outcome.ConfirmedRound)
	assert.False(t, outcome.TimedOut)
	assert.Equal(t, uint64(2), outcome.Rounds)
	assert.Equal(t, 3, polls)
}

func TestWaitForConfirmationTimesOut(t *testing.T) {
	t.Parallel()

	var polls, waits int
	node := baselineNode(t)
	node.PendingByIDFunc = func(_ context.Context, txid string) (model.PendingTransaction, error) {
		polls++
		return model.PendingTransaction{TxID: txid}, nil
	}
	base := node.WaitForRoundAfterFunc
	node.WaitForRoundAfterFunc = func(ctx context.Context, round uint64) (uint64, error) {
		waits++
		return base(ctx, round)
	}

	s := NewService(node, nil, nil, 5, zerolog.Nop())

	outcome, err := s.WaitForConfirmation(context.Background(), "SOMEID")
	require.NoError(t, err)

	// The budget bounds the wait exactly, not one round more or less
	assert.Equal(t, 5, polls)
	assert.Equal(t, 5, waits)
	assert.True(t, outcome.TimedOut)
	assert.False(t, outcome.Confirmed)
	assert.Equal(t, uint64(5), outcome.Rounds)
}

func TestWaitForConfirmationPoolError(t *testing.T) {
	t.Parallel()

	node := baselineNode(t)
	node.PendingByIDFunc = func(_ context.Context, txid string) (model.PendingTransaction, error) {
		return model.PendingTransaction{TxID: txid, PoolError: "overspend"}, nil
	}

	s := NewService(node, nil, nil, 0, zerolog.Nop())

	outcome, err := s.WaitForConfirmation(context.Background(), "SOMEID")
	assert.Nil(t, outcome)

	var rejErr *RejectedError
	require.ErrorAs(t, err, &rejErr)
	assert.Equal(t, "SOMEID", rejErr.TxID)
	assert.Equal(t, "overspend", rejErr.Reason)
}

func TestWaitForConfirmationCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var waits int
	node := baselineNode(t)
	node.PendingByIDFunc = func(_ context.Context, txid string) (model.PendingTransaction, error) {
		return model.PendingTransaction{TxID: txid}, nil
	}
	node.WaitForRoundAfterFunc = func(_ context.Context, round uint64) (uint64, error) {
		waits++
		if waits == 2 {
			cancel()
			return 0, ctx.Err()
		}
		return round + 1, nil
	}

	s := NewService(node, nil, nil, 10, zerolog.Nop())

	outcome, err := s.WaitForConfirmation(ctx, "SOMEID")
	require.NoError(t, err)

	// A cancelled wait is still pending, not timed out
	assert.False(t, outcome.Confirmed)
	assert.False(t, outcome.TimedOut)
	assert.Equal(t, 2, waits)
}

func TestWaitForConfirmationToleratesNotFound(t *testing.T) {
	t.Parallel()

	var polls int
	node := baselineNode(t)
	node.PendingByIDFunc = func(_ context.Context, txid string) (model.PendingTransaction, error) {
		polls++
		if polls < 3 {
			return model.PendingTransaction{}, ErrNotFound
		}
		return model.PendingTransaction{TxID: txid, ConfirmedRound: 1003}, nil
	}

	s := NewService(node, nil, nil, 0, zerolog.Nop())

	// A node may briefly not know the transaction right after submission
	outcome, err := s.WaitForConfirmation(context.Background(), "SOMEID")
	require.NoError(t, err)
	assert.True(t, outcome.Confirmed)
}

func TestWaitForConfirmationToleratesPollErrors(t *testing.T) {
	t.Parallel()

	var polls int
	node := baselineNode(t)
	node.PendingByIDFunc = func(_ context.Context, txid string) (model.PendingTransaction, error) {
		polls++
		if polls < 3 {
			return model.PendingTransaction{}, &NetworkError{Op: "pending transaction information", Err: errors.New("dummy error")}
		}
		return model.PendingTransaction{TxID: txid, ConfirmedRound: 1003}, nil
	}

	s := NewService(node, nil, nil, 0, zerolog.Nop())

	outcome, err := s.WaitForConfirmation(context.Background(), "SOMEID")
	require.NoError(t, err)
	assert.True(t, outcome.Confirmed)
	assert.Equal(t, uint64(1003), outcome.ConfirmedRound)
}

func TestWaitForConfirmationRoundLookupFails(t *testing.T) {
	t.Parallel()

	node := baselineNode(t)
	node.CurrentRoundFunc = func(context.Context) (uint64, error) {
		return 0, &NetworkError{Op: "status", Err: errors.New("dummy error")}
	}

	s := NewService(node, nil, nil, 0, zerolog.Nop())

	outcome, err := s.WaitForConfirmation(context.Background(), "SOMEID")
	assert.Nil(t, outcome)
	assert.True(t, IsNetworkError(err))
}
