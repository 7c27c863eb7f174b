package algorand

import (
	"context"
	"errors"

	"github.com/AlexZinkM/algo-wallet/internal/common"
	"github.com/AlexZinkM/algo-wallet/internal/metrics"
)

// WaitOutcome is the terminal state of a confirmation wait. TimedOut means
// the round budget ran out with the transaction still pending; the id stays
// valid and can be polled again later.
type WaitOutcome struct {
	TxID           string
	Confirmed      bool
	ConfirmedRound uint64
	TimedOut       bool
	Rounds         uint64
}

// WaitForConfirmation polls the node round by round until the transaction is
// included, the round budget runs out, or ctx is done. Running out of rounds
// is a normal outcome, not an error: the transaction was submitted and may
// still confirm later. Submission is never retried from here.
func (s *Service) WaitForConfirmation(ctx context.Context, txid string) (*WaitOutcome, error) {
	outcome := &WaitOutcome{TxID: txid}

	lastRound, err := s.node.CurrentRound(ctx)
	if err != nil {
		return nil, err
	}
	current := lastRound + 1
	deadline := lastRound + s.waitRounds

	for current <= deadline {
		if ctx.Err() != nil {
			break
		}

		pending, err := s.node.PendingByID(ctx, txid)
		switch {
		case err == nil && pending.PoolError != "":
			// The pool kicked it out; this is terminal
			metrics.ObserveConfirmationRounds(outcome.Rounds)
			return nil, &RejectedError{TxID: txid, Reason: pending.PoolError}

		case err == nil && pending.ConfirmedRound > 0:
			outcome.Confirmed = true
			outcome.ConfirmedRound = pending.ConfirmedRound
			metrics.ObserveConfirmationRounds(outcome.Rounds)
			s.log.Info().
				Str("txid", common.ShortTxID(txid)).
				Uint64("round", pending.ConfirmedRound).
				Msg("transaction confirmed")
			return outcome, nil

		case err != nil && !errors.Is(err, ErrNotFound):
			// Transient poll failure, keep going within the budget
			s.log.Warn().Err(err).Str("txid", common.ShortTxID(txid)).Msg("confirmation poll failed")
		}

		if _, err := s.node.WaitForRoundAfter(ctx, current); err != nil {
			if ctx.Err() != nil {
				break
			}
			s.log.Warn().Err(err).Uint64("round", current).Msg("wait for round failed")
		}
		current++
		outcome.Rounds++
	}

	// Cancelled waits are reported as still pending, not timed out
	outcome.TimedOut = ctx.Err() == nil
	metrics.ObserveConfirmationRounds(outcome.Rounds)
	s.log.Info().
		Str("txid", common.ShortTxID(txid)).
		Uint64("rounds", outcome.Rounds).
		Bool("timed_out", outcome.TimedOut).
		Msg("confirmation wait ended without confirmation")
	return outcome, nil
}
