package algorand

import (
	"context"
	"fmt"
	"strconv"

	"github.com/AlexZinkM/algo-wallet/internal/common"
	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/algorand/go-algorand-sdk/v2/types"
)

// BaseMinBalance is the ledger minimum for a bare account, in microAlgos.
// Every held asset and every opted-in application raises the requirement by
// the same amount again.
const BaseMinBalance = 100000

// MinBalanceRequirement derives the minimum balance for an account holding
// the given number of assets and opted into the given number of applications.
func MinBalanceRequirement(assetCount, appCount uint64) uint64 {
	return BaseMinBalance + BaseMinBalance*assetCount + BaseMinBalance*appCount
}

// ComputeSpendable derives total, minimum and available balance from account
// state. The node's reported minimum is used verbatim when present; a node
// that omits it falls back to the derived requirement. Available is clamped
// at zero, it never goes negative.
func ComputeSpendable(state model.AccountState) (total, minBalance, available uint64) {
	total = state.AmountMicroAlgos

	minBalance = state.MinBalanceMicroAlgos
	if minBalance < BaseMinBalance {
		minBalance = MinBalanceRequirement(state.AssetCount, state.AppCount)
	}

	if total > minBalance {
		available = total - minBalance
	}
	return total, minBalance, available
}

// Balance gets the account balance with its spendable breakdown. An address
// the ledger has never seen is a valid account with an all-zero balance, not
// an error.
func (s *Service) Balance(ctx context.Context, address string) (*model.BalanceResponse, error) {
	if _, err := types.DecodeAddress(address); err != nil {
		return nil, ErrInvalidAddress
	}

	state, err := s.node.AccountState(ctx, address)
	if err != nil {
		return nil, err
	}

	total, minBalance, available := ComputeSpendable(state)

	resp := &model.BalanceResponse{
		Address:           address,
		BalanceMicroAlgos: total,
		BalanceAlgo:       common.MicroAlgosToAlgo(total),
		MinBalanceAlgo:    common.MicroAlgosToAlgo(minBalance),
		AvailableAlgo:     common.MicroAlgosToAlgo(available),
		Status:            state.Status,
		Round:             state.Round,
	}

	if s.quote != nil {
		s.attachQuote(ctx, resp)
	}

	return resp, nil
}

// attachQuote adds a USD estimate to a balance response. A price API outage
// must not fail a balance read, so failures degrade to a warning.
func (s *Service) attachQuote(ctx context.Context, resp *model.BalanceResponse) {
	rate, err := s.quote.GetALGOToUSDRate(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to get ALGO to USD rate")
		return
	}

	// use float only for the fiat estimate, not for ledger amounts
	algoFloat, _ := strconv.ParseFloat(resp.BalanceAlgo, 64)
	rateFloat, _ := strconv.ParseFloat(rate, 64)

	resp.USDRate = rate
	resp.BalanceValueInUSD = fmt.Sprintf("%.2f", algoFloat*rateFloat)
}
