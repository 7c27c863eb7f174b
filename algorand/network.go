package algorand

import (
	"context"

	"github.com/AlexZinkM/algo-wallet/internal/model"
)

// NetworkStatus reports node reachability, the last processed round and the
// network's genesis id.
func (s *Service) NetworkStatus(ctx context.Context) (*model.NetworkStatusResponse, error) {
	round, err := s.node.CurrentRound(ctx)
	if err != nil {
		return nil, err
	}

	resp := &model.NetworkStatusResponse{
		Status:       "online",
		CurrentRound: round,
		Connected:    true,
	}

	// Genesis id is informational; its failure does not fail the status
	if params, err := s.node.SuggestedParams(ctx); err == nil {
		resp.Network = params.GenesisID
	}

	return resp, nil
}
