package algorand

import (
	"github.com/rs/zerolog"
)

// DefaultConfirmationRounds bounds how many rounds a confirmation wait may span
// unless configured otherwise.
const DefaultConfirmationRounds = 10

// Service executes wallet operations against the ledger. It holds no account
// state: every call carries the keys and intent it needs and returns a fresh
// result.
type Service struct {
	node       NodeGateway
	search     SearchGateway
	quote      QuoteClient // nil when the USD quote is disabled
	waitRounds uint64
	log        zerolog.Logger
}

// NewService creates a wallet service on top of the given gateways.
func NewService(node NodeGateway, search SearchGateway, quote QuoteClient, waitRounds uint64, log zerolog.Logger) *Service {
	if waitRounds == 0 {
		waitRounds = DefaultConfirmationRounds
	}
	return &Service{
		node:       node,
		search:     search,
		quote:      quote,
		waitRounds: waitRounds,
		log:        log,
	}
}
