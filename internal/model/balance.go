package model

// BalanceResponse represents response for GET /api/balance
type BalanceResponse struct {
	Address           string `json:"address"`
	BalanceMicroAlgos uint64 `json:"balance_microalgos"`
	BalanceAlgo       string `json:"balance_algo"`
	MinBalanceAlgo    string `json:"min_balance_algo"`
	AvailableAlgo     string `json:"available_algo"`
	Status            string `json:"status"`
	Round             uint64 `json:"round"`
	USDRate           string `json:"usd_rate,omitempty"`
	BalanceValueInUSD string `json:"balance_value_usd,omitempty"`
}
