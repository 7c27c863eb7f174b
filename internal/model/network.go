package model

// NetworkStatusResponse represents response for GET /api/network-status
type NetworkStatusResponse struct {
	Status       string `json:"status"`
	CurrentRound uint64 `json:"current_round"`
	Network      string `json:"network"`
	Connected    bool   `json:"connected"`
	Error        string `json:"error,omitempty"`
}
