package model

// CreateAccountResponse represents response for POST /api/create-account
type CreateAccountResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Address  string `json:"address,omitempty"`
	Mnemonic string `json:"mnemonic,omitempty"`
	QR       string `json:"qr,omitempty"` // base64 PNG of the address
}

// RecoverRequest represents request for POST /api/recover-account
type RecoverRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required"`
}

// RecoverResponse represents response for POST /api/recover-account
type RecoverResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
}
