package model

// AWTFile represents .awt wallet file structure
type AWTFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	Mnemonic  []byte `json:"mnemonic"` // 25-word recovery phrase (stored as base64 in JSON)
	CreatedAt string `json:"createdAt"`
}
