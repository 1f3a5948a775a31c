package dto

// VerifyWalletRequest is the body of POST /api/auth/verify
type VerifyWalletRequest struct {
	WalletAddress string `json:"walletAddress"`
	Message       string `json:"message"`
	Signature     string `json:"signature"`
}

// VerifyTransactionRequest is the body of POST /api/transactions/verify
type VerifyTransactionRequest struct {
	TxHash    string  `json:"txHash"`
	TokenMint *string `json:"tokenMint,omitempty"`
	Recipient *string `json:"recipient,omitempty"`
}
