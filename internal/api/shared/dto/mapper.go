package dto

import (
	"github.com/feral-file/wallet-ledger/internal/store/schema"
)

// MapUserToDTO maps a user row to its public view
func MapUserToDTO(user *schema.User) *UserResponse {
	if user == nil {
		return nil
	}
	active := user.IsActive
	return &UserResponse{
		WalletAddress: user.WalletAddress,
		CreatedAt:     user.CreatedAt,
		LastLoginAt:   user.LastLoginAt,
		IsActive:      &active,
	}
}

// MapTransactionToDTO maps a transaction row to its public view
func MapTransactionToDTO(txn *schema.Transaction) *TransactionResponse {
	if txn == nil {
		return nil
	}
	return &TransactionResponse{
		ID:            txn.ID,
		WalletAddress: txn.WalletAddress,
		TxHash:        txn.TxHash,
		Type:          txn.Type,
		TokenMint:     txn.TokenMint,
		TokenSymbol:   txn.TokenSymbol,
		Amount:        txn.Amount,
		Sender:        txn.Sender,
		Recipient:     txn.Recipient,
		Status:        txn.Status,
		BlockTime:     txn.BlockTime,
		Slot:          txn.Slot,
		Fee:           txn.Fee,
		Metadata:      txn.Metadata.Data(),
		CreatedAt:     txn.CreatedAt,
		UpdatedAt:     txn.UpdatedAt,
	}
}

// MapTransactionsToDTO maps transaction rows, never returning nil
func MapTransactionsToDTO(txns []*schema.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, *MapTransactionToDTO(txn))
	}
	return out
}
