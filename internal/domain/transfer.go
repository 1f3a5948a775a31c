package domain

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// NativeTransferAmount returns |pre - post - fee| of the account matching address,
// in whole SOL. The address match is case-insensitive. Missing data yields zero.
func NativeTransferAmount(tx *LedgerTransaction, address string) decimal.Decimal {
	idx := -1
	for i, key := range tx.AccountKeys {
		if strings.EqualFold(key, address) {
			idx = i
			break
		}
	}
	if idx < 0 || idx >= len(tx.PreBalances) || idx >= len(tx.PostBalances) {
		return decimal.Zero
	}

	delta := new(big.Int).SetUint64(tx.PreBalances[idx])
	delta.Sub(delta, new(big.Int).SetUint64(tx.PostBalances[idx]))
	delta.Sub(delta, new(big.Int).SetUint64(tx.Fee))

	return decimal.NewFromBigInt(delta.Abs(delta), -NativeDecimals)
}

// TokenTransferAmount returns the absolute balance change for mint between the first
// post-balance entry of that mint and the pre-balance entry of the same account.
// The symbol is best-effort and nil when the ledger's formatted amount carries none.
// An unmatched side yields zero.
func TokenTransferAmount(tx *LedgerTransaction, mint string) (decimal.Decimal, *string) {
	var post *TokenBalance
	for i := range tx.PostTokenBalances {
		if tx.PostTokenBalances[i].Mint == mint {
			post = &tx.PostTokenBalances[i]
			break
		}
	}
	if post == nil {
		return decimal.Zero, nil
	}

	var pre *TokenBalance
	for i := range tx.PreTokenBalances {
		b := &tx.PreTokenBalances[i]
		if b.Mint == mint && b.AccountIndex == post.AccountIndex {
			pre = b
			break
		}
	}
	if pre == nil {
		return decimal.Zero, nil
	}

	preAmount, ok := pre.uiAmount()
	if !ok {
		return decimal.Zero, nil
	}
	postAmount, ok := post.uiAmount()
	if !ok {
		return decimal.Zero, nil
	}

	return preAmount.Sub(postAmount).Abs(), post.symbol()
}

// uiAmount is the balance in display units. The raw amount is preferred over the
// ledger's float rendering so large balances keep full precision.
func (b *TokenBalance) uiAmount() (decimal.Decimal, bool) {
	if b.Amount != "" {
		if raw, err := decimal.NewFromString(b.Amount); err == nil {
			return raw.Shift(-int32(b.Decimals)), true
		}
	}
	if fields := strings.Fields(b.UIAmountString); len(fields) > 0 {
		if ui, err := decimal.NewFromString(fields[0]); err == nil {
			return ui, true
		}
	}
	if b.UIAmount != nil {
		return decimal.NewFromFloat(*b.UIAmount), true
	}
	return decimal.Zero, false
}

func (b *TokenBalance) symbol() *string {
	fields := strings.Fields(b.UIAmountString)
	if len(fields) < 2 {
		return nil
	}
	symbol := fields[1]
	return &symbol
}
