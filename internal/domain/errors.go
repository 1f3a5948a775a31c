package domain

import "errors"

var (
	// ErrUserAlreadyExists is returned when inserting a user whose wallet address is taken
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTransactionAlreadyExists is returned when inserting a transaction whose hash is already recorded
	ErrTransactionAlreadyExists = errors.New("transaction already exists")

	// ErrLedgerUnavailable is returned when the ledger RPC lookup itself fails
	ErrLedgerUnavailable = errors.New("ledger lookup failed")

	// ErrLedgerTransactionNotFound is returned when the ledger has no transaction for a hash
	ErrLedgerTransactionNotFound = errors.New("transaction not found on ledger")
)
