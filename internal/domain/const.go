package domain

const (
	// NativeDecimals is the number of decimal places of the ledger's base currency (lamports per SOL)
	NativeDecimals = 9

	// UnknownRecipient is stored when the caller does not supply a recipient
	UnknownRecipient = "unknown"

	// MaxLogMessages caps the log lines kept in a confirmed transaction's metadata
	MaxLogMessages = 5
)
