package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/wallet-ledger/internal/domain"
)

// Transaction represents the transactions table - one row per ledger transaction hash
type Transaction struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID references the user that submitted the transaction
	UserID uint64 `gorm:"column:user_id;not null;index:idx_transactions_user_created,priority:1"`
	// User is the owning user, only used to declare the foreign key
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	// WalletAddress is the submitting user's address at ingestion time
	WalletAddress string `gorm:"column:wallet_address;not null;type:varchar(64)"`
	// TxHash is the ledger signature of the transaction, the idempotency key
	TxHash string `gorm:"column:tx_hash;not null;uniqueIndex:idx_transactions_tx_hash;type:varchar(128)"`
	// Type is SOL or SPL_TOKEN
	Type domain.TransactionKind `gorm:"column:type;not null;type:varchar(16)"`
	// TokenMint is set only for SPL_TOKEN transactions
	TokenMint *string `gorm:"column:token_mint;type:varchar(64)"`
	// TokenSymbol is best-effort and may be nil for SPL_TOKEN transactions
	TokenSymbol *string `gorm:"column:token_symbol;type:text"`
	// Amount is a decimal string in display units
	Amount string `gorm:"column:amount;not null;default:'0';type:text"`
	// Sender is the submitting wallet address
	Sender string `gorm:"column:sender;not null;type:varchar(64)"`
	// Recipient is caller supplied, or "unknown"
	Recipient string `gorm:"column:recipient;not null;type:text"`
	// Status is pending, confirmed or failed
	Status domain.TransactionStatus `gorm:"column:status;not null;default:'pending';index;type:varchar(16)"`
	// BlockTime is the ledger block time, nil when the ledger omits it
	BlockTime *time.Time `gorm:"column:block_time;type:timestamptz"`
	// Slot is the ledger slot the transaction landed in
	Slot *uint64 `gorm:"column:slot;type:bigint"`
	// Fee is in lamports
	Fee *uint64 `gorm:"column:fee;type:bigint"`
	// Metadata holds {"error": ...} for failed transactions or {"logMessages": [...]} for confirmed ones
	Metadata datatypes.JSONType[domain.TransactionMetadata] `gorm:"column:metadata;not null;type:jsonb"`
	// CreatedAt is the ingestion time
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();index:idx_transactions_user_created,priority:2,sort:desc;type:timestamptz"`
	// UpdatedAt is refreshed on every write
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
