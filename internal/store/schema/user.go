package schema

import "time"

// User represents the users table - one row per wallet identity
type User struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletAddress is the canonical (lowercase) wallet address
	WalletAddress string `gorm:"column:wallet_address;not null;uniqueIndex:idx_users_wallet_address;type:varchar(64)"`
	// LastSignature is the most recent signature that authenticated this wallet
	LastSignature string `gorm:"column:last_signature;not null;type:text"`
	// LastSignedMessage is the message covered by LastSignature
	LastSignedMessage string `gorm:"column:last_signed_message;not null;type:text"`
	// IsActive is never cleared by this service
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is the time of the first successful authentication
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// LastLoginAt is the time of the latest successful authentication
	LastLoginAt time.Time `gorm:"column:last_login_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is refreshed on every write
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
