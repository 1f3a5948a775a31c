package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/wallet-ledger/internal/domain"
	"github.com/feral-file/wallet-ledger/internal/store/schema"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation
const uniqueViolation = "23505"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the tables used by the store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schema.User{}, &schema.Transaction{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool applies pool settings to the underlying *sql.DB.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults to zero values
// (20 open, 5 idle, 5m lifetime, 10m idle time) and keeps idle <= open.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// isUniqueViolation reports whether err is a duplicate key error, with or without
// gorm's error translation enabled
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// GetUserByID retrieves a user by id
func (s *pgStore) GetUserByID(ctx context.Context, id uint64) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByWalletAddress retrieves a user by canonical wallet address
func (s *pgStore) GetUserByWalletAddress(ctx context.Context, walletAddress string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new active user
func (s *pgStore) CreateUser(ctx context.Context, input CreateUserInput) (*schema.User, error) {
	user := &schema.User{
		WalletAddress:     input.WalletAddress,
		LastSignature:     input.LastSignature,
		LastSignedMessage: input.LastSignedMessage,
		IsActive:          true,
		CreatedAt:         input.LoginAt,
		LastLoginAt:       input.LoginAt,
		UpdatedAt:         input.LoginAt,
	}

	// Nested transaction so a duplicate only rolls back to a savepoint when called inside a transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// UpdateUserLogin overwrites the stored proof of possession of an existing user
func (s *pgStore) UpdateUserLogin(ctx context.Context, input UpdateUserLoginInput) (*schema.User, error) {
	var user schema.User
	result := s.db.WithContext(ctx).
		Model(&user).
		Clauses(clause.Returning{}).
		Where("id = ?", input.UserID).
		Updates(map[string]interface{}{
			"last_signature":      input.LastSignature,
			"last_signed_message": input.LastSignedMessage,
			"last_login_at":       input.LoginAt,
			"updated_at":          input.LoginAt,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update user login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("failed to update user login: %w", gorm.ErrRecordNotFound)
	}
	return &user, nil
}

// GetTransactionByHash retrieves a transaction by hash regardless of owner
func (s *pgStore) GetTransactionByHash(ctx context.Context, txHash string) (*schema.Transaction, error) {
	var txn schema.Transaction
	err := s.db.WithContext(ctx).Where("tx_hash = ?", txHash).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// GetUserTransactionByHash retrieves a transaction by hash owned by userID
func (s *pgStore) GetUserTransactionByHash(ctx context.Context, userID uint64, txHash string) (*schema.Transaction, error) {
	var txn schema.Transaction
	err := s.db.WithContext(ctx).
		Where("tx_hash = ? AND user_id = ?", txHash, userID).
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// CreateTransaction inserts a classified transaction
func (s *pgStore) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*schema.Transaction, error) {
	txn := &schema.Transaction{
		UserID:        input.UserID,
		WalletAddress: input.WalletAddress,
		TxHash:        input.TxHash,
		Type:          input.Type,
		TokenMint:     input.TokenMint,
		TokenSymbol:   input.TokenSymbol,
		Amount:        input.Amount.String(),
		Sender:        input.Sender,
		Recipient:     input.Recipient,
		Status:        input.Status,
		BlockTime:     input.BlockTime,
		Slot:          input.Slot,
		Fee:           input.Fee,
		Metadata:      datatypes.NewJSONType(input.Metadata),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(txn).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrTransactionAlreadyExists
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions returns a page of a user's transactions ordered newest first
func (s *pgStore) ListTransactions(ctx context.Context, filter TransactionQueryFilter) ([]*schema.Transaction, uint64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("user_id = ?", filter.UserID)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	// Share the conditions between the count and the page query
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var txns []*schema.Transaction
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(filter.Limit).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&txns).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txns, uint64(total), nil //nolint:gosec,G115
}

// GetTransactionStats aggregates a user's transactions in a single scan
func (s *pgStore) GetTransactionStats(ctx context.Context, userID uint64) (*TransactionStats, error) {
	var row struct {
		Total     uint64
		Confirmed uint64
		Pending   uint64
		Failed    uint64
		Volume    string
	}

	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = ?) AS confirmed,
			COUNT(*) FILTER (WHERE status = ?) AS pending,
			COUNT(*) FILTER (WHERE status = ?) AS failed,
			COALESCE(SUM(CAST(amount AS NUMERIC)) FILTER (WHERE status = ? AND type = ?), 0)::text AS volume
		FROM transactions
		WHERE user_id = ?`,
		string(domain.TransactionStatusConfirmed),
		string(domain.TransactionStatusPending),
		string(domain.TransactionStatusFailed),
		string(domain.TransactionStatusConfirmed),
		string(domain.TransactionKindNative),
		userID,
	).Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction stats: %w", err)
	}

	volume, err := decimal.NewFromString(row.Volume)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction volume %q: %w", row.Volume, err)
	}

	return &TransactionStats{
		Total:     row.Total,
		Confirmed: row.Confirmed,
		Pending:   row.Pending,
		Failed:    row.Failed,
		Volume:    volume,
	}, nil
}
