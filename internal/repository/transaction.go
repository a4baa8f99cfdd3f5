package repository

import (
	"context"
	"errors"
	"time"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("TRANSACTION_NOT_FOUND")
var ErrTransactionDuplicate = errors.New("TRANSACTION_DUPLICATE")
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

type TransactionRepository interface {
	Create(ctx context.Context, transaction *model.Transaction) error
	FindByID(ctx context.Context, id int64) (*model.Transaction, error)
	FindByReference(ctx context.Context, reference string) (*model.Transaction, error)
	FindAllPending(ctx context.Context, limit int) ([]model.Transaction, error)
	UpdateStatusFromPending(ctx context.Context, update *StatusUpdate) error
}

// StatusUpdate is the only mutation a transaction record ever sees after
// creation.
type StatusUpdate struct {
	ID                   int64
	Status               model.TransactionStatus
	GatewayTransactionID *string
	GatewayResponse      *string
}

type Transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &Transaction{db: db}
}

func (t *Transaction) Create(ctx context.Context, transaction *model.Transaction) error {
	db := GetTx(ctx, t.db)
	err := db.Create(transaction).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrTransactionDuplicate
	}

	return err
}

func (t *Transaction) FindByID(ctx context.Context, id int64) (*model.Transaction, error) {
	db := GetTx(ctx, t.db)

	var transaction model.Transaction
	err := db.Where("id = ?", id).First(&transaction).Error
	if err == nil {
		return &transaction, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

func (t *Transaction) FindByReference(ctx context.Context, reference string) (*model.Transaction, error) {
	db := GetTx(ctx, t.db)

	var transaction model.Transaction
	err := db.Where("reference = ?", reference).First(&transaction).Error
	if err == nil {
		return &transaction, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

func (t *Transaction) FindAllPending(ctx context.Context, limit int) ([]model.Transaction, error) {
	db := GetTx(ctx, t.db)

	var transactions []model.Transaction
	err := db.Where("status = ?", model.TransactionStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// UpdateStatusFromPending only writes if the stored status is still PENDING.
// ErrNoRowsAffected means another path already resolved the transaction; the
// caller must treat that as "already settled" and perform no side effects.
func (t *Transaction) UpdateStatusFromPending(ctx context.Context, update *StatusUpdate) error {
	db := GetTx(ctx, t.db)

	fields := map[string]interface{}{
		"status":     update.Status,
		"updated_at": time.Now(),
	}
	if update.GatewayTransactionID != nil {
		fields["gateway_transaction_id"] = *update.GatewayTransactionID
	}
	if update.GatewayResponse != nil {
		fields["gateway_response"] = *update.GatewayResponse
	}

	result := db.Model(&model.Transaction{}).
		Where("id = ? AND status = ?", update.ID, model.TransactionStatusPending).
		Updates(fields)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
