package repository

import (
	"context"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"gorm.io/gorm"
)

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *model.Delivery) error
	FindByTransactionID(ctx context.Context, transactionID int64) (*model.Delivery, error)
}

type Delivery struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &Delivery{db: db}
}

func (d *Delivery) Create(ctx context.Context, delivery *model.Delivery) error {
	db := GetTx(ctx, d.db)
	return db.Create(delivery).Error
}

func (d *Delivery) FindByTransactionID(ctx context.Context, transactionID int64) (*model.Delivery, error) {
	db := GetTx(ctx, d.db)

	var delivery model.Delivery
	if err := db.Where("transaction_id = ?", transactionID).First(&delivery).Error; err != nil {
		return nil, err
	}

	return &delivery, nil
}
