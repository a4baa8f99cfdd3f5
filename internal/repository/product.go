package repository

import (
	"context"
	"errors"
	"time"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("PRODUCT_NOT_FOUND")
var ErrInsufficientStock = errors.New("INSUFFICIENT_STOCK")

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	DecrementStock(ctx context.Context, id int64, quantity int) (*model.Product, error)
}

type Product struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &Product{db: db}
}

func (p *Product) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	db := GetTx(ctx, p.db)

	var product model.Product
	err := db.Where("id = ?", id).First(&product).Error
	if err == nil {
		return &product, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}

	return nil, err
}

// DecrementStock is a single conditional UPDATE. The WHERE clause owns the
// non-negative stock invariant; a read-then-write race cannot drive stock
// below zero.
func (p *Product) DecrementStock(ctx context.Context, id int64, quantity int) (*model.Product, error) {
	db := GetTx(ctx, p.db)

	result := db.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumns(map[string]interface{}{
			"stock":      gorm.Expr("stock - ?", quantity),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		var product model.Product
		if err := db.Where("id = ?", id).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}

		return nil, ErrInsufficientStock
	}

	var product model.Product
	if err := db.Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}

	return &product, nil
}
