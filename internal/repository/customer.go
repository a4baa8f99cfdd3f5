package repository

import (
	"context"
	"errors"
	"time"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("CUSTOMER_NOT_FOUND")

type CustomerRepository interface {
	UpsertByEmail(ctx context.Context, customer *model.Customer) error
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
}

type Customer struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &Customer{db: db}
}

// UpsertByEmail creates the customer or refreshes name and phone on the
// existing row. The unique email index resolves concurrent first-time
// checkouts for the same customer.
func (c *Customer) UpsertByEmail(ctx context.Context, customer *model.Customer) error {
	db := GetTx(ctx, c.db)

	err := db.Create(customer).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != 1062 {
		return err
	}

	var existing model.Customer
	if err := db.Where("email = ?", customer.Email).First(&existing).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{
		"name":       customer.Name,
		"phone":      customer.Phone,
		"updated_at": time.Now(),
	}
	if err := db.Model(&model.Customer{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
		return err
	}

	customer.ID = existing.ID
	customer.CreatedAt = existing.CreatedAt

	return nil
}

func (c *Customer) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	db := GetTx(ctx, c.db)

	var customer model.Customer
	err := db.Where("email = ?", email).First(&customer).Error
	if err == nil {
		return &customer, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}

	return nil, err
}
