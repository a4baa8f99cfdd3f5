package model

import "time"

type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description;type:text"`
	// Unit price in minor-currency units.
	PriceInCents int64     `gorm:"column:price_in_cents"`
	Stock        int       `gorm:"column:stock;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}
