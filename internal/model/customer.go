package model

import "time"

type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Email     string    `gorm:"column:email;index:idx_email,unique"`
	Name      string    `gorm:"column:name"`
	Phone     string    `gorm:"column:phone"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}
