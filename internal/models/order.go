package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is a pizza order placed by a customer. The total price is
// derived from the catalog price map and never stored.
type Order struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   User      `gorm:"foreignKey:CustomerID" json:"-"`
	PizzaID    string    `gorm:"not null;size:36;index" json:"pizza_id"`
	Pizza      Pizza     `gorm:"foreignKey:PizzaID" json:"-"`
	Size       Size      `gorm:"size:1;not null;default:'S'" json:"size"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	Status     Status    `gorm:"size:2;not null;default:'P'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

// Delivered reports whether the order reached its terminal status.
// A delivered order is locked: no field may change anymore.
func (o *Order) Delivered() bool {
	return o.Status == StatusDelivered
}
