package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceMap maps a size code to the price of the flavour in that size.
type PriceMap map[Size]float64

// Pizza is a catalog entry: a flavour with per-size prices.
type Pizza struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Flavour   string     `gorm:"uniqueIndex;not null" json:"flavour"`
	Prices    PriceMap   `gorm:"serializer:json" json:"prices"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}

func (p *Pizza) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
