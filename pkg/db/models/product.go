package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the catalog-owned listing a shopper browses. The cart subsystem
// only ever reads it.
type Product struct {
	ID          int64              `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string             `gorm:"column:name;not null"`
	Description *string            `gorm:"column:description"`
	BasePrice   decimal.Decimal    `gorm:"column:base_price;type:numeric(10,2);not null"`
	Category    string             `gorm:"column:category;type:varchar(100);not null"`
	ImageURL    *string            `gorm:"column:image_url"`
	Variations  []ProductVariation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
