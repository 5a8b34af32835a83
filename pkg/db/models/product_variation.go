package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariation is a purchasable SKU-level instance of a Product: a
// concrete size/color with its own price adjustment and advisory stock count.
type ProductVariation struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID       int64           `gorm:"column:product_id;not null;index"`
	Size            string          `gorm:"column:size;type:varchar(20);not null"`
	Color           string          `gorm:"column:color;type:varchar(50);not null"`
	PriceAdjustment decimal.Decimal `gorm:"column:price_adjustment;type:numeric(10,2);not null;default:0"`
	StockQuantity   int             `gorm:"column:stock_quantity;not null;default:0"`
	SKU             string          `gorm:"column:sku;type:varchar(100);not null;uniqueIndex"`
	Product         *Product        `gorm:"foreignKey:ProductID"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
