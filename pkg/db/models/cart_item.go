package models

import "time"

// CartItem is one line of a cart: this many units of this variation. The
// composite unique index backs the merge-on-add upsert, so two concurrent
// adds of the same variation can never produce two rows.
type CartItem struct {
	ID                 int64             `gorm:"column:id;primaryKey;autoIncrement"`
	CartID             int64             `gorm:"column:cart_id;not null;uniqueIndex:idx_cart_items_cart_variation"`
	ProductVariationID int64             `gorm:"column:product_variation_id;not null;uniqueIndex:idx_cart_items_cart_variation"`
	Quantity           int               `gorm:"column:quantity;not null;default:1"`
	Variation          *ProductVariation `gorm:"foreignKey:ProductVariationID"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
