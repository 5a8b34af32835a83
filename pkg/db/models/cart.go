package models

import "time"

// Cart binds a shopper session to its line items. One cart per session_id,
// created lazily on the first add and never expired.
type Cart struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID string     `gorm:"column:session_id;type:varchar(255);not null;uniqueIndex"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
