package cart

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wearloom/storefront-backend/pkg/db/models"
)

// Repository exposes persistence operations for carts and their line items.
// The catalog tables are only ever read through the preloaded associations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// GetOrCreateBySession resolves the cart for a session, creating it when
// absent. The insert is a conditional no-op against the session_id unique
// constraint, so two concurrent callers converge on the same row.
func (r *Repository) GetOrCreateBySession(ctx context.Context, sessionID string) (*models.Cart, error) {
	insert := &models.Cart{SessionID: sessionID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoNothing: true,
		}).
		Create(insert).Error
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := r.db.WithContext(ctx).First(&cart, "session_id = ?", sessionID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpsertItem merges a quantity into the cart line for the variation: a new
// line is inserted, an existing one has the quantity added to it. Runs as a
// single conditional upsert against the (cart_id, product_variation_id)
// unique constraint.
func (r *Repository) UpsertItem(ctx context.Context, cartID, variationID int64, quantity int) error {
	item := &models.CartItem{
		CartID:             cartID,
		ProductVariationID: variationID,
		Quantity:           quantity,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_variation_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("quantity + excluded.quantity"),
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(item).Error
}

// FindItemByCartAndVariation loads the merged line with catalog data attached.
func (r *Repository) FindItemByCartAndVariation(ctx context.Context, cartID, variationID int64) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Variation.Product").
		Where("cart_id = ? AND product_variation_id = ?", cartID, variationID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItemDetail loads one line item with catalog data attached.
func (r *Repository) FindItemDetail(ctx context.Context, itemID int64) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Variation.Product").
		First(&item, "id = ?", itemID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SetItemQuantity sets a line's quantity to an absolute value, reporting
// whether the row existed.
func (r *Repository) SetItemQuantity(ctx context.Context, itemID int64, quantity int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteItem removes a line item, reporting whether a row was deleted.
func (r *Repository) DeleteItem(ctx context.Context, itemID int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.CartItem{}, "id = ?", itemID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListItemsBySession returns all line items for a session's cart with catalog
// data attached, oldest line first. An unknown session yields an empty slice.
func (r *Repository) ListItemsBySession(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.db.WithContext(ctx).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("carts.session_id = ?", sessionID).
		Preload("Variation.Product").
		Order("cart_items.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
