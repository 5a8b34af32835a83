package cart

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/wearloom/storefront-backend/pkg/db"
	"github.com/wearloom/storefront-backend/pkg/db/models"
	pkgerrors "github.com/wearloom/storefront-backend/pkg/errors"
)

// Service is the cart engine. All catalog checks that gate a mutation run
// before any write; every reported price is computed from the catalog rows
// current at read time.
type Service interface {
	AddItem(ctx context.Context, in AddItemInput) (*ItemDetails, error)
	GetCart(ctx context.Context, sessionID string) (*CartDTO, error)
	UpdateItem(ctx context.Context, in UpdateItemInput) (*UpdateResult, error)
	RemoveItem(ctx context.Context, itemID int64) (*RemoveResult, error)
}

// CartRepository is the persistence surface the engine drives.
type CartRepository interface {
	WithTx(tx *gorm.DB) CartRepository
	GetOrCreateBySession(ctx context.Context, sessionID string) (*models.Cart, error)
	UpsertItem(ctx context.Context, cartID, variationID int64, quantity int) error
	FindItemByCartAndVariation(ctx context.Context, cartID, variationID int64) (*models.CartItem, error)
	FindItemDetail(ctx context.Context, itemID int64) (*models.CartItem, error)
	SetItemQuantity(ctx context.Context, itemID int64, quantity int) (bool, error)
	DeleteItem(ctx context.Context, itemID int64) (bool, error)
	ListItemsBySession(ctx context.Context, sessionID string) ([]models.CartItem, error)
}

// VariationLoader reads purchasable variations from the catalog.
type VariationLoader interface {
	FindVariationByID(ctx context.Context, id int64) (*models.ProductVariation, error)
}

// TxRunner executes a function inside a database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// AddItemInput identifies what to merge into a session's cart.
type AddItemInput struct {
	SessionID   string
	VariationID int64
	Quantity    int
}

// UpdateItemInput sets an absolute quantity on a line item.
type UpdateItemInput struct {
	ItemID   int64
	Quantity int
}

type service struct {
	repo       CartRepository
	variations VariationLoader
	tx         TxRunner
}

// NewService wires the cart engine. The transaction runner is typically the
// shared *db.Client.
func NewService(repo CartRepository, variations VariationLoader, tx TxRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart: repository is required")
	}
	if variations == nil {
		return nil, fmt.Errorf("cart: variation loader is required")
	}
	if tx == nil {
		return nil, fmt.Errorf("cart: tx runner is required")
	}
	return &service{repo: repo, variations: variations, tx: tx}, nil
}

var _ TxRunner = (*db.Client)(nil)

// AddItem merges a quantity into the session's cart. The cart is created on
// first use; adding a variation already in the cart increments the existing
// line instead of inserting a duplicate. The returned line reflects the
// merged quantity.
func (s *service) AddItem(ctx context.Context, in AddItemInput) (*ItemDetails, error) {
	if in.SessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session_id is required")
	}
	if in.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	// The catalog check runs before any cart write so a bad variation id
	// cannot leave an empty cart behind.
	if _, err := s.variations.FindVariationByID(ctx, in.VariationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product variation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product variation")
	}

	var merged *models.CartItem
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		cart, err := repo.GetOrCreateBySession(ctx, in.SessionID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve cart for session")
		}
		if err := repo.UpsertItem(ctx, cart.ID, in.VariationID, in.Quantity); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "merge cart item")
		}
		merged, err = repo.FindItemByCartAndVariation(ctx, cart.ID, in.VariationID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load merged cart item")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newItemDetails(merged)
}

// GetCart returns the session's cart with every line priced against the
// current catalog. A session with no cart gets an empty cart, not an error.
func (s *service) GetCart(ctx context.Context, sessionID string) (*CartDTO, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session_id is required")
	}
	rows, err := s.repo.ListItemsBySession(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart items")
	}
	return newCartDTO(sessionID, rows)
}

// UpdateItem sets an absolute quantity on a line. Zero deletes the line and
// reports ItemRemoved; that is a successful outcome, not an error. Updating a
// line that does not exist is CodeNotFound.
func (s *service) UpdateItem(ctx context.Context, in UpdateItemInput) (*UpdateResult, error) {
	if in.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be negative")
	}

	if in.Quantity == 0 {
		deleted, err := s.repo.DeleteItem(ctx, in.ItemID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart item")
		}
		if !deleted {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return &UpdateResult{Outcome: ItemRemoved}, nil
	}

	updated, err := s.repo.SetItemQuantity(ctx, in.ItemID, in.Quantity)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart item quantity")
	}
	if !updated {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}

	item, err := s.repo.FindItemDetail(ctx, in.ItemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load updated cart item")
	}
	details, err := newItemDetails(item)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{Outcome: ItemUpdated, Item: details}, nil
}

// RemoveItem deletes a line item. Removing an absent item is not an error;
// the result's Success field reports whether a row was deleted.
func (s *service) RemoveItem(ctx context.Context, itemID int64) (*RemoveResult, error) {
	deleted, err := s.repo.DeleteItem(ctx, itemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart item")
	}
	return &RemoveResult{Success: deleted}, nil
}
