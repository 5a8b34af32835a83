package cart

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wearloom/storefront-backend/internal/catalog"
	"github.com/wearloom/storefront-backend/pkg/db/models"
	pkgerrors "github.com/wearloom/storefront-backend/pkg/errors"
)

// ItemDetails is a fully priced cart line: the stored quantity joined with
// the catalog data it points at, plus the computed line total.
type ItemDetails struct {
	ID                 int64                `json:"id"`
	CartID             int64                `json:"cart_id"`
	ProductVariationID int64                `json:"product_variation_id"`
	Quantity           int                  `json:"quantity"`
	Product            catalog.ProductDTO   `json:"product"`
	Variation          catalog.VariationDTO `json:"variation"`
	TotalPrice         decimal.Decimal      `json:"total_price"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// CartDTO is the outward shape of a session's cart.
type CartDTO struct {
	SessionID string          `json:"session_id"`
	Items     []ItemDetails   `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// UpdateOutcome tags what an absolute-quantity update did to the line.
type UpdateOutcome string

const (
	// ItemUpdated means the line's quantity was set to the requested value.
	ItemUpdated UpdateOutcome = "updated"
	// ItemRemoved means a zero quantity deleted the line.
	ItemRemoved UpdateOutcome = "removed"
)

// UpdateResult reports the outcome of UpdateItem. Item is populated only for
// ItemUpdated.
type UpdateResult struct {
	Outcome UpdateOutcome `json:"outcome"`
	Item    *ItemDetails  `json:"item,omitempty"`
}

// RemoveResult reports whether RemoveItem deleted a line.
type RemoveResult struct {
	Success bool `json:"success"`
}

func newItemDetails(item *models.CartItem) (*ItemDetails, error) {
	if item.Variation == nil || item.Variation.Product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart item is missing catalog data")
	}
	return &ItemDetails{
		ID:                 item.ID,
		CartID:             item.CartID,
		ProductVariationID: item.ProductVariationID,
		Quantity:           item.Quantity,
		Product:            catalog.NewProductDTO(item.Variation.Product),
		Variation:          catalog.NewVariationDTO(item.Variation),
		TotalPrice:         LineTotal(item.Variation.Product.BasePrice, item.Variation.PriceAdjustment, item.Quantity),
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}, nil
}

func newCartDTO(sessionID string, rows []models.CartItem) (*CartDTO, error) {
	items := make([]ItemDetails, 0, len(rows))
	subtotal := decimal.Zero
	for i := range rows {
		details, err := newItemDetails(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *details)
		subtotal = subtotal.Add(details.TotalPrice)
	}
	return &CartDTO{SessionID: sessionID, Items: items, Subtotal: subtotal}, nil
}
