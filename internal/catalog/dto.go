package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wearloom/storefront-backend/pkg/db/models"
)

// ProductDTO is the catalog's outward product shape.
type ProductDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Category    string          `json:"category"`
	ImageURL    *string         `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// VariationDTO is the outward shape of a purchasable variation.
type VariationDTO struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"product_id"`
	Size            string          `json:"size"`
	Color           string          `json:"color"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	StockQuantity   int             `json:"stock_quantity"`
	SKU             string          `json:"sku"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductWithVariationsDTO is a product plus all its variations.
type ProductWithVariationsDTO struct {
	ProductDTO
	Variations []VariationDTO `json:"variations"`
}

func NewProductDTO(product *models.Product) ProductDTO {
	return ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		BasePrice:   product.BasePrice,
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// NewVariationDTO converts a variation row into its outward shape.
func NewVariationDTO(variation *models.ProductVariation) VariationDTO {
	return VariationDTO{
		ID:              variation.ID,
		ProductID:       variation.ProductID,
		Size:            variation.Size,
		Color:           variation.Color,
		PriceAdjustment: variation.PriceAdjustment,
		StockQuantity:   variation.StockQuantity,
		SKU:             variation.SKU,
		CreatedAt:       variation.CreatedAt,
		UpdatedAt:       variation.UpdatedAt,
	}
}

func newProductWithVariationsDTO(product *models.Product) *ProductWithVariationsDTO {
	variations := make([]VariationDTO, 0, len(product.Variations))
	for i := range product.Variations {
		variations = append(variations, NewVariationDTO(&product.Variations[i]))
	}
	return &ProductWithVariationsDTO{
		ProductDTO: NewProductDTO(product),
		Variations: variations,
	}
}
