package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/wearloom/storefront-backend/pkg/db"
	"github.com/wearloom/storefront-backend/pkg/db/models"
	pkgerrors "github.com/wearloom/storefront-backend/pkg/errors"
	"github.com/wearloom/storefront-backend/pkg/pagination"
)

// Service exposes catalog management and read operations.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	CreateVariation(ctx context.Context, input CreateVariationInput) (*VariationDTO, error)
	GetProduct(ctx context.Context, id int64) (*ProductWithVariationsDTO, error)
	ListProducts(ctx context.Context, input ListProductsInput) ([]ProductDTO, error)
	GetVariation(ctx context.Context, id int64) (*VariationDTO, error)
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name        string
	Description *string
	BasePrice   decimal.Decimal
	Category    string
	ImageURL    *string
}

// CreateVariationInput holds the validated payload to create a variation.
type CreateVariationInput struct {
	ProductID       int64
	Size            string
	Color           string
	PriceAdjustment decimal.Decimal
	StockQuantity   int
	SKU             string
}

// ListProductsInput narrows product listings.
type ListProductsInput struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Limit    int
	Offset   int
}

type service struct {
	repo *Repository
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// CreateProduct validates and inserts a catalog product.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product category is required")
	}
	if !input.BasePrice.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "base_price must be positive")
	}

	product := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		BasePrice:   input.BasePrice.Round(2),
		Category:    strings.TrimSpace(input.Category),
		ImageURL:    input.ImageURL,
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist product")
	}

	dto := NewProductDTO(created)
	return &dto, nil
}

// CreateVariation validates and inserts a variation for an existing product.
func (s *service) CreateVariation(ctx context.Context, input CreateVariationInput) (*VariationDTO, error) {
	if strings.TrimSpace(input.SKU) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sku is required")
	}
	if input.StockQuantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock_quantity cannot be negative")
	}

	if _, err := s.repo.FindProductByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	variation := &models.ProductVariation{
		ProductID:       input.ProductID,
		Size:            input.Size,
		Color:           input.Color,
		PriceAdjustment: input.PriceAdjustment.Round(2),
		StockQuantity:   input.StockQuantity,
		SKU:             strings.TrimSpace(input.SKU),
	}

	created, err := s.repo.CreateVariation(ctx, variation)
	if err != nil {
		if db.IsUniqueViolation(err, "sku") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "sku already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist variation")
	}

	dto := NewVariationDTO(created)
	return &dto, nil
}

// GetProduct returns the product with all its variations.
func (s *service) GetProduct(ctx context.Context, id int64) (*ProductWithVariationsDTO, error) {
	product, err := s.repo.GetProductDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return newProductWithVariationsDTO(product), nil
}

// ListProducts returns products matching the provided filters.
func (s *service) ListProducts(ctx context.Context, input ListProductsInput) ([]ProductDTO, error) {
	if input.MinPrice != nil && input.MinPrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "min_price cannot be negative")
	}
	if input.MaxPrice != nil && input.MaxPrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "max_price cannot be negative")
	}
	if input.MinPrice != nil && input.MaxPrice != nil && input.MinPrice.GreaterThan(*input.MaxPrice) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "min_price cannot exceed max_price")
	}

	rows, err := s.repo.ListProducts(ctx, ProductFilter{
		Category: strings.TrimSpace(input.Category),
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Page: pagination.Params{
			Limit:  input.Limit,
			Offset: input.Offset,
		},
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, NewProductDTO(&rows[i]))
	}
	return out, nil
}

// GetVariation returns a single variation, used by cart flows and admin tools.
func (s *service) GetVariation(ctx context.Context, id int64) (*VariationDTO, error) {
	variation, err := s.repo.FindVariationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product variation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load variation")
	}
	dto := NewVariationDTO(variation)
	return &dto, nil
}
