// Package seed loads a sample clothing catalog for local development and
// demos. Seeding is additive and SKU-scoped: rerunning it skips variations
// whose SKUs already exist.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/wearloom/storefront-backend/pkg/db"
	"github.com/wearloom/storefront-backend/pkg/db/models"
	pkgerrors "github.com/wearloom/storefront-backend/pkg/errors"
)

// Result reports what a seeding run created.
type Result struct {
	Message           string `json:"message"`
	ProductsCreated   int    `json:"products_created"`
	VariationsCreated int    `json:"variations_created"`
}

type sampleProduct struct {
	name        string
	description string
	basePrice   string
	category    string
	imageURL    string
	variations  []sampleVariation
}

type sampleVariation struct {
	size          string
	color         string
	adjustment    string
	stockQuantity int
	sku           string
}

// Apply inserts the sample catalog inside one transaction. Each product and
// its variations are skipped when any of the product's SKUs already exist, so
// the handler stays safe to call more than once.
func Apply(ctx context.Context, client *db.Client) (*Result, error) {
	result := &Result{}
	err := client.WithTx(ctx, func(tx *gorm.DB) error {
		for _, sample := range sampleCatalog() {
			created, variations, err := applyProduct(ctx, tx, sample)
			if err != nil {
				return err
			}
			if created {
				result.ProductsCreated++
			}
			result.VariationsCreated += variations
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed sample catalog")
	}
	result.Message = "Sample products and variations seeded successfully"
	return result, nil
}

func applyProduct(ctx context.Context, tx *gorm.DB, sample sampleProduct) (bool, int, error) {
	skus := make([]string, 0, len(sample.variations))
	for _, v := range sample.variations {
		skus = append(skus, v.sku)
	}

	var existing int64
	if err := tx.WithContext(ctx).
		Model(&models.ProductVariation{}).
		Where("sku IN ?", skus).
		Count(&existing).Error; err != nil {
		return false, 0, fmt.Errorf("check existing skus for %q: %w", sample.name, err)
	}
	if existing > 0 {
		return false, 0, nil
	}

	basePrice, err := decimal.NewFromString(sample.basePrice)
	if err != nil {
		return false, 0, fmt.Errorf("parse base price for %q: %w", sample.name, err)
	}

	description := sample.description
	imageURL := sample.imageURL
	product := &models.Product{
		Name:        sample.name,
		Description: &description,
		BasePrice:   basePrice,
		Category:    sample.category,
		ImageURL:    &imageURL,
	}
	if err := tx.WithContext(ctx).Create(product).Error; err != nil {
		return false, 0, fmt.Errorf("insert product %q: %w", sample.name, err)
	}

	for _, v := range sample.variations {
		adjustment, err := decimal.NewFromString(v.adjustment)
		if err != nil {
			return false, 0, fmt.Errorf("parse adjustment for %q: %w", v.sku, err)
		}
		variation := &models.ProductVariation{
			ProductID:       product.ID,
			Size:            v.size,
			Color:           v.color,
			PriceAdjustment: adjustment,
			StockQuantity:   v.stockQuantity,
			SKU:             v.sku,
		}
		if err := tx.WithContext(ctx).Create(variation).Error; err != nil {
			return false, 0, fmt.Errorf("insert variation %q: %w", v.sku, err)
		}
	}
	return true, len(sample.variations), nil
}
