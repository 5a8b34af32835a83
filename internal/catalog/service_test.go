package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wearloom/storefront-backend/pkg/db/models"
	pkgerrors "github.com/wearloom/storefront-backend/pkg/errors"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(&models.Product{}, &models.ProductVariation{}))
	return conn
}

func newCatalogService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)
	return svc
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateProductValidation(t *testing.T) {
	svc := newCatalogService(t, setupCatalogTestDB(t))

	tests := []struct {
		name  string
		input CreateProductInput
	}{
		{name: "missing name", input: CreateProductInput{Category: "shirts", BasePrice: price("10.00")}},
		{name: "missing category", input: CreateProductInput{Name: "Tee", BasePrice: price("10.00")}},
		{name: "zero price", input: CreateProductInput{Name: "Tee", Category: "shirts"}},
		{name: "negative price", input: CreateProductInput{Name: "Tee", Category: "shirts", BasePrice: price("-1.00")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tt.input)
			require.Error(t, err)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
		})
	}
}

func TestCreateProductAndGetWithVariations(t *testing.T) {
	conn := setupCatalogTestDB(t)
	svc := newCatalogService(t, conn)

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:      "Denim Slim Fit Jeans",
		BasePrice: price("89.99"),
		Category:  "pants",
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)

	_, err = svc.CreateVariation(context.Background(), CreateVariationInput{
		ProductID:       product.ID,
		Size:            "32",
		Color:           "Blue",
		PriceAdjustment: price("0.00"),
		StockQuantity:   15,
		SKU:             "JEANS-BLUE-32",
	})
	require.NoError(t, err)
	_, err = svc.CreateVariation(context.Background(), CreateVariationInput{
		ProductID:       product.ID,
		Size:            "34",
		Color:           "Black",
		PriceAdjustment: price("10.00"),
		StockQuantity:   0,
		SKU:             "JEANS-BLACK-34",
	})
	require.NoError(t, err)

	detail, err := svc.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)
	require.Len(t, detail.Variations, 2)
	assert.Equal(t, "JEANS-BLUE-32", detail.Variations[0].SKU)
	assert.Equal(t, 0, detail.Variations[1].StockQuantity, "zero stock variations stay listed")
}

func TestCreateVariationErrors(t *testing.T) {
	conn := setupCatalogTestDB(t)
	svc := newCatalogService(t, conn)

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:      "Wool Blend Sweater",
		BasePrice: price("65.99"),
		Category:  "shirts",
	})
	require.NoError(t, err)

	_, err = svc.CreateVariation(context.Background(), CreateVariationInput{
		ProductID: 404, Size: "M", Color: "Gray", SKU: "SWEATER-GRAY-M",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	_, err = svc.CreateVariation(context.Background(), CreateVariationInput{
		ProductID: product.ID, Size: "M", Color: "Gray", SKU: "SWEATER-GRAY-M", StockQuantity: 5,
	})
	require.NoError(t, err)

	_, err = svc.CreateVariation(context.Background(), CreateVariationInput{
		ProductID: product.ID, Size: "L", Color: "Gray", SKU: "SWEATER-GRAY-M", StockQuantity: 5,
	})
	require.Error(t, err, "duplicate sku must be rejected")
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())

	_, err = svc.CreateVariation(context.Background(), CreateVariationInput{
		ProductID: product.ID, Size: "S", Color: "Gray", SKU: "SWEATER-GRAY-S", StockQuantity: -1,
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestListProductsFilters(t *testing.T) {
	conn := setupCatalogTestDB(t)
	svc := newCatalogService(t, conn)

	seedData := []struct {
		name     string
		category string
		base     string
	}{
		{name: "Classic Cotton T-Shirt", category: "shirts", base: "19.99"},
		{name: "Wool Blend Sweater", category: "shirts", base: "65.99"},
		{name: "Leather Bomber Jacket", category: "jackets", base: "199.99"},
	}
	for _, row := range seedData {
		_, err := svc.CreateProduct(context.Background(), CreateProductInput{
			Name: row.name, Category: row.category, BasePrice: price(row.base),
		})
		require.NoError(t, err)
	}

	all, err := svc.ListProducts(context.Background(), ListProductsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	shirts, err := svc.ListProducts(context.Background(), ListProductsInput{Category: "shirts"})
	require.NoError(t, err)
	assert.Len(t, shirts, 2)

	minPrice := price("50.00")
	expensive, err := svc.ListProducts(context.Background(), ListProductsInput{MinPrice: &minPrice})
	require.NoError(t, err)
	assert.Len(t, expensive, 2)

	maxPrice := price("100.00")
	mid, err := svc.ListProducts(context.Background(), ListProductsInput{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, mid, 1)
	assert.Equal(t, "Wool Blend Sweater", mid[0].Name)

	badMin := price("200.00")
	_, err = svc.ListProducts(context.Background(), ListProductsInput{MinPrice: &badMin, MaxPrice: &maxPrice})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestGetProductNotFound(t *testing.T) {
	svc := newCatalogService(t, setupCatalogTestDB(t))

	_, err := svc.GetProduct(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestGetVariationNotFound(t *testing.T) {
	svc := newCatalogService(t, setupCatalogTestDB(t))

	_, err := svc.GetVariation(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
