package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/wearloom/storefront-backend/internal/catalog"
	pkgerrors "github.com/wearloom/storefront-backend/pkg/errors"
)

type stubCatalogService struct {
	product   *catalog.ProductDTO
	detail    *catalog.ProductWithVariationsDTO
	variation *catalog.VariationDTO
	list      []catalog.ProductDTO
	err       error

	lastListInput catalog.ListProductsInput
}

func (s *stubCatalogService) CreateProduct(ctx context.Context, input catalog.CreateProductInput) (*catalog.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubCatalogService) CreateVariation(ctx context.Context, input catalog.CreateVariationInput) (*catalog.VariationDTO, error) {
	return s.variation, s.err
}

func (s *stubCatalogService) GetProduct(ctx context.Context, id int64) (*catalog.ProductWithVariationsDTO, error) {
	return s.detail, s.err
}

func (s *stubCatalogService) ListProducts(ctx context.Context, input catalog.ListProductsInput) ([]catalog.ProductDTO, error) {
	s.lastListInput = input
	return s.list, s.err
}

func (s *stubCatalogService) GetVariation(ctx context.Context, id int64) (*catalog.VariationDTO, error) {
	return s.variation, s.err
}

func productsTestRouter(svc catalog.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/products", ListProducts(svc, nil))
	r.Post("/api/v1/products", CreateProduct(svc, nil))
	r.Get("/api/v1/products/{productId}", GetProduct(svc, nil))
	r.Post("/api/v1/products/{productId}/variations", CreateVariation(svc, nil))
	return r
}

func TestCreateProductSuccess(t *testing.T) {
	stub := &stubCatalogService{product: &catalog.ProductDTO{ID: 1, Name: "Classic Cotton T-Shirt"}}
	router := productsTestRouter(stub)

	body := `{"name":"Classic Cotton T-Shirt","base_price":"19.99","category":"shirts"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", resp.Code, resp.Body.String())
	}
}

func TestCreateProductMissingName(t *testing.T) {
	router := productsTestRouter(&stubCatalogService{})

	body := `{"base_price":"19.99","category":"shirts"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestListProductsForwardsFilters(t *testing.T) {
	stub := &stubCatalogService{list: []catalog.ProductDTO{}}
	router := productsTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=shirts&min_price=10.00&max_price=50.00&limit=5", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", resp.Code, resp.Body.String())
	}
	in := stub.lastListInput
	if in.Category != "shirts" || in.Limit != 5 {
		t.Fatalf("unexpected filters forwarded: %+v", in)
	}
	if in.MinPrice == nil || !in.MinPrice.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("min_price not forwarded: %+v", in.MinPrice)
	}
	if in.MaxPrice == nil || !in.MaxPrice.Equal(decimal.RequireFromString("50.00")) {
		t.Fatalf("max_price not forwarded: %+v", in.MaxPrice)
	}
}

func TestListProductsRejectsBadPriceFilter(t *testing.T) {
	router := productsTestRouter(&stubCatalogService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?min_price=cheap", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetProductNotFoundStatus(t *testing.T) {
	stub := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	router := productsTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/404", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeNotFound) {
		t.Fatalf("unexpected error code %q", envelope.Error.Code)
	}
}

func TestCreateVariationConflictStatus(t *testing.T) {
	stub := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeConflict, "sku already exists")}
	router := productsTestRouter(stub)

	body := `{"size":"M","color":"White","sku":"TSHIRT-WHITE-M","stock_quantity":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/1/variations", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
}
