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

	"github.com/wearloom/storefront-backend/internal/cart"
	pkgerrors "github.com/wearloom/storefront-backend/pkg/errors"
)

type stubCartService struct {
	item         *cart.ItemDetails
	dto          *cart.CartDTO
	updateResult *cart.UpdateResult
	removeResult *cart.RemoveResult
	err          error

	lastAddInput    cart.AddItemInput
	lastUpdateInput cart.UpdateItemInput
	lastSessionID   string
	lastRemovedID   int64
}

func (s *stubCartService) AddItem(ctx context.Context, in cart.AddItemInput) (*cart.ItemDetails, error) {
	s.lastAddInput = in
	return s.item, s.err
}

func (s *stubCartService) GetCart(ctx context.Context, sessionID string) (*cart.CartDTO, error) {
	s.lastSessionID = sessionID
	return s.dto, s.err
}

func (s *stubCartService) UpdateItem(ctx context.Context, in cart.UpdateItemInput) (*cart.UpdateResult, error) {
	s.lastUpdateInput = in
	return s.updateResult, s.err
}

func (s *stubCartService) RemoveItem(ctx context.Context, itemID int64) (*cart.RemoveResult, error) {
	s.lastRemovedID = itemID
	return s.removeResult, s.err
}

func cartTestRouter(svc cart.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/cart", GetCart(svc, nil))
	r.Post("/api/v1/cart/items", AddCartItem(svc, nil))
	r.Patch("/api/v1/cart/items/{itemId}", UpdateCartItem(svc, nil))
	r.Delete("/api/v1/cart/items/{itemId}", RemoveCartItem(svc, nil))
	return r
}

func TestAddCartItemSuccess(t *testing.T) {
	stub := &stubCartService{item: &cart.ItemDetails{
		ID:                 1,
		Quantity:           2,
		ProductVariationID: 9,
		TotalPrice:         decimal.RequireFromString("43.98"),
	}}
	router := cartTestRouter(stub)

	body := `{"session_id":"sess-1","product_variation_id":9,"quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", resp.Code, resp.Body.String())
	}
	if stub.lastAddInput.SessionID != "sess-1" || stub.lastAddInput.VariationID != 9 || stub.lastAddInput.Quantity != 2 {
		t.Fatalf("unexpected input forwarded: %+v", stub.lastAddInput)
	}

	var envelope struct {
		Data cart.ItemDetails `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != 1 {
		t.Fatalf("unexpected item id %d", envelope.Data.ID)
	}
}

func TestAddCartItemRejectsBadBody(t *testing.T) {
	router := cartTestRouter(&stubCartService{})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing session", body: `{"product_variation_id":9,"quantity":2}`},
		{name: "zero quantity", body: `{"session_id":"s","product_variation_id":9,"quantity":0}`},
		{name: "unknown field", body: `{"session_id":"s","product_variation_id":9,"quantity":1,"color":"red"}`},
		{name: "not json", body: `not-json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(tt.body))
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d body=%s", resp.Code, resp.Body.String())
			}
		})
	}
}

func TestAddCartItemUnknownVariation(t *testing.T) {
	stub := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product variation not found")}
	router := cartTestRouter(stub)

	body := `{"session_id":"sess-1","product_variation_id":404,"quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestGetCartRequiresSessionID(t *testing.T) {
	router := cartTestRouter(&stubCartService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetCartSuccess(t *testing.T) {
	stub := &stubCartService{dto: &cart.CartDTO{
		SessionID: "sess-1",
		Items:     []cart.ItemDetails{},
		Subtotal:  decimal.Zero,
	}}
	router := cartTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart?session_id=sess-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.lastSessionID != "sess-1" {
		t.Fatalf("session id not forwarded, got %q", stub.lastSessionID)
	}

	var envelope struct {
		Data struct {
			Items []json.RawMessage `json:"items"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Items == nil {
		t.Fatal("items must serialize as an empty array, not null")
	}
}

func TestUpdateCartItemForwardsResult(t *testing.T) {
	stub := &stubCartService{updateResult: &cart.UpdateResult{Outcome: cart.ItemRemoved}}
	router := cartTestRouter(stub)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/12", strings.NewReader(`{"quantity":0}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", resp.Code, resp.Body.String())
	}
	if stub.lastUpdateInput.ItemID != 12 || stub.lastUpdateInput.Quantity != 0 {
		t.Fatalf("unexpected input forwarded: %+v", stub.lastUpdateInput)
	}

	var envelope struct {
		Data cart.UpdateResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Outcome != cart.ItemRemoved {
		t.Fatalf("unexpected outcome %q", envelope.Data.Outcome)
	}
}

func TestUpdateCartItemRequiresQuantity(t *testing.T) {
	router := cartTestRouter(&stubCartService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/12", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestUpdateCartItemRejectsBadID(t *testing.T) {
	router := cartTestRouter(&stubCartService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/abc", strings.NewReader(`{"quantity":1}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestRemoveCartItemAlwaysSucceeds(t *testing.T) {
	stub := &stubCartService{removeResult: &cart.RemoveResult{Success: false}}
	router := cartTestRouter(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/99", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.lastRemovedID != 99 {
		t.Fatalf("item id not forwarded, got %d", stub.lastRemovedID)
	}

	var envelope struct {
		Data cart.RemoveResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Success {
		t.Fatal("expected success=false for absent item")
	}
}
