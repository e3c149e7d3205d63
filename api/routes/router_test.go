package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/ZOMBIEx-z/ClothingStore/internal/cart"
	"github.com/ZOMBIEx-z/ClothingStore/internal/catalog"
	checkoutsvc "github.com/ZOMBIEx-z/ClothingStore/internal/checkout"
	"github.com/ZOMBIEx-z/ClothingStore/internal/orders"
	"github.com/ZOMBIEx-z/ClothingStore/internal/session"
	"github.com/ZOMBIEx-z/ClothingStore/internal/upstream"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/config"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/enums"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/kv"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/logger"
)

const testSecret = "router-test-secret"

func mintToken(t *testing.T, username string, role enums.Role) string {
	t.Helper()
	claims := session.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

// newTestRouter wires real services against a fake marketplace API.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	marketplace := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/stores/":
			var store upstream.StoreCreate
			json.NewDecoder(r.Body).Decode(&store)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(upstream.Store{ID: 30, Name: store.Name})
		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/stores/") && strings.HasSuffix(r.URL.Path, "/products"):
			var product upstream.ProductCreate
			json.NewDecoder(r.Body).Decode(&product)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(upstream.Product{ID: 300, Name: product.Name, Price: product.Price, StoreID: 10})
		case r.URL.Path == "/stores/":
			json.NewEncoder(w).Encode([]upstream.Store{{ID: 10, Name: "Threadworks"}})
		case r.URL.Path == "/stores/my":
			json.NewEncoder(w).Encode([]upstream.Store{{ID: 10}, {ID: 20}})
		case strings.HasPrefix(r.URL.Path, "/orders/seller/store/"):
			switch r.URL.Path {
			case "/orders/seller/store/10":
				json.NewEncoder(w).Encode([]upstream.Order{
					{ID: 1, Status: enums.OrderStatusPending},
					{ID: 2, Status: enums.OrderStatusPending},
				})
			default:
				json.NewEncoder(w).Encode([]upstream.Order{
					{ID: 2, Status: enums.OrderStatusPending},
					{ID: 3, Status: enums.OrderStatusPending},
				})
			}
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "not found"})
		}
	}))
	t.Cleanup(marketplace.Close)

	cfg := &config.Config{
		App:  config.AppConfig{Env: config.AppEnvDev, Port: "0"},
		JWT:  config.JWTConfig{Secret: testSecret},
		Cart: config.CartConfig{ClearOnLogout: true},
	}
	logg := logger.New(logger.Options{Level: zerolog.Disabled})
	store := kv.NewMemory()

	client, err := upstream.New(config.UpstreamConfig{BaseURL: marketplace.URL}, nil)
	if err != nil {
		t.Fatalf("upstream client: %v", err)
	}

	cartService := cart.NewService(store, logg)
	return NewRouter(
		cfg,
		logg,
		store,
		nil,
		catalog.NewService(client),
		cartService,
		checkoutsvc.NewService(cartService, client, logg),
		orders.NewService(client, logg),
	)
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("X-Device-Id", "device-test")
	}
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		resp := doJSON(t, router, http.MethodGet, path, "", nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestPublicCatalogNeedsNoToken(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/stores", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCartRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/cart", "", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCartLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := mintToken(t, "bob", enums.RoleBuyer)

	add := map[string]any{
		"product_id": 1,
		"name":       "Hoodie",
		"unit_price": "45.00",
		"store_id":   10,
		"quantity":   2,
	}
	resp := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", token, add)
	if resp.Code != http.StatusOK {
		t.Fatalf("add: expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data struct {
			TotalAmount string `json:"total_amount"`
			TotalCount  int    `json:"total_count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.TotalCount != 2 || envelope.Data.TotalAmount != "90.00" {
		t.Fatalf("unexpected totals %+v", envelope.Data)
	}

	// logout clears the cart
	resp = doJSON(t, router, http.MethodPost, "/api/v1/session/logout", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("logout: expected 200 got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodGet, "/api/v1/cart", token, nil)
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.TotalCount != 0 {
		t.Fatalf("cart survived logout: %+v", envelope.Data)
	}
}

func TestSellerOrdersAggregationOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// a buyer token is rejected on seller routes
	resp := doJSON(t, router, http.MethodGet, "/api/v1/seller/orders", mintToken(t, "bob", enums.RoleBuyer), nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}

	token := mintToken(t, "alice", enums.RoleSeller)
	resp = doJSON(t, router, http.MethodGet, "/api/v1/seller/orders", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data []struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []int64{1, 2, 3}
	if len(envelope.Data) != len(want) {
		t.Fatalf("expected %d orders got %+v", len(want), envelope.Data)
	}
	for i, id := range want {
		if envelope.Data[i].ID != id {
			t.Fatalf("expected order %d at position %d, got %+v", id, i, envelope.Data)
		}
	}
}

func TestSellerStoreAndProductCreationOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// buyers cannot open stores
	resp := doJSON(t, router, http.MethodPost, "/api/v1/seller/stores", mintToken(t, "bob", enums.RoleBuyer), map[string]string{"name": "Bootleg"})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}

	token := mintToken(t, "alice", enums.RoleSeller)
	resp = doJSON(t, router, http.MethodPost, "/api/v1/seller/stores", token, map[string]string{"name": "Northside Knits"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create store: expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	var storeEnvelope struct {
		Data upstream.Store `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&storeEnvelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if storeEnvelope.Data.Name != "Northside Knits" {
		t.Fatalf("unexpected store %+v", storeEnvelope.Data)
	}

	product := map[string]any{"name": "Beanie", "description": "Wool", "price": "12.50"}
	resp = doJSON(t, router, http.MethodPost, "/api/v1/seller/stores/10/products", token, product)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create product: expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	// a non-positive price never reaches the marketplace
	resp = doJSON(t, router, http.MethodPost, "/api/v1/seller/stores/10/products", token, map[string]any{"name": "Beanie", "price": "0"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestStageAndCommitStatusOverHTTP(t *testing.T) {
	marketplaceCalls := 0
	marketplace := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/orders/"):
			marketplaceCalls++
			json.NewEncoder(w).Encode(upstream.Order{ID: 5, Status: enums.OrderStatusShipped})
		case r.URL.Path == "/stores/my":
			json.NewEncoder(w).Encode([]upstream.Store{{ID: 10}})
		case strings.HasPrefix(r.URL.Path, "/orders/seller/store/"):
			json.NewEncoder(w).Encode([]upstream.Order{{ID: 5, Status: enums.OrderStatusPending}})
		default:
			json.NewEncoder(w).Encode([]upstream.Store{})
		}
	}))
	defer marketplace.Close()

	cfg := &config.Config{
		App: config.AppConfig{Env: config.AppEnvDev, Port: "0"},
		JWT: config.JWTConfig{Secret: testSecret},
	}
	logg := logger.New(logger.Options{Level: zerolog.Disabled})
	store := kv.NewMemory()
	client, err := upstream.New(config.UpstreamConfig{BaseURL: marketplace.URL}, nil)
	if err != nil {
		t.Fatalf("upstream client: %v", err)
	}
	cartService := cart.NewService(store, logg)
	router := NewRouter(cfg, logg, store, nil,
		catalog.NewService(client),
		cartService,
		checkoutsvc.NewService(cartService, client, logg),
		orders.NewService(client, logg),
	)

	token := mintToken(t, "alice", enums.RoleSeller)

	// committing with nothing staged fails
	resp := doJSON(t, router, http.MethodPost, "/api/v1/seller/orders/5/status/commit", token, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	// staging before the order has shown up in a listing fails
	resp = doJSON(t, router, http.MethodPut, "/api/v1/seller/orders/5/status", token, map[string]string{"status": "SHIPPED"})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/seller/orders", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list: expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodPut, "/api/v1/seller/orders/5/status", token, map[string]string{"status": "SHIPPED"})
	if resp.Code != http.StatusOK {
		t.Fatalf("stage: expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/seller/orders/5/status/commit", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("commit: expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if marketplaceCalls != 1 {
		t.Fatalf("expected one upstream PATCH, got %d", marketplaceCalls)
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	router := newTestRouter(t)
	token := mintToken(t, "bob", enums.RoleBuyer)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/checkout", token, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestUnknownOrderStatusRejected(t *testing.T) {
	router := newTestRouter(t)
	token := mintToken(t, "alice", enums.RoleSeller)

	resp := doJSON(t, router, http.MethodPut, "/api/v1/seller/orders/5/status", token, map[string]string{"status": "TELEPORTED"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
