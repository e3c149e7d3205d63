package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZOMBIEx-z/ClothingStore/internal/session"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/config"
	pkgerrors "github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/metrics"
)

// Client talks to the marketplace backend over HTTP. It forwards the caller's
// bearer token and maps upstream failures onto the gateway error taxonomy.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *metrics.UpstreamMetrics
}

// New builds a marketplace API client from config.
func New(cfg config.UpstreamConfig, m *metrics.UpstreamMetrics) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("upstream base url required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		metrics: m,
	}, nil
}

// FetchStores lists every store on the marketplace.
func (c *Client) FetchStores(ctx context.Context) ([]Store, error) {
	var out []Store
	if err := c.do(ctx, "fetch_stores", http.MethodGet, "/stores/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchSellerStores lists the stores owned by the authenticated seller.
func (c *Client) FetchSellerStores(ctx context.Context) ([]Store, error) {
	var out []Store
	if err := c.do(ctx, "fetch_seller_stores", http.MethodGet, "/stores/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStore opens a new store for the authenticated seller.
func (c *Client) CreateStore(ctx context.Context, store StoreCreate) (*Store, error) {
	var out Store
	if err := c.do(ctx, "create_store", http.MethodPost, "/stores/", store, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct adds a product to one of the seller's stores.
func (c *Client) CreateProduct(ctx context.Context, storeID int64, product ProductCreate) (*Product, error) {
	var out Product
	path := fmt.Sprintf("/stores/%d/products", storeID)
	if err := c.do(ctx, "create_product", http.MethodPost, path, product, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchStoreProducts lists a store's catalog.
func (c *Client) FetchStoreProducts(ctx context.Context, storeID int64) ([]Product, error) {
	var out []Product
	path := fmt.Sprintf("/stores/%d/products", storeID)
	if err := c.do(ctx, "fetch_store_products", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchOrdersForStore lists orders that touch the given seller store.
func (c *Client) FetchOrdersForStore(ctx context.Context, storeID int64) ([]Order, error) {
	var out []Order
	path := fmt.Sprintf("/orders/seller/store/%d", storeID)
	if err := c.do(ctx, "fetch_store_orders", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchBuyerOrders lists the authenticated buyer's own orders.
func (c *Client) FetchBuyerOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, "fetch_buyer_orders", http.MethodGet, "/orders/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitOrder places an order from normalized cart lines. The backend freezes
// each line's price_at_order at creation.
func (c *Client) SubmitOrder(ctx context.Context, lines []OrderLine) (*Order, error) {
	var out Order
	if err := c.do(ctx, "submit_order", http.MethodPost, "/orders/create", lines, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus commits a seller's status change for one order.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status StatusUpdate) (*Order, error) {
	var out Order
	path := fmt.Sprintf("/orders/%d/status", orderID)
	if err := c.do(ctx, "update_order_status", http.MethodPatch, path, status, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build upstream request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := session.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	c.metrics.ObserveDuration(op, time.Since(start))
	if err != nil {
		c.metrics.IncFailure(op)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "call marketplace api")
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		c.metrics.IncFailure(op)
		return mapStatusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.metrics.IncFailure(op)
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode upstream response")
		}
	}

	c.metrics.IncSuccess(op)
	return nil
}

// detailEnvelope matches the upstream error body.
type detailEnvelope struct {
	Detail string `json:"detail"`
}

func mapStatusError(resp *http.Response) error {
	var envelope detailEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&envelope)
	detail := strings.TrimSpace(envelope.Detail)

	code := pkgerrors.CodeDependency
	message := "marketplace api error"
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code, message = pkgerrors.CodeValidation, "marketplace rejected the request"
	case http.StatusUnauthorized:
		code, message = pkgerrors.CodeUnauthorized, "marketplace session rejected"
	case http.StatusForbidden:
		code, message = pkgerrors.CodeForbidden, "marketplace denied access"
	case http.StatusNotFound:
		code, message = pkgerrors.CodeNotFound, "marketplace resource not found"
	}
	if detail != "" {
		message = detail
	}

	err := pkgerrors.New(code, message)
	if code == pkgerrors.CodeDependency {
		err = err.WithDetails(map[string]any{"status": resp.StatusCode})
	}
	return err
}
