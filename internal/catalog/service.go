package catalog

import (
	"context"

	"github.com/ZOMBIEx-z/ClothingStore/internal/upstream"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/errors"
)

// storefrontGateway is the slice of the upstream client this package
// needs.
type storefrontGateway interface {
	FetchStores(ctx context.Context) ([]upstream.Store, error)
	FetchStoreProducts(ctx context.Context, storeID int64) ([]upstream.Product, error)
	FetchSellerStores(ctx context.Context) ([]upstream.Store, error)
	CreateStore(ctx context.Context, store upstream.StoreCreate) (*upstream.Store, error)
	CreateProduct(ctx context.Context, storeID int64, product upstream.ProductCreate) (*upstream.Product, error)
}

// Service proxies catalog browsing to the marketplace. It holds no
// state; its value is normalizing nil slices for the JSON layer and
// narrowing the upstream surface.
type Service struct {
	client storefrontGateway
}

func NewService(client storefrontGateway) *Service {
	return &Service{client: client}
}

// ListStores returns every store on the marketplace.
func (s *Service) ListStores(ctx context.Context) ([]upstream.Store, error) {
	stores, err := s.client.FetchStores(ctx)
	if err != nil {
		return nil, err
	}
	if stores == nil {
		stores = []upstream.Store{}
	}
	return stores, nil
}

// ListStoreProducts returns one store's catalog.
func (s *Service) ListStoreProducts(ctx context.Context, storeID int64) ([]upstream.Product, error) {
	products, err := s.client.FetchStoreProducts(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []upstream.Product{}
	}
	return products, nil
}

// ListSellerStores returns the stores owned by the authenticated seller.
func (s *Service) ListSellerStores(ctx context.Context) ([]upstream.Store, error) {
	stores, err := s.client.FetchSellerStores(ctx)
	if err != nil {
		return nil, err
	}
	if stores == nil {
		stores = []upstream.Store{}
	}
	return stores, nil
}

// CreateStore opens a new store under the authenticated seller.
func (s *Service) CreateStore(ctx context.Context, name string) (*upstream.Store, error) {
	return s.client.CreateStore(ctx, upstream.StoreCreate{Name: name})
}

// CreateProduct adds a product to one of the seller's stores. Ownership
// is enforced upstream; a foreign store comes back as forbidden.
func (s *Service) CreateProduct(ctx context.Context, storeID int64, product upstream.ProductCreate) (*upstream.Product, error) {
	if !product.Price.IsPositive() {
		return nil, errors.New(errors.CodeValidation, "price must be positive")
	}
	return s.client.CreateProduct(ctx, storeID, product)
}
