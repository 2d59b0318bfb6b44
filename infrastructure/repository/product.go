package repository

//go:generate mockgen -source=product.go -destination=mocks/product.go -package=mocks

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/infrastructure/records"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	AddProduct(ctx context.Context, product domain.Product) error
}

type productRepository struct {
	store records.Store
}

func NewProductRepository(store records.Store) ProductRepository {
	return &productRepository{
		store: store,
	}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.store.Load(ctx, records.Products)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, domain.Product{
			ID:   field(row, 0),
			Name: field(row, 1),
		})
	}

	return products, nil
}

func (r *productRepository) AddProduct(ctx context.Context, product domain.Product) error {
	if err := r.store.Append(ctx, records.Products, records.Row{product.ID, product.Name}); err != nil {
		return errors.Wrapf(err, "add product %s", product.ID)
	}
	return nil
}
