package repository

//go:generate mockgen -source=sale.go -destination=mocks/sale.go -package=mocks

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/infrastructure/records"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

// SaleRepository dá acesso ao ledger de vendas. ListSales devolve um snapshot
// novo a cada chamada, com Amount e Date no texto persistido.
type SaleRepository interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
	AddSale(ctx context.Context, sale domain.Sale) error
}

type saleRepository struct {
	store records.Store
}

func NewSaleRepository(store records.Store) SaleRepository {
	return &saleRepository{
		store: store,
	}
}

func (r *saleRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	rows, err := r.store.Load(ctx, records.Sales)
	if err != nil {
		return nil, errors.Wrap(err, "list sales")
	}

	sales := make([]domain.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, domain.Sale{
			BranchID:  field(row, 0),
			ProductID: field(row, 1),
			Amount:    field(row, 2),
			Date:      field(row, 3),
		})
	}

	return sales, nil
}

func (r *saleRepository) AddSale(ctx context.Context, sale domain.Sale) error {
	row := records.Row{sale.BranchID, sale.ProductID, sale.Amount, sale.Date}
	if err := r.store.Append(ctx, records.Sales, row); err != nil {
		return errors.Wrapf(err, "add sale for branch %s", sale.BranchID)
	}
	return nil
}
