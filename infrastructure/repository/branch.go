package repository

//go:generate mockgen -source=branch.go -destination=mocks/branch.go -package=mocks

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/infrastructure/records"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

type BranchRepository interface {
	ListBranches(ctx context.Context) ([]domain.Branch, error)
	AddBranch(ctx context.Context, branch domain.Branch) error
}

type branchRepository struct {
	store records.Store
}

func NewBranchRepository(store records.Store) BranchRepository {
	return &branchRepository{
		store: store,
	}
}

func (r *branchRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	rows, err := r.store.Load(ctx, records.Branches)
	if err != nil {
		return nil, errors.Wrap(err, "list branches")
	}

	branches := make([]domain.Branch, 0, len(rows))
	for _, row := range rows {
		branches = append(branches, domain.Branch{
			ID:       field(row, 0),
			Name:     field(row, 1),
			Location: field(row, 2),
		})
	}

	return branches, nil
}

func (r *branchRepository) AddBranch(ctx context.Context, branch domain.Branch) error {
	row := records.Row{branch.ID, branch.Name, branch.Location}
	if err := r.store.Append(ctx, records.Branches, row); err != nil {
		return errors.Wrapf(err, "add branch %s", branch.ID)
	}
	return nil
}
