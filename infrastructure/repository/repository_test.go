package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ledger-api/infrastructure/csvstore"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

func newStore(t *testing.T) (*csvstore.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := csvstore.New(dir)
	require.NoError(t, err)
	return store, dir
}

func TestBranchRepository(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	repo := NewBranchRepository(store)

	branches, err := repo.ListBranches(ctx)
	require.NoError(t, err)
	assert.Empty(t, branches)

	require.NoError(t, repo.AddBranch(ctx, domain.Branch{ID: "1", Name: "Colombo", Location: "Colombo 03"}))
	require.NoError(t, repo.AddBranch(ctx, domain.Branch{ID: "1", Name: "Colombo dup", Location: "Kollupitiya"}))

	branches, err = repo.ListBranches(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Branch{
		{ID: "1", Name: "Colombo", Location: "Colombo 03"},
		{ID: "1", Name: "Colombo dup", Location: "Kollupitiya"},
	}, branches)
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	repo := NewProductRepository(store)

	require.NoError(t, repo.AddProduct(ctx, domain.Product{ID: "P1", Name: "Rice 5kg"}))

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Product{{ID: "P1", Name: "Rice 5kg"}}, products)
}

func TestSaleRepository(t *testing.T) {
	ctx := context.Background()
	store, dir := newStore(t)
	repo := NewSaleRepository(store)

	require.NoError(t, repo.AddSale(ctx, domain.Sale{BranchID: "1", ProductID: "P1", Amount: "100", Date: "2024-01-08"}))

	// linhas curtas ficam com campos vazios
	f, err := os.OpenFile(filepath.Join(dir, "sales.csv"), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("2,P2\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	sales, err := repo.ListSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Sale{
		{BranchID: "1", ProductID: "P1", Amount: "100", Date: "2024-01-08"},
		{BranchID: "2", ProductID: "P2"},
	}, sales)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	repo := NewUserRepository(store)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T)
	}{
		{
			name: "usuário inexistente devolve nil",
			validate: func(t *testing.T) {
				user, err := repo.GetUserByUsername(ctx, "admin")
				require.NoError(t, err)
				assert.Nil(t, user)
			},
		},
		{
			name: "cria e busca usuário",
			setup: func() {
				require.NoError(t, repo.CreateUser(ctx, domain.User{Username: "admin", Password: "admin123"}))
			},
			validate: func(t *testing.T) {
				user, err := repo.GetUserByUsername(ctx, "admin")
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, "admin123", user.Password)
			},
		},
		{
			name: "substitui a coleção inteira",
			setup: func() {
				require.NoError(t, repo.CreateUser(ctx, domain.User{Username: "ana", Password: "x"}))
				require.NoError(t, repo.ReplaceUsers(ctx, []domain.User{
					{Username: "admin", Password: "novo"},
					{Username: "ana", Password: "x"},
				}))
			},
			validate: func(t *testing.T) {
				users, err := repo.ListUsers(ctx)
				require.NoError(t, err)
				assert.Equal(t, []domain.User{
					{Username: "admin", Password: "novo"},
					{Username: "ana", Password: "x"},
				}, users)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			tt.validate(t)
		})
	}
}
