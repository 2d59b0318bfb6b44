package repository

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/infrastructure/records"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

type UserRepository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.User) error
	ReplaceUsers(ctx context.Context, users []domain.User) error
}

type userRepository struct {
	store records.Store
}

func NewUserRepository(store records.Store) UserRepository {
	return &userRepository{
		store: store,
	}
}

func (r *userRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.store.Load(ctx, records.Users)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, domain.User{
			Username: field(row, 0),
			Password: field(row, 1),
		})
	}

	return users, nil
}

// GetUserByUsername devolve o primeiro usuário com o nome informado, ou nil
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.Username == username {
			return &user, nil
		}
	}

	return nil, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user domain.User) error {
	if err := r.store.Append(ctx, records.Users, records.Row{user.Username, user.Password}); err != nil {
		return errors.Wrapf(err, "create user %s", user.Username)
	}
	return nil
}

// ReplaceUsers reescreve a coleção de usuários de uma vez
func (r *userRepository) ReplaceUsers(ctx context.Context, users []domain.User) error {
	rows := make([]records.Row, 0, len(users))
	for _, user := range users {
		rows = append(rows, records.Row{user.Username, user.Password})
	}

	if err := r.store.Rewrite(ctx, records.Users, rows); err != nil {
		return errors.Wrap(err, "replace users")
	}
	return nil
}
