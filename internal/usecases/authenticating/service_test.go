package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{SecretKey: "test-secret", TokenTTL: time.Hour},
	}
}

func newService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	return NewService(repo, testConfig()).(*Service), repo
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "expected *AuthError, got %v", err)
	assert.Equal(t, code, authErr.Code)
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		setup    func(repo *mocks.MockUserRepository)
		validate func(t *testing.T, s *Service, token string, err error)
	}{
		{
			name:     "senha legada em texto puro",
			username: "admin",
			password: "admin123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(gomock.Any(), "admin").
					Return(&domain.User{Username: "admin", Password: "admin123"}, nil)
			},
			validate: func(t *testing.T, s *Service, token string, err error) {
				require.NoError(t, err)
				claims, err := s.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, "admin", claims.Username)
			},
		},
		{
			name:     "senha em hash bcrypt",
			username: "ana",
			password: "segredo42",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(gomock.Any(), "ana").
					Return(&domain.User{Username: "ana", Password: hash(t, "segredo42")}, nil)
			},
			validate: func(t *testing.T, s *Service, token string, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "senha incorreta",
			username: "admin",
			password: "admin124",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(gomock.Any(), "admin").
					Return(&domain.User{Username: "admin", Password: "admin123"}, nil)
			},
			validate: func(t *testing.T, s *Service, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assertCode(t, err, apiErrors.ErrInvalidCredentials)
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name:     "usuário inexistente",
			username: "ghost",
			password: "x",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, nil)
			},
			validate: func(t *testing.T, s *Service, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:     "campos vazios",
			username: " ",
			password: "x",
			setup:    func(repo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, s *Service, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name:     "falha no armazenamento",
			username: "admin",
			password: "x",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(nil, errors.New("io"))
			},
			validate: func(t *testing.T, s *Service, token string, err error) {
				assertCode(t, err, apiErrors.ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newService(t)
			tt.setup(repo)
			token, err := s.LoginUser(ctx, tt.username, tt.password)
			tt.validate(t, s, token, err)
		})
	}
}

func TestValidateToken(t *testing.T) {
	s, _ := newService(t)
	issued := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }

	token, err := s.generateJWT("admin")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	s.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assertCode(t, err, apiErrors.ErrExpiredToken)

	_, err = s.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{Username: "admin"})
	forged, err := other.SignedString([]byte("other-secret"))
	require.NoError(t, err)
	_, err = s.ValidateToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("grava hash bcrypt", func(t *testing.T) {
		s, repo := newService(t)
		repo.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(nil, nil)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u domain.User) error {
			assert.Equal(t, "ana", u.Username)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("segredo42")))
			return nil
		})

		user, err := s.CreateUser(ctx, "ana", "segredo42")
		require.NoError(t, err)
		assert.Equal(t, "ana", user.Username)
	})

	t.Run("usuário já existe", func(t *testing.T) {
		s, repo := newService(t)
		repo.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(&domain.User{Username: "ana"}, nil)

		_, err := s.CreateUser(ctx, "ana", "segredo42")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assertCode(t, err, apiErrors.ErrUserAlreadyExists)
	})

	t.Run("senha fraca", func(t *testing.T) {
		s, _ := newService(t)

		_, err := s.CreateUser(ctx, "ana", "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
		assertCode(t, err, apiErrors.ErrInvalidFormat)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("reescreve a coleção com o novo hash", func(t *testing.T) {
		s, repo := newService(t)
		repo.EXPECT().ListUsers(gomock.Any()).Return([]domain.User{
			{Username: "admin", Password: "admin123"},
			{Username: "ana", Password: "plain"},
		}, nil)
		repo.EXPECT().ReplaceUsers(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, users []domain.User) error {
			require.Len(t, users, 2)
			assert.Equal(t, "admin", users[0].Username)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("novaSenha1")))
			assert.Equal(t, domain.User{Username: "ana", Password: "plain"}, users[1])
			return nil
		})

		require.NoError(t, s.ChangePassword(ctx, "admin", "admin123", "novaSenha1"))
	})

	t.Run("senha atual incorreta", func(t *testing.T) {
		s, repo := newService(t)
		repo.EXPECT().ListUsers(gomock.Any()).Return([]domain.User{{Username: "admin", Password: "admin123"}}, nil)

		err := s.ChangePassword(ctx, "admin", "errada", "novaSenha1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		s, repo := newService(t)
		repo.EXPECT().ListUsers(gomock.Any()).Return([]domain.User{}, nil)

		err := s.ChangePassword(ctx, "ghost", "admin123", "novaSenha1")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assertCode(t, err, apiErrors.ErrUserNotFound)
	})

	t.Run("nova senha igual à atual", func(t *testing.T) {
		s, _ := newService(t)

		err := s.ChangePassword(ctx, "admin", "admin123", "admin123")
		assert.ErrorIs(t, err, ErrSamePassword)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.NoError(t, ValidatePasswordStrength("abcdefg1"))
	assert.ErrorIs(t, ValidatePasswordStrength("abc1"), ErrWeakPassword)
	assert.ErrorIs(t, ValidatePasswordStrength("abcdefgh"), ErrWeakPassword)
	assert.ErrorIs(t, ValidatePasswordStrength("12345678"), ErrWeakPassword)
}
