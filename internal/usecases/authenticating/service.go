package authenticating

//go:generate mockgen -source=service.go -destination=mocks/authenticator.go -package=mocks

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type Authenticator interface {
	LoginUser(ctx context.Context, username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	CreateUser(ctx context.Context, username, password string) (*domain.User, error)
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

// LoginUser confere as credenciais e devolve um JWT assinado
func (s *Service) LoginUser(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "username and password are required")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if user == nil {
		log.ForContext(ctx).WithField("user_name", username).Warn("Tentativa de login com usuário inexistente")
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, username, "")
	}

	if !passwordMatches(user.Password, password) {
		log.ForContext(ctx).WithField("user_name", username).Warn("Senha incorreta")
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, username, "")
	}

	token, err := s.generateJWT(user.Username)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "error generating token")
	}

	log.ForContext(ctx).WithField("user_name", username).Info("Login realizado")
	return token, nil
}

// passwordMatches aceita hashes bcrypt e, para linhas legadas, texto puro
func passwordMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func (s *Service) generateJWT(username string) (string, error) {
	now := s.now()
	claims := domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// CreateUser cadastra um usuário com a senha em hash bcrypt
func (s *Service) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "username and password are required")
	}

	if err := ValidatePasswordStrength(password); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInvalidFormat, "")
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, NewUserAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, username, "")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "error hashing password")
	}

	user := domain.User{Username: username, Password: string(hashed)}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithField("user_name", username).Info("Usuário criado")
	return &user, nil
}

// ChangePassword troca a senha do próprio usuário e reescreve a coleção de
// usuários de uma vez. Linhas legadas em texto puro passam a ter hash.
func (s *Service) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "current and new password are required")
	}
	if currentPassword == newPassword {
		return NewAuthError(ErrSamePassword, apiErrors.ErrInvalidFormat, "")
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return NewAuthError(err, apiErrors.ErrInvalidFormat, "")
	}

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	idx := -1
	for i, u := range users {
		if u.Username == username {
			idx = i
			break
		}
	}
	if idx < 0 {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, username, "")
	}

	if !passwordMatches(users[idx].Password, currentPassword) {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, username, "current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrInternalServer, "error hashing password")
	}
	users[idx].Password = string(hashed)

	if err := s.userRepo.ReplaceUsers(ctx, users); err != nil {
		return NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithField("user_name", username).Info("Senha alterada")
	return nil
}

// ValidatePasswordStrength exige ao menos 8 caracteres com letras e números
func ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: at least %d characters", ErrWeakPassword, minPasswordLength)
	}

	var hasLetter, hasNumber bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasNumber = true
		}
	}

	if !hasLetter || !hasNumber {
		return fmt.Errorf("%w: must mix letters and numbers", ErrWeakPassword)
	}

	return nil
}
