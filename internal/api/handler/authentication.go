package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/middleware"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := service.LoginUser(r.Context(), req.Username, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// handleLoginError não revela se o usuário existe
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	if authenticating.IsCredentialsError(err) {
		logrus.WithError(err).Warn("Tentativa de login inválida")
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Incorrect Username or Password.", nil)
		return
	}
	handleServiceError(w, r, err, "Error logging in")
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var req CreateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.CreateUser(r.Context(), req.Username, req.Password)
		if err != nil {
			handleServiceError(w, r, err, "Error creating user")
			return
		}

		writeJSON(w, r, http.StatusCreated, user)
	}
}

// ChangePassword altera a senha do próprio usuário autenticado
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ChangePassword")

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Unauthorized", nil)
			return
		}

		var req ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.ChangePassword(r.Context(), claims.Username, req.CurrentPassword, req.NewPassword); err != nil {
			handleServiceError(w, r, err, "Error changing password")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
