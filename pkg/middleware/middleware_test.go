package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func okHandler(t *testing.T, wantUser string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantUser != "" {
			claims, ok := ClaimsFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, wantUser, claims.Username)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(a *mocks.MockAuthenticator)
		wantStatus int
		wantUser   string
		wantBody   string
	}{
		{name: "rota pública sem token", path: "/v1/login", wantStatus: http.StatusNoContent},
		{name: "healthcheck sem token", path: "/healthcheck", wantStatus: http.StatusNoContent},
		{name: "sem cabeçalho", path: "/v1/branches", wantStatus: http.StatusUnauthorized, wantBody: apiErrors.ErrInvalidToken},
		{name: "sem Bearer", path: "/v1/branches", header: "Token abc", wantStatus: http.StatusUnauthorized, wantBody: apiErrors.ErrInvalidToken},
		{
			name:   "token expirado",
			path:   "/v1/branches",
			header: "Bearer old",
			setup: func(a *mocks.MockAuthenticator) {
				a.EXPECT().ValidateToken("old").Return(nil, authenticating.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "token inválido",
			path:   "/v1/branches",
			header: "Bearer forged",
			setup: func(a *mocks.MockAuthenticator) {
				a.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "token válido",
			path:   "/v1/branches",
			header: "Bearer good",
			setup: func(a *mocks.MockAuthenticator) {
				a.EXPECT().ValidateToken("good").Return(&domain.Claims{Username: "admin"}, nil)
			},
			wantStatus: http.StatusNoContent,
			wantUser:   "admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mocks.NewMockAuthenticator(gomock.NewController(t))
			if tt.setup != nil {
				tt.setup(auth)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler(t, tt.wantUser)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	log.SetupTestLogger()

	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 2, "/v1/login")
	rl.now = func() time.Time { return now }
	h := rl.Middleware()(okHandler(t, ""))

	do := func(path, addr string) int {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, do("/v1/login", "10.0.0.1:5000"))
	assert.Equal(t, http.StatusNoContent, do("/v1/login", "10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, do("/v1/login", "10.0.0.1:5002"))

	// outro IP tem o próprio balde
	assert.Equal(t, http.StatusNoContent, do("/v1/login", "10.0.0.2:5000"))
	// rotas fora da lista não são limitadas
	assert.Equal(t, http.StatusNoContent, do("/v1/branches", "10.0.0.1:5003"))

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, do("/v1/login", "10.0.0.1:5004"))

	now = now.Add(limiterIdleTTL + time.Minute)
	do("/v1/login", "10.0.0.3:5000")
	rl.mu.Lock()
	assert.Len(t, rl.visitors, 1)
	rl.mu.Unlock()
}

func TestLoggingAndPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })
	h := LoggingMiddleware()(LogPanicMiddleware()(panicking))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/total", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
	assert.NotEmpty(t, rec.Header().Get(CorrelationHeader))
}

func TestCors(t *testing.T) {
	h := Cors()(okHandler(t, ""))

	req := httptest.NewRequest(http.MethodOptions, "/v1/branches", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/branches", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
