package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "amount malformed", code: ErrMalformedAmount, wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown branch", code: ErrUnknownBranch, wantStatus: http.StatusUnprocessableEntity},
		{name: "missing data", code: ErrMissingRequiredData, wantStatus: http.StatusBadRequest},
		{name: "rate limited", code: ErrTooManyRequests, wantStatus: http.StatusTooManyRequests},
		{name: "unmapped code", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]any{"row": 2})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrEmptyInput).Code)

	apiErr := FromError(errors.New("boom"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, "boom", apiErr.Message)
}
