package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/internal/session"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/recording"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody lê o JSON da requisição; em caso de falha já responde VAL_001
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
		return false
	}
	return true
}

// handleServiceError traduz os erros dos casos de uso para a resposta padronizada
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		authErr   *authenticating.AuthError
		recordErr *recording.RecordError
		reportErr *reporting.ReportError
	)

	switch {
	case errors.As(err, &authErr):
		logger.Warn("Falha de autenticação")
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), usernameDetails(authErr.Username))
	case errors.As(err, &recordErr):
		logger.Warn("Falha ao registrar dados")
		apiErrors.WriteError(w, recordErr.Code, recordErr.Error(), nil)
	case errors.As(err, &reportErr):
		logger.Warn("Falha ao gerar análise")
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
	case errors.Is(err, session.ErrUnknownAction):
		apiErrors.WriteError(w, apiErrors.ErrUnknownAction, err.Error(), nil)
	case errors.Is(err, session.ErrMissingParam):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, session.ErrInvalidPayload):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		logger.Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func usernameDetails(username string) any {
	if username == "" {
		return nil
	}
	return map[string]any{"username": username}
}
