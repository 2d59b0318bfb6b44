package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-ledger-api/internal/ledger"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
)

var ErrLoadSnapshot = errors.New("error loading ledger snapshot")

// ReportError é um erro de análise com o código de API correspondente
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// fromLedgerError traduz as falhas de agregação para os códigos LED_*
func fromLedgerError(err error) *ReportError {
	code := apiErrors.ErrInternalServer
	switch {
	case errors.Is(err, ledger.ErrParse):
		code = apiErrors.ErrMalformedAmount
	case errors.Is(err, ledger.ErrDateFormat):
		code = apiErrors.ErrMalformedDate
	case errors.Is(err, ledger.ErrUnknownBranch):
		code = apiErrors.ErrUnknownBranch
	case errors.Is(err, ledger.ErrEmptyInput):
		code = apiErrors.ErrEmptyInput
	case errors.Is(err, ledger.ErrOverflow):
		code = apiErrors.ErrAmountOverflow
	}
	return &ReportError{Err: err, Code: code}
}
