package recording

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData = errors.New("missing required data")
	ErrInvalidDate         = errors.New("sale date does not match any known format")
	ErrGenerateID          = errors.New("error generating record ID")
	ErrDatabaseOperation   = errors.New("record store operation error")
)

// RecordError é um erro com contexto adicional para o registro de dados
type RecordError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *RecordError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func NewRecordError(err error, code string, details string) *RecordError {
	return &RecordError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
