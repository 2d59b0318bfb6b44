package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrParse         = errors.New("amount is not a valid integer")
	ErrDateFormat    = errors.New("date does not match any known format")
	ErrUnknownBranch = errors.New("sale references an unknown branch")
	ErrEmptyInput    = errors.New("statistics requested over zero elements")
	ErrUnknownPolicy = errors.New("unknown branch join policy")
	ErrOverflow      = errors.New("sum exceeds the supported amount range")
)

// Error é um erro de agregação com o contexto da linha que o causou
type Error struct {
	Err   error  // Erro base
	Row   int    // Índice da linha no snapshot (-1 quando não se aplica)
	Value string // Valor que causou a falha
}

// Error implementa a interface error
func (e *Error) Error() string {
	if e.Row < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: row %d: %q", e.Err.Error(), e.Row, e.Value)
}

// Unwrap retorna o erro subjacente
func (e *Error) Unwrap() error {
	return e.Err
}

func newRowError(err error, row int, value string) *Error {
	return &Error{Err: err, Row: row, Value: value}
}
