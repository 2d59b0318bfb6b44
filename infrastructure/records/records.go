// Package records define o contrato de persistência das coleções do ledger:
// listas ordenadas de linhas, cada linha uma lista de campos texto.
package records

import (
	"context"
	"errors"
	"fmt"
)

// Collection identifica uma das coleções persistidas
type Collection string

const (
	Users    Collection = "users"
	Branches Collection = "branches"
	Products Collection = "products"
	Sales    Collection = "sales"
)

// Row é uma linha de uma coleção, com os campos na ordem do cabeçalho
type Row []string

var ErrUnknownCollection = errors.New("unknown collection")

var headers = map[Collection][]string{
	Users:    {"Username", "Password"},
	Branches: {"Branch ID", "Branch Name", "Location"},
	Products: {"Product ID", "Product Name"},
	Sales:    {"Branch ID", "Product ID", "Amount Sold", "Date"},
}

// Store é o contrato consumido pelos repositórios.
// Load devolve as linhas sem o cabeçalho; Append nunca reescreve linhas
// existentes; Rewrite substitui a coleção inteira de forma atômica.
type Store interface {
	Load(ctx context.Context, c Collection) ([]Row, error)
	Append(ctx context.Context, c Collection, rows ...Row) error
	Rewrite(ctx context.Context, c Collection, rows []Row) error
}

// All retorna as coleções conhecidas
func All() []Collection {
	return []Collection{Users, Branches, Products, Sales}
}

// Header retorna os nomes das colunas da coleção
func Header(c Collection) ([]string, error) {
	h, ok := headers[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
	return h, nil
}

// Validate confere se as linhas têm a mesma quantidade de campos do cabeçalho
func Validate(c Collection, rows []Row) error {
	h, err := Header(c)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) != len(h) {
			return fmt.Errorf("%s row %d: expected %d fields, got %d", c, i, len(h), len(row))
		}
	}
	return nil
}
