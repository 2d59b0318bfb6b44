package repository

import (
	"github.com/vfg2006/sales-ledger-api/infrastructure/records"
)

// field devolve o campo i da linha, ou vazio para linhas incompletas
func field(row records.Row, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
