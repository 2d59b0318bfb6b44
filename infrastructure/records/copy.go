package records

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

// Copy substitui as coleções de dst pelo conteúdo de src e devolve quantas
// linhas foram copiadas por coleção. Linhas com menos campos que o cabeçalho
// são completadas com vazio; campos excedentes são descartados com um aviso.
func Copy(ctx context.Context, src, dst Store, collections ...Collection) (map[Collection]int, error) {
	if len(collections) == 0 {
		collections = All()
	}

	copied := make(map[Collection]int, len(collections))
	for _, c := range collections {
		startTime := time.Now()
		logger := log.ForContext(ctx).WithField("collection", string(c))

		h, err := Header(c)
		if err != nil {
			return copied, err
		}

		rows, err := src.Load(ctx, c)
		if err != nil {
			return copied, fmt.Errorf("load %s: %w", c, err)
		}

		normalized := make([]Row, len(rows))
		for i, row := range rows {
			if len(row) > len(h) {
				logger.WithFields(log.Fields{
					"row":            i,
					"dropped_fields": strings.Join(row[len(h):], ","),
				}).Warn("Linha com mais campos que o cabeçalho; excedentes descartados")
			}
			normalized[i] = fit(row, len(h))
		}

		if err := dst.Rewrite(ctx, c, normalized); err != nil {
			return copied, fmt.Errorf("rewrite %s: %w", c, err)
		}

		copied[c] = len(normalized)
		logger.WithFields(log.Fields{
			"rows":        len(normalized),
			"duration_ms": time.Since(startTime).Milliseconds(),
		}).Info("Coleção copiada")
	}

	return copied, nil
}

func fit(row Row, n int) Row {
	out := make(Row, n)
	copy(out, row)
	return out
}
