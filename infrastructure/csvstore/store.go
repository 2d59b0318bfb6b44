// Package csvstore persiste as coleções em arquivos CSV, um por coleção.
package csvstore

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/infrastructure/records"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

var _ records.Store = (*Store)(nil)

// New cria o store no diretório informado. O diretório precisa existir.
func New(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "csvstore: data dir %q", dir)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("csvstore: %q is not a directory", dir)
	}
	return &Store{dir: dir}, nil
}

// Path devolve o caminho do arquivo da coleção
func (s *Store) Path(c records.Collection) string {
	return filepath.Join(s.dir, string(c)+".csv")
}

// Load lê a coleção inteira, sem o cabeçalho. Arquivo ausente é coleção vazia.
func (s *Store) Load(ctx context.Context, c records.Collection) ([]records.Row, error) {
	if _, err := records.Header(c); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.Path(c))
	if errors.Is(err, os.ErrNotExist) {
		log.ForContext(ctx).WithField("collection", c).Debug("Arquivo inexistente, coleção vazia")
		return []records.Row{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "csvstore: open %s", c)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows := []records.Row{}
	first := true
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "csvstore: read %s", c)
		}
		if first {
			first = false
			continue
		}
		rows = append(rows, records.Row(fields))
	}

	return rows, nil
}

// Append acrescenta linhas ao fim do arquivo sem reescrever as existentes.
// O cabeçalho só é escrito quando o arquivo é novo ou vazio.
func (s *Store) Append(ctx context.Context, c records.Collection, rows ...records.Row) error {
	if err := records.Validate(c, rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.Path(c), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "csvstore: open %s", c)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrapf(err, "csvstore: stat %s", c)
	}

	writer := csv.NewWriter(f)
	if info.Size() == 0 {
		header, _ := records.Header(c)
		if err := writer.Write(header); err != nil {
			return errors.Wrapf(err, "csvstore: write header %s", c)
		}
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "csvstore: append %s", c)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "csvstore: flush %s", c)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"collection": c,
		"rows":       len(rows),
	}).Debug("Linhas acrescentadas")

	return f.Sync()
}

// Rewrite substitui a coleção inteira. Escreve um arquivo temporário no mesmo
// diretório e o renomeia sobre o original, que nunca fica ausente.
func (s *Store) Rewrite(ctx context.Context, c records.Collection, rows []records.Row) error {
	if err := records.Validate(c, rows); err != nil {
		return err
	}
	header, _ := records.Header(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+string(c)+"-*.csv.tmp")
	if err != nil {
		return errors.Wrapf(err, "csvstore: temp file %s", c)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "csvstore: write header %s", c)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "csvstore: rewrite %s", c)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "csvstore: flush %s", c)
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrapf(err, "csvstore: sync %s", c)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "csvstore: close %s", c)
	}
	if err := os.Rename(tmpName, s.Path(c)); err != nil {
		return errors.Wrapf(err, "csvstore: rename %s", c)
	}
	committed = true

	log.ForContext(ctx).WithFields(log.Fields{
		"collection": c,
		"rows":       len(rows),
	}).Info("Coleção reescrita")

	return nil
}
