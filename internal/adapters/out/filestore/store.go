// Package filestore keeps orders in a single JSON document on disk.
//
// The whole collection is read at the start of a unit of work and written back
// atomically on commit, so a crash never leaves a half-written data file. A
// store-wide mutex serializes units of work within one process.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// Store owns the data file.
type Store struct {
	path   string
	mu     sync.Mutex
	clock  kernel.Clock
	logger *slog.Logger
}

// NewStore creates a store for the file at path. The file does not have to
// exist yet; it is created on the first commit.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		clock:  kernel.SystemClock(),
		logger: logger.With("component", "filestore", "path", path),
	}
}

// Path returns the location of the data file.
func (s *Store) Path() string {
	return s.path
}

// load reads every order. A missing file is an empty store. A file that cannot
// be decoded is quarantined next to the original and the store starts empty.
// The caller must hold s.mu.
func (s *Store) load(ctx context.Context) ([]*order.Order, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*order.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	orders, decodeErr := s.decode(data)
	if decodeErr == nil {
		return orders, nil
	}

	quarantine := fmt.Sprintf("%s.backup_%s", s.path, s.clock().Format("20060102_150405"))
	if err = copyFile(s.path, quarantine); err != nil {
		return nil, fmt.Errorf("quarantine corrupt data file: %w", errors.Join(decodeErr, err))
	}
	s.logger.WarnContext(ctx, "data file is corrupt, starting with an empty store",
		"error", decodeErr, "quarantine", quarantine)
	return []*order.Order{}, nil
}

func (s *Store) decode(data []byte) ([]*order.Order, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(doc.Orders))
	for i, r := range doc.Orders {
		o, err := toDomain(r, s.logger)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// save replaces the data file with orders. The caller must hold s.mu.
func (s *Store) save(orders []*order.Order) error {
	return writeDocument(s.path, orders, s.clock())
}

func writeDocument(path string, orders []*order.Order, savedAt time.Time) error {
	doc := document{
		Orders:  make([]orderRecord, 0, len(orders)),
		SavedAt: timestamp(savedAt),
	}
	for _, o := range orders {
		doc.Orders = append(doc.Orders, fromDomain(o))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// writeFileAtomic writes data to a temporary file in the target directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
