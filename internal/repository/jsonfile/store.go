// Package jsonfile persists each collection as a single pretty-printed JSON
// array document, rewritten wholesale on every mutation.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Dhanuka2552/food/internal/domain"
)

const (
	menuFile   = "menu.json"
	ordersFile = "orders.json"
)

// defaultMenu seeds menu.json at first startup.
var defaultMenu = []domain.MenuItem{
	{
		ID:          1,
		Name:        "Pizza",
		Price:       1200,
		Image:       "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=400&h=300&fit=crop",
		Description: "Delicious pizza with fresh ingredients",
	},
	{
		ID:          2,
		Name:        "Burger",
		Price:       600,
		Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400&h=300&fit=crop",
		Description: "Juicy burger with special sauce",
	},
	{
		ID:          3,
		Name:        "Pasta",
		Price:       900,
		Image:       "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=400&h=300&fit=crop",
		Description: "Creamy pasta with authentic flavors",
	},
}

// Store owns the data directory. A single mutex serializes every
// read-modify-write cycle so in-process writers cannot clobber each other.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates the data directory if needed and seeds both documents
// when absent: the fixed menu and an empty orders array.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{dir: dir}
	if err := seedIfMissing(s.path(menuFile), defaultMenu); err != nil {
		return nil, err
	}
	if err := seedIfMissing(s.path(ordersFile), []domain.Order{}); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func seedIfMissing[T any](path string, records []T) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := writeDocument(path, records); err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}
	return nil
}

// readDocument degrades to an empty collection on any read or parse
// failure: a missing or corrupt document means "no records", not an error.
func readDocument[T any](path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("failed to read document")
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Error().Err(err).Str("file", path).Msg("failed to parse document")
		return []T{}
	}
	return records
}

// writeDocument rewrites the whole collection through a temp file and
// rename, so readers never observe a partially written document.
func writeDocument[T any](path string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
