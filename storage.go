package financeai

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage keys for the three durable records. Each record is a
// JSON-serialized array of the respective entity type.
const (
	TransactionsKey = "fa_transactions"
	GoalsKey        = "fa_goals"
	InvestmentsKey  = "fa_investments"
)

// Storage is the durable key-value record the store persists into.
// Read must return fs.ErrNotExist (wrapped is fine) for a missing key.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

// DirStorage stores each record as a pretty-printed JSON file under Dir.
type DirStorage struct {
	Dir string
}

func (d DirStorage) path(key string) string { return filepath.Join(d.Dir, key+".json") }

func (d DirStorage) Read(key string) ([]byte, error) {
	return os.ReadFile(d.path(key))
}

func (d DirStorage) Write(key string, data []byte) error {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return fmt.Errorf("could not create storage directory %q: %w", d.Dir, err)
	}
	if err := os.WriteFile(d.path(key), data, 0644); err != nil {
		return fmt.Errorf("could not write record %q: %w", key, err)
	}
	return nil
}
