package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/buntdb"
)

const (
	leadTable = "leads"

	// MemoryStore opens a store that lives only for the process.
	MemoryStore = ":memory:"
)

// Store persists accepted leads.
type Store interface {
	Save(ctx context.Context, lead Lead) error
}

// BuntStore keeps leads in a buntdb file. Keys embed the ULID so key order is
// submission order.
type BuntStore struct {
	db *buntdb.DB
}

// OpenStore opens (or creates) the buntdb file at path; MemoryStore keeps it
// in memory.
func OpenStore(path string) (*BuntStore, error) {
	if path == "" {
		path = MemoryStore
	}
	if path != MemoryStore {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("leads: create store dir: %w", err)
		}
	}
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("leads: open %s: %w", path, err)
	}
	return &BuntStore{db: db}, nil
}

// Close flushes and closes the database.
func (s *BuntStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save writes lead under its id.
func (s *BuntStore) Save(_ context.Context, lead Lead) error {
	if lead.ID == "" {
		return errors.New("leads: id is required")
	}
	raw, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("leads: marshal %s: %w", lead.ID, err)
	}
	err = s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(leadTable+":"+lead.ID, string(raw), nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("leads: save %s: %w", lead.ID, err)
	}
	return nil
}

// Recent returns up to limit leads, newest first. A limit of zero or less
// returns them all.
func (s *BuntStore) Recent(limit int) ([]Lead, error) {
	var out []Lead
	err := s.db.View(func(tx *buntdb.Tx) error {
		var decodeErr error
		err := tx.DescendKeys(leadTable+":*", func(_, val string) bool {
			var lead Lead
			if decodeErr = json.Unmarshal([]byte(val), &lead); decodeErr != nil {
				return false
			}
			out = append(out, lead)
			return limit <= 0 || len(out) < limit
		})
		if err != nil {
			return err
		}
		return decodeErr
	})
	if err != nil {
		return nil, fmt.Errorf("leads: recent: %w", err)
	}
	return out, nil
}
