package blogfactory

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/buntdb"
)

const (
	postTable   = "posts"
	tupleTable  = "tuples"
	postsByTime = "posts_created"

	// MemoryRegistry opens a registry that lives only for the process.
	MemoryRegistry = ":memory:"
)

// Record is what the registry remembers about a written post.
type Record struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Template  string `json:"template"`
	Industry  string `json:"industry"`
	Service   string `json:"service"`
	City      string `json:"city"`
	CreatedAt int64  `json:"created_at"`
}

// Tuple returns the composition inputs of the record.
func (r Record) Tuple() Tuple {
	return Tuple{Template: r.Template, Industry: r.Industry, Service: r.Service, City: r.City}
}

// Registry persists generated slugs and tuples across runs.
type Registry struct {
	db *buntdb.DB
}

// OpenRegistry opens (or creates) the buntdb file at path; MemoryRegistry keeps
// it in memory.
func OpenRegistry(path string) (*Registry, error) {
	if path == "" {
		path = MemoryRegistry
	}
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("registry: open %s: %w", path, err)
	}
	if err := db.CreateIndex(postsByTime, postTable+":*", buntdb.IndexJSON("created_at")); err != nil && !errors.Is(err, buntdb.ErrIndexExists) {
		db.Close()
		return nil, fmt.Errorf("registry: create index: %w", err)
	}
	return &Registry{db: db}, nil
}

// Close flushes and closes the database.
func (r *Registry) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Lookup returns the record stored for slug.
func (r *Registry) Lookup(slug string) (Record, bool, error) {
	var rec Record
	found := false
	err := r.db.View(func(tx *buntdb.Tx) error {
		val, err := tx.Get(postTable + ":" + slug)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return json.Unmarshal([]byte(val), &rec)
	})
	if err != nil {
		return Record{}, false, fmt.Errorf("registry: lookup %s: %w", slug, err)
	}
	return rec, found, nil
}

// TupleSlug returns the slug first written for tuple, if any.
func (r *Registry) TupleSlug(t Tuple) (string, bool, error) {
	var slug string
	err := r.db.View(func(tx *buntdb.Tx) error {
		val, err := tx.Get(tupleTable + ":" + t.Key())
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		}
		slug = val
		return err
	})
	if err != nil {
		return "", false, fmt.Errorf("registry: tuple %s: %w", t.Key(), err)
	}
	return slug, slug != "", nil
}

// Put stores rec under its slug and claims its tuple unless another slug
// already holds it.
func (r *Registry) Put(rec Record) error {
	if rec.Slug == "" {
		return errors.New("registry: slug is required")
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().UTC().UnixNano()
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("registry: marshal %s: %w", rec.Slug, err)
	}
	return r.db.Update(func(tx *buntdb.Tx) error {
		if _, _, err := tx.Set(postTable+":"+rec.Slug, string(raw), nil); err != nil {
			return err
		}
		key := tupleTable + ":" + rec.Tuple().Key()
		if _, err := tx.Get(key); errors.Is(err, buntdb.ErrNotFound) {
			_, _, err = tx.Set(key, rec.Slug, nil)
			return err
		}
		return nil
	})
}

// List returns every record, oldest first.
func (r *Registry) List() ([]Record, error) {
	out, err := r.scan(false, 0)
	if err != nil {
		return nil, fmt.Errorf("registry: list: %w", err)
	}
	return out, nil
}

// Recent returns up to limit records, newest first. A limit of zero or less
// returns them all.
func (r *Registry) Recent(limit int) ([]Record, error) {
	out, err := r.scan(true, limit)
	if err != nil {
		return nil, fmt.Errorf("registry: recent: %w", err)
	}
	return out, nil
}

func (r *Registry) scan(desc bool, limit int) ([]Record, error) {
	var out []Record
	err := r.db.View(func(tx *buntdb.Tx) error {
		var decodeErr error
		iter := func(_, val string) bool {
			var rec Record
			if decodeErr = json.Unmarshal([]byte(val), &rec); decodeErr != nil {
				return false
			}
			out = append(out, rec)
			return limit <= 0 || len(out) < limit
		}
		var err error
		if desc {
			err = tx.Descend(postsByTime, iter)
		} else {
			err = tx.Ascend(postsByTime, iter)
		}
		if err != nil {
			return err
		}
		return decodeErr
	})
	return out, err
}

// Count returns the number of recorded posts.
func (r *Registry) Count() (int, error) {
	n := 0
	err := r.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend(postsByTime, func(_, _ string) bool {
			n++
			return true
		})
	})
	return n, err
}
