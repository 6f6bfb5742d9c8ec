package overlay

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RodReBer/barraca-toto/internal/model"
	bolt "go.etcd.io/bbolt"
)

const boltBucket = "catalog"

// BoltStore keeps the overlay blob in an embedded bbolt database, for
// deployments that want durability without an external database.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the bbolt database at path and ensures the
// catalog bucket exists.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bolt bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Load reads and decodes the blob under the fixed storage key.
func (s *BoltStore) Load(_ context.Context) ([]model.Product, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(boltBucket)).Get([]byte(StorageKey)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read overlay from bolt: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("failed to decode overlay from bolt: %w", err)
	}
	return products, nil
}

// Save replaces the blob under the fixed storage key.
func (s *BoltStore) Save(_ context.Context, products []model.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode overlay: %w", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(StorageKey), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to write overlay to bolt: %w", err)
	}
	return nil
}

// Close releases the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
