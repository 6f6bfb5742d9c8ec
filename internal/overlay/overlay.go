// Package overlay persists the admin-added product overlay. The overlay is a
// single JSON blob (read-whole, write-whole) stored under one fixed key,
// regardless of the backing driver.
package overlay

import (
	"context"

	"github.com/RodReBer/barraca-toto/internal/model"
)

// StorageKey is the logical key the overlay blob lives under. It matches the
// localStorage key used by the original storefront so exported blobs import
// as-is.
const StorageKey = "admin-products"

// Store is the persistence port for the overlay. Load returns the persisted
// records in insertion order; a missing blob is an empty overlay, not an
// error. Save replaces the whole blob.
type Store interface {
	Load(ctx context.Context) ([]model.Product, error)
	Save(ctx context.Context, products []model.Product) error
}
