package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/RodReBer/barraca-toto/internal/model"
	"github.com/RodReBer/barraca-toto/internal/overlay"
)

const (
	// DefaultRelatedLimit is the default number of related products returned.
	DefaultRelatedLimit = 4

	// DefaultCollectionLimit is the default size of the curated views
	// (featured, discounted, new).
	DefaultCollectionLimit = 6
)

// RemoveResult is the outcome of a Remove call.
type RemoveResult int

const (
	// Removed means the product existed in the overlay and is gone.
	Removed RemoveResult = iota
	// RemoveProtected means the id belongs to the built-in seed set, which
	// cannot be removed.
	RemoveProtected
	// RemoveMissing means no product with that id exists.
	RemoveMissing
)

// Store holds the merged catalog: the fixed seed set with the persisted admin
// overlay applied on top. One merge rule applies everywhere: seed order
// first, an overlay record with a colliding id replaces the seed record in
// place, overlay-only records are appended in overlay insertion order.
//
// Construct one Store per process and pass it by reference; it is safe for
// concurrent readers and writers.
type Store struct {
	port overlay.Store

	mu         sync.RWMutex
	categories []model.Category
	byID       map[string]*model.Product
	order      []string
	seedIDs    map[string]struct{}
	overlayIDs []string
	overlaySet map[string]struct{}
}

// New builds the store from the seed tables and merges whatever overlay the
// port holds. A failing or corrupt overlay degrades to the seed set alone;
// initialization never fails because of it.
func New(ctx context.Context, port overlay.Store) *Store {
	s := &Store{
		port:       port,
		categories: SeedCategories(),
		byID:       map[string]*model.Product{},
		seedIDs:    map[string]struct{}{},
		overlaySet: map[string]struct{}{},
	}

	for _, p := range SeedProducts() {
		p := p
		s.byID[p.ID] = &p
		s.order = append(s.order, p.ID)
		s.seedIDs[p.ID] = struct{}{}
	}

	records, err := port.Load(ctx)
	if err != nil {
		slog.Error("failed to load product overlay, continuing with seed catalog only", slog.Any("err", err))
		return s
	}
	for _, p := range records {
		p := p
		if _, ok := s.byID[p.ID]; !ok {
			s.order = append(s.order, p.ID)
		}
		s.byID[p.ID] = &p
		if _, ok := s.overlaySet[p.ID]; !ok {
			s.overlaySet[p.ID] = struct{}{}
			s.overlayIDs = append(s.overlayIDs, p.ID)
		}
	}
	if len(records) > 0 {
		slog.Info("product overlay loaded", slog.Int("records", len(records)))
	}
	return s
}

// Categories returns the fixed category set in display order.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// CategoryByID looks up one category.
func (s *Store) CategoryByID(id string) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// Products returns the whole merged set in store order.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(*model.Product) bool { return true }, 0)
}

// ProductByID looks up one product in the merged set.
func (s *Store) ProductByID(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.byID[id]; ok {
		return *p, true
	}
	return model.Product{}, false
}

// ProductsByCategory returns the products of one category in store order.
func (s *Store) ProductsByCategory(categoryID string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p *model.Product) bool { return p.CategoryID == categoryID }, 0)
}

// RelatedProducts returns up to limit products sharing the given product's
// category, the product itself excluded. There is no relevance ranking
// beyond category match and store order.
func (s *Store) RelatedProducts(productID string, limit int) []model.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[productID]
	if !ok {
		return nil
	}
	return s.collect(func(candidate *model.Product) bool {
		return candidate.CategoryID == p.CategoryID && candidate.ID != productID
	}, limit)
}

// FeaturedProducts returns up to limit featured products in store order.
func (s *Store) FeaturedProducts(limit int) []model.Product {
	if limit <= 0 {
		limit = DefaultCollectionLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p *model.Product) bool { return p.IsFeatured }, limit)
}

// FeaturedByCategory is the category-balanced featured view: it takes
// ceil(limit / number-of-categories) featured products from each category
// before truncating, so no single category dominates the selection.
func (s *Store) FeaturedByCategory(limit int) []model.Product {
	if limit <= 0 {
		limit = DefaultCollectionLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	perCategory := (limit + len(s.categories) - 1) / len(s.categories)
	var out []model.Product
	for _, c := range s.categories {
		taken := 0
		for _, id := range s.order {
			p := s.byID[id]
			if p.CategoryID != c.ID || !p.IsFeatured {
				continue
			}
			out = append(out, *p)
			taken++
			if taken == perCategory {
				break
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DiscountedProducts returns up to limit products with an active discount in
// store order.
func (s *Store) DiscountedProducts(limit int) []model.Product {
	if limit <= 0 {
		limit = DefaultCollectionLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p *model.Product) bool { return p.DiscountPercentage != nil }, limit)
}

// NewProducts returns up to limit products flagged as new in store order.
func (s *Store) NewProducts(limit int) []model.Product {
	if limit <= 0 {
		limit = DefaultCollectionLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p *model.Product) bool { return p.IsNew }, limit)
}

// OverlayProducts returns the admin-added records in overlay insertion order.
func (s *Store) OverlayProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, 0, len(s.overlayIDs))
	for _, id := range s.overlayIDs {
		out = append(out, *s.byID[id])
	}
	return out
}

// Add upserts a product into the merged set and rewrites the persisted
// overlay. A product reusing an existing id replaces that record in place; a
// fresh id is appended. The store does not re-validate business fields; the
// admin surface cleans the input before calling.
//
// The in-memory set is updated even when persisting fails, so the session
// keeps working; the error is returned for the caller to report.
func (s *Store) Add(ctx context.Context, p model.Product) error {
	s.mu.Lock()
	if _, ok := s.byID[p.ID]; !ok {
		s.order = append(s.order, p.ID)
	}
	s.byID[p.ID] = &p
	if _, ok := s.overlaySet[p.ID]; !ok {
		s.overlaySet[p.ID] = struct{}{}
		s.overlayIDs = append(s.overlayIDs, p.ID)
	}
	records := s.overlayRecords()
	s.mu.Unlock()

	if err := s.port.Save(ctx, records); err != nil {
		return fmt.Errorf("failed to persist product overlay: %w", err)
	}
	return nil
}

// Remove deletes an overlay product from the merged set and the persisted
// overlay. Ids belonging to the built-in seed set are rejected with a
// warning and no state change.
func (s *Store) Remove(ctx context.Context, id string) (RemoveResult, error) {
	s.mu.Lock()
	if _, protected := s.seedIDs[id]; protected {
		s.mu.Unlock()
		slog.Warn("refusing to remove built-in product", slog.String("product_id", id))
		return RemoveProtected, nil
	}
	if _, ok := s.byID[id]; !ok {
		s.mu.Unlock()
		return RemoveMissing, nil
	}

	delete(s.byID, id)
	delete(s.overlaySet, id)
	s.order = deleteID(s.order, id)
	s.overlayIDs = deleteID(s.overlayIDs, id)
	records := s.overlayRecords()
	s.mu.Unlock()

	if err := s.port.Save(ctx, records); err != nil {
		return Removed, fmt.Errorf("failed to persist product overlay: %w", err)
	}
	return Removed, nil
}

// collect gathers matching products in store order; limit 0 means all.
// Callers must hold at least the read lock.
func (s *Store) collect(match func(*model.Product) bool, limit int) []model.Product {
	var out []model.Product
	for _, id := range s.order {
		p := s.byID[id]
		if !match(p) {
			continue
		}
		out = append(out, *p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// overlayRecords snapshots the overlay for persisting. Callers must hold the
// lock.
func (s *Store) overlayRecords() []model.Product {
	records := make([]model.Product, 0, len(s.overlayIDs))
	for _, id := range s.overlayIDs {
		records = append(records, *s.byID[id])
	}
	return records
}

func deleteID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
