package service

import (
	"context"
	"log/slog"

	"github.com/RodReBer/barraca-toto/internal/catalog"
	"github.com/RodReBer/barraca-toto/internal/metrics"
	"github.com/RodReBer/barraca-toto/internal/model"
	"github.com/RodReBer/barraca-toto/internal/sqs"
)

// CatalogService wraps the catalog store's mutation path with metrics and
// the optional mutation-event publisher. Queries go to the store directly.
type CatalogService struct {
	store     *catalog.Store
	publisher *sqs.Publisher
}

// NewCatalogService creates a CatalogService. The publisher may be nil, in
// which case no events are published.
func NewCatalogService(store *catalog.Store, publisher *sqs.Publisher) *CatalogService {
	return &CatalogService{
		store:     store,
		publisher: publisher,
	}
}

// AddProduct upserts a product into the catalog. The operation is total for
// well-formed input: a failing overlay write is logged and the session keeps
// the product in memory.
func (cs *CatalogService) AddProduct(ctx context.Context, product model.Product) {
	if err := cs.store.Add(ctx, product); err != nil {
		slog.Error("failed to persist catalog overlay", slog.Any("err", err), slog.String("product_id", product.ID))
	}

	metrics.ProductsAdded.Inc()

	cs.publish(ctx, "added", product)
}

// RemoveProduct removes an overlay product. Built-in seed products are
// protected; the store logs the warning and no state changes.
func (cs *CatalogService) RemoveProduct(ctx context.Context, id string) catalog.RemoveResult {
	product, known := cs.store.ProductByID(id)

	result, err := cs.store.Remove(ctx, id)
	if err != nil {
		slog.Error("failed to persist catalog overlay", slog.Any("err", err), slog.String("product_id", id))
	}

	switch result {
	case catalog.Removed:
		metrics.ProductsRemoved.Inc()
		if known {
			cs.publish(ctx, "removed", product)
		}
	case catalog.RemoveProtected:
		metrics.ProtectedRemovals.Inc()
	}
	return result
}

// publish sends a mutation event; failures are logged, never propagated.
func (cs *CatalogService) publish(ctx context.Context, action string, product model.Product) {
	if cs.publisher == nil {
		return
	}
	msg := sqs.ProductMessage{
		Action:    action,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
	}
	if err := cs.publisher.PublishProductMessage(ctx, msg); err != nil {
		slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", action), slog.String("product_id", product.ID))
	}
}
