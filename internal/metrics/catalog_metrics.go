package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsAdded is a Prometheus counter for tracking the total number of
	// products added through the admin surface.
	ProductsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_added_total",
		Help: "The total number of products added to the catalog overlay",
	})

	// ProductsRemoved is a Prometheus counter for tracking the total number
	// of overlay products removed.
	ProductsRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_removed_total",
		Help: "The total number of products removed from the catalog overlay",
	})

	// ProtectedRemovals is a Prometheus counter for removal attempts that
	// targeted built-in seed products.
	ProtectedRemovals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_protected_removals_total",
		Help: "The total number of rejected removals of built-in products",
	})
)
