package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RodReBer/barraca-toto/internal/model"
)

func TestPing(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(t, server, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestListCategories(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(t, server, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []model.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Categories, 6)
	assert.Equal(t, "construccion", resp.Categories[0].ID)
}

func TestGetCategory(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("known category", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/categories/jardin", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var category model.Category
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
		assert.Equal(t, "Jardín", category.Name)
	})

	t.Run("unknown category is an explicit not-found", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/categories/piscinas", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListCategoryProducts(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(t, server, http.MethodGet, "/categories/ferreteria/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	products := decodeProducts(t, w)
	require.Len(t, products, 12)
	for _, p := range products {
		assert.Equal(t, "ferreteria", p.CategoryID)
	}

	w = doJSON(t, server, http.MethodGet, "/categories/piscinas/products", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProducts(t *testing.T) {
	server, store := newTestServer(t)

	t.Run("whole merged set", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/products", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeProducts(t, w), len(store.Products()))
	})

	t.Run("category filter", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/products?category=diseno", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		products := decodeProducts(t, w)
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.Equal(t, "diseno", p.CategoryID)
		}
	})
}

func TestGetProduct(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("known product", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/products/herramientas-1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var product model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
		assert.Equal(t, "herramientas-1", product.ID)
		assert.Equal(t, "herramientas", product.CategoryID)
	})

	t.Run("unknown product", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/products/no-such-product", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListRelated(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("default limit excludes the product itself", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/products/jardin-2/related", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		products := decodeProducts(t, w)
		require.Len(t, products, 4)
		for _, p := range products {
			assert.Equal(t, "jardin", p.CategoryID)
			assert.NotEqual(t, "jardin-2", p.ID)
		}
	})

	t.Run("limit parameter", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/products/jardin-2/related?limit=2", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeProducts(t, w), 2)
	})

	t.Run("unknown product", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/products/no-such-product/related", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCollections(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("featured", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/collections/featured", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		products := decodeProducts(t, w)
		require.Len(t, products, 6)
		for _, p := range products {
			assert.True(t, p.IsFeatured)
		}
	})

	t.Run("featured balanced", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/collections/featured?balanced=true&limit=6", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		products := decodeProducts(t, w)
		require.Len(t, products, 6)
		seen := map[string]int{}
		for _, p := range products {
			seen[p.CategoryID]++
		}
		assert.Len(t, seen, 6, "one featured product per category")
	})

	t.Run("discounted", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/collections/discounted?limit=3", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		products := decodeProducts(t, w)
		require.Len(t, products, 3)
		for _, p := range products {
			assert.NotNil(t, p.DiscountPercentage)
		}
	})

	t.Run("new", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/collections/new", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		products := decodeProducts(t, w)
		require.Len(t, products, 6)
		for _, p := range products {
			assert.True(t, p.IsNew)
		}
	})
}
