package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RodReBer/barraca-toto/internal/catalog"
)

// CatalogController serves the read-only catalog queries the storefront
// pages consume. Product payloads use the overlay blob field names, so the
// rendering layer and the persistence format never diverge.
type CatalogController struct {
	store *catalog.Store
}

// NewCatalogController creates a CatalogController backed by the given store.
func NewCatalogController(store *catalog.Store) *CatalogController {
	return &CatalogController{store: store}
}

// ListCategories handles GET /categories.
func (cc *CatalogController) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": cc.store.Categories()})
}

// GetCategory handles GET /categories/:id.
func (cc *CatalogController) GetCategory(c *gin.Context) {
	category, ok := cc.store.CategoryByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// ListCategoryProducts handles GET /categories/:id/products.
func (cc *CatalogController) ListCategoryProducts(c *gin.Context) {
	id := c.Param("id")
	if _, ok := cc.store.CategoryByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": cc.store.ProductsByCategory(id)})
}

// ListProducts handles GET /products with an optional category filter.
func (cc *CatalogController) ListProducts(c *gin.Context) {
	if categoryID := c.Query("category"); categoryID != "" {
		c.JSON(http.StatusOK, gin.H{"products": cc.store.ProductsByCategory(categoryID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": cc.store.Products()})
}

// GetProduct handles GET /products/:id.
func (cc *CatalogController) GetProduct(c *gin.Context) {
	product, ok := cc.store.ProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListRelated handles GET /products/:id/related.
func (cc *CatalogController) ListRelated(c *gin.Context) {
	id := c.Param("id")
	if _, ok := cc.store.ProductByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": cc.store.RelatedProducts(id, limitQuery(c))})
}

// ListFeatured handles GET /collections/featured. The balanced flag switches
// to the category-balanced selection.
func (cc *CatalogController) ListFeatured(c *gin.Context) {
	limit := limitQuery(c)
	if c.Query("balanced") == "true" {
		c.JSON(http.StatusOK, gin.H{"products": cc.store.FeaturedByCategory(limit)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": cc.store.FeaturedProducts(limit)})
}

// ListDiscounted handles GET /collections/discounted.
func (cc *CatalogController) ListDiscounted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": cc.store.DiscountedProducts(limitQuery(c))})
}

// ListNew handles GET /collections/new.
func (cc *CatalogController) ListNew(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": cc.store.NewProducts(limitQuery(c))})
}

// limitQuery parses the limit query parameter; zero lets the store apply its
// default.
func limitQuery(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
