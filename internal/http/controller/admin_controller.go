package controller

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RodReBer/barraca-toto/internal/catalog"
	"github.com/RodReBer/barraca-toto/internal/http/middleware"
	"github.com/RodReBer/barraca-toto/internal/model"
	"github.com/RodReBer/barraca-toto/internal/service"
)

// AdminController handles the admin surface: the shared-password gate and the
// overlay mutations. The gate hides the surface the way the original
// storefront hid its admin pages; it is not an authentication system.
type AdminController struct {
	catalogService *service.CatalogService
	store          *catalog.Store
	sessions       *middleware.Sessions
	password       string
}

// NewAdminController creates an AdminController.
func NewAdminController(catalogService *service.CatalogService, store *catalog.Store, sessions *middleware.Sessions, password string) *AdminController {
	return &AdminController{
		catalogService: catalogService,
		store:          store,
		sessions:       sessions,
		password:       password,
	}
}

// LoginRequest represents the request body for the admin login.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login handles POST /admin/login: compares the shared password and issues a
// session token.
func (ac *AdminController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(ac.password)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": ac.sessions.Issue()})
}

// Logout handles POST /admin/logout.
func (ac *AdminController) Logout(c *gin.Context) {
	ac.sessions.Drop(c.GetHeader(middleware.AdminTokenHeader))
	c.JSON(http.StatusOK, gin.H{"message": "session closed"})
}

// ListOverlay handles GET /admin/products: the admin-added records only.
func (ac *AdminController) ListOverlay(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": ac.store.OverlayProducts()})
}

// AddProductRequest represents the admin add-product form. The binding tags
// mirror the form's required fields; the store itself does not re-validate.
type AddProductRequest struct {
	ID               string                `json:"id"`
	Name             string                `json:"name" binding:"required"`
	CategoryID       string                `json:"categoryId" binding:"required"`
	Description      string                `json:"description" binding:"required"`
	ShortDescription string                `json:"shortDescription"`
	Price            float64               `json:"price" binding:"required,gt=0"`
	OriginalPrice    *float64              `json:"originalPrice"`
	Image            string                `json:"image"`
	Specifications   []model.Specification `json:"specifications"`
	Features         []string              `json:"features"`
	Stock            *bool                 `json:"stock"`
	IsNew            bool                  `json:"isNew"`
	IsFeatured       bool                  `json:"isFeatured"`
}

// AddProduct handles POST /admin/products. It performs the cleanup the
// original admin form did before the store is called: empty spec/feature
// rows are stripped, the discount pair is normalized, and a missing id or
// image falls back to the generated one.
func (ac *AdminController) AddProduct(c *gin.Context) {
	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, ok := ac.store.CategoryByID(req.CategoryID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	product := model.Product{
		ID:               req.ID,
		Name:             req.Name,
		Category:         category.Name,
		CategoryID:       category.ID,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            req.Price,
		OriginalPrice:    req.OriginalPrice,
		Image:            req.Image,
		Specifications:   req.Specifications,
		Features:         req.Features,
		Stock:            req.Stock == nil || *req.Stock,
		IsNew:            req.IsNew,
		IsFeatured:       req.IsFeatured,
	}
	product.StripEmptyRows()
	product.NormalizeDiscount()
	if product.ID == "" {
		product.ID = model.GenerateID(product.CategoryID, product.Name, time.Now())
	}
	if product.Image == "" {
		product.Image = model.PlaceholderImage(product.Name)
	}

	ac.catalogService.AddProduct(c.Request.Context(), product)

	c.JSON(http.StatusCreated, product)
}

// RemoveProduct handles DELETE /admin/products/:id. Built-in seed products
// cannot be removed.
func (ac *AdminController) RemoveProduct(c *gin.Context) {
	id := c.Param("id")

	switch ac.catalogService.RemoveProduct(c.Request.Context(), id) {
	case catalog.Removed:
		c.JSON(http.StatusOK, gin.H{"message": "product removed"})
	case catalog.RemoveProtected:
		c.JSON(http.StatusForbidden, gin.H{"error": "built-in products cannot be removed"})
	case catalog.RemoveMissing:
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	}
}
