package http

import (
	"github.com/gin-gonic/gin"

	"github.com/RodReBer/barraca-toto/internal/config"
	"github.com/RodReBer/barraca-toto/internal/http/controller"
	"github.com/RodReBer/barraca-toto/internal/http/middleware"
)

// InitRouter wires the storefront and admin endpoints. The query endpoints
// are the whole contract the rendering layer consumes; the admin group is
// the only mutation path.
func InitRouter(_ *config.Config, server *gin.Engine, ctr *controller.Controller,
	catalogCtr *controller.CatalogController, adminCtr *controller.AdminController,
	sessions *middleware.Sessions) *gin.Engine {

	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery())

	server.GET("/ping", ctr.Ping)

	categories := server.Group("/categories")
	{
		categories.GET("", catalogCtr.ListCategories)
		categories.GET("/:id", catalogCtr.GetCategory)
		categories.GET("/:id/products", catalogCtr.ListCategoryProducts)
	}

	products := server.Group("/products")
	{
		products.GET("", catalogCtr.ListProducts)
		products.GET("/:id", catalogCtr.GetProduct)
		products.GET("/:id/related", catalogCtr.ListRelated)
	}

	// Curated views live on their own prefix; gin's router does not allow
	// static segments next to the :id wildcard under /products.
	collections := server.Group("/collections")
	{
		collections.GET("/featured", catalogCtr.ListFeatured)
		collections.GET("/discounted", catalogCtr.ListDiscounted)
		collections.GET("/new", catalogCtr.ListNew)
	}

	admin := server.Group("/admin")
	{
		admin.POST("/login", adminCtr.Login)

		gated := admin.Group("", middleware.AdminGate(sessions))
		{
			gated.POST("/logout", adminCtr.Logout)
			gated.GET("/products", adminCtr.ListOverlay)
			gated.POST("/products", adminCtr.AddProduct)
			gated.DELETE("/products/:id", adminCtr.RemoveProduct)
		}
	}

	return server
}
