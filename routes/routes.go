package routes

import (
	"net/http"
	"time"

	"coffee-order/controllers"
	"coffee-order/middleware"
	"coffee-order/repositories"
	"coffee-order/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the collaborators the route table is built from.
type Deps struct {
	Store      repositories.CatalogStore
	Carts      repositories.CartStore
	Orders     repositories.OrderWriter
	ShopID     string
	JWTSecret  string
	SessionTTL time.Duration
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	cartService := services.NewCartService(deps.Carts, deps.Orders)
	customizationService := services.NewCustomizationService(deps.Store, cartService, deps.SessionTTL)

	catalogCtrl := controllers.NewCatalogController(services.NewCatalogService(deps.Store))
	customizationCtrl := controllers.NewCustomizationController(customizationService)
	cartCtrl := controllers.NewCartController(cartService)
	recipeCtrl := controllers.NewRecipeController(services.NewRecipeService(deps.Store, deps.ShopID))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.GET("/unit-types", catalogCtrl.GetUnitTypes)
	router.GET("/ingredients", catalogCtrl.GetIngredients)
	router.GET("/products/:id/sizes", catalogCtrl.GetProductSizes)
	router.GET("/products/:id/recipe", catalogCtrl.GetEffectiveRecipe)

	customizations := router.Group("/customizations")
	{
		customizations.POST("", customizationCtrl.Open)
		customizations.GET("/:id", customizationCtrl.Get)
		customizations.DELETE("/:id", customizationCtrl.Discard)
		customizations.POST("/:id/adjust", customizationCtrl.Adjust)
		customizations.POST("/:id/size", customizationCtrl.SelectSize)
		customizations.POST("/:id/confirm", customizationCtrl.Confirm)
	}

	carts := router.Group("/carts")
	{
		carts.GET("/:id", cartCtrl.Get)
		carts.DELETE("/:id", cartCtrl.Discard)
		carts.PATCH("/:id/lines/:lineId", cartCtrl.UpdateLine)
		carts.DELETE("/:id/lines/:lineId", cartCtrl.RemoveLine)
		carts.POST("/:id/checkout", cartCtrl.Checkout)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(deps.JWTSecret), middleware.AdminMiddleware())
	{
		admin.GET("/products/:id/recipe", recipeCtrl.GetRecipe)
		admin.PUT("/products/:id/recipe", recipeCtrl.SetRecipe)
	}
}
