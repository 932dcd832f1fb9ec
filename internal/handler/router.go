package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/jwt"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/middleware"
)

// SetupRoutes wires all API routes onto the engine. Custom collection and
// detail actions share the :id segment with plain lookups, so the handlers
// dispatch on the segment value.
func SetupRoutes(
	r *gin.Engine,
	tokens jwt.TokenManager,
	auth *AuthHandler,
	recipes *RecipeHandler,
	plans *MealPlanHandler,
	shopping *ShoppingHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register/", auth.Register)
		authGroup.POST("/login/", auth.Login)
		authGroup.POST("/token/refresh/", auth.Refresh)
		authGroup.POST("/logout/", middleware.AuthMiddleware(tokens), auth.Logout)
		authGroup.GET("/user/", middleware.AuthMiddleware(tokens), auth.CurrentUser)
	}

	// Recipe reads allow anonymous access; writes check for an
	// authenticated caller inside the handlers.
	recipeGroup := api.Group("/recipes", middleware.OptionalAuthMiddleware(tokens))
	{
		recipeGroup.GET("/", recipes.List)
		recipeGroup.POST("/", recipes.Create)
		recipeGroup.GET("/:id/", recipes.Get)
		recipeGroup.PUT("/:id/", recipes.Update)
		recipeGroup.PATCH("/:id/", recipes.Update)
		recipeGroup.DELETE("/:id/", recipes.Delete)
		recipeGroup.POST("/:id/:action/", recipes.Action)
	}

	planGroup := api.Group("/meal-plans", middleware.AuthMiddleware(tokens))
	{
		planGroup.GET("/", plans.List)
		planGroup.POST("/", plans.Create)
		planGroup.GET("/:id/", plans.Get)
		planGroup.POST("/:id/", plans.Post)
		planGroup.PUT("/:id/", plans.Update)
		planGroup.PATCH("/:id/", plans.Update)
		planGroup.DELETE("/:id/", plans.Delete)
	}

	listGroup := api.Group("/shopping-lists", middleware.AuthMiddleware(tokens))
	{
		listGroup.GET("/", shopping.List)
		listGroup.POST("/", shopping.Create)
		listGroup.GET("/:id/", shopping.Get)
		listGroup.POST("/:id/", shopping.Post)
		listGroup.PUT("/:id/", shopping.Update)
		listGroup.PATCH("/:id/", shopping.Update)
		listGroup.DELETE("/:id/", shopping.Delete)
		listGroup.POST("/:id/:action/", shopping.Action)
	}

	itemGroup := api.Group("/shopping-list-items", middleware.AuthMiddleware(tokens))
	{
		itemGroup.GET("/:id/", shopping.GetItem)
		itemGroup.PUT("/:id/", shopping.UpdateItem)
		itemGroup.PATCH("/:id/", shopping.UpdateItem)
		itemGroup.DELETE("/:id/", shopping.DeleteItem)
		itemGroup.POST("/:id/:action/", shopping.ItemAction)
	}
}
