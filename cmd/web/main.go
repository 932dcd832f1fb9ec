package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/client"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/web"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	logger := logger.New(envOr("LOG_LEVEL", "info"))

	r := gin.Default()
	r.LoadHTMLGlob(envOr("TEMPLATE_GLOB", "web/templates/*.html"))

	h := web.NewHandlers(client.BaseURLFromEnv(), logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/recipes")
	})

	r.GET("/login", h.LoginPage)
	r.POST("/login", h.LoginPost)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", h.RegisterPost)
	r.GET("/logout", h.Logout)

	r.GET("/recipes", h.Recipes)
	r.GET("/recipes/new", h.RecipeForm)
	r.POST("/recipes", h.RecipeCreate)
	r.POST("/recipes/:id/delete", h.RecipeDelete)
	r.POST("/recipes/:id/favorite", h.RecipeFavorite)

	r.GET("/planner", h.Planner)
	r.POST("/planner/add", h.PlannerAdd)
	r.POST("/planner/remove/:id", h.PlannerRemove)
	r.POST("/planner/clear", h.PlannerClear)
	r.POST("/planner/generate", h.PlannerGenerate)

	r.GET("/shopping-lists", h.ShoppingLists)
	r.GET("/shopping-lists/:id", h.ShoppingListDetail)
	r.POST("/shopping-lists/:id/delete", h.ShoppingListDelete)
	r.POST("/shopping-lists/:id/items", h.ShoppingItemAdd)
	r.POST("/shopping-lists/:id/items/:itemID/toggle", h.ShoppingItemToggle)
	r.POST("/shopping-lists/:id/items/:itemID/delete", h.ShoppingItemDelete)
	r.POST("/shopping-lists/:id/clear-checked", h.ShoppingClearChecked)

	port := envOr("WEB_PORT", "3000")
	logger.Infof("web server listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("web server stopped: " + err.Error())
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
