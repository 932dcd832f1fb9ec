package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/config"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/handler"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/repository"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/service"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/jwt"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database: " + err.Error())
	}
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Recipe{},
		&domain.Ingredient{},
		&domain.MealPlan{},
		&domain.ShoppingList{},
		&domain.ShoppingListItem{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: " + err.Error())
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	tokens := jwt.NewTokenManager(cfg.JWTSecret, redisClient)

	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	planRepo := repository.NewMealPlanRepository(db)
	listRepo := repository.NewShoppingListRepository(db)

	authSvc := service.NewAuthService(userRepo, tokens, time.Hour, 7*24*time.Hour, log)
	recipeSvc := service.NewRecipeService(recipeRepo, log)
	planSvc := service.NewMealPlanService(planRepo, recipeRepo, log)
	shoppingSvc := service.NewShoppingService(listRepo, planRepo, log)

	r := gin.Default()
	handler.SetupRoutes(r, tokens,
		handler.NewAuthHandler(authSvc, log),
		handler.NewRecipeHandler(recipeSvc, log),
		handler.NewMealPlanHandler(planSvc, log),
		handler.NewShoppingHandler(shoppingSvc, log),
	)

	log.Infof("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("server stopped: " + err.Error())
	}
}
