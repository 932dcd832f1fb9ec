package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/repository"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Recipe{},
		&domain.Ingredient{},
		&domain.MealPlan{},
		&domain.ShoppingList{},
		&domain.ShoppingListItem{},
	))
	return db
}

type testEnv struct {
	db       *gorm.DB
	recipes  *RecipeService
	plans    *MealPlanService
	shopping *ShoppingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	log := logger.New("debug")
	recipeRepo := repository.NewRecipeRepository(db)
	planRepo := repository.NewMealPlanRepository(db)
	listRepo := repository.NewShoppingListRepository(db)
	return &testEnv{
		db:       db,
		recipes:  NewRecipeService(recipeRepo, log),
		plans:    NewMealPlanService(planRepo, recipeRepo, log),
		shopping: NewShoppingService(listRepo, planRepo, log),
	}
}

func (e *testEnv) createUser(t *testing.T, username string) uint {
	t.Helper()
	user := domain.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, e.db.Create(&user).Error)
	return user.ID
}

func (e *testEnv) createRecipe(t *testing.T, ownerID uint, name string, ingredients ...domain.Ingredient) *domain.Recipe {
	t.Helper()
	recipe, err := e.recipes.Create(&domain.Recipe{
		Name:        name,
		PrepTime:    10,
		CookTime:    20,
		Ingredients: ingredients,
	}, ownerID)
	require.NoError(t, err)
	return recipe
}
