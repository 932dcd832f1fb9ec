package client

import (
	"context"
	"fmt"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
)

// ListRecipes fetches every recipe visible to the caller.
func (c *Client) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	resp, err := c.Get(ctx, "/recipes/")
	if err != nil {
		return nil, err
	}
	var recipes []domain.Recipe
	if err := decode(resp, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe fetches one recipe.
func (c *Client) GetRecipe(ctx context.Context, id uint) (*domain.Recipe, error) {
	resp, err := c.Get(ctx, fmt.Sprintf("/recipes/%d/", id))
	if err != nil {
		return nil, err
	}
	var recipe domain.Recipe
	if err := decode(resp, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// MyRecipes fetches all of the caller's recipes, private included.
func (c *Client) MyRecipes(ctx context.Context) ([]domain.Recipe, error) {
	resp, err := c.Get(ctx, "/recipes/my_recipes/")
	if err != nil {
		return nil, err
	}
	var recipes []domain.Recipe
	if err := decode(resp, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// FavoriteRecipes fetches the caller's favorited recipes.
func (c *Client) FavoriteRecipes(ctx context.Context) ([]domain.Recipe, error) {
	resp, err := c.Get(ctx, "/recipes/favorites/")
	if err != nil {
		return nil, err
	}
	var recipes []domain.Recipe
	if err := decode(resp, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// CreateRecipe stores a new recipe.
func (c *Client) CreateRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	resp, err := c.Post(ctx, "/recipes/", recipe)
	if err != nil {
		return nil, err
	}
	var created domain.Recipe
	if err := decode(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRecipe stores changes to a recipe.
func (c *Client) UpdateRecipe(ctx context.Context, id uint, recipe domain.Recipe) (*domain.Recipe, error) {
	resp, err := c.Put(ctx, fmt.Sprintf("/recipes/%d/", id), recipe)
	if err != nil {
		return nil, err
	}
	var updated domain.Recipe
	if err := decode(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRecipe removes a recipe.
func (c *Client) DeleteRecipe(ctx context.Context, id uint) error {
	resp, err := c.Delete(ctx, fmt.Sprintf("/recipes/%d/", id))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// FavoriteRecipe marks a recipe as a favorite.
func (c *Client) FavoriteRecipe(ctx context.Context, id uint) (*domain.Recipe, error) {
	resp, err := c.Post(ctx, fmt.Sprintf("/recipes/%d/favorite/", id), nil)
	if err != nil {
		return nil, err
	}
	var recipe domain.Recipe
	if err := decode(resp, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UnfavoriteRecipe clears a favorite mark.
func (c *Client) UnfavoriteRecipe(ctx context.Context, id uint) (*domain.Recipe, error) {
	resp, err := c.Post(ctx, fmt.Sprintf("/recipes/%d/unfavorite/", id), nil)
	if err != nil {
		return nil, err
	}
	var recipe domain.Recipe
	if err := decode(resp, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}
