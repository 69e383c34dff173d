package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/platecost/backend/internal/domain"
)

// MemoryCatalog is a thread-safe in-memory product catalog and recipe
// source. Products are indexed by ingredient and kept in insertion
// order; the lowest-cost selection tie-breaks on first-seen position,
// so that order must stay stable across reads.
type MemoryCatalog struct {
	mu        sync.RWMutex
	products  map[string][]domain.Product // normalized ingredient -> products in insertion order
	recipes   []domain.Recipe
	recipeIdx map[string]int // recipe name -> index into recipes
}

// NewMemoryCatalog creates an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		products:  make(map[string][]domain.Product),
		recipeIdx: make(map[string]int),
	}
}

// AddProduct stores a product under its ingredient. Products without an
// ID are assigned one. Returns the stored product's ID.
func (c *MemoryCatalog) AddProduct(product domain.Product) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	key := normalizeIngredient(product.Ingredient)
	c.products[key] = append(c.products[key], product)

	return product.ID
}

// AddRecipe stores a recipe, replacing any existing recipe with the
// same name.
func (c *MemoryCatalog) AddRecipe(recipe domain.Recipe) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx, ok := c.recipeIdx[recipe.Name]; ok {
		c.recipes[idx] = recipe
		return
	}

	c.recipeIdx[recipe.Name] = len(c.recipes)
	c.recipes = append(c.recipes, recipe)
}

// ProductsForIngredient returns the products that can fulfill an
// ingredient, in insertion order. An unknown ingredient yields an empty
// slice, not an error; the caller decides whether that is fatal.
func (c *MemoryCatalog) ProductsForIngredient(ctx context.Context, ingredient string) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stored := c.products[normalizeIngredient(ingredient)]
	products := make([]domain.Product, len(stored))
	copy(products, stored)

	return products, nil
}

// Recipes returns all stored recipes in insertion order.
func (c *MemoryCatalog) Recipes(ctx context.Context) ([]domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	recipes := make([]domain.Recipe, len(c.recipes))
	copy(recipes, c.recipes)

	return recipes, nil
}

// Recipe returns the recipe with the given name.
func (c *MemoryCatalog) Recipe(ctx context.Context, name string) (domain.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.recipeIdx[name]
	if !ok {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}

	return c.recipes[idx], nil
}

// Size returns the number of stored products (for debugging/monitoring).
func (c *MemoryCatalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, products := range c.products {
		n += len(products)
	}
	return n
}

// normalizeIngredient lower-cases and trims an ingredient identifier so
// lookups are case-insensitive.
func normalizeIngredient(ingredient string) string {
	return strings.ToLower(strings.TrimSpace(ingredient))
}
