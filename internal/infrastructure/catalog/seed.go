package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/platecost/backend/internal/domain"
)

// SeedFile is the shape of the JSON catalog file loaded at startup.
type SeedFile struct {
	Products []domain.Product `json:"products"`
	Recipes  []domain.Recipe  `json:"recipes"`
}

// LoadFile seeds the catalog from a JSON file. Existing contents are
// kept; seeded products and recipes are appended in file order.
func (c *MemoryCatalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to decode catalog file: %w", err)
	}

	for _, product := range seed.Products {
		if product.Ingredient == "" {
			return fmt.Errorf("%w: product %q has no ingredient", domain.ErrInvalidRequest, product.Name)
		}
		c.AddProduct(product)
	}

	for _, recipe := range seed.Recipes {
		if recipe.Name == "" {
			return fmt.Errorf("%w: recipe with empty name in catalog file", domain.ErrInvalidRequest)
		}
		c.AddRecipe(recipe)
	}

	return nil
}
