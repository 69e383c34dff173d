package domain

import "context"

// ProductCatalog defines the interface for retrieving candidate products.
// Implementations must return products in a stable order: ties on lowest
// cost are broken by first-seen position in the returned slice.
type ProductCatalog interface {
	ProductsForIngredient(ctx context.Context, ingredient string) ([]Product, error)
}

// RecipeSource defines the interface for the batch driver's recipe feed.
type RecipeSource interface {
	Recipes(ctx context.Context) ([]Recipe, error)
	Recipe(ctx context.Context, name string) (Recipe, error)
}

// UnitRegistry defines the interface for base-unit lookup and unit
// conversion. Conversion is only defined between units of the same
// dimension; anything else fails with ErrUnitConversion.
type UnitRegistry interface {
	// BaseUnit returns the canonical unit descriptor for a dimension,
	// with Amount set to 1.
	BaseUnit(uomType string) (UnitOfMeasure, error)

	// Convert re-expresses from in the named target unit of the target
	// dimension, returning the converted quantity.
	Convert(from UnitOfMeasure, targetName, targetType string) (UnitOfMeasure, error)
}
