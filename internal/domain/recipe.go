package domain

// Dimension tags for UnitOfMeasure.Type. The registry may accept others;
// these are the ones the default conversion table knows about.
const (
	DimensionMass   = "mass"
	DimensionVolume = "volume"
	DimensionCount  = "count"
)

// UnitOfMeasure is a quantity expressed in a named unit of a physical
// dimension. Two quantities are convertible only when they share Type.
type UnitOfMeasure struct {
	Type   string  `json:"uomType" binding:"required"`
	Name   string  `json:"uomName" binding:"required"`
	Amount float64 `json:"uomAmount"`
}

// NutrientFact is a named nutrient quantity attached to a product.
// Name is the merge key; facts with the same name are summed after
// conversion to the dimension's base unit.
type NutrientFact struct {
	Name     string        `json:"nutrientName"`
	Quantity UnitOfMeasure `json:"quantityAmount"`
}

// RecipeLineItem is one ingredient requirement within a recipe.
type RecipeLineItem struct {
	Ingredient    string        `json:"ingredient" binding:"required"`
	UnitOfMeasure UnitOfMeasure `json:"unitOfMeasure" binding:"required"`
}

// Recipe is an ordered list of line items to be costed together.
type Recipe struct {
	Name      string           `json:"recipeName" binding:"required"`
	LineItems []RecipeLineItem `json:"lineItems" binding:"required,dive"`
}

// RecipeSummary is the result of summarizing one recipe: the cheapest
// achievable total cost and the merged base-unit nutrient profile of
// the winning products. Nutrients are ordered by ascending name so the
// ordering survives JSON encoding.
type RecipeSummary struct {
	RecipeName   string         `json:"recipeName"`
	CheapestCost float64        `json:"cheapestCost"`
	Nutrients    []NutrientFact `json:"nutrientsAtCheapestCost"`
}

// Nutrient returns the merged fact for the given nutrient name, if present.
func (s *RecipeSummary) Nutrient(name string) (NutrientFact, bool) {
	for _, fact := range s.Nutrients {
		if fact.Name == name {
			return fact, true
		}
	}
	return NutrientFact{}, false
}
