package domain

// SupplierProduct is a single supplier offer: a price for the quantity
// described by Unit (e.g. 2.50 for 1 lb). Owned by exactly one Product.
type SupplierProduct struct {
	SupplierName string        `json:"supplierName"`
	Price        float64       `json:"price"`
	Unit         UnitOfMeasure `json:"unitOfMeasure"`
}

// Product is an ingredient-fulfilling catalog item with zero or more
// supplier offers and zero or more nutrient facts. Multiple products may
// fulfill the same ingredient.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"productName"`
	Ingredient     string            `json:"ingredient"`
	SupplierOffers []SupplierProduct `json:"supplierProducts"`
	NutrientFacts  []NutrientFact    `json:"nutrientFacts"`
}
