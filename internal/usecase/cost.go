package usecase

import (
	"context"
	"fmt"

	"github.com/platecost/backend/internal/domain"
)

// CostNormalizer re-expresses supplier prices and line-item requirements
// on a common per-base-unit basis so offers in different units can be
// compared directly.
type CostNormalizer struct {
	units domain.UnitRegistry
}

// NewCostNormalizer creates a cost normalizer backed by a unit registry.
func NewCostNormalizer(units domain.UnitRegistry) *CostNormalizer {
	return &CostNormalizer{units: units}
}

// ComputeRealCost returns the cost of acquiring exactly the quantity a
// line item requires, given a price per one base unit of the line item's
// dimension. Pure; conversion failures propagate unchanged.
func (n *CostNormalizer) ComputeRealCost(lineItemUnit domain.UnitOfMeasure, basePricePerBaseUnit float64) (float64, error) {
	base, err := n.units.BaseUnit(lineItemUnit.Type)
	if err != nil {
		return 0, err
	}

	converted, err := n.units.Convert(lineItemUnit, base.Name, base.Type)
	if err != nil {
		return 0, err
	}

	return basePricePerBaseUnit * converted.Amount, nil
}

// CostPerBaseUnit normalizes a supplier offer's price to the cost of one
// base unit of the offer's dimension (e.g. price per lb -> price per g).
func (n *CostNormalizer) CostPerBaseUnit(offer domain.SupplierProduct) (float64, error) {
	base, err := n.units.BaseUnit(offer.Unit.Type)
	if err != nil {
		return 0, err
	}

	converted, err := n.units.Convert(offer.Unit, base.Name, base.Type)
	if err != nil {
		return 0, err
	}

	if converted.Amount <= 0 {
		return 0, fmt.Errorf("%w: supplier offer quantity must be > 0", domain.ErrInvalidRequest)
	}

	return offer.Price / converted.Amount, nil
}

// LowestCostSelector picks the cheapest normalized supplier offer for a
// single recipe line item.
type LowestCostSelector struct {
	catalog    domain.ProductCatalog
	normalizer *CostNormalizer
}

// NewLowestCostSelector creates a selector over a product catalog.
func NewLowestCostSelector(catalog domain.ProductCatalog, normalizer *CostNormalizer) *LowestCostSelector {
	return &LowestCostSelector{catalog: catalog, normalizer: normalizer}
}

// FindLowestCost scans every supplier offer of every candidate product
// for the line item's ingredient and returns the product with the lowest
// real cost together with that cost. Comparison is strict less-than, so
// the first offer reaching a given minimum wins ties; candidate order is
// the catalog's stable order. Zero candidates, or candidates with no
// offers at all, fail with ErrNoCandidates.
func (s *LowestCostSelector) FindLowestCost(ctx context.Context, lineItem domain.RecipeLineItem) (domain.Product, float64, error) {
	products, err := s.catalog.ProductsForIngredient(ctx, lineItem.Ingredient)
	if err != nil {
		return domain.Product{}, 0, err
	}
	if len(products) == 0 {
		return domain.Product{}, 0, fmt.Errorf("%w: %q", domain.ErrNoCandidates, lineItem.Ingredient)
	}

	var (
		best     domain.Product
		bestCost float64
		found    bool
	)

	for _, product := range products {
		for _, offer := range product.SupplierOffers {
			baseCost, err := s.normalizer.CostPerBaseUnit(offer)
			if err != nil {
				return domain.Product{}, 0, err
			}

			realCost, err := s.normalizer.ComputeRealCost(lineItem.UnitOfMeasure, baseCost)
			if err != nil {
				return domain.Product{}, 0, err
			}

			if !found || realCost < bestCost {
				best = product
				bestCost = realCost
				found = true
			}
		}
	}

	if !found {
		return domain.Product{}, 0, fmt.Errorf("%w: %q has candidate products but no supplier offers", domain.ErrNoCandidates, lineItem.Ingredient)
	}

	return best, bestCost, nil
}
