package usecase

import (
	"github.com/platecost/backend/internal/domain"
)

// NutrientAggregator merges product nutrient facts into a running total
// keyed by nutrient name, with every amount expressed in the base unit
// of its dimension. Once base-normalized the merge is associative and
// commutative per name, so totals do not depend on encounter order.
type NutrientAggregator struct {
	units domain.UnitRegistry
}

// NewNutrientAggregator creates an aggregator backed by a unit registry.
func NewNutrientAggregator(units domain.UnitRegistry) *NutrientAggregator {
	return &NutrientAggregator{units: units}
}

// FactInBaseUnits re-expresses a nutrient fact in the base unit of its
// quantity's dimension.
func (a *NutrientAggregator) FactInBaseUnits(fact domain.NutrientFact) (domain.NutrientFact, error) {
	base, err := a.units.BaseUnit(fact.Quantity.Type)
	if err != nil {
		return domain.NutrientFact{}, err
	}

	converted, err := a.units.Convert(fact.Quantity, base.Name, base.Type)
	if err != nil {
		return domain.NutrientFact{}, err
	}

	return domain.NutrientFact{Name: fact.Name, Quantity: converted}, nil
}

// MergeInto folds facts into totals in place. Facts whose name is
// already present have their base-unit amounts summed; new names are
// inserted. Both sides are in the same base unit by construction, so no
// re-conversion happens at merge time. A conversion failure aborts the
// merge; totals may have absorbed earlier facts from the same batch, so
// the caller must discard it on error.
func (a *NutrientAggregator) MergeInto(totals map[string]domain.NutrientFact, facts []domain.NutrientFact) error {
	for _, fact := range facts {
		baseFact, err := a.FactInBaseUnits(fact)
		if err != nil {
			return err
		}

		if existing, ok := totals[baseFact.Name]; ok {
			existing.Quantity.Amount += baseFact.Quantity.Amount
			totals[baseFact.Name] = existing
		} else {
			totals[baseFact.Name] = baseFact
		}
	}

	return nil
}
