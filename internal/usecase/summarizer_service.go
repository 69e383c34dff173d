package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/platecost/backend/internal/domain"
)

// SummarizerService computes, for a recipe, the cheapest achievable
// total cost and the merged base-unit nutrient profile of the winning
// products. It is the sole entry point into the costing engine.
type SummarizerService struct {
	recipes    domain.RecipeSource
	selector   *LowestCostSelector
	aggregator *NutrientAggregator
}

// NewSummarizerService creates a summarizer service with dependencies.
func NewSummarizerService(
	catalog domain.ProductCatalog,
	recipes domain.RecipeSource,
	units domain.UnitRegistry,
) *SummarizerService {
	normalizer := NewCostNormalizer(units)

	return &SummarizerService{
		recipes:    recipes,
		selector:   NewLowestCostSelector(catalog, normalizer),
		aggregator: NewNutrientAggregator(units),
	}
}

// Summarize evaluates a recipe's line items in order, picks the cheapest
// supplier offer for each, and returns the accumulated cost and nutrient
// profile with nutrient names in ascending order. The first failing line
// item aborts the whole recipe; no partial summary is returned. The
// input recipe and backing catalog are never mutated, so repeated calls
// with unchanged data yield identical summaries.
func (s *SummarizerService) Summarize(ctx context.Context, recipe *domain.Recipe) (*domain.RecipeSummary, error) {
	if recipe == nil || recipe.Name == "" {
		return nil, domain.ErrInvalidRequest
	}

	totalCost := 0.0
	totals := make(map[string]domain.NutrientFact)

	for _, lineItem := range recipe.LineItems {
		product, cost, err := s.selector.FindLowestCost(ctx, lineItem)
		if err != nil {
			return nil, fmt.Errorf("line item %q: %w", lineItem.Ingredient, err)
		}

		totalCost += cost

		if err := s.aggregator.MergeInto(totals, product.NutrientFacts); err != nil {
			return nil, fmt.Errorf("line item %q: %w", lineItem.Ingredient, err)
		}
	}

	return &domain.RecipeSummary{
		RecipeName:   recipe.Name,
		CheapestCost: totalCost,
		Nutrients:    sortedFacts(totals),
	}, nil
}

// SummarizeByName looks a recipe up in the recipe source and summarizes it.
func (s *SummarizerService) SummarizeByName(ctx context.Context, name string) (*domain.RecipeSummary, error) {
	recipe, err := s.recipes.Recipe(ctx, name)
	if err != nil {
		return nil, err
	}

	return s.Summarize(ctx, &recipe)
}

// SummarizeAll summarizes every recipe in the recipe source and returns
// the results keyed by recipe name. Any recipe failing aborts the batch.
func (s *SummarizerService) SummarizeAll(ctx context.Context) (map[string]*domain.RecipeSummary, error) {
	recipes, err := s.recipes.Recipes(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]*domain.RecipeSummary, len(recipes))
	for _, recipe := range recipes {
		summary, err := s.Summarize(ctx, &recipe)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: %w", recipe.Name, err)
		}
		summaries[recipe.Name] = summary
	}

	return summaries, nil
}

// sortedFacts flattens the running totals into a slice ordered by
// ascending nutrient name. The ordering is part of the output contract:
// a deterministic profile regardless of merge insertion order.
func sortedFacts(totals map[string]domain.NutrientFact) []domain.NutrientFact {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	facts := make([]domain.NutrientFact, 0, len(names))
	for _, name := range names {
		facts = append(facts, totals[name])
	}

	return facts
}
