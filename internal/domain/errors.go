package domain

import "errors"

var (
	// ErrNoCandidates is returned when an ingredient has no products in the catalog
	ErrNoCandidates = errors.New("no products available for the given ingredient")

	// ErrUnitConversion is returned when a unit cannot be converted to its dimension's base unit
	ErrUnitConversion = errors.New("unit cannot be converted to base unit")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRecipeNotFound is returned when a named recipe is not in the recipe source
	ErrRecipeNotFound = errors.New("recipe not found")
)
