package units

import (
	"fmt"
	"strings"
	"sync"

	"github.com/platecost/backend/internal/domain"
)

// Registry is a thread-safe unit-conversion table. Each dimension has one
// canonical base unit and a set of named units with a factor to that base
// (e.g. kg -> 1000 g). Conversion is defined only within a dimension.
type Registry struct {
	mu      sync.RWMutex
	base    map[string]string             // dimension -> base unit name
	factors map[string]map[string]float64 // dimension -> unit name -> factor to base
}

// NewRegistry creates a registry pre-loaded with the common kitchen and
// supplier units: mass (base g), volume (base ml), count (base each).
func NewRegistry() *Registry {
	r := &Registry{
		base:    make(map[string]string),
		factors: make(map[string]map[string]float64),
	}

	r.RegisterBase(domain.DimensionMass, "g")
	r.Register(domain.DimensionMass, "mg", 0.001)
	r.Register(domain.DimensionMass, "kg", 1000)
	r.Register(domain.DimensionMass, "oz", 28.349523125)
	r.Register(domain.DimensionMass, "lb", 453.59237)
	r.Register(domain.DimensionMass, "lbs", 453.59237)

	r.RegisterBase(domain.DimensionVolume, "ml")
	r.Register(domain.DimensionVolume, "l", 1000)
	r.Register(domain.DimensionVolume, "tsp", 4.92892159375)
	r.Register(domain.DimensionVolume, "tbsp", 14.78676478125)
	r.Register(domain.DimensionVolume, "cup", 236.5882365)
	r.Register(domain.DimensionVolume, "fl-oz", 29.5735295625)
	r.Register(domain.DimensionVolume, "gal", 3785.411784)

	r.RegisterBase(domain.DimensionCount, "each")
	r.Register(domain.DimensionCount, "dozen", 12)

	return r
}

// RegisterBase sets the canonical base unit for a dimension. The base
// unit always has factor 1.
func (r *Registry) RegisterBase(uomType, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalize(uomType)
	r.base[key] = normalize(name)
	if r.factors[key] == nil {
		r.factors[key] = make(map[string]float64)
	}
	r.factors[key][normalize(name)] = 1
}

// Register adds a unit to a dimension with its factor to the base unit
// (1 of this unit = factorToBase base units).
func (r *Registry) Register(uomType, name string, factorToBase float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalize(uomType)
	if r.factors[key] == nil {
		r.factors[key] = make(map[string]float64)
	}
	r.factors[key][normalize(name)] = factorToBase
}

// BaseUnit returns the canonical unit descriptor for a dimension with
// Amount set to 1. Fails with ErrUnitConversion for unknown dimensions.
func (r *Registry) BaseUnit(uomType string) (domain.UnitOfMeasure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := normalize(uomType)
	name, ok := r.base[key]
	if !ok {
		return domain.UnitOfMeasure{}, fmt.Errorf("%w: no base unit registered for dimension %q", domain.ErrUnitConversion, uomType)
	}

	return domain.UnitOfMeasure{Type: key, Name: name, Amount: 1}, nil
}

// Convert re-expresses the source quantity in the named target unit.
// Source and target must share a dimension and both units must be
// registered; anything else fails with ErrUnitConversion.
func (r *Registry) Convert(from domain.UnitOfMeasure, targetName, targetType string) (domain.UnitOfMeasure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	srcType := normalize(from.Type)
	dstType := normalize(targetType)
	if srcType != dstType {
		return domain.UnitOfMeasure{}, fmt.Errorf("%w: cannot convert %q (%s) to %q (%s)", domain.ErrUnitConversion, from.Name, from.Type, targetName, targetType)
	}

	table, ok := r.factors[srcType]
	if !ok {
		return domain.UnitOfMeasure{}, fmt.Errorf("%w: unknown dimension %q", domain.ErrUnitConversion, from.Type)
	}

	srcFactor, ok := table[normalize(from.Name)]
	if !ok {
		return domain.UnitOfMeasure{}, fmt.Errorf("%w: unknown unit %q in dimension %q", domain.ErrUnitConversion, from.Name, from.Type)
	}

	dstFactor, ok := table[normalize(targetName)]
	if !ok {
		return domain.UnitOfMeasure{}, fmt.Errorf("%w: unknown unit %q in dimension %q", domain.ErrUnitConversion, targetName, targetType)
	}

	return domain.UnitOfMeasure{
		Type:   dstType,
		Name:   normalize(targetName),
		Amount: from.Amount * srcFactor / dstFactor,
	}, nil
}

// normalize lower-cases and trims a unit or dimension name so lookups
// are case- and whitespace-insensitive.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
