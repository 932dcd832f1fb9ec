// Package measure parses ingredient measurements, converts between
// cooking units, and aggregates ingredients across recipes for shopping
// list generation.
package measure

import "strings"

// Unit categories.
const (
	CategoryVolume = "volume"
	CategoryWeight = "weight"
	CategoryCount  = "count"
)

// volumeUnits maps volume unit spellings to their value in cups.
var volumeUnits = map[string]float64{
	// Metric
	"ml":          0.00422675,
	"milliliter":  0.00422675,
	"milliliters": 0.00422675,
	"l":           4.22675,
	"liter":       4.22675,
	"liters":      4.22675,

	// US customary
	"tsp":          0.0208333,
	"teaspoon":     0.0208333,
	"teaspoons":    0.0208333,
	"tbsp":         0.0625,
	"tablespoon":   0.0625,
	"tablespoons":  0.0625,
	"fl oz":        0.125,
	"fluid ounce":  0.125,
	"fluid ounces": 0.125,
	"cup":          1,
	"cups":         1,
	"c":            1,
	"pint":         2,
	"pints":        2,
	"pt":           2,
	"quart":        4,
	"quarts":       4,
	"qt":           4,
	"gallon":       16,
	"gallons":      16,
	"gal":          16,
}

// weightUnits maps weight unit spellings to their value in grams.
var weightUnits = map[string]float64{
	"mg":         0.001,
	"milligram":  0.001,
	"milligrams": 0.001,
	"g":          1,
	"gram":       1,
	"grams":      1,
	"kg":         1000,
	"kilogram":   1000,
	"kilograms":  1000,
	"oz":         28.3495,
	"ounce":      28.3495,
	"ounces":     28.3495,
	"lb":         453.592,
	"lbs":        453.592,
	"pound":      453.592,
	"pounds":     453.592,
}

// countUnits are units that cannot be converted to anything else.
var countUnits = []string{
	"piece", "pieces", "whole", "item", "items",
	"clove", "cloves", "slice", "slices",
	"can", "cans", "package", "packages", "pkg",
	"bunch", "bunches", "head", "heads",
	"pinch", "pinches", "dash", "dashes",
	"to taste", "as needed",
}

// NormalizeUnit lowercases and trims a unit string for comparison.
func NormalizeUnit(unit string) string {
	return strings.TrimSpace(strings.ToLower(unit))
}

// UnitCategory reports which category a unit belongs to: CategoryVolume,
// CategoryWeight, CategoryCount, or "" when unknown.
func UnitCategory(unit string) string {
	normalized := NormalizeUnit(unit)
	if _, ok := volumeUnits[normalized]; ok {
		return CategoryVolume
	}
	if _, ok := weightUnits[normalized]; ok {
		return CategoryWeight
	}
	for _, cu := range countUnits {
		if strings.Contains(normalized, cu) {
			return CategoryCount
		}
	}
	return ""
}

// CanConvert reports whether two units are interchangeable. Count units
// never convert, and units must share a category.
func CanConvert(fromUnit, toUnit string) bool {
	fromCat := UnitCategory(fromUnit)
	toCat := UnitCategory(toUnit)
	return fromCat == toCat && fromCat != "" && fromCat != CategoryCount
}

// Convert converts quantity from one unit to another. The second return
// is false when conversion is not possible.
func Convert(quantity float64, fromUnit, toUnit string) (float64, bool) {
	fromNorm := NormalizeUnit(fromUnit)
	toNorm := NormalizeUnit(toUnit)

	if fromNorm == toNorm {
		return quantity, true
	}
	if !CanConvert(fromUnit, toUnit) {
		return 0, false
	}

	switch UnitCategory(fromUnit) {
	case CategoryVolume:
		return quantity * volumeUnits[fromNorm] / volumeUnits[toNorm], true
	case CategoryWeight:
		return quantity * weightUnits[fromNorm] / weightUnits[toNorm], true
	}
	return 0, false
}

// BestUnit chooses the most readable unit for display, e.g. 1000 g
// becomes 1 kg and 32 tbsp becomes 2 cups.
func BestUnit(quantity float64, unit string) (float64, string) {
	normalized := NormalizeUnit(unit)

	switch UnitCategory(unit) {
	case CategoryVolume:
		switch {
		case quantity >= 16: // >= 1 gallon
			if q, ok := Convert(quantity, unit, "gallon"); ok {
				return q, "gallon"
			}
		case quantity >= 1: // >= 1 cup
			if q, ok := Convert(quantity, unit, "cup"); ok {
				if q > 1 {
					return q, "cups"
				}
				return q, "cup"
			}
		case quantity < 0.0625: // < 1 tbsp
			if q, ok := Convert(quantity, unit, "tsp"); ok {
				if q > 1 {
					return q, "teaspoons"
				}
				return q, "teaspoon"
			}
		default: // 1 tbsp to 1 cup
			if q, ok := Convert(quantity, unit, "tbsp"); ok {
				if q > 1 {
					return q, "tablespoons"
				}
				return q, "tablespoon"
			}
		}

	case CategoryWeight:
		grams, ok := Convert(quantity, unit, "g")
		if ok {
			switch {
			case grams >= 1000:
				return grams / 1000, "kg"
			case grams >= 28.35: // ~1 oz
				// Stay imperial when the source unit was imperial.
				switch normalized {
				case "oz", "ounce", "ounces", "lb", "lbs", "pound", "pounds":
					if grams >= 453.592 { // >= 1 lb
						lbs, _ := Convert(quantity, unit, "lb")
						if lbs > 1 {
							return lbs, "lbs"
						}
						return lbs, "lb"
					}
					oz, _ := Convert(quantity, unit, "oz")
					return oz, "oz"
				default:
					return grams, "g"
				}
			default:
				return grams, "g"
			}
		}
	}

	return quantity, unit
}
