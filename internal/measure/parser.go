package measure

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	mixedNumberRe = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)\s*(.+)$`)
	fractionRe    = regexp.MustCompile(`^(\d+)/(\d+)\s*(.+)$`)
	simpleRe      = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(.+)$`)
	leadingNumRe  = regexp.MustCompile(`^(\d+(?:\.\d+)?)`)
)

// ParseMeasurement parses a measurement string into quantity and unit.
//
//	"2 cups"          -> (2, "cups")
//	"1.5 tablespoons" -> (1.5, "tablespoons")
//	"1/2 cup"         -> (0.5, "cup")
//	"1 1/2 cups"      -> (1.5, "cups")
//	"3"               -> (3, "piece")
//
// Strings with no leading number come back as quantity 1 with the whole
// string as the unit.
func ParseMeasurement(measurement string) (float64, string) {
	measurement = strings.TrimSpace(measurement)

	// Mixed number first, e.g. "1 1/2 cups".
	if m := mixedNumberRe.FindStringSubmatch(measurement); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den != 0 {
			return whole + num/den, strings.TrimSpace(m[4])
		}
	}

	// Simple fraction, e.g. "1/2 cup".
	if m := fractionRe.FindStringSubmatch(measurement); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den != 0 {
			return num / den, strings.TrimSpace(m[3])
		}
	}

	// Decimal or whole number with a unit, e.g. "2 cups".
	if m := simpleRe.FindStringSubmatch(measurement); m != nil {
		qty, _ := strconv.ParseFloat(m[1], 64)
		return qty, strings.TrimSpace(m[2])
	}

	// Bare number with no unit.
	if m := leadingNumRe.FindStringSubmatch(measurement); m != nil {
		qty, _ := strconv.ParseFloat(m[1], 64)
		unit := strings.TrimSpace(measurement[len(m[1]):])
		if unit == "" {
			unit = "piece"
		}
		return qty, unit
	}

	// Unparseable: quantity 1, whole string as the unit/description.
	return 1, measurement
}

// qualifiers stripped by ExtractIngredientName.
var nameQualifiers = map[string]bool{
	"fresh": true, "dried": true, "frozen": true, "canned": true,
	"chopped": true, "diced": true, "minced": true, "sliced": true,
	"grated": true, "shredded": true, "crushed": true, "ground": true,
	"whole": true, "halved": true, "quartered": true, "peeled": true,
	"deveined": true, "boneless": true, "skinless": true, "organic": true,
	"raw": true, "cooked": true,
}

// ExtractIngredientName strips preparation qualifiers from an ingredient
// name, e.g. "fresh chopped tomatoes" -> "tomatoes".
func ExtractIngredientName(fullName string) string {
	words := strings.Fields(strings.ToLower(fullName))
	filtered := words[:0]
	for _, w := range words {
		if !nameQualifiers[w] {
			filtered = append(filtered, w)
		}
	}
	if len(filtered) == 0 {
		return fullName
	}
	return strings.Join(filtered, " ")
}
