package catalog

import (
	"strings"

	"drivio/models"
)

// Brand keyword sets for free-text query disambiguation. Car names contain
// multi-word brands, so a naive substring match would let "range" hit a
// description containing "long range battery" while missing "Range Rover".
var (
	// composedBrands are multi-word brand names matched as whole phrases.
	composedBrands = []string{"rolls royce", "rolls-royce", "range rover", "aston martin"}

	// brandParts are single words that are fragments of a composed brand.
	brandParts = []string{"range", "rover", "rolls", "royce", "aston", "martin"}

	// simpleBrands are standalone single-word brands matched as whole words.
	simpleBrands = []string{
		"audi", "bmw", "mercedes", "tesla", "porsche", "bentley",
		"ferrari", "lamborghini", "maserati", "lexus", "cadillac", "mclaren",
	}
)

// MatchesFeature reports whether the car exhibits the given feature. Keywords
// are resolved via the catalog (defaulting to the id itself) and probed
// case-insensitively against the car's feature strings, description and
// specification sub-fields, with special rules for horsepower and the
// boolean comfort flags. Checks short-circuit on the first hit; absent
// sub-fields are skipped.
func MatchesFeature(car models.CanonicalCar, featureID string) bool {
	keywords := []string{strings.ToLower(featureID)}
	if def, ok := Lookup(featureID); ok && len(def.Keywords) > 0 {
		keywords = def.Keywords
	}

	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		for _, f := range car.Features {
			if strings.Contains(strings.ToLower(f), kw) {
				return true
			}
		}
		if car.Description != "" && strings.Contains(strings.ToLower(car.Description), kw) {
			return true
		}
		if eng := car.Specifications.Engine; eng != "" && strings.Contains(strings.ToLower(eng), kw) {
			return true
		}
		if tr := car.Specifications.Transmission; tr != "" && strings.Contains(strings.ToLower(tr), kw) {
			return true
		}
	}

	if strings.EqualFold(featureID, "horsepower") && car.Specifications.Horsepower >= 400 {
		return true
	}

	switch strings.ToLower(featureID) {
	case "air conditioning":
		return car.AirConditioning
	case "bluetooth":
		return car.Bluetooth
	case "navigation":
		return car.GPS
	case "usb":
		return car.USB
	}
	return false
}

// MatchesQuery reports whether the car matches a free-text search query.
// Brand queries are dispatched through the composed/part/simple tiers before
// falling back to a generic substring match over name, description, feature
// strings and category. A blank query matches everything.
func MatchesQuery(car models.CanonicalCar, rawQuery string) bool {
	query := strings.ToLower(strings.TrimSpace(rawQuery))
	if query == "" {
		return true
	}
	name := strings.ToLower(car.Name)

	for _, brand := range composedBrands {
		if query == brand {
			return strings.Contains(name, brand)
		}
	}

	for _, part := range brandParts {
		if query != part {
			continue
		}
		for _, brand := range composedBrands {
			if strings.Contains(brand, part) && strings.Contains(name, brand) {
				return true
			}
		}
		return false
	}

	for _, brand := range simpleBrands {
		if query != brand {
			continue
		}
		for _, word := range strings.Fields(name) {
			if word == query {
				return true
			}
		}
		return false
	}

	if strings.Contains(name, query) {
		return true
	}
	if strings.Contains(strings.ToLower(car.Description), query) {
		return true
	}
	for _, f := range car.Features {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(car.Category), query)
}
