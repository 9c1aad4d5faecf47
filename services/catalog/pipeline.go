package catalog

import (
	"sort"
	"strings"

	"drivio/models"
)

// FilterCars applies the active filter state and free-text query to a car
// collection. Predicates are conjunctive: location and category (skipped when
// "all"), inclusive price range (always applied), selected features (a car
// passes when it matches at least ONE selected feature — union semantics, so
// stacking filters does not empty the result too aggressively), and the text
// query (skipped when blank). The input slice is not mutated.
func FilterCars(cars []models.CanonicalCar, state models.FilterState, query string) []models.CanonicalCar {
	query = strings.TrimSpace(query)
	filtered := make([]models.CanonicalCar, 0, len(cars))
	for _, car := range cars {
		if state.Location != models.FilterAll && state.Location != "" && !car.Location.ContainsFold(state.Location) {
			continue
		}
		if state.Category != models.FilterAll && state.Category != "" && !strings.EqualFold(car.Category, state.Category) {
			continue
		}
		if car.Price < state.PriceRange[0] || car.Price > state.PriceRange[1] {
			continue
		}
		if len(state.Features) > 0 && !matchesAnySelected(car, state.Features) {
			continue
		}
		if query != "" && !MatchesQuery(car, query) {
			continue
		}
		filtered = append(filtered, car)
	}
	return filtered
}

func matchesAnySelected(car models.CanonicalCar, featureIDs []string) bool {
	for _, id := range featureIDs {
		if MatchesFeature(car, id) {
			return true
		}
	}
	return false
}

// SortCars returns a new slice sorted by the given key. The sort is stable and
// the input is never mutated; "recommended" (and any unknown key) preserves
// the upstream order.
func SortCars(cars []models.CanonicalCar, sortKey string) []models.CanonicalCar {
	sorted := make([]models.CanonicalCar, len(cars))
	copy(sorted, cars)

	switch sortKey {
	case models.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case models.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case models.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	}
	return sorted
}

// AvailableFeatures prunes the feature checklist to entries that are either
// already selected or match at least one car in the current filtered set.
// An empty car set falls back to the full catalog rather than showing nothing.
func AvailableFeatures(cars []models.CanonicalCar, selected []string) []models.FeatureDefinition {
	if len(cars) == 0 {
		return AllFeatures()
	}

	selectedSet := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		selectedSet[id] = struct{}{}
	}

	var available []models.FeatureDefinition
	for _, def := range AllFeatures() {
		if _, ok := selectedSet[def.ID]; ok {
			available = append(available, def)
			continue
		}
		for _, car := range cars {
			if MatchesFeature(car, def.ID) {
				available = append(available, def)
				break
			}
		}
	}
	return available
}
