package models

// Sort keys accepted by the discovery pipeline.
const (
	SortRecommended = "recommended"
	SortPriceLow    = "price-low"
	SortPriceHigh   = "price-high"
	SortRating      = "rating"
)

// FilterAll is the sentinel meaning "no constraint" for location and category.
const FilterAll = "all"

// FilterState holds the storefront's active discovery filters. Mutated only in
// response to explicit user filter actions.
type FilterState struct {
	Location   string     `json:"location"`
	Category   string     `json:"category"`
	PriceRange [2]float64 `json:"price_range"` // inclusive [min, max], min <= max
	Features   []string   `json:"features"`    // selected feature ids
}

// DefaultFilterState returns the reset state: no location or category
// constraint, the full default price band, no selected features.
func DefaultFilterState() FilterState {
	return FilterState{
		Location:   FilterAll,
		Category:   FilterAll,
		PriceRange: [2]float64{0, 1000},
	}
}
