package catalog

import "drivio/models"

// featureOrder fixes the iteration order of the catalog so feature lists are
// reproducible across calls.
var featureOrder = []string{
	"air conditioning",
	"bluetooth",
	"navigation",
	"usb",
	"automatic",
	"horsepower",
	"convertible",
	"leather",
	"sunroof",
	"awd",
	"electric",
	"hybrid",
}

// featureCatalog is the static registry of filterable features. Keywords are
// the synonym strings the match engine probes for; labels are display strings
// keyed by language code.
var featureCatalog = map[string]models.FeatureDefinition{
	"air conditioning": {
		ID:       "air conditioning",
		Keywords: []string{"air conditioning", "climate control", "a/c"},
		Labels:   map[string]string{"en": "Air conditioning", "fr": "Climatisation", "es": "Aire acondicionado"},
	},
	"bluetooth": {
		ID:       "bluetooth",
		Keywords: []string{"bluetooth"},
		Labels:   map[string]string{"en": "Bluetooth", "fr": "Bluetooth", "es": "Bluetooth"},
	},
	"navigation": {
		ID:       "navigation",
		Keywords: []string{"navigation", "gps", "sat nav"},
		Labels:   map[string]string{"en": "GPS Navigation", "fr": "Navigation GPS", "es": "Navegación GPS"},
	},
	"usb": {
		ID:       "usb",
		Keywords: []string{"usb", "usb port"},
		Labels:   map[string]string{"en": "USB Port", "fr": "Port USB", "es": "Puerto USB"},
	},
	"automatic": {
		ID:       "automatic",
		Keywords: []string{"automatic"},
		Labels:   map[string]string{"en": "Automatic transmission", "fr": "Boîte automatique", "es": "Transmisión automática"},
	},
	"horsepower": {
		ID:       "horsepower",
		Keywords: []string{"horsepower", "high performance"},
		Labels:   map[string]string{"en": "400+ horsepower", "fr": "400+ chevaux", "es": "400+ caballos"},
	},
	"convertible": {
		ID:       "convertible",
		Keywords: []string{"convertible", "cabriolet", "roadster"},
		Labels:   map[string]string{"en": "Convertible", "fr": "Cabriolet", "es": "Convertible"},
	},
	"leather": {
		ID:       "leather",
		Keywords: []string{"leather"},
		Labels:   map[string]string{"en": "Leather seats", "fr": "Sièges en cuir", "es": "Asientos de cuero"},
	},
	"sunroof": {
		ID:       "sunroof",
		Keywords: []string{"sunroof", "panoramic roof"},
		Labels:   map[string]string{"en": "Sunroof", "fr": "Toit ouvrant", "es": "Techo solar"},
	},
	"awd": {
		ID:       "awd",
		Keywords: []string{"awd", "all-wheel", "4wd"},
		Labels:   map[string]string{"en": "All-wheel drive", "fr": "Transmission intégrale", "es": "Tracción total"},
	},
	"electric": {
		ID:       "electric",
		Keywords: []string{"electric", "ev"},
		Labels:   map[string]string{"en": "Electric", "fr": "Électrique", "es": "Eléctrico"},
	},
	"hybrid": {
		ID:       "hybrid",
		Keywords: []string{"hybrid"},
		Labels:   map[string]string{"en": "Hybrid", "fr": "Hybride", "es": "Híbrido"},
	},
}

// Lookup returns the feature definition for the given id. A missing id is not
// an error; callers treat it as "feature contributes nothing to matching".
func Lookup(featureID string) (models.FeatureDefinition, bool) {
	def, ok := featureCatalog[featureID]
	return def, ok
}

// AllFeatures returns every catalog entry in fixed order.
func AllFeatures() []models.FeatureDefinition {
	features := make([]models.FeatureDefinition, 0, len(featureOrder))
	for _, id := range featureOrder {
		features = append(features, featureCatalog[id])
	}
	return features
}
