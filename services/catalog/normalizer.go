package catalog

import (
	"fmt"
	"math"

	"drivio/models"
)

// carSeed is a fixed identity entry for ids in the known seed range, used when
// upstream records arrive without display fields.
type carSeed struct {
	Name     string
	Category string
	Image    string
}

var carSeeds = map[int]carSeed{
	1:  {Name: "Rolls Royce Phantom", Category: "luxury", Image: "https://images.drivio.app/cars/rolls-royce-phantom.jpg"},
	2:  {Name: "Range Rover Sport", Category: "suv", Image: "https://images.drivio.app/cars/range-rover-sport.jpg"},
	3:  {Name: "Aston Martin DB11", Category: "sports", Image: "https://images.drivio.app/cars/aston-martin-db11.jpg"},
	4:  {Name: "Lamborghini Huracan", Category: "sports", Image: "https://images.drivio.app/cars/lamborghini-huracan.jpg"},
	5:  {Name: "Ferrari 488 Spider", Category: "sports", Image: "https://images.drivio.app/cars/ferrari-488-spider.jpg"},
	6:  {Name: "Tesla Model S Plaid", Category: "electric", Image: "https://images.drivio.app/cars/tesla-model-s.jpg"},
	7:  {Name: "BMW M5 Competition", Category: "sedan", Image: "https://images.drivio.app/cars/bmw-m5.jpg"},
	8:  {Name: "Mercedes S-Class", Category: "luxury", Image: "https://images.drivio.app/cars/mercedes-s-class.jpg"},
	9:  {Name: "Audi R8 V10", Category: "sports", Image: "https://images.drivio.app/cars/audi-r8.jpg"},
	10: {Name: "Porsche 911 Turbo S", Category: "sports", Image: "https://images.drivio.app/cars/porsche-911.jpg"},
	11: {Name: "Bentley Continental GT", Category: "luxury", Image: "https://images.drivio.app/cars/bentley-continental.jpg"},
	12: {Name: "McLaren 720S", Category: "sports", Image: "https://images.drivio.app/cars/mclaren-720s.jpg"},
}

const defaultCarImage = "https://images.drivio.app/cars/placeholder.jpg"

// defaultDailyRate is applied when the upstream record is missing a usable
// daily_rate. This is the single place such fields are defaulted; downstream
// code assumes Price is always a finite non-negative number.
const defaultDailyRate = 150

// fallbackLocations is the fixed pool assigned to cars that arrive without a
// location. Assignment is keyed off the car id so the same car always lands in
// the same city across refetches.
var fallbackLocations = []string{
	"New York",
	"Los Angeles",
	"Miami",
	"Chicago",
	"Las Vegas",
	"San Francisco",
}

// Normalize maps a raw upstream car payload to its canonical representation.
func Normalize(raw models.RawCar) models.CanonicalCar {
	car := models.CanonicalCar{
		ID:              raw.ID,
		Name:            raw.Name,
		Category:        raw.Category,
		Image:           raw.Image,
		Description:     raw.Description,
		Rating:          raw.Rating,
		Specifications:  raw.Specifications,
		AirConditioning: raw.AirConditioning,
		Bluetooth:       raw.Bluetooth,
		GPS:             raw.GPS,
		USB:             raw.USB,
	}

	// Seed identity wins over raw fields for known ids.
	if seed, ok := carSeeds[raw.ID]; ok {
		car.Name = seed.Name
		car.Category = seed.Category
		car.Image = seed.Image
	}
	if car.Image == "" {
		car.Image = defaultCarImage
	}

	car.Price = raw.DailyRate
	if car.Price <= 0 || math.IsNaN(car.Price) || math.IsInf(car.Price, 0) {
		car.Price = defaultDailyRate
	}

	if len(raw.Location) > 0 {
		car.Location = raw.Location
	} else {
		car.Location = models.StringList{stableLocation(raw.ID)}
	}

	car.Features = deriveFeatures(raw)
	return car
}

// NormalizeAll maps a full upstream collection.
func NormalizeAll(raw []models.RawCar) []models.CanonicalCar {
	cars := make([]models.CanonicalCar, 0, len(raw))
	for _, r := range raw {
		cars = append(cars, Normalize(r))
	}
	return cars
}

// stableLocation derives a location from the car id. Deterministic so the
// assignment never changes between fetches for the same car.
func stableLocation(id int) string {
	n := len(fallbackLocations)
	idx := ((id % n) + n) % n
	return fallbackLocations[idx]
}

func deriveFeatures(raw models.RawCar) []string {
	var features []string
	if raw.Specifications.Transmission != "" {
		features = append(features, raw.Specifications.Transmission)
	}
	if raw.Specifications.Seats > 0 {
		features = append(features, fmt.Sprintf("%d seats", raw.Specifications.Seats))
	}
	if raw.AirConditioning {
		features = append(features, "Air conditioning")
	}
	if raw.GPS {
		features = append(features, "GPS Navigation")
	}
	if raw.Bluetooth {
		features = append(features, "Bluetooth")
	}
	if raw.USB {
		features = append(features, "USB Port")
	}
	return dedupe(features)
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
