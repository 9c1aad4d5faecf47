package models

import (
	"encoding/json"
	"strings"
)

// StringList is a slice of strings that tolerates upstream payloads encoding
// the field as either a single string or an array of strings.
type StringList []string

// UnmarshalJSON accepts `"Miami"`, `["Miami","Chicago"]` and `null`.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	if one == "" {
		*l = nil
		return nil
	}
	*l = StringList{one}
	return nil
}

// ContainsFold reports whether any entry contains s, case-insensitively.
// Partial values match, so "new" finds "New York".
func (l StringList) ContainsFold(s string) bool {
	s = strings.ToLower(s)
	for _, v := range l {
		if strings.Contains(strings.ToLower(v), s) {
			return true
		}
	}
	return false
}

// CarSpecifications holds the technical sub-document of a car record.
type CarSpecifications struct {
	Engine       string `json:"engine,omitempty"`
	Horsepower   int    `json:"horsepower,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	Seats        int    `json:"seats,omitempty"`
	Doors        int    `json:"doors,omitempty"`
	FuelType     string `json:"fuel_type,omitempty"`
}

// RawCar is a car record as the fleet API returns it. Fields may be missing,
// zero or inconsistently typed; it is never handed to the filter pipeline
// directly.
type RawCar struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Category        string            `json:"category"`
	Image           string            `json:"image"`
	Description     string            `json:"description"`
	Rating          float64           `json:"rating"`
	DailyRate       float64           `json:"daily_rate"`
	Location        StringList        `json:"location"`
	Specifications  CarSpecifications `json:"specifications"`
	AirConditioning bool              `json:"air_conditioning"`
	Bluetooth       bool              `json:"bluetooth"`
	GPS             bool              `json:"gps"`
	USB             bool              `json:"usb"`
}

// CanonicalCar is the normalized car record the rest of the service operates
// on. Invariants: Price is finite and positive, Image is non-empty, Location
// has at least one entry, and Features carries the derived display strings.
type CanonicalCar struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Category        string            `json:"category"`
	Image           string            `json:"image"`
	Description     string            `json:"description,omitempty"`
	Rating          float64           `json:"rating"`
	Price           float64           `json:"price"`
	Location        StringList        `json:"location"`
	Features        []string          `json:"features"`
	Specifications  CarSpecifications `json:"specifications"`
	AirConditioning bool              `json:"air_conditioning"`
	Bluetooth       bool              `json:"bluetooth"`
	GPS             bool              `json:"gps"`
	USB             bool              `json:"usb"`
}
