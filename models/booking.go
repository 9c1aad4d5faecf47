package models

import (
	"strings"
	"time"
)

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// LocalIDPrefix marks booking ids minted locally when the remote create call
// failed. Reconciliation replays these against the remote API.
const LocalIDPrefix = "local-"

// BookingIntent is one booking attempt as submitted by the storefront.
// Ephemeral; constructed per attempt.
type BookingIntent struct {
	UserID          string   `json:"user_id"`
	CarID           string   `json:"car_id"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	TotalDays       int      `json:"total_days"`
	PickupLocation  string   `json:"pickup_location"`
	DropoffLocation string   `json:"dropoff_location"`
	Options         []string `json:"options,omitempty"`
	OptionsPrice    float64  `json:"options_price"`
	TotalPrice      float64  `json:"total_price"`
}

// BookingRecord is a completed booking, either remote (authoritative) or
// local (fallback written while the remote API was unreachable). A cancelled
// booking is never deleted, only marked.
type BookingRecord struct {
	ID              string        `bson:"id" json:"id"`
	UserID          string        `bson:"user_id" json:"user_id"`
	CarID           string        `bson:"car_id" json:"car_id"`
	StartDate       string        `bson:"start_date" json:"start_date"`
	EndDate         string        `bson:"end_date" json:"end_date"`
	TotalDays       int           `bson:"total_days" json:"total_days"`
	PickupLocation  string        `bson:"pickup_location" json:"pickup_location"`
	DropoffLocation string        `bson:"dropoff_location" json:"dropoff_location"`
	Options         []string      `bson:"options,omitempty" json:"options,omitempty"`
	OptionsPrice    float64       `bson:"options_price" json:"options_price"`
	TotalPrice      float64       `bson:"total_price" json:"total_price"`
	Status          BookingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}

// IsLocal reports whether the record was minted by the local fallback path.
func (r BookingRecord) IsLocal() bool {
	return strings.HasPrefix(r.ID, LocalIDPrefix)
}
