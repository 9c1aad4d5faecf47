package fleet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"drivio/models"
)

// ErrUnexpectedFormat is returned when a listing response matches none of the
// accepted envelope shapes.
var ErrUnexpectedFormat = errors.New("unexpected response format")

// ErrRemoteFailure is returned when the upstream reports success=false or a
// non-2xx status.
var ErrRemoteFailure = errors.New("upstream request failed")

// listEnvelope covers the two wrapped shapes the upstream emits:
// {success, data: [...]} and {data: [...]}.
type listEnvelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// decodeCarList resolves the tagged union of accepted car collection shapes:
// a bare array, {success, data}, or {data}.
func decodeCarList(body []byte) ([]models.RawCar, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var cars []models.RawCar
		if err := json.Unmarshal(trimmed, &cars); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
		}
		return cars, nil
	}

	var env listEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	if env.Success != nil && !*env.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemoteFailure, env.Message)
	}
	if len(env.Data) == 0 {
		return nil, ErrUnexpectedFormat
	}
	var cars []models.RawCar
	if err := json.Unmarshal(env.Data, &cars); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	return cars, nil
}

// decodeCar resolves a single-record response: a bare object, {success, data},
// or {data}.
func decodeCar(body []byte) (*models.RawCar, error) {
	trimmed := bytes.TrimSpace(body)

	var env listEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	if env.Success != nil && !*env.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemoteFailure, env.Message)
	}

	payload := trimmed
	if len(env.Data) > 0 {
		payload = env.Data
	}
	var car models.RawCar
	if err := json.Unmarshal(payload, &car); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	if car.ID == 0 {
		return nil, ErrUnexpectedFormat
	}
	return &car, nil
}

// bookingEnvelope wraps booking API responses.
type bookingEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeBooking(body []byte) (*models.BookingRecord, error) {
	var env bookingEnvelope
	if err := json.Unmarshal(bytes.TrimSpace(body), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemoteFailure, env.Message)
	}
	var rec models.BookingRecord
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	return &rec, nil
}

func decodeBookingList(body []byte) ([]models.BookingRecord, error) {
	var env bookingEnvelope
	if err := json.Unmarshal(bytes.TrimSpace(body), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemoteFailure, env.Message)
	}
	var recs []models.BookingRecord
	if err := json.Unmarshal(env.Data, &recs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	return recs, nil
}
