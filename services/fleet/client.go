package fleet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"drivio/models"

	"go.uber.org/zap"
)

// API is the upstream car-rental backend consumed by drivio. Implementations
// must treat any transport or envelope failure as an error; the booking
// service layers its local fallbacks on top.
type API interface {
	AvailableCars(ctx context.Context) ([]models.RawCar, error)
	CarsByCategory(ctx context.Context, category string) ([]models.RawCar, error)
	CarsByLocation(ctx context.Context, location string) ([]models.RawCar, error)
	CarByID(ctx context.Context, id int) (*models.RawCar, error)

	CreateBooking(ctx context.Context, intent models.BookingIntent) (*models.BookingRecord, error)
	ListBookings(ctx context.Context, userID string) ([]models.BookingRecord, error)
	CancelBooking(ctx context.Context, id string) (*models.BookingRecord, error)
}

// RESTClient implements API over the upstream REST surface.
type RESTClient struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *zap.Logger
}

// NewRESTClient builds a client with the given base URL and request timeout.
// The timeout is the only bound on call duration; there is no per-call retry.
func NewRESTClient(baseURL string, timeout time.Duration, logger *zap.Logger) *RESTClient {
	return &RESTClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

func (c *RESTClient) AvailableCars(ctx context.Context) ([]models.RawCar, error) {
	body, err := c.do(ctx, http.MethodGet, "/cars/available", nil)
	if err != nil {
		return nil, err
	}
	return decodeCarList(body)
}

func (c *RESTClient) CarsByCategory(ctx context.Context, category string) ([]models.RawCar, error) {
	body, err := c.do(ctx, http.MethodGet, "/cars/category/"+url.PathEscape(category), nil)
	if err != nil {
		return nil, err
	}
	return decodeCarList(body)
}

func (c *RESTClient) CarsByLocation(ctx context.Context, location string) ([]models.RawCar, error) {
	body, err := c.do(ctx, http.MethodGet, "/cars/location/"+url.PathEscape(location), nil)
	if err != nil {
		return nil, err
	}
	return decodeCarList(body)
}

func (c *RESTClient) CarByID(ctx context.Context, id int) (*models.RawCar, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cars/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeCar(body)
}

func (c *RESTClient) CreateBooking(ctx context.Context, intent models.BookingIntent) (*models.BookingRecord, error) {
	payload, err := json.Marshal(intent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking intent: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, "/bookings", payload)
	if err != nil {
		return nil, err
	}
	return decodeBooking(body)
}

func (c *RESTClient) ListBookings(ctx context.Context, userID string) ([]models.BookingRecord, error) {
	body, err := c.do(ctx, http.MethodGet, "/bookings?user_id="+url.QueryEscape(userID), nil)
	if err != nil {
		return nil, err
	}
	return decodeBookingList(body)
}

func (c *RESTClient) CancelBooking(ctx context.Context, id string) (*models.BookingRecord, error) {
	body, err := c.do(ctx, http.MethodPut, "/bookings/"+url.PathEscape(id)+"/cancel", nil)
	if err != nil {
		return nil, err
	}
	return decodeBooking(body)
}

func (c *RESTClient) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fleet api request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read fleet api response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Logger.Warn("fleet api returned non-2xx status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", ErrRemoteFailure, resp.StatusCode)
	}
	return body, nil
}
