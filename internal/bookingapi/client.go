package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elvinmirzazada/salona-dashboard/internal/httperr"
	"github.com/elvinmirzazada/salona-dashboard/internal/models"
)

// ======================================================
// CLIENT
// ======================================================

// Client talks to the remote booking service, the source of truth for
// bookings, time-offs and customers. This side only holds a projection.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// envelope is the uniform response wrapper of the booking service.
// success=false still decodes so the message can be surfaced.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("booking service unreachable",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, httperr.ErrRemote("")
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, httperr.ErrRemote(fmt.Sprintf("booking service returned %d", resp.StatusCode))
		}
		return nil, httperr.ErrRemote("")
	}

	if !env.Success {
		c.log.Warn("booking service rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", env.Message),
		)
		return nil, httperr.ErrRemote(env.Message)
	}

	return env.Data, nil
}

func decode[T any](raw json.RawMessage) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, httperr.ErrRemote("")
	}
	return out, nil
}

// ======================================================
// BOOKINGS
// ======================================================

const dateParamLayout = "2006-01-02"

func (c *Client) ListBookings(ctx context.Context, start, end *time.Time) ([]models.Booking, error) {
	q := url.Values{}
	if start != nil {
		q.Set("start_date", start.UTC().Format(dateParamLayout))
	}
	if end != nil {
		q.Set("end_date", end.UTC().Format(dateParamLayout))
	}

	raw, err := c.do(ctx, http.MethodGet, "/bookings", q, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Booking](raw)
}

func (c *Client) CreateBooking(ctx context.Context, payload BookingPayload) (*models.Booking, error) {
	raw, err := c.do(ctx, http.MethodPost, "/bookings", nil, payload)
	if err != nil {
		return nil, err
	}
	return decode[*models.Booking](raw)
}

func (c *Client) UpdateBooking(ctx context.Context, id string, payload BookingPayload) (*models.Booking, error) {
	raw, err := c.do(ctx, http.MethodPut, "/bookings/"+id, nil, payload)
	if err != nil {
		return nil, err
	}
	return decode[*models.Booking](raw)
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status string) (*models.Booking, error) {
	raw, err := c.do(ctx, http.MethodPatch, "/bookings/"+id+"/status", nil, map[string]string{"status": status})
	if err != nil {
		return nil, err
	}
	return decode[*models.Booking](raw)
}

func (c *Client) MarkNoShow(ctx context.Context, id string) (*models.Booking, error) {
	raw, err := c.do(ctx, http.MethodPost, "/bookings/"+id+"/no-show", nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[*models.Booking](raw)
}

func (c *Client) MarkCompleted(ctx context.Context, id string) (*models.Booking, error) {
	raw, err := c.do(ctx, http.MethodPost, "/bookings/"+id+"/complete", nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[*models.Booking](raw)
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/bookings/"+id, nil, nil)
	return err
}

// ======================================================
// TIME OFFS
// ======================================================

func (c *Client) ListTimeOffs(ctx context.Context) ([]models.TimeOff, error) {
	raw, err := c.do(ctx, http.MethodGet, "/time-offs", nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.TimeOff](raw)
}

func (c *Client) CreateTimeOff(ctx context.Context, payload TimeOffPayload) (*models.TimeOff, error) {
	raw, err := c.do(ctx, http.MethodPost, "/time-offs", nil, payload)
	if err != nil {
		return nil, err
	}
	return decode[*models.TimeOff](raw)
}

func (c *Client) UpdateTimeOff(ctx context.Context, id string, payload TimeOffPayload) (*models.TimeOff, error) {
	raw, err := c.do(ctx, http.MethodPut, "/time-offs/"+id, nil, payload)
	if err != nil {
		return nil, err
	}
	return decode[*models.TimeOff](raw)
}

func (c *Client) DeleteTimeOff(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/time-offs/"+id, nil, nil)
	return err
}

// ======================================================
// CUSTOMERS
// ======================================================

// Customers are listed only to resolve display names.
func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	raw, err := c.do(ctx, http.MethodGet, "/customers", nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Customer](raw)
}
