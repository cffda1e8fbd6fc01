package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"varsha-travels/internal/models"
	"varsha-travels/internal/services"
)

// APIError is a non-2xx response. Message comes from the {"message"} body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to the Varsha Travels REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithToken sends the admin bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Login(ctx context.Context, email, password string) (*services.LoginResponse, error) {
	var out services.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/admin/login", services.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

func (c *Client) Destinations(ctx context.Context) ([]models.Destination, error) {
	return list[models.Destination](ctx, c, "/api/destinations")
}

func (c *Client) CreateDestination(ctx context.Context, in models.DestinationInput) (*models.Destination, error) {
	return one[models.Destination](ctx, c, http.MethodPost, "/api/destinations", in)
}

func (c *Client) UpdateDestination(ctx context.Context, id string, patch models.DestinationPatch) (*models.Destination, error) {
	return one[models.Destination](ctx, c, http.MethodPut, "/api/destinations/"+id, patch)
}

func (c *Client) DeleteDestination(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/destinations/"+id, nil, nil)
}

func (c *Client) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	return list[models.Vehicle](ctx, c, "/api/vehicles")
}

func (c *Client) CreateVehicle(ctx context.Context, in models.VehicleInput) (*models.Vehicle, error) {
	return one[models.Vehicle](ctx, c, http.MethodPost, "/api/vehicles", in)
}

func (c *Client) UpdateVehicle(ctx context.Context, id string, patch models.VehiclePatch) (*models.Vehicle, error) {
	return one[models.Vehicle](ctx, c, http.MethodPut, "/api/vehicles/"+id, patch)
}

func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/vehicles/"+id, nil, nil)
}

func (c *Client) Reviews(ctx context.Context) ([]models.Review, error) {
	return list[models.Review](ctx, c, "/api/reviews")
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/reviews/"+id, nil, nil)
}

func (c *Client) Bookings(ctx context.Context) ([]models.Booking, error) {
	return list[models.Booking](ctx, c, "/api/bookings")
}

func (c *Client) SetBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	body := models.BookingStatusUpdate{Status: models.Some(string(status))}
	return one[models.Booking](ctx, c, http.MethodPut, "/api/bookings/"+id, body)
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/bookings/"+id, nil, nil)
}

func (c *Client) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	return list[models.ContactMessage](ctx, c, "/api/contact")
}

func (c *Client) UpdateMessage(ctx context.Context, id string, update models.ContactMessageUpdate) (*models.ContactMessage, error) {
	return one[models.ContactMessage](ctx, c, http.MethodPut, "/api/contact/"+id, update)
}

func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/contact/"+id, nil, nil)
}

func (c *Client) ContactSettings(ctx context.Context) (*models.ContactSettings, error) {
	return one[models.ContactSettings](ctx, c, http.MethodGet, "/api/contact-settings", nil)
}

func (c *Client) UpdateContactSettings(ctx context.Context, id string, patch models.ContactSettingsPatch) (*models.ContactSettings, error) {
	return one[models.ContactSettings](ctx, c, http.MethodPut, "/api/contact-settings/"+id, patch)
}

func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func one[T any](ctx context.Context, c *Client, method, path string, in interface{}) (*T, error) {
	var out T
	if err := c.do(ctx, method, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadImage posts r as the multipart "image" field.
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (*services.UploadResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filepath.Base(filename)))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/upload", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out services.UploadResult
	if err := c.send(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		if method == http.MethodPut {
			if data, err = dropNulls(data); err != nil {
				return fmt.Errorf("failed to encode request: %w", err)
			}
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil || msg.Message == "" {
			msg.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// dropNulls removes top level null keys. Unset models.Optional fields
// marshal as null, and the API treats a null key as sent.
func dropNulls(data []byte) ([]byte, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for key, value := range fields {
		if string(bytes.TrimSpace(value)) == "null" {
			delete(fields, key)
		}
	}
	return json.Marshal(fields)
}
