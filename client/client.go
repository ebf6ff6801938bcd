// Package client is a typed Go client for the Vehicle Trade API. It mirrors
// the REST surface resource by resource, attaches the session token to every
// request and surfaces non-2xx responses as *APIError. Every call is a single
// attempt; there is no retry or backoff anywhere in this package.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// BaseURLEnv names the environment variable the zero-argument constructor
// reads the API address from.
const BaseURLEnv = "VEHICLE_TRADE_API_URL"

// APIError is the decoded error envelope of a failed request
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

// Client talks to one Vehicle Trade API deployment. Create it with New or
// NewFromEnv; the zero value is not usable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string

	Orders    *OrdersService
	Shipments *ShipmentsService
	Payments  *PaymentsService
	Clients   *ClientsService
	Suppliers *SuppliersService
	Invoices  *InvoicesService
	Vehicles  *VehiclesService
	Companies *CompaniesService
}

// Option customizes a Client at construction time
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken sets the session token up front
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New builds a client for the API at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Orders = &OrdersService{client: c}
	c.Shipments = &ShipmentsService{client: c}
	c.Payments = &PaymentsService{client: c}
	c.Clients = &ClientsService{client: c}
	c.Suppliers = &SuppliersService{client: c}
	c.Invoices = &InvoicesService{client: c}
	c.Vehicles = &VehiclesService{client: c}
	c.Companies = &CompaniesService{client: c}
	return c
}

// NewFromEnv builds a client from the VEHICLE_TRADE_API_URL environment
// variable. The address is never compiled in.
func NewFromEnv(opts ...Option) (*Client, error) {
	baseURL := os.Getenv(BaseURLEnv)
	if baseURL == "" {
		return nil, fmt.Errorf("%s is not set", BaseURLEnv)
	}
	return New(baseURL, opts...), nil
}

// SetToken replaces the session token used on subsequent requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// Session is the payload returned by a successful login
type Session struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// SessionUser is the authenticated user as reported by the API
type SessionUser struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// Login authenticates with email and password and installs the returned
// token on the client
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &session); err != nil {
		return nil, err
	}
	c.token = session.Token
	return &session, nil
}

// Me returns the user behind the current session token
func (c *Client) Me(ctx context.Context) (*SessionUser, error) {
	var user SessionUser
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// envelope matches the API's response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
}

// do performs one request and decodes the envelope. out may be nil for calls
// whose payload the caller does not need.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded envelope
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decoded.Error
		if apiErr == nil {
			apiErr = &APIError{Code: "UNKNOWN", Message: "request failed"}
		}
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if out != nil && decoded.Data != nil {
		if err := json.Unmarshal(decoded.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
