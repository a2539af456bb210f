package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"ticket-storefront/internal/models"
)

// ClientConfig configures the platform API client
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the platform REST API
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new platform API client
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// apiError is the error payload shape the backend uses
type apiError struct {
	Error string `json:"error"`
}

// GetEvent fetches an event including its nested ticket types
func (c *Client) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := c.doJSON(ctx, http.MethodGet, "/events/"+url.PathEscape(id), "", nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// PurchaseTickets submits a purchase request over an authenticated channel
func (c *Client) PurchaseTickets(ctx context.Context, token string, req *models.PurchaseRequest) (*models.PurchaseResponse, error) {
	var resp models.PurchaseResponse
	if err := c.doJSON(ctx, http.MethodPost, "/tickets/purchase", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyPayment resolves a payment reference to an outcome. No token is sent:
// verification stays possible after the session expired during the detour
// through the payment provider.
func (c *Client) VerifyPayment(ctx context.Context, reference string) (*models.VerificationResult, error) {
	var result models.VerificationResult
	path := "/payments/verify?reference=" + url.QueryEscape(reference)
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPlatformSettings fetches the public platform settings
func (c *Client) GetPlatformSettings(ctx context.Context) (*models.PlatformSettings, error) {
	var settings models.PlatformSettings
	if err := c.doJSON(ctx, http.MethodGet, "/settings", "", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// doJSON performs one request/response cycle against the backend. Transport
// failures come back as *models.NetworkError, non-2xx responses as
// *models.BackendError (or ErrAuthentication for rejected credentials).
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out interface{}) error {
	op := fmt.Sprintf("%s %s", method, path)

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return &models.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleAPIError(resp.StatusCode, bodyBytes, token != "")
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// handleAPIError maps a non-success backend response into the error taxonomy.
// A rejected credential on an authenticated call is kept distinct from a
// generic rejection so a token expiring mid-flow surfaces as what it is.
func (c *Client) handleAPIError(statusCode int, body []byte, authenticated bool) error {
	var payload apiError
	_ = json.Unmarshal(body, &payload)

	if authenticated && (statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden) {
		return models.ErrAuthentication
	}

	if statusCode == http.StatusNotFound && payload.Error == "" {
		return &models.BackendError{StatusCode: statusCode, Message: "not found"}
	}

	return &models.BackendError{StatusCode: statusCode, Message: payload.Error}
}
