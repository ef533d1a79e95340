// Package client is a Go client for the product catalog REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/pkg/retry"
	"github.com/sirupsen/logrus"
)

// APIError is returned for every non-2xx answer and for transport failures,
// which are reported with status 503.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) StatusCode() int { return e.Status }

type Client struct {
	baseURL        string
	http           *http.Client
	retry          retry.Options
	onUnauthorized func()
	log            *logrus.Logger

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

func WithRetry(opts retry.Options) Option { return func(c *Client) { c.retry = opts } }

func WithLogger(l *logrus.Logger) Option { return func(c *Client) { c.log = l } }

// WithOnUnauthorized registers a callback run after any 401, once the stored
// token has been cleared.
func WithOnUnauthorized(fn func()) Option { return func(c *Client) { c.onUnauthorized = fn } }

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		retry:   retry.DefaultOptions(),
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.retry.OnRetry == nil {
		c.retry.OnRetry = func(attempt int, err error, delay time.Duration) {
			c.log.Warnf("Client: Retrying (attempt %d) in %s after: %v", attempt, delay, err)
		}
	}
	return c
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Logout() { c.SetToken("") }

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProducts(ctx context.Context, q ProductQuery) (*Page[Product], error) {
	path := "/api/products"
	if v := q.values(); len(v) > 0 {
		path += "?" + v.Encode()
	}
	return getJSON[Page[Product]](ctx, c, path)
}

func (c *Client) GetProduct(ctx context.Context, id int) (*ProductDetail, error) {
	return getJSON[ProductDetail](ctx, c, fmt.Sprintf("/api/products/%d", id))
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*ProductDetail, error) {
	var out ProductDetail
	if err := c.do(ctx, http.MethodPost, "/api/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, in ProductInput) (*ProductDetail, error) {
	var out ProductDetail
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}

func (c *Client) BulkGenerate(ctx context.Context, count int) (*BulkResult, error) {
	var out BulkResult
	if err := c.do(ctx, http.MethodPost, "/api/products/bulk", map[string]int{"count": count}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	out, err := getJSON[[]Category](ctx, c, "/api/categories")
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (c *Client) GetCategory(ctx context.Context, id int) (*Category, error) {
	return getJSON[Category](ctx, c, fmt.Sprintf("/api/categories/%d", id))
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	var out Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	out, err := getJSON[[]Supplier](ctx, c, "/api/suppliers")
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// getJSON performs an idempotent GET, retried on transient statuses.
func getJSON[T any](ctx context.Context, c *Client, path string) (*T, error) {
	return retry.Do(ctx, c.retry, func(ctx context.Context) (*T, error) {
		var out T
		if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Errorf("Client: %s %s failed: %v", method, path, err)
		return &APIError{Status: http.StatusServiceUnavailable, Message: "network error: " + err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: http.StatusServiceUnavailable, Message: "network error: " + err.Error()}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.Logout()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Status, raw), Body: raw}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func errorMessage(status string, body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
		return envelope.Message
	}
	return status
}
