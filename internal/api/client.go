// Package api is a thin JSON client for the sales API's create endpoints.
// The request and response schemas are owned by the remote service; this
// package only encodes them and reports outcomes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"semilla/internal/models"
)

// Resource paths consumed by the seeder. The upstream routes carry a
// trailing slash; dropping it triggers a redirect on some deployments.
const (
	PathUsuarios  = "/usuarios/"
	PathProductos = "/productos/"
	PathClientes  = "/clientes/"
)

const maxErrorBody = 4 << 10

// errDecode marks a malformed success response. The create went through, so
// the request must not be replayed.
var errDecode = errors.New("decode response")

// StatusError reports a non-2xx response, preserving the error payload for
// the log sink.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Options configure a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// Retries is the number of additional attempts after a transport
	// error or 5xx response. 4xx responses are never retried.
	Retries int
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client submits seed records to the remote API.
type Client struct {
	baseURL string
	http    *http.Client
	retries int
}

// NewClient creates a Client for the given base URL.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	retries := opts.Retries
	if retries < 0 {
		retries = 0
	}
	return &Client{baseURL: opts.BaseURL, http: httpClient, retries: retries}
}

// CreateUsuario submits one user and returns the created representation.
func (c *Client) CreateUsuario(ctx context.Context, in models.UsuarioCreate) (*models.Usuario, error) {
	var out models.Usuario
	if err := c.post(ctx, PathUsuarios, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProducto submits one product and returns the created representation.
func (c *Client) CreateProducto(ctx context.Context, in models.ProductoCreate) (*models.Producto, error) {
	var out models.Producto
	if err := c.post(ctx, PathProductos, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCliente submits one client record and returns the created representation.
func (c *Client) CreateCliente(ctx context.Context, in models.ClienteCreate) (*models.Cliente, error) {
	var out models.Cliente
	if err := c.post(ctx, PathClientes, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = c.postOnce(ctx, path, payload, out)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) postOnce(ctx context.Context, path string, payload []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", errDecode, err)
	}
	return nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, errDecode) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	// Transport-level failures are worth one more try.
	return true
}
