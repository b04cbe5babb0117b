package runtimecheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPHandle reaches the backend canister through an HTTP gateway that
// exposes each canister method as POST <BaseURL>/api/<Canister>/<method>.
type HTTPHandle struct {
	BaseURL  string        // gateway URL (required)
	Canister string        // canister name (default: backend)
	Timeout  time.Duration // per-request timeout (default: 5s)
	Client   HTTPClient    // injected for testing
}

// Methods validates the gateway address and lists the callable methods.
func (h *HTTPHandle) Methods() ([]string, error) {
	if _, err := h.endpoint(MethodRunPreflightChecks); err != nil {
		return nil, err
	}
	return []string{MethodRunPreflightChecks}, nil
}

// RunPreflightChecks calls the backend diagnostic method. A rejection whose
// message says the call is not supported is reported as ErrUnsupported.
func (h *HTTPHandle) RunPreflightChecks(ctx context.Context) error {
	endpoint, err := h.endpoint(MethodRunPreflightChecks)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader("{}"))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client().Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", MethodRunPreflightChecks, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("read %s reply: %w", MethodRunPreflightChecks, err)
	}

	reject := gjson.GetBytes(body, "error").String()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 && reject == "" {
		return nil
	}
	if reject == "" {
		reject = fmt.Sprintf("status %d", resp.StatusCode)
	}
	if strings.Contains(strings.ToLower(reject), "not supported") {
		return fmt.Errorf("%w: %s", ErrUnsupported, reject)
	}
	return fmt.Errorf("%s rejected: %s", MethodRunPreflightChecks, reject)
}

func (h *HTTPHandle) endpoint(method string) (string, error) {
	if h.BaseURL == "" {
		return "", errors.New("backend URL is required")
	}
	base, err := url.Parse(h.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("invalid backend URL: %s", h.BaseURL)
	}
	canister := h.Canister
	if canister == "" {
		canister = "backend"
	}
	return base.JoinPath("api", canister, method).String(), nil
}

func (h *HTTPHandle) client() HTTPClient {
	if h.Client != nil {
		return h.Client
	}
	timeout := h.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
