package recaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// googleVerifyURL is the default siteverify endpoint.
const googleVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// maxResponseBytes bounds how much of the upstream response is read.
const maxResponseBytes = 64 << 10

// Config holds verification service configuration.
type Config struct {
	Secret    string        `env:"RECAPTCHA_SECRET,required"`
	VerifyURL string        `env:"RECAPTCHA_VERIFY_URL" envDefault:"https://www.google.com/recaptcha/api/siteverify"`
	Timeout   time.Duration `env:"RECAPTCHA_TIMEOUT" envDefault:"10s"`
}

// Client verifies tokens against the reCAPTCHA siteverify endpoint.
// A single verification attempt is made per call; there is no retry.
type Client struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

// NewClient creates a siteverify client. The shared secret is required;
// verifyURL and timeout fall back to the service defaults when zero.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: Secret is required", ErrInvalidConfig)
	}

	verifyURL := cfg.VerifyURL
	if verifyURL == "" {
		verifyURL = googleVerifyURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		secret:    cfg.Secret,
		verifyURL: verifyURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Verify submits the token and client IP as a form-encoded POST and parses
// the JSON response. Transport failures are reported as ErrUnavailable and
// unparseable bodies as ErrMalformedResponse; interpretation of the success
// flag and score is left to the caller.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (Result, error) {
	form := url.Values{
		"secret":   {c.secret},
		"response": {token},
		"remoteip": {remoteIP},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, errors.Join(ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, errors.Join(ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Result{}, errors.Join(ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return Result{}, errors.Join(ErrMalformedResponse, err)
	}

	return result, nil
}
