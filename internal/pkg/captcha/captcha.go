package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/config"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/auth"
)

const defaultEndpoint = "https://www.google.com/recaptcha/api/siteverify"

// Verifier checks a CAPTCHA token against the scoring API.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

type Client struct {
	secret          string
	minScore        float64
	bypassOnFailure bool
	endpoint        string
	httpClient      *http.Client
}

// NewClient builds a reCAPTCHA verifier. An empty secret disables
// verification entirely (every token passes).
//
// BypassOnFailure controls what happens when the scoring API itself cannot
// be reached: true treats the failure as a pass (the behavior the legacy
// system hard-coded), false rejects the login. Either way the failure is
// logged.
func NewClient(cfg config.CaptchaConfig) *Client {
	return &Client{
		secret:          cfg.Secret,
		minScore:        cfg.MinScore,
		bypassOnFailure: cfg.BypassOnFailure,
		endpoint:        defaultEndpoint,
		httpClient:      &http.Client{Timeout: 5 * time.Second},
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	ErrorCodes []string `json:"error-codes"`
}

func (c *Client) Verify(ctx context.Context, token, remoteIP string) error {
	if c.secret == "" {
		return nil
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return c.apiFailure(fmt.Errorf("failed to build captcha request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.apiFailure(fmt.Errorf("captcha verification request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.apiFailure(fmt.Errorf("captcha verification returned status %d", resp.StatusCode))
	}

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return c.apiFailure(fmt.Errorf("failed to decode captcha response: %w", err))
	}

	if !result.Success || result.Score < c.minScore {
		slog.Info("Captcha rejected", "score", result.Score, "error_codes", result.ErrorCodes)
		return auth.ErrCaptchaRejected
	}

	return nil
}

// apiFailure handles an unreachable or broken scoring API according to the
// configured bypass flag. A rejected token never goes through here.
func (c *Client) apiFailure(err error) error {
	if c.bypassOnFailure {
		slog.Warn("Captcha verification unavailable, bypassing per configuration", "error", err)
		return nil
	}
	return err
}
