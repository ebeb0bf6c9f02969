// Client for the Google reCAPTCHA siteverify API.
//
// Environment:
//   - CAPTCHA_SECRET_KEY: reCAPTCHA server-side secret
//   - CAPTCHA_VERIFY_URL: override for tests (default: Google endpoint)

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zmtwc/planner/internal/config"
)

// ErrVerificationFailed means the captcha provider answered but did not
// accept the token. Anything else is a transport or decoding error.
var ErrVerificationFailed = errors.New("captcha verification failed")

type CaptchaClient struct {
	secretKey  string
	verifyURL  string
	httpClient *http.Client
}

type captchaVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func NewCaptchaClient(cfg config.CaptchaConfig) *CaptchaClient {
	return &CaptchaClient{
		secretKey: cfg.SecretKey,
		verifyURL: cfg.VerifyURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *CaptchaClient) Verify(ctx context.Context, token string) error {
	form := url.Values{}
	form.Set("secret", c.secretKey)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var verification captchaVerifyResponse
	if err := json.Unmarshal(body, &verification); err != nil {
		return fmt.Errorf("failed to decode captcha response: %w", err)
	}

	slog.Debug("captcha verification response",
		slog.Bool("success", verification.Success),
		slog.Any("error_codes", verification.ErrorCodes),
	)

	if !verification.Success {
		codes := verification.ErrorCodes
		if len(codes) == 0 {
			codes = []string{"unknown error"}
		}
		return fmt.Errorf("%w: %s", ErrVerificationFailed, strings.Join(codes, ", "))
	}
	return nil
}
