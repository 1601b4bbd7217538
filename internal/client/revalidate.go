package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

const (
	SecretHeader             = "x-revalidate-secret"
	DefaultRetryAttempts     = 3
	defaultRevalidateTimeout = 10 * time.Second
)

// RevalidateClient tells an external frontend that a rendered path is stale.
type RevalidateClient struct {
	httpClient *resty.Client
	url        string
	attempts   uint
	delay      time.Duration
}

type RevalidateRequest struct {
	Path string `json:"path"`
}

// NewRevalidateClient posts to webhookURL. secret, when set, is sent in
// SecretHeader.
func NewRevalidateClient(webhookURL, secret string) *RevalidateClient {
	httpClient := resty.New().
		SetTimeout(defaultRevalidateTimeout).
		SetHeader("Content-Type", "application/json")
	if secret != "" {
		httpClient.SetHeader(SecretHeader, secret)
	}

	return &RevalidateClient{
		httpClient: httpClient,
		url:        webhookURL,
		attempts:   DefaultRetryAttempts,
		delay:      200 * time.Millisecond,
	}
}

// Revalidate retries server errors and transport failures; a 4xx answer is
// final.
func (c *RevalidateClient) Revalidate(ctx context.Context, path string) error {
	return retry.Do(
		func() error {
			resp, err := c.httpClient.R().
				SetContext(ctx).
				SetBody(RevalidateRequest{Path: path}).
				Post(c.url)
			if err != nil {
				return err
			}
			if resp.StatusCode() >= http.StatusInternalServerError {
				return fmt.Errorf("revalidate webhook returned status %d: %s", resp.StatusCode(), resp.String())
			}
			if resp.IsError() {
				return retry.Unrecoverable(fmt.Errorf("revalidate webhook returned status %d: %s", resp.StatusCode(), resp.String()))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.LastErrorOnly(true),
	)
}
