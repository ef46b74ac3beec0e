package endpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"district-scheduler/pkg/models"
)

// Client defines the interface for posting submissions to the collection
// endpoint.
//
// The endpoint is called in opaque mode: the response status and body are
// never inspected, so Submit only fails on transport errors. An HTTP 4xx/5xx
// from the endpoint still counts as a successful submission. Changing this
// needs a new contract with the endpoint owner.
type Client interface {
	Submit(ctx context.Context, payload models.SubmissionPayload) error
}

type clientImpl struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new endpoint client. A zero timeout means the request
// runs until the transport gives up.
func NewClient(url string, timeout time.Duration, logger *zap.Logger) Client {
	return NewClientWithHTTP(url, &http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTP creates a client over an existing http.Client
func NewClientWithHTTP(url string, httpClient *http.Client, logger *zap.Logger) Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &clientImpl{
		url:        url,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *clientImpl) Submit(ctx context.Context, payload models.SubmissionPayload) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending submission: %w", err)
	}
	// Drain so the connection can be reused; the content is not looked at.
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	c.logger.Debug("submission delivered", zap.String("endpoint", c.url))
	return nil
}
