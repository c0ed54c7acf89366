package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client talks to the external embedding service and exposes it as a
// similarity backend. Every scoring call goes over HTTP, so the chain in
// front of it must be ready to fall back when the service misbehaves.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type similarityRequest struct {
	TextA string `json:"text_a"`
	TextB string `json:"text_b"`
}

type similarityResponse struct {
	Similarity float64 `json:"similarity"`
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) Name() string { return "embedding" }

func (c *Client) Score(a, b string) (float64, error) {
	if c == nil || c.client == nil {
		return 0, errors.New("nil embed client")
	}
	endpoint := c.baseURL + "/similarity"

	body := similarityRequest{TextA: a, TextB: b}
	buf, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, endpoint, bytes.NewReader(buf))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("embed similarity failed: status=%d body=%s", resp.StatusCode, bodyStr)
		if c.logger != nil {
			c.logger.Printf("[Embed] Score error endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return 0, err
	}

	var out similarityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	return out.Similarity, nil
}

// Probe checks the service once at startup so the boot log records which
// similarity backend the chain will actually lead with.
func (c *Client) Probe(ctx context.Context) error {
	if c == nil || c.client == nil {
		return errors.New("nil embed client")
	}
	endpoint := c.baseURL + "/health"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("embed service unhealthy: status=%d", resp.StatusCode)
	}
	return nil
}
