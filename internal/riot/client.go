package riot

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client is a Riot Games API client. It adds the API key header, enforces a
// request timeout and a client-side rate limit. It never retries; retry policy
// belongs to the caller.
type Client struct {
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter

	// baseURL overrides the per-host API URL in tests. Empty in production.
	baseURL string
}

// NewClient creates a new Riot API client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// ~20 requests per second, matching the development key budget.
		limiter: rate.NewLimiter(rate.Every(50*time.Millisecond), 1),
	}
}

// host returns the API base URL for a platform region or routing realm.
func (c *Client) host(sub string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", sub)
}

// get performs a rate-limited GET and decodes the JSON response into result.
func (c *Client) get(req *http.Request, result interface{}) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return err
	}

	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptResponse, err)
	}

	return nil
}
