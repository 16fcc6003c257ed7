package orbrowser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIURL is the OpenRouter models listing endpoint.
	DefaultAPIURL = "https://openrouter.ai/api/v1/models"

	// DefaultTimeout bounds the single catalog request. The tool is
	// interactive, so a failed fetch surfaces immediately instead of
	// being retried.
	DefaultTimeout = 30 * time.Second
)

// Client fetches the model catalog.
type Client struct {
	url  string
	http *http.Client
	log  *zap.SugaredLogger
}

// NewClient builds a Client. Empty url and non-positive timeout fall
// back to the defaults; a nil logger disables debug logging.
func NewClient(url string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	if url == "" {
		url = DefaultAPIURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

type catalogResponse struct {
	Data []Record `yaml:"data"`
}

// FetchModels performs one GET against the models endpoint and returns
// the decoded data array. No retry: any transport, status, or decode
// failure is terminal and comes back as ErrTimeout, ErrFetch, or
// ErrInvalidResponse.
func (c *Client) FetchModels(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debugw("fetching model catalog", "url", c.url)
	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	var catalog catalogResponse
	if err := yaml.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if catalog.Data == nil {
		return nil, fmt.Errorf("%w: missing data field", ErrInvalidResponse)
	}

	c.log.Debugw("fetched model catalog", "models", len(catalog.Data))
	return catalog.Data, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
