package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bookcatalog/internal/book"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public volumes API.
const DefaultBaseURL = "https://www.googleapis.com/books/v1"

const (
	opSearch = "search"
	opVolume = "volume"
)

type Config struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	RPS       int
	Timeout   time.Duration
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent: cfg.UserAgent,
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(cfg.RPS)), cfg.RPS),
	}
}

// searchResponse matches GET /volumes. Items is absent when nothing matched.
type searchResponse struct {
	TotalItems int           `json:"totalItems"`
	Items      []book.Record `json:"items"`
}

// SearchBooks returns one page of volumes matching query. An empty result
// is not an error.
func (c *Client) SearchBooks(ctx context.Context, query string, maxResults, startIndex int) ([]book.Record, error) {
	v := url.Values{}
	v.Set("q", query)
	v.Set("maxResults", strconv.Itoa(maxResults))
	v.Set("startIndex", strconv.Itoa(startIndex))

	var res searchResponse
	if err := c.get(ctx, opSearch, c.baseURL+"/volumes?"+c.withKey(v).Encode(), &res); err != nil {
		return nil, err
	}
	if res.Items == nil {
		return []book.Record{}, nil
	}
	return res.Items, nil
}

// GetBookByID returns a single volume.
func (c *Client) GetBookByID(ctx context.Context, id string) (book.Record, error) {
	u := fmt.Sprintf("%s/volumes/%s", c.baseURL, url.PathEscape(id))
	if q := c.withKey(url.Values{}).Encode(); q != "" {
		u += "?" + q
	}

	var res book.Record
	if err := c.get(ctx, opVolume, u, &res); err != nil {
		return book.Record{}, err
	}
	if res.ID == "" {
		return book.Record{}, &APIError{Op: opVolume, Err: errors.New("volume without id")}
	}
	return res, nil
}

func (c *Client) withKey(v url.Values) url.Values {
	if c.apiKey != "" {
		v.Set("key", c.apiKey)
	}
	return v
}

// get issues a single GET; there are no retries.
func (c *Client) get(ctx context.Context, op, rawURL string, target any) error {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return c.fail(op, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return c.fail(op, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(op, resp.StatusCode, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return c.fail(op, 0, fmt.Errorf("decode: %w", err))
	}
	requestsTotal.WithLabelValues(op, "ok").Inc()
	return nil
}

func (c *Client) fail(op string, status int, err error) error {
	outcome := "error"
	if status != 0 {
		outcome = strconv.Itoa(status)
	}
	requestsTotal.WithLabelValues(op, outcome).Inc()
	return &APIError{Op: op, StatusCode: status, Err: err}
}
