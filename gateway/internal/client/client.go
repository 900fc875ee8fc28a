package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Eursukkul/shareit/gateway/internal/cache"
	"github.com/Eursukkul/shareit/pkg/middleware"
	"github.com/rs/zerolog"
)

// ErrUnavailable means the server could not be reached or did not answer.
var ErrUnavailable = errors.New("server unavailable")

// Response is the server's answer, relayed to the caller unchanged.
type Response struct {
	Status int
	Body   []byte
}

// Client forwards validated gateway requests to the server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.ItemCache
	logger     zerolog.Logger
}

func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("component", "server-client").Logger(),
	}
}

// UseCache enables caching of GET /items/{id}.
func (c *Client) UseCache(ic *cache.ItemCache) {
	c.cache = ic
}

// Do sends body as JSON to path. userID 0 omits the sharer header.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, userID int64, body any) (*Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if userID > 0 {
		req.Header.Set(middleware.UserIDHeader, strconv.FormatInt(userID, 10))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("server request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	return &Response{Status: resp.StatusCode, Body: data}, nil
}

// GetItem fetches an item as seen by userID, serving from the cache when
// possible. Only 200 answers are cached.
func (c *Client) GetItem(ctx context.Context, userID, itemID int64) (*Response, error) {
	if body, ok := c.cache.Get(ctx, itemID, userID); ok {
		return &Response{Status: http.StatusOK, Body: body}, nil
	}

	resp, err := c.Do(ctx, http.MethodGet, "/items/"+strconv.FormatInt(itemID, 10), nil, userID, nil)
	if err != nil {
		return nil, err
	}
	if resp.Status == http.StatusOK {
		if err := c.cache.Set(ctx, itemID, userID, resp.Body); err != nil {
			c.logger.Warn().Err(err).Int64("item_id", itemID).Msg("cache write failed")
		}
	}
	return resp, nil
}

// InvalidateItem drops every cached copy of itemID. Handlers call it after a
// write made through this gateway so the next read does not wait for the
// server's event.
func (c *Client) InvalidateItem(ctx context.Context, itemID int64) {
	if err := c.cache.InvalidateItem(ctx, itemID); err != nil {
		c.logger.Warn().Err(err).Int64("item_id", itemID).Msg("cache invalidation failed")
	}
}

// FlushItems drops the whole item cache.
func (c *Client) FlushItems(ctx context.Context) {
	if err := c.cache.Flush(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("cache flush failed")
	}
}
