package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	e "nuclight.org/discord-fetcher/pkg/entities"
	"nuclight.org/discord-fetcher/pkg/logger"
)

// DefaultBaseURL is the Discord REST API endpoint prefix.
const DefaultBaseURL = "https://discord.com/api/v10"

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches channel message history page by page. Messages come back
// newest-first; each page request passes the id of the last (oldest)
// message of the previous page as the "before" cursor.
type Client struct {
	// Log is a logger
	Log logger.Logger

	// Token is sent as-is in the Authorization header
	Token string

	// BaseURL overrides DefaultBaseURL, mainly for tests
	BaseURL string

	// HTTPClient defaults to an http.Client with a 30s timeout
	HTTPClient HTTPClient
}

// FetchMessages fetches up to limit messages from the channel, newest
// first. It stops early when the channel is exhausted. All API and
// transport errors are terminal; on cancellation ctx.Err() is returned
// bare with no partial result.
func (c *Client) FetchMessages(ctx context.Context, channelID string, limit Limit) ([]e.Message, error) {
	var (
		all    []e.Message
		before string
	)

	for !limit.reached(len(all)) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		size := limit.pageSize(len(all))
		page, err := c.fetchPage(ctx, channelID, size, before)
		if err != nil {
			return nil, err
		}

		if len(page) == 0 {
			c.Log.Info("no more messages to fetch")
			break
		}

		all = append(all, page...)
		before = page[len(page)-1].ID

		c.Log.Info("fetched messages", "count", len(all))

		// a short page means the channel is exhausted
		if len(page) < size {
			break
		}
	}

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, channelID string, size int, before string) ([]e.Message, error) {
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(size))
	if before != "" {
		params.Set("before", before)
	}

	reqURL := fmt.Sprintf("%s/channels/%s/messages?%s", baseURL, channelID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", c.Token)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient().Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, &NetworkError{Err: err}
	}

	defer func() { _ = res.Body.Close() }()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("fetching page: %w", ErrAuthentication)
	case http.StatusForbidden:
		return nil, fmt.Errorf("fetching page: %w", ErrAuthorization)
	case http.StatusNotFound:
		return nil, fmt.Errorf("fetching page: %w", ErrNotFound)
	default:
		body, _ := io.ReadAll(res.Body)
		return nil, &HTTPError{Status: res.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	var page []e.Message
	if err = json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return page, nil
}

func (c *Client) httpClient() HTTPClient {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	return &http.Client{Timeout: 30 * time.Second}
}
