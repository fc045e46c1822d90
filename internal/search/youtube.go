// Package search finds educational videos through the YouTube Data API
// and picks the best match for a topic and grade band.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chinmaypg001-sys/TechWave/internal/model"
	"github.com/chinmaypg001-sys/TechWave/internal/video"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Terminal API failures. Retrying cannot fix a bad key or an exhausted
// quota, so these abort the attempt loop immediately.
var (
	ErrUnauthorized  = errors.New("youtube: invalid API key")
	ErrQuotaExceeded = errors.New("youtube: quota exceeded")
)

const (
	maxAttempts = 3
	retryDelay  = 2 * time.Second
)

// Client talks to the YouTube Data API v3.
type Client struct {
	apiKey     string
	baseURL    string
	maxResults int
	httpClient *http.Client
	retryDelay time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint, such as a
// test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithMaxResults caps how many search results are fetched per query.
func WithMaxResults(n int) Option {
	return func(c *Client) { c.maxResults = n }
}

// WithRetryDelay overrides the pause between retried attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

// New creates a YouTube search client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		maxResults: 15,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		retryDelay: retryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FindBestVideo searches for videos on a topic, scores them against the
// grade-band profile, and returns the highest-ranked candidate. A nil
// candidate with a nil error means the search legitimately found
// nothing usable.
func (c *Client) FindBestVideo(ctx context.Context, topic, level, board string) (*model.VideoCandidate, error) {
	query := video.SearchQuery(topic, level, board)
	profile := video.ProfileFor(level, board)

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}

		candidates, err := c.fetchCandidates(ctx, query)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrQuotaExceeded) || ctx.Err() != nil {
				return nil, err
			}
			lastErr = err
			continue
		}
		return video.Rank(candidates, topic, profile), nil
	}
	return nil, fmt.Errorf("search youtube after %d attempts: %w", maxAttempts, lastErr)
}

func (c *Client) fetchCandidates(ctx context.Context, query string) ([]video.Candidate, error) {
	ids, err := c.searchIDs(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return c.videoDetails(ctx, ids)
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

func (c *Client) searchIDs(ctx context.Context, query string) ([]string, error) {
	params := url.Values{
		"part":              {"snippet"},
		"type":              {"video"},
		"q":                 {query},
		"maxResults":        {strconv.Itoa(c.maxResults)},
		"order":             {"relevance"},
		"videoDuration":     {"medium"},
		"safeSearch":        {"strict"},
		"relevanceLanguage": {"en"},
	}

	var resp searchResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (c *Client) videoDetails(ctx context.Context, ids []string) ([]video.Candidate, error) {
	params := url.Values{
		"part": {"contentDetails,snippet,statistics"},
		"id":   {strings.Join(ids, ",")},
	}

	var resp videosResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}

	candidates := make([]video.Candidate, 0, len(resp.Items))
	for _, item := range resp.Items {
		views, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
		channel := item.Snippet.ChannelTitle
		if channel == "" {
			channel = "Unknown"
		}
		candidates = append(candidates, video.Candidate{
			ID:          item.ID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Channel:     channel,
			Duration:    item.ContentDetails.Duration,
			Views:       views,
		})
	}
	return candidates, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call youtube api: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrQuotaExceeded
	default:
		return fmt.Errorf("youtube api status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode youtube response: %w", err)
	}
	return nil
}
