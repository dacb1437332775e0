// Package images looks up stock photos for export slides via the
// Pixabay API. Strictly best-effort: any failure means "no image", never
// an export error.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/autofounder/deck-backend/internal/enhance"
)

const (
	pixabayEndpoint = "https://pixabay.com/api/"
	requestTimeout  = 10 * time.Second
	// Image bytes get embedded into the PPTX; cap the fetch.
	maxImageBytes = 5 << 20
)

// fallbackQueries cover query generation failures per slide kind.
var fallbackQueries = map[string]string{
	"problem":     "business problem",
	"solution":    "innovation technology",
	"market":      "market analysis",
	"model":       "business strategy",
	"traction":    "growth chart",
	"team":        "startup team",
	"ask":         "investment funding",
	"customer":    "customer satisfaction",
	"competition": "business competition",
	"roadmap":     "product roadmap",
}

type Image struct {
	ID            int    `json:"id"`
	WebformatURL  string `json:"webformatURL"`
	PreviewURL    string `json:"previewURL"`
	Tags          string `json:"tags"`
	User          string `json:"user"`
}

type searchResponse struct {
	Hits []Image `json:"hits"`
}

// Client queries Pixabay. A nil Client is valid and finds nothing.
type Client struct {
	apiKey     string
	enhancer   enhance.Enhancer
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(apiKey string, enhancer enhance.Enhancer) *Client {
	if apiKey == "" {
		return nil
	}
	if enhancer == nil {
		enhancer = enhance.Noop{}
	}
	return &Client{
		apiKey:     apiKey,
		enhancer:   enhancer,
		httpClient: &http.Client{Timeout: requestTimeout},
		// Pixabay allows 100 req/min; keep a wide margin.
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}
}

// FindForSlide returns one relevant image for a slide kind, or nil when
// nothing suitable turned up.
func (c *Client) FindForSlide(ctx context.Context, slideKind string, answers map[string]string) (*Image, error) {
	if c == nil {
		return nil, nil
	}

	query, err := c.enhancer.SuggestImageQuery(ctx, slideKind, answers)
	if err != nil || query == "" {
		query = fallbackQueries[slideKind]
	}
	if query == "" {
		query = "business startup"
	}

	return c.search(ctx, query)
}

func (c *Client) search(ctx context.Context, query string) (*Image, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{
		"key":         {c.apiKey},
		"q":           {query},
		"image_type":  {"photo"},
		"orientation": {"horizontal"},
		"category":    {"business"},
		"min_width":   {"800"},
		"per_page":    {"3"},
		"safesearch":  {"true"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pixabayEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pixabay search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pixabay search: status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("pixabay response: %w", err)
	}
	if len(parsed.Hits) == 0 {
		return nil, nil
	}
	return &parsed.Hits[0], nil
}

// Fetch downloads image bytes for embedding.
func (c *Client) Fetch(ctx context.Context, imageURL string) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("image client not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("image fetch: %w", err)
	}
	return data, nil
}
