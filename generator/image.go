package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ImageSource returns a picture URL for a new cat
type ImageSource interface {
	RandomImage(ctx context.Context) string
}

// StaticImage always returns the same URL
type StaticImage string

func (s StaticImage) RandomImage(context.Context) string {
	return string(s)
}

// CatAPIImages fetches random pictures from TheCatAPI search endpoint and
// falls back to Fallback on any failure
type CatAPIImages struct {
	URL      string
	APIKey   string
	Fallback string
	Client   *http.Client
}

type catAPIImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func NewCatAPIImages(url, apiKey, fallback string, timeout time.Duration) *CatAPIImages {
	return &CatAPIImages{
		URL:      url,
		APIKey:   apiKey,
		Fallback: fallback,
		Client:   &http.Client{Timeout: timeout},
	}
}

func (c *CatAPIImages) RandomImage(ctx context.Context) string {
	url, err := c.fetch(ctx)
	if err != nil {
		zap.L().Warn("Error fetching cat image", zap.Error(err))
		return c.Fallback
	}
	if url == "" {
		return c.Fallback
	}
	return url
}

func (c *CatAPIImages) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request to cat API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("cat API returned status %d: %s", resp.StatusCode, body)
	}

	var images []catAPIImage
	if err := json.NewDecoder(resp.Body).Decode(&images); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}
	if len(images) == 0 {
		return "", nil
	}
	return images[0].URL, nil
}
