package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"catdistribution/backend/models"
)

// GenerationStatus mirrors the server's generation report
type GenerationStatus struct {
	Running   bool   `json:"running"`
	UserID    string `json:"userId,omitempty"`
	Interval  string `json:"interval"`
	Generated int    `json:"generated"`
}

// CatClient is a typed client for the cat endpoints
type CatClient struct {
	c *Client
}

func NewCatClient(c *Client) *CatClient {
	return &CatClient{c: c}
}

func (cc *CatClient) List(ctx context.Context) ([]models.Cat, error) {
	var cats []models.Cat
	if err := cc.c.do(ctx, http.MethodGet, "/cats", nil, &cats); err != nil {
		return nil, fmt.Errorf("failed to list cats: %w", err)
	}
	return cats, nil
}

func (cc *CatClient) GetByName(ctx context.Context, name string) (*models.Cat, error) {
	var cat models.Cat
	if err := cc.c.do(ctx, http.MethodGet, "/cats/name/"+url.PathEscape(name), nil, &cat); err != nil {
		return nil, fmt.Errorf("failed to get cat %q: %w", name, err)
	}
	return &cat, nil
}

func (cc *CatClient) Create(ctx context.Context, cat models.Cat) (*models.Cat, error) {
	var created models.Cat
	if err := cc.c.do(ctx, http.MethodPost, "/cats", cat, &created); err != nil {
		return nil, fmt.Errorf("failed to create cat: %w", err)
	}
	return &created, nil
}

func (cc *CatClient) Update(ctx context.Context, id string, cat models.Cat) (*models.Cat, error) {
	var updated models.Cat
	if err := cc.c.do(ctx, http.MethodPut, "/cats/"+url.PathEscape(id), cat, &updated); err != nil {
		return nil, fmt.Errorf("failed to update cat: %w", err)
	}
	return &updated, nil
}

func (cc *CatClient) Delete(ctx context.Context, id string) error {
	if err := cc.c.do(ctx, http.MethodDelete, "/cats/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete cat: %w", err)
	}
	return nil
}

// StartGeneration asks the server to generate cats for the calling user
func (cc *CatClient) StartGeneration(ctx context.Context) (*GenerationStatus, error) {
	return cc.generation(ctx, http.MethodPost, "/cats/generate/start")
}

func (cc *CatClient) StopGeneration(ctx context.Context) (*GenerationStatus, error) {
	return cc.generation(ctx, http.MethodPost, "/cats/generate/stop")
}

func (cc *CatClient) GenerationStatus(ctx context.Context) (*GenerationStatus, error) {
	return cc.generation(ctx, http.MethodGet, "/cats/generate/status")
}

func (cc *CatClient) generation(ctx context.Context, method, path string) (*GenerationStatus, error) {
	var status GenerationStatus
	if err := cc.c.do(ctx, method, path, nil, &status); err != nil {
		return nil, fmt.Errorf("failed to reach generator: %w", err)
	}
	return &status, nil
}
