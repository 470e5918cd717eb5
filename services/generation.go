package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"catdistribution/backend/generator"
	"catdistribution/backend/models"

	"go.uber.org/zap"
)

// Publisher broadcasts a generated cat to live subscribers
type Publisher interface {
	Publish(v any) error
}

// GenerationStatus is reported by GET /cats/generate/status
type GenerationStatus struct {
	Running  bool   `json:"running"`
	UserID   string `json:"userId,omitempty"`
	Interval string `json:"interval"`
	Count    int    `json:"generated"`
}

// Generation runs the server-side cat generator on behalf of one user at a time
type Generation struct {
	driver        generator.Driver
	factory       generator.Factory
	publisher     Publisher
	listPublisher Publisher
	interval      time.Duration

	mu     sync.Mutex
	userID string
	count  int
}

// NewGeneration wires a generator to storage. publisher may be nil.
func NewGeneration(interval time.Duration, factory generator.Factory, publisher Publisher) *Generation {
	return &Generation{
		factory:   factory,
		publisher: publisher,
		interval:  interval,
	}
}

// NewCatFactory returns a factory whose names are unique against the cats table
func NewCatFactory(images generator.ImageSource) *generator.CatFactory {
	taken := func(ctx context.Context, name string) (bool, error) {
		return CatNameExists(ctx, name, "")
	}
	return generator.NewCatFactory(uint64(time.Now().UnixNano()), taken, images)
}

// SetListPublisher makes every stored cat also broadcast the full collection
// to p. Call it before Start.
func (g *Generation) SetListPublisher(p Publisher) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listPublisher = p
}

// Start begins generating cats owned by userID. A second Start while running
// keeps the original owner.
func (g *Generation) Start(ctx context.Context, userID string) error {
	if _, err := GetUserByID(ctx, userID); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.driver.Running() {
		return nil
	}

	owner := userID
	err := g.driver.Start(g.interval, g.factory, func(c models.Cat) {
		g.store(owner, c)
	})
	if err != nil {
		return fmt.Errorf("failed to start generation: %w", err)
	}

	g.userID = owner
	zap.L().Info("Cat generation started", zap.String("user", owner), zap.Duration("interval", g.interval))
	return nil
}

// Stop halts generation and forgets the owner
func (g *Generation) Stop() {
	g.driver.Stop()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.userID != "" {
		zap.L().Info("Cat generation stopped", zap.String("user", g.userID), zap.Int("generated", g.count))
	}
	g.userID = ""
}

// Status returns whether generation runs and for whom
func (g *Generation) Status() GenerationStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return GenerationStatus{
		Running:  g.driver.Running(),
		UserID:   g.userID,
		Interval: g.interval.String(),
		Count:    g.count,
	}
}

func (g *Generation) store(owner string, c models.Cat) {
	ctx := context.Background()
	c.UserID = owner

	created, err := CreateCat(ctx, c)
	if err != nil {
		// the name check and the insert are not atomic
		if errors.Is(err, ErrDuplicateName) {
			zap.L().Debug("Skipping generated cat with taken name", zap.String("name", c.Name))
			return
		}
		zap.L().Error("Failed to store generated cat", zap.Error(err))
		return
	}

	g.mu.Lock()
	g.count++
	listPublisher := g.listPublisher
	g.mu.Unlock()

	if g.publisher != nil {
		if err := g.publisher.Publish(created); err != nil {
			zap.L().Warn("Failed to publish generated cat", zap.Error(err))
		}
	}
	if listPublisher != nil {
		g.publishList(ctx, listPublisher)
	}

	_, err = AddOperationLog(ctx, owner, models.OperationLog{
		Action:  models.ActionGenerate,
		Details: "Generated cat " + created.Name,
	})
	if err != nil {
		zap.L().Warn("Failed to record generation log", zap.Error(err))
	}
}

func (g *Generation) publishList(ctx context.Context, p Publisher) {
	cats, err := ListCats(ctx)
	if err != nil {
		zap.L().Warn("Failed to list cats for broadcast", zap.Error(err))
		return
	}
	if err := p.Publish(cats); err != nil {
		zap.L().Warn("Failed to publish cat list", zap.Error(err))
	}
}
