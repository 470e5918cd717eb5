package generator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"catdistribution/backend/models"

	"go.uber.org/zap"
)

// Factory synthesizes one new cat
type Factory func(ctx context.Context) (models.Cat, error)

// Driver runs a Factory at a fixed interval and hands every record to a
// callback. It moves between two states:
//
//	Idle --Start--> Running --Stop--> Idle
//
// and generates exactly one record per tick while Running.
type Driver struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	// done belongs to the most recent run and stays set after Stop so that
	// concurrent Stop calls all wait for the same exit
	done chan struct{}
}

var ErrInvalidInterval = errors.New("generation interval must be positive")

// Start begins generating. Calling Start while running does nothing, so a
// driver never owns more than one ticker.
func (d *Driver) Start(interval time.Duration, factory Factory, onGenerated func(models.Cat)) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}
	if factory == nil || onGenerated == nil {
		return errors.New("factory and onGenerated are required")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done

	go d.run(ctx, done, interval, factory, onGenerated)
	return nil
}

// Stop cancels the pending tick and waits for the generating goroutine to
// exit; no callback runs after any Stop call returns. It must not be called
// from inside onGenerated.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Running reports whether the driver is generating
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

func (d *Driver) run(ctx context.Context, done chan struct{}, interval time.Duration, factory Factory, onGenerated func(models.Cat)) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// a tick and a cancel can be ready together
			if ctx.Err() != nil {
				return
			}

			cat, err := factory(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				zap.L().Warn("Failed to generate cat", zap.Error(err))
				continue
			}
			if ctx.Err() != nil {
				return
			}
			onGenerated(cat)
		}
	}
}
