package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"catdistribution/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu   sync.Mutex
	cats []models.Cat
}

func (p *recordingPublisher) Publish(v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cats = append(p.cats, *v.(*models.Cat))
	return nil
}

func (p *recordingPublisher) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cats)
}

func sequentialFactory() func(context.Context) (models.Cat, error) {
	var n atomic.Int64
	return func(context.Context) (models.Cat, error) {
		i := n.Add(1)
		return models.Cat{Name: fmt.Sprintf("Gen%d", i), Age: int(i % 20), Gender: "M"}, nil
	}
}

func TestGenerationStoresPublishesAndLogs(t *testing.T) {
	setupTestDB(t)

	pub := &recordingPublisher{}
	gen := NewGeneration(5*time.Millisecond, sequentialFactory(), pub)

	require.NoError(t, gen.Start(t.Context(), testUserID))
	assert.True(t, gen.Status().Running)
	assert.Equal(t, testUserID, gen.Status().UserID)

	require.Eventually(t, func() bool { return pub.len() >= 3 }, 2*time.Second, 5*time.Millisecond)
	gen.Stop()

	status := gen.Status()
	assert.False(t, status.Running)
	assert.Empty(t, status.UserID)

	cats, err := ListCats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, status.Count, len(cats))
	assert.Equal(t, pub.len(), len(cats))
	for _, c := range cats {
		assert.Equal(t, testUserID, c.UserID)
	}

	logs, err := ListOperationLogs(t.Context())
	require.NoError(t, err)
	assert.Len(t, logs, len(cats))
	for _, l := range logs {
		assert.Equal(t, models.ActionGenerate, l.Action)
	}

	// nothing is generated once Stop returned
	time.Sleep(20 * time.Millisecond)
	after, err := ListCats(t.Context())
	require.NoError(t, err)
	assert.Len(t, after, len(cats))
}

func TestGenerationStartIsIdempotent(t *testing.T) {
	setupTestDB(t)
	_, err := UpsertUser(t.Context(), models.User{ID: "other", Username: "other"})
	require.NoError(t, err)

	gen := NewGeneration(time.Hour, sequentialFactory(), nil)
	defer gen.Stop()

	require.NoError(t, gen.Start(t.Context(), testUserID))
	require.NoError(t, gen.Start(t.Context(), "other"))
	assert.Equal(t, testUserID, gen.Status().UserID)
}

func TestGenerationUnknownUser(t *testing.T) {
	setupTestDB(t)

	gen := NewGeneration(time.Millisecond, sequentialFactory(), nil)
	err := gen.Start(t.Context(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.False(t, gen.Status().Running)
}

func TestGenerationSkipsDuplicateNames(t *testing.T) {
	setupTestDB(t)
	mustCreateCat(t, "Twin", 3)

	var calls atomic.Int64
	factory := func(context.Context) (models.Cat, error) {
		calls.Add(1)
		return models.Cat{Name: "Twin", Age: 1}, nil
	}

	gen := NewGeneration(2*time.Millisecond, factory, nil)
	require.NoError(t, gen.Start(t.Context(), testUserID))
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, 2*time.Millisecond)
	gen.Stop()

	assert.Zero(t, gen.Status().Count)
	cats, err := ListCats(t.Context())
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestNewCatFactoryAvoidsStoredNames(t *testing.T) {
	setupTestDB(t)

	f := NewCatFactory(nil)
	for i := 0; i < 5; i++ {
		c, err := f.Generate(t.Context())
		require.NoError(t, err)
		_, err = CreateCat(t.Context(), c)
		require.NoError(t, err)
	}
}

type listPublisher struct {
	mu    sync.Mutex
	sizes []int
}

func (p *listPublisher) Publish(v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sizes = append(p.sizes, len(v.([]models.Cat)))
	return nil
}

func (p *listPublisher) snapshot() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.sizes...)
}

func TestGenerationBroadcastsFullList(t *testing.T) {
	setupTestDB(t)

	lists := &listPublisher{}
	gen := NewGeneration(5*time.Millisecond, sequentialFactory(), &recordingPublisher{})
	gen.SetListPublisher(lists)

	require.NoError(t, gen.Start(t.Context(), testUserID))
	require.Eventually(t, func() bool { return len(lists.snapshot()) >= 2 }, 2*time.Second, 5*time.Millisecond)
	gen.Stop()

	sizes := lists.snapshot()
	for i, n := range sizes {
		assert.Equal(t, i+1, n)
	}

	cats, err := ListCats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, len(cats), sizes[len(sizes)-1])
}
