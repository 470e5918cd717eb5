package generator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"catdistribution/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatFactoryGenerate(t *testing.T) {
	f := NewCatFactory(42, nil, StaticImage("https://img.example/cat.jpg"))

	for i := 0; i < 50; i++ {
		cat, err := f.Generate(context.Background())
		require.NoError(t, err)

		require.NoError(t, cat.Validate())
		assert.GreaterOrEqual(t, cat.Age, 0)
		assert.LessOrEqual(t, cat.Age, 20)
		assert.GreaterOrEqual(t, cat.Weight, 2.5)
		assert.LessOrEqual(t, cat.Weight, 8.0)
		assert.Contains(t, []string{"M", "F"}, cat.Gender)
		assert.Contains(t, breeds, cat.Breed)
		assert.True(t, strings.HasPrefix(cat.Description, cat.Name+" is a "))
		assert.Equal(t, "https://img.example/cat.jpg", cat.Image)
	}
}

func TestCatFactorySkipsTakenNames(t *testing.T) {
	seen := map[string]bool{}
	checks := 0
	taken := func(ctx context.Context, name string) (bool, error) {
		checks++
		// the first candidate is always taken
		if checks == 1 {
			return true, nil
		}
		return seen[name], nil
	}

	f := NewCatFactory(7, taken, nil)
	cat, err := f.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, checks)
	assert.NotEmpty(t, cat.Name)
}

func TestCatFactoryFallsBackToRandomSuffix(t *testing.T) {
	f := NewCatFactory(1, func(ctx context.Context, name string) (bool, error) {
		return true, nil
	}, nil)

	cat, err := f.Generate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, cat.Name, "-")
}

func TestCatFactoryNameCheckError(t *testing.T) {
	f := NewCatFactory(1, func(ctx context.Context, name string) (bool, error) {
		return false, errors.New("database is locked")
	}, nil)

	_, err := f.Generate(context.Background())
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		gender string
		age    int
		want   string
	}{
		{"F", 1, "Mimi is a calm cat. She is still very young and loves to play all day long."},
		{"M", 4, "Mimi is a calm cat. He enjoys both playtime and naps, making him the perfect companion."},
		{"F", 9, "Mimi is a calm cat. She has a gentle personality and loves cuddles but also appreciates her space."},
		{"M", 14, "Mimi is a calm cat. He is a wise and relaxed cat who enjoys quiet moments and cozy spots."},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Describe("Mimi", tc.gender, tc.age, "calm"))
	}
}

func TestFactoryFeedsDriver(t *testing.T) {
	var d Driver
	f := NewCatFactory(3, nil, nil)
	generated := make(chan models.Cat, 1)

	require.NoError(t, d.Start(10*time.Millisecond, f.Generate, func(c models.Cat) {
		select {
		case generated <- c:
		default:
		}
	}))
	c := <-generated
	d.Stop()
	assert.NotEmpty(t, c.Name)
}
