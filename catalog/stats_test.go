package catalog

import (
	"testing"

	"catdistribution/backend/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	assert.Equal(t, Statistics{}, Summarize(nil))

	stats := Summarize(sampleCats())
	assert.Equal(t, Statistics{
		Total:         5,
		Kittens:       2,
		Adults:        2,
		Seniors:       1,
		AverageAge:    5.8,
		AverageWeight: 4.5,
	}, stats)
}

func TestSummarizeSeniorBoundary(t *testing.T) {
	stats := Summarize([]models.Cat{{Age: 10}, {Age: 11}})
	assert.Equal(t, 1, stats.Adults)
	assert.Equal(t, 1, stats.Seniors)
}
