package catalog

import (
	"math"

	"catdistribution/backend/models"
)

// Statistics summarizes a collection for the statistics panel
type Statistics struct {
	Total         int     `json:"total"`
	Kittens       int     `json:"kittens"`
	Adults        int     `json:"adults"`
	Seniors       int     `json:"seniors"`
	AverageAge    float64 `json:"averageAge"`
	AverageWeight float64 `json:"averageWeight"`
}

func Summarize(records []models.Cat) Statistics {
	var s Statistics
	if len(records) == 0 {
		return s
	}

	var ageSum, weightSum float64
	for _, c := range records {
		switch {
		case Kittens.Contains(c.Age):
			s.Kittens++
		case Adults.Contains(c.Age):
			s.Adults++
		default:
			s.Seniors++
		}
		ageSum += float64(c.Age)
		weightSum += c.Weight
	}

	s.Total = len(records)
	s.AverageAge = round1(ageSum / float64(s.Total))
	s.AverageWeight = round1(weightSum / float64(s.Total))
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
