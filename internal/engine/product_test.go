package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authentiview/trustengine/internal/models"
)

func flatSeries(days, volume int, rating float64) []models.RatingPoint {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make([]models.RatingPoint, 0, days)
	for i := 0; i < days; i++ {
		series = append(series, models.RatingPoint{
			Date:        start.AddDate(0, 0, i),
			Rating:      rating,
			ReviewCount: volume,
		})
	}
	return series
}

func spikedSeries() []models.RatingPoint {
	series := flatSeries(30, 10, 4.0)
	for i := 15; i <= 20; i++ {
		series[i].ReviewCount = 60
		series[i].Rating = 4.8
	}
	return series
}

func normalDistribution() []models.DistributionBucket {
	return []models.DistributionBucket{
		{Stars: 5, Count: 180, Percentage: 35},
		{Stars: 4, Count: 200, Percentage: 39},
		{Stars: 3, Count: 80, Percentage: 16},
		{Stars: 2, Count: 30, Percentage: 6},
		{Stars: 1, Count: 20, Percentage: 4},
	}
}

func polarizedDistribution() []models.DistributionBucket {
	return []models.DistributionBucket{
		{Stars: 5, Count: 450, Percentage: 65},
		{Stars: 4, Count: 80, Percentage: 12},
		{Stars: 3, Count: 40, Percentage: 6},
		{Stars: 2, Count: 30, Percentage: 4},
		{Stars: 1, Count: 90, Percentage: 13},
	}
}

func TestAnalyzeProductNormal(t *testing.T) {
	e := New()

	result := e.AnalyzeProduct(flatSeries(30, 12, 4.1), normalDistribution())

	assert.Equal(t, 85, result.TrustScore)
	assert.Equal(t, models.VerdictGenuine, result.Verdict)
	assert.Empty(t, result.SpikeAlerts)
	assert.Equal(t, []string{
		"Rating distribution follows expected normal pattern",
		"Review volume remains consistent over time",
		"No unusual spikes or anomalies detected",
	}, result.Explanations)
}

func TestAnalyzeProductVolumeSpike(t *testing.T) {
	e := New()

	result := e.AnalyzeProduct(spikedSeries(), normalDistribution())

	assert.Equal(t, 50, result.TrustScore)
	assert.Equal(t, models.VerdictSuspicious, result.Verdict)
	require.Len(t, result.SpikeAlerts, 1)
	assert.Contains(t, result.SpikeAlerts[0], "Unusual spike detected")
	assert.Contains(t, result.SpikeAlerts[0], "% reviews")
	assert.Contains(t, result.Explanations, "Review volume spike doesn't correlate with known marketing events")
}

func TestAnalyzeProductPolarizedDistribution(t *testing.T) {
	e := New()

	result := e.AnalyzeProduct(flatSeries(30, 12, 4.1), polarizedDistribution())

	assert.Equal(t, 65, result.TrustScore)
	require.Len(t, result.SpikeAlerts, 1)
	assert.Contains(t, result.SpikeAlerts[0], "J-shaped distribution anomaly")
	assert.Contains(t, result.Explanations, "Rating distribution shows polarized pattern often associated with manipulation")
	assert.Contains(t, result.Explanations, "65% 5-star reviews with 13% 1-star reviews suggests competing review campaigns")
}

func TestAnalyzeProductBothAnomalies(t *testing.T) {
	e := New()

	result := e.AnalyzeProduct(spikedSeries(), polarizedDistribution())

	assert.Equal(t, 30, result.TrustScore)
	assert.Equal(t, models.VerdictLikelyFake, result.Verdict)
	assert.Equal(t, "danger", result.Severity)
	assert.Len(t, result.SpikeAlerts, 2)
}

func TestAnalyzeProductShortSeries(t *testing.T) {
	e := New()

	// Too few points for a meaningful baseline: spike rule stays quiet.
	result := e.AnalyzeProduct(flatSeries(4, 50, 4.5), normalDistribution())

	assert.Equal(t, 85, result.TrustScore)
	assert.Empty(t, result.SpikeAlerts)
}

func TestAnalyzeProductBorderlineDistribution(t *testing.T) {
	e := New()

	// Heavy 5-star alone is not a J-shape; the 1-star end must be heavy too.
	dist := []models.DistributionBucket{
		{Stars: 5, Count: 600, Percentage: 75},
		{Stars: 4, Count: 120, Percentage: 15},
		{Stars: 3, Count: 40, Percentage: 5},
		{Stars: 2, Count: 24, Percentage: 3},
		{Stars: 1, Count: 16, Percentage: 2},
	}
	result := e.AnalyzeProduct(flatSeries(30, 12, 4.1), dist)

	assert.Equal(t, 85, result.TrustScore)
	assert.Empty(t, result.SpikeAlerts)
}
