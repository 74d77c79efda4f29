package engine

import (
	"fmt"

	"github.com/authentiview/trustengine/internal/models"
)

const (
	baselineProductScore = 85
	minProductScore      = 5

	// A sub-window whose mean daily volume exceeds the rest of the series
	// by this factor is a spike. Organic day-to-day noise stays well below
	// it; campaign windows run at roughly +85% volume or more.
	spikeVolumeRatio = 1.85

	minSpikeWindow = 3
	maxSpikeWindow = 7
)

// productEval accumulates the outcome of the product rule table.
type productEval struct {
	series       []models.RatingPoint
	distribution []models.DistributionBucket

	score        int
	spikeAlerts  []string
	explanations []string
}

// productRule is one row of the anomaly rule table: a predicate with a score
// penalty. Each rule appends its own alerts and explanations when it fires.
type productRule struct {
	name  string
	delta int
	apply func(*productEval) bool
}

func productRules() []productRule {
	return []productRule{
		{name: "volume_spike", delta: 35, apply: detectVolumeSpike},
		{name: "polarized_distribution", delta: 20, apply: detectPolarizedDistribution},
	}
}

// AnalyzeProduct evaluates a 30-day rating series and a star distribution
// for manipulation signals.
func (e *Engine) AnalyzeProduct(series []models.RatingPoint, distribution []models.DistributionBucket) *models.ProductAnalysisResult {
	ev := &productEval{
		series:       series,
		distribution: distribution,
		score:        baselineProductScore,
	}

	for _, rule := range productRules() {
		if rule.apply(ev) {
			ev.score -= rule.delta
		}
	}
	ev.score = clamp(ev.score, minProductScore, 100)

	if len(ev.spikeAlerts) == 0 {
		ev.explanations = append(ev.explanations,
			"Rating distribution follows expected normal pattern",
			"Review volume remains consistent over time",
			"No unusual spikes or anomalies detected",
		)
	}

	return &models.ProductAnalysisResult{
		TrustScore:   ev.score,
		Verdict:      Classify(ev.score),
		Severity:     Severity(ev.score),
		SpikeAlerts:  ev.spikeAlerts,
		Explanations: ev.explanations,
		Series:       series,
		Distribution: distribution,
	}
}

// detectVolumeSpike scans contiguous sub-windows of the series for review
// volume materially above the rest-of-series baseline. The best window by
// volume ratio is reported with its date range and rating delta.
func detectVolumeSpike(ev *productEval) bool {
	n := len(ev.series)
	if n < minSpikeWindow*2 {
		return false
	}

	var (
		bestRatio              float64
		bestStart, bestEnd     int
		bestVolume, bestRating float64
	)

	for size := minSpikeWindow; size <= maxSpikeWindow && size < n; size++ {
		for start := 0; start+size <= n; start++ {
			end := start + size
			inVolume, inRating := seriesMeans(ev.series[start:end])
			outVolume, outRating := restMeans(ev.series, start, end)
			if outVolume <= 0 {
				continue
			}
			ratio := inVolume / outVolume
			if ratio > bestRatio {
				bestRatio = ratio
				bestStart, bestEnd = start, end
				bestVolume = (ratio - 1) * 100
				bestRating = inRating - outRating
			}
		}
	}

	if bestRatio < spikeVolumeRatio {
		return false
	}

	from := ev.series[bestStart].Date
	to := ev.series[bestEnd-1].Date
	ev.spikeAlerts = append(ev.spikeAlerts, fmt.Sprintf(
		"Unusual spike detected: %s - %s (+%.0f%% reviews, %+.1f★ avg)",
		from.Format("Jan 2"), to.Format("Jan 2"), bestVolume, bestRating))
	ev.explanations = append(ev.explanations,
		"Review volume spike doesn't correlate with known marketing events")
	return true
}

// detectPolarizedDistribution flags a J-shaped star distribution: heavy
// 5-star and 1-star ends with a depressed middle, the signature of
// competing review campaigns.
func detectPolarizedDistribution(ev *productEval) bool {
	var pct1, pct5, mid float64
	for _, b := range ev.distribution {
		switch b.Stars {
		case 1:
			pct1 = b.Percentage
		case 5:
			pct5 = b.Percentage
		case 2, 3, 4:
			mid += b.Percentage
		}
	}

	if pct5 < 60 || pct1 < 10 || mid >= 30 {
		return false
	}

	ev.spikeAlerts = append(ev.spikeAlerts,
		"J-shaped distribution anomaly (high 5★ and 1★, low middle ratings)")
	ev.explanations = append(ev.explanations,
		"Rating distribution shows polarized pattern often associated with manipulation",
		fmt.Sprintf("%.0f%% 5-star reviews with %.0f%% 1-star reviews suggests competing review campaigns", pct5, pct1))
	return true
}

func seriesMeans(points []models.RatingPoint) (volume, rating float64) {
	if len(points) == 0 {
		return 0, 0
	}
	for _, p := range points {
		volume += float64(p.ReviewCount)
		rating += p.Rating
	}
	n := float64(len(points))
	return volume / n, rating / n
}

func restMeans(series []models.RatingPoint, start, end int) (volume, rating float64) {
	count := 0
	for i, p := range series {
		if i >= start && i < end {
			continue
		}
		volume += float64(p.ReviewCount)
		rating += p.Rating
		count++
	}
	if count == 0 {
		return 0, 0
	}
	n := float64(count)
	return volume / n, rating / n
}
