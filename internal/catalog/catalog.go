// Package catalog is the demo data collaborator: it resolves product and
// reviewer identifiers to the metrics the engine consumes. Series data is
// generated from a seed fixed at construction, so the same catalog always
// produces the same data for a given identifier.
package catalog

import (
	"errors"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/authentiview/trustengine/internal/models"
)

// ErrNotFound is returned for identifiers the catalog does not know.
var ErrNotFound = errors.New("not found")

const seriesDays = 30

// Product is a demo catalog entry.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	manipulated bool
}

// Reviewer is a demo catalog entry.
type Reviewer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	suspicious bool
}

// Catalog serves the demo products and reviewers.
type Catalog struct {
	seed int64
	now  time.Time

	products  []Product
	reviewers []Reviewer
}

// New creates a catalog whose generated series end at now and derive from
// seed. Same seed, same data.
func New(seed int64, now time.Time) *Catalog {
	return &Catalog{
		seed: seed,
		now:  now.Truncate(24 * time.Hour),
		products: []Product{
			{ID: "PROD001", Name: "Wireless Earbuds Pro"},
			{ID: "PROD002", Name: "Smart Watch X200", manipulated: true},
			{ID: "PROD003", Name: "Portable Charger 20000mAh"},
		},
		reviewers: []Reviewer{
			{ID: "REV001", Name: "TechEnthusiast42"},
			{ID: "REV002", Name: "HappyShopper99", suspicious: true},
			{ID: "REV003", Name: "ProductTester_Pro"},
		},
	}
}

// Products lists the demo products.
func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// Reviewers lists the demo reviewers.
func (c *Catalog) Reviewers() []Reviewer {
	return append([]Reviewer(nil), c.reviewers...)
}

// ProductData resolves a product ID to its 30-day rating series and star
// distribution.
func (c *Catalog) ProductData(id string) ([]models.RatingPoint, []models.DistributionBucket, error) {
	for _, p := range c.products {
		if p.ID == id {
			return c.ratingSeries(id, p.manipulated), distribution(p.manipulated), nil
		}
	}
	return nil, nil, ErrNotFound
}

// ReviewerData resolves a reviewer ID to behavioral metrics, a 7-day
// activity series, and the anomaly radar profile.
func (c *Catalog) ReviewerData(id string) (models.ReviewerMetrics, []models.ActivityPoint, []models.RadarPoint, error) {
	for _, r := range c.reviewers {
		if r.ID == id {
			return reviewerMetrics(r.suspicious), c.activitySeries(id, r.suspicious), radarProfile(r.suspicious), nil
		}
	}
	return models.ReviewerMetrics{}, nil, nil, ErrNotFound
}

// rng derives a deterministic source per identifier so resolving the same
// subject twice yields identical series.
func (c *Catalog) rng(id string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(id))
	return rand.New(rand.NewSource(c.seed ^ int64(h.Sum64())))
}

// ratingSeries builds one rating/volume point per day over the window.
// Manipulated products get an injected volume and rating surge on days
// 16-20, mirroring a paid review campaign.
func (c *Catalog) ratingSeries(id string, manipulated bool) []models.RatingPoint {
	r := c.rng(id)
	base := 4.1
	if manipulated {
		base = 3.2
	}

	series := make([]models.RatingPoint, 0, seriesDays)
	for i := 0; i < seriesDays; i++ {
		date := c.now.AddDate(0, 0, -(seriesDays - 1 - i))

		rating := base + (r.Float64()-0.5)*0.3
		reviews := r.Intn(20) + 5

		if manipulated && i >= 15 && i <= 20 {
			rating = 4.7 + r.Float64()*0.2
			reviews = r.Intn(50) + 40
		}

		series = append(series, models.RatingPoint{
			Date:        date,
			Rating:      math.Round(rating*10) / 10,
			ReviewCount: reviews,
		})
	}
	return series
}

func distribution(manipulated bool) []models.DistributionBucket {
	if manipulated {
		return []models.DistributionBucket{
			{Stars: 5, Count: 450, Percentage: 65},
			{Stars: 4, Count: 80, Percentage: 12},
			{Stars: 3, Count: 40, Percentage: 6},
			{Stars: 2, Count: 30, Percentage: 4},
			{Stars: 1, Count: 90, Percentage: 13},
		}
	}
	return []models.DistributionBucket{
		{Stars: 5, Count: 180, Percentage: 35},
		{Stars: 4, Count: 200, Percentage: 39},
		{Stars: 3, Count: 80, Percentage: 16},
		{Stars: 2, Count: 30, Percentage: 6},
		{Stars: 1, Count: 20, Percentage: 4},
	}
}

func reviewerMetrics(suspicious bool) models.ReviewerMetrics {
	if suspicious {
		return models.ReviewerMetrics{
			ReviewsPerDay:     8.5,
			AvgRating:         4.9,
			RatingVariance:    0.1,
			CategoryDiversity: 0.15,
			BurstActivity:     true,
		}
	}
	return models.ReviewerMetrics{
		ReviewsPerDay:     0.3,
		AvgRating:         3.8,
		RatingVariance:    1.2,
		CategoryDiversity: 0.85,
		BurstActivity:     false,
	}
}

// activitySeries builds the last seven days of posting counts. Suspicious
// reviewers concentrate their activity in the final three days.
func (c *Catalog) activitySeries(id string, suspicious bool) []models.ActivityPoint {
	r := c.rng(id)
	points := make([]models.ActivityPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		date := c.now.AddDate(0, 0, -i)
		reviews := r.Intn(2)
		if suspicious {
			if i <= 2 {
				reviews = r.Intn(15) + 10
			} else {
				reviews = r.Intn(3)
			}
		}
		points = append(points, models.ActivityPoint{
			Day:     date.Format("Mon"),
			Reviews: reviews,
		})
	}
	return points
}

func radarProfile(suspicious bool) []models.RadarPoint {
	values := map[string][2]int{
		"Review Frequency":   {90, 30},
		"Rating Consistency": {95, 60},
		"Category Focus":     {85, 25},
		"Temporal Burst":     {80, 20},
		"Network Overlap":    {70, 15},
	}
	order := []string{"Review Frequency", "Rating Consistency", "Category Focus", "Temporal Burst", "Network Overlap"}

	points := make([]models.RadarPoint, 0, len(order))
	for _, metric := range order {
		v := values[metric][1]
		if suspicious {
			v = values[metric][0]
		}
		points = append(points, models.RadarPoint{Metric: metric, Value: v, FullMark: 100})
	}
	return points
}
