package models

import "time"

// Verdict is the three-level authenticity label derived from a trust score.
type Verdict string

const (
	VerdictGenuine    Verdict = "genuine"
	VerdictSuspicious Verdict = "suspicious"
	VerdictLikelyFake Verdict = "likely_fake"
)

// ReviewInput is the raw material for a single-review analysis.
// A rating of 0 means the caller did not supply one.
type ReviewInput struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// ScoreComponent is one weighted factor of a fused trust score.
type ScoreComponent struct {
	Label  string  `json:"label"`
	Value  int     `json:"value"`  // 0-100
	Weight float64 `json:"weight"` // 0-1, canonical set sums to 1.0
}

// Highlight is a flagged substring of the review text. Offsets are byte
// offsets into the original text.
type Highlight struct {
	Phrase string `json:"phrase"`
	Reason string `json:"reason"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// TextSpan is one segment of the annotated review text. The spans of an
// analysis partition the original text exactly, in order, without overlap.
// Flagged spans carry the reason they were highlighted.
type TextSpan struct {
	Text    string `json:"text"`
	Flagged bool   `json:"flagged"`
	Reason  string `json:"reason,omitempty"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

// AnalysisResult is the outcome of a single-review analysis.
type AnalysisResult struct {
	ID              string           `json:"id,omitempty"`
	FinalScore      int              `json:"final_score"`      // 0-100, higher is more genuine
	FakeProbability int              `json:"fake_probability"` // 100 - FinalScore
	Verdict         Verdict          `json:"verdict"`
	Severity        string           `json:"severity"` // info, warning, danger
	Components      []ScoreComponent `json:"components"`
	Highlights      []Highlight      `json:"highlights"`
	Spans           []TextSpan       `json:"spans"`
	Explanations    []string         `json:"explanations"`
	CreatedAt       time.Time        `json:"created_at,omitempty"`
}

// RatingPoint is one day of a product's rating history.
type RatingPoint struct {
	Date        time.Time `json:"date"`
	Rating      float64   `json:"rating"` // 1-5
	ReviewCount int       `json:"review_count"`
}

// DistributionBucket is the share of reviews at one star level.
type DistributionBucket struct {
	Stars      int     `json:"stars"` // 1-5
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // buckets sum to ~100
}

// ProductAnalysisResult is the outcome of a product rating-history analysis.
type ProductAnalysisResult struct {
	ID           string               `json:"id,omitempty"`
	TrustScore   int                  `json:"trust_score"`
	Verdict      Verdict              `json:"verdict"`
	Severity     string               `json:"severity"`
	SpikeAlerts  []string             `json:"spike_alerts"`
	Explanations []string             `json:"explanations"`
	Series       []RatingPoint        `json:"series"`
	Distribution []DistributionBucket `json:"distribution"`
	CreatedAt    time.Time            `json:"created_at,omitempty"`
}

// ReviewerMetrics is a reviewer's aggregated behavioral profile.
type ReviewerMetrics struct {
	ReviewsPerDay     float64 `json:"reviews_per_day"`
	AvgRating         float64 `json:"avg_rating"`         // 1-5
	RatingVariance    float64 `json:"rating_variance"`    // >= 0
	CategoryDiversity float64 `json:"category_diversity"` // 0-1
	BurstActivity     bool    `json:"burst_activity"`
}

// ActivityPoint is one day of a reviewer's posting activity.
type ActivityPoint struct {
	Day     string `json:"day"`
	Reviews int    `json:"reviews"`
}

// RadarPoint is one axis of the anomaly profile chart.
type RadarPoint struct {
	Metric   string `json:"metric"`
	Value    int    `json:"value"`
	FullMark int    `json:"full_mark"`
}

// ReviewerAnalysisResult is the outcome of a reviewer behavior analysis.
type ReviewerAnalysisResult struct {
	ID                   string          `json:"id,omitempty"`
	TrustScore           int             `json:"trust_score"`
	Verdict              Verdict         `json:"verdict"`
	Severity             string          `json:"severity"`
	AnomalyFlags         []string        `json:"anomaly_flags"`
	Explanations         []string        `json:"explanations"`
	Metrics              ReviewerMetrics `json:"metrics"`
	CollusionProbability int             `json:"collusion_probability"` // 0-100
	CommunitySize        int             `json:"community_size"`
	Activity             []ActivityPoint `json:"activity,omitempty"`
	Radar                []RadarPoint    `json:"radar,omitempty"`
	CreatedAt            time.Time       `json:"created_at,omitempty"`
}
