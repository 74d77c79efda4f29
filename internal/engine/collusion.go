package engine

// CollusionEstimator estimates a reviewer's participation in a coordinated
// reviewing network. The interface exists so a real graph-overlap
// computation can replace the static placeholder without touching callers.
type CollusionEstimator interface {
	// Estimate returns the collusion probability (0-100) and the size of
	// the reviewer community the subject belongs to.
	Estimate(suspicious bool) (probability, communitySize int)

	// Component returns the graph-integrity score fused into the review
	// flow. Without real graph data this is a neutral constant.
	Component() int
}

// StaticEstimator returns fixed per-category values. It stands in for a
// community-detection pass over the reviewer-product graph, which this
// service does not compute.
type StaticEstimator struct{}

func (StaticEstimator) Estimate(suspicious bool) (int, int) {
	if suspicious {
		return 73, 47
	}
	return 8, 3
}

func (StaticEstimator) Component() int { return 85 }
