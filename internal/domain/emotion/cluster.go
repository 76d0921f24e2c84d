package emotion

// Category is the three-valued daily classification.
type Category string

const (
	CategoryNegative Category = "Negative"
	CategoryNeutral  Category = "Neutral"
	CategoryPositive Category = "Positive"
)

// Cluster is one of six ordered discretization bands over the valence
// range. Bands are closed on the right: a valence exactly on a boundary
// belongs to the lower cluster.
type Cluster string

const (
	ClusterStrongNegative  Cluster = "strong-negative"
	ClusterWeakNegative    Cluster = "weak-negative"
	ClusterNegativeNeutral Cluster = "negative-leaning-neutral"
	ClusterPositiveNeutral Cluster = "positive-leaning-neutral"
	ClusterWeakPositive    Cluster = "weak-positive"
	ClusterStrongPositive  Cluster = "strong-positive"
)

// clusterOrder lists clusters from most negative to most positive.
var clusterOrder = []Cluster{
	ClusterStrongNegative,
	ClusterWeakNegative,
	ClusterNegativeNeutral,
	ClusterPositiveNeutral,
	ClusterWeakPositive,
	ClusterStrongPositive,
}

// Shared classification thresholds. Defined once so the threshold
// strategies and the discretizer cannot drift apart.
const (
	negativeUpperBound = 4.5
	neutralUpperBound  = 6.0
)

// ClusterOf maps a valence to its discretization band. Total over the
// real line.
func ClusterOf(valence float64) Cluster {
	switch {
	case valence <= 3.5:
		return ClusterStrongNegative
	case valence <= negativeUpperBound:
		return ClusterWeakNegative
	case valence <= 5.2:
		return ClusterNegativeNeutral
	case valence <= neutralUpperBound:
		return ClusterPositiveNeutral
	case valence <= 7.6:
		return ClusterWeakPositive
	default:
		return ClusterStrongPositive
	}
}

// Category maps a cluster to its emotion category.
func (c Cluster) Category() Category {
	switch c {
	case ClusterStrongNegative, ClusterWeakNegative:
		return CategoryNegative
	case ClusterWeakPositive, ClusterStrongPositive:
		return CategoryPositive
	default:
		return CategoryNeutral
	}
}

// categoryForValence applies the 2-threshold classifier shared by the
// average, latest, peak and weighted-average strategies. Both
// boundaries belong to the lower category.
func categoryForValence(v float64) Category {
	switch {
	case v <= negativeUpperBound:
		return CategoryNegative
	case v <= neutralUpperBound:
		return CategoryNeutral
	default:
		return CategoryPositive
	}
}
