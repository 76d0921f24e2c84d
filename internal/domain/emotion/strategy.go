package emotion

import "fmt"

// Strategy identifies one of the interchangeable day-level
// classification algorithms.
type Strategy string

const (
	// StrategyAverage classifies the arithmetic mean of the day.
	StrategyAverage Strategy = "average"
	// StrategyLatest classifies the chronologically last reading.
	StrategyLatest Strategy = "latest"
	// StrategyMostFrequent picks the modal category across all
	// discretized readings.
	StrategyMostFrequent Strategy = "most_frequent"
	// StrategyPeak classifies the reading furthest from the neutral
	// baseline.
	StrategyPeak Strategy = "peak"
	// StrategyWeightedAverage classifies a mean that weights later
	// readings more heavily.
	StrategyWeightedAverage Strategy = "weighted_average"
	// StrategyWeightedCluster scores clusters by signed strength and
	// classifies the mean score.
	StrategyWeightedCluster Strategy = "weighted_cluster"
)

// Strategies lists every known strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{
		StrategyAverage,
		StrategyLatest,
		StrategyMostFrequent,
		StrategyPeak,
		StrategyWeightedAverage,
		StrategyWeightedCluster,
	}
}

// ParseStrategy validates a configured strategy identifier against the
// closed set.
func ParseStrategy(raw string) (Strategy, error) {
	s := Strategy(raw)
	for _, known := range Strategies() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, raw)
}

// Classify dispatches to the strategy's classifier function.
func (s Strategy) Classify(readings []Reading) (Category, error) {
	switch s {
	case StrategyAverage:
		return ClassifyAverage(readings)
	case StrategyLatest:
		return ClassifyLatest(readings)
	case StrategyMostFrequent:
		return ClassifyMostFrequent(readings)
	case StrategyPeak:
		return ClassifyPeak(readings)
	case StrategyWeightedAverage:
		return ClassifyWeightedAverage(readings)
	case StrategyWeightedCluster:
		return ClassifyWeightedCluster(readings)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}
}
