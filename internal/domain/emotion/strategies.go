package emotion

import (
	"fmt"
	"math"
)

// neutralBaseline is the valence treated as emotionally flat by the
// peak strategy; deviation is measured from this point.
const neutralBaseline = 5.6

// clusterWeights assigns a signed strength score to each band, used by
// the weighted-cluster strategy.
var clusterWeights = map[Cluster]float64{
	ClusterStrongNegative:  -2.0,
	ClusterWeakNegative:    -1.0,
	ClusterNegativeNeutral: -0.3,
	ClusterPositiveNeutral: 0.3,
	ClusterWeakPositive:    1.0,
	ClusterStrongPositive:  2.0,
}

// weightedClusterDeadBand is the score magnitude below which the
// weighted-cluster strategy reports Neutral.
const weightedClusterDeadBand = 0.3

func validateReadings(readings []Reading) error {
	if len(readings) == 0 {
		return ErrNoReadings
	}
	for i, r := range readings {
		if math.IsNaN(r.Valence) || math.IsInf(r.Valence, 0) {
			return fmt.Errorf("%w: reading %d has valence %v", ErrInvalidValence, i, r.Valence)
		}
	}
	return nil
}

// ClassifyAverage reduces the day to its arithmetic mean valence and
// applies the shared 2-threshold classifier. Timestamps are ignored.
func ClassifyAverage(readings []Reading) (Category, error) {
	if err := validateReadings(readings); err != nil {
		return "", err
	}
	sum := 0.0
	for _, r := range readings {
		sum += r.Valence
	}
	return categoryForValence(sum / float64(len(readings))), nil
}

// ClassifyLatest classifies the valence of the chronologically last
// reading. When several readings share the maximum timestamp the last
// one in input order wins, so the result is deterministic for any
// input permutation with distinct timestamps and stable otherwise.
func ClassifyLatest(readings []Reading) (Category, error) {
	if err := validateReadings(readings); err != nil {
		return "", err
	}
	latest := readings[0]
	for _, r := range readings[1:] {
		if !r.At.Before(latest.At) {
			latest = r
		}
	}
	return categoryForValence(latest.Valence), nil
}

// ClassifyMostFrequent discretizes every reading, tallies the three
// categories and returns the mode. Ties are broken by the fixed
// priority Positive, then Negative, then Neutral.
func ClassifyMostFrequent(readings []Reading) (Category, error) {
	if err := validateReadings(readings); err != nil {
		return "", err
	}
	tally := NewTally(readings)
	return tally.mode(), nil
}

func (t Tally) mode() Category {
	pos := t.Categories[CategoryPositive]
	neg := t.Categories[CategoryNegative]
	neu := t.Categories[CategoryNeutral]

	highest := max(pos, neg, neu)
	switch {
	case pos == highest:
		return CategoryPositive
	case neg == highest:
		return CategoryNegative
	default:
		return CategoryNeutral
	}
}

// ClassifyPeak classifies the valence furthest from the neutral
// baseline, i.e. the strongest emotion of the day regardless of when
// it occurred. On equal deviation the earliest reading in input order
// wins.
func ClassifyPeak(readings []Reading) (Category, error) {
	if err := validateReadings(readings); err != nil {
		return "", err
	}
	peak := readings[0]
	peakDev := math.Abs(peak.Valence - neutralBaseline)
	for _, r := range readings[1:] {
		if dev := math.Abs(r.Valence - neutralBaseline); dev > peakDev {
			peak = r
			peakDev = dev
		}
	}
	return categoryForValence(peak.Valence), nil
}

// ClassifyWeightedAverage computes a time-weighted mean in which later
// readings count for more: weights scale linearly from 0.5 at the
// day's first timestamp to 1.5 at its last. When every reading shares
// one timestamp the weights collapse and the plain mean is used.
func ClassifyWeightedAverage(readings []Reading) (Category, error) {
	if err := validateReadings(readings); err != nil {
		return "", err
	}
	first, last := readings[0].At, readings[0].At
	for _, r := range readings[1:] {
		if r.At.Before(first) {
			first = r.At
		}
		if r.At.After(last) {
			last = r.At
		}
	}

	span := last.Sub(first).Seconds()
	if span == 0 {
		return ClassifyAverage(readings)
	}

	var weightedSum, weightTotal float64
	for _, r := range readings {
		w := 0.5 + r.At.Sub(first).Seconds()/span
		weightedSum += w * r.Valence
		weightTotal += w
	}
	return categoryForValence(weightedSum / weightTotal), nil
}

// ClassifyWeightedCluster scores each reading by its cluster's signed
// strength and classifies the mean score: above the dead band is
// Positive, below its negation is Negative, anything in between is
// Neutral.
func ClassifyWeightedCluster(readings []Reading) (Category, error) {
	if err := validateReadings(readings); err != nil {
		return "", err
	}
	total := 0.0
	for _, r := range readings {
		total += clusterWeights[ClusterOf(r.Valence)]
	}
	score := total / float64(len(readings))
	switch {
	case score > weightedClusterDeadBand:
		return CategoryPositive, nil
	case score < -weightedClusterDeadBand:
		return CategoryNegative, nil
	default:
		return CategoryNeutral, nil
	}
}
