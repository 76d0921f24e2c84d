package emotion

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2024-07-01T"+clock+":00Z")
	require.NoError(t, err)
	return ts
}

func reading(t *testing.T, clock string, valence float64) Reading {
	t.Helper()
	return Reading{At: at(t, clock), Valence: valence}
}

func TestClassifyAverage(t *testing.T) {
	tests := []struct {
		name     string
		valences []float64
		want     Category
	}{
		{name: "mean on negative boundary", valences: []float64{4.0, 5.0}, want: CategoryNegative},
		{name: "mean just above negative boundary", valences: []float64{4.0, 5.00002}, want: CategoryNeutral},
		{name: "mean on neutral boundary", valences: []float64{5.0, 7.0}, want: CategoryNeutral},
		{name: "mean just above neutral boundary", valences: []float64{5.0, 7.00002}, want: CategoryPositive},
		{name: "single reading", valences: []float64{8.2}, want: CategoryPositive},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			readings := make([]Reading, 0, len(tt.valences))
			for i, v := range tt.valences {
				readings = append(readings, Reading{At: at(t, "09:00").Add(time.Duration(i) * time.Hour), Valence: v})
			}
			got, err := ClassifyAverage(readings)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

// Shifting every valence upward by the same amount never moves the
// average classification toward a more negative category.
func TestClassifyAverageMonotonicUnderShift(t *testing.T) {
	rank := map[Category]int{CategoryNegative: 0, CategoryNeutral: 1, CategoryPositive: 2}
	base := []float64{2.0, 4.4, 5.1, 6.3}

	for shift := 0.0; shift <= 6.0; shift += 0.25 {
		readings := make([]Reading, 0, len(base))
		shifted := make([]Reading, 0, len(base))
		for i, v := range base {
			ts := at(t, "08:00").Add(time.Duration(i) * time.Hour)
			readings = append(readings, Reading{At: ts, Valence: v})
			shifted = append(shifted, Reading{At: ts, Valence: v + shift})
		}

		before, err := ClassifyAverage(readings)
		require.NoError(t, err)
		after, err := ClassifyAverage(shifted)
		require.NoError(t, err)
		require.GreaterOrEqual(t, rank[after], rank[before], "shift %v", shift)
	}
}

func TestClassifyLatest(t *testing.T) {
	t.Run("input order does not matter", func(t *testing.T) {
		chronological := []Reading{
			reading(t, "09:00", 8.0),
			reading(t, "18:00", 2.0),
		}
		reversed := []Reading{
			reading(t, "18:00", 2.0),
			reading(t, "09:00", 8.0),
		}

		got, err := ClassifyLatest(chronological)
		require.NoError(t, err)
		require.Equal(t, CategoryNegative, got)

		got, err = ClassifyLatest(reversed)
		require.NoError(t, err)
		require.Equal(t, CategoryNegative, got)
	})

	t.Run("identical max timestamp resolves to last in input order", func(t *testing.T) {
		readings := []Reading{
			reading(t, "10:00", 5.0),
			reading(t, "18:00", 9.0),
			reading(t, "18:00", 2.0),
		}
		got, err := ClassifyLatest(readings)
		require.NoError(t, err)
		require.Equal(t, CategoryNegative, got)
	})
}

func TestClassifyMostFrequent(t *testing.T) {
	tests := []struct {
		name     string
		valences []float64
		want     Category
	}{
		{name: "clear negative majority", valences: []float64{2.0, 3.0, 4.0, 9.0}, want: CategoryNegative},
		{name: "clear neutral majority", valences: []float64{5.0, 5.5, 2.0}, want: CategoryNeutral},
		{name: "positive wins two way tie", valences: []float64{2.0, 9.0}, want: CategoryPositive},
		{name: "positive wins three way tie", valences: []float64{2.0, 5.0, 9.0}, want: CategoryPositive},
		{name: "negative beats neutral on tie", valences: []float64{2.0, 2.0, 5.0, 5.5}, want: CategoryNegative},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			readings := make([]Reading, 0, len(tt.valences))
			for i, v := range tt.valences {
				readings = append(readings, Reading{At: at(t, "08:00").Add(time.Duration(i) * time.Hour), Valence: v})
			}
			got, err := ClassifyMostFrequent(readings)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyPeak(t *testing.T) {
	t.Run("strongest deviation wins regardless of time", func(t *testing.T) {
		readings := []Reading{
			reading(t, "09:00", 9.0),
			reading(t, "18:00", 5.5),
		}
		got, err := ClassifyPeak(readings)
		require.NoError(t, err)
		require.Equal(t, CategoryPositive, got)
	})

	t.Run("equal deviation resolves to first in input order", func(t *testing.T) {
		// Offsets computed from the baseline constant itself are exact
		// in float64, so both deviations are identical at runtime.
		readings := []Reading{
			{At: at(t, "09:00"), Valence: neutralBaseline - 2},
			{At: at(t, "10:00"), Valence: neutralBaseline + 2},
		}
		got, err := ClassifyPeak(readings)
		require.NoError(t, err)
		require.Equal(t, CategoryNegative, got)
	})

	t.Run("near tie resolves by strict comparison", func(t *testing.T) {
		// The literals 3.6 and 7.6 look symmetric around 5.6, but their
		// float64 deviations differ in the last bit and 7.6 sits the
		// strictly larger distance away, so it wins.
		readings := []Reading{
			reading(t, "09:00", 3.6),
			reading(t, "10:00", 7.6),
		}
		got, err := ClassifyPeak(readings)
		require.NoError(t, err)
		require.Equal(t, CategoryPositive, got)
	})
}

func TestClassifyWeightedAverage(t *testing.T) {
	t.Run("later readings weigh more", func(t *testing.T) {
		// Plain mean is 5.5 (Neutral); weights 0.5 and 1.5 pull the
		// weighted mean to 7.25.
		readings := []Reading{
			reading(t, "09:00", 2.0),
			reading(t, "21:00", 9.0),
		}
		got, err := ClassifyWeightedAverage(readings)
		require.NoError(t, err)
		require.Equal(t, CategoryPositive, got)

		plain, err := ClassifyAverage(readings)
		require.NoError(t, err)
		require.Equal(t, CategoryNeutral, plain)
	})

	t.Run("coincident timestamps fall back to plain mean", func(t *testing.T) {
		readings := []Reading{
			reading(t, "12:00", 2.0),
			reading(t, "12:00", 9.0),
		}
		got, err := ClassifyWeightedAverage(readings)
		require.NoError(t, err)
		require.Equal(t, CategoryNeutral, got)
	})
}

func TestClassifyWeightedCluster(t *testing.T) {
	tests := []struct {
		name     string
		valences []float64
		want     Category
	}{
		{name: "strong positives dominate", valences: []float64{9.0, 9.0, 5.0}, want: CategoryPositive},
		{name: "strong negatives dominate", valences: []float64{2.0, 2.0}, want: CategoryNegative},
		{name: "score on dead band edge is neutral", valences: []float64{5.0}, want: CategoryNeutral},
		{name: "mixed day cancels out", valences: []float64{2.0, 9.0}, want: CategoryNeutral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			readings := make([]Reading, 0, len(tt.valences))
			for i, v := range tt.valences {
				readings = append(readings, Reading{At: at(t, "08:00").Add(time.Duration(i) * time.Hour), Valence: v})
			}
			got, err := ClassifyWeightedCluster(readings)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStrategiesRejectEmptyInput(t *testing.T) {
	for _, s := range Strategies() {
		s := s
		t.Run(string(s), func(t *testing.T) {
			t.Parallel()
			_, err := s.Classify(nil)
			require.ErrorIs(t, err, ErrNoReadings)
		})
	}
}

func TestStrategiesRejectNonFiniteValence(t *testing.T) {
	for _, s := range Strategies() {
		s := s
		t.Run(string(s), func(t *testing.T) {
			t.Parallel()
			readings := []Reading{
				reading(t, "09:00", 5.0),
				reading(t, "10:00", math.NaN()),
			}
			_, err := s.Classify(readings)
			require.ErrorIs(t, err, ErrInvalidValence)
		})
	}
}

// Every strategy is pure: the same unmodified input always produces the
// same category, and the input slice is never reordered.
func TestStrategiesAreIdempotent(t *testing.T) {
	readings := []Reading{
		reading(t, "18:00", 2.0),
		reading(t, "09:00", 8.0),
		reading(t, "12:30", 5.5),
	}

	for _, s := range Strategies() {
		s := s
		t.Run(string(s), func(t *testing.T) {
			first, err := s.Classify(readings)
			require.NoError(t, err)
			second, err := s.Classify(readings)
			require.NoError(t, err)
			require.Equal(t, first, second)
			require.Equal(t, at(t, "18:00"), readings[0].At)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies() {
		parsed, err := ParseStrategy(string(s))
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	_, err := ParseStrategy("median")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}
