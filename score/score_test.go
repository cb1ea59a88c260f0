package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	testData := map[string]struct {
		actual   []float64
		fitted   []float64
		expected ModelQuality
	}{
		"perfect fit": {
			[]float64{2, 4, 6, 8},
			[]float64{2, 4, 6, 8},
			ModelQuality{RSquared: 1.0, StandardError: 0, MeanAbsoluteError: 0},
		},
		"constant actual": {
			[]float64{100, 100, 100},
			[]float64{100, 100, 100},
			ModelQuality{RSquared: 1.0, StandardError: 0, MeanAbsoluteError: 0},
		},
		"flat line through varying actual": {
			[]float64{1, 2, 3, 4},
			[]float64{2, 2, 2, 2},
			ModelQuality{RSquared: -0.2, StandardError: math.Sqrt(3.0), MeanAbsoluteError: 1.0},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			mq, err := Evaluate(td.actual, td.fitted)
			require.Nil(t, err)
			assert.InDelta(t, td.expected.RSquared, mq.RSquared, 1e-9, "r squared")
			assert.InDelta(t, td.expected.StandardError, mq.StandardError, 1e-9, "standard error")
			assert.InDelta(t, td.expected.MeanAbsoluteError, mq.MeanAbsoluteError, 1e-9, "mean absolute error")
		})
	}
}

func TestEvaluateStandardErrorSmallSample(t *testing.T) {
	// n <= 2 leaves no residual degrees of freedom
	mq, err := Evaluate([]float64{1, 5}, []float64{2, 2})
	require.Nil(t, err)
	assert.Equal(t, 0.0, mq.StandardError)
}

func TestEvaluateLenMismatch(t *testing.T) {
	_, err := Evaluate([]float64{1, 2, 3}, []float64{1, 2})
	require.ErrorIs(t, err, ErrFitLenMismatch)
}
