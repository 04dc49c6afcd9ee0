package usecase

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// predictionHorizon is the number of forward points generated.
	predictionHorizon = 10
	// predictionStepMinutes is the synthetic spacing of those points.
	predictionStepMinutes = 5
	// trendStep is the per-point continuation of the last observed move.
	trendStep = 0.001
)

// generatePredictions extends an ascending price series with ten synthetic
// forward points: the last price continued by ±0.1% per step in the
// direction of the latest move, with uniform noise scaled to that move's
// relative size. This is a placeholder shape for the chart, not a model.
// Fewer than two input points yields no projection.
func generatePredictions(prices []float64, rng *rand.Rand) []float64 {
	if len(prices) < 2 {
		return nil
	}

	last := prices[len(prices)-1]
	delta := last - prices[len(prices)-2]

	volatility := 0.0
	if last != 0 {
		volatility = math.Abs(delta / last)
	}

	trend := trendStep
	if delta <= 0 {
		trend = -trendStep
	}

	out := make([]float64, predictionHorizon)
	for i := range out {
		noise := (rng.Float64() - 0.5) * volatility * 2
		v := last * (1 + noise) * (1 + trend*float64(i+1))
		out[i] = math.Round(v*100) / 100
	}
	return out
}

// futureLabels returns the synthetic time-axis extension for the projected
// points ("+5min" ... "+50min").
func futureLabels() []string {
	labels := make([]string, predictionHorizon)
	for i := range labels {
		labels[i] = fmt.Sprintf("+%dmin", (i+1)*predictionStepMinutes)
	}
	return labels
}
