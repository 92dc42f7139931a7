package trial

import (
	"math/rand"

	"mahjongmc/internal/engine"
	"mahjongmc/internal/policy"
)

// ComparisonResult holds the pooled statistics for one tested policy
// seated against three neutral BucketedRiskPolicy seats, across
// trialCount independent trials.
type ComparisonResult struct {
	Label string
	Stats SeatStats
}

// RunStrategyComparison seats the tested policy at seat 0 against three
// neutral seats sharing the given neutral policy instance, runs
// trialCount independent trials of roundsPerTrial rounds, and pools seat
// 0's statistics across all of them, mirroring the table shape
// original_source/experiments/run_experiment_1.py uses to isolate one
// strategy's performance against a neutral field.
func RunStrategyComparison(rng *rand.Rand, label string, tested, neutral policy.Policy, cfg engine.Config, trialCount, roundsPerTrial int, strict bool) ComparisonResult {
	var cr ComparisonResult
	cr.Label = label

	table := [4]policy.Policy{tested, neutral, neutral, neutral}

	for t := 0; t < trialCount; t++ {
		res := Run(rng, table, cfg, roundsPerTrial, strict)
		merge(&cr.Stats, &res.Seats[0])
	}

	return cr
}
