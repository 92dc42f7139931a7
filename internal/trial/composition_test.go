package trial

import (
	"math/rand"
	"testing"

	"mahjongmc/internal/engine"
	"mahjongmc/internal/policy"
)

func TestRunCompositionSweepCoversAllTheta(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	cfg := engine.Config{BasePoints: 2, FanMin: 1, RiskFloor: 100, PenaltyDealIn: 1.0}
	weights := policy.DefaultWeights()

	results := RunCompositionSweep(rng, cfg, 3, weights, 2, 8, false)

	if len(results) != 5 {
		t.Fatalf("expected 5 compositions (theta 0..4), got %d", len(results))
	}
	if results[0].Aggressive.Rounds == 0 {
		t.Fatalf("expected theta=0 (all value-chasers) to record aggressive rounds")
	}
	if results[4].Defensive.Rounds == 0 {
		t.Fatalf("expected theta=4 (all defenders) to record defensive rounds")
	}
	if results[0].Defensive.Rounds != 0 {
		t.Fatalf("expected theta=0 to have zero defensive seats, got %d rounds", results[0].Defensive.Rounds)
	}
}
