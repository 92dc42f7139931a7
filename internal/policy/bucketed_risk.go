package policy

import "mahjongmc/internal/mahjong"

// BucketedRiskThresholds configures the neutral baseline: three fan floors
// bucketed by table risk, per the configurable-neutral-policy resolution
// of the fan_high/fan_mid/fan_low open question.
type BucketedRiskThresholds struct {
	FanHigh  int
	FanMid   int
	FanLow   int
	RiskHigh float64
	RiskMid  float64

	PongRiskThreshold float64
	GongRiskThreshold float64
	ChiRiskThreshold  float64
}

// DefaultBucketedRiskThresholds places the neutral policy squarely between
// TempoDefender and ValueChaser: more willing to wait than the defender,
// less greedy than the chaser.
func DefaultBucketedRiskThresholds() BucketedRiskThresholds {
	return BucketedRiskThresholds{
		FanHigh:           1,
		FanMid:            2,
		FanLow:            3,
		RiskHigh:          0.6,
		RiskMid:           0.3,
		PongRiskThreshold: 0.45,
		GongRiskThreshold: 0.45,
		ChiRiskThreshold:  0.45,
	}
}

// BucketedRiskPolicy accepts progressively lower fan floors as table risk
// rises: F_high at high risk, F_mid at moderate risk, F_low otherwise.
type BucketedRiskPolicy struct {
	Thresholds BucketedRiskThresholds
	Weights    Weights
}

// NewBucketedRiskPolicy builds the neutral baseline with default
// thresholds and weights.
func NewBucketedRiskPolicy() *BucketedRiskPolicy {
	return &BucketedRiskPolicy{
		Thresholds: DefaultBucketedRiskThresholds(),
		Weights:    DefaultWeights(),
	}
}

func (p *BucketedRiskPolicy) requiredFan(risk float64) int {
	t := p.Thresholds
	switch {
	case risk >= t.RiskHigh:
		return t.FanHigh
	case risk >= t.RiskMid:
		return t.FanMid
	default:
		return t.FanLow
	}
}

func (p *BucketedRiskPolicy) ShouldDeclareWin(fan int, risk float64, _ *TableState) bool {
	return fan >= p.requiredFan(risk)
}

func (p *BucketedRiskPolicy) ShouldClaim(kind ClaimKind, risk float64, _ *TableState) bool {
	t := p.Thresholds
	switch kind {
	case Pong:
		return risk < t.PongRiskThreshold
	case Gong:
		return risk < t.GongRiskThreshold
	case Chi:
		return risk < t.ChiRiskThreshold
	default:
		return false
	}
}

func (p *BucketedRiskPolicy) ChooseDiscard(hand *mahjong.Hand, ctx *TableState) mahjong.Tile {
	tiles := hand.Closed
	completion := handCompletionScore(hand, p.Weights)
	weights := dynamicWeights(p.Weights, completion, ctx.Turn, ctx.WallRemaining)

	best := tiles[0]
	bestScore := 0.0
	for i, t := range tiles {
		potential := meldPotential(t, tiles, weights)
		safety := safetyScore(t, ctx.DiscardPile) * weights.SafetyWeight
		discardScore := potential - safety
		if i == 0 || discardScore < bestScore {
			best, bestScore = t, discardScore
		}
	}
	return best
}
