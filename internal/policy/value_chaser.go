package policy

import "mahjongmc/internal/mahjong"

// ValueChaserThresholds is the threshold bag loaded from the
// configuration's policies.value_chaser block.
type ValueChaserThresholds struct {
	BailoutRiskThreshold float64
	ChiRiskThreshold     float64
	ChiWallThreshold     int
}

// DefaultValueChaserThresholds matches the defaults a config omitting the
// block would fall back to.
func DefaultValueChaserThresholds() ValueChaserThresholds {
	return ValueChaserThresholds{
		BailoutRiskThreshold: 0.65,
		ChiRiskThreshold:     0.7,
		ChiWallThreshold:     25,
	}
}

// ValueChaser holds out for a high-fan hand, claims pong/gong unconditionally
// to chase value, claims chi early when the wall is deep, and discards
// whatever is outside its dominant suit first.
type ValueChaser struct {
	FanMin          int
	TargetThreshold int
	Thresholds      ValueChaserThresholds
	Weights         Weights
}

// NewValueChaser builds a ValueChaser with the given fan floor and target
// threshold, and defaulted thresholds/weights.
func NewValueChaser(fanMin, targetThreshold int) *ValueChaser {
	return &ValueChaser{
		FanMin:          fanMin,
		TargetThreshold: targetThreshold,
		Thresholds:      DefaultValueChaserThresholds(),
		Weights:         DefaultWeights(),
	}
}

func (p *ValueChaser) ShouldDeclareWin(fan int, risk float64, _ *TableState) bool {
	threshold := p.TargetThreshold
	if risk > p.Thresholds.BailoutRiskThreshold {
		return fan >= p.FanMin
	}
	return fan >= threshold
}

func (p *ValueChaser) ShouldClaim(kind ClaimKind, risk float64, ctx *TableState) bool {
	switch kind {
	case Gong:
		return true
	case Pong:
		return true
	case Chi:
		wallRemaining := 50
		if ctx != nil {
			wallRemaining = ctx.WallRemaining
		}
		return wallRemaining > p.Thresholds.ChiWallThreshold && risk < p.Thresholds.ChiRiskThreshold
	default:
		return false
	}
}

func (p *ValueChaser) ChooseDiscard(hand *mahjong.Hand, ctx *TableState) mahjong.Tile {
	tiles := hand.Closed
	dominant, haveDominant := suitMajority(tiles)
	completion := handCompletionScore(hand, p.Weights)
	weights := dynamicWeights(p.Weights, completion, ctx.Turn, ctx.WallRemaining)
	availability := opponentSuitAvailability(ctx.DiscardPile)

	worst := tiles[0]
	worstScore := 0.0
	for i, t := range tiles {
		suitPenalty := 0.0
		if haveDominant && t.Suit != dominant && !t.Suit.IsHonor() {
			suitPenalty = weights.SuitPenalty
		}
		potential := meldPotential(t, tiles, weights)
		safety := safetyScore(t, ctx.DiscardPile) * weights.SafetyWeight * 0.5
		suitAvailabilityBonus := 0.0
		if v, ok := availability[t.Suit]; ok {
			suitAvailabilityBonus = v
		}
		postDiscard := evaluatePostDiscardHand(hand, t, weights)

		// Higher keep-score means more worth keeping; the lowest is
		// discarded.
		keepScore := potential + safety + suitAvailabilityBonus + postDiscard*0.8 - suitPenalty

		if i == 0 || keepScore < worstScore {
			worst, worstScore = t, keepScore
		}
	}
	return worst
}
