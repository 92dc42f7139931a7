package policy

import "mahjongmc/internal/mahjong"

// TempoDefenderThresholds is the threshold bag loaded from the
// configuration's policies.tempo_defender block.
type TempoDefenderThresholds struct {
	HighRiskThreshold float64
	GongRiskThreshold float64
	PongRiskThreshold float64
	ChiRiskThreshold  float64
	RiskFanAdjustment float64
}

// DefaultTempoDefenderThresholds matches the defaults a config omitting
// the block would fall back to.
func DefaultTempoDefenderThresholds() TempoDefenderThresholds {
	return TempoDefenderThresholds{
		HighRiskThreshold: 0.5,
		GongRiskThreshold: 0.35,
		PongRiskThreshold: 0.5,
		ChiRiskThreshold:  0.35,
		RiskFanAdjustment: 0.5,
	}
}

// TempoDefender declares win as soon as any legal fan is available, claims
// conservatively below fixed risk thresholds, and discards a low-potential
// tile, preferring ones whose copies already sit in the discard pile.
type TempoDefender struct {
	FanMin     int
	Thresholds TempoDefenderThresholds
	Weights    Weights
}

// NewTempoDefender builds a TempoDefender with the given fan_min and
// defaulted thresholds/weights, overridable field by field by the caller.
func NewTempoDefender(fanMin int) *TempoDefender {
	return &TempoDefender{
		FanMin:     fanMin,
		Thresholds: DefaultTempoDefenderThresholds(),
		Weights:    DefaultWeights(),
	}
}

func (p *TempoDefender) ShouldDeclareWin(fan int, risk float64, _ *TableState) bool {
	if fan >= p.FanMin {
		return true
	}
	return risk >= p.Thresholds.HighRiskThreshold && float64(fan) >= float64(p.FanMin)-p.Thresholds.RiskFanAdjustment
}

func (p *TempoDefender) ShouldClaim(kind ClaimKind, risk float64, _ *TableState) bool {
	switch kind {
	case Gong:
		return risk < p.Thresholds.GongRiskThreshold
	case Pong:
		return risk < p.Thresholds.PongRiskThreshold
	case Chi:
		return risk < p.Thresholds.ChiRiskThreshold
	default:
		return false
	}
}

func (p *TempoDefender) ChooseDiscard(hand *mahjong.Hand, ctx *TableState) mahjong.Tile {
	tiles := hand.Closed
	completion := handCompletionScore(hand, p.Weights)
	weights := dynamicWeights(p.Weights, completion, ctx.Turn, ctx.WallRemaining)
	availability := opponentSuitAvailability(ctx.DiscardPile)

	best := tiles[0]
	bestScore := 0.0
	for i, t := range tiles {
		potential := meldPotential(t, tiles, weights)
		safety := safetyScore(t, ctx.DiscardPile) * weights.SafetyWeight
		suitBonus := 0.0
		if v, ok := availability[t.Suit]; ok {
			suitBonus = v * 0.5
		}
		postDiscard := evaluatePostDiscardHand(hand, t, weights)

		// Lower score is better to discard: safer and structurally-clearer
		// tiles are preferred discards, high meld-potential tiles are kept.
		discardScore := -safety*2.0 - postDiscard*1.5 + potential*0.5 - suitBonus

		if i == 0 || discardScore < bestScore {
			best, bestScore = t, discardScore
		}
	}
	return best
}
