package engine

import (
	"mahjongmc/internal/mahjong"
	"mahjongmc/internal/policy"
)

// claimWindowResult tells Run how to continue after the discard has been
// offered to the three reacting seats.
type claimWindowResult struct {
	terminal         bool
	outcome          Outcome
	reenterPostDraw  bool // a gong claim: becomes current seat, drew a replacement
	replacement      mahjong.Tile
	proceedToDiscard bool // a pong/chi claim: becomes current seat, discards next
}

// claimWindow implements §4.4 CLAIM_WINDOW: the three non-current seats
// are considered in fixed clockwise order; arbitration proceeds by
// priority class (win > gong > pong/chi), not by seat order.
func (r *Round) claimWindow(discard mahjong.Tile) (claimWindowResult, error) {
	discarder := r.current

	if seat, fan, ok := arbitrateWin(
		r.hands, r.policies, r.analyzer, discarder, discard,
		func(s int, decomp mahjong.Decomposition) *mahjong.FanContext {
			return &mahjong.FanContext{
				Hand:        r.hands[s],
				Decomp:      decomp,
				SelfDraw:    false,
				Dealer:      s == r.dealer,
				WinningTile: discard,
			}
		},
		r.tableStateFor,
		func(int) float64 { return r.risk() },
	); ok {
		r.discardPile = r.discardPile[:len(r.discardPile)-1]
		return claimWindowResult{terminal: true, outcome: r.winOutcome(seat, discarder, false, fan)}, nil
	}

	if seat, ok := arbitrateGong(r.hands, r.policies, discarder, discard,
		r.tableStateFor, func(int) float64 { return r.risk() }); ok {
		r.discardPile = r.discardPile[:len(r.discardPile)-1]
		hand := r.hands[seat]
		if !hand.UpgradeToQuad(discard, false) {
			return claimWindowResult{}, newInvariantError("gong-claim", "seat %d failed gong claim on %v", seat, discard)
		}
		r.current = seat
		t, drawOk := r.wall.Draw()
		if !drawOk {
			return claimWindowResult{terminal: true, outcome: r.drawOutOutcome()}, nil
		}
		hand.AddTile(t)
		return claimWindowResult{reenterPostDraw: true, replacement: t}, nil
	}

	if seat, kind, chiLowest, ok := arbitratePongChi(r.hands, r.policies, discarder, discard,
		r.tableStateFor, func(int) float64 { return r.risk() }); ok {
		r.discardPile = r.discardPile[:len(r.discardPile)-1]
		hand := r.hands[seat]
		switch kind {
		case policy.Pong:
			if !hand.FormTriplet(discard, false) {
				return claimWindowResult{}, newInvariantError("pong-claim", "seat %d failed pong claim on %v", seat, discard)
			}
		case policy.Chi:
			if !hand.FormSequenceClaim(discard.Suit, chiLowest, discard) {
				return claimWindowResult{}, newInvariantError("chi-claim", "seat %d failed chi claim on %v", seat, discard)
			}
		}
		r.current = seat
		return claimWindowResult{proceedToDiscard: true}, nil
	}

	return claimWindowResult{}, nil
}
