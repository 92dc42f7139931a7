package engine

import (
	"mahjongmc/internal/mahjong"
	"mahjongmc/internal/policy"
)

// clockwiseFrom returns the three seats eligible to react to a discard
// from `discarder`, in the fixed arbitration order next, across, previous.
func clockwiseFrom(discarder int) [3]int {
	return [3]int{(discarder + 1) % 4, (discarder + 2) % 4, (discarder + 3) % 4}
}

// arbitrateWin scans the reacting seats for a legal win claim, in
// clockwise order, and returns the first seat whose policy accepts. The
// fan threshold is not arbitrated here: CalculateFan floors at 1, and
// whether that fan clears a seat's bar to declare is entirely up to its
// own policy. ok is false if no seat can or will claim the win.
func arbitrateWin(hands [4]*mahjong.Hand, policies [4]policy.Policy, analyzer *mahjong.Analyzer, discarder int, tile mahjong.Tile, fanCtx func(seat int, decomp mahjong.Decomposition) *mahjong.FanContext, ctxFor func(seat int) *policy.TableState, riskOf func(seat int) float64) (seat int, fan int, ok bool) {
	for _, s := range clockwiseFrom(discarder) {
		hand := hands[s]
		counts := hand.Count34()
		counts[tile.Kind()]++
		decomp, winning := analyzer.IsWinning(counts, len(hand.Melds))
		if !winning {
			continue
		}
		fan := mahjong.CalculateFan(fanCtx(s, decomp))
		if policies[s].ShouldDeclareWin(fan, riskOf(s), ctxFor(s)) {
			return s, fan, true
		}
	}
	return -1, 0, false
}

// arbitrateGong scans for a seat holding a matching triplet that accepts
// the gong claim.
func arbitrateGong(hands [4]*mahjong.Hand, policies [4]policy.Policy, discarder int, tile mahjong.Tile, ctxFor func(seat int) *policy.TableState, riskOf func(seat int) float64) (seat int, ok bool) {
	for _, s := range clockwiseFrom(discarder) {
		if !hands[s].CanGongClaim(tile) {
			continue
		}
		if policies[s].ShouldClaim(policy.Gong, riskOf(s), ctxFor(s)) {
			return s, true
		}
	}
	return -1, false
}

// arbitratePongChi scans the pong/chi priority class in clockwise order.
// A seat that can both pong and chi (only the immediate next seat can chi
// at all) is offered pong first, matching the conventional precedence
// within the combined class.
func arbitratePongChi(hands [4]*mahjong.Hand, policies [4]policy.Policy, discarder int, tile mahjong.Tile, ctxFor func(seat int) *policy.TableState, riskOf func(seat int) float64) (seat int, kind policy.ClaimKind, chiLowest int, ok bool) {
	next := (discarder + 1) % 4
	for _, s := range clockwiseFrom(discarder) {
		if hands[s].CanPong(tile) && policies[s].ShouldClaim(policy.Pong, riskOf(s), ctxFor(s)) {
			return s, policy.Pong, 0, true
		}
		if s == next {
			if lows := hands[s].ChiOptions(tile); len(lows) > 0 {
				if policies[s].ShouldClaim(policy.Chi, riskOf(s), ctxFor(s)) {
					return s, policy.Chi, lows[0], true
				}
			}
		}
	}
	return -1, 0, 0, false
}
