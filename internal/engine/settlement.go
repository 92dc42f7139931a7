package engine

// Settlement holds the per-seat profit delta produced by one round's
// outcome. Converts (fan, win mode) into profit per §4.4: self-draw splits
// the score three ways against the winner; claim-win is a single discarder
// payment scaled by the deal-in penalty multiplier.
type Settlement struct {
	Delta     [4]float64
	DealIn    bool
	LoserSeat int // -1 unless DealIn
}

// Settle computes the settlement for a terminal outcome. A DrawOut round
// settles to all zeros: wall exhaustion changes no seat's profit.
func Settle(o Outcome, penaltyDealIn float64) Settlement {
	var s Settlement
	s.LoserSeat = -1
	if o.DrawOut {
		return s
	}

	score := float64(o.Score)
	if o.SelfDraw {
		s.Delta[o.WinnerSeat] = 3 * score
		for seat := 0; seat < 4; seat++ {
			if seat != o.WinnerSeat {
				s.Delta[seat] = -score
			}
		}
		return s
	}

	paid := penaltyDealIn * score
	s.Delta[o.WinnerSeat] = paid
	s.Delta[o.DiscarderSeat] = -paid
	s.DealIn = true
	s.LoserSeat = o.DiscarderSeat
	return s
}

// NextDealer applies the dealer-rotation rule: unchanged if the dealer
// won, otherwise advances one seat clockwise.
func NextDealer(o Outcome) int {
	if o.DealerWon {
		return o.DealerSeat
	}
	return (o.DealerSeat + 1) % 4
}
