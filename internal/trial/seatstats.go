// Package trial drives many independent rounds of the engine against a
// fixed table of policies and aggregates per-seat outcomes, mirroring the
// retrieved pack's "run N independent simulated machines" driver shape.
package trial

import "gonum.org/v1/gonum/stat"

// SeatStats accumulates one seat's outcomes across a trial's rounds:
// profit per round (for mean/stddev via gonum/stat), win/deal-in/missed-win
// counts, and the fan of every round that seat won. DealerRounds/DealerWins
// double-count the subset of rounds where this seat held the dealer seat,
// so a dealer/non-dealer split never needs to be reconstructed after the
// fact.
type SeatStats struct {
	Profits      []float64
	Rounds       int
	Wins         int
	DealIns      int
	MissedWins   int
	WinFans      []int
	Utility      float64
	DealerRounds int
	DealerWins   int
	DealerProfit []float64
}

func (s *SeatStats) MeanProfit() float64 {
	if len(s.Profits) == 0 {
		return 0
	}
	return stat.Mean(s.Profits, nil)
}

func (s *SeatStats) StdProfit() float64 {
	if len(s.Profits) < 2 {
		return 0
	}
	return stat.StdDev(s.Profits, nil)
}

func (s *SeatStats) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

func (s *SeatStats) DealInRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.DealIns) / float64(s.Rounds)
}

func (s *SeatStats) MissedWinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.MissedWins) / float64(s.Rounds)
}

func (s *SeatStats) MeanFan() float64 {
	if len(s.WinFans) == 0 {
		return 0
	}
	sum := 0
	for _, f := range s.WinFans {
		sum += f
	}
	return float64(sum) / float64(len(s.WinFans))
}

func (s *SeatStats) DealerWinRate() float64 {
	if s.DealerRounds == 0 {
		return 0
	}
	return float64(s.DealerWins) / float64(s.DealerRounds)
}

func (s *SeatStats) DealerMeanProfit() float64 {
	if len(s.DealerProfit) == 0 {
		return 0
	}
	return stat.Mean(s.DealerProfit, nil)
}

func (s *SeatStats) record(profit float64, won, dealtIn, missedWin, isDealer bool, fan int, utility float64) {
	s.Profits = append(s.Profits, profit)
	s.Rounds++
	s.Utility += utility
	if won {
		s.Wins++
		s.WinFans = append(s.WinFans, fan)
	}
	if dealtIn {
		s.DealIns++
	}
	if missedWin {
		s.MissedWins++
	}
	if isDealer {
		s.DealerRounds++
		s.DealerProfit = append(s.DealerProfit, profit)
		if won {
			s.DealerWins++
		}
	}
}

func merge(dst *SeatStats, src *SeatStats) {
	dst.Profits = append(dst.Profits, src.Profits...)
	dst.Rounds += src.Rounds
	dst.Wins += src.Wins
	dst.DealIns += src.DealIns
	dst.MissedWins += src.MissedWins
	dst.WinFans = append(dst.WinFans, src.WinFans...)
	dst.Utility += src.Utility
	dst.DealerRounds += src.DealerRounds
	dst.DealerWins += src.DealerWins
	dst.DealerProfit = append(dst.DealerProfit, src.DealerProfit...)
}
