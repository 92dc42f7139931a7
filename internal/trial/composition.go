package trial

import (
	"math/rand"

	"mahjongmc/internal/engine"
	"mahjongmc/internal/policy"
)

// CompositionResult is one θ-seating's aggregated statistics: θ defensive
// seats (TempoDefender) and 4-θ value-seeking seats (ValueChaser) at the
// same table, pooled across every trial run at that composition. Dealer
// and NonDealer pool every seat's rounds split by who held the dealer
// seat, independent of playing role.
type CompositionResult struct {
	Theta      int
	Defensive  SeatStats
	Aggressive SeatStats
	Dealer     SeatStats
	NonDealer  SeatStats
}

// RunCompositionSweep runs the θ∈{0,1,2,3,4} table-composition experiment:
// for each θ, trialsPerTheta trials of roundsPerTrial rounds are played at
// a table of θ TempoDefender seats followed by 4-θ ValueChaser seats, and
// every seat's outcomes are pooled by role (defensive/aggressive) and by
// dealer/non-dealer, independent of which physical seat produced them.
func RunCompositionSweep(rng *rand.Rand, cfg engine.Config, fanThreshold int, weights policy.Weights, trialsPerTheta, roundsPerTrial int, strict bool) map[int]CompositionResult {
	results := make(map[int]CompositionResult, 5)

	for theta := 0; theta <= 4; theta++ {
		var cr CompositionResult
		cr.Theta = theta

		var table [4]policy.Policy
		for seat := 0; seat < 4; seat++ {
			if seat < theta {
				defender := policy.NewTempoDefender(cfg.FanMin)
				defender.Weights = weights
				table[seat] = defender
			} else {
				chaser := policy.NewValueChaser(cfg.FanMin, fanThreshold)
				chaser.Weights = weights
				table[seat] = chaser
			}
		}

		for t := 0; t < trialsPerTheta; t++ {
			res := Run(rng, table, cfg, roundsPerTrial, strict)
			for seat := 0; seat < 4; seat++ {
				seatStats := res.Seats[seat]
				if seat < theta {
					merge(&cr.Defensive, &seatStats)
				} else {
					merge(&cr.Aggressive, &seatStats)
				}

				dealerOnly := SeatStats{
					Profits:      seatStats.DealerProfit,
					Rounds:       seatStats.DealerRounds,
					Wins:         seatStats.DealerWins,
					DealerRounds: seatStats.DealerRounds,
					DealerWins:   seatStats.DealerWins,
					DealerProfit: seatStats.DealerProfit,
				}
				merge(&cr.Dealer, &dealerOnly)

				nonDealerSeat := res.NonDealer[seat]
				merge(&cr.NonDealer, &nonDealerSeat)
			}
		}

		results[theta] = cr
	}

	return results
}
