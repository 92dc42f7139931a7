package trial

import (
	"math/rand"

	"mahjongmc/internal/engine"
	"mahjongmc/internal/logging"
	"mahjongmc/internal/mahjong"
	"mahjongmc/internal/policy"
)

// Result is one trial's outcome: one SeatStats per seat plus its
// complementary non-dealer-rounds-only SeatStats, and the count of rounds
// that ended without a winner.
type Result struct {
	Seats     [4]SeatStats
	NonDealer [4]SeatStats
	DrawOut   int
	Rounds    int
}

// Run plays roundCount independent rounds against a fixed table of four
// policies, rotating the dealer by engine.NextDealer between rounds and
// reusing one *mahjong.Analyzer across the whole trial so its decomposition
// cache stays warm. An invariant violation while a round is played
// abandons only that round, which is logged at Warn and recorded as a
// draw-out, rather than the trial, matching the fail-soft design, unless
// strict is set, in which case the first invariant violation is fatal. A
// failed deal is logged and skipped without being recorded.
func Run(rng *rand.Rand, policies [4]policy.Policy, cfg engine.Config, roundCount int, strict bool) Result {
	analyzer := mahjong.NewAnalyzer()
	var res Result
	dealer := 0

	for i := 0; i < roundCount; i++ {
		wall := mahjong.NewWall(rng)
		round, err := engine.NewRound(wall, analyzer, policies, dealer, cfg)
		if err != nil {
			if strict {
				logging.Fatal("round %d: deal failed: %v", i, err)
			}
			logging.Warn("round %d: deal failed: %v", i, err)
			continue
		}

		outcome, err := round.Run()
		if err != nil {
			if strict {
				logging.Fatal("round %d: abandoned: %v", i, err)
			}
			logging.Warn("round %d: abandoned as a draw-out: %v", i, err)
			outcome = engine.Outcome{DrawOut: true, WinnerSeat: -1, DiscarderSeat: -1, DealerSeat: dealer}
		}

		settlement := engine.Settle(outcome, cfg.PenaltyDealIn)
		res.Rounds++
		if outcome.DrawOut {
			res.DrawOut++
		}

		missed := make(map[int]bool, len(outcome.MissedWinSeats))
		for _, s := range outcome.MissedWinSeats {
			missed[s] = true
		}

		for seat := 0; seat < 4; seat++ {
			won := !outcome.DrawOut && outcome.WinnerSeat == seat
			dealtIn := !outcome.DrawOut && !outcome.SelfDraw && outcome.DiscarderSeat == seat
			isDealer := seat == outcome.DealerSeat
			fan := 0
			if won {
				fan = outcome.Fan
			}
			profit := settlement.Delta[seat]
			u := computeUtility(profit, missed[seat], dealtIn, fan)
			res.Seats[seat].record(profit, won, dealtIn, missed[seat], isDealer, fan, u)
			if !isDealer {
				res.NonDealer[seat].record(profit, won, dealtIn, missed[seat], false, fan, u)
			}
		}

		dealer = engine.NextDealer(outcome)
	}

	return res
}
