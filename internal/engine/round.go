// Package engine implements the four-seat turn-and-claim state machine
// (the round engine) and its settlement arithmetic. It is the orchestrator
// named C7 in the design: it pulls tiles from the wall, consults the hand
// analyzer, queries policies for decisions, and produces a structured
// outcome.
package engine

import (
	"math/rand"

	"mahjongmc/internal/mahjong"
	"mahjongmc/internal/policy"
)

// State names the round engine's state machine positions.
type State int

const (
	StateDeal State = iota
	StateDraw
	StatePostDraw
	StateDiscard
	StateClaimWindow
	StateWin
	StateDrawOut
)

// Config bundles the numeric knobs the engine needs per round; all of them
// come from the configuration document.
type Config struct {
	BasePoints    int
	FanMin        int
	RiskFloor     int
	PenaltyDealIn float64
}

// Outcome is the structured result of one round, consumed by the trial
// driver to update seat statistics and settle profits.
type Outcome struct {
	DrawOut        bool
	SelfDraw       bool
	WinnerSeat     int // -1 if DrawOut
	DiscarderSeat  int // -1 if SelfDraw or DrawOut
	Fan            int
	Score          int
	DealerSeat     int
	DealerWon      bool
	MissedWinSeats []int
}

// Round is the round-scoped state: wall, discard pile, and the four seats'
// hands. It owns no trial-level state (profit totals, seat policies'
// identity across rounds); the trial driver rebuilds a Round for every
// round it runs.
type Round struct {
	cfg      Config
	wall     *mahjong.Wall
	analyzer *mahjong.Analyzer
	policies [4]policy.Policy
	hands    [4]*mahjong.Hand

	discardPile  []mahjong.Tile
	seatDiscards [4][]mahjong.Tile
	current      int
	dealer       int
	turn         int
	missedWins   map[int]bool
}

// NewRound deals a fresh round: 13 tiles to each seat, one extra to the
// dealer, against a wall the caller has already shuffled.
func NewRound(wall *mahjong.Wall, analyzer *mahjong.Analyzer, policies [4]policy.Policy, dealer int, cfg Config) (*Round, error) {
	r := &Round{
		cfg:        cfg,
		wall:       wall,
		analyzer:   analyzer,
		policies:   policies,
		dealer:     dealer,
		current:    dealer,
		missedWins: make(map[int]bool),
	}
	for s := 0; s < 4; s++ {
		r.hands[s] = mahjong.NewHand()
	}
	for round := 0; round < 13; round++ {
		for s := 0; s < 4; s++ {
			t, ok := wall.Draw()
			if !ok {
				return nil, newInvariantError("H1", "wall exhausted during deal")
			}
			r.hands[s].AddTile(t)
		}
	}
	t, ok := wall.Draw()
	if !ok {
		return nil, newInvariantError("H1", "wall exhausted dealing dealer's extra tile")
	}
	r.hands[dealer].AddTile(t)
	return r, nil
}

// safetyBound is the defensive upper bound on loop iterations. A drawn tile
// takes up to four iterations (draw, post-draw, discard, claim window), so
// this allows more turns than the wall holds tiles; normal termination
// always occurs before it.
const safetyBound = mahjong.TileLimit * 4

// Run drives the state machine to a terminal state and returns the
// outcome. It never panics on a game-logic failure: invariant violations
// are returned as an error so the trial driver can abandon the round as a
// draw, per the error-handling design.
func (r *Round) Run() (Outcome, error) {
	// The dealer already holds 14 tiles from the deal, so the first turn
	// skips DRAW and starts at POST_DRAW with the dealer's extra tile.
	state := StatePostDraw
	dealerHand := r.hands[r.current]
	drawnTile := dealerHand.Closed[len(dealerHand.Closed)-1]

	for iterations := 0; iterations < safetyBound; iterations++ {
		switch state {
		case StateDraw:
			t, ok := r.wall.Draw()
			if !ok {
				return r.drawOutOutcome(), nil
			}
			r.hands[r.current].AddTile(t)
			drawnTile = t
			state = StatePostDraw

		case StatePostDraw:
			next, outcome, terminal, err := r.postDraw(drawnTile)
			if err != nil {
				return Outcome{}, err
			}
			if terminal {
				return outcome, nil
			}
			if next != nil {
				drawnTile = *next
				continue // chained quad upgrade: re-enter POST_DRAW
			}
			state = StateDiscard

		case StateDiscard:
			hand := r.hands[r.current]
			ctx := r.tableStateFor(r.current)
			discard := r.policies[r.current].ChooseDiscard(hand, ctx)
			if !hand.RemoveTile(discard) {
				return Outcome{}, newInvariantError("discard", "policy for seat %d returned tile not in closed hand", r.current)
			}
			r.discardPile = append(r.discardPile, discard)
			r.seatDiscards[r.current] = append(r.seatDiscards[r.current], discard)
			drawnTile = discard
			state = StateClaimWindow

		case StateClaimWindow:
			result, err := r.claimWindow(drawnTile)
			if err != nil {
				return Outcome{}, err
			}
			switch {
			case result.terminal:
				return result.outcome, nil
			case result.reenterPostDraw:
				drawnTile = result.replacement
				state = StatePostDraw
			case result.proceedToDiscard:
				state = StateDiscard
			default:
				r.current = (r.current + 1) % 4
				r.turn++
				state = StateDraw
			}
		}
	}
	return r.drawOutOutcome(), nil
}

// postDraw executes the fixed POST_DRAW sequence of §4.4: self-draw win
// check, self-draw quad upgrade (looped, not recursive, to absorb
// arbitrarily long chains), then at most one concealed-triplet formation.
// It returns either a terminal outcome, or a replacement tile that must
// re-enter POST_DRAW (quad-upgrade chain), or neither (proceed to
// DISCARD).
func (r *Round) postDraw(drawn mahjong.Tile) (replacement *mahjong.Tile, outcome Outcome, terminal bool, err error) {
	hand := r.hands[r.current]

	if _, fan, ok := r.checkSelfDrawWin(r.current); ok {
		risk := r.risk()
		ctx := r.tableStateFor(r.current)
		if r.policies[r.current].ShouldDeclareWin(fan, risk, ctx) {
			return nil, r.winOutcome(r.current, -1, true, fan), true, nil
		}
		r.missedWins[r.current] = true
	}

	if hand.CanGongSelf(drawn) {
		if !hand.UpgradeToQuad(drawn, true) {
			return nil, Outcome{}, false, newInvariantError("quad-upgrade", "seat %d failed self-draw quad upgrade on %v", r.current, drawn)
		}
		t, ok := r.wall.Draw()
		if !ok {
			return nil, r.drawOutOutcome(), true, nil
		}
		hand.AddTile(t)
		return &t, Outcome{}, false, nil
	}

	if kind, has := r.findConcealedTripletKind(hand); has {
		hand.RemoveTile(kind)
		hand.RemoveTile(kind)
		hand.RemoveTile(kind)
		hand.Melds = append(hand.Melds, mahjong.Meld{Kind: mahjong.Triplet, Tile: kind, Concealed: true})
	}

	return nil, Outcome{}, false, nil
}

// findConcealedTripletKind finds the lowest-ordered tile with three
// closed copies, if any. The engine forms at most one concealed triplet
// per POST_DRAW, chosen deterministically.
func (r *Round) findConcealedTripletKind(hand *mahjong.Hand) (mahjong.Tile, bool) {
	var counts [mahjong.KindCount]uint8
	for _, t := range hand.Closed {
		counts[t.Kind()]++
	}
	for k := 0; k < mahjong.KindCount; k++ {
		if counts[k] >= 3 {
			return mahjong.TileFromKind(k), true
		}
	}
	return mahjong.Tile{}, false
}

// checkSelfDrawWin reports whether the seat's current hand (after the
// just-drawn tile has already been added to its closed tiles) is winning.
// The fan threshold is not this function's concern: CalculateFan floors at
// 1, and whether that fan is enough to declare is entirely up to the
// seat's own policy.
func (r *Round) checkSelfDrawWin(seat int) (mahjong.Decomposition, int, bool) {
	hand := r.hands[seat]
	counts := hand.Count34()
	decomp, winning := r.analyzer.IsWinning(counts, len(hand.Melds))
	if !winning {
		return mahjong.Decomposition{}, 0, false
	}
	fan := mahjong.CalculateFan(&mahjong.FanContext{
		Hand:     hand,
		Decomp:   decomp,
		SelfDraw: true,
		Dealer:   seat == r.dealer,
	})
	return decomp, fan, true
}

// risk implements the engine-computed scalar of §4.3:
// |discard_pile| / max(risk_floor, wall_remaining + |discard_pile|).
func (r *Round) risk() float64 {
	denom := r.wall.Remaining() + len(r.discardPile)
	if denom < r.cfg.RiskFloor {
		denom = r.cfg.RiskFloor
	}
	if denom == 0 {
		return 0
	}
	return float64(len(r.discardPile)) / float64(denom)
}

func (r *Round) tableStateFor(seat int) *policy.TableState {
	return &policy.TableState{
		Seat:          seat,
		DiscardPile:   r.discardPile,
		WallRemaining: r.wall.Remaining(),
		Turn:          r.turn,
		DealerSeat:    r.dealer,
		SeatDiscards:  r.seatDiscards,
		VisibleCount:  r.wall.VisibleCount,
	}
}

func (r *Round) drawOutOutcome() Outcome {
	return Outcome{
		DrawOut:       true,
		WinnerSeat:    -1,
		DiscarderSeat: -1,
		DealerSeat:    r.dealer,
	}
}

func (r *Round) winOutcome(winner, discarder int, selfDraw bool, fan int) Outcome {
	score := r.cfg.BasePoints
	for i := 0; i < fan; i++ {
		score *= 2
	}
	missed := make([]int, 0, len(r.missedWins))
	for s := range r.missedWins {
		missed = append(missed, s)
	}
	return Outcome{
		SelfDraw:       selfDraw,
		WinnerSeat:     winner,
		DiscarderSeat:  discarder,
		Fan:            fan,
		Score:          score,
		DealerSeat:     r.dealer,
		DealerWon:      winner == r.dealer,
		MissedWinSeats: missed,
	}
}

// NewSeededWall is a small convenience that builds a wall from a seed
// rather than from a caller-supplied *rand.Rand. The trial driver does not
// use it; it shuffles each wall with the trial's shared *rand.Rand.
func NewSeededWall(seed int64) *mahjong.Wall {
	return mahjong.NewWall(rand.New(rand.NewSource(seed)))
}
