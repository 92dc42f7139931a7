// Package policy implements the seat-decision capability the round engine
// queries during play: whether to declare a win, whether to claim a
// discard, and which tile to discard. Policies hold no round state of
// their own; every method receives a read-only snapshot.
package policy

import "mahjongmc/internal/mahjong"

// ClaimKind identifies the three claimable operations a discard can offer.
type ClaimKind int

const (
	Pong ClaimKind = iota
	Gong
	Chi
)

func (k ClaimKind) String() string {
	switch k {
	case Pong:
		return "pong"
	case Gong:
		return "gong"
	case Chi:
		return "chi"
	default:
		return "unknown"
	}
}

// TableState is the read-only snapshot a policy consults. It never exposes
// a way to mutate the round; the engine owns all state transitions.
type TableState struct {
	Seat int // the seat being asked to decide

	DiscardPile   []mahjong.Tile
	WallRemaining int
	Turn          int
	DealerSeat    int

	// SeatDiscards is each seat's own discard history, indexed by seat.
	SeatDiscards [4][]mahjong.Tile

	// VisibleCount reports, for a tile kind, how many copies have left the
	// wall (drawn or discarded). No policy in this package reads it; the
	// safety heuristic counts copies in DiscardPile instead.
	VisibleCount func(kind int) int
}

// Policy is the capability the round engine queries for a seat's
// decisions. The two concrete implementations share no base beyond this
// interface; their common heuristics live as free functions in
// heuristics.go.
type Policy interface {
	// ShouldDeclareWin is called whenever the seat has a legal winning
	// opportunity, self-draw or on another seat's discard.
	ShouldDeclareWin(fan int, risk float64, ctx *TableState) bool

	// ShouldClaim is called when a pong/gong/chi claim is legal.
	ShouldClaim(kind ClaimKind, risk float64, ctx *TableState) bool

	// ChooseDiscard is called when the seat must discard; it must return a
	// tile currently in hand.Closed.
	ChooseDiscard(hand *mahjong.Hand, ctx *TableState) mahjong.Tile
}
