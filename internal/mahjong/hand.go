package mahjong

// Hand is a seat's mutable tile multiset plus its list of fixed melds. The
// pair that completes a winning shape is never stored as a meld; it is
// identified at win-check time from the closed tiles.
type Hand struct {
	Closed []Tile
	Melds  []Meld
}

// NewHand returns an empty hand with room for a dealt 14-tile start.
func NewHand() *Hand {
	return &Hand{
		Closed: make([]Tile, 0, 14),
		Melds:  make([]Meld, 0, 4),
	}
}

// AddTile appends a drawn or dealt tile to the closed multiset.
func (h *Hand) AddTile(t Tile) {
	h.Closed = append(h.Closed, t)
}

// RemoveTile removes one copy of t from the closed multiset. Returns false
// (an invariant violation at the call site) if no such tile is held.
func (h *Hand) RemoveTile(t Tile) bool {
	for i := range h.Closed {
		if h.Closed[i] == t {
			h.Closed = append(h.Closed[:i], h.Closed[i+1:]...)
			return true
		}
	}
	return false
}

// CountKind returns how many copies of the given tile are in the closed
// multiset.
func (h *Hand) CountKind(t Tile) int {
	n := 0
	for _, c := range h.Closed {
		if c == t {
			n++
		}
	}
	return n
}

// Count34 returns the closed multiset as a dense kind-count array, the
// representation the analyzer decomposes.
func (h *Hand) Count34() [KindCount]uint8 {
	var counts [KindCount]uint8
	for _, t := range h.Closed {
		counts[t.Kind()]++
	}
	return counts
}

// TileCount is the number of closed tiles held.
func (h *Hand) TileCount() int {
	return len(h.Closed)
}

// IsConcealed reports whether every meld in the hand is concealed (no
// exposed pong/gong/chi), the "fully concealed" condition of the fan
// catalog.
func (h *Hand) IsConcealed() bool {
	for _, m := range h.Melds {
		if !m.Concealed {
			return false
		}
	}
	return true
}

// meldTripletIndex finds an existing exposed-or-concealed triplet meld of
// tile t, or -1.
func (h *Hand) meldTripletIndex(t Tile) int {
	for i, m := range h.Melds {
		if m.Kind == Triplet && m.Tile == t {
			return i
		}
	}
	return -1
}

// CanPong reports whether the hand can form an exposed triplet of t by
// claiming a discard: at least two matching closed tiles.
func (h *Hand) CanPong(t Tile) bool {
	return h.CountKind(t) >= 2
}

// CanGongClaim reports whether the hand can upgrade an existing triplet of
// t to a quad by claiming a discard.
func (h *Hand) CanGongClaim(t Tile) bool {
	return h.meldTripletIndex(t) >= 0
}

// CanGongSelf reports whether a just-drawn tile t is the fourth copy of an
// existing triplet meld, triggering a self-draw quad upgrade.
func (h *Hand) CanGongSelf(t Tile) bool {
	return h.CountKind(t) >= 1 && h.meldTripletIndex(t) >= 0
}

// CanConcealedTriplet reports whether the closed multiset holds three
// identical copies of t, letting the engine form a concealed triplet
// during POST_DRAW.
func (h *Hand) CanConcealedTriplet(t Tile) bool {
	return h.CountKind(t) >= 3
}

// CanChi reports whether t (a numeric-suit tile) can be claimed into a
// sequence using two tiles already in the closed multiset: one of the
// three consecutive-pair patterns {t-2,t-1}, {t-1,t+1}, {t+1,t+2}.
func (h *Hand) CanChi(t Tile) bool {
	if !t.Suit.IsNumeric() {
		return false
	}
	has := func(rank int) bool {
		if rank < 1 || rank > 9 {
			return false
		}
		return h.CountKind(Tile{Suit: t.Suit, Rank: rank}) > 0
	}
	return (has(t.Rank-2) && has(t.Rank-1)) ||
		(has(t.Rank-1) && has(t.Rank+1)) ||
		(has(t.Rank+1) && has(t.Rank+2))
}

// ChiOptions returns, for a claimable tile t, the lowest rank of each
// consecutive-run pattern the closed multiset can complete with t. There
// are at most three: t as the high tile, t in the middle, t as the low
// tile of the run.
func (h *Hand) ChiOptions(t Tile) []int {
	if !t.Suit.IsNumeric() {
		return nil
	}
	has := func(rank int) bool {
		if rank < 1 || rank > 9 {
			return false
		}
		return h.CountKind(Tile{Suit: t.Suit, Rank: rank}) > 0
	}
	var lows []int
	if has(t.Rank-2) && has(t.Rank-1) {
		lows = append(lows, t.Rank-2)
	}
	if has(t.Rank-1) && has(t.Rank+1) {
		lows = append(lows, t.Rank-1)
	}
	if has(t.Rank+1) && has(t.Rank+2) {
		lows = append(lows, t.Rank)
	}
	return lows
}

// FormTriplet removes two closed copies of t and appends a triplet meld,
// as part of claiming a pong; the meld is concealed only if concealed is
// set.
func (h *Hand) FormTriplet(t Tile, concealed bool) bool {
	if h.CountKind(t) < 2 {
		return false
	}
	h.RemoveTile(t)
	h.RemoveTile(t)
	h.Melds = append(h.Melds, Meld{Kind: Triplet, Tile: t, Concealed: concealed})
	return true
}

// UpgradeToQuad replaces an existing triplet meld of t with a quad,
// consuming one closed copy (self-draw path) or none (claim path, the
// caller having already validated the claimed tile separately). A quad
// formed on the claim path is exposed.
func (h *Hand) UpgradeToQuad(t Tile, consumeClosed bool) bool {
	idx := h.meldTripletIndex(t)
	if idx < 0 {
		return false
	}
	if consumeClosed {
		if !h.RemoveTile(t) {
			return false
		}
	}
	concealed := h.Melds[idx].Concealed && consumeClosed
	h.Melds[idx] = Meld{Kind: Quad, Tile: t, Concealed: concealed}
	return true
}

// FormSequenceClaim forms an exposed sequence meld whose lowest tile has
// the given rank, claiming the discard tile "claimed" and consuming the
// two other ranks from the closed multiset. The caller (the claim-window
// arbiter) has already verified the pattern via ChiOptions.
func (h *Hand) FormSequenceClaim(suit Suit, lowestRank int, claimed Tile) bool {
	lowest := Tile{Suit: suit, Rank: lowestRank}
	ranks := []int{lowestRank, lowestRank + 1, lowestRank + 2}
	for _, r := range ranks {
		t := Tile{Suit: suit, Rank: r}
		if t == claimed {
			continue
		}
		if !h.RemoveTile(t) {
			return false
		}
	}
	h.Melds = append(h.Melds, Meld{Kind: Sequence, Tile: lowest, Concealed: false})
	return true
}

// QuadCount returns how many melds in the hand are quads, counting both
// exposed and self-drawn/upgraded ones.
func (h *Hand) QuadCount() int {
	n := 0
	for _, m := range h.Melds {
		if m.Kind == Quad {
			n++
		}
	}
	return n
}
