package mahjong

// MeldKind tags the three possible meld shapes. Melds are represented as a
// tagged union rather than a class hierarchy: a single Meld value carries
// its kind plus the minimum fields needed to reconstruct its tiles.
type MeldKind int

const (
	Triplet MeldKind = iota
	Sequence
	Quad
)

// Meld is a fixed group of 3 or 4 tiles belonging to a seat. Once formed it
// is immutable, except that a Triplet may be upgraded in place to a Quad.
type Meld struct {
	Kind Kind
	Tile Tile // for Triplet/Quad: the identical tile; for Sequence: the lowest rank tile
	// Concealed records whether the meld was formed without claiming another
	// seat's discard (a self-formed concealed triplet, or a concealed quad
	// upgraded from one). Exposed melds (pong/gong/chi claims) are false.
	Concealed bool
}

// Kind is an alias kept for readability at call sites (Meld.Kind reads as
// Meld{Kind: mahjong.Triplet}).
type Kind = MeldKind

// Tiles expands a meld back into its constituent tiles.
func (m Meld) Tiles() []Tile {
	switch m.Kind {
	case Triplet:
		return []Tile{m.Tile, m.Tile, m.Tile}
	case Quad:
		return []Tile{m.Tile, m.Tile, m.Tile, m.Tile}
	case Sequence:
		return []Tile{
			m.Tile,
			{Suit: m.Tile.Suit, Rank: m.Tile.Rank + 1},
			{Suit: m.Tile.Suit, Rank: m.Tile.Rank + 2},
		}
	default:
		return nil
	}
}

// Size returns the tile count of the meld (3 for Triplet/Sequence, 4 for
// Quad).
func (m Meld) Size() int {
	if m.Kind == Quad {
		return 4
	}
	return 3
}

// IsDragonTriplet reports whether m is a concealed-or-exposed triplet of a
// dragon tile, used by the little-dragons fan check.
func (m Meld) IsDragonTriplet() bool {
	return m.Kind == Triplet && m.Tile.Suit == Dragon
}
