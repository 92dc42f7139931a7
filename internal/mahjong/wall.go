package mahjong

import "math/rand"

// Wall is a shuffled finite sequence of the 136 physical tiles with a draw
// cursor. Once drawn, a tile never returns to the wall.
type Wall struct {
	tiles  []Tile
	cursor int
	seen34 [KindCount]uint8 // count of each kind already drawn
}

// NewWall shuffles a fresh 136-tile wall using rng, which the caller owns
// and seeds; the wall never creates its own random source.
func NewWall(rng *rand.Rand) *Wall {
	tiles := make([]Tile, 0, TileLimit)
	for kind := 0; kind < KindCount; kind++ {
		tile := TileFromKind(kind)
		for copies := 0; copies < 4; copies++ {
			tiles = append(tiles, tile)
		}
	}
	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	return &Wall{tiles: tiles}
}

// Draw advances the cursor and returns the next tile, or ok=false if the
// wall is exhausted.
func (w *Wall) Draw() (Tile, bool) {
	if w.cursor >= len(w.tiles) {
		return Tile{}, false
	}
	t := w.tiles[w.cursor]
	w.cursor++
	w.seen34[t.Kind()]++
	return t, true
}

// Remaining reports the count of tiles behind the cursor.
func (w *Wall) Remaining() int {
	return len(w.tiles) - w.cursor
}

// Drawn reports how many tiles have been drawn so far.
func (w *Wall) Drawn() int {
	return w.cursor
}

// VisibleCount returns how many copies of the given kind have left the
// wall via Draw. The round engine passes it to policies as
// TableState.VisibleCount.
func (w *Wall) VisibleCount(kind int) int {
	return int(w.seen34[kind])
}
