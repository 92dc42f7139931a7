package mahjong

import "testing"

func mustAdd(h *Hand, suit Suit, ranks ...int) {
	for _, r := range ranks {
		h.AddTile(Tile{Suit: suit, Rank: r})
	}
}

func TestHandCanChiAndOptions(t *testing.T) {
	h := NewHand()
	mustAdd(h, Wan, 2, 3)

	claimed := Tile{Suit: Wan, Rank: 4}
	if !h.CanChi(claimed) {
		t.Fatalf("expected CanChi true for 2,3 + claimed 4")
	}
	opts := h.ChiOptions(claimed)
	if len(opts) != 1 || opts[0] != 2 {
		t.Fatalf("expected single option with low rank 2, got %v", opts)
	}
}

func TestHandCanChiRejectsHonors(t *testing.T) {
	h := NewHand()
	mustAdd(h, Wind, 1)
	if h.CanChi(Tile{Suit: Wind, Rank: 1}) {
		t.Fatalf("honor tiles cannot form sequences")
	}
}

func TestFormTripletConsumesClosedTiles(t *testing.T) {
	h := NewHand()
	t1 := Tile{Suit: Tong, Rank: 5}
	mustAdd(h, Tong, 5, 5)

	if !h.CanPong(t1) {
		t.Fatalf("expected CanPong true")
	}
	if !h.FormTriplet(t1, false) {
		t.Fatalf("FormTriplet failed")
	}
	if h.TileCount() != 0 {
		t.Fatalf("expected closed tiles consumed, got %d left", h.TileCount())
	}
	if len(h.Melds) != 1 || h.Melds[0].Kind != Triplet {
		t.Fatalf("expected one triplet meld, got %+v", h.Melds)
	}
}

func TestUpgradeToQuadSelfDraw(t *testing.T) {
	h := NewHand()
	tile := Tile{Suit: Dragon, Rank: 2}
	// FormTriplet consumes two closed copies (the third is the claimed
	// tile), leaving the last copy as the drawn fourth.
	mustAdd(h, Dragon, 2, 2, 2)

	h.FormTriplet(tile, true)
	if !h.CanGongSelf(tile) {
		t.Fatalf("expected CanGongSelf true with fourth copy in hand")
	}
	if !h.UpgradeToQuad(tile, true) {
		t.Fatalf("UpgradeToQuad failed")
	}
	if h.QuadCount() != 1 {
		t.Fatalf("expected one quad meld")
	}
	if h.TileCount() != 0 {
		t.Fatalf("expected the consumed closed tile removed, got %d left", h.TileCount())
	}
}

func TestRemoveTileMissing(t *testing.T) {
	h := NewHand()
	if h.RemoveTile(Tile{Suit: Wan, Rank: 1}) {
		t.Fatalf("expected RemoveTile false on empty hand")
	}
}
