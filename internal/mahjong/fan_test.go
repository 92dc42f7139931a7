package mahjong

import "testing"

// TestCalculateFanAllSimplesConcealedSelfDraw builds the hand 234m 345p
// 567s 666m + 88s. Concrete worked scenario: all-simples self-draw fan=3,
// score=8 (at base_points=1).
func TestCalculateFanAllSimplesConcealedSelfDraw(t *testing.T) {
	hand := NewHand()
	// three sequences plus a simple triplet and pair, all concealed and
	// entirely within ranks 2-8, scoring all-simples without tripping the
	// all-triplets or mixed-triple-sequence bonuses.
	tiles := []Tile{
		{Suit: Wan, Rank: 2}, {Suit: Wan, Rank: 3}, {Suit: Wan, Rank: 4},
		{Suit: Tong, Rank: 3}, {Suit: Tong, Rank: 4}, {Suit: Tong, Rank: 5},
		{Suit: Tiao, Rank: 5}, {Suit: Tiao, Rank: 6}, {Suit: Tiao, Rank: 7},
		{Suit: Wan, Rank: 6}, {Suit: Wan, Rank: 6}, {Suit: Wan, Rank: 6},
		{Suit: Tiao, Rank: 8}, {Suit: Tiao, Rank: 8},
	}
	for _, tl := range tiles {
		hand.AddTile(tl)
	}
	a := NewAnalyzer()
	deco, ok := a.IsWinning(hand.Count34(), 0)
	if !ok {
		t.Fatalf("expected hand to be winning")
	}

	ctx := &FanContext{
		Hand:        hand,
		Decomp:      deco,
		SelfDraw:    true,
		WinningTile: Tile{Suit: Tiao, Rank: 8},
	}
	fan := CalculateFan(ctx)
	if fan != 3 {
		t.Fatalf("expected fan=3 (self_draw+concealed+all_simples), got %d (%v)", fan, FanBreakdown(ctx))
	}
}

func TestCalculateFanMinimumClamp(t *testing.T) {
	hand := NewHand()
	// An exposed pong removes those three tiles from the closed multiset;
	// the analyzer is told one meld is already fixed elsewhere.
	hand.Melds = append(hand.Melds, Meld{Kind: Triplet, Tile: Tile{Suit: Wind, Rank: 1}, Concealed: false})
	tiles := []Tile{
		{Suit: Wan, Rank: 1}, {Suit: Wan, Rank: 2}, {Suit: Wan, Rank: 3},
		{Suit: Tiao, Rank: 1}, {Suit: Tiao, Rank: 2}, {Suit: Tiao, Rank: 3},
		{Suit: Tong, Rank: 2}, {Suit: Tong, Rank: 3}, {Suit: Tong, Rank: 4},
		{Suit: Dragon, Rank: 3}, {Suit: Dragon, Rank: 3},
	}
	for _, tl := range tiles {
		hand.AddTile(tl)
	}
	a := NewAnalyzer()
	deco, ok := a.IsWinning(hand.Count34(), len(hand.Melds))
	if !ok {
		t.Fatalf("expected hand to be winning")
	}
	ctx := &FanContext{Hand: hand, Decomp: deco, SelfDraw: false}
	if fan := CalculateFan(ctx); fan != 1 {
		t.Fatalf("expected floor of 1 fan for an otherwise unscored open hand, got %d", fan)
	}
}

func TestCalculateFanPureFlushConcealedSelfDraw(t *testing.T) {
	hand := NewHand()
	tiles := []Tile{
		{Suit: Wan, Rank: 1}, {Suit: Wan, Rank: 2}, {Suit: Wan, Rank: 3},
		{Suit: Wan, Rank: 4}, {Suit: Wan, Rank: 5}, {Suit: Wan, Rank: 6},
		{Suit: Wan, Rank: 7}, {Suit: Wan, Rank: 8}, {Suit: Wan, Rank: 9},
		{Suit: Wan, Rank: 1}, {Suit: Wan, Rank: 1}, {Suit: Wan, Rank: 1},
		{Suit: Wan, Rank: 5}, {Suit: Wan, Rank: 5},
	}
	for _, tl := range tiles {
		hand.AddTile(tl)
	}
	a := NewAnalyzer()
	deco, ok := a.IsWinning(hand.Count34(), 0)
	if !ok {
		t.Fatalf("expected hand to be winning")
	}
	ctx := &FanContext{Hand: hand, Decomp: deco, SelfDraw: true}
	fan := CalculateFan(ctx)
	if fan != 8 {
		t.Fatalf("expected fan=8 (self_draw+concealed+pure_flush(6)), got %d (%v)", fan, FanBreakdown(ctx))
	}
}
