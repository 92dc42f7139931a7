package policy

import (
	"testing"

	"mahjongmc/internal/mahjong"
)

func TestMeldPotentialFavorsPairsOverIsolated(t *testing.T) {
	w := DefaultWeights()
	paired := mahjong.Tile{Suit: mahjong.Wan, Rank: 5}
	lone := mahjong.Tile{Suit: mahjong.Tiao, Rank: 9}
	tiles := []mahjong.Tile{paired, paired, lone}

	if meldPotential(paired, tiles, w) <= meldPotential(lone, tiles, w) {
		t.Fatalf("expected a paired tile to score higher meld potential than an isolated one")
	}
}

func TestIsIsolated(t *testing.T) {
	tiles := []mahjong.Tile{
		{Suit: mahjong.Wan, Rank: 5},
		{Suit: mahjong.Wan, Rank: 6},
	}
	if isIsolated(tiles[0], tiles) {
		t.Fatalf("adjacent tiles should not be isolated")
	}
	honor := mahjong.Tile{Suit: mahjong.Dragon, Rank: 1}
	if isIsolated(honor, tiles) {
		t.Fatalf("honor tiles are never counted isolated")
	}
	lone := mahjong.Tile{Suit: mahjong.Tong, Rank: 1}
	if !isIsolated(lone, tiles) {
		t.Fatalf("expected a tile with no same-suit neighbor within two ranks to be isolated")
	}
}

func TestSafetyScoreCountsDiscardPile(t *testing.T) {
	t1 := mahjong.Tile{Suit: mahjong.Wan, Rank: 3}
	pile := []mahjong.Tile{t1, t1, {Suit: mahjong.Wan, Rank: 4}}
	if got := safetyScore(t1, pile); got != 2 {
		t.Fatalf("expected safety score 2, got %v", got)
	}
}

func TestHandCompletionScoreCountsCompletedMelds(t *testing.T) {
	w := DefaultWeights()
	hand := mahjong.NewHand()
	hand.Melds = append(hand.Melds, mahjong.Meld{Kind: mahjong.Triplet, Tile: mahjong.Tile{Suit: mahjong.Wan, Rank: 1}})
	empty := mahjong.NewHand()

	if handCompletionScore(hand, w) <= handCompletionScore(empty, w) {
		t.Fatalf("expected a hand with a completed meld to score higher completion")
	}
}
