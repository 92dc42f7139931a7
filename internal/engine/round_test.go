package engine

import (
	"math/rand"
	"testing"

	"mahjongmc/internal/mahjong"
	"mahjongmc/internal/policy"
)

func fourNeutralPolicies() [4]policy.Policy {
	return [4]policy.Policy{
		policy.NewBucketedRiskPolicy(),
		policy.NewBucketedRiskPolicy(),
		policy.NewBucketedRiskPolicy(),
		policy.NewBucketedRiskPolicy(),
	}
}

func defaultTestConfig() Config {
	return Config{BasePoints: 2, FanMin: 1, RiskFloor: 100, PenaltyDealIn: 1.0}
}

func TestNewRoundDealsThirteenPlusOne(t *testing.T) {
	wall := mahjong.NewWall(rand.New(rand.NewSource(1)))
	analyzer := mahjong.NewAnalyzer()
	r, err := NewRound(wall, analyzer, fourNeutralPolicies(), 0, defaultTestConfig())
	if err != nil {
		t.Fatalf("unexpected deal error: %v", err)
	}
	for s := 0; s < 4; s++ {
		want := 13
		if s == 0 {
			want = 14
		}
		if got := r.hands[s].TileCount(); got != want {
			t.Fatalf("seat %d: expected %d tiles, got %d", s, want, got)
		}
	}
	if wall.Remaining() != mahjong.TileLimit-53 {
		t.Fatalf("expected 53 tiles drawn for the deal, wall has %d remaining", wall.Remaining())
	}
}

func TestNewRoundFailsOnExhaustedWall(t *testing.T) {
	wall := mahjong.NewWall(rand.New(rand.NewSource(1)))
	// Drain the wall so the deal cannot complete.
	for {
		if _, ok := wall.Draw(); !ok {
			break
		}
	}
	analyzer := mahjong.NewAnalyzer()
	_, err := NewRound(wall, analyzer, fourNeutralPolicies(), 0, defaultTestConfig())
	if err == nil {
		t.Fatalf("expected a deal error on an exhausted wall")
	}
}

// TestRoundRunsToCompletion plays many independently-seeded rounds against
// four neutral policies end to end, pinning that Run always terminates in
// one of its two terminal states without an invariant violation.
func TestRoundRunsToCompletion(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		wall := mahjong.NewWall(rand.New(rand.NewSource(seed)))
		analyzer := mahjong.NewAnalyzer()
		r, err := NewRound(wall, analyzer, fourNeutralPolicies(), int(seed%4), defaultTestConfig())
		if err != nil {
			t.Fatalf("seed %d: deal failed: %v", seed, err)
		}
		outcome, err := r.Run()
		if err != nil {
			t.Fatalf("seed %d: round abandoned: %v", seed, err)
		}
		if !outcome.DrawOut && outcome.WinnerSeat < 0 {
			t.Fatalf("seed %d: non-draw-out outcome missing a winner seat: %+v", seed, outcome)
		}
		if !outcome.DrawOut && outcome.Fan < defaultTestConfig().FanMin {
			t.Fatalf("seed %d: win recorded below fan_min: %+v", seed, outcome)
		}
	}
}

// TestPostDrawSelfDrawUsesPolicyThresholdNotEngineFanMin pins that a
// self-draw win is arbitrated entirely by the drawing seat's own policy
// threshold: a TempoDefender with fan_min=1 still declares a fan=1 win
// even though the engine's own cfg.FanMin is set much higher.
func TestPostDrawSelfDrawUsesPolicyThresholdNotEngineFanMin(t *testing.T) {
	wall := mahjong.NewWall(rand.New(rand.NewSource(5)))
	cfg := defaultTestConfig()
	cfg.FanMin = 5
	r := &Round{
		cfg:        cfg,
		wall:       wall,
		analyzer:   mahjong.NewAnalyzer(),
		policies:   [4]policy.Policy{policy.NewTempoDefender(1), nil, nil, nil},
		hands:      [4]*mahjong.Hand{mahjong.NewHand(), nil, nil, nil},
		current:    0,
		dealer:     0,
		missedWins: map[int]bool{},
	}

	// One exposed (non-concealed) triplet plus three closed sequences (not
	// all starting on the same rank) and a closed pair: with the exposed meld, the hand is not concealed and
	// carries no other bonus, so a self-draw win scores fan=1
	// (self_draw only) -- below cfg.FanMin=5 but at this seat's own
	// fan_min=1.
	r.hands[0].Melds = append(r.hands[0].Melds, mahjong.Meld{Kind: mahjong.Triplet, Tile: mahjong.Tile{Suit: mahjong.Wind, Rank: 1}, Concealed: false})
	tiles := []mahjong.Tile{
		{Suit: mahjong.Wan, Rank: 1}, {Suit: mahjong.Wan, Rank: 2}, {Suit: mahjong.Wan, Rank: 3},
		{Suit: mahjong.Tiao, Rank: 1}, {Suit: mahjong.Tiao, Rank: 2}, {Suit: mahjong.Tiao, Rank: 3},
		{Suit: mahjong.Tong, Rank: 2}, {Suit: mahjong.Tong, Rank: 3}, {Suit: mahjong.Tong, Rank: 4},
		{Suit: mahjong.Dragon, Rank: 3}, {Suit: mahjong.Dragon, Rank: 3},
	}
	for _, tl := range tiles {
		r.hands[0].AddTile(tl)
	}

	_, outcome, terminal, err := r.postDraw(mahjong.Tile{Suit: mahjong.Dragon, Rank: 3})
	if err != nil {
		t.Fatalf("postDraw error: %v", err)
	}
	if !terminal || outcome.WinnerSeat != 0 || !outcome.SelfDraw {
		t.Fatalf("expected seat 0 to self-draw a win despite cfg.FanMin=5, got terminal=%v outcome=%+v", terminal, outcome)
	}
	if outcome.Fan != 1 {
		t.Fatalf("expected fan=1, got %d", outcome.Fan)
	}
}

func TestRiskFormula(t *testing.T) {
	r := &Round{cfg: Config{RiskFloor: 100}, wall: mahjong.NewWall(rand.New(rand.NewSource(1)))}
	r.discardPile = make([]mahjong.Tile, 10)
	// wall still at full 136 remaining, floor 100 < (136+10) so denom = 146.
	got := r.risk()
	want := 10.0 / 146.0
	if got != want {
		t.Fatalf("expected risk %v, got %v", want, got)
	}
}
