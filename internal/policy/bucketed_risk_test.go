package policy

import "testing"

func TestBucketedRiskRequiredFanByRiskBucket(t *testing.T) {
	p := NewBucketedRiskPolicy()

	if !p.ShouldDeclareWin(p.Thresholds.FanHigh, 0.9, nil) {
		t.Fatalf("expected win at fan_high under high risk")
	}
	if !p.ShouldDeclareWin(p.Thresholds.FanMid, 0.45, nil) {
		t.Fatalf("expected win at fan_mid under moderate risk")
	}
	if p.ShouldDeclareWin(p.Thresholds.FanMid-1, 0.0, nil) {
		t.Fatalf("expected no win below fan_low at low risk")
	}
	if !p.ShouldDeclareWin(p.Thresholds.FanLow, 0.0, nil) {
		t.Fatalf("expected win at fan_low under low risk")
	}
}

func TestBucketedRiskClaimThresholds(t *testing.T) {
	p := NewBucketedRiskPolicy()
	if !p.ShouldClaim(Pong, 0.1, nil) {
		t.Fatalf("expected claim accepted well under threshold")
	}
	if p.ShouldClaim(Pong, 0.99, nil) {
		t.Fatalf("expected claim rejected well over threshold")
	}
}
