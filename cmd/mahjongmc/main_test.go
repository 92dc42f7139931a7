package main

import (
	"testing"

	"mahjongmc/internal/config"
	"mahjongmc/internal/policy"
)

func TestNewTempoDefenderAppliesPolicyBlockOverrides(t *testing.T) {
	cfg := &config.Config{
		FanMin: 1,
		Policies: map[string]config.PolicyConfig{
			"tempo_defender": {
				Kind:              "tempo_defender",
				FanMin:            2,
				HighRiskThreshold: 0.75,
				GongRiskThreshold: 0.2,
			},
		},
	}

	p := newTempoDefender(cfg, policy.DefaultWeights())

	if p.FanMin != 2 {
		t.Fatalf("expected policies.tempo_defender.fan_min to override cfg.FanMin, got %d", p.FanMin)
	}
	if p.Thresholds.HighRiskThreshold != 0.75 {
		t.Fatalf("expected high_risk_threshold override, got %v", p.Thresholds.HighRiskThreshold)
	}
	if p.Thresholds.GongRiskThreshold != 0.2 {
		t.Fatalf("expected gong_risk_threshold override, got %v", p.Thresholds.GongRiskThreshold)
	}
	// Unset fields keep their code-level defaults.
	if p.Thresholds.PongRiskThreshold != policy.DefaultTempoDefenderThresholds().PongRiskThreshold {
		t.Fatalf("expected pong_risk_threshold to keep its default, got %v", p.Thresholds.PongRiskThreshold)
	}
}

func TestNewValueChaserAppliesPolicyBlockOverrides(t *testing.T) {
	cfg := &config.Config{
		FanMin:        1,
		TFanThreshold: 3,
		Policies: map[string]config.PolicyConfig{
			"value_chaser": {
				Kind:                 "value_chaser",
				TargetThreshold:      5,
				BailoutRiskThreshold: 0.9,
				ChiWallThreshold:     40,
			},
		},
	}

	p := newValueChaser(cfg, policy.DefaultWeights())

	if p.TargetThreshold != 5 {
		t.Fatalf("expected policies.value_chaser.target_threshold to override cfg.TFanThreshold, got %d", p.TargetThreshold)
	}
	if p.Thresholds.BailoutRiskThreshold != 0.9 {
		t.Fatalf("expected bailout_risk_threshold override, got %v", p.Thresholds.BailoutRiskThreshold)
	}
	if p.Thresholds.ChiWallThreshold != 40 {
		t.Fatalf("expected chi_wall_threshold override, got %d", p.Thresholds.ChiWallThreshold)
	}
}

func TestNewBucketedRiskPolicyAppliesNeutralBlockOverrides(t *testing.T) {
	cfg := &config.Config{
		Policies: map[string]config.PolicyConfig{
			"neutral": {
				Kind:    "bucketed_risk",
				FanHigh: 2,
				FanMid:  3,
				FanLow:  4,
				RiskMid: 0.4,
			},
		},
	}

	p := newBucketedRiskPolicy(cfg, policy.DefaultWeights())

	if p.Thresholds.FanHigh != 2 || p.Thresholds.FanMid != 3 || p.Thresholds.FanLow != 4 {
		t.Fatalf("expected fan bucket overrides, got %+v", p.Thresholds)
	}
	if p.Thresholds.RiskMid != 0.4 {
		t.Fatalf("expected risk_mid override, got %v", p.Thresholds.RiskMid)
	}
	// RiskHigh left unset falls back to the code-level default.
	if p.Thresholds.RiskHigh != policy.DefaultBucketedRiskThresholds().RiskHigh {
		t.Fatalf("expected risk_high to keep its default, got %v", p.Thresholds.RiskHigh)
	}
}

func TestPolicyConstructorsFallBackToDefaultsWithoutPolicyBlock(t *testing.T) {
	cfg := &config.Config{FanMin: 1, TFanThreshold: 3, Policies: map[string]config.PolicyConfig{}}

	td := newTempoDefender(cfg, policy.DefaultWeights())
	if td.Thresholds != policy.DefaultTempoDefenderThresholds() {
		t.Fatalf("expected default thresholds with no config block, got %+v", td.Thresholds)
	}

	vc := newValueChaser(cfg, policy.DefaultWeights())
	if vc.Thresholds != policy.DefaultValueChaserThresholds() {
		t.Fatalf("expected default thresholds with no config block, got %+v", vc.Thresholds)
	}
}
