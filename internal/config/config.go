// Package config loads the simulator's run document: trial counts, scoring
// constants, and the per-policy threshold and weight overrides. It follows
// the viper/mapstructure/fsnotify idiom the rest of the stack uses for its
// configuration layer, trimmed to a single flat document instead of a
// server-type dispatch table.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Error reports a malformed or incomplete configuration document. The CLI
// treats it as fatal at startup; it is never raised mid-trial.
type Error struct {
	Field  string
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Detail)
}

// PolicyConfig is one named seat policy's parameter block
// (policies.tempo_defender, policies.value_chaser, policies.neutral). The
// block's key under policies decides which constructor reads it; Kind is
// unmarshalled but not consulted. The threshold fields below are a
// superset across all three concrete policies; each constructor reads the
// fields its policy has and leaves a zero field at its code-level default.
type PolicyConfig struct {
	Kind            string `mapstructure:"kind"`
	FanMin          int    `mapstructure:"fan_min"`
	TargetThreshold int    `mapstructure:"target_threshold"`

	// TempoDefender thresholds.
	HighRiskThreshold float64 `mapstructure:"high_risk_threshold"`
	RiskFanAdjustment float64 `mapstructure:"risk_fan_adjustment"`

	// ValueChaser thresholds.
	BailoutRiskThreshold float64 `mapstructure:"bailout_risk_threshold"`
	ChiWallThreshold     int     `mapstructure:"chi_wall_threshold"`

	// BucketedRiskPolicy (neutral) thresholds.
	FanHigh  int     `mapstructure:"fan_high"`
	FanMid   int     `mapstructure:"fan_mid"`
	FanLow   int     `mapstructure:"fan_low"`
	RiskHigh float64 `mapstructure:"risk_high"`
	RiskMid  float64 `mapstructure:"risk_mid"`

	// Shared claim-risk thresholds. TempoDefender and the neutral policy
	// read all three; ValueChaser reads only chi_risk_threshold.
	GongRiskThreshold float64 `mapstructure:"gong_risk_threshold"`
	PongRiskThreshold float64 `mapstructure:"pong_risk_threshold"`
	ChiRiskThreshold  float64 `mapstructure:"chi_risk_threshold"`
}

// WeightsConfig overrides the shared heuristic weights (policy.Weights).
// A zero field falls back to policy.DefaultWeights()'s value for that
// term at load time. A zero weight for any of these terms has no
// legitimate use, so "unset" and "explicitly zero" need not be
// distinguished.
type WeightsConfig struct {
	PairPotential         float64 `mapstructure:"pair_potential"`
	SequencePotential     float64 `mapstructure:"sequence_potential"`
	HonorValue            float64 `mapstructure:"honor_value"`
	SuitPenalty           float64 `mapstructure:"suit_penalty"`
	SafetyWeight          float64 `mapstructure:"safety_weight"`
	CompletedMeld         float64 `mapstructure:"completed_meld"`
	Pair                  float64 `mapstructure:"pair"`
	Tatsu                 float64 `mapstructure:"tatsu"`
	IsolatedPenalty       float64 `mapstructure:"isolated_penalty"`
	IsolatedReduction     float64 `mapstructure:"isolated_reduction"`
	StructureClarity      float64 `mapstructure:"structure_clarity"`
	CompletionImprovement float64 `mapstructure:"completion_improvement"`
}

// Config is the simulator's run document, unmarshalled from a single YAML
// or JSON file plus any MAHJONGMC_-prefixed environment overrides.
type Config struct {
	Trials         int     `mapstructure:"trials"`
	RoundsPerTrial int     `mapstructure:"rounds_per_trial"`
	BasePoints     int     `mapstructure:"base_points"`
	FanMin         int     `mapstructure:"fan_min"`
	TFanThreshold  int     `mapstructure:"t_fan_threshold"`
	PenaltyDealIn  float64 `mapstructure:"penalty_deal_in"`
	RiskFloor      int     `mapstructure:"risk_floor"`
	Seed           int64   `mapstructure:"seed"`

	Policies map[string]PolicyConfig `mapstructure:"policies"`
	Weights  WeightsConfig           `mapstructure:"weights"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("base_points", 2)
	v.SetDefault("fan_min", 1)
	v.SetDefault("t_fan_threshold", 3)
	v.SetDefault("penalty_deal_in", 1.0)
	v.SetDefault("risk_floor", 100)
	v.SetDefault("rounds_per_trial", 16)
}

// Load reads the configuration document at path, applying MAHJONGMC_
// environment overrides (dots replaced with underscores, matching the
// ambient convention) on top. Returns a *Error if a required field is
// missing after defaults are applied.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("MAHJONGMC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	defaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, &Error{Field: "file", Detail: err.Error()}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &Error{Field: "unmarshal", Detail: err.Error()}
	}

	if cfg.Trials <= 0 {
		return nil, &Error{Field: "trials", Detail: "must be set to a positive trial count"}
	}
	if cfg.RoundsPerTrial <= 0 {
		return nil, &Error{Field: "rounds_per_trial", Detail: "must be positive"}
	}
	if len(cfg.Policies) == 0 {
		return nil, &Error{Field: "policies", Detail: "at least one named policy block is required"}
	}

	return &cfg, nil
}

// Watch re-reads the document on every filesystem change and invokes onChange
// with a freshly unmarshalled config. Unmarshal failures are reported
// through onError; a document viper cannot parse leaves the previously read
// values in place, and onChange receives those. Watch applies nothing
// itself: when to use a new config is up to the caller.
func Watch(path string, onChange func(*Config), onError func(error)) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("MAHJONGMC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	defaults(v)

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			onError(&Error{Field: "unmarshal", Detail: err.Error()})
			return
		}
		onChange(&cfg)
	})
}
