package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"mahjongmc/internal/config"
	"mahjongmc/internal/engine"
	"mahjongmc/internal/logging"
	"mahjongmc/internal/policy"
	"mahjongmc/internal/report"
	"mahjongmc/internal/trial"
)

var (
	configFile string
	outDir     string
	experiment int
	runAll     bool
	quick      bool
	seed       int64
	strict     bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "mahjongmc",
	Short: "Monte Carlo comparison of Beijing Mahjong seat policies",
	Long:  "mahjongmc runs independent trials of a four-seat Beijing Mahjong round engine, comparing defensive and value-seeking policies across many simulated tables.",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "configs/base.yaml", "path to the run configuration document")
	rootCmd.Flags().StringVar(&outDir, "out", "./out", "output directory for transcripts and plots")
	rootCmd.Flags().IntVar(&experiment, "experiment", 0, "run a specific numbered experiment (1: strategy comparison, 2: table composition sweep)")
	rootCmd.Flags().BoolVar(&runAll, "all", false, "run all experiments")
	rootCmd.Flags().BoolVar(&quick, "quick", false, "run a quick single-trial demo instead of a full experiment")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 uses the config's seed, or the current time if that is also unset)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "treat engine invariant violations as fatal instead of abandoning the round")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug-level logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logging.Init("mahjongmc", verbose)

	cfg, err := config.Load(configFile)
	if err != nil {
		logging.Fatal("configuration error: %v", err)
	}

	effectiveSeed := seed
	if effectiveSeed == 0 {
		effectiveSeed = cfg.Seed
	}
	if effectiveSeed == 0 {
		effectiveSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(effectiveSeed))

	engineCfg := engine.Config{
		BasePoints:    cfg.BasePoints,
		FanMin:        cfg.FanMin,
		RiskFloor:     cfg.RiskFloor,
		PenaltyDealIn: cfg.PenaltyDealIn,
	}
	weights := weightsFromConfig(cfg.Weights)

	switch {
	case quick:
		return runQuickDemo(rng, cfg, engineCfg, weights)
	case experiment == 1:
		return runExperiment1(rng, cfg, engineCfg, weights)
	case experiment == 2:
		return runExperiment2(rng, cfg, engineCfg, weights)
	case runAll:
		if err := runExperiment1(rng, cfg, engineCfg, weights); err != nil {
			return err
		}
		return runExperiment2(rng, cfg, engineCfg, weights)
	default:
		logging.Info("no experiment specified; running quick demo (use --experiment N, --all, or --quick)")
		return runQuickDemo(rng, cfg, engineCfg, weights)
	}
}

// weightsFromConfig overrides policy.DefaultWeights() field by field with
// any non-zero value present in the configuration's weights block.
func weightsFromConfig(wc config.WeightsConfig) policy.Weights {
	w := policy.DefaultWeights()
	override := func(dst *float64, src float64) {
		if src != 0 {
			*dst = src
		}
	}
	override(&w.PairPotential, wc.PairPotential)
	override(&w.SequencePotential, wc.SequencePotential)
	override(&w.HonorValue, wc.HonorValue)
	override(&w.SuitPenalty, wc.SuitPenalty)
	override(&w.SafetyWeight, wc.SafetyWeight)
	override(&w.CompletedMeld, wc.CompletedMeld)
	override(&w.Pair, wc.Pair)
	override(&w.Tatsu, wc.Tatsu)
	override(&w.IsolatedPenalty, wc.IsolatedPenalty)
	override(&w.IsolatedReduction, wc.IsolatedReduction)
	override(&w.StructureClarity, wc.StructureClarity)
	override(&w.CompletionImprovement, wc.CompletionImprovement)
	return w
}

func overrideFloat(dst *float64, src float64) {
	if src != 0 {
		*dst = src
	}
}

func overrideInt(dst *int, src int) {
	if src != 0 {
		*dst = src
	}
}

func newTempoDefender(cfg *config.Config, weights policy.Weights) *policy.TempoDefender {
	pc := cfg.Policies["tempo_defender"]
	fanMin := cfg.FanMin
	overrideInt(&fanMin, pc.FanMin)
	p := policy.NewTempoDefender(fanMin)
	p.Weights = weights
	overrideFloat(&p.Thresholds.HighRiskThreshold, pc.HighRiskThreshold)
	overrideFloat(&p.Thresholds.GongRiskThreshold, pc.GongRiskThreshold)
	overrideFloat(&p.Thresholds.PongRiskThreshold, pc.PongRiskThreshold)
	overrideFloat(&p.Thresholds.ChiRiskThreshold, pc.ChiRiskThreshold)
	overrideFloat(&p.Thresholds.RiskFanAdjustment, pc.RiskFanAdjustment)
	return p
}

func newValueChaser(cfg *config.Config, weights policy.Weights) *policy.ValueChaser {
	pc := cfg.Policies["value_chaser"]
	fanMin := cfg.FanMin
	overrideInt(&fanMin, pc.FanMin)
	targetThreshold := cfg.TFanThreshold
	overrideInt(&targetThreshold, pc.TargetThreshold)
	p := policy.NewValueChaser(fanMin, targetThreshold)
	p.Weights = weights
	overrideFloat(&p.Thresholds.BailoutRiskThreshold, pc.BailoutRiskThreshold)
	overrideFloat(&p.Thresholds.ChiRiskThreshold, pc.ChiRiskThreshold)
	overrideInt(&p.Thresholds.ChiWallThreshold, pc.ChiWallThreshold)
	return p
}

func newBucketedRiskPolicy(cfg *config.Config, weights policy.Weights) *policy.BucketedRiskPolicy {
	pc := cfg.Policies["neutral"]
	p := policy.NewBucketedRiskPolicy()
	p.Weights = weights
	overrideInt(&p.Thresholds.FanHigh, pc.FanHigh)
	overrideInt(&p.Thresholds.FanMid, pc.FanMid)
	overrideInt(&p.Thresholds.FanLow, pc.FanLow)
	overrideFloat(&p.Thresholds.RiskHigh, pc.RiskHigh)
	overrideFloat(&p.Thresholds.RiskMid, pc.RiskMid)
	overrideFloat(&p.Thresholds.GongRiskThreshold, pc.GongRiskThreshold)
	overrideFloat(&p.Thresholds.PongRiskThreshold, pc.PongRiskThreshold)
	overrideFloat(&p.Thresholds.ChiRiskThreshold, pc.ChiRiskThreshold)
	return p
}

func runQuickDemo(rng *rand.Rand, cfg *config.Config, engineCfg engine.Config, weights policy.Weights) error {
	tt, err := report.NewTranscript(outDir, "quick-demo")
	if err != nil {
		return err
	}
	defer tt.Close()

	tt.Printf("Quick Demo: Single Trial Comparison\n")
	tt.Printf("Running %d rounds...\n\n", cfg.RoundsPerTrial)

	neutral := newBucketedRiskPolicy(cfg, weights)
	defResult := trial.RunStrategyComparison(rng, "defensive", newTempoDefender(cfg, weights), neutral, engineCfg, 1, cfg.RoundsPerTrial, strict)
	aggResult := trial.RunStrategyComparison(rng, "aggressive", newValueChaser(cfg, weights), neutral, engineCfg, 1, cfg.RoundsPerTrial, strict)

	tt.Printf("Defensive strategy:\n  Profit: %.2f\n  Mean Fan: %.2f\n  Win Rate: %.4f\n\n",
		defResult.Stats.MeanProfit(), defResult.Stats.MeanFan(), defResult.Stats.WinRate())
	tt.Printf("Aggressive strategy:\n  Profit: %.2f\n  Mean Fan: %.2f\n  Win Rate: %.4f\n",
		aggResult.Stats.MeanProfit(), aggResult.Stats.MeanFan(), aggResult.Stats.WinRate())

	return nil
}

func runExperiment1(rng *rand.Rand, cfg *config.Config, engineCfg engine.Config, weights policy.Weights) error {
	tt, err := report.NewTranscript(outDir, "experiment1")
	if err != nil {
		return err
	}
	defer tt.Close()

	tt.Printf("Experiment 1: Strategy Comparison\n")
	tt.Printf("Running %d trials of %d rounds each against a neutral field\n\n", cfg.Trials, cfg.RoundsPerTrial)

	neutral := newBucketedRiskPolicy(cfg, weights)
	bar := pb.StartNew(cfg.Trials * 2)
	defResult := runComparisonWithProgress(bar, rng, "defensive", newTempoDefender(cfg, weights), neutral, engineCfg, cfg)
	aggResult := runComparisonWithProgress(bar, rng, "aggressive", newValueChaser(cfg, weights), neutral, engineCfg, cfg)
	bar.Finish()

	printComparison(tt, defResult)
	printComparison(tt, aggResult)

	return nil
}

func runComparisonWithProgress(bar *pb.ProgressBar, rng *rand.Rand, label string, p, neutral policy.Policy, engineCfg engine.Config, cfg *config.Config) trial.ComparisonResult {
	result := trial.RunStrategyComparison(rng, label, p, neutral, engineCfg, cfg.Trials, cfg.RoundsPerTrial, strict)
	bar.Add(cfg.Trials)
	return result
}

func printComparison(tt *report.Transcript, r trial.ComparisonResult) {
	tt.Printf("\n%s strategy (pooled over all trials):\n", r.Label)
	tt.Printf("  Mean Profit: %.2f ± %.2f\n", r.Stats.MeanProfit(), r.Stats.StdProfit())
	tt.Printf("  Win Rate: %.4f\n", r.Stats.WinRate())
	tt.Printf("  Deal-in Rate: %.4f\n", r.Stats.DealInRate())
	tt.Printf("  Missed-win Rate: %.4f\n", r.Stats.MissedWinRate())
	tt.Printf("  Mean Fan (when winning): %.2f\n", r.Stats.MeanFan())
}

func runExperiment2(rng *rand.Rand, cfg *config.Config, engineCfg engine.Config, weights policy.Weights) error {
	tt, err := report.NewTranscript(outDir, "experiment2")
	if err != nil {
		return err
	}
	defer tt.Close()

	tt.Printf("Experiment 2: 4-Player Table Composition Analysis\n")
	tt.Printf("Running %d trials per composition (5 compositions), %d rounds each\n\n", cfg.Trials, cfg.RoundsPerTrial)

	bar := pb.StartNew(cfg.Trials * 5)
	sweep := runSweepWithProgress(bar, rng, engineCfg, cfg, weights)
	bar.Finish()

	tt.Printf("\n%-5s %-15s %-15s %-15s %-17s\n", "θ", "DEF Profit", "AGG Profit", "Dealer Profit", "NonDealer Profit")
	for theta := 0; theta <= 4; theta++ {
		cr := sweep[theta]
		tt.Printf("%-5d %-15.2f %-15.2f %-15.2f %-17.2f\n",
			theta, cr.Defensive.MeanProfit(), cr.Aggressive.MeanProfit(), cr.Dealer.MeanProfit(), cr.NonDealer.MeanProfit())
	}

	if err := report.SaveCompositionPlots(sweep, outDir); err != nil {
		logging.Warn("plot generation failed: %v", err)
	}

	return nil
}

func runSweepWithProgress(bar *pb.ProgressBar, rng *rand.Rand, engineCfg engine.Config, cfg *config.Config, weights policy.Weights) map[int]trial.CompositionResult {
	sweep := trial.RunCompositionSweep(rng, engineCfg, cfg.TFanThreshold, weights, cfg.Trials, cfg.RoundsPerTrial, strict)
	bar.Add(cfg.Trials * 5)
	return sweep
}
