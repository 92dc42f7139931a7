package report

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"mahjongmc/internal/trial"
)

const plotDPI = 200

// SaveCompositionPlots renders the θ-sweep's profit-vs-θ and win-rate-vs-θ
// line plots (defensive against aggressive) and a dealer-vs-non-dealer
// profit bar chart, one PNG per dimension, into outDir.
func SaveCompositionPlots(results map[int]trial.CompositionResult, outDir string) error {
	thetas := []int{0, 1, 2, 3, 4}

	defProfit := make(plotter.XYs, 0, len(thetas))
	aggProfit := make(plotter.XYs, 0, len(thetas))
	defWinRate := make(plotter.XYs, 0, len(thetas))
	aggWinRate := make(plotter.XYs, 0, len(thetas))

	var dealerMean, nonDealerMean float64
	for _, theta := range thetas {
		cr := results[theta]
		defProfit = append(defProfit, plotter.XY{X: float64(theta), Y: cr.Defensive.MeanProfit()})
		aggProfit = append(aggProfit, plotter.XY{X: float64(theta), Y: cr.Aggressive.MeanProfit()})
		defWinRate = append(defWinRate, plotter.XY{X: float64(theta), Y: cr.Defensive.WinRate()})
		aggWinRate = append(aggWinRate, plotter.XY{X: float64(theta), Y: cr.Aggressive.WinRate()})
		dealerMean += cr.Dealer.MeanProfit()
		nonDealerMean += cr.NonDealer.MeanProfit()
	}
	dealerMean /= float64(len(thetas))
	nonDealerMean /= float64(len(thetas))

	if err := saveLinePlot(
		"Profit vs Composition (θ): Both Strategies", "θ (number of defensive seats)", "Mean Profit",
		filepath.Join(outDir, "profit_vs_theta.png"), defProfit, aggProfit, "Defensive", "Aggressive"); err != nil {
		return err
	}

	if err := saveLinePlot(
		"Win Rate vs Composition (θ): Both Strategies", "θ (number of defensive seats)", "Win Rate",
		filepath.Join(outDir, "win_rate_vs_theta.png"), defWinRate, aggWinRate, "Defensive", "Aggressive"); err != nil {
		return err
	}

	return saveBarPlot(
		"Mean Profit: Dealer vs Non-Dealer", "Mean Profit",
		filepath.Join(outDir, "dealer_vs_non_dealer_profit.png"),
		[]string{"Dealer", "Non-Dealer"}, []float64{dealerMean, nonDealerMean})
}

func saveLinePlot(title, xlabel, ylabel, outfile string, y1, y2 plotter.XYs, label1, label2 string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	if err := plotutil.AddLinePoints(p, label1, y1, label2, y2); err != nil {
		return fmt.Errorf("report: add line points: %w", err)
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, outfile); err != nil {
		return fmt.Errorf("report: save %s: %w", outfile, err)
	}
	return nil
}

func saveBarPlot(title, ylabel, outfile string, labels []string, values []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(40))
	if err != nil {
		return fmt.Errorf("report: new bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, outfile); err != nil {
		return fmt.Errorf("report: save %s: %w", outfile, err)
	}
	return nil
}

// SaveFanHistogram renders a histogram of winning-hand fan values for one
// seat role (defensive or aggressive), mirroring
// mahjong_sim/plotting.py's save_stacked_fan_distribution.
func SaveFanHistogram(fans []int, title, outfile string) error {
	if len(fans) == 0 {
		return nil
	}
	values := make(plotter.Values, len(fans))
	for i, f := range fans {
		values[i] = float64(f)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Fan"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(values, 16)
	if err != nil {
		return fmt.Errorf("report: new histogram: %w", err)
	}
	p.Add(hist)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, outfile); err != nil {
		return fmt.Errorf("report: save %s: %w", outfile, err)
	}
	return nil
}
