// Package report renders training progress to an HTML chart.
package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// One sampled point of a training run
type Point struct {
	Game    int
	WinRate float64
	Epsilon float64
}

// Recorder collects win-rate samples during training, typically from a
// trainer listener callback.
type Recorder struct {
	points []Point
}

func NewRecorder() *Recorder {
	return &Recorder{points: make([]Point, 0, 64)}
}

func (r *Recorder) Add(game int, winRate, epsilon float64) {
	r.points = append(r.points, Point{Game: game, WinRate: winRate, Epsilon: epsilon})
}

func (r *Recorder) Len() int {
	return len(r.points)
}

func (r *Recorder) Points() []Point {
	return r.points
}

// RenderHTML writes a win-rate / epsilon line chart to the given file
func (r *Recorder) RenderHTML(path string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Q-learning training progress",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	games := make([]string, len(r.points))
	winRates := make([]opts.LineData, len(r.points))
	epsilons := make([]opts.LineData, len(r.points))
	for i, p := range r.points {
		games[i] = fmt.Sprintf("%d", p.Game)
		winRates[i] = opts.LineData{Value: p.WinRate}
		epsilons[i] = opts.LineData{Value: p.Epsilon}
	}

	line.SetXAxis(games).
		AddSeries("win rate", winRates).
		AddSeries("epsilon", epsilons)

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// A failed close loses buffered chart data, so it must surface too
	if err := page.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
