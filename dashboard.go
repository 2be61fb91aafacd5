// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/cybrota/avltree/avl"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// downsample picks n evenly spaced points, first and last included.
func downsample(points []float64, n int) []float64 {
	if n < 2 || len(points) <= n {
		return points
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = points[(i*(len(points)-1))/(n-1)]
	}
	return out
}

// heightSeries splits samples into the height line and the bound line.
func heightSeries(samples []HeightSample, n int) [][]float64 {
	heights := make([]float64, len(samples))
	bounds := make([]float64, len(samples))
	for i, s := range samples {
		heights[i] = float64(s.Height)
		bounds[i] = float64(s.Bound)
	}
	return [][]float64{downsample(heights, n), downsample(bounds, n)}
}

func stressSummary(cfg StressConfig, r *StressReport) string {
	return fmt.Sprintf(`[Operations](fg:green) %d
[Inserted](fg:green) %d, [deleted](fg:green) %d
[Final size](fg:green) %d
[Final height](fg:green) %d (bound %d)
[Peak height](fg:green) %d
[Seed](fg:green) %d, %d descending, %d ascending, delete [%d, %d]

[q](fg:yellow), [<esc>](fg:yellow) or [<ctrl> + c](fg:yellow) -> Quit`,
		r.Ops, r.Inserted, r.Deleted, r.FinalSize, r.FinalHeight, avl.MaxHeight(r.FinalSize), r.PeakHeight,
		cfg.Seed, cfg.Descending, cfg.Ascending, cfg.DeleteFrom, cfg.DeleteTo)
}

// runDashboard shows the height of the tree after every stress operation
// against the AVL bound until the user quits.
func runDashboard(cfg StressConfig, report *StressReport) error {
	if len(report.Samples) < 2 {
		return fmt.Errorf("need at least two operations to plot, got %d", len(report.Samples))
	}
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	scheme := GetColorScheme()
	termWidth, termHeight := ui.TerminalDimensions()

	plot := widgets.NewPlot()
	plot.Title = " Height (green) and AVL bound (yellow) per operation "
	plot.Marker = widgets.MarkerBraille
	plot.LineColors = []ui.Color{scheme.Success, scheme.Warning}
	plot.AxesColor = scheme.Muted
	plot.BorderStyle = StyleBorder(true)
	plot.TitleStyle = StyleTitle()

	summary := widgets.NewParagraph()
	summary.Title = " Stress Run "
	summary.Text = stressSummary(cfg, report)
	summary.WrapText = true
	summary.BorderStyle = StyleBorder(false)
	summary.TextStyle = StyleText()

	grid := ui.NewGrid()
	layout := func(w, h int) {
		grid.SetRect(0, 0, w, h)
		// braille packs two points per column
		plot.Data = heightSeries(report.Samples, max(2, 2*(w*7/10-10)))
		grid.Set(
			ui.NewRow(1.0,
				ui.NewCol(0.7, plot),
				ui.NewCol(0.3, summary),
			),
		)
	}
	layout(termWidth, termHeight)
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			layout(payload.Width, payload.Height)
			ui.Clear()
			ui.Render(grid)
		}
	}
	return nil
}
