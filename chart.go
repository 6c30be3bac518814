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
	"strconv"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// chartSeries returns one bar per student, in roll number order.
func chartSeries(r *Roster) ([]float64, []string) {
	data := make([]float64, 0, r.Len())
	labels := make([]string, 0, r.Len())
	for rec := range r.All() {
		data = append(data, float64(rec.Total()))
		labels = append(labels, strconv.Itoa(rec.Key))
	}
	return data, labels
}

func newTotalsChart(r *Roster) *widgets.BarChart {
	scheme := GetColorScheme()
	data, labels := chartSeries(r)

	bc := widgets.NewBarChart()
	bc.Title = fmt.Sprintf(" Total Marks by Roll Number (%d students) · q to quit ", len(data))
	bc.Data = data
	bc.Labels = labels
	bc.BarWidth = 6
	bc.BarGap = 1
	bc.BarColors = []ui.Color{scheme.Primary, scheme.Accent}
	bc.LabelStyles = []ui.Style{ui.NewStyle(scheme.Text)}
	bc.NumStyles = []ui.Style{ui.NewStyle(scheme.OnPrimary)}
	bc.BorderStyle = ui.NewStyle(scheme.Border)
	return bc
}

// runChart draws the totals chart full screen until the user quits.
func runChart(r *Roster) error {
	if r.Len() == 0 {
		return fmt.Errorf("no students registered")
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	bc := newTotalsChart(r)
	termWidth, termHeight := ui.TerminalDimensions()
	bc.SetRect(0, 0, termWidth, termHeight)
	ui.Render(bc)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "<Resize>":
			if payload, ok := e.Payload.(ui.Resize); ok {
				bc.SetRect(0, 0, payload.Width, payload.Height)
			}
			ui.Clear()
			ui.Render(bc)
		}
	}
	return nil
}
