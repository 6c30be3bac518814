package main

import (
	"slices"
	"testing"

	"github.com/cybrota/roster/registry"
)

func TestChartSeries(t *testing.T) {
	r := newTestRoster()
	for _, roll := range []int{3, 1, 2} {
		f := registry.Fields{Name: "S", Scores: registry.Scores{Mathematics: roll * 10, Biology: 1}}
		if err := r.Add(registry.NewRecord(roll, f)); err != nil {
			t.Fatalf("Add(%d) failed: %v", roll, err)
		}
	}

	data, labels := chartSeries(r)
	if want := []float64{11, 21, 31}; !slices.Equal(data, want) {
		t.Errorf("data = %v; want %v", data, want)
	}
	if want := []string{"1", "2", "3"}; !slices.Equal(labels, want) {
		t.Errorf("labels = %v; want %v", labels, want)
	}
}

func TestNewTotalsChart(t *testing.T) {
	r := newTestRoster()
	if err := r.Add(sampleRecord()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	bc := newTotalsChart(r)
	if len(bc.Data) != 1 || bc.Data[0] != 416 {
		t.Errorf("chart data = %v; want [416]", bc.Data)
	}
	if len(bc.Labels) != 1 || bc.Labels[0] != "12" {
		t.Errorf("chart labels = %v; want [12]", bc.Labels)
	}
}

func TestRunChartEmptyRoster(t *testing.T) {
	if err := runChart(newTestRoster()); err == nil {
		t.Error("runChart on an empty roster returned nil error")
	}
}
