package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := defaultConfig
	cfg.Display.Markdown = false
	m := InitialModel(newTestRoster(), &cfg)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func TestModelCommandBar(t *testing.T) {
	m := newTestModel(t)

	m.runCommand(`add 12 "Alan Turing" 1912 95 99 81 77 64`)
	m.runCommand(`add 7 "Ada Lovelace" 1815 99 100 88 77 66`)
	if len(m.records) != 2 {
		t.Fatalf("records = %d; want 2", len(m.records))
	}
	if m.records[0].Key != 7 || m.records[1].Key != 12 {
		t.Errorf("records out of order: %d, %d", m.records[0].Key, m.records[1].Key)
	}
	if rec, ok := m.selected(); !ok || rec.Key != 7 {
		t.Errorf("selected = %+v; want the record just added", rec)
	}
	if m.statusErr || m.status != "Added roll number 7" {
		t.Errorf("status = %q (err %v)", m.status, m.statusErr)
	}

	m.runCommand("find 12")
	if rec, _ := m.selected(); rec.Key != 12 {
		t.Errorf("find did not select roll 12, selected %d", rec.Key)
	}
	if !strings.Contains(m.detailViewport.View(), "Alan Turing") {
		t.Errorf("details pane does not show the found record:\n%s", m.detailViewport.View())
	}

	m.runCommand("add 12 Again 1 1 1 1 1 1")
	if !m.statusErr || !strings.Contains(m.status, "already exists") {
		t.Errorf("duplicate add status = %q (err %v)", m.status, m.statusErr)
	}

	m.runCommand("find")
	if !m.statusErr || !strings.Contains(m.status, "find <roll>") {
		t.Errorf("usage status = %q (err %v)", m.status, m.statusErr)
	}
}

func TestModelDeleteSelected(t *testing.T) {
	m := newTestModel(t)
	m.runCommand("add 1 A 1 1 1 1 1 1")
	m.runCommand("add 2 B 2 2 2 2 2 2")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = updated.(Model)

	if len(m.records) != 1 || m.records[0].Key != 1 {
		t.Fatalf("records after delete = %+v; want only roll 1", m.records)
	}
	if m.status != "Deleted roll number 2" {
		t.Errorf("status = %q", m.status)
	}
	if rec, ok := m.selected(); !ok || rec.Key != 1 {
		t.Errorf("cursor not clamped after delete: %+v, %v", rec, ok)
	}
}

func TestModelFocusCycle(t *testing.T) {
	m := newTestModel(t)
	if m.focusIndex != focusList {
		t.Fatalf("initial focus = %d; want list", m.focusIndex)
	}

	for _, want := range []int{focusCommand, focusDetails, focusList} {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)
		if m.focusIndex != want {
			t.Errorf("focus = %d; want %d", m.focusIndex, want)
		}
		if m.commandInput.Focused() != (want == focusCommand) {
			t.Errorf("command input focused = %v at focus %d", m.commandInput.Focused(), want)
		}
	}
}

func TestModelViewEmpty(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"Students (0)", "No students registered."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
