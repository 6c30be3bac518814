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
	"io"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/roster/registry"
)

// Focus targets, cycled with tab
const (
	focusList = iota
	focusCommand
	focusDetails
	focusCount
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	recordList     list.Model
	detailViewport viewport.Model
	commandInput   textinput.Model

	// Data
	roster  *Roster
	config  *Config
	records []registry.Record

	// State
	focusIndex int
	status     string
	statusErr  bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// recordItem represents a student in the records list
type recordItem struct {
	rec registry.Record
}

func (i recordItem) FilterValue() string { return i.rec.Name }
func (i recordItem) Title() string       { return fmt.Sprintf("%d · %s", i.rec.Key, i.rec.Name) }
func (i recordItem) Description() string { return FormatSummary(i.rec) }

// InitialModel creates the initial model
func InitialModel(r *Roster, config *Config) Model {
	recordList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	recordList.SetShowTitle(false)
	recordList.SetShowHelp(false)
	recordList.SetFilteringEnabled(false)

	detailViewport := viewport.New(0, 0)

	ti := textinput.New()
	ti.Placeholder = `add 7 "Ada Lovelace" 1815 99 100 88 77 66`
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 50

	var renderer *glamour.TermRenderer
	if config.Display.Markdown {
		var err error
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(config.Display.WordWrap),
		)
		if err != nil {
			log.Printf("Failed to create markdown renderer: %v", err)
			renderer = nil
		}
	}

	model := Model{
		recordList:      recordList,
		detailViewport:  detailViewport,
		commandInput:    ti,
		roster:          r,
		config:          config,
		focusIndex:      focusList,
		styles:          NewStyles(),
		glamourRenderer: renderer,
	}
	model.refreshRecords()
	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focusIndex + 1) % focusCount)
			return m, nil
		}

		switch m.focusIndex {
		case focusCommand:
			return m.updateCommandBar(msg)
		case focusDetails:
			return m.updateDetails(msg)
		default:
			return m.updateList(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m *Model) setFocus(target int) {
	m.focusIndex = target
	if target == focusCommand {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.recordList.Index() > 0 {
			m.recordList.CursorUp()
			m.updateDetail()
		}
		return m, nil
	case "down", "j":
		if m.recordList.Index() < len(m.records)-1 {
			m.recordList.CursorDown()
			m.updateDetail()
		}
		return m, nil
	case ":", "/":
		m.setFocus(focusCommand)
		return m, nil
	case "ctrl+y":
		m.copySelected()
		return m, nil
	case "ctrl+d":
		if rec, ok := m.selected(); ok {
			m.execute(&Command{Verb: VerbDelete, Roll: rec.Key})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.recordList, cmd = m.recordList.Update(msg)
	m.updateDetail()
	return m, cmd
}

func (m Model) updateCommandBar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		line := m.commandInput.Value()
		m.commandInput.Reset()
		m.runCommand(line)
		return m, nil
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m Model) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.detailViewport.LineUp(1)
	case "down", "j":
		m.detailViewport.LineDown(1)
	case "pgup":
		m.detailViewport.LineUp(m.detailViewport.Height)
	case "pgdown":
		m.detailViewport.LineDown(m.detailViewport.Height)
	case "home":
		m.detailViewport.GotoTop()
	case "end":
		m.detailViewport.GotoBottom()
	case "ctrl+y":
		m.copySelected()
	}
	return m, nil
}

// runCommand parses and executes one command bar line.
func (m *Model) runCommand(line string) {
	cmd, err := ParseCommand(line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if cmd == nil {
		return
	}
	m.execute(cmd)
}

func (m *Model) execute(cmd *Command) {
	switch cmd.Verb {
	case VerbFind:
		rec, err := m.roster.Find(cmd.Roll)
		if err != nil {
			m.setStatus(describeError(err), true)
			return
		}
		m.selectRoll(rec.Key)
		m.setStatus(fmt.Sprintf("Found roll number %d", rec.Key), false)
		return
	case VerbList:
		m.refreshRecords()
		m.setStatus(fmt.Sprintf("%d students registered", m.roster.Len()), false)
		return
	}

	if err := m.roster.Exec(cmd, io.Discard); err != nil {
		m.setStatus(describeError(err), true)
		return
	}

	m.refreshRecords()
	switch cmd.Verb {
	case VerbAdd:
		m.selectRoll(cmd.Roll)
		m.setStatus(fmt.Sprintf("Added roll number %d", cmd.Roll), false)
	case VerbModify:
		m.selectRoll(cmd.Roll)
		m.setStatus(fmt.Sprintf("Modified roll number %d", cmd.Roll), false)
	case VerbDelete:
		m.setStatus(fmt.Sprintf("Deleted roll number %d", cmd.Roll), false)
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// refreshRecords reloads the list from the roster, keeping the cursor in range.
func (m *Model) refreshRecords() {
	m.records = make([]registry.Record, 0, m.roster.Len())
	for rec := range m.roster.All() {
		m.records = append(m.records, rec)
	}

	items := make([]list.Item, len(m.records))
	for i, rec := range m.records {
		items[i] = recordItem{rec: rec}
	}
	m.recordList.SetItems(items)

	if idx := m.recordList.Index(); idx >= len(m.records) && len(m.records) > 0 {
		m.recordList.Select(len(m.records) - 1)
	}
	m.updateDetail()
}

func (m *Model) selectRoll(roll int) {
	for i, rec := range m.records {
		if rec.Key == roll {
			m.recordList.Select(i)
			break
		}
	}
	m.updateDetail()
}

func (m *Model) selected() (registry.Record, bool) {
	idx := m.recordList.Index()
	if idx < 0 || idx >= len(m.records) {
		return registry.Record{}, false
	}
	return m.records[idx], true
}

// updateDetail shows the selected record in the details viewport
func (m *Model) updateDetail() {
	rec, ok := m.selected()
	if !ok {
		m.detailViewport.SetContent("No students registered.\n\nPress tab and type an add command to register one.")
		return
	}

	var render func(string) (string, error)
	if m.glamourRenderer != nil {
		render = m.glamourRenderer.Render
	}
	m.detailViewport.SetContent(m.roster.Details(rec, render))
	m.detailViewport.GotoTop()
}

func (m *Model) copySelected() {
	rec, ok := m.selected()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(FormatDetails(rec)); err != nil {
		log.Printf("Failed to copy text: %v", err)
		m.setStatus(fmt.Sprintf("Failed to copy: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("📋 Copied roll number %d to clipboard", rec.Key), false)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	listHeight, commandHeight, leftWidth, rightWidth := m.dimensions()

	listStyle, listTitle := m.styles.BorderBlurred, fmt.Sprintf(" 🎓 Students (%d) ", len(m.records))
	if m.focusIndex == focusList {
		listStyle, listTitle = m.styles.BorderFocused, fmt.Sprintf(" 🎓 Students (%d) (Active) ", len(m.records))
	}
	listBox := listStyle.
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(listTitle),
			m.recordList.View(),
		))

	commandStyle, commandTitle := m.styles.BorderBlurred, " ⌨ Command "
	if m.focusIndex == focusCommand {
		commandStyle, commandTitle = m.styles.BorderFocused, " ⌨ Command (Active) "
	}
	commandBox := commandStyle.
		Width(leftWidth).
		Height(commandHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(commandTitle),
			m.commandInput.View(),
		))

	detailStyle, detailTitle := m.styles.BorderBlurred, " 📄 Student Details "
	if m.focusIndex == focusDetails {
		detailStyle, detailTitle = m.styles.BorderFocused, " 📄 Student Details (Active) "
	}
	detailBox := detailStyle.
		Width(rightWidth).
		Height(listHeight + commandHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(detailTitle),
			m.detailViewport.View(),
		))

	leftColumn := lipgloss.JoinVertical(lipgloss.Left, listBox, commandBox)
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, detailBox)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) dimensions() (listHeight, commandHeight, leftWidth, rightWidth int) {
	commandHeight = 3
	listHeight = m.height - commandHeight - 8 // Leave room for status and help
	leftWidth = (m.width * 4 / 10) - 1
	rightWidth = m.width - leftWidth - 3
	return
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	listHeight, commandHeight, leftWidth, rightWidth := m.dimensions()

	m.commandInput.Width = leftWidth - 6
	m.recordList.SetSize(leftWidth-2, listHeight-2)
	m.detailViewport.Width = rightWidth - 2
	m.detailViewport.Height = listHeight + commandHeight
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	style := m.styles.SuccessMessage
	if m.statusErr {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.status))
}

// renderHelp renders the key binding footer
func (m Model) renderHelp() string {
	keys := []string{"tab", ":", "enter", "ctrl+y", "ctrl+d", "esc"}
	descs := []string{"switch focus", "command bar", "run command", "copy details", "delete selected", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(r *Roster, config *Config) error {
	model := InitialModel(r, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
