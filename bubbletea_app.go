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
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// DetailPane selects what the right-hand viewport shows
type DetailPane int

const (
	PaneTree DetailPane = iota
	PaneOutput
	PaneHelp
)

// Focus order: prompt, entries, detail
const (
	focusPrompt = iota
	focusEntries
	focusDetail
	focusCount
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	// Components
	prompt  textinput.Model
	entries list.Model
	detail  viewport.Model

	// Data
	store  *Store
	shell  *Shell
	output *bytes.Buffer

	// State
	pane       DetailPane
	lastPane   DetailPane // restored when help is closed
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
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	StatusOK      lipgloss.Style
	StatusError   lipgloss.Style
}

// NewStyles creates the styles for the current color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		StatusOK: lipgloss.NewStyle().
			Foreground(scheme.Success),
		StatusError: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// entryItem is one key/value row of the entries list
type entryItem struct {
	key   string
	value string
}

func (i entryItem) FilterValue() string { return i.key }
func (i entryItem) Title() string       { return i.key }
func (i entryItem) Description() string { return i.value }

func InitialModel(store *Store) Model {
	ti := textinput.New()
	ti.Placeholder = "put KEY VALUE, get KEY, rank KEY, select N ..."
	ti.Prompt = "ordmap> "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	entries := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	entries.SetShowTitle(false)
	entries.SetShowHelp(false)
	entries.SetFilteringEnabled(false)

	detail := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	output := &bytes.Buffer{}
	m := Model{
		prompt:          ti,
		entries:         entries,
		detail:          detail,
		store:           store,
		shell:           NewShell(store, output),
		output:          output,
		pane:            PaneTree,
		lastPane:        PaneTree,
		focusIndex:      focusPrompt,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.refreshEntries()
	m.refreshDetail()
	return m
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
			m.focusIndex = (m.focusIndex + 1) % focusCount
			if m.focusIndex == focusPrompt {
				return m, m.prompt.Focus()
			}
			m.prompt.Blur()
			return m, nil
		case "f1":
			if m.pane == PaneHelp {
				m.pane = m.lastPane
			} else {
				m.lastPane = m.pane
				m.pane = PaneHelp
			}
			m.refreshDetail()
			return m, nil
		case "f2":
			if m.pane == PaneTree {
				m.pane = PaneOutput
			} else {
				m.pane = PaneTree
			}
			m.refreshDetail()
			return m, nil
		case "ctrl+y":
			m.copySelectedKey()
			return m, nil
		case "enter":
			if m.focusIndex == focusPrompt {
				line := m.prompt.Value()
				m.prompt.SetValue("")
				if m.runCommand(line) {
					return m, tea.Quit
				}
				return m, nil
			}
		}
		return m.updateFocused(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshDetail()
		m.ready = true
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards a message to the focused component
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focusIndex {
	case focusPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	case focusEntries:
		m.entries, cmd = m.entries.Update(msg)
	case focusDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

// runCommand executes one shell line and reports whether to quit
func (m *Model) runCommand(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}

	m.output.Reset()
	err := m.shell.Exec(line)
	if errors.Is(err, errQuit) {
		return true
	}
	if err != nil {
		m.status = fmt.Sprintf("✗ %s: %v", line, err)
		m.statusErr = true
	} else {
		m.status = fmt.Sprintf("✓ %s", line)
		m.statusErr = false
	}

	// drawing and listing commands read best in the output pane
	if m.output.Len() > 0 {
		m.pane = PaneOutput
	}
	m.refreshEntries()
	m.refreshDetail()
	return false
}

func (m *Model) copySelectedKey() {
	item, ok := m.entries.SelectedItem().(entryItem)
	if !ok {
		m.status = "✗ nothing selected"
		m.statusErr = true
		return
	}
	if err := clipboard.WriteAll(item.key); err != nil {
		m.status = fmt.Sprintf("✗ clipboard: %v", err)
		m.statusErr = true
		return
	}
	m.status = fmt.Sprintf("📋 copied %q", item.key)
	m.statusErr = false
}

func (m *Model) refreshEntries() {
	tree := m.store.Tree()
	items := make([]list.Item, 0, tree.Size())
	for k, v := range tree.All() {
		items = append(items, entryItem{key: k, value: v})
	}
	m.entries.SetItems(items)
}

func (m *Model) refreshDetail() {
	switch m.pane {
	case PaneHelp:
		helpTxt := usageMarkdown()
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(helpTxt); err == nil {
				helpTxt = rendered
			}
		}
		m.detail.SetContent(helpTxt)
	case PaneOutput:
		if m.output.Len() == 0 {
			m.detail.SetContent("Run a command to see its output...")
		} else {
			m.detail.SetContent(m.output.String())
		}
	default:
		var sb strings.Builder
		if _, err := m.store.Tree().Draw(&sb, true); err != nil || sb.Len() == 0 {
			m.detail.SetContent("(empty tree)")
		} else {
			m.detail.SetContent(sb.String())
		}
	}
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.prompt.Width = leftWidth - 4 - len(m.prompt.Prompt)
	m.entries.SetSize(leftWidth-2, listHeight-2)
	m.detail.Width = rightWidth - 2
	m.detail.Height = inputHeight + listHeight
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	box := func(focused bool, title string, width, height int, content string) string {
		style := m.styles.BorderBlurred
		if focused {
			style = m.styles.BorderFocused
			title += " (Active)"
		}
		return style.
			Width(width).
			Height(height).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Width(width-4).Render(title),
				content,
			))
	}

	inputBox := box(m.focusIndex == focusPrompt, " ⌨ Command", leftWidth, inputHeight, m.prompt.View())
	entriesTitle := fmt.Sprintf(" 📋 Entries (%d)", m.store.Tree().Size())
	entriesBox := box(m.focusIndex == focusEntries, entriesTitle, leftWidth, listHeight, m.entries.View())

	var detailTitle string
	switch m.pane {
	case PaneHelp:
		detailTitle = " 📖 Help"
	case PaneOutput:
		detailTitle = " 📤 Output"
	default:
		detailTitle = fmt.Sprintf(" 🌳 Tree (height %d)", m.store.Tree().Height())
	}
	detailBox := box(m.focusIndex == focusDetail, detailTitle, rightWidth, inputHeight+listHeight+2, m.detail.View())

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, entriesBox),
		detailBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) renderStatus() string {
	style := m.styles.StatusOK
	if m.statusErr {
		style = m.styles.StatusError
	}
	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(style.Render(m.status))
}

// renderHelp renders the key help footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "f1", "f2", "ctrl+y", "esc"}
	descs := []string{"run command", "switch focus", "help", "tree/output", "copy key", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the browser on the given store
func runBubbleTeaApp(store *Store) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(store),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
