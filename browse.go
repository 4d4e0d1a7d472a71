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
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlstore/avl"
)

// BrowseModel is the Bubble Tea state of the entry browser
type BrowseModel struct {
	ready bool

	filterInput   textinput.Model
	entriesList   list.Model
	nodeViewport  viewport.Model
	focusOnList   bool
	lastFilter    string
	statusMessage string

	store           *Store
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// entryItem represents an item in the entries list
type entryItem struct {
	key   string
	value string
}

func (i entryItem) FilterValue() string { return i.key }
func (i entryItem) Title() string       { return i.key }
func (i entryItem) Description() string { return i.value }

func NewBrowseModel(store *Store) BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "Type a key prefix to filter..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	entriesList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	entriesList.SetShowTitle(false)
	entriesList.SetShowHelp(false)
	entriesList.SetFilteringEnabled(false)

	nodeViewport := viewport.New(0, 0)
	nodeViewport.SetContent("Select an entry to see its node...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := BrowseModel{
		filterInput:     ti,
		entriesList:     entriesList,
		nodeViewport:    nodeViewport,
		store:           store,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.updateEntries("")
	return m
}

func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focusOnList = !m.focusOnList
			if m.focusOnList {
				m.filterInput.Blur()
			} else {
				m.filterInput.Focus()
			}
			return m, nil
		case "enter":
			if item, ok := m.entriesList.SelectedItem().(entryItem); ok {
				if err := clipboard.WriteAll(item.value); err != nil {
					m.statusMessage = m.styles.ErrorMessage.Render("Copy failed: " + err.Error())
				} else {
					m.statusMessage = m.styles.SuccessMessage.Render("Copied value of " + item.key)
				}
			}
			return m, nil
		}

		if m.focusOnList {
			m.entriesList, cmd = m.entriesList.Update(msg)
			m.updateNode()
			return m, cmd
		}

		m.filterInput, cmd = m.filterInput.Update(msg)
		if q := m.filterInput.Value(); q != m.lastFilter {
			m.updateEntries(q)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m *BrowseModel) updateLayout() {
	listWidth := (m.width / 2) - 1
	nodeWidth := m.width - listWidth - 3
	bodyHeight := m.height - 9

	m.filterInput.Width = listWidth - 4
	m.entriesList.SetSize(listWidth-2, bodyHeight)
	m.nodeViewport.Width = nodeWidth - 2
	m.nodeViewport.Height = bodyHeight + 3
}

// updateEntries walks the tree in order and keeps the keys starting with
// prefix.
func (m *BrowseModel) updateEntries(prefix string) {
	m.lastFilter = prefix

	var items []list.Item
	for k, v := range m.store.Tree().All() {
		if strings.HasPrefix(k, prefix) {
			items = append(items, entryItem{key: k, value: v})
		}
	}
	m.entriesList.SetItems(items)
	m.entriesList.ResetSelected()
	m.updateNode()
}

func (m *BrowseModel) updateNode() {
	item, ok := m.entriesList.SelectedItem().(entryItem)
	if !ok {
		m.nodeViewport.SetContent("No entries match.")
		return
	}

	content := describeNode(m.store, item.key)
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(content); err == nil {
			content = rendered
		}
	}
	m.nodeViewport.SetContent(content)
	m.nodeViewport.GotoTop()
}

// describeNode renders the tree position of key as markdown.
func describeNode(store *Store, key string) string {
	it := store.Tree().Find(key)
	if !it.Valid() {
		return fmt.Sprintf("`%s` is no longer in the tree.", key)
	}

	keyOrDash := func(n avl.Iterator[string, string]) string {
		if !n.Valid() {
			return "-"
		}
		return "`" + n.Key() + "`"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", it.Key())
	fmt.Fprintf(&b, "```\n%s\n```\n\n", it.Value())
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| parent | %s |\n", keyOrDash(it.Parent()))
	fmt.Fprintf(&b, "| left | %s |\n", keyOrDash(it.Left()))
	fmt.Fprintf(&b, "| right | %s |\n", keyOrDash(it.Right()))
	fmt.Fprintf(&b, "| height | %d |\n", it.Height())
	fmt.Fprintf(&b, "| balance | %d |\n", it.Balance())

	prev, next := it, it
	prev.Prev()
	next.Next()
	fmt.Fprintf(&b, "\npredecessor %s, successor %s\n", keyOrDash(prev), keyOrDash(next))
	return b.String()
}

func (m BrowseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	listWidth := (m.width / 2) - 1
	nodeWidth := m.width - listWidth - 3

	inputStyle, listStyle := m.styles.BorderFocused, m.styles.BorderBlurred
	if m.focusOnList {
		inputStyle, listStyle = listStyle, inputStyle
	}

	inputBox := inputStyle.
		Width(listWidth).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(fmt.Sprintf("Filter (%d of %d entries)", len(m.entriesList.Items()), m.store.Len())),
			m.filterInput.View(),
		))
	listBox := listStyle.Width(listWidth).Render(m.entriesList.View())
	nodeBox := m.styles.BorderBlurred.
		Width(nodeWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("Node"),
			m.nodeViewport.View(),
		))

	left := lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, nodeBox)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderHelp(), m.statusMessage)
}

func (m BrowseModel) renderHelp() string {
	keys := []string{"tab", "↑/↓", "enter", "esc"}
	descs := []string{"switch focus", "move", "copy value", "quit"}

	parts := make([]string, len(keys))
	for i := range keys {
		parts[i] = m.styles.HelpKey.Render(keys[i]) + " " + m.styles.HelpDesc.Render(descs[i])
	}
	return strings.Join(parts, "  •  ")
}

// runBrowser starts the Bubble Tea entry browser
func runBrowser(store *Store) error {
	InitializeColors()

	program := tea.NewProgram(
		NewBrowseModel(store),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)

	_, err := program.Run()
	return err
}
