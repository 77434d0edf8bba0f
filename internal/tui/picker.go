// Package tui provides the interactive environment picker used when
// mlr runs on a terminal without an explicit environment argument.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modulair/modulair/internal/metadata"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("14")).
	Bold(true)

// Item is one selectable environment with its owner.
type Item struct {
	EnvName string
	Source  metadata.Source
}

// Title implements list.DefaultItem.
func (i Item) Title() string { return i.EnvName }

// Description implements list.DefaultItem.
func (i Item) Description() string {
	if i.Source.Type == metadata.SourceUser {
		return "user environment"
	}
	return fmt.Sprintf("shared by group %s", i.Source.Name)
}

// FilterValue implements list.Item.
func (i Item) FilterValue() string { return i.EnvName }

// ItemsFromMerged flattens a merged view into picker items, user
// environments first, then groups in membership order.
func ItemsFromMerged(m *metadata.Merged, user metadata.Source) []Item {
	var items []Item
	for _, env := range m.User.Environments {
		items = append(items, Item{EnvName: env.Name(), Source: user})
	}
	for _, group := range m.GroupOrder {
		for _, env := range m.Groups[group].Environments {
			items = append(items, Item{EnvName: env.Name(), Source: metadata.GroupSource(group)})
		}
	}
	return items
}

type model struct {
	list   list.Model
	choice *Item
}

func newModel(title string, items []Item) model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)

	return model{list: l}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(Item); ok {
				m.choice = &it
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m model) View() string {
	return m.list.View()
}

// Pick runs the picker and returns the chosen item, or nil if the user
// cancelled.
func Pick(title string, items []Item) (*Item, error) {
	p := tea.NewProgram(newModel(title, items), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}
	return final.(model).choice, nil
}
