package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/omnihost-tools/omnihost-ctl/internal/config"
)

// ServerEntry is one server in the configured universe, annotated with
// where it is known from.
type ServerEntry struct {
	Name    string
	Default bool     // configured default server
	Groups  []string // groups the server is a member of
	Tags    []string // tags attached to the server
	Aliases []string // short names pointing at the server
}

// BuildEntries collects every server the document knows about: group
// members, tagged servers, alias targets, and the default server.
// Entries are deduplicated and sorted by name.
func BuildEntries(doc *config.Document) []ServerEntry {
	byName := make(map[string]*ServerEntry)

	entry := func(name string) *ServerEntry {
		e, ok := byName[name]
		if !ok {
			e = &ServerEntry{Name: name}
			byName[name] = e
		}
		return e
	}

	for group, members := range doc.Groups {
		for _, server := range members {
			e := entry(server)
			e.Groups = append(e.Groups, group)
		}
	}
	for server, tags := range doc.ServerTags {
		e := entry(server)
		e.Tags = append(e.Tags, tags...)
	}
	for alias, server := range doc.Aliases {
		e := entry(server)
		e.Aliases = append(e.Aliases, alias)
	}
	if doc.DefaultServer != "" {
		entry(doc.DefaultServer).Default = true
	}

	entries := make([]ServerEntry, 0, len(byName))
	for _, e := range byName {
		sort.Strings(e.Groups)
		sort.Strings(e.Aliases)
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries
}

// serverItem implements list.Item for server display
type serverItem struct {
	entry ServerEntry
}

func (i serverItem) Title() string {
	if i.entry.Default {
		return i.entry.Name + " ★"
	}
	return i.entry.Name
}

func (i serverItem) Description() string {
	var parts []string
	if len(i.entry.Groups) > 0 {
		parts = append(parts, "groups: "+strings.Join(i.entry.Groups, ", "))
	}
	if len(i.entry.Tags) > 0 {
		parts = append(parts, "tags: "+strings.Join(i.entry.Tags, ", "))
	}
	if len(i.entry.Aliases) > 0 {
		parts = append(parts, "aliases: "+strings.Join(i.entry.Aliases, ", "))
	}
	if len(parts) == 0 {
		return "no groups, tags, or aliases"
	}
	return strings.Join(parts, " | ")
}

func (i serverItem) FilterValue() string {
	return i.entry.Name
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the server picker
type Model struct {
	list     list.Model
	selected string
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new server picker over the given entries.
func NewPicker(entries []ServerEntry) Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = serverItem{entry: e}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "OmniHost - Select Server"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(serverItem); ok {
				m.selected = item.entry.Name
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Select  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Selected returns the chosen server name, or "" when the picker was
// dismissed without a choice.
func (m Model) Selected() string {
	return m.selected
}

// RunPicker runs the interactive server picker and returns the chosen
// server name ("" when dismissed).
func RunPicker(entries []ServerEntry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	m := NewPicker(entries)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	return finalModel.(Model).Selected(), nil
}

// SimplePicker renders a non-interactive listing of the entries.
func SimplePicker(entries []ServerEntry) string {
	var sb strings.Builder

	sb.WriteString("OmniHost - Servers\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(entries) == 0 {
		sb.WriteString("No servers configured.\n")
		sb.WriteString("Add some with: omnihost group add <group> <server>\n")
		return sb.String()
	}

	for i, e := range entries {
		marker := " "
		if e.Default {
			marker = "★"
		}
		sb.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, marker, e.Name))
		desc := serverItem{entry: e}.Description()
		sb.WriteString("   " + desc + "\n\n")
	}

	return sb.String()
}
