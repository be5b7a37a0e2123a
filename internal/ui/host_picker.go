package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/ssh-connect/internal/errors"
)

// MenuTitle heads the host menu.
const MenuTitle = "Choose host to connect to:"

// MenuEntry is one row of the host menu.
type MenuEntry struct {
	Name string
	IP   string
}

// hostItem implements list.Item for the Bubbles list component.
type hostItem struct {
	entry MenuEntry
	// number is the 1-based position shown in the index column.
	number int
}

func (i hostItem) FilterValue() string {
	return i.entry.Name + " " + i.entry.IP
}

// hostDelegate draws each host on a single line:
//
//	❯  3 Nas                  192.168.1.20
type hostDelegate struct {
	styles Styles
}

func (d hostDelegate) Height() int                             { return 1 }
func (d hostDelegate) Spacing() int                            { return 0 }
func (d hostDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d hostDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(hostItem)
	if !ok {
		return
	}
	fmt.Fprint(w, FormatMenuRow(d.styles, it.number, it.entry, index == m.Index()))
}

// FormatMenuRow renders one menu line. number is 1-based.
func FormatMenuRow(s Styles, number int, e MenuEntry, selected bool) string {
	arrow, idx, name, ip := s.Cursor, s.Index, s.Name, s.IP
	mark := " "
	if selected {
		arrow, idx, name, ip = s.SelCursor, s.SelIndex, s.SelName, s.SelIP
		mark = SymbolCursor
	}
	return arrow.Render(mark) + " " +
		idx.Render(fmt.Sprintf("%2d", number)) + " " +
		name.Render(fmt.Sprintf("%-20s", e.Name)) + " " +
		ip.Render(e.IP)
}

// HostPickerModel is a Bubble Tea model for selecting a host.
type HostPickerModel struct {
	list     list.Model
	selected int
	quitting bool
}

// hostPickerKeyMap defines key bindings for the host picker. Cursor movement
// (up/k, down/j) comes from the list's own keymap.
type hostPickerKeyMap struct {
	Enter key.Binding
	Quit  key.Binding
}

var hostPickerKeys = hostPickerKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "connect"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "cancel"),
	),
}

// NewHostPickerModel creates a picker over entries with the cursor on start.
// An out-of-range start leaves the cursor on the first row.
func NewHostPickerModel(entries []MenuEntry, start int, styles Styles) HostPickerModel {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = hostItem{entry: e, number: i + 1}
	}

	height := len(entries) + 6
	if height > 24 {
		height = 24
	}

	l := list.New(items, hostDelegate{styles: styles}, 80, height)
	l.Title = MenuTitle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = styles.Question.Padding(0, 0, 1, 0)
	l.Styles.TitleBar = lipgloss.NewStyle()
	l.Styles.HelpStyle = styles.Index.Padding(1, 0, 0, 0)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{hostPickerKeys.Enter, hostPickerKeys.Quit}
	}

	if start > 0 && start < len(entries) {
		l.Select(start)
	}

	return HostPickerModel{list: l, selected: -1}
}

// Init implements tea.Model.
func (m HostPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HostPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, hostPickerKeys.Enter):
			if len(m.list.Items()) > 0 {
				m.selected = m.list.Index()
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, hostPickerKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		height := len(m.list.Items()) + 6
		if height > msg.Height-1 {
			height = msg.Height - 1
		}
		m.list.SetSize(msg.Width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m HostPickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Cursor returns the zero-based index under the cursor.
func (m HostPickerModel) Cursor() int {
	return m.list.Index()
}

// Selected returns the chosen index, or false if the picker was cancelled.
func (m HostPickerModel) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

// PickHost displays the host menu on the terminal.
func PickHost(entries []MenuEntry, start int, theme Theme) (int, bool, error) {
	return PickHostWithOutput(entries, start, theme, os.Stdout, os.Stdin)
}

// PickHostWithOutput displays the host menu using custom I/O. Returns the
// zero-based index picked, or false when the user cancels (q/esc/Ctrl+C).
func PickHostWithOutput(entries []MenuEntry, start int, theme Theme, output io.Writer, input io.Reader) (int, bool, error) {
	if len(entries) == 0 {
		return 0, false, errors.New(errors.ErrConfig,
			"No hosts to pick from",
			"Add hosts to your hosts file with: ssh-connect --edit")
	}

	model := NewHostPickerModel(entries, start, NewStyles(theme, NewRenderer(output)))

	p := tea.NewProgram(
		model,
		tea.WithOutput(output),
		tea.WithInput(input),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, errors.WrapWithCode(err, errors.ErrConfig,
			"Host menu failed",
			"Pass the host number directly instead, e.g. ssh-connect 2")
	}

	if m, ok := finalModel.(HostPickerModel); ok {
		idx, picked := m.Selected()
		return idx, picked, nil
	}

	return 0, false, nil
}
