package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/ssh-connect/internal/errors"
)

func testEntries() []MenuEntry {
	return []MenuEntry{
		{Name: "Router", IP: "10.0.0.1"},
		{Name: "Nas", IP: "10.0.0.20"},
		{Name: "Pi", IP: "10.0.0.30"},
	}
}

func plainStyles() Styles {
	th, _ := LookupTheme(DefaultTheme)
	return NewStyles(th, asciiRenderer())
}

func press(m HostPickerModel, msgs ...tea.KeyMsg) (HostPickerModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(HostPickerModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFormatMenuRow(t *testing.T) {
	s := plainStyles()
	e := MenuEntry{Name: "Nas", IP: "10.0.0.20"}

	assert.Equal(t, "   3 Nas                  10.0.0.20", FormatMenuRow(s, 3, e, false))
	assert.Equal(t, "❯ 12 Nas                  10.0.0.20", FormatMenuRow(s, 12, e, true))
}

func TestHostItem_FilterValue(t *testing.T) {
	item := hostItem{entry: MenuEntry{Name: "Nas", IP: "10.0.0.20"}, number: 1}
	assert.Equal(t, "Nas 10.0.0.20", item.FilterValue())
}

func TestHostPicker_StartsAtPosition(t *testing.T) {
	m := NewHostPickerModel(testEntries(), 2, plainStyles())
	assert.Equal(t, 2, m.Cursor())
}

func TestHostPicker_OutOfRangeStart(t *testing.T) {
	for _, start := range []int{-1, 3, 99} {
		m := NewHostPickerModel(testEntries(), start, plainStyles())
		assert.Equal(t, 0, m.Cursor(), "start %d", start)
	}
}

func TestHostPicker_Navigation(t *testing.T) {
	m := NewHostPickerModel(testEntries(), 0, plainStyles())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor())

	m, _ = press(m, runes("j"))
	assert.Equal(t, 2, m.Cursor())

	m, _ = press(m, runes("k"), tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor(), "cursor stays on the first row")
}

func TestHostPicker_EnterSelects(t *testing.T) {
	m := NewHostPickerModel(testEntries(), 1, plainStyles())

	m, cmd := press(m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})

	idx, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestHostPicker_Cancel(t *testing.T) {
	keys := map[string]tea.KeyMsg{
		"q":      runes("q"),
		"esc":    {Type: tea.KeyEsc},
		"ctrl+c": {Type: tea.KeyCtrlC},
	}

	for name, k := range keys {
		t.Run(name, func(t *testing.T) {
			m := NewHostPickerModel(testEntries(), 1, plainStyles())
			m, cmd := press(m, k)

			_, ok := m.Selected()
			assert.False(t, ok)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestHostPicker_View(t *testing.T) {
	m := NewHostPickerModel(testEntries(), 1, plainStyles())
	view := m.View()

	assert.Contains(t, view, MenuTitle)
	assert.Contains(t, view, "Router")
	assert.Contains(t, view, "❯  2 Nas")
	assert.True(t, strings.Index(view, "Router") < strings.Index(view, "Pi"))
}

func TestPickHostWithOutput_NoHosts(t *testing.T) {
	th, _ := LookupTheme(DefaultTheme)
	_, ok, err := PickHostWithOutput(nil, 0, th, &bytes.Buffer{}, strings.NewReader(""))

	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
