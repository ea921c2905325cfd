package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{}
}

func testEntries() []manifestEntry {
	return []manifestEntry{
		{path: "corrupt.toml", summary: "modify files", valid: true},
		{path: "broken.toml", valid: false},
		{path: "grep.toml", summary: "search files", valid: true},
	}
}

func TestManifestListNavigation(t *testing.T) {
	m := newManifestListModel(testEntries())

	next, _ := m.Update(keyMsg("down"))
	m = next.(manifestListModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(manifestListModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.cursor)
	}

	// Cursor stays in bounds at the top.
	next, _ = m.Update(keyMsg("up"))
	m = next.(manifestListModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}
}

func TestManifestListSelect(t *testing.T) {
	m := newManifestListModel(testEntries())

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(manifestListModel)
	if m.selected == nil {
		t.Fatal("selected = nil after enter on a valid entry")
	}
	if m.selected.path != "corrupt.toml" {
		t.Errorf("selected.path = %q, want %q", m.selected.path, "corrupt.toml")
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestManifestListSelectSkipsInvalid(t *testing.T) {
	m := newManifestListModel(testEntries())
	m.cursor = 1 // broken.toml

	next, _ := m.Update(keyMsg("enter"))
	m = next.(manifestListModel)
	if m.selected != nil {
		t.Errorf("selected = %v for an invalid entry, want nil", m.selected)
	}
}

func TestManifestListQuit(t *testing.T) {
	m := newManifestListModel(testEntries())

	next, cmd := m.Update(keyMsg("q"))
	m = next.(manifestListModel)
	if m.selected != nil {
		t.Error("q should not select anything")
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestManifestListView(t *testing.T) {
	m := newManifestListModel(testEntries())
	view := m.View()

	for _, want := range []string{"Select Page Manifest", "corrupt.toml", "broken.toml", "grep.toml"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
