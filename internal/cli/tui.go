package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pacak/semantic/pkg/errors"
	"github.com/pacak/semantic/pkg/manifest"
)

// List styles
var (
	listTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// manifestEntry is one selectable manifest file with its load status.
type manifestEntry struct {
	path    string
	summary string // page summary when the manifest loads cleanly
	valid   bool
}

// newManifestEntry probes a manifest file so the picker can show whether
// it parses and what page it describes.
func newManifestEntry(path string) manifestEntry {
	page, err := manifest.Load(path)
	if err != nil {
		return manifestEntry{path: path}
	}
	return manifestEntry{path: path, summary: page.Page.Summary, valid: true}
}

// manifestListModel is the bubbletea model for interactive manifest selection.
type manifestListModel struct {
	manifests []manifestEntry
	cursor    int
	selected  *manifestEntry
}

// newManifestListModel creates a new manifest list model.
func newManifestListModel(manifests []manifestEntry) manifestListModel {
	return manifestListModel{manifests: manifests}
}

func (m manifestListModel) Init() tea.Cmd {
	return nil
}

func (m manifestListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.manifests)-1 {
				m.cursor++
			}
		case "enter":
			if m.manifests[m.cursor].valid {
				m.selected = &m.manifests[m.cursor]
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m manifestListModel) View() string {
	var b strings.Builder

	b.WriteString(listTitleStyle.Render("Select Page Manifest"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, mf := range m.manifests {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var status string
		if mf.valid {
			status = styleIconSuccess.Render("*")
		} else {
			status = styleIconWarning.Render("!")
		}

		line := fmt.Sprintf("%s%s %-25s  %s", cursor, status, mf.path, listDimStyle.Render(mf.summary))

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if !mf.valid {
			b.WriteString(listDimStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s loads cleanly   %s fails to load\n",
		styleIconSuccess.Render("*"), styleIconWarning.Render("!")))

	return b.String()
}

// pickManifest runs the interactive selector over every .toml file in the
// current directory and returns the chosen path.
func pickManifest() (string, error) {
	paths, err := filepath.Glob("*.toml")
	if err != nil || len(paths) == 0 {
		return "", errors.New(errors.ErrCodeNotFound, "no .toml manifests found in the current directory")
	}
	sort.Strings(paths)

	entries := make([]manifestEntry, len(paths))
	for i, p := range paths {
		entries[i] = newManifestEntry(p)
	}

	prog := tea.NewProgram(newManifestListModel(entries))
	final, err := prog.Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "manifest selection failed")
	}

	model, ok := final.(manifestListModel)
	if !ok || model.selected == nil {
		return "", errors.New(errors.ErrCodeNotFound, "no manifest selected")
	}
	return model.selected.path, nil
}
