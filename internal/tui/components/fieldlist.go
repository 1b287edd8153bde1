package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jakoblorz/go-mpxj/internal/tui"
)

// FieldRow is one line of a FieldList
type FieldRow struct {
	Key     string
	Label   string
	Type    string
	Value   string
	Present bool
}

// FieldListModel is a scrollable list of record fields. Absent fields are
// hidden until toggled with "a".
type FieldListModel struct {
	title   string
	rows    []FieldRow
	showAll bool
	cursor  int
	offset  int
	height  int
	done    bool
}

const defaultFieldListHeight = 20

// NewFieldList creates a new field list component
func NewFieldList(title string, rows []FieldRow) FieldListModel {
	return FieldListModel{
		title:  title,
		rows:   rows,
		height: defaultFieldListHeight,
	}
}

// Init initializes the component
func (m FieldListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m FieldListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, description and help lines
		m.height = max(msg.Height-6, 1)
		m.clamp()
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(len(m.visible())-1, 0)
		case "a":
			m.showAll = !m.showAll
			m.cursor = 0
			m.offset = 0
		case "ctrl+c", "q", "esc", "enter":
			m.done = true
			return m, tea.Quit
		}
		m.clamp()
	}
	return m, nil
}

func (m *FieldListModel) clamp() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m FieldListModel) visible() []FieldRow {
	if m.showAll {
		return m.rows
	}

	out := make([]FieldRow, 0, len(m.rows))
	for _, r := range m.rows {
		if r.Present {
			out = append(out, r)
		}
	}
	return out
}

// View renders the component
func (m FieldListModel) View() string {
	if m.done {
		return ""
	}

	rows := m.visible()

	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.Label))
	}

	var b strings.Builder
	b.WriteString(tui.HeaderStyle.Render(m.title))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(rows))
	for i := m.offset; i < end; i++ {
		r := rows[i]

		cursor := " "
		labelStyle := tui.LabelStyle
		if i == m.cursor {
			cursor = tui.SelectedStyle.Render("›")
			labelStyle = tui.SelectedStyle
		}

		value := r.Value
		if !r.Present {
			value = tui.AbsentStyle.Render("(absent)")
		}

		label := labelStyle.Render(r.Label + strings.Repeat(" ", width-lipgloss.Width(r.Label)))
		b.WriteString(fmt.Sprintf("%s %s  %s\n", cursor, label, value))
	}

	if len(rows) == 0 {
		b.WriteString(tui.SubtleStyle.Render("no populated fields"))
		b.WriteString("\n")
	} else if m.cursor < len(rows) {
		r := rows[m.cursor]
		b.WriteString(tui.DescStyle.Render(fmt.Sprintf("%s (%s)", r.Key, r.Type)))
		b.WriteString("\n")
	}

	help := "↑/↓ move • a toggle absent fields • q back"
	b.WriteString(tui.HelpStyle.Render(fmt.Sprintf("%d/%d fields • %s", len(rows), len(m.rows), help)))

	return b.String()
}

// Selected returns the row under the cursor
func (m FieldListModel) Selected() (FieldRow, bool) {
	rows := m.visible()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return FieldRow{}, false
	}
	return rows[m.cursor], true
}

// IsDone returns whether the user left the list
func (m FieldListModel) IsDone() bool {
	return m.done
}
