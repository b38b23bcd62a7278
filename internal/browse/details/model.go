package details

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	detailsStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#222233"))
	fieldNameStyle  = lipgloss.NewStyle().Inherit(detailsStyle).Foreground(lipgloss.Color("#aaaaaa"))
	fieldValueStyle = lipgloss.NewStyle().Inherit(detailsStyle).Foreground(lipgloss.Color("#ffffff"))
)

// Field is one labelled line of the pane. An empty value is shown as "-".
type Field struct {
	Name  string
	Value string
}

type Model struct {
	height, width int

	fields []Field
}

func (m Model) View() string {
	lines := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		lines = append(lines, m.renderFieldNameValue(f.Name, f.Value))
	}

	return detailsStyle.Height(m.height).MaxHeight(m.height).Width(m.width).Render(strings.Join(lines, "\n"))
}

func (m Model) SetHeight(h int) Model {
	m.height = h
	return m
}

func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

func (m Model) For(fields []Field) Model {
	m.fields = fields
	return m
}

func (m Model) renderFieldNameValue(name, value string) string {
	if value == "" {
		value = "-"
	}

	renderedName := fieldNameStyle.Render(name + ":")
	renderedName = stripANSIReset(renderedName)
	renderedValue := fieldValueStyle.Render(value)

	return renderedName + " " + renderedValue
}

func stripANSIReset(in string) string {
	const resetSequence = "\x1b[0m"
	return strings.Replace(in, resetSequence, "", -1)
}
