package summary

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/openvex/sbom-embed/pkg/formats"
)

const widthKey = 32

var (
	summaryStyle = lipgloss.NewStyle().Background(lipgloss.Color("#223322"))
	headingStyle = lipgloss.NewStyle().Inherit(summaryStyle).Foreground(lipgloss.Color("#aaaaaa")).Bold(true)
	keyStyle     = lipgloss.NewStyle().Inherit(summaryStyle).Foreground(lipgloss.Color("#ffffff"))
)

// Model shows license and file type counts side by side.
type Model struct {
	height, width int

	licenses []formats.Count
	types    []formats.Count
}

func New(files []formats.File) Model {
	return Model{
		licenses: formats.LicenseCounts(files),
		types:    formats.TypeCounts(files),
	}
}

func (m Model) View() string {
	left := renderCounts("Licenses", m.licenses)
	right := renderCounts("File types", m.types)

	output := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	return summaryStyle.Height(m.height).MaxHeight(m.height).Width(m.width).Render(output)
}

func (m Model) SetHeight(h int) Model {
	m.height = h
	return m
}

func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

func renderCounts(heading string, counts []formats.Count) string {
	output := headingStyle.Render(heading)

	if len(counts) == 0 {
		return output + "\n" + keyStyle.Render("none")
	}

	for _, c := range counts {
		key := c.Key
		if pad := widthKey - lipgloss.Width(key); pad > 0 {
			key = lipgloss.NewStyle().PaddingRight(pad).Render(key)
		}
		output += "\n" + keyStyle.Render(key) + keyStyle.Render(fmt.Sprintf("%6d", c.Count))
	}

	return output
}
