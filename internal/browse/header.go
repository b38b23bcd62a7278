package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/openvex/sbom-embed/pkg/formats"
)

// headerHeight is the number of lines renderHeader produces.
const headerHeight = 2

var (
	styleTitle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	styleSubtitle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
	styleTabActive  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Underline(true)
	styleTabPassive = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
)

func renderHeader(doc formats.Document, counts [viewCount]int, active View) string {
	title := styleTitle.Render(orDefault(doc.Name, "-")) + "  " +
		styleSubtitle.Render(orDefault(doc.SPDXVersion, "-"))

	tabs := make([]string, 0, viewCount)
	for v := View(0); v < viewCount; v++ {
		label := fmt.Sprintf("[%d] %s (%d)", v+1, viewTitles[v], counts[v])
		if v == active {
			tabs = append(tabs, styleTabActive.Render(label))
		} else {
			tabs = append(tabs, styleTabPassive.Render(label))
		}
	}

	return title + "\n" + strings.Join(tabs, "  ") + "\n"
}
