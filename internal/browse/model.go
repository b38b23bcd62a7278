package browse

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/openvex/sbom-embed/internal/browse/details"
	"github.com/openvex/sbom-embed/internal/browse/summary"
	"github.com/openvex/sbom-embed/internal/browse/table"
	"github.com/openvex/sbom-embed/pkg/formats"
)

type model struct {
	height, width int

	data formats.Normalized

	mode   Mode
	view   View
	rows   [viewCount][]row
	tables [viewCount]table.Model
	filter textinput.Model

	pane    Pane
	details details.Model
	summary summary.Model
}

type Mode int

const (
	ModeDataScroll Mode = iota
	ModeFilterEntry
)

// View is the table currently shown: files, packages or relationships.
type View int

const (
	ViewFiles View = iota
	ViewPackages
	ViewRelationships

	viewCount
)

var viewTitles = [viewCount]string{"Files", "Packages", "Relationships"}

// Pane is the panel shown below the table.
type Pane int

const (
	PaneNone Pane = iota
	PaneDetails
	PaneSummary
	PaneDocument
)

// New keeps every table in document order.
func New(data formats.Normalized) tea.Model {
	m := model{
		data:    data,
		mode:    ModeDataScroll,
		view:    ViewFiles,
		filter:  textinput.Model{},
		summary: summary.New(data.Files),
	}

	for _, f := range data.Files {
		m.rows[ViewFiles] = append(m.rows[ViewFiles], fileRow(f))
	}
	for _, p := range data.Packages {
		m.rows[ViewPackages] = append(m.rows[ViewPackages], packageRow(p))
	}
	for _, r := range data.Relationships {
		m.rows[ViewRelationships] = append(m.rows[ViewRelationships], relationshipRow(r))
	}

	columns := [viewCount][]table.Column{fileColumns, packageColumns, relationshipColumns}
	for v := View(0); v < viewCount; v++ {
		tableRows := make([]table.Row, 0, len(m.rows[v]))
		for _, r := range m.rows[v] {
			tableRows = append(tableRows, r)
		}
		m.tables[v] = table.New(columns[v], tableRows)
	}

	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.mode {
		case ModeDataScroll:
			switch msg.String() {

			case "q":
				return m, tea.Quit

			case "/":
				m.mode = ModeFilterEntry
				m.filter = newFilterTextInput(m.view)
				m.filter.Focus()
				m = m.updateComponentSizes()
				return m, textinput.Blink

			case "n":
				if m.tables[m.view].FindExpression() != "" {
					if updatedTable, err := m.tables[m.view].FindNext(); err == nil {
						m.tables[m.view] = updatedTable
					}
					return m, nil
				}

			case "N":
				if m.tables[m.view].FindExpression() != "" {
					if updatedTable, err := m.tables[m.view].FindPrevious(); err == nil {
						m.tables[m.view] = updatedTable
					}
					return m, nil
				}

			case "1":
				return m.switchView(ViewFiles), nil

			case "2":
				return m.switchView(ViewPackages), nil

			case "3":
				return m.switchView(ViewRelationships), nil

			case "tab":
				return m.switchView((m.view + 1) % viewCount), nil

			case "d":
				m = m.togglePane(PaneDetails)
				return m, nil

			case "s":
				m = m.togglePane(PaneSummary)
				return m, nil

			case "i":
				m = m.togglePane(PaneDocument)
				return m, nil
			}

			m.tables[m.view], cmd = m.tables[m.view].Update(msg)
			return m, cmd

		case ModeFilterEntry:
			if msg.String() == "enter" {
				expr := m.filter.Value()
				if updatedTable, err := m.tables[m.view].Find(expr); err == nil {
					m.tables[m.view] = updatedTable
				}

				m.filter.Blur()
				m.mode = ModeDataScroll
				m = m.updateComponentSizes()
				return m, nil
			}

			if msg.String() == "esc" {
				m.filter.Blur()
				m.mode = ModeDataScroll
				m = m.updateComponentSizes()
				return m, nil
			}

			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width

		m = m.updateComponentSizes()

		return m, nil
	}

	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m model) switchView(v View) model {
	m.view = v
	return m
}

func (m model) togglePane(p Pane) model {
	if m.pane == p {
		m.pane = PaneNone
	} else {
		m.pane = p
	}

	return m.updateComponentSizes()
}

func (m model) updateComponentSizes() model {
	tableHeight, paneHeight := m.expectedComponentHeights()

	for v := range m.tables {
		m.tables[v] = m.tables[v].SetHeight(tableHeight).SetWidth(m.width)
	}
	m.details = m.details.SetHeight(paneHeight).SetWidth(m.width)
	m.summary = m.summary.SetHeight(paneHeight).SetWidth(m.width)

	return m
}

func (m model) View() string {
	var counts [viewCount]int
	for v := range m.rows {
		counts[v] = len(m.rows[v])
	}

	output := renderHeader(m.data.Document, counts, m.view)

	output += m.tables[m.view].View()

	if m.mode == ModeFilterEntry {
		output += "\n" + m.filter.View()
	}

	switch m.pane {
	case PaneDetails:
		if i := m.tables[m.view].IndexSelected(); i >= 0 {
			output += "\n" + m.details.For(m.rows[m.view][i].fields()).View()
		}
	case PaneSummary:
		output += "\n" + m.summary.View()
	case PaneDocument:
		output += "\n" + m.details.For(documentFields(m.data.Document)).View()
	}

	return output
}

// expectedComponentHeights splits what the header leaves between the table
// and the open pane.
func (m model) expectedComponentHeights() (table, pane int) {
	available := m.height - headerHeight
	if available < 0 {
		available = 0
	}

	table = available
	pane = 0

	if m.pane != PaneNone {
		pane = available / 2
		table = available - pane
	}

	if m.mode == ModeFilterEntry {
		table = table - 1
	}

	return
}

func newFilterTextInput(v View) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Find: "

	switch v {
	case ViewPackages:
		ti.Placeholder = "name, SPDX ID, version or license"
	case ViewRelationships:
		ti.Placeholder = "source, type or target"
	default:
		ti.Placeholder = "file, license or type"
	}

	return ti
}
