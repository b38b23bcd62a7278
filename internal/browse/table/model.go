package table

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	hexNotSelected = "#777777"
	hexSelected    = "#FFFFFF"
)

const notFound = -1

// headerLines is the header row plus the line the view ends on.
const headerLines = 2

var NoMatchFound = errors.New("no row matched expression")

var (
	styleHeaderRow          = lipgloss.NewStyle().Foreground(lipgloss.Color(hexNotSelected)).Bold(true)
	styleDataRowNotSelected = lipgloss.NewStyle().Foreground(lipgloss.Color(hexNotSelected))
	styleDataRowSelected    = lipgloss.NewStyle().Foreground(lipgloss.Color(hexSelected))
)

type Column struct {
	Title string
	Width int
}

// Row is one line of the table. Cells are rendered in column order.
type Row interface {
	Cells() []string
	Matches(expr string) bool
}

// Model is a scrolling table with a selected row. Only the rows between
// offset and offset+visible are rendered; the selection is always among
// them.
type Model struct {
	columns []Column
	rows    []Row

	offset  int
	visible int
	cursor  int
	width   int

	findExpression string
}

func New(columns []Column, rows []Row) Model {
	return Model{
		columns: columns,
		rows:    rows,
		visible: 10,
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		return m.selectRow(m.cursor - 1), nil
	case "down", "j":
		return m.selectRow(m.cursor + 1), nil
	case "g":
		return m.selectRow(0), nil
	case "G":
		return m.selectRow(len(m.rows) - 1), nil
	case "w":
		return m.pageUp(), nil
	case "z":
		return m.pageDown(), nil
	}

	return m, nil
}

func (m Model) View() string {
	output := m.renderHeader()

	for i := m.offset; i < m.offset+m.visible; i++ {
		if i >= len(m.rows) {
			output += "\n"
			continue
		}
		output += m.renderRow(m.rows[i], i == m.cursor)
	}

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(output)
	}

	return output
}

// SetHeight sizes the table to h lines including its header.
func (m Model) SetHeight(h int) Model {
	m.visible = h - headerLines
	if m.visible < 1 {
		m.visible = 1
	}
	return m.selectRow(m.cursor)
}

func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

func (m Model) Len() int {
	return len(m.rows)
}

// IndexSelected is the index of the selected row, or -1 when the table has
// no rows.
func (m Model) IndexSelected() int {
	if len(m.rows) == 0 {
		return notFound
	}

	return m.cursor
}

// FindExpression is the expression of the last Find, if any.
func (m Model) FindExpression() string {
	return m.findExpression
}

// Find selects the first row matching expr.
func (m Model) Find(expr string) (Model, error) {
	for i, r := range m.rows {
		if r.Matches(expr) {
			m.findExpression = expr
			return m.selectRow(i), nil
		}
	}

	return Model{}, NoMatchFound
}

// FindNext selects the next row after the selection that matches the last
// expression, wrapping at the end.
func (m Model) FindNext() (Model, error) {
	return m.findFrom(1)
}

func (m Model) FindPrevious() (Model, error) {
	return m.findFrom(-1)
}

func (m Model) findFrom(step int) (Model, error) {
	n := len(m.rows)
	for k := 1; k < n; k++ {
		i := ((m.cursor+step*k)%n + n) % n
		if m.rows[i].Matches(m.findExpression) {
			return m.selectRow(i), nil
		}
	}

	return Model{}, NoMatchFound
}

// selectRow moves the selection to i, clamped to the rows, and scrolls just
// enough to keep it visible.
func (m Model) selectRow(i int) Model {
	if len(m.rows) == 0 {
		return m
	}

	if last := len(m.rows) - 1; i > last {
		i = last
	}
	if i < 0 {
		i = 0
	}

	m.cursor = i
	switch {
	case i < m.offset:
		m.offset = i
	case i >= m.offset+m.visible:
		m.offset = i - m.visible + 1
	}

	return m
}

// pageUp goes to the top visible row, or a page further up when already
// there.
func (m Model) pageUp() Model {
	if m.cursor > m.offset {
		return m.selectRow(m.offset)
	}

	return m.selectRow(m.cursor - m.visible)
}

func (m Model) pageDown() Model {
	if bottom := m.offset + m.visible - 1; m.cursor < bottom {
		return m.selectRow(bottom)
	}

	return m.selectRow(m.cursor + m.visible)
}

func (m Model) renderHeader() string {
	titles := make([]string, 0, len(m.columns))
	for _, c := range m.columns {
		titles = append(titles, c.Title)
	}

	return styleHeaderRow.Render("  "+m.renderCells(titles)) + "\n"
}

func (m Model) renderRow(r Row, isSelected bool) string {
	if isSelected {
		return styleDataRowSelected.Render("> "+m.renderCells(r.Cells())) + "\n"
	}

	return styleDataRowNotSelected.Render("  "+m.renderCells(r.Cells())) + "\n"
}

func (m Model) renderCells(cells []string) string {
	output := ""
	for i, c := range m.columns {
		content := ""
		if i < len(cells) {
			content = cells[i]
		}
		output += renderCell(truncate(content, c.Width-2), c.Width)
	}

	return output
}

func renderCell(content string, size int) string {
	padSize := size - lipgloss.Width(content)
	if padSize < 0 {
		padSize = 0
	}

	return lipgloss.NewStyle().PaddingRight(padSize).Render(content)
}

// truncate keeps the tail of long values, where paths and SPDX IDs differ
// most.
func truncate(content string, size int) string {
	runes := []rune(content)
	if len(runes) <= size || size < 2 {
		return content
	}

	return "…" + string(runes[len(runes)-size+1:])
}
