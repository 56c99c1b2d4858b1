package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cajafuerte/arqueo/internal/api"
	"github.com/cajafuerte/arqueo/internal/models"
	"github.com/cajafuerte/arqueo/internal/report"
)

// ReportDeps is what the report screen needs from the outside.
type ReportDeps struct {
	Client  *api.Client
	Filters report.Filters
}

// ReportModel is the TUI model for the filtered report view.
type ReportModel struct {
	deps   ReportDeps
	width  int
	height int

	dataset *report.Dataset
	loading bool
	loadErr error

	// Supersession: every fetch bumps generation; responses carrying an
	// older generation are stale and discarded, so the latest request wins.
	generation int

	searchInput  textinput.Model
	searchActive bool
	tipoFilter   string // "", Ingreso, Egreso

	status string // transient export/refresh feedback
}

// reportLoadedMsg delivers a fetch result tagged with its generation.
type reportLoadedMsg struct {
	generation int
	dataset    *report.Dataset
	err        error
}

// exportDoneMsg reports an export outcome.
type exportDoneMsg struct {
	path string
	err  error
}

// NewReportModel creates the report view model.
func NewReportModel(deps ReportDeps) ReportModel {
	search := textinput.New()
	search.Placeholder = "Buscar..."
	search.CharLimit = 60
	search.Width = 30
	search.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	search.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return ReportModel{
		deps:        deps,
		loading:     true,
		generation:  1,
		searchInput: search,
	}
}

// Init kicks off the first fetch.
func (m ReportModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetchCmd(m.generation))
}

func (m ReportModel) fetchCmd(generation int) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		ds, err := report.Query(ctx, deps.Client, deps.Filters)
		return reportLoadedMsg{generation: generation, dataset: ds, err: err}
	}
}

// Update handles messages.
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reportLoadedMsg:
		if msg.generation != m.generation {
			return m, nil // stale response from a superseded request
		}
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.dataset = msg.dataset
			m.applyQuickFilter()
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "Error al exportar: " + msg.err.Error()
		} else {
			m.status = "Exportado a " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		if m.searchActive {
			return m.handleSearchKeys(msg)
		}
		return m.handleTableKeys(msg)
	}
	return m, nil
}

func (m ReportModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searchActive = false
		m.searchInput.Blur()
		if msg.String() == "esc" {
			m.searchInput.SetValue("")
			m.applyQuickFilter()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyQuickFilter()
	return m, cmd
}

func (m ReportModel) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "/":
		m.searchActive = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "f":
		// Cycle the type filter; clearing it restores the search-only set.
		switch m.tipoFilter {
		case "":
			m.tipoFilter = models.TipoIngreso
		case models.TipoIngreso:
			m.tipoFilter = models.TipoEgreso
		default:
			m.tipoFilter = ""
		}
		m.applyQuickFilter()
		return m, nil

	case "r":
		m.generation++
		m.loading = true
		m.status = ""
		return m, m.fetchCmd(m.generation)

	case "e":
		if m.dataset != nil && !m.loading {
			return m, exportCmd("informe-movimientos.csv", m.dataset.ExportCSV)
		}
	case "d":
		if m.dataset != nil && !m.loading {
			ds := m.dataset
			return m, exportCmd("informe-movimientos.txt", func(w io.Writer) error {
				return ds.ExportDocument(w, time.Now())
			})
		}
	}
	return m, nil
}

func (m *ReportModel) applyQuickFilter() {
	if m.dataset != nil {
		m.dataset.QuickFilter(m.searchInput.Value(), m.tipoFilter)
	}
}

// exportCmd writes the current view to a file in the working directory.
func exportCmd(name string, write func(io.Writer) error) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Create(name)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer f.Close()
		if err := write(f); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: name}
	}
}

// View renders the report screen. Loading, fetch errors, an empty dataset
// and an empty filter result each get their own explicit state.
func (m ReportModel) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Informe de movimientos") + "\n")

	filterLine := "Filtro tipo: " + orDash(m.tipoFilter)
	if m.searchActive {
		filterLine += "  ·  Buscar: " + m.searchInput.View()
	} else if m.searchInput.Value() != "" {
		filterLine += "  ·  Buscar: " + m.searchInput.Value()
	}
	b.WriteString(mutedStyle.Render(filterLine) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(mutedStyle.Render("Cargando movimientos...") + "\n")
	case m.loadErr != nil:
		b.WriteString(errStyle.Render("Error al obtener datos: "+m.loadErr.Error()) + "\n")
		b.WriteString(mutedStyle.Render("Presiona r para reintentar.") + "\n")
	case m.dataset.Empty():
		b.WriteString(warnStyle.Render("No hay datos para mostrar.") + "\n")
	case len(m.dataset.Visible()) == 0:
		b.WriteString(warnStyle.Render("Ningún movimiento coincide con el filtro actual.") + "\n")
	default:
		b.WriteString(m.renderTable())
		b.WriteString("\n")
		for _, line := range m.dataset.Summarize().Lines() {
			b.WriteString(mutedStyle.Render(line) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + mutedStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).
		Render("/ buscar · f filtrar tipo · r recargar · e exportar CSV · d exportar informe · q salir"))
	return b.String()
}

func (m ReportModel) renderTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	columns := m.dataset.Columns
	rows := m.dataset.Visible()

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	for _, row := range rows {
		for i, col := range columns {
			if n := len(report.CellString(row[col])); n > widths[i] {
				widths[i] = n
			}
		}
	}

	maxRows := m.height - 14
	if maxRows < 5 {
		maxRows = 5
	}

	var b strings.Builder
	for i, col := range columns {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", widths[i], col)))
	}
	b.WriteString("\n")

	for n, row := range rows {
		if n == maxRows {
			b.WriteString(fmt.Sprintf("... y %d más\n", len(rows)-maxRows))
			break
		}
		for i, col := range columns {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(fmt.Sprintf("%-*s", widths[i], report.CellString(row[col])))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
