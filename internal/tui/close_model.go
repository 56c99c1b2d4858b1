package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/cajafuerte/arqueo/internal/models"
	"github.com/cajafuerte/arqueo/internal/parser"
	"github.com/cajafuerte/arqueo/internal/reconcile"
	"github.com/cajafuerte/arqueo/internal/session"
)

// CloseStep is the current phase of the close-session flow.
type CloseStep int

const (
	StepCount CloseStep = iota // count bills against the expected balance
	StepRetiro                 // confirm the withdrawal amount
	StepClosed
)

// CloseDeps is what the close screen needs from the outside.
type CloseDeps struct {
	Tracker  *session.Tracker
	ArcoID   uint
	Turno    string
	Expected decimal.Decimal // saldo_total at the time the screen opened
}

// CloseModel is the TUI model for reconciling and closing a session.
type CloseModel struct {
	deps        CloseDeps
	currentStep CloseStep
	width       int
	height      int

	count       *reconcile.Count
	cursor      int // row index: one per denomination, resto last
	restoInput  textinput.Model
	retiroInput textinput.Model

	// State
	closing   bool // in-flight guard for the close request
	err       error
	inlineErr string
	closed    bool
	cancelled bool
	retiro    decimal.Decimal
	saldo     *models.Saldo
}

// closedMsg reports the outcome of the close request.
type closedMsg struct {
	saldo *models.Saldo
	err   error
}

// NewCloseModel creates the reconciliation/close model.
func NewCloseModel(deps CloseDeps) CloseModel {
	resto := textinput.New()
	resto.Placeholder = "0,00"
	resto.CharLimit = 15
	resto.Width = 12
	resto.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	resto.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	retiro := textinput.New()
	retiro.Placeholder = "0,00"
	retiro.CharLimit = 15
	retiro.Width = 12
	retiro.TextStyle = resto.TextStyle
	retiro.Cursor.Style = resto.Cursor.Style

	return CloseModel{
		deps:        deps,
		currentStep: StepCount,
		count:       reconcile.NewCount(),
		restoInput:  resto,
		retiroInput: retiro,
	}
}

// Init initializes the model.
func (m CloseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m CloseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case closedMsg:
		m.closing = false
		if msg.err != nil {
			m.inlineErr = msg.err.Error()
			return m, nil
		}
		m.saldo = msg.saldo
		m.closed = true
		m.currentStep = StepClosed
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.cancelled = true
			return m, tea.Quit
		}
		if m.currentStep == StepCount {
			return m.handleCountKeys(msg)
		}
		return m.handleRetiroKeys(msg)
	}
	return m, nil
}

func (m CloseModel) handleCountKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	restoRow := len(reconcile.Denominations)

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			if m.cursor == restoRow {
				m.syncResto()
				m.restoInput.Blur()
			}
			m.cursor--
		}
		return m, nil
	case "down", "j", "tab":
		if m.cursor < restoRow {
			m.cursor++
			if m.cursor == restoRow {
				m.restoInput.Focus()
				return m, textinput.Blink
			}
		}
		return m, nil
	case "enter":
		if m.cursor == restoRow {
			m.syncResto()
		}
		m.currentStep = StepRetiro
		m.restoInput.Blur()
		m.retiroInput.SetValue(m.count.Total().StringFixed(2))
		m.retiroInput.Focus()
		return m, textinput.Blink
	}

	if m.cursor < restoRow {
		denom := reconcile.Denominations[m.cursor]
		switch msg.String() {
		case "+", "right", "l":
			m.count.Increment(denom)
		case "-", "left", "h":
			m.count.Decrement(denom)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.restoInput, cmd = m.restoInput.Update(msg)
	m.syncResto()
	return m, cmd
}

func (m CloseModel) handleRetiroKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.closing {
			return m, nil // close already in flight, ignore repeats
		}
		retiro, err := parseOptionalAmount(m.retiroInput.Value())
		if err != nil {
			m.inlineErr = "El monto de retiro debe ser un número válido"
			return m, nil
		}
		m.inlineErr = ""
		m.retiro = retiro
		m.closing = true
		return m, m.closeCmd(retiro)
	case "backspace":
		if m.retiroInput.Value() == "" {
			m.currentStep = StepCount
			m.retiroInput.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.retiroInput, cmd = m.retiroInput.Update(msg)
	return m, cmd
}

// syncResto mirrors the resto input into the count; unparseable text counts
// as zero so the total never goes stale.
func (m *CloseModel) syncResto() {
	if amount, err := parseOptionalAmount(m.restoInput.Value()); err == nil {
		m.count.SetResto(amount)
	} else {
		m.count.SetResto(decimal.Zero)
	}
}

// closeCmd sends the close-with-withdrawal request. The server creates the
// withdrawal inside the close, so this is a single call.
func (m CloseModel) closeCmd(retiro decimal.Decimal) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		saldo, err := deps.Tracker.Close(ctx, deps.ArcoID, retiro)
		return closedMsg{saldo: saldo, err: err}
	}
}

func parseOptionalAmount(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	d, err := parser.ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative amount")
	}
	return d, nil
}

// View renders the reconciliation screen.
func (m CloseModel) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Cerrar arqueo #%d", m.deps.ArcoID)) + "\n")
	b.WriteString(mutedStyle.Render("Saldo del sistema: "+models.FormatARS(m.deps.Expected)) + "\n\n")

	for i, denom := range reconcile.Denominations {
		line := fmt.Sprintf("$%-7s × %-3d = %s",
			models.FormatNumber(decimal.NewFromInt(denom)),
			m.count.Bills(denom),
			models.FormatARS(decimal.NewFromInt(denom).Mul(decimal.NewFromInt(int64(m.count.Bills(denom))))),
		)
		if m.currentStep == StepCount && m.cursor == i {
			b.WriteString(selectedStyle.Render("› "+line) + "\n")
		} else {
			b.WriteString(labelStyle.Render("  "+line) + "\n")
		}
	}
	restoLine := "Resto: " + m.restoInput.View()
	if m.currentStep == StepCount && m.cursor == len(reconcile.Denominations) {
		b.WriteString(selectedStyle.Render("› ") + labelStyle.Render(restoLine) + "\n")
	} else {
		b.WriteString("  " + labelStyle.Render(restoLine) + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render(m.count.Breakdown()) + "\n")

	counted := m.count.Total()
	diff, tag := reconcile.Variance(counted, m.deps.Expected)
	b.WriteString(labelStyle.Render("Total contado: "+models.FormatARS(counted)) + "\n")
	b.WriteString(labelStyle.Render("Diferencia: ") + varianceStyled(diff, tag) + "\n")

	if m.currentStep == StepRetiro {
		label := "Retiro de caja: " + m.retiroInput.View() + "  (Enter para cerrar el arqueo)"
		if m.closing {
			label = "Cerrando arqueo y registrando retiro..."
		}
		b.WriteString("\n" + labelStyle.Render(label) + "\n")
	}

	if m.inlineErr != "" {
		b.WriteString("\n" + errStyle.Render(m.inlineErr) + "\n")
	}

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).
		Render("↑/↓ fila · +/- billetes · enter continuar · esc cancelar"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String()) + "\n"
}

// varianceStyled renders the difference with its tag: surplus green,
// shortfall red, exact neutral.
func varianceStyled(diff decimal.Decimal, tag reconcile.VarianceTag) string {
	var color string
	switch tag {
	case reconcile.Sobrante:
		color = ColorSuccess
	case reconcile.Faltante:
		color = ColorError
	default:
		color = ColorNeutral
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).
		Render(models.FormatARS(diff) + " (" + tag.String() + ")")
}
