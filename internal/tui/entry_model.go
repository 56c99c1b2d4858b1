package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cajafuerte/arqueo/internal/models"
	"github.com/cajafuerte/arqueo/internal/parser"
	"github.com/cajafuerte/arqueo/internal/session"
	"github.com/cajafuerte/arqueo/internal/staging"
)

// EntryStep is the current step in the movement entry wizard.
type EntryStep int

const (
	StepTipo EntryStep = iota
	StepMonto
	StepConcepto
	StepDetalles
	StepConfirm
	StepStaged
)

// EntryDeps is everything the entry screen needs from the outside.
type EntryDeps struct {
	Tracker   *session.Tracker
	Profile   *models.Profile
	Turno     string
	Conceptos []models.Concept // active concepts for the hint line; may be empty
}

// EntryModel is the TUI model for staging a movement.
type EntryModel struct {
	deps        EntryDeps
	currentStep EntryStep
	inputs      []textinput.Model // monto, concepto, detalles
	width       int
	height      int

	tipo string

	// State
	saving        bool // in-flight guard: one staging request at a time
	validationErr string
	err           error
	staged        *models.PendingMovement
	cancelled     bool
}

// stagedMsg reports the outcome of the staging attempt.
type stagedMsg struct {
	mov *models.PendingMovement
	err error
}

// NewEntryModel creates the movement entry model.
func NewEntryModel(deps EntryDeps) EntryModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[0].Placeholder = "Monto, ej. 1.500,00 (requerido)"
	inputs[0].CharLimit = 20
	inputs[1].Placeholder = "ID de concepto (requerido)"
	inputs[1].CharLimit = 10
	inputs[2].Placeholder = "Detalle (Enter para omitir)"
	inputs[2].CharLimit = 200

	return EntryModel{
		deps:        deps,
		currentStep: StepTipo,
		inputs:      inputs,
		tipo:        models.TipoIngreso,
	}
}

// Init initializes the model.
func (m EntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stagedMsg:
		m.saving = false
		if msg.err != nil {
			// Gating and validation failures keep the wizard open so the
			// user can fix the entry or open the session first.
			m.validationErr = msg.err.Error()
			return m, nil
		}
		m.staged = msg.mov
		m.currentStep = StepStaged
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
		return m.handleStepKeys(msg)
	}
	return m, nil
}

func (m EntryModel) handleStepKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentStep {
	case StepTipo:
		switch msg.String() {
		case "left", "right", "tab", "i", "e":
			if m.tipo == models.TipoIngreso {
				m.tipo = models.TipoEgreso
			} else {
				m.tipo = models.TipoIngreso
			}
		case "enter":
			m.currentStep = StepMonto
			m.inputs[0].Focus()
			return m, textinput.Blink
		}
		return m, nil

	case StepMonto, StepConcepto, StepDetalles:
		idx := int(m.currentStep - StepMonto)
		if msg.String() == "enter" {
			if err := m.validateStep(); err != "" {
				m.validationErr = err
				return m, nil
			}
			m.validationErr = ""
			m.inputs[idx].Blur()
			m.currentStep++
			if m.currentStep < StepConfirm {
				m.inputs[idx+1].Focus()
				return m, textinput.Blink
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[idx], cmd = m.inputs[idx].Update(msg)
		return m, cmd

	case StepConfirm:
		switch msg.String() {
		case "enter", "y", "s":
			if m.saving {
				return m, nil // already submitting, ignore repeats
			}
			m.saving = true
			m.validationErr = ""
			return m, m.stageCmd()
		case "n", "backspace":
			m.currentStep = StepDetalles
			m.inputs[2].Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

// validateStep checks the current input before advancing; violations keep
// the wizard on the same step with an inline message.
func (m EntryModel) validateStep() string {
	switch m.currentStep {
	case StepMonto:
		if _, err := parser.ParsePositiveAmount(m.inputs[0].Value()); err != nil {
			return "El monto debe ser un número mayor a cero"
		}
	case StepConcepto:
		id, err := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
		if err != nil || id <= 0 {
			return "El concepto debe ser un ID válido"
		}
	}
	return ""
}

// stageCmd re-checks the session state and stages the movement. The buffer
// is only mutated when every field validates and the session is open.
func (m EntryModel) stageCmd() tea.Cmd {
	deps := m.deps
	monto, _ := parser.ParsePositiveAmount(m.inputs[0].Value())
	conceptID, _ := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
	details := strings.TrimSpace(m.inputs[2].Value())
	tipo := m.tipo

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if _, err := deps.Tracker.RequireOpen(ctx, deps.Turno); err != nil {
			return stagedMsg{err: err}
		}

		mov, err := staging.Add(models.PendingMovement{
			MovementType: tipo,
			Amount:       monto,
			Shift:        deps.Turno,
			ConceptID:    uint(conceptID),
			Details:      details,
			CreatedBy:    deps.Profile.UserID,
		})
		return stagedMsg{mov: mov, err: err}
	}
}

// View renders the wizard.
func (m EntryModel) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Nuevo movimiento") + "\n")
	b.WriteString(mutedStyle.Render("Turno: "+m.deps.Turno+"  ·  Usuario: "+m.deps.Profile.DisplayName()) + "\n\n")

	b.WriteString(labelStyle.Render("Tipo: ") + m.renderTipo() + "\n\n")

	fields := []string{"Monto", "Concepto", "Detalle"}
	for i, name := range fields {
		b.WriteString(labelStyle.Render(name+": ") + m.inputs[i].View() + "\n")
	}

	if len(m.deps.Conceptos) > 0 && m.currentStep == StepConcepto {
		b.WriteString("\n" + mutedStyle.Render(conceptHint(m.deps.Conceptos, m.tipo)) + "\n")
	}

	if m.currentStep == StepConfirm {
		label := "¿Agregar a la pila de movimientos pendientes? (Enter = sí, n = volver)"
		if m.saving {
			label = "Verificando arco y guardando..."
		}
		b.WriteString("\n" + labelStyle.Render(label) + "\n")
	}

	if m.validationErr != "" {
		b.WriteString("\n" + errStyle.Render(m.validationErr) + "\n")
	}

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).
		Render("enter continuar · esc cancelar"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())
	return card + "\n"
}

func (m EntryModel) renderTipo() string {
	active := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	if m.tipo == models.TipoIngreso {
		return active.Render("[Ingreso]") + " " + inactive.Render("Egreso")
	}
	return inactive.Render("Ingreso") + " " + active.Render("[Egreso]")
}

// conceptHint lists the active concepts matching the chosen type.
func conceptHint(concepts []models.Concept, tipo string) string {
	var parts []string
	for _, c := range concepts {
		if !c.IsActive {
			continue
		}
		if c.MovementTypeAssociation != "" && c.MovementTypeAssociation != tipo {
			continue
		}
		parts = append(parts, strconv.FormatUint(uint64(c.ConceptID), 10)+"="+c.ConceptName)
		if len(parts) == 6 {
			break
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "Conceptos: " + strings.Join(parts, "  ")
}
