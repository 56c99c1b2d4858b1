package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cajafuerte/arqueo/internal/models"
)

// RunEntryTUI starts the interactive movement entry screen.
func RunEntryTUI(deps EntryDeps) error {
	p := tea.NewProgram(NewEntryModel(deps), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(EntryModel); ok {
		if m.cancelled {
			fmt.Println("❌ Carga de movimiento cancelada.")
		} else if m.staged != nil {
			fmt.Printf("✅ Movimiento agregado a la pila: %s - %s\n",
				m.staged.MovementType, models.FormatARS(m.staged.Amount))
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}
	return nil
}

// RunCloseTUI starts the bill-counting and close-session screen.
func RunCloseTUI(deps CloseDeps) error {
	p := tea.NewProgram(NewCloseModel(deps), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(CloseModel); ok {
		if m.cancelled {
			fmt.Println("❌ Cierre de arqueo cancelado.")
		} else if m.closed {
			fmt.Printf("✅ Arqueo #%d cerrado. Retiro registrado: %s\n",
				m.deps.ArcoID, models.FormatARS(m.retiro))
			if m.saldo != nil {
				fmt.Printf("Saldo del último arqueo: %s\n", models.FormatARS(m.saldo.SaldoTotal))
			}
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}
	return nil
}

// RunReportTUI starts the interactive report view.
func RunReportTUI(deps ReportDeps) error {
	p := tea.NewProgram(NewReportModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
