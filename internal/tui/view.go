package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"gradetally/internal/report"
	"gradetally/internal/services"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("240"))

	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

const helpText = "a add • r remove • v revenue • w write report • q quit"

func render(m *Model) string {
	var b strings.Builder

	r := m.svc.Report()
	b.WriteString(titleStyle.Render(r.Label()))
	b.WriteString("\n")
	b.WriteString(renderTotals(m.svc.Totals()))
	b.WriteString("\n")
	b.WriteString(renderTable(m.svc))
	b.WriteString("\n")

	if m.mode == promptMode {
		b.WriteString(promptStyle.Render(fmt.Sprintf("%s (%d/%d)", actionTitle(m.action), len(m.answers)+1, len(m.fields))))
		b.WriteString("\n")
		b.WriteString(m.textInput.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter confirm • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render(helpText))
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func renderTotals(t report.Totals) string {
	return fmt.Sprintf(" Graded %d   10s %d   9s %d   8s or lower %d", t.Graded, t.Tens, t.Nines, t.EightOrLower)
}

func renderTable(svc *services.ReportService) string {
	rows := svc.Summary()
	if len(rows) == 0 {
		return tableStyle.Render(helpStyle.Render("No cards recorded yet."))
	}

	cells := [][]string{report.Header}
	for _, row := range rows {
		cells = append(cells, []string{
			row.Name,
			strconv.Itoa(row.Grade),
			strconv.Itoa(row.Quantity),
			strconv.Itoa(row.Tens),
			strconv.Itoa(row.Nines),
			strconv.Itoa(row.EightOrLower),
			svc.Format(row.Cost),
			svc.Format(row.Revenue),
			svc.Format(row.Profit),
		})
	}

	widths := make([]int, len(report.Header))
	for _, line := range cells {
		for i, cell := range line {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(cells))
	for i, line := range cells {
		padded := make([]string, len(line))
		for j, cell := range line {
			padded[j] = cell + strings.Repeat(" ", widths[j]-lipgloss.Width(cell))
		}
		text := strings.Join(padded, "  ")
		switch {
		case i == 0:
			text = headerStyle.Render(text)
		case rows[i-1].Profit.IsNegative():
			text = lossStyle.Render(text)
		}
		lines = append(lines, text)
	}
	return tableStyle.Render(strings.Join(lines, "\n"))
}

func actionTitle(a action) string {
	switch a {
	case addAction:
		return "Add card"
	case removeAction:
		return "Remove card"
	default:
		return "Update revenue"
	}
}

func revenueOf(svc *services.ReportService, name string) decimal.Decimal {
	rev, _ := svc.Report().Revenue(name)
	return rev
}
