package tui

import (
	"fmt"
	"strings"

	"vitta-booking/internal/domain/booking"

	"github.com/charmbracelet/lipgloss"
)

const dayLayout = "Mon 02 Jan"

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.session.State()

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.viewDays(state), m.viewHours(state)),
		m.viewStatus(state),
		m.help.View(m),
	)
	return docStyle.Render(ui)
}

func (m Model) viewHeader() string {
	title := "Book an appointment"
	var details []string
	if p := m.session.Provider(); p != nil {
		title = "Book with " + p.Name
		for _, s := range p.Specialties {
			details = append(details, s.Name)
		}
	}

	count := fmt.Sprintf("Appointments this month: %d/%d", m.session.ActiveThisMonth(), m.session.Rules().MaxPerMonth())
	lines := []string{titleStyle.Render(title)}
	if len(details) > 0 {
		lines = append(lines, subtleStyle.Render(strings.Join(details, " · ")))
	}
	lines = append(lines, subtleStyle.Render(count))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewDays(state booking.State) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Days"))
	b.WriteString("\n")

	if len(m.days) == 0 {
		b.WriteString(subtleStyle.Render("No days left this month"))
		return columnStyle.Render(b.String())
	}

	for i, day := range m.days {
		line := day.Midnight(m.session.Rules().Location()).Format(dayLayout)
		switch {
		case state.IsLoading(day.Key()):
			line += " " + m.spinner.View()
		case state.IsSelected(day.Key()):
			line = selectedStyle.Render(line + " ✓")
		}
		b.WriteString(m.renderRow(line, m.focus == FocusDays && i == m.dayCursor))
		b.WriteString("\n")
	}
	return columnStyle.Render(b.String())
}

func (m Model) viewHours(state booking.State) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Times"))
	b.WriteString("\n")

	switch {
	case state.Date == nil:
		b.WriteString(subtleStyle.Render("Select a day"))
	case state.Phase == booking.PhaseDateLoading:
		b.WriteString(m.spinner.View() + " Loading...")
	case len(state.Hours) == 0:
		b.WriteString(subtleStyle.Render("No times available"))
	default:
		for i, hour := range state.Hours {
			line := hour.String()
			if state.Slot != nil && state.Slot.Hour() == hour {
				line = selectedStyle.Render(line + " ✓")
			}
			b.WriteString(m.renderRow(line, m.focus == FocusHours && i == m.hourCursor))
			b.WriteString("\n")
		}
	}
	return columnStyle.Render(b.String())
}

func (m Model) viewStatus(state booking.State) string {
	var lines []string

	switch {
	case state.Phase == booking.PhaseSubmitting:
		lines = append(lines, m.spinner.View()+" Booking your appointment...")
	case state.Slot != nil:
		lines = append(lines, fmt.Sprintf("Selected: %s at %s", state.Slot.Key(), state.Slot.Hour()))
	}
	if msg := confirmation(state); msg != "" {
		lines = append(lines, successStyle.Render(msg))
	}
	if m.notice != "" {
		lines = append(lines, noticeStyle.Render(m.notice))
	}
	lines = append(lines, "")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderRow(line string, active bool) string {
	if active {
		return cursorStyle.Render("> " + line)
	}
	return "  " + line
}
