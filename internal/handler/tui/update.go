package tui

import (
	"fmt"

	"vitta-booking/internal/domain/booking"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case hoursMsg:
		if !m.session.FinishFetch(msg.ticket, msg.hours, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			m.notice = m.noticeFor(msg.err)
			return m, nil
		}
		m.hourCursor = 0
		if len(msg.hours) > 0 {
			m.focus = FocusHours
		} else {
			m.notice = "No times available on this day."
		}
		return m, nil

	case submitMsg:
		if err := m.session.FinishSubmit(msg.created, msg.err); err != nil {
			m.notice = m.noticeFor(err)
			return m, nil
		}
		if msg.err != nil {
			m.notice = m.noticeFor(msg.err)
			return m, nil
		}
		m.focus = FocusDays
		m.hourCursor = 0
		return m.refreshLedger()

	case ledgerMsg:
		m.refreshing = false
		if msg.err != nil {
			m.notice = m.noticeFor(msg.err)
			return m, nil
		}
		m.session.ApplyLedger(msg.items)
		m.ledgerStale = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Left):
		m.focus = FocusDays
	case key.Matches(msg, m.keys.Right):
		if len(m.session.State().Hours) > 0 {
			m.focus = FocusHours
		}
	case key.Matches(msg, m.keys.Select):
		if m.focus == FocusHours {
			return m.toggleHour()
		}
		return m.toggleDay()
	case key.Matches(msg, m.keys.Clear):
		m.notice = ""
		if err := m.session.ClearHour(); err != nil {
			m.notice = m.noticeFor(err)
		}
	case key.Matches(msg, m.keys.Deselect):
		m.notice = ""
		if err := m.session.Deselect(); err != nil {
			m.notice = m.noticeFor(err)
		}
		m.focus = FocusDays
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.focus {
	case FocusDays:
		m.dayCursor = clamp(m.dayCursor+delta, len(m.days))
	case FocusHours:
		m.hourCursor = clamp(m.hourCursor+delta, len(m.session.State().Hours))
	}
}

// refreshLedger holds date and submit intents back until the ledger lands,
// so the monthly count never lags behind a booking just made.
func (m Model) refreshLedger() (Model, tea.Cmd) {
	cmd := m.fetchLedger()
	if cmd == nil {
		return m, nil
	}
	m.ledgerStale = true
	m.refreshing = true
	return m, cmd
}

// awaitLedger reports whether an intent must wait for the ledger refresh,
// retrying a refresh that failed.
func (m Model) awaitLedger() (Model, tea.Cmd, bool) {
	if !m.ledgerStale {
		return m, nil, false
	}
	m.notice = "Updating your appointments, try again in a moment."
	if m.refreshing {
		return m, nil, true
	}
	m, cmd := m.refreshLedger()
	return m, cmd, true
}

func (m Model) toggleDay() (tea.Model, tea.Cmd) {
	if len(m.days) == 0 {
		return m, nil
	}
	if m, cmd, wait := m.awaitLedger(); wait {
		return m, cmd
	}
	m.notice = ""
	t, err := m.session.StartToggleDate(m.days[m.dayCursor])
	if err != nil {
		m.notice = m.noticeFor(err)
		return m, nil
	}
	if t.IsZero() {
		m.focus = FocusDays
		return m, nil
	}
	return m, m.fetchHours(t)
}

func (m Model) toggleHour() (tea.Model, tea.Cmd) {
	state := m.session.State()
	if state.Date == nil || len(state.Hours) == 0 {
		m.focus = FocusDays
		return m, nil
	}
	m.notice = ""
	hour := state.Hours[clamp(m.hourCursor, len(state.Hours))]

	// selecting the staged hour again unstages it
	if state.Slot != nil && state.Slot.Hour() == hour {
		if err := m.session.ClearHour(); err != nil {
			m.notice = m.noticeFor(err)
		}
		return m, nil
	}
	if err := m.session.SelectHour(state.Date.Key(), hour); err != nil {
		m.notice = m.noticeFor(err)
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m, cmd, wait := m.awaitLedger(); wait {
		return m, cmd
	}
	m.notice = ""
	t, err := m.session.PrepareSubmit()
	if err != nil {
		m.notice = m.noticeFor(err)
		return m, nil
	}
	return m, m.send(t)
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func confirmation(state booking.State) string {
	if state.Phase != booking.PhaseSubmitted || state.Created == nil {
		return ""
	}
	return fmt.Sprintf("Appointment booked for %s at %s.", state.Created.Date, state.Created.Time)
}
