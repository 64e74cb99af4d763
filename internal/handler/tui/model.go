package tui

import (
	"context"

	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/domain/booking"
	"vitta-booking/internal/usecase"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type Focus int

const (
	FocusDays Focus = iota
	FocusHours
)

// Gateway results come back as messages; the session is only touched from Update.
type hoursMsg struct {
	ticket booking.Ticket
	hours  []appointment.AvailableHour
	err    error
}

type submitMsg struct {
	created *appointment.Appointment
	err     error
}

type ledgerMsg struct {
	items []appointment.Appointment
	err   error
}

type Model struct {
	ctx         context.Context
	session     *usecase.BookingSession
	userID      string
	days        []appointment.CalendarDay
	keys        KeyMap
	help        help.Model
	spinner     spinner.Model
	focus       Focus
	dayCursor   int
	hourCursor  int
	notice      string
	ledgerStale bool
	refreshing  bool
	quitting    bool
	width       int
	height      int
}

// NewModel expects a loaded session. loadErr is shown as the first notice.
func NewModel(ctx context.Context, session *usecase.BookingSession, userID string, loadErr error) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = titleStyle

	m := Model{
		ctx:     ctx,
		session: session,
		userID:  userID,
		days:    session.Days(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
	}
	if loadErr != nil {
		m.notice = m.noticeFor(loadErr)
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) noticeFor(err error) string {
	return usecase.Notice(err, m.session.Rules().MaxPerMonth())
}

func (m Model) fetchHours(t booking.Ticket) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		hours, err := session.Fetch(ctx, t)
		return hoursMsg{ticket: t, hours: hours, err: err}
	}
}

func (m Model) send(t usecase.SubmitTicket) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		created, err := session.Send(ctx, t)
		return submitMsg{created: created, err: err}
	}
}

func (m Model) fetchLedger() tea.Cmd {
	if m.userID == "" {
		return nil
	}
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		items, err := session.FetchLedger(ctx)
		return ledgerMsg{items: items, err: err}
	}
}
