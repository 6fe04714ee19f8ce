package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/schoolmeal/internal/meal"
	"github.com/idilsaglam/schoolmeal/internal/neis"
	"github.com/idilsaglam/schoolmeal/internal/ui"
)

const isoLayout = "2006-01-02"

// Options configure the interactive screen.
type Options struct {
	SchoolCode string
	OfficeCode string
	Timeout    time.Duration
	Theme      ui.Theme
	Date       string // initial input; today when empty
	Now        func() time.Time
}

type state int

const (
	idle state = iota
	loading
	failed
	showing
)

// resultMsg carries a finished lookup back into Update.
type resultMsg struct {
	view meal.View
	err  error
}

// Model is the Bubble Tea model for the meal screen.
type Model struct {
	client neis.Client
	opt    Options
	keys   keyMap

	input textinput.Model
	spin  spinner.Model
	vp    viewport.Model
	help  help.Model

	state  state
	errMsg string
}

func New(c neis.Client, opt Options) Model {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Timeout <= 0 {
		opt.Timeout = 8 * time.Second
	}

	ti := textinput.New()
	ti.Prompt = "날짜 > "
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.SetValue(opt.Date)
	if strings.TrimSpace(opt.Date) == "" {
		ti.SetValue(opt.Now().Format(isoLayout))
	}
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(opt.Theme.Accent))

	return Model{
		client: c,
		opt:    opt,
		keys:   defaultKeys(),
		input:  ti,
		spin:   sp,
		vp:     viewport.New(60, 16),
		help:   help.New(),
	}
}

// Run starts the screen and blocks until the user quits.
func Run(c neis.Client, opt Options) error {
	_, err := tea.NewProgram(New(c, opt), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width - 4
		m.vp.Width = max(msg.Width-6, 20)
		m.vp.Height = max(msg.Height-10, 3)
		return m, nil

	case resultMsg:
		if msg.err != nil {
			m.state = failed
			m.errMsg = ui.Message(msg.err)
			return m, nil
		}
		m.state = showing
		m.vp.SetContent(m.opt.Theme.Meal(msg.view))
		m.vp.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if m.state != loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Search):
			return m.search()
		case key.Matches(msg, m.keys.Prev):
			return m.step(-1)
		case key.Matches(msg, m.keys.Next):
			return m.step(1)
		case key.Matches(msg, m.keys.Today):
			if m.state == loading {
				return m, nil
			}
			m.input.SetValue(m.opt.Now().Format(isoLayout))
			return m.search()
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// search starts a lookup for the date in the input. A lookup already in
// flight makes this a no-op.
func (m Model) search() (Model, tea.Cmd) {
	if m.state == loading {
		return m, nil
	}
	q, err := meal.NewQuery(m.opt.SchoolCode, m.opt.OfficeCode, m.input.Value())
	if err != nil {
		m.state = failed
		m.errMsg = ui.Message(err)
		return m, nil
	}
	m.state = loading
	m.errMsg = ""
	return m, tea.Batch(m.spin.Tick, m.lookup(q))
}

// step moves the input date by days and searches it.
func (m Model) step(days int) (Model, tea.Cmd) {
	if m.state == loading {
		return m, nil
	}
	d, err := time.Parse(isoLayout, strings.TrimSpace(m.input.Value()))
	if err != nil {
		d = m.opt.Now()
	}
	m.input.SetValue(d.AddDate(0, 0, days).Format(isoLayout))
	m.input.CursorEnd()
	return m.search()
}

func (m Model) lookup(q meal.Query) tea.Cmd {
	c, timeout := m.client, m.opt.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		d, err := c.Lookup(ctx, q)
		if err != nil {
			return resultMsg{err: err}
		}
		v, err := meal.NewView(d, q.ISODate())
		return resultMsg{view: v, err: err}
	}
}

func (m Model) View() string {
	t := m.opt.Theme
	title := t.Title.Render("급식 조회") + "  " +
		t.Muted.Render(m.opt.OfficeCode+" / "+m.opt.SchoolCode)

	var body string
	switch m.state {
	case loading:
		body = m.spin.View() + " " + t.Muted.Render("불러오는 중...")
	case failed:
		body = t.Error.Render(t.SymFail + " " + m.errMsg)
	case showing:
		body = m.vp.View()
	default:
		body = t.Muted.Render("날짜를 입력하고 enter 를 누르세요.")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.input.View(),
		"",
		body,
		"",
		m.help.View(m.keys),
	)
	return t.Panel(content)
}
