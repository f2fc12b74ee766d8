package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"blogtags/internal/client"
	"blogtags/internal/composer"
	"blogtags/internal/shared/constants"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TagGenerator is the tag endpoint as seen by the terminal composer
type TagGenerator interface {
	GenerateTags(ctx context.Context, title string, size int) (string, error)
}

// Options configures a terminal session
type Options struct {
	Format  composer.Format
	NoColor bool
}

// Run starts the interactive composer and blocks until the user quits
func Run(gen TagGenerator, clip composer.Clipboard, opts Options) error {
	m := NewModel(gen, clip, opts)
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

// ===== Model =====

type focus int

const (
	focusTitle focus = iota
	focusCount
	focusChips
)

type tagsMsg struct {
	ticket composer.Ticket
	tags   string
	err    error
}

type clearNoticeMsg struct {
	id uint64
}

type Model struct {
	session *composer.Composer
	gen     TagGenerator
	clip    composer.Clipboard

	title   textinput.Model
	count   textinput.Model
	spinner spinner.Model

	focus   focus
	cursor  int
	status  string // local input problems, not endpoint errors
	noColor bool
}

func NewModel(gen TagGenerator, clip composer.Clipboard, opts Options) Model {
	session := composer.New()
	if opts.Format != "" {
		session.SetFormat(opts.Format)
	}

	title := textinput.New()
	title.Placeholder = constants.TITLE_PLACEHOLDER
	title.Prompt = "> "
	title.Focus()

	count := textinput.New()
	count.Prompt = "> "
	count.CharLimit = 2
	count.SetValue("0")

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		session: session,
		gen:     gen,
		clip:    clip,
		title:   title,
		count:   count,
		spinner: sp,
		focus:   focusTitle,
		noColor: opts.NoColor,
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles all TUI interactions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tagsMsg:
		m.applyResult(msg)
		return m, nil

	case clearNoticeMsg:
		m.session.ClearNotice(msg.id)
		return m, nil

	case spinner.TickMsg:
		if m.session.State() != composer.Submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		return m.focusOn((m.focus + 1) % 3)
	case "shift+tab":
		return m.focusOn((m.focus + 2) % 3)
	case "enter":
		if m.focus != focusChips {
			return m.submit()
		}
		return m, nil
	}

	if m.focus == focusChips {
		return m.handleChipKey(msg.String())
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
		m.session.SetTitle(m.title.Value())
	} else {
		m.count, cmd = m.count.Update(msg)
	}
	return m, cmd
}

func (m Model) handleChipKey(key string) (tea.Model, tea.Cmd) {
	tags := m.session.Tags()
	switch key {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(tags)-1 {
			m.cursor++
		}
	case "x", "backspace", "delete":
		if len(tags) == 0 {
			return m, nil
		}
		m.session.Remove(tags[m.cursor])
		if n := len(m.session.Tags()); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		}
	case "f":
		m.session.SetFormat(m.session.Format().Next())
	case "c":
		return m.copy()
	}
	return m, nil
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.count.Blur()
	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusCount:
		return m.count.Focus()
	default:
		m.clampCursor()
		return nil
	}
}

func (m Model) focusOn(f focus) (tea.Model, tea.Cmd) {
	cmd := m.setFocus(f)
	return m, cmd
}

func (m *Model) clampCursor() {
	n := len(m.session.Tags())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.status = ""
	m.session.SetTitle(m.title.Value())

	n, err := strconv.Atoi(strings.TrimSpace(m.count.Value()))
	if err != nil {
		m.status = constants.MSG_INVALID_SIZE
		return m.focusOn(focusCount)
	}
	m.session.SetCount(n)

	sub, err := m.session.Submit()
	switch {
	case errors.Is(err, composer.ErrTitleRequired):
		return m.focusOn(focusTitle)
	case errors.Is(err, composer.ErrCountOutOfRange):
		m.status = constants.MSG_INVALID_SIZE
		return m.focusOn(focusCount)
	}

	return m, tea.Batch(m.spinner.Tick, generate(m.gen, sub))
}

func generate(gen TagGenerator, sub composer.Submission) tea.Cmd {
	return func() tea.Msg {
		tags, err := gen.GenerateTags(context.Background(), sub.Title, sub.Size)
		return tagsMsg{ticket: sub.Ticket, tags: tags, err: err}
	}
}

func (m *Model) applyResult(msg tagsMsg) {
	if msg.err != nil {
		m.session.Reject(msg.ticket, errorText(msg.err))
		return
	}
	if m.session.Resolve(msg.ticket, msg.tags) {
		m.count.SetValue(strconv.Itoa(m.session.Count()))
		m.cursor = 0
	}
}

func errorText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func (m Model) copy() (tea.Model, tea.Cmd) {
	_, id, err := m.session.Copy(m.clip)
	if errors.Is(err, composer.ErrTitleRequired) {
		return m.focusOn(focusTitle)
	}
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = ""
	return m, tea.Tick(constants.COPY_NOTICE_TTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

// ===== View =====

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D9534F"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2AA876"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(constants.SEO_TITLE) + "\n")
	b.WriteString(mutedStyle.Render(constants.SEO_DESCRIPTION) + "\n\n")

	b.WriteString(headingStyle.Render("1. Blog post title") + "\n")
	b.WriteString(m.title.View() + "\n")
	counter := fmt.Sprintf("%d/%d", len([]rune(m.title.Value())), constants.TITLE_CHARACTER_LIMIT)
	if m.session.OverTitleLimit() {
		b.WriteString(errorStyle.Render(counter) + "\n")
	} else {
		b.WriteString(mutedStyle.Render(counter) + "\n")
	}
	b.WriteString(fmt.Sprintf("Number of tags (%d-%d)\n", constants.MIN_TAG_COUNT, constants.MAX_TAG_COUNT))
	b.WriteString(m.count.View() + "\n")
	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status) + "\n")
	}
	if msg := m.session.Error(); msg != "" {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}

	b.WriteString("\n" + headingStyle.Render("2. Generated tags") + "\n")
	tags := m.session.Tags()
	switch {
	case m.session.State() == composer.Submitting:
		b.WriteString(m.spinner.View() + " Generating...\n")
	case len(tags) == 0:
		b.WriteString(mutedStyle.Render("Start generating!") + "\n")
	default:
		selected := -1
		if m.focus == focusChips {
			selected = m.cursor
		}
		b.WriteString(chipsView(tags, selected, m.noColor) + "\n")
	}

	b.WriteString(fmt.Sprintf("Format: %s\n", m.session.Format()))
	if notice := m.session.Notice(); notice != "" {
		b.WriteString(noticeStyle.Render(notice) + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render(m.help()) + "\n")
	return b.String()
}

func (m Model) help() string {
	if m.focus == focusChips {
		return "←/→ select • x remove • f format • c copy • tab next • esc quit"
	}
	return "enter submit • tab next • esc quit"
}
