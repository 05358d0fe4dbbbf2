// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] renders the current view (tab or recipe detail) above an input
// prompt. Typed commands are parsed into intents and applied to the
// engine from inside Update, so all state changes happen on the Bubble
// Tea goroutine. Debounced search results arrive the same way, as a
// message posted by [UI.Dispatch].
package display

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/engine"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

const (
	commandPrompt = "recipebox> "
	searchPrompt  = "search/ "
)

// UI manages the terminal through Bubble Tea.
//
// Create it with [NewUI], pass [UI.Dispatch] and [UI.Queue] to the engine
// and notifier, then call [UI.Run] (blocking).
type UI struct {
	program *tea.Program
	parser  domain.IntentParser
	log     *logger.Logger
	done    atomic.Bool

	mu      sync.Mutex
	notices []string
}

// NewUI creates the display. Call Run() to start.
func NewUI(parser domain.IntentParser, log *logger.Logger) *UI {
	return &UI{parser: parser, log: log}
}

// dispatchMsg carries an action to run on the event loop.
type dispatchMsg func()

// Dispatch runs fn on the Bubble Tea goroutine. Before Run starts (or
// after it ends) fn runs immediately.
func (u *UI) Dispatch(fn func()) {
	if u.program != nil && !u.done.Load() {
		u.program.Send(dispatchMsg(fn))
		return
	}
	fn()
}

// Queue records a line to print above the view. It never blocks, so it is
// safe to call from inside Update. Matches conversation.PrintFunc.
func (u *UI) Queue(format string, a ...any) {
	line := fmt.Sprintf(format, a...)
	if u.program == nil || u.done.Load() {
		fmt.Println(line)
		return
	}
	u.mu.Lock()
	u.notices = append(u.notices, line)
	u.mu.Unlock()
}

// flush returns a command printing every queued notice.
func (u *UI) flush() tea.Cmd {
	u.mu.Lock()
	lines := u.notices
	u.notices = nil
	u.mu.Unlock()

	if len(lines) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(lines))
	for _, l := range lines {
		cmds = append(cmds, tea.Println("  "+l))
	}
	return tea.Sequence(cmds...)
}

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run(ctx context.Context, eng *engine.Engine) error {
	ti := textinput.New()
	// Plain-text prompt so the textinput width math stays correct.
	ti.Prompt = commandPrompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		ctx:    ctx,
		ui:     u,
		eng:    eng,
		parser: u.parser,
		log:    u.log,
		input:  ti,
	}

	u.program = tea.NewProgram(m, tea.WithContext(ctx))
	_, err := u.program.Run()
	u.done.Store(true)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	ctx       context.Context
	ui        *UI
	eng       *engine.Engine
	parser    domain.IntentParser
	log       *logger.Logger
	input     textinput.Model
	searching bool
	status    string
	failed    bool
	width     int
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.title())
}

func (m model) title() tea.Cmd {
	return tea.SetWindowTitle("Recipebox - " + m.eng.Route().String())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case dispatchMsg:
		msg()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - len(commandPrompt); w > 0 {
			m.input.Width = w
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		if m.searching {
			m.eng.CancelSearch()
			m.endSearch()
			return m, nil
		}
		if m.eng.DetailOpen() {
			m.eng.CloseDetail(m.ctx)
			return m, m.title()
		}
		return m, nil

	case tea.KeyEnter:
		if m.searching {
			m.eng.SetSearch(m.input.Value())
			m.endSearch()
			return m, nil
		}
		v := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if v == "" {
			return m, nil
		}
		return m.run(v)
	}

	// "/" on an empty prompt starts live search on the home tab.
	if !m.searching && msg.String() == "/" && m.input.Value() == "" && !m.eng.DetailOpen() {
		m.searching = true
		m.input.Prompt = searchPrompt
		m.input.SetValue(m.eng.Filter().Search)
		m.input.CursorEnd()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.searching && m.input.Value() != before {
		m.eng.SearchInput(m.input.Value())
	}
	return m, cmd
}

func (m *model) endSearch() {
	m.searching = false
	m.input.Prompt = commandPrompt
	m.input.Reset()
}

// run parses and applies one typed command.
func (m model) run(line string) (tea.Model, tea.Cmd) {
	echo := tea.Println(promptStyle.Render(strings.TrimSpace(commandPrompt)) + " " + userInputEchoStyle.Render(line))

	intent, err := m.parser.Parse(m.ctx, line)
	if err != nil {
		m.log.Warn("parse %q: %v", line, err)
		m.status, m.failed = err.Error(), true
		return m, echo
	}
	m.log.Debug("intent %s %q", intent.Type, intent.Payload)
	if intent.Type == domain.IntentUnknown {
		intent.Payload = line
	}

	status, err := apply(m.ctx, m.eng, intent)
	switch {
	case errors.Is(err, errQuit):
		return m, tea.Sequence(echo, tea.Quit)
	case err != nil:
		m.status, m.failed = err.Error(), true
	default:
		m.status, m.failed = "", false
		if status != "" && intent.Type == domain.IntentHelp {
			echo = tea.Sequence(echo, tea.Println(secondaryStyle.Render(status)))
		} else {
			m.status = status
		}
	}
	return m, tea.Sequence(echo, m.ui.flush(), m.title())
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(Render(m.eng))
	b.WriteString("\n\n")
	if m.status != "" {
		if m.failed {
			b.WriteString(urgentOutputStyle.Render("  " + m.status))
		} else {
			b.WriteString(secondaryStyle.Render("  " + m.status))
		}
		b.WriteByte('\n')
	}
	if m.eng.SearchPending() {
		b.WriteString(secondaryStyle.Render("  searching..."))
		b.WriteByte('\n')
	}
	b.WriteString(m.input.View())
	return b.String()
}
