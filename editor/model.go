package editor

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eli32-vlc/text-autocomplete/buffer"
	"github.com/eli32-vlc/text-autocomplete/internal/config"
)

const (
	// tickInterval is the cadence of the idle loop driving pause
	// detection and transient message expiry.
	tickInterval = 20 * time.Millisecond

	// statusTTL is how long a transient status message stays visible.
	statusTTL = 3 * time.Second

	// wrapLookback bounds the word-boundary search when a line overflows.
	wrapLookback = 20

	// chromeRows are the status, message, and help lines below the text.
	chromeRows = 3
)

// DefaultFilename is used by save when no filename has been set.
const DefaultFilename = "untitled.txt"

// Completer is the completion endpoint contract the editor depends on.
type Completer interface {
	Available() bool
	Complete(ctx context.Context, text string) (string, error)
}

// Config configures the editing session.
type Config struct {
	Settings  config.Settings
	Completer Completer
	Filename  string

	// Clock overrides time.Now for deterministic tests.
	Clock func() time.Time
}

type tickMsg time.Time

// completionMsg carries one fetch outcome back into the update loop; the
// engine's request snapshot decides whether it is still applicable.
type completionMsg struct {
	text string
	err  error
}

// Model is the Bubble Tea model for the whole editing session.
type Model struct {
	keys   KeyMap
	styles Style

	buf    *buffer.Buffer
	engine *suggestEngine
	ai     Completer

	filename string

	mode  inputMode
	input []rune

	exit   exitState
	exitAt time.Time

	status   string
	statusAt time.Time

	width, height int
	viewport      viewport.Model

	clock func() time.Time
	now   time.Time
}

func New(cfg Config) Model {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	m := Model{
		keys:     DefaultKeyMap(),
		styles:   DefaultStyle(),
		buf:      buffer.New(""),
		engine:   newSuggestEngine(cfg.Settings.PauseDelay()),
		ai:       cfg.Completer,
		filename: cfg.Filename,
		viewport: viewport.New(0, 0),
		clock:    clock,
	}
	m.now = clock()
	if cfg.Filename != "" {
		if _, err := os.Stat(cfg.Filename); err == nil {
			m.openFile(cfg.Filename)
		}
	}
	m.rebuildContent()
	return m
}

// Buffer exposes the document for tests and host integration.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = maxInt(msg.Height-chromeRows, 0)
		m.rebuildContent()
		m.followCursor()
		return m, nil

	case tickMsg:
		m.now = m.clock()
		return m, tea.Batch(tick(), m.maybeFetch())

	case completionMsg:
		m.now = m.clock()
		m.engine.resolve(msg.text, msg.err, m.buf.Cursor(), m.liveContext())
		m.rebuildContent()
		return m, nil

	case tea.KeyMsg:
		m.now = m.clock()
		next, cmd := m.handleKey(msg)
		next.rebuildContent()
		next.followCursor()
		return next, cmd
	}
	return m, nil
}

// maybeFetch dispatches a background completion fetch when the engine's
// pause and throttle conditions hold. The fetch runs in its own goroutine
// (via the returned command) and reports back with a single completionMsg;
// the update loop never blocks on it.
func (m *Model) maybeFetch() tea.Cmd {
	if m.ai == nil || !m.ai.Available() {
		return nil
	}
	if !m.engine.shouldDispatch(m.now) {
		return nil
	}
	ctxText := m.liveContext()
	if strings.TrimSpace(ctxText) == "" {
		return nil
	}

	m.engine.beginFetch(m.now, m.buf.Cursor(), ctxText)
	client := m.ai
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		text, err := client.Complete(ctx, ctxText)
		return completionMsg{text: text, err: err}
	}
}

func (m *Model) liveContext() string {
	return m.buf.ContextBefore(contextRows, contextChars)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = m.now
}

// wrapWidth leaves the last terminal column free, as the status bar does.
func (m *Model) wrapWidth() int {
	if m.width <= 0 {
		return 0
	}
	return m.width - 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
