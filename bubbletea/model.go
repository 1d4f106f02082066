package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avisser/scout"
	"github.com/avisser/scout/markdown"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ tea.Model = Model{}

// agentResult carries the run outcome from the agent goroutine.
type agentResult struct {
	answer scout.Answer
	err    error
}

// Model is the Bubble Tea model for the scout TUI. Each submitted
// question runs one agent loop; tokens and tool activity stream into
// the viewport as they arrive, and the final answer replaces the raw
// token stream with rendered markdown.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	run    AgentFunc
	theme  scout.Theme
	styles Styles

	// sections holds finished transcript segments, oldest first.
	// streaming accumulates raw tokens for the in-flight model call;
	// a plain string because the model is copied by value on every
	// Update and a strings.Builder must not be copied after use.
	sections  []string
	streaming string

	running bool
	cancel  context.CancelFunc
	eventCh chan scout.Event
	doneCh  chan agentResult
	err     error
	ready   bool
}

// New creates a new TUI Model with the given agent function and theme.
func New(run AgentFunc, theme scout.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask a question..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		Input:  ti,
		run:    run,
		theme:  theme,
		styles: NewStyles(theme),
	}
}

// SetRunning is a test helper that puts the model in a running state.
func SetRunning(m Model) (Model, tea.Cmd) {
	m.running = true
	return m, nil
}

// SetRunningWithCancel is a test helper that puts the model in a running
// state with a cancel function.
func SetRunningWithCancel(m Model, cancel func()) (Model, tea.Cmd) {
	m.running = true
	m.cancel = cancel
	return m, nil
}

// Running returns whether the agent is currently running.
func (m Model) Running() bool { return m.running }

// Err returns the last error, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StreamEventMsg:
		m = m.processEvent(msg.Event)
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		if m.eventCh != nil {
			return m, listenForEvent(m.eventCh, m.doneCh)
		}
		return m, nil

	case AgentDoneMsg:
		m.running = false
		m.cancel = nil
		m.eventCh = nil
		m.doneCh = nil
		m.streaming = ""
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.err = msg.Err
		} else if msg.Err == nil {
			m.sections = append(m.sections, markdown.RenderAnswer(msg.Answer, m.Viewport.Width, m.theme))
		}
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		cmds = append(cmds, m.Input.Focus())
		return m, tea.Batch(cmds...)
	}

	// Pass remaining messages to sub-components. Viewport always
	// receives messages for scrolling (keyboard and mouse).
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputHeight := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := msg.Height - inputHeight - statusHeight - borderHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.running {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		question := strings.TrimSpace(m.Input.Value())
		if question == "" {
			return m, nil
		}
		return m.submitQuestion(question)
	}

	// When idle, pass keys to both the input (for typing) and viewport
	// (for scrolling). Only forward non-character keys to the viewport
	// to avoid conflicts ('j'/'k' are viewport scroll AND text input).
	if !m.running {
		var cmd tea.Cmd
		var cmds []tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) submitQuestion(question string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.err = nil

	m.sections = append(m.sections, m.styles.UserMsg.Render("> "+question))
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.eventCh = make(chan scout.Event, 256)
	m.doneCh = make(chan agentResult, 1)
	m.running = true

	m.Input.Blur()

	return m, tea.Batch(
		startAgent(m.run, ctx, question, m.eventCh, m.doneCh),
		listenForEvent(m.eventCh, m.doneCh),
	)
}

// processEvent routes a streaming event into the transcript.
func (m Model) processEvent(evt scout.Event) Model {
	switch e := evt.(type) {
	case scout.EventToken:
		m.streaming += e.Delta

	case scout.EventToolStart:
		m = m.flushStreaming()
		m.sections = append(m.sections, m.styles.ToolCall.Render(fmt.Sprintf("⚡ %s: %s", e.Name, e.Input)))

	case scout.EventToolEnd:
		line := m.styles.Success.Render("✓ " + e.Name)
		if e.IsError {
			line = m.styles.Error.Render("✗ " + e.Name + ": " + markdown.Truncate(e.Output, 60))
		}
		m.sections = append(m.sections, line)
	}
	return m
}

// flushStreaming moves accumulated raw tokens into a muted transcript
// section. Intermediate reasoning stays visible but de-emphasized; the
// final answer arrives separately, fully rendered.
func (m Model) flushStreaming() Model {
	text := strings.TrimSpace(m.streaming)
	m.streaming = ""
	if text != "" {
		m.sections = append(m.sections, m.styles.Muted.Render(text))
	}
	return m
}

func (m Model) renderContent() string {
	parts := make([]string, 0, len(m.sections)+1)
	for _, s := range m.sections {
		parts = append(parts, lipgloss.NewStyle().Width(m.Viewport.Width).Render(s))
	}
	if m.streaming != "" {
		parts = append(parts, lipgloss.NewStyle().Width(m.Viewport.Width).Render(m.streaming))
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.running {
		return m.styles.Muted.Render("Searching...")
	}
	return m.styles.Muted.Render("Enter to ask, Ctrl+C to quit")
}

// startAgent runs the agent in a goroutine and signals completion.
func startAgent(run AgentFunc, ctx context.Context, question string, eventCh chan<- scout.Event, doneCh chan<- agentResult) tea.Cmd {
	return func() tea.Msg {
		answer, err := run(ctx, question, func(e scout.Event) {
			select {
			case eventCh <- e:
			case <-ctx.Done():
			}
		})
		close(eventCh)
		doneCh <- agentResult{answer: answer, err: err}
		return nil
	}
}

// listenForEvent waits for the next event from the channel. When the
// channel closes, it reads the result from doneCh and returns AgentDoneMsg.
func listenForEvent(ch <-chan scout.Event, doneCh <-chan agentResult) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			res := <-doneCh
			return AgentDoneMsg{Answer: res.answer, Err: res.err}
		}
		return StreamEventMsg{Event: evt}
	}
}
