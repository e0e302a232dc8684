package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"filmroom/internal/domain"
	"filmroom/internal/logging"
	"filmroom/internal/services"
	"filmroom/internal/theme"
)

const (
	tickInterval = 500 * time.Millisecond
	seekStepMs   = 5000

	// A cut captures the action the analyst just watched: a window
	// ending shortly after the current clock position.
	cutLeadMs = 8000
	cutLagMs  = 2000
)

// Model is the interactive tagging console. The clock tracks a video
// position, not wall time: it starts paused at 0 and the analyst keeps
// it roughly in sync with playback, seeking as needed. Every hotkey
// press toggles its category at the current clock position.
type Model struct {
	session *services.TaggingSession
	clips   *services.ClipService
	game    *domain.Game

	keys KeyMap
	help help.Model

	// Clock anchor: video position anchorMs as of wall time anchorAt.
	anchorMs int64
	anchorAt time.Time
	playing  bool

	open       []domain.Moment
	lastAction string
	err        error

	width  int
	height int
}

// NewModel creates a console bound to one game's tagging session,
// with the clock paused at startMs.
func NewModel(session *services.TaggingSession, clips *services.ClipService, game *domain.Game, startMs int64) Model {
	if startMs < 0 {
		startMs = 0
	}
	return Model{
		session:  session,
		clips:    clips,
		game:     game,
		keys:     NewKeyMap(),
		help:     help.New(),
		anchorMs: startMs,
		anchorAt: time.Now(),
	}
}

// ClockMs returns the current video position in milliseconds.
func (m Model) ClockMs() int64 {
	if !m.playing {
		return m.anchorMs
	}
	return m.anchorMs + time.Since(m.anchorAt).Milliseconds()
}

// Init starts the clock and loads the open moment set.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.refreshOpen())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) refreshOpen() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		open, err := session.OpenMoments(context.Background())
		return openMomentsMsg{open: open, err: err}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(tick(), m.refreshOpen())

	case openMomentsMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.open = msg.open
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.err = msg.err
			logging.Logger.Error("Console action failed", "action", msg.label, "error", msg.err)
			return m, m.refreshOpen()
		}
		m.err = nil
		m.lastAction = msg.label
		if msg.result != nil {
			m.lastAction = fmt.Sprintf("%s (+%d/-%d)", msg.label, len(msg.result.Opened), len(msg.result.Closed))
		}
		return m, m.refreshOpen()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.TogglePlay):
		now := time.Now()
		if m.playing {
			m.anchorMs = m.ClockMs()
		}
		m.anchorAt = now
		m.playing = !m.playing
		return m, nil

	case key.Matches(msg, m.keys.SeekBack):
		m.seek(-seekStepMs)
		return m, nil

	case key.Matches(msg, m.keys.SeekForward):
		m.seek(seekStepMs)
		return m, nil

	case key.Matches(msg, m.keys.CutClip):
		return m, m.cutClip()

	case key.Matches(msg, m.keys.CloseAll):
		return m, m.closeAll()
	}

	// Blueprint hotkeys toggle their category.
	for _, btn := range m.session.Blueprint().Buttons {
		if btn.Hotkey != "" && msg.String() == btn.Hotkey {
			return m, m.toggle(btn.Category)
		}
	}
	return m, nil
}

func (m *Model) seek(deltaMs int64) {
	pos := m.ClockMs() + deltaMs
	if pos < 0 {
		pos = 0
	}
	m.anchorMs = pos
	m.anchorAt = time.Now()
}

// toggle activates the category, or deactivates it when it already has
// an open moment.
func (m Model) toggle(category string) tea.Cmd {
	session := m.session
	atMs := m.ClockMs()
	isOpen := m.categoryOpen(category)

	return func() tea.Msg {
		ctx := context.Background()
		if isOpen {
			result, err := session.Deactivate(ctx, category, atMs)
			return actionMsg{label: "deactivated " + category, result: result, err: err}
		}
		result, err := session.Activate(ctx, category, atMs)
		return actionMsg{label: "activated " + category, result: result, err: err}
	}
}

// cutClip creates a clip around the current clock position. Players
// are auto-associated from overlapping moments; titles and notes are
// filled in later with "clips derive --edit".
func (m Model) cutClip() tea.Cmd {
	clips := m.clips
	gameID := m.game.ID
	atMs := m.ClockMs()

	return func() tea.Msg {
		startMs := atMs - cutLeadMs
		if startMs < 0 {
			startMs = 0
		}
		clip, err := clips.CreateClip(context.Background(), services.CreateClipParams{
			GameID:  gameID,
			StartMs: startMs,
			EndMs:   atMs + cutLagMs,
			Title:   "Cut at " + formatClock(atMs),
		})
		if err != nil {
			return actionMsg{label: "cut clip", err: err}
		}
		return actionMsg{label: fmt.Sprintf("cut clip %s-%s",
			formatClock(clip.StartMs), formatClock(clip.EndMs))}
	}
}

func (m Model) closeAll() tea.Cmd {
	session := m.session
	atMs := m.ClockMs()
	open := m.open

	return func() tea.Msg {
		ctx := context.Background()
		closed := 0
		for _, moment := range open {
			err := session.CloseMoment(ctx, moment.ID, atMs)
			if err != nil {
				return actionMsg{label: "close all", err: err}
			}
			closed++
		}
		return actionMsg{label: fmt.Sprintf("closed %d moments", closed)}
	}
}

func (m Model) categoryOpen(category string) bool {
	for _, moment := range m.open {
		if moment.Category == category {
			return true
		}
	}
	return false
}

// View renders the console
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("filmroom · " + m.game.Name))
	b.WriteString("\n")

	state := "⏸ paused"
	if m.playing {
		state = "▶ playing"
	}
	b.WriteString(theme.ClockStyle.Render(formatClock(m.ClockMs())))
	b.WriteString(theme.MutedStyle.Render("  " + state))
	b.WriteString("\n\n")

	b.WriteString(m.renderButtons())
	b.WriteString("\n\n")

	b.WriteString(m.renderOpenMoments())

	if m.err != nil {
		b.WriteString("\n" + theme.ErrorStyle.Render("error: "+m.err.Error()))
	} else if m.lastAction != "" {
		b.WriteString("\n" + theme.MutedStyle.Render(m.lastAction))
	}

	b.WriteString("\n" + theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderButtons() string {
	buttons := m.session.Blueprint().Buttons
	rendered := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		label := btn.DisplayName
		if label == "" {
			label = btn.Category
		}
		text := theme.HotkeyStyle.Render(btn.Hotkey) + " " + label
		if m.categoryOpen(btn.Category) {
			rendered = append(rendered, theme.ButtonOpenStyle.Render(text))
		} else {
			rendered = append(rendered, theme.ButtonStyle.Render(text))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderOpenMoments() string {
	if len(m.open) == 0 {
		return theme.MutedStyle.Render("No open moments.")
	}

	now := m.ClockMs()
	var b strings.Builder
	b.WriteString(theme.NormalStyle.Render("Open moments:"))
	for _, moment := range m.open {
		elapsed := now - moment.StartMs
		if elapsed < 0 {
			elapsed = 0
		}
		marker := theme.OpenMarkerStyle.Render("●")
		if btn, err := m.session.Blueprint().Resolve(moment.Category); err == nil && btn.DurationMode == domain.DurationFixed {
			marker = theme.FixedMarkerStyle.Render("◆")
		}
		b.WriteString(fmt.Sprintf("\n  %s %-12s since %s  (%s)",
			marker, moment.Category, formatClock(moment.StartMs), formatClock(elapsed)))
	}
	return b.String()
}

// formatClock renders milliseconds as M:SS or H:MM:SS.
func formatClock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSec := ms / 1000
	h := totalSec / 3600
	min := (totalSec % 3600) / 60
	sec := totalSec % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, sec)
	}
	return fmt.Sprintf("%d:%02d", min, sec)
}
