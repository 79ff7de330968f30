package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/scores"
)

const (
	scoreColumnWidth = 30
	// Below this width only the focused game's table is shown.
	minWidthSideBySide = 3*scoreColumnWidth + 6
)

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("201"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardFocusStyle = boardFrameStyle.BorderForeground(lipgloss.Color("14"))
	boardEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
	boardHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next game"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// gameBoard is one game's top scores.
type gameBoard struct {
	info  registry.GameInfo
	table table.Model
	empty bool
}

// ScoreboardModel shows the top scores of every game, side by side when
// the terminal is wide enough.
type ScoreboardModel struct {
	boards    []gameBoard
	focus     int
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads the top scores of every registered game from
// board. A nil board shows every game as empty.
func NewScoreboardModel(board scores.Board, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		help:   h,
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	for _, g := range registry.List() {
		var entries []scores.Entry
		if board != nil {
			entries = board.TopScores(g.ID)
		}
		m.boards = append(m.boards, gameBoard{
			info:  g,
			table: newScoreTable(entries),
			empty: len(entries) == 0,
		})
	}
	return m
}

// newScoreTable builds a read-only table of ranked entries.
func newScoreTable(entries []scores.Entry) table.Model {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		player := e.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), strconv.Itoa(e.Score), player}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Player", Width: scoreColumnWidth - 19},
		}),
		table.WithRows(rows),
		table.WithHeight(scores.TopN+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Not focusable, so no row is highlighted.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// cycle moves the focus by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if n := len(m.boards); n > 0 {
		m.focus = ((m.focus+delta)%n + n) % n
	}
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := boardTitleStyle.Render("TOP SCORES")
	body := boardEmptyStyle.Render("No games registered.")
	if len(m.boards) > 0 {
		body = m.renderBoards()
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title),
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body),
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardHelpStyle.Render(m.help.View(m.keys))),
	)
}

// renderBoards lays out every board in a row, or only the focused one on
// narrow terminals.
func (m ScoreboardModel) renderBoards() string {
	if m.width < minWidthSideBySide {
		b := m.boards[m.focus]
		return fmt.Sprintf("< %s >\n", b.info.Title) + m.renderBoard(b, true)
	}

	cols := make([]string, len(m.boards))
	for i, b := range m.boards {
		cols[i] = lipgloss.JoinVertical(lipgloss.Center, b.info.Title, m.renderBoard(b, i == m.focus))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m ScoreboardModel) renderBoard(b gameBoard, focused bool) string {
	style := boardFrameStyle
	if focused {
		style = boardFocusStyle
	}
	if b.empty {
		return style.Width(scoreColumnWidth).Render(boardEmptyStyle.Render("No scores yet.\nPlay to set one!"))
	}
	return style.Render(b.table.View())
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
