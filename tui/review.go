package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"titlefix/tags"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Proposal is a title change waiting for the user's decision.
type Proposal struct {
	Path      string
	Original  string
	Formatted string
	Accepted  bool
}

type ReviewResult struct {
	Applied int
	Skipped int
	Failed  int
	Errors  map[string]error
}

type ReviewModel struct {
	proposals []Proposal
	editor    tags.TitleEditor
	theme     *Theme

	cursor   int
	applying bool
	done     bool
	result   ReviewResult

	width  int
	height int
}

func NewReviewModel(proposals []Proposal, editor tags.TitleEditor, theme *Theme) *ReviewModel {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &ReviewModel{
		proposals: proposals,
		editor:    editor,
		theme:     theme,
		result:    ReviewResult{Errors: make(map[string]error)},
	}
}

// Run shows the review screen and writes the accepted titles.
func Run(proposals []Proposal, editor tags.TitleEditor, theme *Theme) (ReviewResult, error) {
	m := NewReviewModel(proposals, editor, theme)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return ReviewResult{}, err
	}
	return final.(*ReviewModel).Result(), nil
}

func (m *ReviewModel) Result() ReviewResult { return m.result }

func (m *ReviewModel) Proposals() []Proposal { return m.proposals }

func (m *ReviewModel) Init() tea.Cmd {
	return nil
}

func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKeyPress(msg.String())

	case TitleWrittenMsg:
		p := m.proposals[msg.Index]
		if msg.Error != nil {
			logrus.Debugf("Failed to write title for %s: %v", filepath.Base(p.Path), msg.Error)
			m.result.Failed++
			m.result.Errors[p.Path] = msg.Error
		} else {
			m.result.Applied++
		}
		return m, m.applyFrom(msg.Index + 1)

	case ReviewCompleteMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *ReviewModel) handleKeyPress(key string) tea.Cmd {
	if m.applying {
		if key == "ctrl+c" {
			return tea.Quit
		}
		return nil
	}

	switch key {
	case "ctrl+c", "q", "esc":
		m.result.Skipped = len(m.proposals)
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.proposals)-1 {
			m.cursor++
		}
	case " ", "space", "x":
		if len(m.proposals) > 0 {
			m.proposals[m.cursor].Accepted = !m.proposals[m.cursor].Accepted
		}
	case "a":
		m.setAll(true)
	case "n":
		m.setAll(false)
	case "enter":
		m.applying = true
		for _, p := range m.proposals {
			if !p.Accepted {
				m.result.Skipped++
			}
		}
		return m.applyFrom(0)
	}
	return nil
}

func (m *ReviewModel) setAll(accepted bool) {
	for i := range m.proposals {
		m.proposals[i].Accepted = accepted
	}
}

// applyFrom writes the next accepted proposal at or after index. Writes run
// one at a time so each file is read, formatted and written before the next.
func (m *ReviewModel) applyFrom(index int) tea.Cmd {
	for i := index; i < len(m.proposals); i++ {
		if !m.proposals[i].Accepted {
			continue
		}
		p := m.proposals[i]
		return func() tea.Msg {
			return TitleWrittenMsg{Index: i, Error: m.editor.WriteTitle(p.Path, p.Formatted)}
		}
	}

	return func() tea.Msg {
		return ReviewCompleteMsg{}
	}
}

func (m *ReviewModel) View() string {
	theme := m.theme
	var lines []string

	accepted := 0
	for _, p := range m.proposals {
		if p.Accepted {
			accepted++
		}
	}
	header := fmt.Sprintf("Title changes (%d/%d accepted)", accepted, len(m.proposals))
	lines = append(lines, theme.HeaderStyle.Render(header))

	sepWidth := m.width - 2
	if sepWidth < 20 {
		sepWidth = 40
	}
	lines = append(lines, Separator(sepWidth, "─", ColorBorderLight))

	if len(m.proposals) == 0 {
		lines = append(lines, theme.MutedTextStyle.Render("Nothing to change."))
	}

	for i, p := range m.proposals {
		cursor := "  "
		if i == m.cursor {
			cursor = theme.SelectedItemStyle.Render(IconArrowRight) + " "
		}

		box := theme.MutedTextStyle.Render("[ ] ")
		if p.Accepted {
			box = theme.SuccessStyle.Render("[" + IconCheck + "] ")
		}

		name := filepath.Base(p.Path)
		if i == m.cursor {
			name = theme.SelectedItemStyle.Render(name)
		}
		lines = append(lines, cursor+box+name)
		lines = append(lines, "      "+ChangeLine(p.Original, p.Formatted, theme))
	}

	lines = append(lines, "", m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *ReviewModel) renderStatusBar() string {
	theme := m.theme
	if m.done {
		parts := []string{
			SuccessText(fmt.Sprintf("applied=%d", m.result.Applied), theme),
			theme.MutedTextStyle.Render(fmt.Sprintf("skipped=%d", m.result.Skipped)),
		}
		if m.result.Failed > 0 {
			parts = append(parts, ErrorText(fmt.Sprintf("failed=%d", m.result.Failed), theme))
		}
		return theme.StatusBarStyle.Render(strings.Join(parts, "  "))
	}
	if m.applying {
		return theme.StatusBarStyle.Render("Writing titles...")
	}

	help := []string{
		KeyHelp("↑/↓", "move", theme),
		KeyHelp("space", "toggle", theme),
		KeyHelp("a/n", "all/none", theme),
		KeyHelp("enter", "apply", theme),
		KeyHelp("q", "quit", theme),
	}
	return strings.Join(help, "  ")
}
