package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cptiwari20/ai-learning-sub000/pkg/session"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	listNormalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	listDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	listTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

// =============================================================================
// SessionListModel - Interactive session selection
// =============================================================================

// sessionEntry is one row in the session picker.
type sessionEntry struct {
	ID        string
	Elements  int
	UpdatedAt time.Time
}

// SessionListModel is the bubbletea model for interactive session selection.
type SessionListModel struct {
	Sessions []sessionEntry
	Cursor   int
	Selected string
}

// NewSessionListModel creates a new session list model.
func NewSessionListModel(sessions []sessionEntry) SessionListModel {
	return SessionListModel{Sessions: sessions}
}

func (m SessionListModel) Init() tea.Cmd {
	return nil
}

func (m SessionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Sessions)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Sessions[m.Cursor].ID
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SessionListModel) View() string {
	var b strings.Builder

	b.WriteString(listTitleStyle.Render("Select Session"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.Sessions {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-28s %3d elements  %s",
			cursor, s.ID, s.Elements, listDimStyle.Render(formatRelativeTime(s.UpdatedAt)))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Sessions))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// pickSession runs the interactive picker over every session in the store.
func pickSession(ctx context.Context, store session.Store) (string, error) {
	ids, err := store.List(ctx)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("no sessions found")
	}

	entries := make([]sessionEntry, 0, len(ids))
	for _, id := range ids {
		entry := sessionEntry{ID: id}
		if snap, err := store.Get(ctx, id); err == nil {
			entry.Elements = len(snap.Elements)
			entry.UpdatedAt = snap.UpdatedAt
		}
		entries = append(entries, entry)
	}

	program := tea.NewProgram(NewSessionListModel(entries), tea.WithContext(ctx))
	result, err := program.Run()
	if err != nil {
		return "", err
	}

	model, ok := result.(SessionListModel)
	if !ok || model.Selected == "" {
		return "", fmt.Errorf("no session selected")
	}
	return model.Selected, nil
}

func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	diff := time.Since(t)

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
