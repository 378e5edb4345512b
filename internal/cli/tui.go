package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/danehlert/courtline/pkg/draw"
	"github.com/danehlert/courtline/pkg/draw/standings"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// drawEntry pairs a loaded draw with the file it came from.
type drawEntry struct {
	Path string
	Draw *draw.Draw
}

// browseState selects which screen the browser shows.
type browseState int

const (
	statePicker browseState = iota
	stateDetail
)

// =============================================================================
// browseModel - Interactive draw inspection
// =============================================================================

// browseModel is the bubbletea model for browsing draws. The picker screen
// lists the loaded draws; the detail screen shows rounds and results for the
// selected draw, or standings for a round-robin pool.
type browseModel struct {
	Entries []drawEntry
	Cursor  int
	State   browseState
	Height  int
	Offset  int
}

func newBrowseModel(entries []drawEntry) browseModel {
	return browseModel{Entries: entries, Height: 15}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.State == stateDetail {
				m.State = statePicker
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.State == statePicker && m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.State == statePicker && m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if m.State == statePicker {
				m.State = stateDetail
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.State == stateDetail {
		return m.detailView()
	}
	return m.pickerView()
}

// =============================================================================
// Picker Screen
// =============================================================================

func (m browseModel) pickerView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Draw"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ inspect  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		kind := "elimination"
		if e.Draw.IsRoundRobin() {
			kind = "round robin"
		}

		label := e.Draw.DrawID
		if label == "" {
			label = e.Path
		}
		rows = append(rows, []string{
			cursor,
			label,
			kind,
			strconv.Itoa(e.Draw.Size()),
			strconv.Itoa(len(e.Draw.Matches)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Draw", "Type", "Size", "Matches").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// =============================================================================
// Detail Screen
// =============================================================================

func (m browseModel) detailView() string {
	e := m.Entries[m.Cursor]
	var b strings.Builder

	label := e.Draw.DrawID
	if label == "" {
		label = e.Path
	}
	b.WriteString(StyleTitle.Render(label))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	if e.Draw.IsRoundRobin() {
		rows := standings.NewAggregator().Standings(e.Draw.Matches)
		b.WriteString(standingsTable(rows).Render())
		b.WriteString("\n")
		return b.String()
	}

	for _, round := range e.Draw.GroupedRounds() {
		b.WriteString(StyleHighlight.Render(roundLabel(round)))
		b.WriteString("\n")
		for _, match := range round.Matches {
			b.WriteString(matchLine(&match))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// roundLabel returns the display name for a round, falling back to a
// numbered label.
func roundLabel(r draw.Round) string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("Round %d", r.RoundNumber)
}

// matchLine formats one match for the detail screen, marking the winner.
func matchLine(m *draw.Match) string {
	name1 := sideLabel(m.Side1)
	name2 := sideLabel(m.Side2)

	switch m.WinningSide {
	case draw.WinnerSide1:
		name1 = StyleSuccess.Render(name1)
		name2 = listDimStyle.Render(name2)
	case draw.WinnerSide2:
		name1 = listDimStyle.Render(name1)
		name2 = StyleSuccess.Render(name2)
	default:
		name1 = listNormalStyle.Render(name1)
		name2 = listNormalStyle.Render(name2)
	}

	line := fmt.Sprintf("  %s vs %s", name1, name2)
	if m.Score1 != "" || m.Score2 != "" {
		line += listDimStyle.Render(fmt.Sprintf("  (%s-%s)", m.Score1, m.Score2))
	}
	return line
}

func sideLabel(s *draw.Side) string {
	if name := s.DisplayName(); name != "" {
		return name
	}
	return "TBD"
}
