// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skillshare-academy/skillshare/api"
)

type coursesLoadedMsg struct {
	courses []api.Course
	err     error
}

type enrollResultMsg struct {
	courseID int
	err      error
}

// difficultyFilters is the cycle order for the difficulty filter.
// Empty string means no filtering.
var difficultyFilters = []string{"", "beginner", "intermediate", "advanced"}

// coursesPage is the course catalog: a filterable list with inline
// enrollment.
type coursesPage struct {
	shared *shared

	all      []api.Course
	cursor   int
	loading  bool
	loadErr  string
	notice   string
	noticeIs string // "error" or "ok"

	search          textinput.Model
	searchFocused   bool
	difficultyIndex int

	enrolling bool
}

func newCoursesPage(sh *shared) *coursesPage {
	search := textinput.New()
	search.Placeholder = "search courses"
	search.CharLimit = 100
	search.Width = 30

	return &coursesPage{
		shared:  sh,
		search:  search,
		loading: true,
	}
}

func (p *coursesPage) title() string      { return "Courses" }
func (p *coursesPage) requiresAuth() bool { return true }

func (p *coursesPage) Init() tea.Cmd { return p.load() }

func (p *coursesPage) load() tea.Cmd {
	p.loading = true
	client := p.shared.client
	token := p.shared.store.Token()
	return func() tea.Msg {
		courses, err := client.Courses(context.Background(), token)
		return coursesLoadedMsg{courses: courses, err: err}
	}
}

// visible applies the search text and difficulty filter to the full
// catalog. Search matches title and description, case-insensitively.
func (p *coursesPage) visible() []api.Course {
	query := strings.ToLower(strings.TrimSpace(p.search.Value()))
	difficulty := difficultyFilters[p.difficultyIndex]

	var result []api.Course
	for _, course := range p.all {
		if difficulty != "" && course.Difficulty != difficulty {
			continue
		}
		if query != "" {
			title := strings.ToLower(course.Title)
			description := strings.ToLower(course.Description)
			if !strings.Contains(title, query) && !strings.Contains(description, query) {
				continue
			}
		}
		result = append(result, course)
	}
	return result
}

// clampCursor keeps the cursor inside the filtered view after the
// filter or the catalog changes.
func (p *coursesPage) clampCursor() {
	count := len(p.visible())
	if count == 0 {
		p.cursor = 0
	} else if p.cursor >= count {
		p.cursor = count - 1
	}
}

func (p *coursesPage) selected() *api.Course {
	visible := p.visible()
	if p.cursor < 0 || p.cursor >= len(visible) {
		return nil
	}
	return &visible[p.cursor]
}

func (p *coursesPage) enroll() tea.Cmd {
	course := p.selected()
	if course == nil || p.enrolling {
		return nil
	}
	if course.IsEnrolled {
		p.notice, p.noticeIs = "already enrolled", "error"
		return nil
	}

	p.enrolling = true
	p.notice = ""
	client := p.shared.client
	token := p.shared.store.Token()
	courseID := course.ID
	return func() tea.Msg {
		err := client.Enroll(context.Background(), token, courseID)
		return enrollResultMsg{courseID: courseID, err: err}
	}
}

func (p *coursesPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.loadErr = errorNotice(msg.err)
			return p, nil
		}
		p.loadErr = ""
		p.all = msg.courses
		p.clampCursor()
		return p, nil

	case enrollResultMsg:
		p.enrolling = false
		switch {
		case msg.err == nil:
			p.notice, p.noticeIs = "enrolled", "ok"
			// Reload to pick up the enrollment flag, and refresh the
			// profile so the dashboard's enrolled count is current.
			store := p.shared.store
			refresh := func() tea.Msg {
				return refreshDoneMsg{err: store.RefreshUser(context.Background())}
			}
			return p, tea.Batch(p.load(), refresh)
		case api.IsForbidden(msg.err):
			// Already enrolled. Reload to reconcile the enrollment flag.
			p.notice, p.noticeIs = "already enrolled in this course", "error"
			return p, p.load()
		case api.IsValidation(msg.err):
			// Insufficient credit. The backend message says how short.
			p.notice, p.noticeIs = errorNotice(msg.err), "error"
		default:
			p.notice, p.noticeIs = errorNotice(msg.err), "error"
		}
		return p, nil

	case refreshDoneMsg:
		return p, nil

	case tea.KeyMsg:
		keys := p.shared.keys

		if p.searchFocused {
			switch msg.String() {
			case "enter", "esc":
				p.searchFocused = false
				p.search.Blur()
				return p, nil
			}
			var cmd tea.Cmd
			p.search, cmd = p.search.Update(msg)
			p.clampCursor()
			return p, cmd
		}

		switch {
		case key.Matches(msg, keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, keys.Down):
			if p.cursor < len(p.visible())-1 {
				p.cursor++
			}
		case key.Matches(msg, keys.Select):
			if course := p.selected(); course != nil {
				return p, pushPage(newCourseDetailPage(p.shared, course.ID))
			}
		case key.Matches(msg, keys.Enroll):
			return p, p.enroll()
		case key.Matches(msg, keys.Filter):
			p.searchFocused = true
			return p, p.search.Focus()
		case key.Matches(msg, keys.Cycle):
			p.difficultyIndex = (p.difficultyIndex + 1) % len(difficultyFilters)
			p.clampCursor()
		case key.Matches(msg, keys.Refresh):
			return p, p.load()
		case key.Matches(msg, keys.Back):
			return p, popPage
		case key.Matches(msg, keys.Mentors):
			return p, replacePage(newMentorsPage(p.shared))
		case key.Matches(msg, keys.Quit):
			return p, tea.Quit
		}
	}
	return p, nil
}

func (p *coursesPage) View() string {
	theme := p.shared.theme
	var builder strings.Builder

	header := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true).
		Render("Course catalog")
	builder.WriteString(header + "\n\n")

	filterLine := p.search.View()
	if difficulty := difficultyFilters[p.difficultyIndex]; difficulty != "" {
		badge := lipgloss.NewStyle().
			Foreground(theme.DifficultyColor(difficulty)).
			Render("[" + difficulty + "]")
		filterLine += "  " + badge
	}
	builder.WriteString(filterLine + "\n\n")

	switch {
	case p.loading:
		builder.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).Render("Loading courses...") + "\n")
	case p.loadErr != "":
		builder.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorText).Render(p.loadErr) + "\n")
	default:
		visible := p.visible()
		if len(visible) == 0 {
			builder.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).Render("no courses match") + "\n")
		}
		for i, course := range visible {
			builder.WriteString(p.renderRow(course, i == p.cursor) + "\n")
		}
	}

	if p.notice != "" {
		color := theme.NoticeText
		if p.noticeIs == "error" {
			color = theme.ErrorText
		}
		builder.WriteString("\n" + lipgloss.NewStyle().Foreground(color).Render(p.notice) + "\n")
	}

	help := lipgloss.NewStyle().Foreground(theme.HelpText).
		Render("enter open · e enroll · / search · f difficulty · r refresh · esc back · q quit")
	builder.WriteString("\n" + help)

	return lipgloss.NewStyle().Padding(1, 2).Render(builder.String())
}

func (p *coursesPage) renderRow(course api.Course, selected bool) string {
	theme := p.shared.theme

	badge := lipgloss.NewStyle().
		Foreground(theme.DifficultyColor(course.Difficulty)).
		Render(fmt.Sprintf("%-12s", course.Difficulty))

	enrolled := "  "
	if course.IsEnrolled {
		enrolled = lipgloss.NewStyle().Foreground(theme.Completed).Render("✓ ")
	}

	line := fmt.Sprintf("%s%s %-40s %2d chapters  %3d credits",
		enrolled, badge, course.Title, course.ChaptersCount, course.TotalCredits)

	if selected {
		return lipgloss.NewStyle().
			Background(theme.SelectedBackground).
			Foreground(theme.SelectedForeground).
			Render(line)
	}
	return lipgloss.NewStyle().Foreground(theme.NormalText).Render(line)
}
