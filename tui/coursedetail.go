// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skillshare-academy/skillshare/api"
)

type courseLoadedMsg struct {
	courseID int
	course   *api.Course
	err      error
}

type chapterResultMsg struct {
	courseID  int
	chapterID int
	result    *api.CompleteResult
	err       error
}

// courseDetailPage shows one course: description (rendered markdown),
// the chapter list with completion state, and chapter completion for
// enrolled students.
type courseDetailPage struct {
	shared   *shared
	courseID int

	course  *api.Course
	cursor  int
	loading bool
	loadErr string

	notice   string
	noticeIs string

	completing bool
}

func newCourseDetailPage(sh *shared, courseID int) *courseDetailPage {
	return &courseDetailPage{shared: sh, courseID: courseID, loading: true}
}

func (p *courseDetailPage) title() string      { return "Course" }
func (p *courseDetailPage) requiresAuth() bool { return true }

func (p *courseDetailPage) Init() tea.Cmd { return p.load() }

func (p *courseDetailPage) load() tea.Cmd {
	p.loading = true
	client := p.shared.client
	token := p.shared.store.Token()
	courseID := p.courseID
	return func() tea.Msg {
		course, err := client.Course(context.Background(), token, courseID)
		return courseLoadedMsg{courseID: courseID, course: course, err: err}
	}
}

func (p *courseDetailPage) completeChapter() tea.Cmd {
	if p.course == nil || p.completing || p.cursor >= len(p.course.Chapters) {
		return nil
	}
	chapter := p.course.Chapters[p.cursor]
	if chapter.IsCompleted {
		p.notice, p.noticeIs = "chapter already completed", "error"
		return nil
	}

	p.completing = true
	p.notice = ""
	client := p.shared.client
	token := p.shared.store.Token()
	courseID := p.courseID
	chapterID := chapter.ID
	return func() tea.Msg {
		result, err := client.CompleteChapter(context.Background(), token, courseID, chapterID)
		return chapterResultMsg{courseID: courseID, chapterID: chapterID, result: result, err: err}
	}
}

func (p *courseDetailPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case courseLoadedMsg:
		if msg.courseID != p.courseID {
			return p, nil
		}
		p.loading = false
		if msg.err != nil {
			if api.IsNotFound(msg.err) {
				p.loadErr = "course not found"
			} else {
				p.loadErr = errorNotice(msg.err)
			}
			return p, nil
		}
		p.loadErr = ""
		p.course = msg.course
		if p.cursor >= len(p.course.Chapters) {
			p.cursor = 0
		}
		return p, nil

	case chapterResultMsg:
		if msg.courseID != p.courseID {
			return p, nil
		}
		p.completing = false
		switch {
		case msg.err == nil:
			p.notice = fmt.Sprintf("chapter complete — +%d credits", msg.result.CreditsEarned)
			p.noticeIs = "ok"
			// Reload the chapter list and refresh the profile so the
			// credit balance is visible everywhere immediately.
			store := p.shared.store
			refresh := func() tea.Msg {
				return refreshDoneMsg{err: store.RefreshUser(context.Background())}
			}
			return p, tea.Batch(p.load(), refresh)
		case api.IsForbidden(msg.err):
			// Already completed. Reload to reconcile the chapter state.
			p.notice, p.noticeIs = "chapter already completed", "error"
			return p, p.load()
		case api.IsNotFound(msg.err):
			p.notice, p.noticeIs = "chapter no longer exists", "error"
			return p, p.load()
		default:
			p.notice, p.noticeIs = errorNotice(msg.err), "error"
		}
		return p, nil

	case refreshDoneMsg:
		return p, nil

	case tea.KeyMsg:
		keys := p.shared.keys
		switch {
		case key.Matches(msg, keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, keys.Down):
			if p.course != nil && p.cursor < len(p.course.Chapters)-1 {
				p.cursor++
			}
		case key.Matches(msg, keys.Select):
			return p, p.completeChapter()
		case key.Matches(msg, keys.Refresh):
			return p, p.load()
		case key.Matches(msg, keys.Back):
			return p, popPage
		case key.Matches(msg, keys.Quit):
			return p, tea.Quit
		}
	}
	return p, nil
}

func (p *courseDetailPage) View() string {
	theme := p.shared.theme
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	if p.loading {
		return lipgloss.NewStyle().Padding(1, 2).Render(faint.Render("Loading course..."))
	}
	if p.loadErr != "" {
		errorStyle := lipgloss.NewStyle().Foreground(theme.ErrorText)
		return lipgloss.NewStyle().Padding(1, 2).Render(errorStyle.Render(p.loadErr))
	}

	course := p.course
	var builder strings.Builder

	header := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true).
		Render(course.Title)
	badge := lipgloss.NewStyle().
		Foreground(theme.DifficultyColor(course.Difficulty)).
		Render("[" + course.Difficulty + "]")
	builder.WriteString(header + " " + badge + "\n")
	builder.WriteString(faint.Render(fmt.Sprintf("%d chapters · %d credits total",
		len(course.Chapters), course.TotalCredits)) + "\n\n")

	width := p.shared.width - 6
	if width > 100 {
		width = 100
	}
	if description := renderMarkdown(course.Description, theme, width); description != "" {
		builder.WriteString(description + "\n\n")
	}

	sectionStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	builder.WriteString(sectionStyle.Render("Chapters") + "\n")

	if !course.IsEnrolled {
		builder.WriteString(faint.Render("  enroll to see chapter content and earn credits") + "\n")
	}
	for i, chapter := range course.Chapters {
		builder.WriteString(p.renderChapter(chapter, i == p.cursor) + "\n")
	}

	if p.completing {
		builder.WriteString("\n" + faint.Render("Completing chapter...") + "\n")
	}
	if p.notice != "" {
		color := theme.NoticeText
		if p.noticeIs == "error" {
			color = theme.ErrorText
		}
		builder.WriteString("\n" + lipgloss.NewStyle().Foreground(color).Render(p.notice) + "\n")
	}

	help := lipgloss.NewStyle().Foreground(theme.HelpText).
		Render("enter complete chapter · r refresh · esc back · q quit")
	builder.WriteString("\n" + help)

	return lipgloss.NewStyle().Padding(1, 2).Render(builder.String())
}

func (p *courseDetailPage) renderChapter(chapter api.Chapter, selected bool) string {
	theme := p.shared.theme

	marker := lipgloss.NewStyle().Foreground(theme.Pending).Render("○")
	if chapter.IsCompleted {
		marker = lipgloss.NewStyle().Foreground(theme.Completed).Render("●")
	}

	line := fmt.Sprintf("  %s %-50s %2d credits", marker, chapter.Title, chapter.Credits)
	if selected {
		return lipgloss.NewStyle().
			Background(theme.SelectedBackground).
			Foreground(theme.SelectedForeground).
			Render(line)
	}
	return lipgloss.NewStyle().Foreground(theme.NormalText).Render(line)
}
