// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skillshare-academy/skillshare/api"
	"github.com/skillshare-academy/skillshare/lib/poll"
)

type mentorsLoadedMsg struct {
	generation int
	sessions   []api.MentorSession
	err        error
}

type bookResultMsg struct {
	sessionID int
	result    *api.BookResult
	err       error
}

// mentorsPage lists bookable mentor sessions. Availability changes as
// other students book, so the list auto-refreshes on a fixed interval
// while the page is visible. The poller stops when the page leaves
// the stack; a generation counter discards any fetch that was already
// in flight when it stopped.
type mentorsPage struct {
	shared *shared

	// pollerMu orders the asynchronous Start (from the Init command)
	// against close: a page popped before its Init command ran must
	// not start a poller nothing will stop.
	pollerMu   sync.Mutex
	closed     bool
	poller     *poll.Poller
	generation int

	sessions []api.MentorSession
	cursor   int
	loaded   bool
	loadErr  string

	notice   string
	noticeIs string

	booking bool
}

func newMentorsPage(sh *shared) *mentorsPage {
	return &mentorsPage{shared: sh}
}

func (p *mentorsPage) title() string      { return "Mentors" }
func (p *mentorsPage) requiresAuth() bool { return true }

func (p *mentorsPage) Init() tea.Cmd {
	p.generation++
	generation := p.generation
	client := p.shared.client
	store := p.shared.store
	send := p.shared.send

	p.poller = poll.New(p.shared.clock, p.shared.pollInterval)
	poller := p.poller

	// Start inside a command: the poller's immediate first invocation
	// fetches over the network, which must not block the update loop.
	return func() tea.Msg {
		p.pollerMu.Lock()
		if p.closed {
			p.pollerMu.Unlock()
			return nil
		}
		poller.Start(func() {
			sessions, err := client.MentorSessions(context.Background(), store.Token())
			if send != nil {
				send(mentorsLoadedMsg{generation: generation, sessions: sessions, err: err})
			}
		})
		p.pollerMu.Unlock()
		return nil
	}
}

// close stops the background refresh. Safe to call more than once.
func (p *mentorsPage) close() {
	p.pollerMu.Lock()
	defer p.pollerMu.Unlock()
	p.closed = true
	if p.poller != nil {
		p.poller.Stop()
	}
}

// fetchOnce is an immediate one-shot refresh used after a booking
// attempt, between poller ticks.
func (p *mentorsPage) fetchOnce() tea.Cmd {
	generation := p.generation
	client := p.shared.client
	token := p.shared.store.Token()
	return func() tea.Msg {
		sessions, err := client.MentorSessions(context.Background(), token)
		return mentorsLoadedMsg{generation: generation, sessions: sessions, err: err}
	}
}

func (p *mentorsPage) selected() *api.MentorSession {
	if p.cursor < 0 || p.cursor >= len(p.sessions) {
		return nil
	}
	return &p.sessions[p.cursor]
}

func (p *mentorsPage) book() tea.Cmd {
	mentorSession := p.selected()
	if mentorSession == nil || p.booking {
		return nil
	}
	if !mentorSession.IsAvailable {
		p.notice, p.noticeIs = "session is no longer available", "error"
		return nil
	}

	p.booking = true
	p.notice = ""
	client := p.shared.client
	token := p.shared.store.Token()
	sessionID := mentorSession.ID
	return func() tea.Msg {
		result, err := client.BookSession(context.Background(), token, sessionID)
		return bookResultMsg{sessionID: sessionID, result: result, err: err}
	}
}

func (p *mentorsPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case mentorsLoadedMsg:
		// Results from a previous visit to this page arrive with a
		// stale generation and are dropped.
		if msg.generation != p.generation {
			return p, nil
		}
		if msg.err != nil {
			// Keep showing the last good list; surface the failure
			// only if nothing has loaded yet.
			if !p.loaded {
				p.loadErr = errorNotice(msg.err)
			}
			return p, nil
		}
		p.loaded = true
		p.loadErr = ""
		p.sessions = msg.sessions
		if p.cursor >= len(p.sessions) && len(p.sessions) > 0 {
			p.cursor = len(p.sessions) - 1
		}
		return p, nil

	case bookResultMsg:
		p.booking = false
		switch {
		case msg.err == nil:
			p.notice = "session booked"
			if msg.result != nil && msg.result.Message != "" {
				p.notice = msg.result.Message
			}
			p.noticeIs = "ok"
			store := p.shared.store
			refresh := func() tea.Msg {
				return refreshDoneMsg{err: store.RefreshUser(context.Background())}
			}
			return p, tea.Batch(p.fetchOnce(), refresh)
		case api.IsForbidden(msg.err) || api.IsConflict(msg.err):
			p.notice, p.noticeIs = "session was booked by someone else", "error"
			return p, p.fetchOnce()
		case api.IsValidation(msg.err):
			// Insufficient credit. The backend message says how short.
			p.notice, p.noticeIs = errorNotice(msg.err), "error"
		case api.IsNotFound(msg.err):
			p.notice, p.noticeIs = "session no longer exists", "error"
			return p, p.fetchOnce()
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
			if p.cursor < len(p.sessions)-1 {
				p.cursor++
			}
		case key.Matches(msg, keys.Book), key.Matches(msg, keys.Select):
			return p, p.book()
		case key.Matches(msg, keys.Refresh):
			return p, p.fetchOnce()
		case key.Matches(msg, keys.Back):
			p.close()
			return p, popPage
		case key.Matches(msg, keys.Courses):
			p.close()
			return p, replacePage(newCoursesPage(p.shared))
		case key.Matches(msg, keys.Quit):
			p.close()
			return p, tea.Quit
		}
	}
	return p, nil
}

func (p *mentorsPage) View() string {
	theme := p.shared.theme
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	var builder strings.Builder

	header := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true).
		Render("Mentor sessions")
	builder.WriteString(header + "  " + faint.Render(fmt.Sprintf("auto-refreshes every %s", p.shared.pollInterval)) + "\n\n")

	switch {
	case !p.loaded && p.loadErr != "":
		builder.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorText).Render(p.loadErr) + "\n")
	case !p.loaded:
		builder.WriteString(faint.Render("Loading sessions...") + "\n")
	case len(p.sessions) == 0:
		builder.WriteString(faint.Render("no mentor sessions scheduled") + "\n")
	default:
		for i, mentorSession := range p.sessions {
			builder.WriteString(p.renderRow(mentorSession, i == p.cursor) + "\n")
		}
	}

	if p.booking {
		builder.WriteString("\n" + faint.Render("Booking...") + "\n")
	}
	if p.notice != "" {
		color := theme.NoticeText
		if p.noticeIs == "error" {
			color = theme.ErrorText
		}
		builder.WriteString("\n" + lipgloss.NewStyle().Foreground(color).Render(p.notice) + "\n")
	}

	help := lipgloss.NewStyle().Foreground(theme.HelpText).
		Render("b book · r refresh now · c courses · esc back · q quit")
	builder.WriteString("\n" + help)

	return lipgloss.NewStyle().Padding(1, 2).Render(builder.String())
}

func (p *mentorsPage) renderRow(mentorSession api.MentorSession, selected bool) string {
	theme := p.shared.theme

	availability := lipgloss.NewStyle().Foreground(theme.Completed).Render("open  ")
	if !mentorSession.IsAvailable {
		availability = lipgloss.NewStyle().Foreground(theme.FaintText).Render("booked")
	}

	line := fmt.Sprintf("  %s  %-20s %-16s %-8s %s  %2d min  %3d credits",
		availability,
		mentorSession.MentorName,
		mentorSession.Expertise,
		mentorSession.ExperienceLevel,
		mentorSession.SessionDate.Format("Mon Jan 2 15:04"),
		mentorSession.DurationMinutes,
		mentorSession.CreditCost)

	if selected {
		return lipgloss.NewStyle().
			Background(theme.SelectedBackground).
			Foreground(theme.SelectedForeground).
			Render(line)
	}
	return lipgloss.NewStyle().Foreground(theme.NormalText).Render(line)
}
