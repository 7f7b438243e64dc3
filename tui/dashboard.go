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
)

type refreshDoneMsg struct{ err error }

// dashboardPage is the landing page for an authenticated session:
// credit balance, progress statistics, recent activity, and upcoming
// mentor bookings, all read from the session store's profile.
type dashboardPage struct {
	shared    *shared
	errorText string
}

func newDashboardPage(sh *shared) *dashboardPage {
	return &dashboardPage{shared: sh}
}

func (p *dashboardPage) title() string      { return "Dashboard" }
func (p *dashboardPage) requiresAuth() bool { return true }

func (p *dashboardPage) Init() tea.Cmd {
	return p.refresh()
}

func (p *dashboardPage) refresh() tea.Cmd {
	store := p.shared.store
	if !store.Authenticated() {
		return nil
	}
	return func() tea.Msg {
		return refreshDoneMsg{err: store.RefreshUser(context.Background())}
	}
}

func (p *dashboardPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		if msg.err != nil {
			p.errorText = "profile refresh failed: " + errorNotice(msg.err)
		} else {
			p.errorText = ""
		}
		return p, nil

	case SessionChangedMsg:
		return p, nil

	case tea.KeyMsg:
		keys := p.shared.keys
		switch {
		case key.Matches(msg, keys.Courses):
			return p, pushPage(newCoursesPage(p.shared))
		case key.Matches(msg, keys.Mentors):
			return p, pushPage(newMentorsPage(p.shared))
		case key.Matches(msg, keys.Refresh):
			return p, p.refresh()
		case key.Matches(msg, keys.Logout):
			store := p.shared.store
			return p, func() tea.Msg {
				store.Logout(context.Background())
				return SessionChangedMsg{}
			}
		case key.Matches(msg, keys.Quit):
			return p, tea.Quit
		}
	}
	return p, nil
}

// statCard renders a single boxed statistic.
func (p *dashboardPage) statCard(label string, value string, accent lipgloss.Color) string {
	theme := p.shared.theme
	valueStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 2).
		Width(20)
	return box.Render(valueStyle.Render(value) + "\n" + labelStyle.Render(label))
}

func (p *dashboardPage) View() string {
	theme := p.shared.theme
	user := p.shared.store.User()
	if user == nil {
		return lipgloss.NewStyle().Padding(1, 2).
			Foreground(theme.FaintText).
			Render("No session.")
	}

	var builder strings.Builder

	header := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true).
		Render(fmt.Sprintf("Welcome back, %s", user.Name))
	builder.WriteString(header + "\n\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		p.statCard("credits", fmt.Sprintf("%d", user.Credits), theme.CreditAccent),
		p.statCard("courses enrolled", fmt.Sprintf("%d", user.Stats.EnrolledCourses), theme.NormalText),
		p.statCard("chapters done", fmt.Sprintf("%d", user.Stats.CompletedChapters), theme.Completed),
		p.statCard("bookings", fmt.Sprintf("%d", user.Stats.UpcomingBookings), theme.NormalText),
	)
	builder.WriteString(cards + "\n\n")

	sectionStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	builder.WriteString(sectionStyle.Render("Recent activity") + "\n")
	if len(user.RecentActivity) == 0 {
		builder.WriteString(faint.Render("  nothing yet — enroll in a course to get started") + "\n")
	}
	for _, activity := range user.RecentActivity {
		when := faint.Render(activity.Timestamp.Format("Jan 2 15:04"))
		builder.WriteString(fmt.Sprintf("  %s  %s\n", when, activity.Description))
	}
	builder.WriteString("\n")

	builder.WriteString(sectionStyle.Render("Upcoming sessions") + "\n")
	if len(user.BookedSessions) == 0 {
		builder.WriteString(faint.Render("  no bookings") + "\n")
	}
	for _, booking := range user.BookedSessions {
		builder.WriteString(fmt.Sprintf("  %s — %s (%d min)\n",
			booking.Session.MentorName,
			booking.Session.SessionDate.Format("Mon Jan 2 15:04"),
			booking.Session.DurationMinutes))
	}

	if p.errorText != "" {
		builder.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.ErrorText).Render(p.errorText) + "\n")
	}

	help := lipgloss.NewStyle().Foreground(theme.HelpText).
		Render("c courses · m mentors · r refresh · ctrl+l log out · q quit")
	builder.WriteString("\n" + help)

	return lipgloss.NewStyle().Padding(1, 2).Render(builder.String())
}
