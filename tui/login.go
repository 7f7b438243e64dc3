// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skillshare-academy/skillshare/session"
)

type loginResultMsg struct{ err error }

// loginPage is the sign-in form. It is the redirect target of the
// route guard, so it must render for unauthenticated sessions.
type loginPage struct {
	shared *shared

	email    textinput.Model
	password textinput.Model
	focus    int

	submitting bool
	errorText  string
	notice     string
}

func newLoginPage(sh *shared) *loginPage {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	password.Width = 40

	return &loginPage{
		shared:   sh,
		email:    email,
		password: password,
	}
}

func (p *loginPage) title() string      { return "Sign in" }
func (p *loginPage) requiresAuth() bool { return false }

func (p *loginPage) Init() tea.Cmd { return textinput.Blink }

// withNotice sets a one-line banner above the form, used after
// registration when the account needs a fresh sign-in.
func (p *loginPage) withNotice(notice, email string) *loginPage {
	p.notice = notice
	p.email.SetValue(email)
	return p
}

func (p *loginPage) setFocus(index int) tea.Cmd {
	p.focus = index
	if index == 0 {
		p.password.Blur()
		return p.email.Focus()
	}
	p.email.Blur()
	return p.password.Focus()
}

func (p *loginPage) submit() tea.Cmd {
	email := strings.TrimSpace(p.email.Value())
	password := p.password.Value()
	if email == "" || password == "" {
		p.errorText = "email and password are required"
		return nil
	}

	p.submitting = true
	p.errorText = ""
	store := p.shared.store
	return func() tea.Msg {
		return loginResultMsg{err: store.Login(context.Background(), email, password)}
	}
}

func (p *loginPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		p.submitting = false
		if msg.err == nil {
			return p, replacePage(newDashboardPage(p.shared))
		}
		if errors.Is(msg.err, session.ErrInvalidCredentials) {
			p.errorText = "invalid email or password"
		} else {
			p.errorText = errorNotice(msg.err)
		}
		return p, nil

	case tea.KeyMsg:
		if p.submitting {
			return p, nil
		}
		switch msg.String() {
		case "enter":
			if p.focus == 0 {
				return p, p.setFocus(1)
			}
			return p, p.submit()
		case "tab", "down":
			return p, p.setFocus((p.focus + 1) % 2)
		case "shift+tab", "up":
			return p, p.setFocus((p.focus + 1) % 2)
		case "ctrl+r":
			return p, replacePage(newRegisterPage(p.shared))
		}
	}

	var cmd tea.Cmd
	if p.focus == 0 {
		p.email, cmd = p.email.Update(msg)
	} else {
		p.password, cmd = p.password.Update(msg)
	}
	return p, cmd
}

func (p *loginPage) View() string {
	theme := p.shared.theme
	var builder strings.Builder

	header := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true).
		Render("SkillShare Academy — Sign in")
	builder.WriteString(header + "\n\n")

	if p.notice != "" {
		builder.WriteString(lipgloss.NewStyle().Foreground(theme.NoticeText).Render(p.notice) + "\n\n")
	}

	builder.WriteString(p.email.View() + "\n")
	builder.WriteString(p.password.View() + "\n\n")

	if p.submitting {
		builder.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).Render("Signing in...") + "\n")
	}
	if p.errorText != "" {
		builder.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorText).Render(p.errorText) + "\n")
	}

	help := lipgloss.NewStyle().Foreground(theme.HelpText).
		Render("enter submit · tab next field · ctrl+r create account · ctrl+c quit")
	builder.WriteString("\n" + help)

	return lipgloss.NewStyle().Padding(1, 2).Render(builder.String())
}
