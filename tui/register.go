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

type registerResultMsg struct {
	authenticated bool
	err           error
}

// registerPage is the account creation form. Validation mirrors the
// backend's rules so most mistakes are caught before a request is
// made; backend rejections (duplicate email, validation details) are
// shown inline.
type registerPage struct {
	shared *shared

	inputs []textinput.Model // name, email, password, confirm
	focus  int

	submitting bool
	errorText  string
}

const passwordMinLength = 6

func newRegisterPage(sh *shared) *registerPage {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 100
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password (6+ characters)"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	password.Width = 40

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.CharLimit = 128
	confirm.Width = 40

	return &registerPage{
		shared: sh,
		inputs: []textinput.Model{name, email, password, confirm},
	}
}

func (p *registerPage) title() string      { return "Create account" }
func (p *registerPage) requiresAuth() bool { return false }

func (p *registerPage) Init() tea.Cmd { return textinput.Blink }

func (p *registerPage) setFocus(index int) tea.Cmd {
	p.focus = index
	var cmd tea.Cmd
	for i := range p.inputs {
		if i == index {
			cmd = p.inputs[i].Focus()
		} else {
			p.inputs[i].Blur()
		}
	}
	return cmd
}

// validate applies the client-side rules and returns an error message,
// or "" when the form is submittable.
func (p *registerPage) validate() string {
	name := strings.TrimSpace(p.inputs[0].Value())
	email := strings.TrimSpace(p.inputs[1].Value())
	password := p.inputs[2].Value()
	confirm := p.inputs[3].Value()

	switch {
	case name == "" || email == "" || password == "":
		return "name, email, and password are required"
	case len(password) < passwordMinLength:
		return "password must be at least 6 characters"
	case password != confirm:
		return "passwords do not match"
	}
	return ""
}

func (p *registerPage) submit() tea.Cmd {
	if message := p.validate(); message != "" {
		p.errorText = message
		return nil
	}

	p.submitting = true
	p.errorText = ""
	store := p.shared.store
	name := strings.TrimSpace(p.inputs[0].Value())
	email := strings.TrimSpace(p.inputs[1].Value())
	password := p.inputs[2].Value()
	return func() tea.Msg {
		authenticated, err := store.Register(context.Background(), name, email, password)
		return registerResultMsg{authenticated: authenticated, err: err}
	}
}

func (p *registerPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		p.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, session.ErrAccountExists) {
				p.errorText = "an account with this email already exists"
			} else {
				p.errorText = errorNotice(msg.err)
			}
			return p, nil
		}
		if msg.authenticated {
			return p, replacePage(newDashboardPage(p.shared))
		}
		// Account created but no token issued: route through sign-in.
		login := newLoginPage(p.shared).
			withNotice("Account created. Sign in to continue.", strings.TrimSpace(p.inputs[1].Value()))
		return p, replacePage(login)

	case tea.KeyMsg:
		if p.submitting {
			return p, nil
		}
		switch msg.String() {
		case "enter":
			if p.focus < len(p.inputs)-1 {
				return p, p.setFocus(p.focus + 1)
			}
			return p, p.submit()
		case "tab", "down":
			return p, p.setFocus((p.focus + 1) % len(p.inputs))
		case "shift+tab", "up":
			return p, p.setFocus((p.focus + len(p.inputs) - 1) % len(p.inputs))
		case "ctrl+r":
			return p, replacePage(newLoginPage(p.shared))
		}
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p *registerPage) View() string {
	theme := p.shared.theme
	var builder strings.Builder

	header := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true).
		Render("SkillShare Academy — Create account")
	builder.WriteString(header + "\n\n")

	for i := range p.inputs {
		builder.WriteString(p.inputs[i].View() + "\n")
	}
	builder.WriteString("\n")

	if p.submitting {
		builder.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).Render("Creating account...") + "\n")
	}
	if p.errorText != "" {
		builder.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorText).Render(p.errorText) + "\n")
	}

	help := lipgloss.NewStyle().Foreground(theme.HelpText).
		Render("enter next/submit · tab next field · ctrl+r back to sign in · ctrl+c quit")
	builder.WriteString("\n" + help)

	return lipgloss.NewStyle().Padding(1, 2).Render(builder.String())
}
