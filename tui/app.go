// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skillshare-academy/skillshare/api"
	"github.com/skillshare-academy/skillshare/lib/clock"
	"github.com/skillshare-academy/skillshare/session"
)

// SessionChangedMsg is delivered through the bubbletea message loop
// whenever the session store transitions (settle, login, logout,
// profile refresh). The route guard re-evaluates on every one.
type SessionChangedMsg struct{}

// Navigation messages. Pages emit these as commands; the App applies
// them to its page stack.
type pushPageMsg struct{ page page }
type popPageMsg struct{}
type replacePageMsg struct{ page page }

// pushPage, popPage, and replacePage are the commands pages use to
// drive navigation.
func pushPage(p page) tea.Cmd {
	return func() tea.Msg { return pushPageMsg{page: p} }
}

func popPage() tea.Msg { return popPageMsg{} }

func replacePage(p page) tea.Cmd {
	return func() tea.Msg { return replacePageMsg{page: p} }
}

// page is one screen of the TUI. Pages receive every message the App
// does not consume, and render into the window size tracked on shared.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (page, tea.Cmd)
	View() string
	title() string
	requiresAuth() bool
}

// closer is implemented by pages holding resources that outlive a
// single Update call (the mentors page's poller). The App closes a
// page when it leaves the stack and when the program quits.
type closer interface {
	close()
}

// shared carries the dependencies every page needs. A single instance
// is created per App and handed to page constructors.
type shared struct {
	client       *api.Client
	store        *session.Store
	theme        Theme
	keys         KeyMap
	clock        clock.Clock
	pollInterval time.Duration

	// send injects a message into the program loop from outside a
	// command (poller callbacks, store watchers). Nil until the
	// program starts; pages must tolerate a brief nil window only if
	// they spawn work from Init, which the App guarantees runs after
	// wiring.
	send func(tea.Msg)

	width  int
	height int
}

// Options configures a TUI App.
type Options struct {
	Client *api.Client
	Store  *session.Store

	// PollInterval is how often the mentors page refreshes. Zero
	// means 30 seconds.
	PollInterval time.Duration

	// Clock drives the mentors poller. Nil means the real clock.
	Clock clock.Clock

	// Theme and Keys fall back to the defaults when zero.
	Theme *Theme
	Keys  *KeyMap
}

// App is the root bubbletea model: a navigation stack of pages plus
// the session guard that decides which page may render.
type App struct {
	shared *shared
	stack  []page

	// pendingGuard is true while the top page requires auth and the
	// session is still restoring. The spinner renders instead of the
	// page until the store settles.
	pendingGuard bool
	spinner      spinner.Model

	quitting bool
}

// NewApp builds the root model. The initial page is the dashboard;
// the guard redirects to login if the restored session is absent.
func NewApp(options Options) *App {
	theme := DefaultTheme
	if options.Theme != nil {
		theme = *options.Theme
	}
	keys := DefaultKeyMap
	if options.Keys != nil {
		keys = *options.Keys
	}
	interval := options.PollInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	sh := &shared{
		client:       options.Client,
		store:        options.Store,
		theme:        theme,
		keys:         keys,
		clock:        options.Clock,
		pollInterval: interval,
		width:        80,
		height:       24,
	}

	loadingSpinner := spinner.New()
	loadingSpinner.Spinner = spinner.Dot
	loadingSpinner.Style = lipgloss.NewStyle().Foreground(theme.CreditAccent)

	return &App{
		shared:  sh,
		stack:   []page{newDashboardPage(sh)},
		spinner: loadingSpinner,
	}
}

// setSender wires the program's Send function into shared state so
// poller callbacks and store watchers can inject messages.
func (app *App) setSender(send func(tea.Msg)) {
	app.shared.send = send
}

func (app *App) top() page {
	return app.stack[len(app.stack)-1]
}

func (app *App) Init() tea.Cmd {
	store := app.shared.store
	initialize := func() tea.Msg {
		store.Initialize(context.Background())
		return SessionChangedMsg{}
	}
	return tea.Batch(initialize, app.applyGuard(), app.top().Init())
}

// applyGuard evaluates the route guard for the top page and applies
// its decision. Redirect resets the stack to the login page so the
// protected page is not reachable via back navigation.
func (app *App) applyGuard() tea.Cmd {
	switch decideRoute(app.shared.store, app.top().requiresAuth()) {
	case routePending:
		if !app.pendingGuard {
			app.pendingGuard = true
			return app.spinner.Tick
		}
		return nil
	case routeRedirect:
		app.pendingGuard = false
		app.closeAll()
		login := newLoginPage(app.shared)
		app.stack = []page{login}
		return login.Init()
	default:
		app.pendingGuard = false
		return nil
	}
}

// closeAll releases resources held by every page on the stack.
func (app *App) closeAll() {
	for _, p := range app.stack {
		if c, ok := p.(closer); ok {
			c.close()
		}
	}
}

func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		app.shared.width = msg.Width
		app.shared.height = msg.Height
		return app, nil

	case SessionChangedMsg:
		// Let the page react first (dashboard re-reads the profile),
		// then re-check the guard: a logout anywhere must redirect.
		top, pageCmd := app.top().Update(msg)
		app.stack[len(app.stack)-1] = top
		return app, tea.Batch(pageCmd, app.applyGuard())

	case spinner.TickMsg:
		if app.pendingGuard {
			var cmd tea.Cmd
			app.spinner, cmd = app.spinner.Update(msg)
			return app, cmd
		}

	case pushPageMsg:
		app.stack = append(app.stack, msg.page)
		return app, tea.Batch(app.applyGuard(), msg.page.Init())

	case popPageMsg:
		if len(app.stack) > 1 {
			if c, ok := app.top().(closer); ok {
				c.close()
			}
			app.stack = app.stack[:len(app.stack)-1]
		}
		return app, app.applyGuard()

	case replacePageMsg:
		if c, ok := app.top().(closer); ok {
			c.close()
		}
		app.stack[len(app.stack)-1] = msg.page
		return app, tea.Batch(app.applyGuard(), msg.page.Init())

	case tea.KeyMsg:
		// Ctrl+C always quits, even while a form has focus.
		if msg.String() == "ctrl+c" {
			app.quitting = true
			app.closeAll()
			return app, tea.Quit
		}
	}

	top, cmd := app.top().Update(msg)
	app.stack[len(app.stack)-1] = top
	return app, cmd
}

func (app *App) View() string {
	if app.quitting {
		return ""
	}
	if app.pendingGuard {
		style := lipgloss.NewStyle().
			Foreground(app.shared.theme.FaintText).
			Padding(1, 2)
		return style.Render(app.spinner.View() + " Restoring session...")
	}
	return app.top().View()
}

// errorNotice converts a failed backend operation into view text.
// Backend errors carry their own message; transport failures have
// none and fall back to a generic notice.
func errorNotice(err error) string {
	if message := api.ErrorMessage(err); message != "" {
		return message
	}
	return "network error"
}

// Run starts the TUI: builds the program, wires the session watcher
// into the message loop, and blocks until the user quits.
func Run(options Options) error {
	app := NewApp(options)
	program := tea.NewProgram(app, tea.WithAltScreen())
	app.setSender(program.Send)

	cancelWatch := options.Store.Watch(func() {
		program.Send(SessionChangedMsg{})
	})
	defer cancelWatch()

	_, err := program.Run()
	return err
}
