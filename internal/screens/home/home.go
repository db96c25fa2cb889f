package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizflow/internal/api"
	"github.com/abhisek/quizflow/internal/coach"
	"github.com/abhisek/quizflow/internal/router"
	"github.com/abhisek/quizflow/internal/screen"
	"github.com/abhisek/quizflow/internal/screens/feed"
	"github.com/abhisek/quizflow/internal/screens/progress"
	"github.com/abhisek/quizflow/internal/store"
	"github.com/abhisek/quizflow/internal/ui/components"
	"github.com/abhisek/quizflow/internal/ui/theme"
)

// HomeScreen is the entry menu of the application.
type HomeScreen struct {
	menu          components.Menu
	authenticated bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen with the dependencies the feed needs.
func New(client *api.Client, sessionRepo store.SessionRepo, eventRepo store.EventRepo, coachSvc *coach.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Browse feed", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: feed.New(client, sessionRepo, eventRepo, coachSvc),
				}
			}
		}},
		{Label: "My progress", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(eventRepo)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		authenticated: client.Authenticated(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Width(width).Render("Q U I Z F L O W"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("An endless feed of quizzes, one question at a time"))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if !h.authenticated {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Set QUIZFLOW_TOKEN to sync answers with the platform.")))
	}

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
