package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/triplematch/setcli/internal/api"
	"github.com/triplematch/setcli/internal/config"
	"github.com/triplematch/setcli/internal/transport"
	"github.com/triplematch/setcli/pkg/session"
)

func Run(s *session.Session, t transport.Service, client *api.Client) int {
	output := termenv.DefaultOutput()
	output.SetWindowTitle("setcli")

	m := initialModel(s, t, client)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		config.Logger.Error("error running program", zap.Error(err))
		return 1
	}
	return 0
}
