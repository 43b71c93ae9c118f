package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/triplematch/setcli/internal/api"
	"github.com/triplematch/setcli/internal/config"
	"github.com/triplematch/setcli/internal/transport"
	"github.com/triplematch/setcli/internal/view/commands"
	"github.com/triplematch/setcli/internal/view/components/boardview"
	"github.com/triplematch/setcli/internal/view/components/errorview"
	"github.com/triplematch/setcli/internal/view/components/eventhandler"
	"github.com/triplematch/setcli/internal/view/components/notificationview"
	"github.com/triplematch/setcli/internal/view/components/playersview"
	"github.com/triplematch/setcli/internal/view/components/shortcutsview"
	"github.com/triplematch/setcli/internal/view/components/statusview"
	"github.com/triplematch/setcli/internal/view/components/userinput"
	"github.com/triplematch/setcli/internal/view/messages"
	"github.com/triplematch/setcli/internal/view/states"
	"github.com/triplematch/setcli/internal/view/update"
	"github.com/triplematch/setcli/pkg/protocol"
	"github.com/triplematch/setcli/pkg/session"
)

// Errors shown in the lobby disappear on their own after a while,
// same as game notifications do.
const errorDisplayTimeout = 6 * time.Second

type model struct {
	session   *session.Session
	transport transport.Service
	api       *api.Client

	// Filled from messages during the Update stage and
	// rendered by components during the View stage.
	state            states.AppState
	fatalError       error
	snapshot         *protocol.GameSnapshot
	roomCode         protocol.RoomCode
	connectionStatus transport.Status
	games            []protocol.RoomCode

	// UI components state
	commandMode              bool
	errorDismissRestart      chan struct{}
	errorView                errorview.Model
	boardView                boardview.Model
	playersView              playersview.Model
	notificationView         notificationview.Model
	statusView               statusview.Model
	shortcutsView            shortcutsview.Model
	snapshotEventHandler     eventhandler.Model[*protocol.GameSnapshot, messages.SnapshotMessage]
	transportEventHandler    eventhandler.Model[transport.Status, messages.ConnectionStatus]
	notificationEventHandler eventhandler.Model[[]session.Notification, messages.NotificationsMessage]

	input   userinput.Model
	spinner spinner.Model
}

func initialModel(s *session.Session, t transport.Service, client *api.Client) model {
	return model{
		session:   s,
		transport: t,
		api:       client,

		state:    states.Initializing,
		snapshot: nil,
		roomCode: protocol.RoomCode{},

		commandMode:      false,
		errorView:        errorview.New(),
		boardView:        boardview.New(),
		playersView:      playersview.New(),
		notificationView: notificationview.New(),
		statusView:       statusview.New(),
		shortcutsView:    shortcutsview.New(),

		input:   userinput.New(false),
		spinner: createSpinner(),
	}
}

func createSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return s
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.input.Init(),
		m.spinner.Tick,
		m.errorView.Init(),
		m.boardView.Init(),
		m.playersView.Init(),
		m.notificationView.Init(),
		m.statusView.Init(),
		m.shortcutsView.Init(),
		commands.InitializeApp(m.session, m.transport, m.api),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := update.NewUpdateCommands()

	switchToState := func(state states.AppState) {
		m.state = state
		cmds.AppendMessage(messages.AppStateMessage{State: state})
	}

	switch msg := msg.(type) {
	case messages.FatalErrorMessage:
		m.fatalError = msg.Err

	case messages.AppStateFinishedMessage:
		switch msg.State {
		case states.Initializing:
			cmds.AppendMessage(messages.PlayerIDMessage{
				PlayerID: m.session.Player().ID,
			})
			if m.session.Player().Name == "" {
				switchToState(states.InputPlayerName)
			} else {
				switchToState(states.InLobby)
				if config.InitialAction() != "" {
					m.input.SetValue(config.InitialAction())
					cmds.AppendCommand(ProcessInput(&m))
				}
			}

			// Subscribe to events once the app is initialized
			convertStatus := func(status transport.Status) messages.ConnectionStatus {
				return messages.ConnectionStatus{Status: status}
			}
			m.transportEventHandler = eventhandler.New[transport.Status, messages.ConnectionStatus](convertStatus)
			cmds.AppendCommand(m.transportEventHandler.Init(
				m.transport.SubscribeToStatus(),
				m.transport.Status(),
			))

			convertSnapshot := func(snapshot *protocol.GameSnapshot) messages.SnapshotMessage {
				return messages.SnapshotMessage{Snapshot: snapshot}
			}
			m.snapshotEventHandler = eventhandler.New[*protocol.GameSnapshot, messages.SnapshotMessage](convertSnapshot)
			cmds.AppendCommand(m.snapshotEventHandler.Init(
				m.session.SubscribeToSnapshot(),
				m.session.Snapshot(),
			))

			convertNotifications := func(list []session.Notification) messages.NotificationsMessage {
				return messages.NotificationsMessage{Notifications: list}
			}
			m.notificationEventHandler = eventhandler.New[[]session.Notification, messages.NotificationsMessage](convertNotifications)
			cmds.AppendCommand(m.notificationEventHandler.Init(
				m.session.SubscribeToNotifications(),
				nil,
			))

		case states.InputPlayerName:
			switchToState(states.InLobby)
			if config.InitialAction() != "" {
				m.input.SetValue(config.InitialAction())
				cmds.AppendCommand(ProcessInput(&m))
			}
		}

	case messages.ConnectionStatus:
		m.connectionStatus = msg.Status

	case messages.SnapshotMessage:
		m.snapshot = msg.Snapshot

	case messages.RoomJoin:
		m.roomCode = msg.RoomCode
		m.boardView.Focus()
		switchToState(states.Playing)

	case messages.RoomLeave:
		m.roomCode = protocol.RoomCode{}
		m.snapshot = nil
		m.boardView.Blur()
		switchToState(states.InLobby)

	case messages.GamesListMessage:
		m.games = msg.Rooms

	case messages.CommandModeChange:
		m.commandMode = msg.CommandMode

	case messages.ErrorMessage:
		if msg.Err != nil {
			if m.errorDismissRestart != nil {
				m.errorDismissRestart <- struct{}{}
			} else {
				m.errorDismissRestart = make(chan struct{}, 100)
				cmds.AppendCommand(commands.DelayMessage(
					errorDisplayTimeout,
					messages.ClearErrorMessage{},
					m.errorDismissRestart,
				))
			}
		}

	case messages.ClearErrorMessage:
		m.errorDismissRestart = nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			cmds.AppendCommand(commands.QuitApp(m.session))
		case msg.Type == tea.KeyEnter && m.input.Focused():
			cmds.AppendCommand(ProcessUserInput(&m))
		case msg.Type == tea.KeyShiftTab:
			cmds.AppendMessage(messages.CommandModeChange{
				CommandMode: !m.commandMode,
			})
		case key.Matches(msg, commands.DefaultKeyMap.ToggleCard) && !m.input.Focused():
			if m.state == states.Playing && m.snapshot != nil && !m.snapshot.GameOver {
				cmds.AppendCommand(commands.ToggleCard(m.session, m.boardView.CursorIndex()))
			}
		}

		if m.input.Focused() {
			break
		}

		if !m.roomCode.Empty() {
			switch {
			case key.Matches(msg, commands.DefaultKeyMap.LeaveRoom):
				cmds.AppendCommand(commands.LeaveRoom(m.session))
			case key.Matches(msg, commands.DefaultKeyMap.RequestCards):
				if m.snapshot != nil && !m.snapshot.GameOver {
					cmds.AppendCommand(commands.RequestCards(m.session))
				}
			case key.Matches(msg, commands.DefaultKeyMap.NewGame):
				if m.snapshot != nil && m.snapshot.GameOver {
					cmds.AppendCommand(commands.StartNewGame(m.session))
				}
			}
		} else if m.state == states.InLobby {
			switch {
			case key.Matches(msg, commands.DefaultKeyMap.NewRoom):
				cmds.AppendCommand(commands.CreateNewRoom(m.session, m.api, protocol.ModeClassic))
			case key.Matches(msg, commands.DefaultKeyMap.BestOf3):
				cmds.AppendCommand(commands.CreateNewRoom(m.session, m.api, protocol.ModeBestOf3))
			case key.Matches(msg, commands.DefaultKeyMap.ListGames):
				cmds.AppendCommand(commands.ListGames(m.api))
			case key.Matches(msg, commands.DefaultKeyMap.Rejoin):
				if code := m.session.LastRoom(); !code.Empty() {
					cmds.AppendCommand(commands.JoinRoom(m.session, m.api, code))
				}
			case key.Matches(msg, commands.DefaultKeyMap.JoinRoom):
				m.input.SetValue("join ")
				cmds.AppendMessage(messages.CommandModeChange{CommandMode: true})
			}
		}
	}

	m.input, cmds.InputCommand = m.input.Update(msg)
	m.spinner, cmds.SpinnerCommand = m.spinner.Update(msg)
	m.errorView = m.errorView.Update(msg)
	m.boardView = m.boardView.Update(msg, m.session.Selection())
	m.playersView = m.playersView.Update(msg)
	m.notificationView = m.notificationView.Update(msg)
	m.statusView = m.statusView.Update(msg)
	m.shortcutsView = m.shortcutsView.Update(msg)
	m.snapshotEventHandler, cmds.SnapshotEventHandlerCommand = m.snapshotEventHandler.Update(msg)
	m.transportEventHandler, cmds.TransportEventHandlerCommand = m.transportEventHandler.Update(msg)
	m.notificationEventHandler, cmds.NotificationEventHandlerCommand = m.notificationEventHandler.Update(msg)

	return m, cmds.Batch()
}

func (m model) View() string {
	if m.fatalError != nil {
		return fmt.Sprintf(" ☠️ fatal error: %s\n%s", m.fatalError, renderLogPath())
	}

	view := "\n"
	if config.Debug() {
		view += fmt.Sprintf("%s\n\n", renderLogPath())
	}
	view += m.renderAppState()

	return lipgloss.JoinHorizontal(lipgloss.Left, "  ", view)
}

// Ensure that model fulfils the tea.Model interface at compile time.
var _ tea.Model = (*model)(nil)
