package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shibukawa/configdir"
	"go.uber.org/zap"
)

const DefaultReconnectDelay = 5 * time.Second
const NotificationTimeout = 6 * time.Second
const DefaultNotificationCapacity = 1
const logsDirectory = "logs"

const VendorName = "triplematch"
const ApplicationName = "setcli"

const UserColor = lipgloss.Color("#7D56F4")
const ForegroundShadeColor = lipgloss.Color("#555555")

var serverURL string
var playerName string
var initialAction string
var debug bool
var anonymous bool
var reconnectDelay time.Duration
var notificationCapacity int
var showVersion bool

var Logger *zap.Logger
var LogFilePath string

func SetupLogger() {
	var c zap.Config
	if debug {
		c = zap.NewDevelopmentConfig()
	} else {
		c = zap.NewProductionConfig()
	}

	LogFilePath = createLogFile()
	c.OutputPaths = []string{LogFilePath}
	c.Development = false
	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	Logger = logger
}

func createLogFile() string {
	name := fmt.Sprintf("setcli-%s.log", time.Now().UTC().Format(time.RFC3339))
	name = strings.Replace(name, ":", "-", -1)

	configDirs := configdir.New(VendorName, ApplicationName)
	folders := configDirs.QueryFolders(configdir.Global)
	path := filepath.Join(folders[0].Path, logsDirectory, name)

	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		panic(err)
	}

	if _, err := os.Create(path); err != nil {
		panic(err)
	}

	return path
}

func ParseArguments() {
	flag.StringVar(&playerName, "name", "", "Player name")
	flag.BoolVar(&debug, "debug", false, "Show debug info")
	flag.BoolVar(&anonymous, "anonymous", false, "Anonymous mode, nothing is stored on disk")
	flag.StringVar(&serverURL, "server", "http://localhost:8080", "Game server base URL")
	flag.DurationVar(&reconnectDelay, "reconnect", DefaultReconnectDelay, "Delay before reconnecting a lost connection")
	flag.IntVar(&notificationCapacity, "notifications", DefaultNotificationCapacity, "Number of notifications displayed at once")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	initialAction = strings.Join(flag.Args(), " ")
}

func GeneratePlayerName() string {
	return fmt.Sprintf("player-%d", time.Now().Unix())
}

func ServerURL() string {
	return serverURL
}

// WebsocketURL derives the socket endpoint from the server base URL.
func WebsocketURL() string {
	url := serverURL
	switch {
	case strings.HasPrefix(url, "https://"):
		url = "wss://" + strings.TrimPrefix(url, "https://")
	case strings.HasPrefix(url, "http://"):
		url = "ws://" + strings.TrimPrefix(url, "http://")
	}
	return strings.TrimSuffix(url, "/") + "/api/ws"
}

func PlayerName() string {
	return playerName
}

func InitialAction() string {
	return initialAction
}

func Debug() bool {
	return debug
}

func Anonymous() bool {
	return anonymous
}

func ReconnectDelay() time.Duration {
	return reconnectDelay
}

func NotificationCapacity() int {
	return notificationCapacity
}

func ShowVersion() bool {
	return showVersion
}
