package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/triplematch/setcli/internal/api"
	"github.com/triplematch/setcli/internal/config"
	"github.com/triplematch/setcli/internal/transport"
	"github.com/triplematch/setcli/internal/version"
	"github.com/triplematch/setcli/internal/view"
	"github.com/triplematch/setcli/pkg/session"
	"github.com/triplematch/setcli/pkg/storage"
)

func main() {
	config.ParseArguments()

	if config.ShowVersion() {
		fmt.Println(version.Version())
		return
	}

	config.SetupLogger()

	ctx, quit := context.WithCancel(context.Background())
	defer quit()

	clock := clockwork.NewRealClock()

	node := transport.NewNode(ctx, config.Logger, config.WebsocketURL(),
		transport.WithClock(clock),
		transport.WithReconnectDelay(config.ReconnectDelay()),
	)
	defer node.Stop()

	client, err := api.NewClient(config.ServerURL(), config.Logger)
	if err != nil {
		config.Logger.Fatal("failed to create api client", zap.Error(err))
	}

	s := session.NewSession([]session.Option{
		session.WithContext(ctx),
		session.WithTransport(node),
		session.WithStorage(createStorage()),
		session.WithLogger(config.Logger.Named("session")),
		session.WithClock(clock),
		session.WithPlayerName(config.PlayerName()),
		session.WithNotificationCapacity(config.NotificationCapacity()),
	})
	if s == nil {
		config.Logger.Fatal("failed to create session")
	}
	defer s.Stop()

	code := view.Run(s, node, client)
	os.Exit(code)
}

func createStorage() storage.Service {
	if config.Anonymous() {
		return nil
	}
	return storage.NewLocalStorage("")
}
