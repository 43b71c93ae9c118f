package session

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/triplematch/setcli/internal/transport"
	"github.com/triplematch/setcli/pkg/storage"
)

type Option func(*Session)

func WithContext(ctx context.Context) Option {
	return func(s *Session) {
		s.ctx = ctx
	}
}

func WithTransport(t transport.Service) Option {
	return func(s *Session) {
		s.transport = t
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

func WithStorage(st storage.Service) Option {
	return func(s *Session) {
		s.storage = st
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

func WithPlayerName(name string) Option {
	return func(s *Session) {
		s.config.PlayerName = name
	}
}

func WithNotificationCapacity(capacity int) Option {
	return func(s *Session) {
		s.config.NotificationCapacity = capacity
	}
}

func WithNotificationTimeout(d time.Duration) Option {
	return func(s *Session) {
		s.config.NotificationTimeout = d
	}
}

func WithBootstrapNotifications(enabled bool) Option {
	return func(s *Session) {
		s.config.BootstrapNotifications = enabled
	}
}
