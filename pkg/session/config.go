package session

import "time"

type configuration struct {
	PlayerName             string
	NotificationCapacity   int
	NotificationTimeout    time.Duration
	BootstrapNotifications bool
}

var defaultConfig = configuration{
	PlayerName:             "",
	NotificationCapacity:   1,
	NotificationTimeout:    6 * time.Second,
	BootstrapNotifications: false,
}
