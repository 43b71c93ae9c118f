package session

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func notificationContents(list []Notification) []string {
	contents := make([]string, 0, len(list))
	for _, notification := range list {
		contents = append(contents, notification.Content)
	}
	return contents
}

func TestNotificationBufferOverwritesOldest(t *testing.T) {
	clock := clockwork.NewFakeClock()
	buffer := NewNotificationBuffer(clock, 2, 6*time.Second)

	buffer.Add("a")
	buffer.Add("b")
	buffer.Add("c")

	require.Equal(t, []string{"c", "b"}, notificationContents(buffer.List()))
}

func TestNotificationBufferCapacityOne(t *testing.T) {
	clock := clockwork.NewFakeClock()
	buffer := NewNotificationBuffer(clock, 1, 6*time.Second)

	require.Empty(t, buffer.List())

	buffer.Add("a")
	require.Equal(t, []string{"a"}, notificationContents(buffer.List()))

	buffer.Add("b")
	require.Equal(t, []string{"b"}, notificationContents(buffer.List()))
}

func TestNotificationBufferPartiallyFilled(t *testing.T) {
	clock := clockwork.NewFakeClock()
	buffer := NewNotificationBuffer(clock, 3, 6*time.Second)

	buffer.Add("a")
	buffer.Add("b")

	require.Equal(t, []string{"b", "a"}, notificationContents(buffer.List()))
}

func TestNotificationExpiry(t *testing.T) {
	const timeout = 6 * time.Second

	clock := clockwork.NewFakeClock()
	buffer := NewNotificationBuffer(clock, 2, timeout)

	buffer.Add("a")
	clock.Advance(3 * time.Second)
	buffer.Add("b")

	require.Equal(t, []string{"b", "a"}, notificationContents(buffer.Active()))

	// "a" passes its display timeout, "b" has 3 seconds left
	clock.Advance(3 * time.Second)
	require.Eventually(t, func() bool {
		return len(buffer.Active()) == 1
	}, time.Second, 10*time.Millisecond)
	require.Equal(t, []string{"b"}, notificationContents(buffer.Active()))

	// Expired notifications stay in the buffer until evicted
	require.Equal(t, []string{"b", "a"}, notificationContents(buffer.List()))

	clock.Advance(timeout)
	require.Eventually(t, func() bool {
		return len(buffer.Active()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestNotificationChangeCallback(t *testing.T) {
	clock := clockwork.NewFakeClock()
	buffer := NewNotificationBuffer(clock, 1, 6*time.Second)

	changes := 0
	buffer.onChange = func() { changes++ }

	buffer.Add("a")
	require.Equal(t, 1, changes)
}
