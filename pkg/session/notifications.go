package session

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type Notification struct {
	ID        string
	Content   string
	Timestamp time.Time
}

type notificationSlot struct {
	notification Notification
	active       bool
	timer        clockwork.Timer
}

// NotificationBuffer is a fixed-capacity ring of notifications.
// Adding beyond capacity overwrites the oldest entry. Each notification
// also expires on its own timer, independently of eviction.
type NotificationBuffer struct {
	clock    clockwork.Clock
	timeout  time.Duration
	onChange func()

	mutex sync.Mutex
	slots []notificationSlot
	next  int
}

func NewNotificationBuffer(clock clockwork.Clock, capacity int, timeout time.Duration) *NotificationBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &NotificationBuffer{
		clock:   clock,
		timeout: timeout,
		slots:   make([]notificationSlot, 0, capacity),
	}
}

func (b *NotificationBuffer) Add(content string) Notification {
	b.mutex.Lock()

	notification := Notification{
		ID:        generateNotificationID(),
		Content:   content,
		Timestamp: b.clock.Now(),
	}

	slot := notificationSlot{
		notification: notification,
		active:       true,
	}

	id := notification.ID
	slot.timer = b.clock.AfterFunc(b.timeout, func() {
		b.expire(id)
	})

	if len(b.slots) < cap(b.slots) {
		b.slots = append(b.slots, slot)
		b.next = len(b.slots) % cap(b.slots)
	} else {
		if old := b.slots[b.next].timer; old != nil {
			old.Stop()
		}
		b.slots[b.next] = slot
		b.next = (b.next + 1) % cap(b.slots)
	}

	b.mutex.Unlock()
	b.notifyChanged()
	return notification
}

// List returns the stored notifications, newest first.
func (b *NotificationBuffer) List() []Notification {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	list := make([]Notification, 0, len(b.slots))
	for i := 0; i < len(b.slots); i++ {
		index := (b.next - 1 - i + cap(b.slots) + cap(b.slots)) % cap(b.slots)
		if index >= len(b.slots) {
			continue
		}
		list = append(list, b.slots[index].notification)
	}
	return list
}

// Active returns the notifications whose display timeout has not elapsed,
// newest first.
func (b *NotificationBuffer) Active() []Notification {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	list := make([]Notification, 0, len(b.slots))
	for i := 0; i < len(b.slots); i++ {
		index := (b.next - 1 - i + cap(b.slots) + cap(b.slots)) % cap(b.slots)
		if index >= len(b.slots) {
			continue
		}
		if !b.slots[index].active {
			continue
		}
		list = append(list, b.slots[index].notification)
	}
	return list
}

func (b *NotificationBuffer) Stop() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for i := range b.slots {
		if b.slots[i].timer != nil {
			b.slots[i].timer.Stop()
		}
	}
}

func (b *NotificationBuffer) expire(id string) {
	b.mutex.Lock()
	changed := false
	for i := range b.slots {
		if b.slots[i].notification.ID == id && b.slots[i].active {
			b.slots[i].active = false
			changed = true
		}
	}
	b.mutex.Unlock()

	if changed {
		b.notifyChanged()
	}
}

func (b *NotificationBuffer) notifyChanged() {
	if b.onChange != nil {
		b.onChange()
	}
}
