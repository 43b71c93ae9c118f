package eventhandler

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model pumps events from a subscription channel into the bubbletea loop,
// converting each event into a message of type M. After a message of type M
// passes through Update, the next read is scheduled.
type Model[E any, M any] struct {
	// pointer so that copies of the model share the channel
	// and can nullify it once it is closed
	source  *source[E]
	convert func(E) M
}

type source[E any] struct {
	ch chan E
}

func New[E any, M any](convert func(E) M) Model[E, M] {
	return Model[E, M]{
		source:  &source[E]{},
		convert: convert,
	}
}

func (m Model[E, M]) Init(input chan E, lastEvent E) tea.Cmd {
	m.source.ch = input
	// replay the current value so the UI starts from a known state
	m.source.ch <- lastEvent
	return m.next()
}

func (m Model[E, M]) Update(msg tea.Msg) (Model[E, M], tea.Cmd) {
	if m.source == nil || m.source.ch == nil {
		return m, nil
	}
	switch msg.(type) {
	case M:
		return m, m.next()
	}
	return m, nil
}

func (m Model[E, M]) next() tea.Cmd {
	return func() tea.Msg {
		if m.source.ch == nil {
			return nil
		}
		event, more := <-m.source.ch
		if !more {
			m.source.ch = nil
			return nil
		}
		return m.convert(event)
	}
}
