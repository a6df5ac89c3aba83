package game

import "sync"

// Mailbox is a bounded queue between the game loop and its clients. Post
// never blocks: when the box is full the oldest message is dropped.
type Mailbox[T any] struct {
	mu      sync.Mutex
	ch      chan T
	dropped int
}

func NewMailbox[T any](size int) *Mailbox[T] {
	return &Mailbox[T]{ch: make(chan T, max(size, 1))}
}

// Post enqueues msg and reports whether an older message had to be dropped
// to make room.
func (m *Mailbox[T]) Post(msg T) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	dropped := false
	for {
		select {
		case m.ch <- msg:
			return dropped
		default:
		}
		// Full. Drop the oldest unless a reader just drained it.
		select {
		case <-m.ch:
			m.dropped++
			dropped = true
		default:
		}
	}
}

// C is the receive side, for use in select statements.
func (m *Mailbox[T]) C() <-chan T {
	return m.ch
}

// TryReceive returns the next message without blocking.
func (m *Mailbox[T]) TryReceive() (T, bool) {
	select {
	case msg := <-m.ch:
		return msg, true
	default:
		var zero T
		return zero, false
	}
}

func (m *Mailbox[T]) Len() int {
	return len(m.ch)
}

// Dropped is the number of messages discarded so far.
func (m *Mailbox[T]) Dropped() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dropped
}
