package mailbox

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
)

// Processor handles one message at a time. The mailbox guarantees calls
// never overlap and arrive in post order.
type Processor interface {
	Process(msg Message)
}

// Mailbox is the single-writer command queue. Commands posted from any
// number of goroutines are processed strictly in arrival order by one
// consuming goroutine, so no two read-validate-append cycles interleave.
type Mailbox struct {
	mu       sync.RWMutex
	closed   bool
	messages chan Message
	done     chan struct{}
	logger   *slog.Logger
}

// New starts a mailbox with the given queue capacity and hands every
// received message to processor until Close is called.
func New(capacity int, processor Processor, logger *slog.Logger) *Mailbox {
	if capacity < 1 {
		capacity = 1
	}
	m := &Mailbox{
		messages: make(chan Message, capacity),
		done:     make(chan struct{}),
		logger:   logger,
	}
	go m.run(processor)
	return m
}

func (m *Mailbox) run(processor Processor) {
	defer close(m.done)
	for msg := range m.messages {
		processor.Process(msg)
	}
	m.logger.Info("Mailbox processing loop stopped")
}

// Post enqueues a command. It blocks while the queue is full and returns
// ctx.Err() if the caller gives up first, or ErrMailboxClosed once Close has
// been called. A nil error only means the command was accepted; its outcome
// arrives on the message's reply channel.
func (m *Mailbox) Post(ctx context.Context, msg Message) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return apperrors.ErrMailboxClosed
	}

	select {
	case m.messages <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops intake and waits for already queued commands to finish
// processing. Posting afterwards returns ErrMailboxClosed. Close is safe to
// call more than once.
func (m *Mailbox) Close() {
	m.mu.Lock()
	if !m.closed {
		m.closed = true
		close(m.messages)
	}
	m.mu.Unlock()
	<-m.done
}
