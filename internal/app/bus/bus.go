package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"logwatch/internal/app/match"
	"logwatch/internal/config/logger"
)

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventMatch        MessageType = "match"
	EventTailerState  MessageType = "tailer_state"
	EventExportDone   MessageType = "export_done"
	EventExportFailed MessageType = "export_failed"
	EventOutputClosed MessageType = "output_closed"
)

// DefaultBuffer is the subscriber channel capacity
const DefaultBuffer = 256

// Message represents a bus message
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// Match carries a newly matched row and the running match total
type Match struct {
	Row   match.Row
	Total int64
}

// TailerState indicates a tailer state transition
type TailerState struct {
	State string
}

// ExportDone indicates a completed on-demand export
type ExportDone struct {
	Path string
	Rows int
}

// ExportFailed indicates a failed on-demand export
type ExportFailed struct {
	Err error
}

// OutputClosed indicates the continuous output file was finalized
type OutputClosed struct {
	Path string
}

// Bus handles pub/sub messaging between the pipeline and its observers
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface
type bus struct {
	buffer      int
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus with the given subscriber buffer size
func New(buffer int, log logger.Logger) Bus {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	return &bus{
		buffer:      buffer,
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel, removed when ctx ends
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.buffer)
	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers. Non-critical messages are
// dropped for slow subscribers; critical ones are retried asynchronously.
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }()

					c <- m
				}(ch, msg)
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case Match:
		return fmt.Sprintf("{severity: %s, keyword: %s, total: %d}", d.Row.Severity, d.Row.Keyword, d.Total)
	case TailerState:
		return fmt.Sprintf("{state: %s}", d.State)
	case ExportDone:
		return fmt.Sprintf("{path: %s, rows: %d}", d.Path, d.Rows)
	case ExportFailed:
		return fmt.Sprintf("{error: %v}", d.Err)
	case OutputClosed:
		return fmt.Sprintf("{path: %s}", d.Path)
	default:
		return fmt.Sprintf("%+v", data)
	}
}
