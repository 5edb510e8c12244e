package memory

import (
	"context"
	"sync"

	"github.com/clonkbot/cricket-auction-hub/internal/domain/auction"
)

// EventLog is an append-only in-process record of auction actions.
type EventLog struct {
	mu     sync.RWMutex
	events []auction.Event
}

// NewEventLog returns an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) Append(ctx context.Context, event auction.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	l.events = append(l.events, event)
	l.mu.Unlock()
	return nil
}

func (l *EventLog) List(ctx context.Context) ([]auction.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]auction.Event(nil), l.events...), nil
}
