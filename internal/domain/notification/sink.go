package notification

import "context"

// Event is a fire-and-forget notice. Recipient targets one user and is
// persisted; Audience targets every connected user with that role and is
// only pushed live.
type Event struct {
	Type      Type
	Title     string
	Body      string
	Recipient string
	Sender    string
	Audience  string
	Data      map[string]any
}

// Sink accepts events without reporting delivery.
type Sink interface {
	Emit(ctx context.Context, ev Event)
}

// Discard drops every event.
type Discard struct{}

func (Discard) Emit(context.Context, Event) {}
