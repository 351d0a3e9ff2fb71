package events

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/core/event"

	"google.golang.org/protobuf/runtime/protoiface"
)

var _ event.Service = (*Recorder)(nil)

// Event is one recorded emission in flattened key/value form.
type Event struct {
	Type       string
	Attributes []event.Attribute
}

// Recorder is an in-memory event.Service. Emissions append to a shared list
// that callers can inspect or drain, which makes it useful both as the
// notification surface of a running vault and as a capture buffer in tests.
//
// The recorder is not transactional. The keeper only emits after a state
// branch has committed, so aborted operations never appear here.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// EventManager implements event.Service.
func (r *Recorder) EventManager(_ context.Context) event.Manager {
	return manager{r}
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func (r *Recorder) append(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

type manager struct {
	r *Recorder
}

func (m manager) Emit(ev protoiface.MessageV1) error {
	m.r.append(Event{Type: fmt.Sprintf("%T", ev)})
	return nil
}

func (m manager) EmitKV(eventType string, attrs ...event.Attribute) error {
	m.r.append(Event{Type: eventType, Attributes: attrs})
	return nil
}

func (m manager) EmitNonConsensus(ev protoiface.MessageV1) error {
	return m.Emit(ev)
}
