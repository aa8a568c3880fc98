package observe

import "fmt"

// Event is a single observation emitted by a handler while it works on an item.
type Event struct {
	Subject string // identity of the item, e.g. "Bicycle{size=10}"
	Action  string // operation name, e.g. "cleanBicycle"
	Source  string // handler that produced the event, e.g. "mechanic"
}

// String renders the event the way it is printed: subject then action.
func (e Event) String() string {
	return e.Subject + " " + e.Action
}

// Sink receives events in the order they are produced.
type Sink interface {
	Observe(e Event)
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc func(e Event)

func (f SinkFunc) Observe(e Event) { f(e) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Emit builds an event for subject and sends it to sink. A nil sink is a no-op.
func Emit(sink Sink, source string, subject fmt.Stringer, action string) {
	if sink == nil {
		return
	}
	sink.Observe(Event{Subject: subject.String(), Action: action, Source: source})
}

// Tee fans each event out to every sink, in argument order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(e Event) {
		for _, s := range sinks {
			if s != nil {
				s.Observe(e)
			}
		}
	})
}
