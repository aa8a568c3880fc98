package observe

// Recorder keeps every observed event in arrival order.
type Recorder struct {
	events []Event
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Observe(e Event) {
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Lines returns the text rendering of each event.
func (r *Recorder) Lines() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.String()
	}
	return out
}

// Actions returns only the action names, in order.
func (r *Recorder) Actions() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Action
	}
	return out
}

func (r *Recorder) Len() int { return len(r.events) }

func (r *Recorder) Reset() { r.events = nil }
