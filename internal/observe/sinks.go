package observe

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/francoispqt/gojay"
)

// TextSink writes one line per event. Write errors never reach the caller;
// the first one is kept and reported by Err.
type TextSink struct {
	w   io.Writer
	err error
}

func NewTextSink(w io.Writer) *TextSink { return &TextSink{w: w} }

func (s *TextSink) Observe(e Event) {
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintln(s.w, e.String()); err != nil {
		s.err = fmt.Errorf("writing event: %w", err)
	}
}

func (s *TextSink) Err() error { return s.err }

// jsonEvent is the JSONL shape of an Event.
type jsonEvent Event

func (e *jsonEvent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("subject", e.Subject)
	enc.StringKey("action", e.Action)
	enc.StringKeyOmitEmpty("source", e.Source)
}

func (e *jsonEvent) IsNil() bool { return e == nil }

// JSONSink writes one JSON object per line.
type JSONSink struct {
	w   io.Writer
	err error
}

func NewJSONSink(w io.Writer) *JSONSink { return &JSONSink{w: w} }

func (s *JSONSink) Observe(e Event) {
	if s.err != nil {
		return
	}
	je := jsonEvent(e)
	b, err := gojay.MarshalJSONObject(&je)
	if err != nil {
		s.err = fmt.Errorf("encoding event: %w", err)
		return
	}
	if _, err := s.w.Write(append(b, '\n')); err != nil {
		s.err = fmt.Errorf("writing event: %w", err)
	}
}

func (s *JSONSink) Err() error { return s.err }

// LogSink emits each event as a debug record.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink returns a sink logging through logger. A nil logger discards.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Observe(e Event) {
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "event",
		slog.String("subject", e.Subject),
		slog.String("action", e.Action),
		slog.String("source", e.Source),
	)
}
