// Package trip orchestrates trip preparation on top of a mechanic.
package trip

import (
	"log/slog"

	"github.com/olehluchkiv/tripkit/internal/mechanic"
)

// Trip depends only on the Mechanic abstraction; it never sees the concrete
// mechanic or the vehicles' concrete types.
type Trip[T any] struct {
	mechanic mechanic.Mechanic[T]
	logger   *slog.Logger
}

// New returns a Trip backed by m. A nil logger discards log output.
func New[T any](m mechanic.Mechanic[T], logger *slog.Logger) *Trip[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Trip[T]{mechanic: m, logger: logger}
}

// PrepareTravel asks the mechanic for its vehicles and has it prepare them.
func (t *Trip[T]) PrepareTravel() {
	items := t.mechanic.PrepareTrip()
	t.logger.Debug("preparing travel", "items", len(items))
	t.mechanic.PrepareBicycle(items)
}
