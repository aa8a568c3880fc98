package trip

import (
	"log/slog"
	"slices"

	"github.com/olehluchkiv/tripkit/internal/mechanic"
)

// Checklist is the coupled alternative to Trip: it owns the vehicles and
// calls each of the mechanic's steps itself, so adding a step means changing
// Checklist too.
type Checklist[T any] struct {
	items   []T
	toolkit mechanic.Toolkit[T]
	logger  *slog.Logger
}

func NewChecklist[T any](items []T, tk mechanic.Toolkit[T], logger *slog.Logger) *Checklist[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Checklist[T]{items: slices.Clone(items), toolkit: tk, logger: logger}
}

func (c *Checklist[T]) PrepareTravel() {
	c.logger.Debug("running checklist", "items", len(c.items))
	for _, item := range c.items {
		c.toolkit.CleanBicycle(item)
		c.toolkit.PumpTires(item)
		c.toolkit.LubeChain(item)
		c.toolkit.CheckBrakes(item)
	}
}
