// Package mechanic prepares vehicles for a trip. A Mechanic owns the list of
// vehicles it looks after and runs a fixed sequence of steps on each one.
package mechanic

import (
	"slices"

	"github.com/olehluchkiv/tripkit/internal/observe"
	"github.com/olehluchkiv/tripkit/internal/vehicle"
)

// Source tags every event a mechanic emits.
const Source = "mechanic"

// Step names one preparation step.
type Step string

const (
	StepClean       Step = "cleanBicycle"
	StepPumpTires   Step = "pumpTires"
	StepLubeChain   Step = "lubeChain"
	StepCheckBrakes Step = "checkBrakes"
	StepSomething   Step = "something"
)

// Mechanic hands out the vehicles it looks after and prepares them.
type Mechanic[T any] interface {
	PrepareTrip() []T
	PrepareBicycle(items []T)
}

// Toolkit exposes each preparation step on its own, for callers that want to
// drive the sequence themselves.
type Toolkit[T any] interface {
	CleanBicycle(item T)
	PumpTires(item T)
	LubeChain(item T)
	CheckBrakes(item T)
	Something(item T)
}

// Full runs the complete five-step preparation on every vehicle.
type Full[T vehicle.Rider] struct {
	items []T
	sink  observe.Sink
}

var (
	_ Mechanic[vehicle.Rider] = (*Full[vehicle.Rider])(nil)
	_ Toolkit[vehicle.Rider]  = (*Full[vehicle.Rider])(nil)
	_ Mechanic[vehicle.Rider] = (*Light[vehicle.Rider])(nil)
)

// NewFull returns a Full mechanic for a copy of items.
func NewFull[T vehicle.Rider](items []T, sink observe.Sink) *Full[T] {
	return &Full[T]{items: slices.Clone(items), sink: sink}
}

func (m *Full[T]) CleanBicycle(item T) { m.do(item, StepClean) }
func (m *Full[T]) PumpTires(item T) { m.do(item, StepPumpTires) }
func (m *Full[T]) LubeChain(item T) { m.do(item, StepLubeChain) }
func (m *Full[T]) CheckBrakes(item T) { m.do(item, StepCheckBrakes) }
func (m *Full[T]) Something(item T) { m.do(item, StepSomething) }

// PrepareTrip returns a copy of the vehicles; the mechanic's own list never changes.
func (m *Full[T]) PrepareTrip() []T { return slices.Clone(m.items) }

func (m *Full[T]) PrepareBicycle(items []T) {
	for _, item := range items {
		m.CleanBicycle(item)
		m.PumpTires(item)
		m.LubeChain(item)
		m.CheckBrakes(item)
		m.Something(item)
	}
}

// Steps lists the steps PrepareBicycle runs per vehicle, in order.
func (m *Full[T]) Steps() []Step {
	return []Step{StepClean, StepPumpTires, StepLubeChain, StepCheckBrakes, StepSomething}
}

func (m *Full[T]) do(item T, step Step) {
	observe.Emit(m.sink, Source, item, string(step))
}

// Light only cleans.
type Light[T vehicle.Rider] struct {
	items []T
	sink  observe.Sink
}

// NewLight returns a Light mechanic for a copy of items.
func NewLight[T vehicle.Rider](items []T, sink observe.Sink) *Light[T] {
	return &Light[T]{items: slices.Clone(items), sink: sink}
}

func (m *Light[T]) PrepareTrip() []T { return slices.Clone(m.items) }

func (m *Light[T]) PrepareBicycle(items []T) {
	for _, item := range items {
		observe.Emit(m.sink, Source, item, string(StepClean))
	}
}

func (m *Light[T]) Steps() []Step {
	return []Step{StepClean}
}
