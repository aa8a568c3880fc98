// Package vehicle defines the ridable capabilities and the closed set of
// vehicles that provide them.
package vehicle

import (
	"fmt"

	"github.com/olehluchkiv/tripkit/internal/observe"
)

// Rider is the capability every vehicle offers.
type Rider interface {
	fmt.Stringer
	Ride() string
	Brake() string
}

// Flyer is a Rider that can also leave the ground.
type Flyer interface {
	Rider
	Fly() string
}

var (
	_ Rider = Bicycle{}
	_ Flyer = Car{}
	_ Flyer = BoosterCar{}
)

// Bicycle is a plain two-wheeler.
type Bicycle struct {
	Size int
}

func (b Bicycle) Ride() string { return "ride" }
func (b Bicycle) Brake() string { return "brake" }
func (b Bicycle) String() string { return fmt.Sprintf("Bicycle{size=%d}", b.Size) }

// Car rides, brakes and flies.
type Car struct {
	Size int
}

func (c Car) Ride() string { return "ride" }
func (c Car) Brake() string { return "brake" }
func (c Car) Fly() string { return "fly" }
func (c Car) String() string { return fmt.Sprintf("Car{size=%d}", c.Size) }

// BoosterCar is a Car with a booster fitted; riding and braking go through it.
type BoosterCar struct {
	Size int
}

func (c BoosterCar) Ride() string { return "ride booster" }
func (c BoosterCar) Brake() string { return "brake booster" }
func (c BoosterCar) Fly() string { return "fly" }
func (c BoosterCar) String() string { return fmt.Sprintf("BoosterCar{size=%d}", c.Size) }

// Exercise puts r through its capabilities and emits one event per call:
// ride, brake and, when r can fly, fly.
func Exercise(r Rider, sink observe.Sink) {
	observe.Emit(sink, "rider", r, r.Ride())
	observe.Emit(sink, "rider", r, r.Brake())
	if f, ok := r.(Flyer); ok {
		observe.Emit(sink, "rider", r, f.Fly())
	}
}
