// Package scenario holds the runnable examples, in the order they are shown.
package scenario

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/olehluchkiv/tripkit/internal/mechanic"
	"github.com/olehluchkiv/tripkit/internal/membership"
	"github.com/olehluchkiv/tripkit/internal/observe"
	"github.com/olehluchkiv/tripkit/internal/trip"
	"github.com/olehluchkiv/tripkit/internal/vehicle"
)

var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario is one self-contained example.
type Scenario struct {
	Name        string
	Description string
	Run         func(sink observe.Sink, logger *slog.Logger)
}

var registry = []Scenario{
	{
		Name:        "cars",
		Description: "full mechanic prepares a car and a booster car",
		Run: func(sink observe.Sink, logger *slog.Logger) {
			cars := []vehicle.Flyer{vehicle.Car{Size: 10}, vehicle.BoosterCar{Size: 10}}
			trip.New[vehicle.Flyer](mechanic.NewFull(cars, sink), logger).PrepareTravel()
		},
	},
	{
		Name:        "bicycles",
		Description: "full mechanic prepares two bicycles",
		Run: func(sink observe.Sink, logger *slog.Logger) {
			RunTrip(twoBicycles(), false, sink, logger)
		},
	},
	{
		Name:        "bicycles-light",
		Description: "light mechanic only cleans two bicycles",
		Run: func(sink observe.Sink, logger *slog.Logger) {
			RunTrip(twoBicycles(), true, sink, logger)
		},
	},
	{
		Name:        "checklist",
		Description: "trip drives every mechanic step itself",
		Run: func(sink observe.Sink, logger *slog.Logger) {
			bikes := twoBicycles()
			trip.NewChecklist[vehicle.Rider](bikes, mechanic.NewFull(bikes, sink), logger).PrepareTravel()
		},
	},
	{
		Name:        "ride",
		Description: "every vehicle rides, brakes and flies if it can",
		Run: func(sink observe.Sink, _ *slog.Logger) {
			riders := []vehicle.Rider{
				vehicle.Bicycle{Size: vehicle.DefaultSize},
				vehicle.Car{Size: vehicle.DefaultSize},
				vehicle.BoosterCar{Size: vehicle.DefaultSize},
			}
			for _, r := range riders {
				vehicle.Exercise(r, sink)
			}
		},
	},
	{
		Name:        "benefits",
		Description: "gold and vip members claim pointer and discount benefits",
		Run: func(sink observe.Sink, _ *slog.Logger) {
			gold := membership.NewGoldMember("gold user")
			vip := membership.NewVipMember("vip user")
			pointer := membership.NewPointerBenefit(sink)
			discount := membership.NewDiscountBenefit(sink)

			gold.GetBenefit(pointer)
			vip.GetBenefit(pointer)
			gold.GetBenefit(discount)
			vip.GetBenefit(discount)
		},
	},
}

// twoBicycles differ in size so each one's events can be told apart.
func twoBicycles() []vehicle.Rider {
	return []vehicle.Rider{vehicle.Bicycle{Size: 10}, vehicle.Bicycle{Size: 12}}
}

// RunTrip prepares riders with a full or light mechanic through a Trip.
func RunTrip(riders []vehicle.Rider, light bool, sink observe.Sink, logger *slog.Logger) {
	var m mechanic.Mechanic[vehicle.Rider]
	if light {
		m = mechanic.NewLight(riders, sink)
	} else {
		m = mechanic.NewFull(riders, sink)
	}
	trip.New(m, logger).PrepareTravel()
}

// All returns every scenario in display order.
func All() []Scenario {
	out := make([]Scenario, len(registry))
	copy(out, registry)
	return out
}

func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

func Lookup(name string) (Scenario, error) {
	for _, s := range registry {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
}

// Select resolves names in order; no names selects every scenario.
func Select(names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]Scenario, 0, len(names))
	for _, n := range names {
		s, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
