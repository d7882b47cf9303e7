package ecs_test

import (
	"fmt"

	"github.com/plus3/blockfall/ecs"
)

type Lives int

type countdown struct {
	Players ecs.Query[struct{ *Lives }]
	Round   ecs.Singleton[int]
}

func (c *countdown) Execute(frame *ecs.UpdateFrame) {
	*c.Round.Get() += 1
	for id, p := range c.Players.Iter() {
		*p.Lives--
		if *p.Lives == 0 {
			frame.Commands.Delete(id)
		}
	}
}

// ExampleScheduler shows a system whose query and singleton fields are bound
// when it is registered.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Lives](registry)
	storage := ecs.NewStorage(registry)

	round := ecs.NewSingleton[int](storage)
	storage.Spawn(Lives(1))
	storage.Spawn(Lives(3))

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&countdown{})

	for range 2 {
		scheduler.Once(0)
		fmt.Printf("round %d: %d players\n", *round.Get(), storage.Count())
	}

	// Output:
	// round 1: 1 players
	// round 2: 1 players
}
