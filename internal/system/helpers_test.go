package system

import (
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/entity"
	"go-space-fighter/internal/event"
	"go-space-fighter/internal/utils"
)

type world struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	spawner    *Spawner
}

func newWorld(seed int64) *world {
	ecs := entity.NewECS(component.NewGameState(defs.DifficultyNormal))
	rng := utils.NewPRNGService(seed)
	return &world{
		ecs:        ecs,
		rng:        rng,
		dispatcher: event.NewDispatcher(),
		spawner:    NewSpawner(ecs, rng),
	}
}

// collect подписывается на события и копит их.
func (w *world) collect(types ...event.EventType) *[]event.Event {
	var got []event.Event
	for _, t := range types {
		w.dispatcher.Subscribe(t, event.ListenerFunc(func(e event.Event) { got = append(got, e) }))
	}
	return &got
}

func countType(events []event.Event, t event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}
