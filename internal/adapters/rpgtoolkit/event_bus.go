package rpgtoolkit

//go:generate mockgen -destination=mock/mock_publisher.go -package=mockrpgtoolkit -source=event_bus.go

import (
	"context"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

// Publisher sends resource events to interested listeners
type Publisher interface {
	Publish(ctx context.Context, event ResourceEvent) error
}

// ResourceHandler receives resource events
type ResourceHandler func(ctx context.Context, event ResourceEvent) error

// EventBusAdapter publishes resource events as rpg-toolkit game events.
// The character is the event source; everything else travels in the event context.
type EventBusAdapter struct {
	rpgBus *rpgevents.Bus
}

// NewEventBusAdapter wraps bus, creating a new one when bus is nil
func NewEventBusAdapter(bus *rpgevents.Bus) *EventBusAdapter {
	if bus == nil {
		bus = rpgevents.NewBus()
	}
	return &EventBusAdapter{rpgBus: bus}
}

// Publish converts the event and publishes it on the bus
func (a *EventBusAdapter) Publish(ctx context.Context, event ResourceEvent) error {
	if event.Type == "" {
		return engineerr.InvalidArgument("event type is required")
	}

	gameEvent := rpgevents.NewGameEvent(event.Type, &CharacterEntity{ID: event.CharacterID}, nil)
	eventCtx := gameEvent.Context()
	eventCtx.Set(ContextKeyStateID, event.StateID)
	eventCtx.Set(ContextKeyCurrentHP, event.CurrentHP)
	eventCtx.Set(ContextKeyDead, event.Dead)
	if event.Operation != "" {
		eventCtx.Set(ContextKeyOperation, string(event.Operation))
	}
	if event.Rest != "" {
		eventCtx.Set(ContextKeyRest, string(event.Rest))
	}

	if err := a.rpgBus.Publish(ctx, gameEvent); err != nil {
		return engineerr.Wrapf(err, "failed to publish %s", event.Type).
			WithMeta("character_id", event.CharacterID)
	}
	return nil
}

// Subscribe registers a handler for one event type and returns the subscription ID
func (a *EventBusAdapter) Subscribe(eventType string, priority int, handler ResourceHandler) string {
	return a.rpgBus.SubscribeFunc(eventType, priority, func(ctx context.Context, e rpgevents.Event) error {
		return handler(ctx, toResourceEvent(e))
	})
}

// GetRPGBus returns the underlying rpg-toolkit event bus for direct access
func (a *EventBusAdapter) GetRPGBus() *rpgevents.Bus {
	return a.rpgBus
}

func toResourceEvent(e rpgevents.Event) ResourceEvent {
	out := ResourceEvent{Type: e.Type()}
	if source := e.Source(); source != nil {
		out.CharacterID = source.GetID()
	}

	eventCtx := e.Context()
	if v, ok := eventCtx.Get(ContextKeyStateID); ok {
		out.StateID, _ = v.(string)
	}
	if v, ok := eventCtx.Get(ContextKeyCurrentHP); ok {
		out.CurrentHP, _ = v.(int)
	}
	if v, ok := eventCtx.Get(ContextKeyDead); ok {
		out.Dead, _ = v.(bool)
	}
	if v, ok := eventCtx.Get(ContextKeyOperation); ok {
		if s, ok := v.(string); ok {
			out.Operation = resources.OperationType(s)
		}
	}
	if v, ok := eventCtx.Get(ContextKeyRest); ok {
		if s, ok := v.(string); ok {
			out.Rest = shared.RestType(s)
		}
	}
	return out
}
