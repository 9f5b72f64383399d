package ecs

import (
	"github.com/phanxgames/quill"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for quill pointer events.
var InteractionEventType = events.NewEventType[quill.InteractionEvent]()

// EntityEvent is a pointer event whose target node is bound to an entity.
type EntityEvent struct {
	quill.InteractionEvent
	Entity donburi.Entity
}

// EntityEventType is the Donburi event type for events on bound nodes.
var EntityEventType = events.NewEventType[EntityEvent]()

// NodeRef links an entity to the quill node it was bound to.
type NodeRef struct {
	NodeID uint32
	Name   string
}

// NodeComponent stores a NodeRef on bound entities.
var NodeComponent = donburi.NewComponentType[NodeRef]()

// DonburiSink is a quill.EventSink backed by a Donburi world.
type DonburiSink struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
	// ids remembers each bound node's id, which Dispose resets to 0.
	ids map[*quill.Node]uint32
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to InteractionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{
		world:    world,
		entities: make(map[uint32]donburi.Entity),
		ids:      make(map[*quill.Node]uint32),
	}
}

// Bind creates an entity carrying a NodeRef for n and returns it. Binding
// the same node twice returns the existing entity.
func (s *DonburiSink) Bind(n *quill.Node) donburi.Entity {
	if e, ok := s.entities[n.ID]; ok && s.world.Valid(e) {
		return e
	}
	e := s.world.Create(NodeComponent)
	NodeComponent.SetValue(s.world.Entry(e), NodeRef{NodeID: n.ID, Name: n.Name})
	s.entities[n.ID] = e
	s.ids[n] = n.ID
	return e
}

// Unbind removes the entity bound to n, if any. It works before or after
// n.Dispose.
func (s *DonburiSink) Unbind(n *quill.Node) {
	id, ok := s.ids[n]
	if !ok {
		return
	}
	delete(s.ids, n)
	e, ok := s.entities[id]
	if !ok {
		return
	}
	delete(s.entities, id)
	if s.world.Valid(e) {
		s.world.Remove(e)
	}
}

// Entity returns the entity bound to the node with the given id.
func (s *DonburiSink) Entity(nodeID uint32) (donburi.Entity, bool) {
	e, ok := s.entities[nodeID]
	if !ok || !s.world.Valid(e) {
		return donburi.Null, false
	}
	return e, true
}

// EmitEvent publishes the event, and an EntityEvent when its target is bound.
func (s *DonburiSink) EmitEvent(event quill.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
	if event.NodeID == 0 {
		return
	}
	if e, ok := s.Entity(event.NodeID); ok {
		EntityEventType.Publish(s.world, EntityEvent{InteractionEvent: event, Entity: e})
	}
}
