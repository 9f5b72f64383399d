package quill

// Event carries pointer event data to listeners.
type Event struct {
	Type      EventType
	Target    *Node // nil for stage-level events over the background
	StageX    float64
	StageY    float64
	LocalX    float64 // in Target's space; 0 when Target is nil or singular
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// Listener is an event callback.
type Listener func(Event)

type listenerEntry struct {
	id uint32
	fn Listener
}

// listeners is the per-type callback table shared by nodes and the stage.
type listeners struct {
	byType [eventTypeCount][]listenerEntry
	nextID uint32
}

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	id    uint32
	reg   *listeners
	event EventType
}

// Remove unregisters the listener so it no longer fires. Removing twice is a
// no-op.
func (h ListenerHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listenerEntry{}
			h.reg.byType[h.event] = s[:len(s)-1]
			return
		}
	}
}

// AddEventListener registers fn for events of type t. Listeners fire in
// registration order.
func (l *listeners) AddEventListener(t EventType, fn Listener) ListenerHandle {
	if fn == nil {
		panic("quill: nil event listener")
	}
	l.nextID++
	l.byType[t] = append(l.byType[t], listenerEntry{id: l.nextID, fn: fn})
	return ListenerHandle{id: l.nextID, reg: l, event: t}
}

// RemoveEventListeners unregisters every listener of type t.
func (l *listeners) RemoveEventListeners(t EventType) {
	clear(l.byType[t])
	l.byType[t] = l.byType[t][:0]
}

// HasEventListener reports whether any listener is registered for t.
func (l *listeners) HasEventListener(t EventType) bool {
	return len(l.byType[t]) > 0
}

// Fire calls every listener registered for ev.Type. Listeners added or
// removed during the call take effect from the next Fire.
func (l *listeners) Fire(ev Event) {
	s := l.byType[ev.Type]
	switch len(s) {
	case 0:
		return
	case 1:
		s[0].fn(ev)
		return
	}
	snapshot := make([]listenerEntry, len(s))
	copy(snapshot, s)
	for _, e := range snapshot {
		e.fn(ev)
	}
}
