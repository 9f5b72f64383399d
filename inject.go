package quill

// syntheticPointerEvent represents a single injected pointer sample in stage
// pixels.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
	leave   bool
}

// InjectMove queues a hover sample at (x, y) with no button held.
// Each queued sample is consumed by one ProcessInput call.
func (s *Stage) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectPress queues a left-button press at (x, y).
func (s *Stage) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a left-button release at (x, y).
func (s *Stage) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		button: MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ProcessInput calls.
func (s *Stage) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectLeave queues the pointer leaving the surface.
func (s *Stage) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: -1, y: -1, leave: true})
}

// PendingInjections returns the number of queued samples.
func (s *Stage) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real mouse
// input should be skipped).
func (s *Stage) processInjectedInput(mods KeyModifiers) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.x, evt.y, !evt.leave, evt.pressed, evt.button, mods)
	return true
}
