package quill

import "testing"

func TestInjectClick(t *testing.T) {
	s, _, a, _ := newPickStage(t)

	var clicked bool
	a.AddEventListener(EventClick, func(Event) { clicked = true })

	s.InjectClick(10, 10)
	if s.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", s.PendingInjections())
	}

	// Frame 1: press
	s.ProcessInput()
	if s.PendingInjections() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", s.PendingInjections())
	}
	if clicked {
		t.Error("click should not fire on press frame")
	}

	// Frame 2: release → click fires
	s.ProcessInput()
	if s.PendingInjections() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", s.PendingInjections())
	}
	if !clicked {
		t.Error("click should fire on release frame")
	}
}

func TestInjectQueueOrder(t *testing.T) {
	s := NewStage(newFakeBackend(10, 10), nil)
	s.InjectMove(1, 2)
	s.InjectPress(3, 4)
	s.InjectRelease(5, 6)
	s.InjectLeave()

	q := s.injectQueue
	if len(q) != 4 {
		t.Fatalf("queue len = %d, want 4", len(q))
	}
	if q[0].x != 1 || q[0].y != 2 || q[0].pressed {
		t.Errorf("move = %+v", q[0])
	}
	if q[1].x != 3 || !q[1].pressed || q[1].button != MouseButtonLeft {
		t.Errorf("press = %+v", q[1])
	}
	if q[2].x != 5 || q[2].pressed {
		t.Errorf("release = %+v", q[2])
	}
	if !q[3].leave {
		t.Errorf("leave = %+v", q[3])
	}
}

func TestProcessInjectedInput(t *testing.T) {
	s, _, a, _ := newPickStage(t)
	var log []string
	record(&log, a, pointerTypes...)

	s.InjectMove(10, 10)
	s.InjectMove(20, 20)
	if !s.processInjectedInput(0) {
		t.Fatal("expected an event to be consumed")
	}
	if s.PendingInjections() != 1 {
		t.Errorf("remaining = %d, want 1", s.PendingInjections())
	}
	assertLog(t, log, "a:mouseover", "a:mousemove")

	s.processInjectedInput(0)
	assertLog(t, log, "a:mouseover", "a:mousemove", "a:mousemove")
}

func TestProcessInjectedInput_EmptyQueue(t *testing.T) {
	s := NewStage(newFakeBackend(10, 10), nil)
	if s.processInjectedInput(0) {
		t.Error("empty queue should report no event consumed")
	}
}

func TestInjectLeave(t *testing.T) {
	s, _, a, _ := newPickStage(t)
	var log []string
	record(&log, a, EventMouseOver, EventMouseOut)
	s.AddEventListener(EventMouseLeave, func(Event) { log = append(log, "stage:mouseleave") })

	s.InjectMove(10, 10)
	s.InjectLeave()
	s.processInjectedInput(0)
	s.processInjectedInput(0)
	assertLog(t, log, "a:mouseover", "a:mouseout", "stage:mouseleave")
}
