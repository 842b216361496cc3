package eventloop

import "github.com/smasonuk/wirecube"

type frame struct {
	id wirecube.FrameID
	fn func()
}

// Scheduler queues animation frame callbacks until Step.
type Scheduler struct {
	nextID wirecube.FrameID
	queue  []frame
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) RequestAnimationFrame(fn func()) wirecube.FrameID {
	s.nextID++
	s.queue = append(s.queue, frame{id: s.nextID, fn: fn})
	return s.nextID
}

func (s *Scheduler) CancelAnimationFrame(id wirecube.FrameID) {
	for i, f := range s.queue {
		if f.id == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

// Pending reports the number of queued callbacks.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Step runs the callbacks that were queued when it was called, in request
// order. Callbacks requested while stepping wait for the next Step, and a
// callback cancelled by an earlier one in the same step does not run.
func (s *Scheduler) Step() int {
	limit := s.nextID
	n := 0
	for len(s.queue) > 0 && s.queue[0].id <= limit {
		f := s.queue[0]
		s.queue = s.queue[1:]
		f.fn()
		n++
	}
	return n
}
