package supersede

import (
	"errors"
	"sync"
)

// Returned by Call when the scheduler was created without a task function.
var ErrNotInvocable = errors.New("This scheduler has no task function to invoke")

// The task function wrapped by a Scheduler. It receives the signal of its own
// invocation and the arguments passed to Call. Use a struct for A to pass
// several values, or struct{} for none.
type TaskFunc[A, R any] func(sig Signal, args A) (R, error)

// Scheduler runs a task function such that at most one invocation is current
// at a time. Every call aborts the signal of the previous call before the new
// task body starts.
//
// Cancellation is cooperative: the scheduler neither waits for nor stops a
// superseded task, so a task which ignores its signal may keep running
// alongside newer ones.
type Scheduler[A, R any] struct {
	Options

	fn TaskFunc[A, R]

	mutex   sync.Mutex
	current *Controller
	calls   uint64
}

// Creates a new scheduler for the given task function. The function is not
// validated; a nil function causes Call to return ErrNotInvocable.
func New[A, R any](fn TaskFunc[A, R], opts ...Option) *Scheduler[A, R] {
	return &Scheduler[A, R]{
		Options: NewOptions(opts...),
		fn:      fn,
	}
}

// Invokes the task function with a fresh signal and returns its result
// unchanged.
//
// If a previous invocation exists, its signal is aborted with ErrSuperseded,
// and all of its listeners have run, before the task function is entered.
// Errors returned by the task are passed through as-is and panics are not
// recovered.
func (s *Scheduler[A, R]) Call(args A) (R, error) {
	// The slot is swapped under the mutex, but the previous controller is
	// aborted outside of it so that listeners may call back into s.
	s.mutex.Lock()
	s.calls++
	prev := s.current
	next := newController(s.calls, s.Logger)
	s.current = next
	s.mutex.Unlock()

	s.Metrics.invoked(s.Name)
	if prev != nil && prev.AbortCause(ErrSuperseded) {
		s.Logger.Printf("supersede: %s: invocation %d superseded by %d", s.Name, prev.gen, next.gen)
		s.Metrics.superseded(s.Name)
	}

	if s.fn == nil {
		s.Metrics.failed(s.Name)
		var zero R
		return zero, ErrNotInvocable
	}

	r, err := s.fn(next.Signal(), args)
	if err != nil {
		s.Metrics.failed(s.Name)
	}
	return r, err
}

// Returns Call as a plain function value.
func (s *Scheduler[A, R]) Func() func(A) (R, error) {
	return s.Call
}

// Reports whether the most recent invocation is still current, that is,
// whether Call has been invoked at least once and its latest signal has not
// been aborted.
func (s *Scheduler[A, R]) Pending() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.current != nil && s.current.ctx.Err() == nil
}

// Returns the number of times Call has been invoked.
func (s *Scheduler[A, R]) Calls() uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.calls
}
