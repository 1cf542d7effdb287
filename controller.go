package supersede

import (
	"context"
	"errors"
	"sync"
)

var (
	// The cause reported by a signal whose controller was aborted with Abort.
	ErrAborted = errors.New("This controller was aborted")

	// The cause reported by a signal whose invocation was replaced by a newer
	// call on the same scheduler.
	ErrSuperseded = errors.New("This invocation was superseded by a newer one")
)

// Signal is the read-only side of a Controller. It is handed to the task
// function so that it can observe and react to cancellation.
type Signal interface {
	// Aborted reports whether cancellation has been requested.
	Aborted() bool

	// OnAbort registers fn to run once cancellation is requested. Listeners
	// registered before the abort run synchronously inside Abort, in the order
	// they were registered. If the signal is already aborted, fn runs
	// immediately on the calling goroutine.
	//
	// The returned stop function unregisters fn. It returns false if fn has
	// already run or is about to.
	OnAbort(fn func()) (stop func() bool)

	// Done returns a channel which is closed when cancellation is requested.
	Done() <-chan struct{}

	// Err returns nil until cancellation is requested, and context.Canceled
	// afterwards.
	Err() error

	// Cause returns the error the controller was aborted with, or nil.
	Cause() error

	// Context returns a context which is cancelled, with the same cause, when
	// the controller aborts.
	Context() context.Context

	// Generation returns the 1-based number of the scheduler invocation this
	// signal belongs to, or zero for a standalone controller.
	Generation() uint64
}

// Controller is the cancel side of a single cancellation lifecycle. A
// controller starts active and can be aborted once; it is never reset.
type Controller struct {
	mutex     sync.Mutex
	aborted   bool
	listeners []*listener

	ctx    context.Context
	cancel context.CancelCauseFunc
	gen    uint64
	logger Logger
}

type listener struct {
	fn func()
}

// Creates a new, active controller.
func NewController() *Controller {
	return newController(0, defaultLogger)
}

func newController(gen uint64, logger Logger) *Controller {
	ctx, cancel := context.WithCancelCause(context.Background())
	return &Controller{
		ctx:    ctx,
		cancel: cancel,
		gen:    gen,
		logger: logger,
	}
}

// Requests cancellation with ErrAborted as the cause. See AbortCause.
func (c *Controller) Abort() bool {
	return c.AbortCause(ErrAborted)
}

// Requests cancellation with the given cause. A nil cause is reported as
// context.Canceled.
//
// Only the first call has any effect: it cancels the signal's context, runs
// every registered listener and returns true. Subsequent calls return false.
// A panicking listener is recovered and logged; it does not prevent the
// remaining listeners from running.
func (c *Controller) AbortCause(cause error) bool {
	c.mutex.Lock()
	if c.aborted {
		c.mutex.Unlock()
		return false
	}
	c.aborted = true
	listeners := c.listeners
	c.listeners = nil
	c.mutex.Unlock()

	c.cancel(cause)
	for _, l := range listeners {
		c.run(l)
	}
	return true
}

// Returns the signal associated with this controller.
func (c *Controller) Signal() Signal {
	return signal{c}
}

func (c *Controller) run(l *listener) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Printf("supersede: recovered panic in abort listener (generation %d): %v", c.gen, r)
		}
	}()
	l.fn()
}

func (c *Controller) onAbort(fn func()) func() bool {
	l := &listener{fn: fn}

	c.mutex.Lock()
	if c.aborted {
		c.mutex.Unlock()
		c.run(l)
		return func() bool { return false }
	}
	c.listeners = append(c.listeners, l)
	c.mutex.Unlock()

	return func() bool {
		c.mutex.Lock()
		defer c.mutex.Unlock()
		for i, other := range c.listeners {
			if other == l {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return true
			}
		}
		return false
	}
}

type signal struct {
	c *Controller
}

func (s signal) Aborted() bool {
	return s.c.ctx.Err() != nil
}

func (s signal) OnAbort(fn func()) func() bool {
	return s.c.onAbort(fn)
}

func (s signal) Done() <-chan struct{} {
	return s.c.ctx.Done()
}

func (s signal) Err() error {
	return s.c.ctx.Err()
}

func (s signal) Cause() error {
	return context.Cause(s.c.ctx)
}

func (s signal) Context() context.Context {
	return s.c.ctx
}

func (s signal) Generation() uint64 {
	return s.c.gen
}
