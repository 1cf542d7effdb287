package supersede

// Wraps fn in a new Scheduler and returns its Call method. Each call of the
// returned function aborts the signal passed to the previous one.
func Wrap[A, R any](fn TaskFunc[A, R], opts ...Option) func(A) (R, error) {
	return New(fn, opts...).Func()
}
