// supersede is a single-slot task scheduler for Go programs. It wraps a task
// function such that each new call aborts the previous one, which is useful
// for work started in response to user input where only the latest request
// matters, such as search-as-you-type.
//
// To wrap a task:
//
//	import (
//		"git.sr.ht/~sircmpwn/supersede"
//	)
//
//	// ...
//	search := supersede.Wrap(func(sig supersede.Signal, query string) ([]string, error) {
//		return index.Search(sig.Context(), query)
//	})
//
//	search("go")   // aborted by the next call
//	search("gop")  // current
//
// The task receives a Signal, which reports cancellation through Aborted,
// Done, Context and listeners registered with OnAbort. Listeners registered
// before an abort have finished running by the time the next task body
// starts. Cancellation is advisory: a superseded task keeps running until it
// notices its signal and returns.
//
// Results and errors of the task are returned to the caller unchanged. Use a
// struct as the argument type to pass several values, and return a channel as
// the result to run the task body in the background.
//
// To attach a name, logger or Prometheus metrics, use New with options:
//
//	metrics := supersede.NewMetrics("myapp")
//	prometheus.MustRegister(metrics)
//	s := supersede.New(task,
//		supersede.WithName("search"),
//		supersede.WithMetrics(metrics))
//	result, err := s.Call(args)
package supersede
