package supersede

const defaultName = "default"

// Options configures a Scheduler.
type Options struct {
	// Name identifies the scheduler in log lines and metric labels.
	Name    string
	Logger  Logger
	Metrics *Metrics
}

// NewOptions creates options with defaults.
func NewOptions(opts ...Option) Options {
	options := Options{
		Name:   defaultName,
		Logger: defaultLogger,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// Option is for setting options.
type Option func(*Options)

// WithName sets the scheduler name. An empty name is ignored.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithMetrics makes the scheduler record its activity in m. Several
// schedulers may share one Metrics; they are told apart by name.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
