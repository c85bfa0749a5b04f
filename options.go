package catclustering

// Options configures a single CreateDendrogram run. The zero value is not
// meant to be constructed directly; use defaultOptions plus Option
// functions.
type Options struct {
	initIterations int
}

// Option customizes a CreateDendrogram run. See WithInitIterations.
type Option func(*Options)

func defaultOptions() Options {
	return Options{initIterations: 1}
}

// WithInitIterations sets the number of neighbor-seeding rounds (spec
// "init_iterations"). Values below 1 are clamped to 1 by the seeder; the
// default, when this option is not supplied, is 1.
func WithInitIterations(n int) Option {
	return func(o *Options) { o.initIterations = n }
}
