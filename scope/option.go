package scope

// Option is a type to configure a scope at creation time.
type Option func(*Handle)

// Named is an option to label a scope. The label shows up in trace output and trails.
func Named(name string) Option {
	return func(h *Handle) {
		h.name = name
	}
}

// WithTrail is an option to record the steps of a scope into trail. Nested scopes
// sharing the same trail are recorded as children of the enclosing scope.
//
// Use it like this:
//
//     trail := &scope.Trail{}
//     r := maybe.Bind(body, scope.Named("ask"), scope.WithTrail(trail))
//     fmt.Println(trail)
//
func WithTrail(trail *Trail) Option {
	return func(h *Handle) {
		h.trail = trail
	}
}
