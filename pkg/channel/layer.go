package channel

// Payloads are layered in one direction only: a value set on the call payload
// wins over the adapter default, and a value set on neither stays unset.
// "Set" means non-zero; optional flags are pointers so that an explicit false
// is distinguishable from absent.

// Layer returns call when it is set, otherwise base.
func Layer[T comparable](call, base T) T {
	var zero T
	if call != zero {
		return call
	}
	return base
}

// LayerSlice returns call when it has elements, otherwise base.
func LayerSlice[T any](call, base []T) []T {
	if len(call) > 0 {
		return call
	}
	return base
}

// Bool returns a pointer to v, for optional payload flags.
func Bool(v bool) *bool {
	return &v
}
