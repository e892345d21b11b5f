package imkit

// FindIndex returns the index of the binding's current value in its option
// list, or 0 when the value is not an option.
func FindIndex[T comparable](b Binding[T]) int {
	return FindIndexFunc(b.Options(), b.Value(), func(x, y T) bool { return x == y })
}

// FindIndexFunc returns the first index i with eq(options[i], value), or 0.
func FindIndexFunc[T any](options []T, value T, eq func(a, b T) bool) int {
	for i, opt := range options {
		if eq(opt, value) {
			return i
		}
	}
	return 0
}
