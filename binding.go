package imkit

// Binding is a named, selectable setting a Dropdown edits.
// setting.Setting implements it.
type Binding[T any] interface {
	Name() string
	Tooltip() string
	Options() []T
	Value() T
	SetValue(v T)

	// LogErrorOnceIfOptionsInvalid reports whether the option list is
	// unusable, logging the problem the first time only.
	LogErrorOnceIfOptionsInvalid() bool
}
