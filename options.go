package imkit

// Option configures a widget call.
type Option func(*options)

type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Custom widgets built on imkit can define their own keys:
//
//	var OptAccent = imkit.NewOptKey("accent", imkit.ColorWhite)
//	ctx.MyWidget("x", imkit.WithOpt(OptAccent, color))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default if unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to build custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// Built-in option keys.
var (
	OptID         = NewOptKey("id", "")
	OptWidth      = NewOptKey[float32]("width", 0)
	OptHeight     = NewOptKey[float32]("height", 0)
	OptLabelWidth = NewOptKey[float32]("labelWidth", 0)
	OptStyle      = NewOptKey("style", "")
	OptFormat     = NewOptKey("format", "")
)

// WithID gives the widget an explicit identity key instead of its label.
// Use it when two widgets share a label in the same scope.
func WithID(key string) Option { return WithOpt(OptID, key) }

// WithWidth overrides the width of the widget's control.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight overrides the height of the widget's control.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithLabelWidth overrides the width of the row label column.
func WithLabelWidth(width float32) Option { return WithOpt(OptLabelWidth, width) }

// WithStyle draws the widget with a named registry style.
func WithStyle(name string) Option { return WithOpt(OptStyle, name) }

// WithFormat sets the printf verb used for a slider's text mirror.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }
