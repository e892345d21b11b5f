// Package setting provides a named, selectable value that imkit widgets can
// bind to.
package setting

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNoOptions is reported for a setting with an empty option list.
var ErrNoOptions = errors.New("setting has no options")

// Setting is a named value chosen from a fixed list of options.
// It implements imkit.Binding. Not safe for concurrent use.
type Setting[T any] struct {
	name     string
	tooltip  string
	options  []T
	value    T
	onChange func(T)
	log      *slog.Logger
	reported bool
}

// New creates a setting with an initial value and its options.
func New[T any](name, tooltip string, value T, options ...T) *Setting[T] {
	return &Setting[T]{
		name:    name,
		tooltip: tooltip,
		options: options,
		value:   value,
		log:     slog.Default(),
	}
}

// SetLogger sets the logger invalid-option errors are reported to.
func (s *Setting[T]) SetLogger(l *slog.Logger) *Setting[T] {
	if l != nil {
		s.log = l
	}
	return s
}

// OnChange registers fn to run after every SetValue.
func (s *Setting[T]) OnChange(fn func(T)) *Setting[T] {
	s.onChange = fn
	return s
}

// Name returns the display name.
func (s *Setting[T]) Name() string { return s.name }

// Tooltip returns the help text.
func (s *Setting[T]) Tooltip() string { return s.tooltip }

// Options returns the selectable values. The slice must not be modified.
func (s *Setting[T]) Options() []T { return s.options }

// Value returns the current value.
func (s *Setting[T]) Value() T { return s.value }

// SetValue replaces the current value.
func (s *Setting[T]) SetValue(v T) {
	s.value = v
	if s.onChange != nil {
		s.onChange(v)
	}
}

// Validate reports why the option list is unusable, or nil.
func (s *Setting[T]) Validate() error {
	if len(s.options) == 0 {
		return fmt.Errorf("%q: %w", s.name, ErrNoOptions)
	}
	return nil
}

// LogErrorOnceIfOptionsInvalid reports whether the option list is unusable.
// The error is logged on the first failing call only.
func (s *Setting[T]) LogErrorOnceIfOptionsInvalid() bool {
	err := s.Validate()
	if err == nil {
		return false
	}
	if !s.reported {
		s.reported = true
		s.log.Error("invalid setting options", "setting", s.name, "err", err)
	}
	return true
}
