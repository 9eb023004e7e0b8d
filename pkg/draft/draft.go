// Package draft provides the displayed/committed value pair that edit
// sessions are built from: one live value the UI binds to, one last
// accepted value, and explicit commit/rollback between them.
package draft

// Field holds one staged-edit value.
//
// Commit and Rollback are unconditional pure mutations; validation is the
// caller's responsibility. The committed value never reflects an
// uncommitted edit.
//
// For reference types (maps, slices), replace the displayed value via
// SetDisplayed instead of mutating it in place; otherwise the committed
// snapshot would alias the live edit.
type Field[T any] struct {
	displayed T
	committed T
}

// New creates a field whose displayed and committed values both start at
// initial.
func New[T any](initial T) *Field[T] {
	return &Field[T]{displayed: initial, committed: initial}
}

// Displayed returns the live-edited value.
func (f *Field[T]) Displayed() T { return f.displayed }

// SetDisplayed replaces the live-edited value. The committed value is
// untouched.
func (f *Field[T]) SetDisplayed(v T) { f.displayed = v }

// Committed returns the last accepted value.
func (f *Field[T]) Committed() T { return f.committed }

// Commit overwrites the committed value with the current displayed value.
func (f *Field[T]) Commit() { f.committed = f.displayed }

// Rollback overwrites the displayed value with the committed value,
// discarding unsaved edits.
func (f *Field[T]) Rollback() { f.displayed = f.committed }

// Reset sets both values to v, as when a session (re)initializes a field.
func (f *Field[T]) Reset(v T) {
	f.displayed = v
	f.committed = v
}
