package widgets

// Option configures a widget at construction time.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	list := widgets.NewMultiColumnList(
//	    widgets.WithOpt(widgets.OptSelectionMode, widgets.CellMultiple),
//	)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
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

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// --- Shared ---
var (
	OptRenderArea         = NewOptKey[AreaProvider]("renderArea", nil)
	OptVertScrollbar      = NewOptKey[Scrollbar]("vertScrollbar", nil)
	OptHorzScrollbar      = NewOptKey[Scrollbar]("horzScrollbar", nil)
	OptForceVertScrollbar = NewOptKey("forceVertScrollbar", false)
	OptForceHorzScrollbar = NewOptKey("forceHorzScrollbar", false)
	OptClipboard          = NewOptKey[ClipboardProvider]("clipboard", nil)
)

// --- MultiColumnList ---
var (
	OptHeader        = NewOptKey[Header]("header", nil)
	OptSelectionMode = NewOptKey("selectionMode", RowSingle)
	OptSortDirection = NewOptKey("sortDirection", SortNone)
)

// --- MultiLineEditbox ---
var (
	OptMaxTextLength = NewOptKey("maxTextLength", DefaultMaxTextLength)
	OptWordWrap      = NewOptKey("wordWrap", true)
	OptReadOnly      = NewOptKey("readOnly", false)
	OptUndoLimit     = NewOptKey("undoLimit", DefaultUndoLimit)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithRenderArea sets the collaborator that reports the content rectangle.
func WithRenderArea(area AreaProvider) Option { return WithOpt(OptRenderArea, area) }

// WithScrollbars replaces the default scrollbar models.
func WithScrollbars(vert, horz Scrollbar) Option {
	return func(o *options) {
		WithOpt(OptVertScrollbar, vert)(o)
		WithOpt(OptHorzScrollbar, horz)(o)
	}
}

// AlwaysShowVertScrollbar forces the vertical scrollbar visible.
func AlwaysShowVertScrollbar() Option { return WithOpt(OptForceVertScrollbar, true) }

// AlwaysShowHorzScrollbar forces the horizontal scrollbar visible.
func AlwaysShowHorzScrollbar() Option { return WithOpt(OptForceHorzScrollbar, true) }

// WithClipboard sets a per-widget clipboard instead of the global one.
func WithClipboard(cp ClipboardProvider) Option { return WithOpt(OptClipboard, cp) }

// WithHeader sets the header collaborator of a multi-column list.
func WithHeader(h Header) Option { return WithOpt(OptHeader, h) }

// WithSelectionMode sets the initial selection mode.
func WithSelectionMode(mode SelectionMode) Option { return WithOpt(OptSelectionMode, mode) }

// WithSortDirection sets the initial sort direction.
func WithSortDirection(dir SortDirection) Option { return WithOpt(OptSortDirection, dir) }

// WithMaxTextLength bounds the editbox buffer length.
func WithMaxTextLength(n int) Option { return WithOpt(OptMaxTextLength, n) }

// WithWordWrap enables or disables word wrapping.
func WithWordWrap(wrap bool) Option { return WithOpt(OptWordWrap, wrap) }

// ReadOnly makes the editbox read-only.
func ReadOnly() Option { return WithOpt(OptReadOnly, true) }

// WithUndoLimit sets how many edits the editbox remembers.
func WithUndoLimit(n int) Option { return WithOpt(OptUndoLimit, n) }
