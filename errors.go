package widgets

import "errors"

// Errors returned by widget operations. They are always wrapped with the
// offending index or item, so compare with errors.Is.
var (
	// ErrInvalidReference reports an item, segment or id that does not
	// belong to the widget it was passed to.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrOutOfRange reports a row, column or text index beyond current bounds.
	ErrOutOfRange = errors.New("index out of range")

	// ErrUnsupported reports an operation that needs a collaborator the
	// widget was not given (font, render area).
	ErrUnsupported = errors.New("unsupported operation")
)
