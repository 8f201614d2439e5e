package widgets

// ClipboardProvider abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs;
// backend/glfw ships one for GLFW windows.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// Global clipboard provider (set by application during initialization).
var clipboardProvider ClipboardProvider

// SetClipboardProvider sets the global clipboard provider used by widgets
// that were not given their own with WithClipboard.
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardProvider = cp
}

// GetClipboardProvider returns the current clipboard provider, or nil if not set.
func GetClipboardProvider() ClipboardProvider {
	return clipboardProvider
}

// MemoryClipboard is an in-process clipboard. The zero value is ready to use.
type MemoryClipboard struct {
	text string
}

// GetText returns the stored text.
func (c *MemoryClipboard) GetText() string { return c.text }

// SetText replaces the stored text.
func (c *MemoryClipboard) SetText(text string) { c.text = text }

// widgetClipboard resolves the clipboard for one widget: its own provider
// first, then the global one. The returned provider may be nil.
func widgetClipboard(own ClipboardProvider) ClipboardProvider {
	if own != nil {
		return own
	}
	return clipboardProvider
}
