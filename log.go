package widgets

import (
	"io"
	"log/slog"
	"os"
)

// widgetLogLevel controls the log level for widget debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var widgetLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for widget internals.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		widgetLogLevel.Set(slog.LevelDebug)
	} else {
		widgetLogLevel.Set(slog.LevelInfo)
	}
}

// widgetVerbose returns true if widget debug logging is enabled.
func widgetVerbose() bool {
	return widgetLogLevel.Level() <= slog.LevelDebug
}

func newWidgetLogger(w io.Writer, widget string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: widgetLogLevel})).With("widget", widget)
}

// gridLogger logs structural changes of multi-column lists.
var gridLogger = newWidgetLogger(os.Stderr, "multicolumnlist")

// editLogger logs formatting and history activity of multi-line editboxes.
var editLogger = newWidgetLogger(os.Stderr, "multilineeditbox")

// SetLogOutput redirects widget logging (stderr by default). Terminal UIs
// use it to keep log lines off the screen.
func SetLogOutput(w io.Writer) {
	gridLogger = newWidgetLogger(w, "multicolumnlist")
	editLogger = newWidgetLogger(w, "multilineeditbox")
}
