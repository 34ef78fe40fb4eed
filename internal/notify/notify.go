// Package notify carries user-facing outcome signals from the services to
// the view layer as transient, auto-dismissing toasts. Failures never
// crash the view; they arrive here.
package notify

import "log/slog"

// Level classifies a notification.
type Level string

// Notification levels.
const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier receives transient user-facing notifications.
type Notifier interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the structured log. It is the
// default sink when no view layer is attached.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a Notifier backed by the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Info implements Notifier.
func (n *LogNotifier) Info(msg string) {
	n.logger.Info(msg, "notification", LevelInfo)
}

// Success implements Notifier.
func (n *LogNotifier) Success(msg string) {
	n.logger.Info(msg, "notification", LevelSuccess)
}

// Error implements Notifier.
func (n *LogNotifier) Error(msg string) {
	n.logger.Warn(msg, "notification", LevelError)
}

// Recorder captures notifications in order, for tests and for view layers
// that render their own toast area.
type Recorder struct {
	Entries []Entry
}

// Entry is one recorded notification.
type Entry struct {
	Level   Level
	Message string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Info implements Notifier.
func (r *Recorder) Info(msg string) {
	r.Entries = append(r.Entries, Entry{Level: LevelInfo, Message: msg})
}

// Success implements Notifier.
func (r *Recorder) Success(msg string) {
	r.Entries = append(r.Entries, Entry{Level: LevelSuccess, Message: msg})
}

// Error implements Notifier.
func (r *Recorder) Error(msg string) {
	r.Entries = append(r.Entries, Entry{Level: LevelError, Message: msg})
}

// Last returns the most recent entry, or nil when none was recorded.
func (r *Recorder) Last() *Entry {
	if len(r.Entries) == 0 {
		return nil
	}
	return &r.Entries[len(r.Entries)-1]
}

// Reset drops all recorded entries.
func (r *Recorder) Reset() {
	r.Entries = nil
}
