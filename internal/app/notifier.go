package app

// Notifier receives transient user-facing outcome messages from store
// operations. It is the port behind the presentation layer's toasts.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Warning(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Success implements Notifier.
func (NopNotifier) Success(string) {}

// Error implements Notifier.
func (NopNotifier) Error(string) {}

// Warning implements Notifier.
func (NopNotifier) Warning(string) {}
