// Package watcher follows the system dark-mode preference and notifies
// subscribers when it changes.
package watcher

// Detector reports the current system preference.
type Detector interface {
	PrefersDark() bool
}

// Dispatcher runs fn on the goroutine that owns subscriber state, such as a
// UI event loop. The default dispatcher calls fn directly.
type Dispatcher func(fn func())
