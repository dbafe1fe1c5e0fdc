// Package notify sends desktop notifications.
package notify

import (
	"sync"

	"github.com/gen2brain/beeep"
)

// AppName is reported to the desktop notification service.
const AppName = "Focus Station"

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop delivers notifications through the platform's notification
// service.
type Desktop struct {
	// Sound plays the alert sound along with the notification.
	Sound bool
}

var setAppName sync.Once

// Notify implements Notifier.
func (d Desktop) Notify(title, message string) error {
	setAppName.Do(func() {
		beeep.AppName = AppName
	})
	if d.Sound {
		return beeep.Alert(title, message, "")
	}
	return beeep.Notify(title, message, "")
}

// Nop discards notifications.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(string, string) error { return nil }

// Recorder keeps notifications in memory.
type Recorder struct {
	mu       sync.Mutex
	Messages []Message
}

// Message is one recorded notification.
type Message struct {
	Title string
	Body  string
}

// Notify implements Notifier.
func (r *Recorder) Notify(title, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, Message{Title: title, Body: message})
	return nil
}

// New returns a desktop notifier, or Nop when disabled.
func New(enabled bool) Notifier {
	if !enabled {
		return Nop{}
	}
	return Desktop{Sound: true}
}
