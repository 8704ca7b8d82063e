// Package notify defines the user-visible, non-blocking message sink.
//
// The sink receives (title, message, level) triples. It is how the profile
// dialog reports export failures and resolver warnings without interrupting
// the session. Hosts plug in their own implementation: the CLI prints styled
// status lines, the terminal viewer shows a status bar.
package notify

import "sync"

// Level is the severity of a notification.
type Level int

const (
	Info Level = iota
	Warning
	Critical
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

// Sink accepts user-visible notifications.
type Sink interface {
	Notify(title, message string, level Level)
}

// Func adapts a plain function to a Sink.
type Func func(title, message string, level Level)

// Notify calls f.
func (f Func) Notify(title, message string, level Level) { f(title, message, level) }

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(string, string, Level) {}

// Message is a single recorded notification.
type Message struct {
	Title string
	Text  string
	Level Level
}

// Recorder keeps every notification it receives. It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

// Notify records the message.
func (r *Recorder) Notify(title, message string, level Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{Title: title, Text: message, Level: level})
}

// Messages returns a copy of the recorded notifications.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Count returns the number of recorded notifications at the given level.
func (r *Recorder) Count(level Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.messages {
		if m.Level == level {
			n++
		}
	}
	return n
}

var (
	_ Sink = Func(nil)
	_ Sink = Discard{}
	_ Sink = (*Recorder)(nil)
)
