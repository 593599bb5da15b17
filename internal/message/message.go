// Package message holds the append-only game message log.
package message

import "github.com/gdamore/tcell/v2"

// Sink receives game messages.
type Sink interface {
	Add(text string, color tcell.Color)
}

// Message is one log line and the colour it is shown in.
type Message struct {
	Text  string
	Color tcell.Color
}

// Log is an append-only list of messages. The zero value is ready to use.
type Log struct {
	entries []Message
}

// Add appends a message.
func (l *Log) Add(text string, color tcell.Color) {
	l.entries = append(l.entries, Message{Text: text, Color: color})
}

// Entries returns every message, oldest first. The slice must not be modified.
func (l *Log) Entries() []Message {
	return l.entries
}

// Len returns the number of messages.
func (l *Log) Len() int {
	return len(l.entries)
}

// Last returns up to n of the newest messages, oldest first.
func (l *Log) Last(n int) []Message {
	if n <= 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return l.entries[len(l.entries)-n:]
}
