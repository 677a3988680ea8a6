// Package diag records and renders compiler diagnostics.
//
// A Diagnostic is created through an Engine, which keeps every diagnostic in
// emission order and forwards it to registered consumers. Diagnostics
// implement error so that the parser can return the diagnostic it recorded as
// the failure value of a production.
package diag

import (
	"fmt"
	"strings"

	"github.com/strata-lang/strata/token"
)

// Severity is the importance of a message.
type Severity uint8

const (
	Error Severity = iota
	Warning
	Note
	Remark
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return "remark"
	}
}

// Message is the text of a diagnostic or note.
type Message struct {
	Severity Severity
	Text     string
	Code     Code
}

// Errorf returns an error-severity message.
func Errorf(code Code, format string, args ...any) Message {
	return Message{Severity: Error, Text: fmt.Sprintf(format, args...), Code: code}
}

// NewNote returns a note-severity message.
func NewNote(text string) Message {
	return Message{Severity: Note, Text: text}
}

// Range is a source range between two locations.
type Range struct {
	Start token.Location
	End   token.Location
}

// NoteEntry is a secondary message attached to a diagnostic.
type NoteEntry struct {
	Message    Message
	Location   token.Location
	Highlights []Range
}

// Diagnostic is one recorded message together with its location, the ranges
// it highlights and any attached notes.
type Diagnostic struct {
	Message    Message
	Location   token.Location
	Highlights []Range
	Notes      []NoteEntry
}

// Error implements error.
func (d *Diagnostic) Error() string {
	var b strings.Builder
	if d.Location.IsValid() || d.Location.File != "" {
		b.WriteString(d.Location.String())
		b.WriteString(": ")
	}
	b.WriteString(d.Message.Severity.String())
	b.WriteString(": ")
	b.WriteString(d.Message.Text)
	return b.String()
}

// Builder attaches highlights and notes to a diagnostic while it is being
// emitted.
type Builder struct {
	d *Diagnostic
}

// Highlight marks a source range as relevant.
func (b *Builder) Highlight(r Range) {
	b.d.Highlights = append(b.d.Highlights, r)
}

// Note attaches a secondary message.
func (b *Builder) Note(msg Message, loc token.Location, highlights ...Range) {
	b.d.Notes = append(b.d.Notes, NoteEntry{Message: msg, Location: loc, Highlights: highlights})
}
