package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// SourceLines gives access to the text of source lines. *token.LineTable
// implements it.
type SourceLines interface {
	Line(n int) string
}

// Formatter renders diagnostics in a Rust-like style:
//
//	error[E1001]: unexpected token ')'
//	  --> main.strata:3:9
//	   |
//	 3 |   f x = )
//	   |         ^
//	   = note: ...
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool

	// Source provides the lines shown under the location arrow. It may be nil.
	Source SourceLines
}

// NewFormatter creates a new diagnostic formatter.
func NewFormatter(source SourceLines, useColor bool) *Formatter {
	return &Formatter{UseColor: useColor, Source: source}
}

func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Colors used for diagnostic formatting
var (
	colorError    = newColor(color.FgHiRed, color.Bold)
	colorWarning  = newColor(color.FgHiYellow, color.Bold)
	colorCode     = newColor(color.FgHiBlack)
	colorLocation = newColor(color.FgCyan)
	colorPipe     = newColor(color.FgHiBlack)
	colorCaret    = newColor(color.FgHiRed)
	colorNote     = newColor(color.FgHiBlue)
)

func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.UseColor {
		return s
	}
	return c.Sprint(s)
}

// Format renders a single diagnostic.
func (f *Formatter) Format(d *Diagnostic) string {
	return f.FormatWithPrefix(d, "")
}

// FormatWithPrefix renders a diagnostic with an optional prefix like "1/5"
// shown when the diagnostic has no code.
func (f *Formatter) FormatWithPrefix(d *Diagnostic, prefix string) string {
	var b strings.Builder

	width := 2
	if n := len(fmt.Sprint(d.Location.Line)); n > width {
		width = n
	}
	padding := strings.Repeat(" ", width)

	f.writeHeader(&b, d, prefix)

	if d.Location.IsValid() {
		b.WriteString(padding)
		b.WriteString(f.paint(colorLocation, "-->"))
		b.WriteString(" ")
		b.WriteString(f.paint(colorLocation, d.Location.String()))
		b.WriteString("\n")
		f.writeSource(&b, d, width)
	}

	for _, note := range d.Notes {
		b.WriteString(padding)
		b.WriteString(f.paint(colorPipe, " = "))
		b.WriteString(f.paint(colorNote, note.Message.Severity.String()+": "))
		b.WriteString(note.Message.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func (f *Formatter) writeHeader(b *strings.Builder, d *Diagnostic, prefix string) {
	labelColor := colorError
	if d.Message.Severity != Error {
		labelColor = colorWarning
	}
	b.WriteString(f.paint(labelColor, d.Message.Severity.String()))
	if d.Message.Code != "" {
		b.WriteString(f.paint(colorCode, "["+string(d.Message.Code)+"]"))
	} else if prefix != "" {
		b.WriteString(f.paint(colorCode, "["+prefix+"]"))
	}
	b.WriteString(f.paint(labelColor, ": "))
	b.WriteString(d.Message.Text)
	b.WriteString("\n")
}

func (f *Formatter) writeSource(b *strings.Builder, d *Diagnostic, width int) {
	if f.Source == nil {
		return
	}
	padding := strings.Repeat(" ", width)
	line := d.Location.Line
	text := f.Source.Line(line)

	b.WriteString(padding)
	b.WriteString(f.paint(colorPipe, " |\n"))
	b.WriteString(f.paint(colorPipe, fmt.Sprintf("%*d | ", width, line)))
	b.WriteString(text)
	b.WriteString("\n")

	start, length := f.caret(d, len(text))
	b.WriteString(padding)
	b.WriteString(f.paint(colorPipe, " | "))
	b.WriteString(strings.Repeat(" ", start-1))
	b.WriteString(f.paint(colorCaret, strings.Repeat("^", length)))
	b.WriteString("\n")
}

// caret returns the 1-indexed column and the width of the underline. The
// first highlight on the diagnostic's line is underlined; otherwise a single
// caret marks the location.
func (f *Formatter) caret(d *Diagnostic, lineLength int) (int, int) {
	for _, h := range d.Highlights {
		if h.Start.Line != d.Location.Line {
			continue
		}
		end := h.End.Column
		if h.End.Line != h.Start.Line {
			end = lineLength + 1
		}
		width := end - h.Start.Column
		if width < 1 {
			width = 1
		}
		return h.Start.Column, width
	}
	return max(d.Location.Column, 1), 1
}

// FormatAll renders several diagnostics, numbering them when there is more
// than one.
func (f *Formatter) FormatAll(diagnostics []*Diagnostic) string {
	if len(diagnostics) == 0 {
		return ""
	}
	if len(diagnostics) == 1 {
		return f.Format(diagnostics[0])
	}

	var b strings.Builder
	errors := 0
	for i, d := range diagnostics {
		if i > 0 {
			b.WriteString("\n")
		}
		if d.Message.Severity == Error {
			errors++
		}
		b.WriteString(f.FormatWithPrefix(d, fmt.Sprintf("%d/%d", i+1, len(diagnostics))))
	}
	if errors > 0 {
		b.WriteString("\n")
		b.WriteString(f.paint(colorError, fmt.Sprintf("found %d errors", errors)))
		b.WriteString("\n")
	}
	return b.String()
}
