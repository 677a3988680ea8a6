package diag

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/strata-lang/strata/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(line, col int) token.Location {
	return token.Location{File: "main.strata", Line: line, Column: col}
}

func TestEngineRecordsInOrder(t *testing.T) {
	var seen []string
	e := NewEngine(ConsumerFunc(func(d *Diagnostic) {
		seen = append(seen, d.Message.Text)
	}))
	first := e.Diagnose(Errorf(E1001, "unexpected token '%s'", ")"), loc(1, 5), nil)
	e.Diagnose(NewNote("just a note"), loc(2, 1), nil)
	e.Diagnose(Errorf(E1003, "expected %s", "expression"), loc(3, 1), func(b *Builder) {
		b.Highlight(Range{Start: loc(3, 1), End: loc(3, 4)})
		b.Note(NewNote("try this"), loc(3, 1))
	})

	all := e.Diagnostics()
	require.Len(t, all, 3)
	assert.Same(t, first, all[0])
	assert.Equal(t, []string{"unexpected token ')'", "just a note", "expected expression"}, seen)
	assert.Len(t, all[2].Highlights, 1)
	require.Len(t, all[2].Notes, 1)
	assert.Equal(t, Note, all[2].Notes[0].Message.Severity)
	assert.True(t, e.HasErrors())
}

func TestEngineErr(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.Err())
	assert.False(t, e.HasErrors())

	e.Diagnose(NewNote("only a note"), loc(1, 1), nil)
	require.NoError(t, e.Err())

	d1 := e.Diagnose(Errorf(E1002, "unexpected end-of-file reached"), loc(4, 1), nil)
	d2 := e.Diagnose(Errorf(E1003, "expected declaration"), loc(5, 2), nil)

	err := e.Err()
	require.Error(t, err)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, []error{d1, d2}, merr.Errors)
	assert.Equal(t, "main.strata:4:1: error: unexpected end-of-file reached\nmain.strata:5:2: error: expected declaration", err.Error())

	var d *Diagnostic
	require.True(t, errors.As(err, &d))
	assert.Same(t, d1, d)
}

func TestRegisterAfterEmission(t *testing.T) {
	e := NewEngine()
	e.Diagnose(Errorf(E1001, "early"), loc(1, 1), nil)
	count := 0
	e.Register(ConsumerFunc(func(*Diagnostic) { count++ }))
	e.Diagnose(Errorf(E1001, "late"), loc(1, 1), nil)
	assert.Equal(t, 1, count)
}

func TestCodes(t *testing.T) {
	assert.Equal(t, "unexpected token", E1001.Description())
	assert.Equal(t, "parse", E1009.Category())
	assert.Equal(t, "unknown error", Code("E9999").Description())
	assert.Equal(t, "unknown", Code("X").Category())
}

func TestFormat(t *testing.T) {
	source := token.NewLineTable("main.strata", "module A where {\n  f x = )\n}\n")
	e := NewEngine()
	d := e.Diagnose(Errorf(E1001, "unexpected token ')'"), source.Location(25), func(b *Builder) {
		b.Highlight(Range{Start: source.Location(25), End: source.Location(26)})
		b.Note(NewNote("expected an expression"), source.Location(25))
	})

	f := NewFormatter(source, false)
	expected := strings.Join([]string{
		"error[E1001]: unexpected token ')'",
		"  --> main.strata:2:9",
		"   |",
		" 2 |   f x = )",
		"   |         ^",
		"   = note: expected an expression",
		"",
	}, "\n")
	assert.Equal(t, expected, f.Format(d))

	colored := NewFormatter(source, true).Format(d)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "unexpected token ')'")
}

func TestFormatAll(t *testing.T) {
	f := NewFormatter(nil, false)
	assert.Equal(t, "", f.FormatAll(nil))

	d1 := &Diagnostic{Message: Message{Severity: Error, Text: "first"}, Location: loc(1, 1)}
	d2 := &Diagnostic{Message: Message{Severity: Warning, Text: "second"}}
	out := f.FormatAll([]*Diagnostic{d1, d2})
	assert.Contains(t, out, "error[1/2]: first")
	assert.Contains(t, out, "warning[2/2]: second")
	assert.Contains(t, out, "found 1 errors")
}

func TestDiagnosticError(t *testing.T) {
	d := &Diagnostic{Message: Errorf(E1004, "missing required top level module"), Location: loc(1, 7)}
	assert.Equal(t, "main.strata:1:7: error: missing required top level module", d.Error())

	d = &Diagnostic{Message: Errorf(E1002, "unexpected end-of-file reached")}
	assert.Equal(t, "error: unexpected end-of-file reached", d.Error())
}

func TestToProtocol(t *testing.T) {
	d := &Diagnostic{
		Message:    Errorf(E1007, "declaration of 'Nat' is missing type ascription"),
		Location:   loc(3, 6),
		Highlights: []Range{{Start: loc(3, 6), End: loc(3, 9)}},
		Notes: []NoteEntry{{
			Message:  NewNote("add a type ascription; e.g. ': Type'"),
			Location: loc(3, 9),
		}},
	}
	uri := protocol.DocumentURI("file:///main.strata")
	p := ToProtocol(d, uri)
	assert.Equal(t, protocol.SeverityError, p.Severity)
	assert.Equal(t, "strata", p.Source)
	assert.Equal(t, "E1007: declaration of 'Nat' is missing type ascription", p.Message)
	assert.Equal(t, protocol.Position{Line: 2, Character: 5}, p.Range.Start)
	assert.Equal(t, protocol.Position{Line: 2, Character: 8}, p.Range.End)
	require.Len(t, p.RelatedInformation, 1)
	assert.Equal(t, uri, p.RelatedInformation[0].Location.URI)
	assert.Equal(t, protocol.Position{Line: 2, Character: 8}, p.RelatedInformation[0].Location.Range.Start)

	e := NewEngine()
	e.Diagnose(NewNote("n"), token.Location{}, nil)
	list := ToProtocolList(e, uri)
	require.Len(t, list, 1)
	assert.Equal(t, protocol.SeverityInformation, list[0].Severity)
	assert.Equal(t, protocol.Position{}, list[0].Range.Start)
}
