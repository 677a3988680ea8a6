package diag

import (
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/strata-lang/strata/token"
)

// Source is the name reported as the origin of LSP diagnostics.
const Source = "strata"

// ToProtocol converts a diagnostic to its language server protocol form.
// Notes become related information in the same document.
func ToProtocol(d *Diagnostic, uri protocol.DocumentURI) protocol.Diagnostic {
	result := protocol.Diagnostic{
		Range:    protocolRange(d.Location, d.Highlights),
		Severity: protocolSeverity(d.Message.Severity),
		Source:   Source,
		Message:  d.Message.Text,
	}
	if d.Message.Code != "" {
		result.Message = string(d.Message.Code) + ": " + d.Message.Text
	}
	for _, note := range d.Notes {
		result.RelatedInformation = append(result.RelatedInformation, protocol.DiagnosticRelatedInformation{
			Location: protocol.Location{
				URI:   uri,
				Range: protocolRange(note.Location, note.Highlights),
			},
			Message: note.Message.Text,
		})
	}
	return result
}

// ToProtocolList converts every diagnostic of the engine.
func ToProtocolList(e *Engine, uri protocol.DocumentURI) []protocol.Diagnostic {
	diagnostics := e.Diagnostics()
	result := make([]protocol.Diagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		result = append(result, ToProtocol(d, uri))
	}
	return result
}

func protocolRange(loc token.Location, highlights []Range) protocol.Range {
	if len(highlights) > 0 {
		return protocol.Range{
			Start: protocolPosition(highlights[0].Start),
			End:   protocolPosition(highlights[0].End),
		}
	}
	pos := protocolPosition(loc)
	return protocol.Range{Start: pos, End: pos}
}

// protocolPosition converts a 1-indexed location to a 0-indexed position.
func protocolPosition(loc token.Location) protocol.Position {
	line, col := loc.Line-1, loc.Column-1
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

func protocolSeverity(s Severity) protocol.DiagnosticSeverity {
	switch s {
	case Error:
		return protocol.SeverityError
	case Warning:
		return protocol.SeverityWarning
	case Note:
		return protocol.SeverityInformation
	default:
		return protocol.SeverityHint
	}
}
