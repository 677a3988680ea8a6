package main

import (
	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/diag"
)

// jsonNode represents a syntax tree node in JSON output.
type jsonNode struct {
	Type     string      `json:"type"`
	Value    string      `json:"value,omitempty"`
	Implicit bool        `json:"implicit,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

func nodeToJSON(node ast.Node) *jsonNode {
	if node == nil {
		return nil
	}
	if tok, ok := node.(*ast.Token); ok {
		return &jsonNode{
			Type:     string(tok.Type),
			Value:    tok.Text,
			Implicit: tok.IsImplicit(),
		}
	}
	result := &jsonNode{Type: node.Kind().String()}
	for _, child := range node.Children() {
		if child == nil {
			continue
		}
		result.Children = append(result.Children, nodeToJSON(child))
	}
	return result
}

type jsonDiagnostic struct {
	Code     string   `json:"code,omitempty"`
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	Location string   `json:"location"`
	Notes    []string `json:"notes,omitempty"`
}

func diagnosticsToJSON(diagnostics []*diag.Diagnostic) []jsonDiagnostic {
	result := make([]jsonDiagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		entry := jsonDiagnostic{
			Code:     string(d.Message.Code),
			Severity: d.Message.Severity.String(),
			Message:  d.Message.Text,
			Location: d.Location.String(),
		}
		for _, note := range d.Notes {
			entry.Notes = append(entry.Notes, note.Message.Text)
		}
		result = append(result, entry)
	}
	return result
}

type parseResult struct {
	Tree        *jsonNode        `json:"tree"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}
