package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/spf13/cobra"
	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/diag"
	"github.com/strata-lang/strata/parser"
	"github.com/strata-lang/strata/syntax"
	"github.com/strata-lang/strata/token"
)

var outputFormats = []string{"text", "json", "lsp"}

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a token stream and print its syntax tree",
		Long: `Parse a JSON token stream produced by the lexer and print the
resulting concrete syntax tree together with any diagnostics.

The stream is read from the named file, or from standard input when no file
is given or the file is "-".`,
		Example: `  strata parse Prelude.tokens.json
  strata parse -o json --validate < Prelude.tokens.json
  strata parse --lowered -o lsp expr.tokens.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runParse,
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", "text", "Set the output format (text, json, lsp)")
	flags.Bool("lowered", false, "Parse a single lowered expression instead of a module")
	flags.Bool("validate", false, "Check structural invariants of the resulting tree")
	flags.String("filename", "", "File name reported in diagnostics")
	flags.Int("max-depth", parser.DefaultMaxDepth, "Maximum nesting depth (0 disables the limit)")
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormats, cobra.ShellCompDirectiveNoFileComp))
	_ = a.v.BindPFlags(flags)
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	tokens, name, err := readTokens(cmd, args)
	if err != nil {
		return err
	}
	filename := a.v.GetString("filename")
	if filename == "" {
		filename = name
	}
	table := token.NewLineTable(filename, token.Source(tokens))

	p := parser.New(tokens,
		parser.WithConverter(table),
		parser.WithMaxDepth(a.v.GetInt("max-depth")),
		parser.WithLogger(a.logger))

	var root ast.Node
	if a.v.GetBool("lowered") {
		if expr, err := p.ParseLoweredExpr(); err == nil {
			root = expr
		}
	} else if module := p.ParseTopLevelModule(); module != nil {
		root = module
	}
	engine := p.Engine()
	a.logger.Debug().
		Str("file", filename).
		Int("tokens", len(tokens)).
		Int("diagnostics", len(engine.Diagnostics())).
		Msg("parsed token stream")

	var invalid error
	if root != nil && a.v.GetBool("validate") {
		invalid = syntax.Validate(root, &syntax.TreeValidator{
			Converter:  table,
			Contiguous: !engine.HasErrors(),
		})
	}

	out := cmd.OutOrStdout()
	switch format := strings.ToLower(a.v.GetString("output")); format {
	case "text":
		if root != nil {
			if err := ast.Dump(out, root); err != nil {
				return err
			}
		}
		if diags := engine.Diagnostics(); len(diags) > 0 {
			stderr := cmd.ErrOrStderr()
			formatter := diag.NewFormatter(table, useColor(stderr))
			fmt.Fprint(stderr, formatter.FormatAll(diags))
		}
	case "json":
		err := a.writeJSON(out, parseResult{
			Tree:        nodeToJSON(root),
			Diagnostics: diagnosticsToJSON(engine.Diagnostics()),
		})
		if err != nil {
			return err
		}
	case "lsp":
		if err := a.writeJSON(out, diag.ToProtocolList(engine, documentURI(filename))); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}

	if invalid != nil {
		return invalid
	}
	if engine.HasErrors() {
		return errDiagnosed
	}
	return nil
}

func documentURI(filename string) protocol.DocumentURI {
	if filename == "<stdin>" {
		return protocol.DocumentURI("untitled:stdin")
	}
	if abs, err := filepath.Abs(filename); err == nil {
		filename = abs
	}
	return protocol.DocumentURI("file://" + filepath.ToSlash(filename))
}
