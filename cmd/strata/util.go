package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/strata-lang/strata/token"
)

var red = color.New(color.FgRed).SprintFunc()

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

// isTerminal reports whether w writes to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func useColor(w io.Writer) bool {
	return !color.NoColor && isTerminal(w)
}

func (a *app) writeJSON(w io.Writer, v any) error {
	var (
		data []byte
		err  error
	)
	if useColor(w) {
		data, err = prettyjson.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// readTokens decodes the token stream named by args, or standard input when
// args is empty or "-". It returns the tokens and a display name for the
// input.
func readTokens(cmd *cobra.Command, args []string) ([]token.Token, string, error) {
	if len(args) == 0 || args[0] == "-" {
		tokens, err := token.ReadStream(cmd.InOrStdin())
		return tokens, "<stdin>", err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	tokens, err := token.ReadStream(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", args[0], err)
	}
	return tokens, args[0], nil
}
