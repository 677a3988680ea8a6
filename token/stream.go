package token

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadStream decodes a JSON array of tokens, as written by WriteStream or by
// the lexer's dump mode.
func ReadStream(r io.Reader) ([]Token, error) {
	var tokens []Token
	if err := json.NewDecoder(r).Decode(&tokens); err != nil {
		return nil, fmt.Errorf("decode token stream: %w", err)
	}
	for i, tok := range tokens {
		if !tok.Type.Valid() {
			return nil, fmt.Errorf("token %d: unknown token type %q", i, tok.Type)
		}
		if tok.Presence == Implicit && (tok.LeadingTrivia != "" || tok.TrailingTrivia != "") {
			return nil, fmt.Errorf("token %d: implicit %q token carries trivia", i, tok.Type)
		}
	}
	return tokens, nil
}

// WriteStream encodes tokens as a JSON array, one token per line.
func WriteStream(w io.Writer, tokens []Token) error {
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	for i, tok := range tokens {
		data, err := json.Marshal(tok)
		if err != nil {
			return err
		}
		sep := ",\n"
		if i == len(tokens)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "  %s%s", data, sep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}
