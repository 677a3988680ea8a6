package parser

import (
	"testing"

	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/internal/tokentest"
	"github.com/strata-lang/strata/token"
)

// FuzzParse tests that the parser doesn't panic or loop on arbitrary input,
// and that an error-free parse reproduces its input exactly.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"module",
		"module M where {\n}<;",
		"module M where {\n  x : Type;\n}<;",
		"module M where {\n  f : (",
		"module M where <{\n  open <}<;",
		prelude,
		"module M where {\n  data D where {\n  };\n  c : D;\n}<;",
		"module M where {\n  ) ) ) ;\n  f x with y = z;\n}<;",
		"module M where {\n  A.b.c. : Type;\n  f (x : A.) = record R { a = \\_ -> x; };\n}<;",
		"module M where {\n  x = let { y = let { } in y; } in ∀ {A : Type} -> A;\n}<;",
		"module M where { infixl ; infixr 5 ; infix }",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		tokens := tokentest.Scan(src)
		module, err := Parse(tokens)
		if err == nil && module != nil {
			want := token.Source(tokens[:len(tokens)-1])
			if got := ast.SourceText(module); got != want {
				t.Fatalf("source text mismatch:\nwant %q\ngot  %q", want, got)
			}
		}
		_, _ = ParseLowered(tokens)
	})
}
