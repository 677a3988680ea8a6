// Package parser builds the concrete syntax tree for a token stream.
//
// The parser is a recursive-descent parser with bounded lookahead that never
// backtracks. Errors are reported to a diag.Engine as soon as they are found;
// a failing production returns the diagnostic it recorded. Declaration lists
// recover from malformed declarations by skipping to the next semicolon, so a
// single parse reports as many independent errors as possible.
//
// A parser is created by calling New with the tokens to parse and should be
// used for a single parse.
package parser

import (
	"github.com/rs/zerolog"
	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/diag"
	"github.com/strata-lang/strata/token"
)

// Parse parses tokens as a source file and returns its top-level module.
// The module is nil if the file does not start with a module declaration or
// if the module itself could not be parsed. The error combines every
// error-severity diagnostic recorded by the parse.
func Parse(tokens []token.Token, options ...Option) (*ast.ModuleDecl, error) {
	p := New(tokens, options...)
	module := p.ParseTopLevelModule()
	return module, p.engine.Err()
}

// ParseLowered parses tokens as a single expression of the lowered form.
func ParseLowered(tokens []token.Token, options ...Option) (ast.Expr, error) {
	p := New(tokens, options...)
	expr, err := p.ParseLoweredExpr()
	if err != nil {
		return nil, p.engine.Err()
	}
	return expr, p.engine.Err()
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in locations. It is used by the
// default converter only.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithConverter sets the converter used to turn byte offsets into locations.
// By default the parser indexes the source text of the token stream.
func WithConverter(converter token.Converter) Option {
	return func(p *Parser) {
		p.converter = converter
	}
}

// WithEngine sets the diagnostic engine. By default each parser has its own.
func WithEngine(engine *diag.Engine) Option {
	return func(p *Parser) {
		p.engine = engine
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500; zero disables the limit.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithLogger sets the logger used to trace error recovery.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Parser object
type Parser struct {
	// tokens is the complete input
	tokens []token.Token

	// index of the current token
	index int

	// offset is the byte offset of the current token's leading trivia
	offset int

	converter token.Converter
	engine    *diag.Engine
	logger    zerolog.Logger

	// The filename of the input
	filename string

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth
	maxDepth int
}

// New returns a Parser for the given tokens.
func New(tokens []token.Token, options ...Option) *Parser {
	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		opt(p)
	}
	if p.engine == nil {
		p.engine = diag.NewEngine()
	}
	if p.converter == nil {
		p.converter = token.NewLineTable(p.filename, token.Source(tokens))
	}
	return p
}

// Engine returns the diagnostic engine the parser reports to.
func (p *Parser) Engine() *diag.Engine {
	return p.engine
}

// Done reports whether every token except a trailing EOF has been consumed.
func (p *Parser) Done() bool {
	return p.peek(0) == token.EOF
}

// ParseTopLevelModule parses a source file: a module declaration followed by
// the end of the input. It returns nil if the input does not start with the
// module keyword, after reporting it, or if the module fails to parse.
func (p *Parser) ParseTopLevelModule() *ast.ModuleDecl {
	if p.peek(0) != token.MODULE {
		p.engine.Diagnose(msgExpectedTopLevelModule(), p.peekLocation(1), nil)
		p.logger.Debug().Str("found", string(p.peek(0))).Msg("input does not start with a module")
		return nil
	}
	module, err := p.parseModule()
	if err != nil {
		p.logger.Debug().Err(err).Msg("top level module failed to parse")
		return nil
	}
	if _, err := p.consume(token.EOF); err != nil {
		return nil
	}
	return module
}

// ParseLoweredExpr parses one expression of the lowered form, in which an
// expression ends at the first line break between atoms. It may be called
// repeatedly to parse consecutive expressions.
func (p *Parser) ParseLoweredExpr() (ast.Expr, error) {
	return p.parseExpr(lowered)
}

// ParseLoweredBasicExpr parses one atom of the lowered form.
func (p *Parser) ParseLoweredBasicExpr() (ast.BasicExpr, error) {
	return p.parseBasicExpr(lowered)
}

// enter records one more level of nesting and fails if the maximum depth
// is exceeded. Every call must be paired with a call to leave.
func (p *Parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.logger.Debug().Int("depth", p.depth).Msg("maximum nesting depth exceeded")
		return p.diagnoseHere(msgMaxDepth(p.maxDepth))
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}
