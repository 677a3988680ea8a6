package diag

import (
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/strata-lang/strata/token"
)

// Consumer receives diagnostics as they are emitted.
type Consumer interface {
	Handle(d *Diagnostic)
}

// ConsumerFunc adapts a function to the Consumer interface.
type ConsumerFunc func(d *Diagnostic)

// Handle implements Consumer.
func (f ConsumerFunc) Handle(d *Diagnostic) { f(d) }

// Engine collects diagnostics in emission order. It is safe for concurrent
// use.
type Engine struct {
	mu          sync.Mutex
	diagnostics []*Diagnostic
	consumers   []Consumer
}

// NewEngine returns an engine that forwards diagnostics to consumers.
func NewEngine(consumers ...Consumer) *Engine {
	return &Engine{consumers: consumers}
}

// Register adds a consumer. It only sees diagnostics emitted afterwards.
func (e *Engine) Register(c Consumer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.consumers = append(e.consumers, c)
}

// Diagnose records a diagnostic at loc. The optional build function attaches
// highlights and notes before consumers are notified.
func (e *Engine) Diagnose(msg Message, loc token.Location, build func(*Builder)) *Diagnostic {
	d := &Diagnostic{Message: msg, Location: loc}
	if build != nil {
		build(&Builder{d: d})
	}
	e.mu.Lock()
	e.diagnostics = append(e.diagnostics, d)
	consumers := append([]Consumer(nil), e.consumers...)
	e.mu.Unlock()
	for _, c := range consumers {
		c.Handle(d)
	}
	return d
}

// Diagnostics returns the recorded diagnostics in emission order.
func (e *Engine) Diagnostics() []*Diagnostic {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*Diagnostic(nil), e.diagnostics...)
}

// HasErrors reports whether an error-severity diagnostic was recorded.
func (e *Engine) HasErrors() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, d := range e.diagnostics {
		if d.Message.Severity == Error {
			return true
		}
	}
	return false
}

// Err returns the error-severity diagnostics combined into one error, or nil
// if there are none. Each element of the result is a *Diagnostic.
func (e *Engine) Err() error {
	var result *multierror.Error
	for _, d := range e.Diagnostics() {
		if d.Message.Severity == Error {
			result = multierror.Append(result, d)
		}
	}
	if result != nil {
		result.ErrorFormat = listFormat
	}
	return result.ErrorOrNil()
}

func listFormat(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	var msg string
	for i, err := range errs {
		if i > 0 {
			msg += "\n"
		}
		msg += err.Error()
	}
	return msg
}
