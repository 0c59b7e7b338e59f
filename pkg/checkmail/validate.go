package checkmail

import (
	"regexp"
	"sync"
)

// DefaultPattern is the accepted address grammar, without anchors.
// Validators always match it against the whole input.
//
//	local part: [a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+
//	domain:     [a-zA-Z0-9-]+ followed by zero or more .[a-zA-Z0-9-]+
const DefaultPattern = `[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)*`

// Option configures a Validator using the functional options pattern.
type Option func(*config)

type config struct {
	pattern string
}

// WithPattern replaces the address grammar. The expression is anchored at
// both ends before compiling, so it must describe the whole address.
// An expression that does not compile is reported by ValidateFormat as an
// *UnexpectedError, not by New.
func WithPattern(expr string) Option {
	return func(c *config) {
		c.pattern = expr
	}
}

// Validator checks candidates against a compiled address pattern.
// The pattern is compiled once, on first use, and never mutated.
type Validator struct {
	pattern string
	compile func() (*regexp.Regexp, error)
}

// New creates a Validator. It never fails and does no work up front.
func New(opts ...Option) *Validator {
	cfg := config{pattern: DefaultPattern}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	expr := `^(?:` + cfg.pattern + `)$`
	return &Validator{
		pattern: cfg.pattern,
		compile: sync.OnceValues(func() (*regexp.Regexp, error) {
			return regexp.Compile(expr)
		}),
	}
}

// Pattern returns the unanchored grammar the validator enforces.
func (v *Validator) Pattern() string {
	return v.pattern
}

// ValidateFormat returns nil if the whole candidate matches the grammar.
//
// Returns:
//   - nil: candidate is a syntactically acceptable address
//   - *FormatError: candidate was rejected; Input holds it unmodified
//   - *UnexpectedError: the pattern could not be compiled
func (v *Validator) ValidateFormat(candidate string) error {
	re, err := v.compile()
	if err != nil {
		return &UnexpectedError{Message: err.Error(), Cause: err}
	}
	if !re.MatchString(candidate) {
		return &FormatError{Input: candidate}
	}
	return nil
}

var defaultValidator = New()

// ValidateFormat checks candidate against DefaultPattern using a shared,
// lazily compiled validator.
//
// Example:
//
//	err := checkmail.ValidateFormat(" test@gmail.com")
//	// err.Error() == "invalid format:  test@gmail.com"
func ValidateFormat(candidate string) error {
	return defaultValidator.ValidateFormat(candidate)
}
