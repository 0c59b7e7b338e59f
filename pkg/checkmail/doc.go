// Package checkmail checks the surface syntax of email addresses.
//
// It answers one question: does a candidate string look like an email
// address? It does not resolve domains, contact mail servers or decide
// whether a mailbox exists.
//
// # Basic Usage
//
//	if err := checkmail.ValidateFormat(input); err != nil {
//	    var fe *checkmail.FormatError
//	    if errors.As(err, &fe) {
//	        // show a validation message to the user
//	    }
//	    // anything else means the validator itself is broken
//	}
//
// # Accepted Grammar
//
// A local part made of ASCII letters, digits and the characters
// .!#$%&'*+/=?^_`{|}~- followed by exactly one '@' and a domain made of
// one or more labels of ASCII letters, digits and '-', separated by single
// dots. The whole input must match. Leading or trailing whitespace is an
// error, not something to trim, and letters are never case folded.
//
// The grammar is deliberately permissive: there are no length limits and
// labels may be numeric or start with '-'.
//
// # Errors
//
// Rejected input yields a [*FormatError] that renders as
// "invalid format: <input>" and matches [ErrBadFormat]. A pattern that
// cannot be compiled yields an [*UnexpectedError] that renders as
// "unexpected error (<diagnostic>)" and matches [ErrUnexpected].
//
// # Concurrency
//
// The default pattern is compiled once on first use and shared. A
// [Validator] is safe for concurrent use by multiple goroutines.
package checkmail
