package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/checkmail/checkmail-go/pkg/checkmail"
)

// validFormats lists all valid output formats.
var validFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// Result kinds.
const (
	kindBadFormat  = "bad_format"
	kindUnexpected = "unexpected"
)

// Result is the outcome of checking one candidate.
type Result struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
	Kind  string `json:"kind,omitempty"`
	Error string `json:"error,omitempty"`
}

// newResult converts a ValidateFormat outcome into a Result.
func newResult(input string, err error) Result {
	r := Result{Input: input, Valid: err == nil}
	switch {
	case err == nil:
	case errors.Is(err, checkmail.ErrBadFormat):
		r.Kind = kindBadFormat
		r.Error = err.Error()
	default:
		r.Kind = kindUnexpected
		r.Error = err.Error()
	}
	return r
}

// OutputResult writes a result in the specified format to the writer.
func OutputResult(format string, r Result, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(r, out)
	case "pretty":
		return OutputPretty(r, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes a result as one JSON line.
func OutputJSON(r Result, out io.Writer) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// OutputPretty writes a result in human-readable format.
// Inputs with whitespace or control characters are quoted so they are visible.
func OutputPretty(r Result, out io.Writer) error {
	var err error
	switch r.Kind {
	case "":
		_, err = fmt.Fprintf(out, "ok       %s\n", quoteIfNeeded(r.Input))
	case kindBadFormat:
		_, err = fmt.Fprintf(out, "invalid  %s\n", quoteIfNeeded(r.Input))
	default:
		_, err = fmt.Fprintf(out, "error    %s: %s\n", quoteIfNeeded(r.Input), r.Error)
	}
	return err
}

// quoteIfNeeded quotes a value if it is empty or contains spaces, quotes,
// backslashes or control characters. Non-ASCII text is left as is.
func quoteIfNeeded(v string) string {
	if v == "" {
		return `""`
	}

	needsQuote := false
	for _, c := range v {
		if c == ' ' || c == '"' || c == '\\' || c < 0x20 || c == 0x7F {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return v
	}

	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range v {
		switch {
		case c == '\\':
			sb.WriteString(`\\`)
		case c == '"':
			sb.WriteString(`\"`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c < 0x20 || c == 0x7F:
			sb.WriteString(fmt.Sprintf(`\x%02x`, c))
		default:
			sb.WriteRune(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
