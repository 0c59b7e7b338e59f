// Command checkmail checks the syntax of email addresses from the command
// line, from files or from a growing log.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/checkmail/checkmail-go/pkg/checkmail"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// patternEnv supplies the default for --pattern.
const patternEnv = "CHECKMAIL_PATTERN"

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	verbose bool
	pattern string
	logger  *slog.Logger
}

// validator builds the validator selected by --pattern.
func (o *rootOptions) validator() *checkmail.Validator {
	if o.pattern == "" {
		return checkmail.New()
	}
	o.logger.Debug("using custom pattern", "pattern", o.pattern)
	return checkmail.New(checkmail.WithPattern(o.pattern))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: newLogger(io.Discard, false)}

	cmd := &cobra.Command{
		Use:   "checkmail",
		Short: "Check the syntax of email addresses",
		Long: `checkmail checks whether strings look like email addresses.

Only syntax is checked: a local part of ASCII letters, digits and
.!#$%&'*+/=?^_` + "`" + `{|}~- characters, one '@', and dot-separated labels of
letters, digits and '-'. Nothing is trimmed or lowercased, so surrounding
whitespace makes an address invalid. No DNS or mailbox checks are made.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.pattern, "pattern", os.Getenv(patternEnv),
		"Override the address grammar with a regular expression (env "+patternEnv+")")

	cmd.AddCommand(
		newValidateCmd(opts),
		newFixturesCmd(opts),
		newCompletionCmd(),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
