package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/checkmail/checkmail-go/internal/lines"
	"github.com/checkmail/checkmail-go/internal/safefile"
	"github.com/checkmail/checkmail-go/pkg/checkmail"
	"github.com/spf13/cobra"
)

type validateOptions struct {
	*rootOptions
	inputFile   string
	follow      bool
	format      string
	onlyInvalid bool
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	opts := &validateOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "validate [address...]",
		Short: "Check email addresses and print one result per address",
		Long: `Check email addresses given as arguments, read from a file, or read
from stdin (one address per line).

Results are printed as JSON Lines by default. The command exits with a
non-zero status if any address is rejected.

Examples:
  # Check addresses given as arguments
  checkmail validate florian@carrere.cc "test test@gmail.com"

  # Check a list of addresses from a file
  checkmail validate --file signups.txt --only-invalid

  # Read from stdin with human-readable output
  cat signups.txt | checkmail validate --format pretty

  # Keep checking addresses as they are appended to a file
  checkmail validate --file signups.log --follow`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputFile, "file", "i", "",
		`Read addresses from a file, one per line ("-" for stdin)`)
	cmd.Flags().BoolVar(&opts.follow, "follow", false,
		"Keep reading lines appended to --file until interrupted")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	cmd.Flags().BoolVar(&opts.onlyInvalid, "only-invalid", false,
		"Print only rejected addresses")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, opts *validateOptions) error {
	if !validFormats[opts.format] {
		return fmt.Errorf("invalid --format %q (valid: jsonl, pretty)", opts.format)
	}
	if len(args) > 0 && opts.inputFile != "" {
		return errors.New("addresses as arguments cannot be combined with --file")
	}
	if opts.follow && (opts.inputFile == "" || opts.inputFile == "-") {
		return errors.New("--follow requires --file with a path")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := &reporter{
		validator:   opts.validator(),
		format:      opts.format,
		onlyInvalid: opts.onlyInvalid,
		out:         cmd.OutOrStdout(),
		log:         opts.logger,
	}

	if err := readCandidates(ctx, cmd.InOrStdin(), args, opts, r.check); err != nil {
		return err
	}
	return r.summary()
}

// readCandidates feeds every candidate from the selected source to fn.
func readCandidates(ctx context.Context, stdin io.Reader, args []string, opts *validateOptions, fn lines.Func) error {
	switch {
	case len(args) > 0:
		for _, a := range args {
			if err := fn(a); err != nil {
				return err
			}
		}
		return nil

	case opts.inputFile == "" || opts.inputFile == "-":
		opts.logger.Debug("reading addresses from stdin")
		return lines.Scan(ctx, stdin, fn)

	case opts.follow:
		return lines.Follow(ctx, opts.inputFile, lines.FollowConfig{
			FromStart: true,
			Logger:    opts.logger,
		}, fn)

	default:
		f, _, err := safefile.OpenRegular(opts.inputFile)
		if err != nil {
			return fmt.Errorf("input file: %w", safefile.StripPath(err))
		}
		defer f.Close()
		return lines.Scan(ctx, f, fn)
	}
}

// reporter validates candidates, prints results and keeps counts.
type reporter struct {
	validator   *checkmail.Validator
	format      string
	onlyInvalid bool
	out         io.Writer
	log         *slog.Logger

	total    int
	rejected int
}

// check validates one candidate. It stops processing only when the
// validator itself is broken.
func (r *reporter) check(candidate string) error {
	err := r.validator.ValidateFormat(candidate)
	res := newResult(candidate, err)
	r.total++

	if res.Kind == kindBadFormat {
		r.rejected++
	}
	if !(res.Valid && r.onlyInvalid) {
		if werr := OutputResult(r.format, res, r.out); werr != nil {
			return fmt.Errorf("output error: %w", werr)
		}
	}

	if res.Kind == kindUnexpected {
		r.log.Error("validator failed", "error", err)
		return err
	}
	return nil
}

// summary reports the outcome as the command's error, if any.
func (r *reporter) summary() error {
	r.log.Debug("validation finished", "total", r.total, "rejected", r.rejected)
	if r.rejected > 0 {
		return fmt.Errorf("%d of %d addresses rejected", r.rejected, r.total)
	}
	return nil
}
