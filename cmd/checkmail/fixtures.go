package main

import (
	"errors"
	"fmt"

	"github.com/checkmail/checkmail-go/pkg/checkmail/fixture"
	"github.com/spf13/cobra"
)

func newFixturesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures FILE...",
		Short: "Check the validator against YAML sample files",
		Long: `Load YAML sample files and check that every sample gets the
expected verdict, including the exact "invalid format: <mail>" message
for rejected samples.

Sample file format:

  version: 1
  samples:
    - mail: "florian@carrere.cc"
      format: true
    - mail: " florian@carrere.cc"
      format: false`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixtures(cmd, args, root)
		},
	}
}

func runFixtures(cmd *cobra.Command, paths []string, opts *rootOptions) error {
	v := opts.validator()
	out := cmd.OutOrStdout()
	failed := 0

	for i, path := range paths {
		f, err := fixture.Load(path)
		if err != nil {
			// Loader errors never contain the path.
			return fmt.Errorf("sample file %d: %w", i+1, err)
		}

		mismatches := fixture.Check(f, v.ValidateFormat)
		opts.logger.Debug("checked sample file", "index", i+1, "samples", len(f.Samples), "mismatches", len(mismatches))
		if len(mismatches) == 0 {
			fmt.Fprintf(out, "PASS %s (%d samples)\n", path, len(f.Samples))
			continue
		}

		failed++
		fmt.Fprintf(out, "FAIL %s (%d of %d samples)\n", path, len(mismatches), len(f.Samples))
		for _, m := range mismatches {
			fmt.Fprintf(out, "  %s\n", m)
		}
	}

	if failed > 0 {
		return errors.New("sample mismatches found")
	}
	return nil
}
