// Package lines feeds candidate addresses to the CLI one line at a time,
// either from a reader or by following a growing file.
//
// Only the line terminator is removed. Other leading or trailing
// whitespace is part of the candidate and reaches the validator as is.
// Empty lines are skipped.
package lines

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nxadm/tail"
)

// MaxLineBytes is the longest line Scan accepts.
const MaxLineBytes = 1024 * 1024

// Func is called once per non-empty line. Returning an error stops reading.
type Func func(line string) error

// discardLogger is used when no logger is configured.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Scan reads r until EOF, calling fn for each non-empty line.
// A trailing "\r" is treated as part of a CRLF terminator.
func Scan(ctx context.Context, r io.Reader, fn Func) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Text()
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("line longer than %d bytes", MaxLineBytes)
		}
		return err
	}
	return nil
}

// FollowConfig configures Follow.
type FollowConfig struct {
	// FromStart reads existing content first. Otherwise only lines
	// appended after Follow starts are seen (tail -f behavior).
	FromStart bool

	// Poll uses stat polling instead of file system notifications.
	Poll bool

	// Logger receives tailer diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// Follow tails the file at path, calling fn for each new non-empty line,
// and survives the file being rotated or recreated. It returns nil when
// ctx is cancelled, or the first error from fn or the tailer.
func Follow(ctx context.Context, path string, cfg FollowConfig, fn Func) error {
	log := cfg.Logger
	if log == nil {
		log = discardLogger
	}

	whence := io.SeekEnd
	if cfg.FromStart {
		whence = io.SeekStart
	}

	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Poll:      cfg.Poll,
		Location:  &tail.SeekInfo{Offset: 0, Whence: whence},
		Logger:    slog.NewLogLogger(log.Handler(), slog.LevelDebug),
	})
	if err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	defer t.Cleanup()
	defer func() {
		if err := t.Stop(); err != nil {
			log.Debug("stopping tailer", "error", err)
		}
	}()

	log.Debug("following file", "from_start", cfg.FromStart, "poll", cfg.Poll)

	for {
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-t.Lines:
			if !ok {
				return t.Wait()
			}
			if l.Err != nil {
				return fmt.Errorf("follow: %w", l.Err)
			}
			text := strings.TrimSuffix(l.Text, "\r")
			if text == "" {
				continue
			}
			if err := fn(text); err != nil {
				return err
			}
		}
	}
}
