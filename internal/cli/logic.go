package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/idelchi/smbscan/internal/config"
	"github.com/idelchi/smbscan/internal/report"
	"github.com/idelchi/smbscan/internal/scan"
	"github.com/idelchi/smbscan/internal/share"
)

// session is an open connection to the scanned share.
type session interface {
	share.Client
	Root() string
	Close() error
}

type dialFunc func(ctx context.Context, cfg share.Config, log *zap.Logger) (session, error)

func dialSMB(ctx context.Context, cfg share.Config, log *zap.Logger) (session, error) {
	s, err := share.Dial(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// newLogger returns a console logger writing to sink.
func newLogger(debug bool, sink io.Writer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(sink), level)

	return zap.New(core)
}

func logic(ctx context.Context, cfg config.Config, dial dialFunc, stdout, stderr io.Writer) error {
	log := newLogger(cfg.Debug, stderr)
	defer log.Sync() //nolint:errcheck // Nothing to do about a failed flush

	enableProgress := !cfg.Debug && isTerminal(stderr)

	sess, err := dial(ctx, cfg.Share, log.Named("share"))
	if err != nil {
		return err
	}

	defer func() {
		if err := sess.Close(); err != nil {
			log.Warn("closing session", zap.Error(err))
		}
	}()

	root := sess.Root()

	log.Info("scanning share",
		zap.String("root", root),
		zap.String("threshold", humanize.IBytes(uint64(cfg.Threshold))), //nolint:gosec // Threshold is positive
		zap.Stringer("unknown", cfg.Unknown),
	)

	walker := scan.NewWalker(sess, scan.Options{Threshold: cfg.Threshold, Unknown: cfg.Unknown}, log)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		walker.OnProgress(func(s scan.Summary) {
			msg := fmt.Sprintf("Scanning… %d directories, %d files, %s",
				s.Directories, s.Files, humanize.IBytes(uint64(s.Bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		})
	}

	var results scan.Results

	err = walker.Walk(ctx, root, &results)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}

	scan.SortByFlag(results)

	if err := report.Write(results, cfg.Output); err != nil {
		return err
	}

	log.Info("report written", zap.String("path", cfg.Output), zap.Int("findings", len(results)))

	return PrintSummary(walker.Summary(), cfg.Output, stdout)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}
