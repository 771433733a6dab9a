package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/strider"
	"github.com/oomph-ac/strider/oerror"
	"github.com/oomph-ac/strider/replay"
	"github.com/oomph-ac/strider/settings"
	"github.com/oomph-ac/strider/worker"
	"github.com/spf13/cobra"
)

type replayOptions struct {
	settingsPath string
	workers      int
	digestOnly   bool
}

func newReplayCommand() *cobra.Command {
	opts := replayOptions{}
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>...",
		Short: "Replay input scripts and print their frame traces",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.settingsPath, "settings", "s", "", "settings file; defaults and environment overrides are used if empty")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "number of scripts replayed at once; one per CPU if zero")
	cmd.Flags().BoolVar(&opts.digestOnly, "digest-only", false, "only print the digest of each trace")
	return cmd
}

func loadSettings(path string) (settings.Settings, error) {
	if path != "" {
		return settings.Load(path)
	}
	s := settings.Default()
	if err := settings.ApplyEnv(&s); err != nil {
		return settings.Settings{}, err
	}
	return s, s.Validate()
}

type replayResult struct {
	trace *replay.Trace
	err   error
}

func runReplay(ctx context.Context, stdout, stderr io.Writer, opts replayOptions, paths []string) error {
	s, err := loadSettings(opts.settingsPath)
	if err != nil {
		return err
	}
	log, err := s.Logging.NewLogger(stderr)
	if err != nil {
		return err
	}

	results := make([]replayResult, len(paths))
	pool := worker.New(opts.workers)
	for i, path := range paths {
		pool.Submit(func() {
			results[i].trace, results[i].err = replayFile(ctx, s, log.With("script", path), path)
		})
	}
	pool.Close()

	var failed int
	for i, res := range results {
		if res.err != nil {
			failed++
			log.Error("replay failed", "script", paths[i], "err", res.err)
			continue
		}
		if opts.digestOnly {
			fmt.Fprintf(stdout, "%s digest=%016x frames=%d\n", paths[i], res.trace.Digest, len(res.trace.Frames))
			continue
		}
		fmt.Fprintf(stdout, "# %s (%s)\n", paths[i], res.trace.Name)
		if _, err := res.trace.WriteTo(stdout); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d replays failed", failed, len(paths))
	}
	return nil
}

// replayFile replays a single script on a fresh controller. A panic is reported to sentry and
// returned as an error.
func replayFile(ctx context.Context, s settings.Settings, log *slog.Logger, path string) (trace *replay.Trace, err error) {
	defer func() {
		if v := recover(); v != nil {
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("script", path)
			})
			perr := oerror.New("replay panic: %v", v)
			hub.Recover(perr)
			hub.Flush(time.Second * 5)
			trace, err = nil, perr
		}
	}()

	script, err := replay.LoadScript(path)
	if err != nil {
		return nil, err
	}
	c, err := strider.NewFromSettings(s, log)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	trace, err = replay.Run(ctx, c, script)
	if err != nil {
		return nil, err
	}
	log.Info("replay finished", "frames", len(trace.Frames), "digest", fmt.Sprintf("%016x", trace.Digest), "took", time.Since(start))
	return trace, nil
}
