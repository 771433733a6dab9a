package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code once every deferred cleanup ran.
func run() int {
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialise sentry: %v\n", err)
		}
		defer sentry.Flush(time.Second * 5)
	}

	if addr := os.Getenv("STRIDER_STATSVIEW"); addr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(addr))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "strider",
		Short:         "Simulate a first-person character controller",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReplayCommand(), newInitSettingsCommand())
	return root
}
