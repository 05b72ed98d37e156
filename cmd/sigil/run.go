package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/th3oth3rjak3/Sigil/internal/cache"
	"github.com/th3oth3rjak3/Sigil/internal/cli"
	"github.com/th3oth3rjak3/Sigil/internal/config"
	"github.com/th3oth3rjak3/Sigil/internal/log"
)

type runFlags struct {
	watch bool
	stats bool
}

func newRunCmd(root *rootFlags) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run FILE...",
		Short: "Interpret one or more Sigil source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, c, err := loadRuntime(root, filepath.Dir(args[0]))
			if err != nil {
				return err
			}

			if flags.watch {
				if len(args) != 1 {
					return fmt.Errorf("--watch accepts exactly one file")
				}

				return watchAndRun(cmd.Context(), args[0], cfg, c, logger)
			}

			return runBatch(args, cfg, c, flags.stats)
		},
	}

	cmd.Flags().BoolVar(&flags.watch, "watch", false, "re-run the file whenever it changes on disk")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print a line-count and elapsed-time summary after running")

	return cmd
}

// runBatch runs every file concurrently with an errgroup, the way a
// multi-file lint pass would, and reports the first error encountered. Each
// file's own interpreter diagnostics are printed regardless of whether
// other files in the batch also failed.
func runBatch(paths []string, cfg config.Config, c *cache.Cache, stats bool) error {
	start := time.Now()

	var g errgroup.Group

	failures := make([]bool, len(paths))
	lineCounts := make([]int, len(paths))

	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			lineCounts[i] = strings.Count(string(source), "\n") + 1

			sink := cli.Run(string(source), cfg, c, cli.StdoutSink{})
			if sink.HadError() {
				failures[i] = true
				fmt.Fprintf(os.Stderr, "%s:\n%s", path, cli.RenderSink(sink, cfg))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if stats {
		printStats(paths, lineCounts, time.Since(start))
	}

	for _, failed := range failures {
		if failed {
			return fmt.Errorf("one or more files failed to run cleanly")
		}
	}

	return nil
}

func printStats(paths []string, lineCounts []int, elapsed time.Duration) {
	totalLines := 0
	for _, n := range lineCounts {
		totalLines += n
	}

	fmt.Fprintf(os.Stderr, "ran %d file(s), %s lines, in %s\n",
		len(paths), humanize.Comma(int64(totalLines)), elapsed.Round(time.Millisecond))
}

// watchAndRun re-reads and re-runs path every time fsnotify reports a write,
// debounced by cfg.WatchDebounce so a editor's atomic-rename save doesn't
// trigger two runs back to back.
func watchAndRun(ctx context.Context, path string, cfg config.Config, c *cache.Cache, logger log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	runOnce := func() {
		source, err := os.ReadFile(path)
		if err != nil {
			logger.Errorf("read %s: %v", path, err)
			return
		}

		sink := cli.Run(string(source), cfg, c, cli.StdoutSink{})
		if sink.HadError() {
			fmt.Fprint(os.Stderr, cli.RenderSink(sink, cfg))
		}
	}

	logger.Infof("watching %s (debounce %s)", path, cfg.WatchDebounce)
	runOnce()

	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}

			timer = time.AfterFunc(cfg.WatchDebounce, runOnce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Warnf("watch error: %v", err)
		}
	}
}
