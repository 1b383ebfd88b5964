// Package cmd — watch command.
// Runs a full build, then keeps rebuilding posts as their sources
// change. Events are funneled through a deduplicating queue and
// drained on a short tick, so a burst of editor saves produces one
// rebuild.
package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/markpress/core"
	"github.com/gaurav-prasanna/markpress/core/output"
	"github.com/gaurav-prasanna/markpress/core/scan"
	"github.com/gaurav-prasanna/markpress/core/site"
	"github.com/gaurav-prasanna/markpress/internal/logging"
)

// drainInterval is how often queued change events are turned into
// rebuilds. Long enough to coalesce editor save bursts.
const drainInterval = 500 * time.Millisecond

var watchOpts buildOptions

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Rebuild posts whenever their sources change",
	Long: `Watch performs a full build of the directory, then monitors it and
rebuilds any post whose source file changes. Stop with Ctrl-C.

Examples:
  markpress watch ./posts --css style.css
  markpress watch ./posts --recursive --output_dir ./public`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addBuildFlags(watchCmd, &watchOpts)
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := args[0]
	opts := watchOpts

	logger := logging.New(opts.Verbose)
	defer logger.Sync()

	// Initial full build; a usage error here aborts before watching.
	if err := buildDirectory(root, opts); err != nil {
		return err
	}

	cfg, err := site.LoadConfig(root)
	if err != nil {
		return err
	}
	if opts.CSS == "" {
		opts.CSS = cfg.Stylesheet
	}
	renderer, err := selectRenderer(opts, cfg)
	if err != nil {
		return err
	}
	writer, err := output.New(opts.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, root, opts.Recursive); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue := scan.NewQueue()
	ticker := time.NewTicker(drainInterval)
	defer ticker.Stop()

	fmt.Fprintf(os.Stdout, "Watching %s for changes (Ctrl-C to stop)\n", root)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			logger.Debug("fs event", zap.String("op", ev.Op.String()), zap.String("path", ev.Name))

			if ev.Op&fsnotify.Create != 0 && opts.Recursive {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() && !scan.IsSkippedDir(filepath.Base(ev.Name)) {
					if err := watcher.Add(ev.Name); err != nil {
						logger.Warn("watching new directory", zap.Error(err))
					}
					continue
				}
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 && scan.IsMarkdown(ev.Name) {
				queue.Add(ev.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))

		case <-ticker.C:
			for queue.HasNext() {
				src := queue.Next()
				if err := rebuildOne(root, src, opts, renderer, writer); err != nil {
					fmt.Fprintf(os.Stderr, "✗ %s: %v\n", src, err)
				}
			}

		case <-ctx.Done():
			fmt.Fprintln(os.Stdout, "\nStopped.")
			return nil
		}
	}
}

// rebuildOne pushes a single changed source through the pipeline.
func rebuildOne(root, src string, opts buildOptions, renderer core.Renderer, writer *output.Writer) error {
	p, err := loadPost(src)
	if err != nil {
		return err
	}
	if p.Meta.Draft && !opts.Drafts {
		return nil
	}
	data, err := renderer.Render(p)
	if err != nil {
		return err
	}
	path, err := writer.Write(root, src, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Rebuilt: %s\n", path)
	return nil
}

// addWatchDirs registers the root (and, recursively, its subtrees)
// with the watcher.
func addWatchDirs(watcher *fsnotify.Watcher, root string, recursive bool) error {
	if !recursive {
		if err := watcher.Add(root); err != nil {
			return fmt.Errorf("watching %s: %w", root, err)
		}
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && scan.IsSkippedDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}
