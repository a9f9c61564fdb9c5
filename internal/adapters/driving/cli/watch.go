package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/oakline-labs/deskmate/internal/core/domain"
	"github.com/oakline-labs/deskmate/internal/logger"
)

// settleDelay lets a file finish copying before it is ingested.
const settleDelay = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and ingest new product files",
	Long: `Watches the given directory and ingests every csv, xlsx or pdf file
dropped into it. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}
	if err := requireAdmin(); err != nil {
		return err
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (ctrl-c to stop)\n", dir)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watchable(event) {
				continue
			}
			time.Sleep(settleDelay)
			ingestWatched(ctx, cmd, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// watchable reports whether an event is a create or write of a file
// kind the ingest pipeline accepts.
func watchable(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	return domain.KindFromFilename(event.Name) != domain.FileKindUnsupported
}

func ingestWatched(ctx context.Context, cmd *cobra.Command, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("reading %s: %v", path, err)
		return
	}

	report, err := ingestService.IngestProducts(ctx, filepath.Base(path), content)
	if err != nil {
		cmd.Printf("Failed to ingest %s: %v\n", path, err)
		return
	}
	cmd.Printf("Ingested %d documents from %s\n", report.Ingested, filepath.Base(path))
}
