package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"rewav/internal/batch"
	"rewav/internal/codec"
	"rewav/internal/config"
	"rewav/internal/discovery"
	"rewav/internal/history"
	"rewav/internal/logging"
)

// runConvert is the whole batch: discover, dispatch to completion, then the
// optional delete phase. Deletion never starts before Run has returned;
// that barrier is the one hard ordering guarantee of the program.
func runConvert(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stdout", cfg.LogPath()},
	})
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logging.NewComponentLogger(logger, "rewav").With(logging.String(logging.FieldRunID, runID))

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return errors.New("another rewav run is already in progress")
	}
	defer func() { _ = lock.Unlock() }()

	startedAt := time.Now()
	records := discovery.Discover(cfg.Folder, logger)
	log.Info(fmt.Sprintf("converting %d files", len(records)),
		logging.String("folder", cfg.Folder))

	pool := batch.NewPool(codec.Library{}, cfg.NumThreads, logger)
	outcomes := pool.Run(records)

	if cfg.DeleteOriginals {
		log.Info("deleting original files")
		for _, record := range records {
			// Removal failures leave the file in place with no report.
			_ = os.Remove(record.Path)
		}
	}

	summary := batch.Summarize(outcomes)
	log.Info("done",
		logging.Int("total", summary.Total),
		logging.Int("succeeded", summary.Succeeded),
		logging.Int("failed", summary.Failed),
		logging.Int("workers", pool.Workers()),
		logging.Duration("elapsed", time.Since(startedAt).Round(time.Millisecond)))

	printFailureSummary(cmd, outcomes)

	if cfg.History.Enabled {
		recordHistory(cfg, log, history.Run{
			ID:               runID,
			Folder:           cfg.Folder,
			Workers:          pool.Workers(),
			Total:            summary.Total,
			Succeeded:        summary.Succeeded,
			Failed:           summary.Failed,
			DeletedOriginals: cfg.DeleteOriginals,
			StartedAt:        startedAt,
			FinishedAt:       time.Now(),
		}, outcomes)
	}

	return nil
}

// recordHistory persists the run. History is best effort: failures are
// logged and never fail the run itself.
func recordHistory(cfg *config.Config, log *slog.Logger, run history.Run, outcomes []batch.Outcome) {
	store, err := history.Open(cfg)
	if err != nil {
		log.Warn("run history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	files := make([]history.FileResult, 0, len(outcomes))
	for _, outcome := range outcomes {
		file := history.FileResult{
			SourcePath: outcome.Record.Path,
			OutputPath: outcome.Output,
			Duration:   outcome.Duration,
			FinishedAt: outcome.Finished,
		}
		if !outcome.OK() {
			file.Failed = true
			file.FailureKind = outcome.Kind()
			if failure, ok := codec.AsFailure(outcome.Err); ok {
				file.FailureDetail = failure.Describe()
			} else {
				file.FailureDetail = outcome.Err.Error()
			}
		}
		files = append(files, file)
	}

	ctx := context.Background()
	if err := store.RecordRun(ctx, run, files); err != nil {
		log.Warn("recording run history failed", logging.Error(err))
		return
	}
	if err := store.Prune(ctx, cfg.History.KeepRuns); err != nil {
		log.Warn("pruning run history failed", logging.Error(err))
	}
}
