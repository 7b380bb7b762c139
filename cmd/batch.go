package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/screening-cli/internal/ingest"
	"github.com/sells-group/screening-cli/internal/model"
	"github.com/sells-group/screening-cli/internal/pipeline"
	"github.com/sells-group/screening-cli/internal/report"
)

var (
	batchConcurrency int
	batchOutDir      string
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.pdf>...",
	Short: "Screen multiple PDF decks concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		extractor, err := ingest.NewExtractor(cfg.Ingest)
		if err != nil {
			return err
		}

		weights, err := weightsFromFlags()
		if err != nil {
			return err
		}

		concurrency := batchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Batch.Concurrency
		}

		pipe := pipeline.New(cfg)
		return processBatch(ctx, args, concurrency, func(ctx context.Context, path string) error {
			return screenFile(ctx, path, extractor, pipe, weights)
		})
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "max PDFs processed in parallel (default from config)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "directory for per-file reports (default next to each input)")
	rootCmd.AddCommand(batchCmd)
}

// screenFunc is the callback signature for screening one file.
type screenFunc func(ctx context.Context, path string) error

// processBatch screens files concurrently. One bad PDF logs its failure and
// the batch continues; the command only fails when every file failed.
func processBatch(ctx context.Context, files []string, concurrency int, screen screenFunc) error {
	zap.L().Info("batch: processing files",
		zap.Int("files", len(files)),
		zap.Int("concurrency", concurrency),
	)

	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := screen(gctx, path); err != nil {
				failed.Add(1)
				zap.L().Error("batch: file failed",
					zap.String("file", path),
					zap.Error(err),
				)
			}
			return nil
		})
	}

	_ = g.Wait()

	nFailed := int(failed.Load())
	zap.L().Info("batch: complete",
		zap.Int("files", len(files)),
		zap.Int("failed", nFailed),
	)

	if nFailed == len(files) {
		return eris.Errorf("all %d files failed", len(files))
	}
	return nil
}

func screenFile(ctx context.Context, path string, extractor ingest.Extractor, pipe *pipeline.Pipeline, weights model.Weights) error {
	text, err := extractor.ExtractText(ctx, path)
	if err != nil {
		return err
	}

	result := pipe.Run(text, weights, runLimit)

	out := reportPath(path, batchOutDir)
	if err := writeReportFile(out, report.Markdown(result.Records, weights)); err != nil {
		return err
	}

	zap.L().Info("batch: file screened",
		zap.String("file", path),
		zap.String("report", out),
		zap.Int("ranked", len(result.Records)),
	)
	return nil
}

func writeReportFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return eris.Wrapf(err, "write report %s", path)
	}
	return nil
}

// reportPath derives the markdown report location for an input PDF.
func reportPath(pdfPath, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath)) + "_report.md"
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(pdfPath), base)
}
