package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dataset_explorer/internal/dataset"
)

var (
	rows    int
	output  string
	seed    int64
	rootCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a large synthetic e-commerce transactions dataset",
		Long: "Generate a CSV with synthetic transaction records for LFS testing.\n" +
			"At the default 1,500,000 rows the file is typically 200-350 MB.",
		RunE: run,
	}
)

func init() {
	rootCmd.Flags().IntVar(&rows, "rows", 1_500_000, "number of rows to generate")
	rootCmd.Flags().StringVar(&output, "output", "data/transactions.csv", "output CSV path")
	rootCmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
}

func run(cmd *cobra.Command, args []string) error {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return err
	}

	logger.Info("generating dataset", zap.Int("rows", rows), zap.Int64("seed", seed))
	t0 := time.Now()
	txs := dataset.Generate(rows, seed)
	logger.Info("rows generated", zap.Duration("elapsed", time.Since(t0)))

	t1 := time.Now()
	if err := dataset.WriteCSV(output, txs); err != nil {
		return err
	}
	logger.Info("csv written", zap.String("path", output), zap.Duration("elapsed", time.Since(t1)))

	manifest := dataset.NewManifest(rows, seed)
	manifestPath := dataset.ManifestPath(output)
	if err := manifest.Write(manifestPath); err != nil {
		return err
	}

	info, err := os.Stat(output)
	if err != nil {
		return err
	}
	logger.Info("done",
		zap.Int("rows", rows),
		zap.Int("columns", len(dataset.Columns)),
		zap.Float64("size_mb", float64(info.Size())/(1024*1024)),
		zap.String("dataset_id", manifest.DatasetID),
		zap.String("manifest", manifestPath),
	)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
