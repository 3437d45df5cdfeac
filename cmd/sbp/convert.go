package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/ficsit-tools/sbp"
	"github.com/ficsit-tools/sbp/internal/config"
)

func newConvertCmd() *cobra.Command {
	var algorithm string
	var outDir string
	var workers int

	cmd := &cobra.Command{
		Use:   "convert <in> <out> | convert --out-dir <dir> <in>...",
		Short: "Re-emit one or more blueprints using a different compression algorithm",
		Args: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				return cobra.ExactArgs(2)(cmd, args)
			}

			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				return runConvert(cmd.Context(), args[0], args[1], algorithm)
			}

			return runConvertBatch(cmd.Context(), args, outDir, algorithm, workers)
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", "", "target compression algorithm (zlib, lz4, s2, zstd, none); defaults to the config file's setting")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "convert every <in> into this directory using a bounded worker pool, instead of a single in/out pair")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size for --out-dir batch mode; 0 defaults to the config file's setting")

	return cmd
}

func runConvert(ctx context.Context, in, out, algorithm string) error {
	var oldAlgo, newAlgo string

	err := withTimeout(ctx, func() error {
		bp, err := sbp.ParseFile(in)
		if err != nil {
			return err
		}

		target := resolveAlgorithm(algorithm)
		oldAlgo = bp.Header.Framing.Algorithm.String()
		bp.Header.Framing.Algorithm = target.CompressionAlgorithm()
		newAlgo = bp.Header.Framing.Algorithm.String()

		return sbp.WriteFile(out, bp)
	})
	if err != nil {
		return fail(err)
	}

	log.Info().Str("from", oldAlgo).Str("to", newAlgo).Str("out", out).Msg("converted blueprint")
	fmt.Printf("wrote %s (%s -> %s)\n", out, oldAlgo, newAlgo)

	return nil
}

// runConvertBatch converts every file in ins into outDir concurrently,
// using a bounded worker pool: each worker processes one file at a time via
// sbp.ParseFile/sbp.WriteFile, which in turn acquire their own wire.Writer
// (and so their own pooled internal/pool.ByteBuffer) per call, so no buffer
// is ever shared across workers. The whole batch is bounded by one shared
// --timeout deadline rather than one per file, so a large batch can't blow
// past it file-by-file.
func runConvertBatch(ctx context.Context, ins []string, outDir, algorithm string, workers int) error {
	target := resolveAlgorithm(algorithm)

	if workers <= 0 {
		workers = cfg.WorkerCount()
	}

	return withTimeout(ctx, func() error {
		sem := make(chan struct{}, workers)
		errs := make([]error, len(ins))

		var wg sync.WaitGroup

		for i, in := range ins {
			wg.Add(1)
			sem <- struct{}{}

			go func(i int, in string) {
				defer wg.Done()
				defer func() { <-sem }()

				errs[i] = convertOne(in, outDir, target)
			}(i, in)
		}

		wg.Wait()

		var failed int

		for i, err := range errs {
			if err == nil {
				continue
			}

			failed++
			log.Error().Err(err).Str("in", ins[i]).Msg("conversion failed")
		}

		if failed > 0 {
			return fmt.Errorf("convert: %d of %d files failed", failed, len(ins))
		}

		fmt.Printf("converted %d file(s) into %s\n", len(ins), outDir)

		return nil
	})
}

func convertOne(in, outDir string, target *config.Config) error {
	bp, err := sbp.ParseFile(in)
	if err != nil {
		return err
	}

	bp.Header.Framing.Algorithm = target.CompressionAlgorithm()

	out := filepath.Join(outDir, filepath.Base(in))

	return sbp.WriteFile(out, bp)
}

func resolveAlgorithm(algorithm string) *config.Config {
	if algorithm == "" {
		return cfg
	}

	return &config.Config{Algorithm: algorithm}
}
