package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/v2n/internal"
	"github.com/gnoswap-labs/v2n/internal/rewrite"
	tt "github.com/gnoswap-labs/v2n/internal/types"
	"github.com/gnoswap-labs/v2n/scanner"
)

type ConvertEngine interface {
	Run(filePath string) (tt.Report, error)
	RunSource(source []byte) *rewrite.Result
}

// Processor converts a single file with an engine.
type Processor func(ConvertEngine, string) (tt.Report, error)

// New builds an engine from config.
func New(config Config, logger *zap.Logger) (*internal.Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	engine := internal.NewEngine(config.Features, config.Output, logger)
	if config.CacheDir != "" {
		cache, err := internal.NewCache(config.CacheDir)
		if err != nil {
			return nil, err
		}
		engine.UseCache(cache)
	}
	return engine, nil
}

// ProcessFiles converts every path in turn. A failure on one file does not
// stop the others; all failures are returned joined together with the
// reports of the files that succeeded.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine ConvertEngine,
	paths []string,
	processor Processor,
) ([]tt.Report, error) {
	var (
		allReports []tt.Report
		errs       []error
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		reports, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			errs = append(errs, err)
		}
		allReports = append(allReports, reports...)
	}

	return allReports, errors.Join(errs...)
}

// ProcessPath converts path, or every source file below it when it is a
// directory. Directory entries are converted by a bounded pool of workers.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine ConvertEngine,
	path string,
	processor Processor,
) ([]tt.Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &tt.ReadError{Path: path, Err: err}
	}

	if !info.IsDir() {
		report, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		return []tt.Report{report}, nil
	}

	files, err := scanner.New(path, internal.SourceExtensions...).Paths()
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}
	return processDir(ctx, logger, engine, path, files, processor)
}

func processDir(
	ctx context.Context,
	logger *zap.Logger,
	engine ConvertEngine,
	dir string,
	files []string,
	processor Processor,
) ([]tt.Report, error) {
	if len(files) == 0 {
		return nil, nil
	}

	reports := make([]tt.Report, len(files))
	errs := make([]error, len(files))
	done := make([]bool, len(files))

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(dir),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())

dispatch:
	for i, filePath := range files {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			report, err := processor(engine, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				errs[i] = err
			} else {
				reports[i] = report
				done[i] = true
			}
			_ = bar.Add(1)
		}(i, filePath)
	}
	wg.Wait()
	_ = bar.Finish()

	result := make([]tt.Report, 0, len(files))
	for i := range files {
		if done[i] {
			result = append(result, reports[i])
		}
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return result, errors.Join(errs...)
}

func ProcessFile(engine ConvertEngine, filePath string) (tt.Report, error) {
	return engine.Run(filePath)
}

func ProcessSource(engine ConvertEngine, source []byte) *rewrite.Result {
	return engine.RunSource(source)
}
