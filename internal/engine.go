package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/v2n/internal/rewrite"
	tt "github.com/gnoswap-labs/v2n/internal/types"
)

// SourceExtensions lists the file extensions treated as convertible sources.
var SourceExtensions = []string{".v", ".vh", ".sv"}

// HasSourceExtension reports whether path names a convertible source file.
func HasSourceExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range SourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Engine converts source files and writes the results next to them.
// Run may be called concurrently.
type Engine struct {
	features tt.Features
	output   tt.Output
	cache    *Cache
	logger   *zap.Logger

	watchMu    sync.Mutex
	watcher    *fsnotify.Watcher
	isWatching bool
	done       chan struct{}
}

// NewEngine creates a new conversion engine.
func NewEngine(features tt.Features, output tt.Output, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if output.Suffix == "" {
		output.Suffix = tt.DefaultOutputSuffix
	}
	return &Engine{
		features: features,
		output:   output,
		logger:   logger,
	}
}

// UseCache makes Run skip files whose previous conversion is still valid.
func (e *Engine) UseCache(c *Cache) {
	e.cache = c
}

// OutputPath returns the destination for filename.
func (e *Engine) OutputPath(filename string) string {
	return filename + e.output.Suffix
}

// IsOutput reports whether path was written by this engine.
func (e *Engine) IsOutput(path string) bool {
	return strings.HasSuffix(path, e.output.Suffix)
}

// fingerprint identifies the settings a cached conversion was made with.
func (e *Engine) fingerprint() string {
	return fmt.Sprintf("%+v|%s", e.features, e.output.Suffix)
}

// Run converts filename and, unless in dry-run mode, writes the result.
// Nothing is written when reading fails.
func (e *Engine) Run(filename string) (tt.Report, error) {
	useCache := e.cache != nil && !e.output.DryRun
	if useCache {
		if report, ok := e.cache.Get(filename, e.fingerprint()); ok {
			e.logger.Debug("conversion cached", zap.String("path", filename))
			report.Cached = true
			return report, nil
		}
	}

	source, err := ReadSourceCode(filename)
	if err != nil {
		return tt.Report{}, err
	}

	res := rewrite.Rewrite(source.Lines, e.features)
	report := tt.Report{
		Filename: filename,
		Output:   e.OutputPath(filename),
		Stats:    res.Stats,
		Changes:  res.Changes,
		DryRun:   e.output.DryRun,
	}
	if e.output.DryRun {
		return report, nil
	}

	if err := WriteOutput(report.Output, res.String(), e.output.Atomic); err != nil {
		return tt.Report{}, err
	}
	e.logger.Debug("converted",
		zap.String("path", filename),
		zap.String("output", report.Output),
		zap.Int("ands", res.Stats.Ands),
		zap.Int("ors", res.Stats.Ors),
		zap.Int("inverters", res.Stats.Inverters),
	)

	if useCache {
		if err := e.cache.Set(filename, e.fingerprint(), report); err != nil {
			e.logger.Warn("failed to cache conversion", zap.String("path", filename), zap.Error(err))
		}
	}
	return report, nil
}

// RunSource converts an in-memory document.
func (e *Engine) RunSource(source []byte) *rewrite.Result {
	return rewrite.RewriteSource(string(source), e.features)
}

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads filename and splits it into lines.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, &tt.ReadError{Path: filename, Err: err}
	}
	return &SourceCode{Lines: rewrite.SplitLines(string(content))}, nil
}

// WriteOutput writes content to path. When atomic is set the content goes
// to a temporary file in the same directory which then replaces path.
func WriteOutput(path, content string, atomic bool) error {
	if !atomic {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return &tt.WriteError{Path: path, Err: err}
		}
		return nil
	}
	if err := writeAtomic(path, []byte(content)); err != nil {
		return &tt.WriteError{Path: path, Err: err}
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+strings.TrimPrefix(filepath.Base(path), ".")+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return errors.Wrap(err, "sync temp file")
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return errors.Wrap(err, "chmod temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return errors.Wrapf(err, "replace %s", filepath.Base(path))
	}
	return nil
}
