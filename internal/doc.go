// Package internal provides the file-level side of the converter.
//
// Key components:
//
// Engine: reads a source file, runs the line rewriter from the rewrite
// package over it, and writes the result next to the input as
// `<path><suffix>`. The whole document is converted in memory before
// anything is written, and writes go through a temporary file that
// replaces the destination.
//
// Cache: remembers finished conversions keyed by input path, so files whose
// content, settings and output are unchanged are skipped.
//
// Watching: StartWatching re-converts source files as they are saved.
//
// SourceCode: the content of a source file as a collection of lines.
//
// Usage:
//
//	engine := internal.NewEngine(types.DefaultFeatures(), types.DefaultOutput(), logger)
//	report, err := engine.Run("rtl/top.v")
//	if err != nil {
//	    // *types.ReadError or *types.WriteError
//	}
//	fmt.Printf("wrote %s (%d AND gates)\n", report.Output, report.Stats.Ands)
package internal
