package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/v2n/convert"
)

const (
	historyFile = ".v2n_history"
	tryPrompt   = "v2n> "
)

var tryCmd = &cobra.Command{
	Use:   "try",
	Short: "Convert lines typed at an interactive prompt",
	Long: `Each line entered is converted on its own, with fresh gate numbering,
using the features from the configuration file and flags.
Type :quit to exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := loadConfig(cmd.Flags())
		if err != nil {
			logger.Error("Failed to load configuration", zap.String("path", cfgFile), zap.Error(err))
			atexit.Exit(1)
		}
		engine, err := convert.New(config, logger)
		if err != nil {
			logger.Error("Failed to initialize conversion engine", zap.Error(err))
			atexit.Exit(1)
		}
		runTry(engine, cmd.OutOrStdout())
	},
}

func init() {
	registerFeatureFlags(tryCmd.Flags())
}

func runTry(engine convert.ConvertEngine, out io.Writer) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(tryPrompt)
		if err != nil {
			fmt.Fprintln(out)
			return
		}
		if strings.TrimSpace(line) == ":quit" {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		fmt.Fprintln(out, tryLine(engine, line))
	}
}

// tryLine converts one line as a document of its own.
func tryLine(engine convert.ConvertEngine, line string) string {
	return convert.ProcessSource(engine, []byte(line)).String()
}
