package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/v2n/convert"
	"github.com/gnoswap-labs/v2n/formatter"
	tt "github.com/gnoswap-labs/v2n/internal/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Convert source files again every time they are saved",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}

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

		out := cmd.OutOrStdout()
		err = engine.StartWatching(args, func(report tt.Report, err error) {
			if err == nil && showChanges && !report.Cached {
				fmt.Fprint(out, formatter.GenerateFormattedReport([]tt.Report{report}))
			}
		})
		if err != nil {
			logger.Error("Failed to start watching", zap.Strings("dirs", args), zap.Error(err))
			atexit.Exit(1)
		}
		logger.Info("Watching for changes", zap.Strings("dirs", args))

		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
		<-sigc

		if err := engine.StopWatching(); err != nil {
			logger.Error("Failed to stop watching", zap.Error(err))
		}
	},
}

func init() {
	registerFeatureFlags(watchCmd.Flags())
	watchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Directory for the conversion cache (disabled when empty)")
	watchCmd.Flags().BoolVar(&showChanges, "show-changes", false, "Print every rewritten line")
}
