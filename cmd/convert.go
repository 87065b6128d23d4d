package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tebeka/atexit"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/v2n/convert"
	"github.com/gnoswap-labs/v2n/formatter"
	tt "github.com/gnoswap-labs/v2n/internal/types"
)

// convert command flags
var (
	convertAnds    bool
	convertOrs     bool
	convertNots    bool
	addConstArgs   bool
	constArgs      string
	outputSuffix   string
	cacheDir       string
	dryRun         bool
	showChanges    bool
	showSummary    bool
	convertJSONOut bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [paths...]",
	Short: "Convert files or directories, writing <file><suffix> next to each",
	Run:   convertPaths,
}

// convertPaths runs a conversion with the flags parsed by cmd, which is
// either the convert subcommand or the root command shortcut.
func convertPaths(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		fmt.Println("error: Please provide file or directory paths")
		atexit.Exit(1)
	}

	config, err := loadConfig(cmd.Flags())
	if err != nil {
		logger.Error("Failed to load configuration", zap.String("path", cfgFile), zap.Error(err))
		atexit.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts := printOptions{
		changes: showChanges || config.Output.DryRun,
		summary: showSummary,
		json:    convertJSONOut,
	}
	if err := runConvert(ctx, logger, cmd.OutOrStdout(), config, args, opts); err != nil {
		cancel()
		atexit.Exit(1)
	}
}

func init() {
	registerConvertFlags(convertCmd.Flags())
}

// registerConvertFlags adds the flags of a batch conversion.
func registerConvertFlags(flags *pflag.FlagSet) {
	registerFeatureFlags(flags)
	flags.StringVar(&cacheDir, "cache-dir", "", "Directory for the conversion cache (disabled when empty)")
	flags.BoolVar(&dryRun, "dry-run", false, "Show the conversion without writing any file")
	flags.BoolVar(&showChanges, "show-changes", false, "Print every rewritten line")
	flags.BoolVar(&showSummary, "summary", false, "Print a summary table")
	flags.BoolVar(&convertJSONOut, "json", false, "Print reports in JSON format")
}

// registerFeatureFlags adds the flags shared by every converting command.
func registerFeatureFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&convertAnds, "and", true, "Convert AND assignments")
	flags.BoolVar(&convertOrs, "or", true, "Convert OR assignments")
	flags.BoolVar(&convertNots, "not", true, "Convert negations into inverters")
	flags.BoolVar(&addConstArgs, "add-args", false, "Append constant arguments to AND and OR gates")
	flags.StringVar(&constArgs, "args", tt.DefaultConstantArgs, "Constant arguments used with --add-args")
	flags.StringVar(&outputSuffix, "suffix", tt.DefaultOutputSuffix, "Suffix appended to the input path to name the output")
}

// loadConfig reads the configuration file, then applies the flags the user
// set explicitly.
func loadConfig(flags *pflag.FlagSet) (convert.Config, error) {
	config, err := convert.LoadConfig(cfgFile)
	if err != nil {
		return config, err
	}
	applyFlags(flags, &config)
	return config, nil
}

func applyFlags(flags *pflag.FlagSet, config *convert.Config) {
	if flags.Changed("and") {
		config.Features.ConvertAnds = convertAnds
	}
	if flags.Changed("or") {
		config.Features.ConvertOrs = convertOrs
	}
	if flags.Changed("not") {
		config.Features.ConvertNots = convertNots
	}
	if flags.Changed("add-args") {
		config.Features.AddConstantArgs = addConstArgs
	}
	if flags.Changed("args") {
		config.Features.ConstantArgs = constArgs
		config.Features.AddConstantArgs = true
	}
	if flags.Changed("suffix") {
		config.Output.Suffix = outputSuffix
	}
	if flags.Changed("cache-dir") {
		config.CacheDir = cacheDir
	}
	if flags.Changed("dry-run") {
		config.Output.DryRun = dryRun
	}
}

type printOptions struct {
	changes bool
	summary bool
	json    bool
}

func runConvert(ctx context.Context, logger *zap.Logger, out io.Writer, config convert.Config, paths []string, opts printOptions) error {
	engine, err := convert.New(config, logger)
	if err != nil {
		logger.Error("Failed to initialize conversion engine", zap.Error(err))
		return err
	}

	reports, err := convert.ProcessFiles(ctx, logger, engine, paths, convert.ProcessFile)
	printReports(logger, out, reports, opts)
	if err != nil {
		logger.Error("Conversion failed", zap.Error(err))
		return err
	}
	return nil
}

func printReports(logger *zap.Logger, out io.Writer, reports []tt.Report, opts printOptions) {
	if opts.json {
		d, err := json.Marshal(reports)
		if err != nil {
			logger.Error("Error marshalling reports to JSON", zap.Error(err))
			return
		}
		fmt.Fprintln(out, string(d))
		return
	}

	if opts.changes {
		fmt.Fprint(out, formatter.GenerateFormattedReport(reports))
	} else {
		for _, r := range reports {
			logger.Info("Converted",
				zap.String("file", r.Filename),
				zap.String("output", r.Output),
				zap.Bool("cached", r.Cached),
			)
		}
	}

	if opts.summary {
		fmt.Fprintln(out, formatter.Summary(reports))
	}
}
