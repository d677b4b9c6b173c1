package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"framecheck.dev/pkg/framecheck/internal/domain"
	m "framecheck.dev/pkg/framecheck/internal/model"
)

var runParallelFlag int
var watchFlag bool
var detailFlag bool
var noSaveFlag bool

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [datasets...]",
		Short: "Classify every site of the given datasets",
		Long:  analyzeLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			threads := viper.GetInt(runParallelConfigKey)
			if threads < 0 {
				return fmt.Errorf("--%s must not be negative, got %d", runParallelFlagName, threads)
			}

			analyzeArgs := domain.AnalyzeArgs{
				Datasets: parsePaths(args),
				Reports:  m.Path(viper.GetString(outputFlagName)),
				Threads:  uint(threads),
				Detailed: detailFlag,
				Save:     !viper.GetBool(noSaveConfigKey),
			}

			if !viper.GetBool(watchConfigKey) {
				return workflow.Analyze(cmd.Context(), analyzeArgs)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return workflow.Watch(ctx, analyzeArgs)
		},
	}

	configureAnalyzeFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func configureAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", defaultRunParallel, "number of sites evaluated in parallel (0 means unlimited)")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().BoolVarP(&watchFlag, watchFlagName, "w", defaultWatch, "re-run the analysis whenever a dataset changes")
	bindFlagToConfig(cmd.Flags().Lookup(watchFlagName), watchConfigKey)

	cmd.Flags().BoolVar(&noSaveFlag, noSaveFlagName, defaultNoSave, "do not write a run report")
	bindFlagToConfig(cmd.Flags().Lookup(noSaveFlagName), noSaveConfigKey)

	cmd.Flags().BoolVarP(&detailFlag, detailFlagName, "d", false, "show per-browser semantics for sites that are not consistent")
}
