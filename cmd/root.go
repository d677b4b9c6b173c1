// Package cmd provides the root command and CLI setup for framecheck.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"framecheck.dev/pkg/framecheck/internal/adapter"
	"framecheck.dev/pkg/framecheck/internal/controller"
	"framecheck.dev/pkg/framecheck/internal/domain"
	m "framecheck.dev/pkg/framecheck/internal/model"
)

var datasetStore adapter.DatasetStore
var reportStore adapter.ReportStore
var resolver adapter.UserAgentResolver
var watcher adapter.DatasetWatcher
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// verboseFlag switches the log file to debug level.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	var err error

	resolver, err = newUserAgentResolver()
	cobra.CheckErr(err)

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	datasetStore = adapter.NewLocalDatasetStore()
	reportStore = adapter.NewReportStore()
	watcher = adapter.NewFSDatasetWatcher()
	workflow = domain.NewWorkflow(
		datasetStore,
		reportStore,
		resolver,
		watcher,
		ui,
	)
}

const datasetHelp = `Datasets are YAML or JSON files listing sites and the responses recorded
for them by different browsers. A directory argument expands to the dataset
files it contains.`

const rootLongDescription = `Framecheck checks whether a site's clickjacking defenses are enforced the
same way by every browser. Browsers that only know X-Frame-Options and browsers
that honour CSP frame-ancestors can read the same headers very differently;
framecheck replays each browser family's rules and reports where they disagree.

` + datasetHelp

const analyzeLongDescription = `Analyze every site of the given datasets and classify it as consistent,
security-oriented, compatibility-oriented or inconsistent.

` + datasetHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "framecheck",
		Short: "Cross-browser clickjacking policy analyzer",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			defaultReportsDir,
			"directory for analysis run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "write debug logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
