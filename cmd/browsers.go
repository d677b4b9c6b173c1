package cmd

import (
	"github.com/spf13/cobra"
)

// browsersCmd represents the browsers command.
var browsersCmd = newBrowsersCmd()

func newBrowsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browsers",
		Short: "List the User-Agent rules used to identify browser families",
		Long: `List the User-Agent patterns, in match order, that map recorded responses to
browser families. Rules from the browsers.user_agents configuration key come
first.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.ListBrowsers(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(browsersCmd)
}
