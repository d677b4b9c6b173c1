package cmd

import (
	"github.com/spf13/cobra"

	"framecheck.dev/pkg/framecheck/internal/domain"
	m "framecheck.dev/pkg/framecheck/internal/model"
)

const translateLongDescription = `Show the policy every browser family enforces for one set of response
headers served from --origin.

--xfo and --csp may be repeated to model several header instances; --csp takes
the value of a frame-ancestors directive while --policy takes a whole
Content-Security-Policy header. Pass WARN_NO_HEADER to model a missing header.`

var translateOriginFlag string
var translateXFOFlag []string
var translateCSPFlag []string
var translatePolicyFlag []string
var translateBrowserFlag []string

// translateCmd represents the translate command.
var translateCmd = newTranslateCmd()

func newTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Show what each browser enforces for a header set",
		Long:  translateLongDescription,
		Args:  cobra.ExactArgs(0),
		Example: `  framecheck translate --origin https://example.com --xfo SAMEORIGIN --csp "'self'"
  framecheck translate --origin https://example.com --xfo "ALLOW-FROM https://a.com" --browser firefox --browser chrome`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			browsers, err := parseArchetypes(translateBrowserFlag)
			if err != nil {
				return err
			}

			return workflow.Translate(cmd.Context(), domain.TranslateArgs{
				Origin:   translateOriginFlag,
				XFO:      translateXFOFlag,
				CSP:      translateCSPFlag,
				Policies: translatePolicyFlag,
				Browsers: browsers,
			})
		},
	}

	cmd.Flags().StringVar(&translateOriginFlag, "origin", "", "origin of the page serving the headers (required)")
	cmd.Flags().StringArrayVar(&translateXFOFlag, "xfo", nil, "X-Frame-Options header value (can be repeated)")
	cmd.Flags().StringArrayVar(&translateCSPFlag, "csp", nil, "frame-ancestors directive value (can be repeated)")
	cmd.Flags().StringArrayVar(&translatePolicyFlag, "policy", nil, "full Content-Security-Policy header value (can be repeated)")
	cmd.Flags().StringArrayVarP(&translateBrowserFlag, "browser", "b", nil, "limit to a browser family: firefox, chrome, edge, ie, opera-mini (can be repeated)")
	cobra.CheckErr(cmd.MarkFlagRequired("origin"))

	return cmd
}

func init() {
	rootCmd.AddCommand(translateCmd)
}

func parseArchetypes(names []string) ([]m.Archetype, error) {
	archetypes := make([]m.Archetype, 0, len(names))

	for _, name := range names {
		archetype, err := m.ParseArchetype(name)
		if err != nil {
			return nil, err
		}

		archetypes = append(archetypes, archetype)
	}

	return archetypes, nil
}
