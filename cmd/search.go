package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webseer/webseer-go/webseer"
)

var (
	allowedDomains []string
	blockedDomains []string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query> [query...]",
	Short: "Search the web for an AI-written answer",
	Long: `Search the web through the Webseer API and print an AI-written answer
grounded in current results. Multiple queries run concurrently.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringSliceVar(&allowedDomains, "allow", nil, "restrict results to these domains")
	searchCmd.Flags().StringSliceVar(&blockedDomains, "block", nil, "exclude these domains from results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	opts := &webseer.SearchOptions{
		AllowedDomains: allowedDomains,
		BlockedDomains: blockedDomains,
	}
	// Fall back to config defaults when no flags were given
	if len(opts.AllowedDomains) == 0 {
		opts.AllowedDomains = cfg.Search.AllowedDomains
	}
	if len(opts.BlockedDomains) == 0 {
		opts.BlockedDomains = cfg.Search.BlockedDomains
	}

	ctx := cmd.Context()

	if len(args) == 1 {
		answer, err := client.Search(ctx, args[0], opts)
		if err != nil {
			return err
		}
		fmt.Println(answer)
		return nil
	}

	logger.Info().Int("queries", len(args)).Msg("Running batch search")

	results, err := client.SearchAll(ctx, args, opts)
	if err != nil {
		return err
	}

	var failed int
	for _, res := range results {
		fmt.Printf("• %s\n", res.Query)
		if res.Err != nil {
			failed++
			fmt.Printf("  error: %v\n", res.Err)
			continue
		}
		fmt.Println(indent(res.Result, "  "))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d searches failed", failed, len(results))
	}
	return nil
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
