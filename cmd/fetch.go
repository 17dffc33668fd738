package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webseer/webseer-go/webseer"
)

var (
	fetchRaw    bool
	format      string
	noSafeguard bool
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <url> <prompt>",
	Short: "Fetch a page and run a prompt against its content",
	Long: `Fetch the page at <url> through the Webseer API and print the AI-written
answer to <prompt> about its content. With --raw (or --format/--no-safeguard)
the raw variant of the endpoint is used and the selectors are passed through.`,
	Args:    cobra.ExactArgs(2),
	PreRunE: initializeApp,
	RunE:    runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().BoolVar(&fetchRaw, "raw", false, "use the raw fetch variant")
	fetchCmd.Flags().StringVar(&format, "format", "", "output format (markdown/html/text)")
	fetchCmd.Flags().BoolVar(&noSafeguard, "no-safeguard", false, "disable the server-side content safeguard")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	url, prompt := args[0], args[1]

	var (
		result string
		err    error
	)
	if fetchRaw || format != "" || noSafeguard {
		opts := &webseer.RawOptions{Format: webseer.Format(format)}
		if noSafeguard {
			off := false
			opts.UseSafeguard = &off
		}
		result, err = client.RawFetch(ctx, url, prompt, opts)
	} else {
		result, err = client.Fetch(ctx, url, prompt)
	}
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}
