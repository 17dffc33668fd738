package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webseer/webseer-go/webseer"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short:   "Extract page content without prompt-driven analysis",
	Long:    `Fetch the page at <url> and print its content in the selected format.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&format, "format", "", "output format (markdown/html/text)")
	extractCmd.Flags().BoolVar(&noSafeguard, "no-safeguard", false, "disable the server-side content safeguard")
}

func runExtract(cmd *cobra.Command, args []string) error {
	opts := &webseer.ExtractOptions{Format: webseer.Format(format)}
	if noSafeguard {
		off := false
		opts.UseSafeguard = &off
	}

	result, err := client.Extract(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}
