package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and their file extensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, headerStyle.Render("Supported languages"))
			for _, p := range newRegistry().All() {
				fmt.Fprintf(out, "  %-12s %s\n", p.Language(), strings.Join(p.Extensions(), " "))
			}
			return nil
		},
	}
}
