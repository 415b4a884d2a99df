package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mendoc-dev/mendoc/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List doctest files and example counts",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			wf, _, err := resolveWorkflow()
			if err != nil {
				return err
			}

			return wf.List(domain.ListArgs{Paths: parsePaths(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
