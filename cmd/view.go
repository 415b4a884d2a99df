package cmd

import (
	"github.com/mendoc-dev/mendoc/internal/domain"
	m "github.com/mendoc-dev/mendoc/internal/model"
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved fix reports",
		Long:  "View previously saved fix run reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			wf, _, err := resolveWorkflow()
			if err != nil {
				return err
			}

			return wf.View(domain.ViewArgs{Reports: m.Path(reportsOutputDirFlag)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
