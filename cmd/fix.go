package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mendoc-dev/mendoc/internal/controller"
	"github.com/mendoc-dev/mendoc/internal/domain"
	m "github.com/mendoc-dev/mendoc/internal/model"
)

var fixLongFlag bool
var fixVenvFlag string
var fixEnvironmentFlag string
var fixOnlyTagsFlag bool
var fixFullTracebacksFlag bool
var fixProbeFlags []string
var fixKeepBothFlag bool
var fixOverwriteFlag bool
var fixNoOverwriteFlag bool
var fixVerboseFlag bool
var fixNoTUIFlag bool

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Fix failing doctests in place",
		Long:  fixLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fixOverwriteFlag && fixNoOverwriteFlag {
				return fmt.Errorf("--overwrite and --no-overwrite are mutually exclusive")
			}

			if fixNoTUIFlag {
				ui = controller.NewUI(rootCmd, false)
			}

			wf, cfg, err := resolveWorkflow()
			if err != nil {
				return err
			}

			environment := fixEnvironmentFlag
			if environment == "" {
				environment = cfg.Harness.Environment
			}

			opts := domain.FixOptions{
				Long:           fixLongFlag,
				OnlyTags:       fixOnlyTagsFlag,
				KeepBoth:       fixKeepBothFlag,
				FullTracebacks: fixFullTracebacksFlag,
				Probe:          fixProbeFlags,
				Environment:    environment,
				Venv:           fixVenvFlag,
				Overwrite:      !fixNoOverwriteFlag,
			}
			opts.Verbose = fixVerboseFlag

			paths := parsePaths(args)

			// Historic call form: with exactly two file arguments and no
			// explicit overwrite choice, the second names the output file.
			if len(args) == 2 && !fixOverwriteFlag && !fixNoOverwriteFlag {
				cmd.PrintErrln("mendoc fix: with two file arguments the second is taken as the output path; this form is deprecated. To fix two files, pass --overwrite.")

				paths = paths[:1]
				opts.Output = m.Path(args[1])
				opts.Overwrite = false
			}

			return wf.Fix(domain.FixArgs{
				Paths:   paths,
				Options: opts,
				Reports: m.Path(reportsOutputDirFlag),
			})
		},
	}
	cmd.Flags().BoolVar(&fixLongFlag, "long", false, "include examples marked as long-running")
	cmd.Flags().StringVar(&fixVenvFlag, "venv", "", "virtual environment directory whose interpreter runs the harness")
	cmd.Flags().StringVarP(&fixEnvironmentFlag, "environment", "e", "", "module providing the test environment (overrides the config)")
	cmd.Flags().BoolVar(&fixOnlyTagsFlag, "only-tags", false, "add and remove tags only, never touch recorded output")
	cmd.Flags().BoolVar(&fixFullTracebacksFlag, "full-tracebacks", false, "record cleaned full tracebacks instead of the three-line placeholder")
	cmd.Flags().StringSliceVar(&fixProbeFlags, "probe", nil, "comma-separated tags to re-check for redundancy, or 'all'")
	cmd.Flags().BoolVar(&fixKeepBothFlag, "keep-both", false, "keep the original example and add a copy with the actual output")
	cmd.Flags().BoolVar(&fixOverwriteFlag, "overwrite", false, "write fixes back to the input files (default)")
	cmd.Flags().BoolVar(&fixNoOverwriteFlag, "no-overwrite", false, "write fixes to a sibling .fixed file instead")
	cmd.Flags().BoolVarP(&fixVerboseFlag, "verbose", "v", false, "report every block fix as it is applied")
	cmd.Flags().BoolVar(&fixNoTUIFlag, "no-tui", false, "plain text output even on a terminal")

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
