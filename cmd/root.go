// Package cmd provides the root command and CLI setup for mendoc.
package cmd

import (
	"errors"
	"os"

	"github.com/mendoc-dev/mendoc/internal/adapter"
	"github.com/mendoc-dev/mendoc/internal/config"
	"github.com/mendoc-dev/mendoc/internal/controller"
	"github.com/mendoc-dev/mendoc/internal/domain"
	m "github.com/mendoc-dev/mendoc/internal/model"
	"github.com/spf13/cobra"
)

var fsAdapter adapter.SourceFSAdapter
var docAdapter adapter.DocFileAdapter
var harnessAdapter adapter.HarnessAdapter
var reportStore adapter.ReportStore
var ui controller.UI
var listUI adapter.UI
var workflow domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	listUI = adapter.NewUI(rootCmd, adapter.IsTTY(os.Stdout))
}

var reportsOutputDirFlag string
var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mendoc",
		Short: "Doctest fixing tool",
		Long: `Mendoc repairs failing doctests by running them through the doctest
harness and rewriting the recorded output in place to match what the
code actually produces. Exceptions become capability tags instead of
recorded tracebacks, so optional functionality degrades gracefully.

Supports path arguments the usual way:
  - file.py           fix a single file
  - pkg/              fix every doctest carrier in pkg
  - pkg/...           same, explicit recursive form`,
	}
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", ".mendoc-reports", "directory where fix run reports are stored")
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to the configuration file (default .mendoc.yaml)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		var smoke *adapter.SmokeTestError
		if errors.As(err, &smoke) && smoke.ExitCode > 0 {
			os.Exit(smoke.ExitCode)
		}

		os.Exit(1)
	}
}

// resolveWorkflow wires the config-dependent pieces on first use. Tests
// inject their own implementation through the workflow package variable.
func resolveWorkflow() (domain.Workflow, *config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, nil, err
	}

	if workflow != nil {
		return workflow, cfg, nil
	}

	docAdapter = adapter.NewLocalDocFileAdapter(cfg.BuildSyntax())
	harnessAdapter = adapter.NewLocalHarnessAdapter(cfg.Harness.Command, cfg.Harness.Interpreter, cfg.Timeout())

	orchestrator := domain.NewOrchestrator(fsAdapter, harnessAdapter, docAdapter, cfg.BuildSyntax(), cfg.BuildFeatures())

	workflow = domain.NewWorkflow(
		fsAdapter,
		docAdapter,
		harnessAdapter,
		reportStore,
		ui,
		listUI,
		orchestrator,
	)

	return workflow, cfg, nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
