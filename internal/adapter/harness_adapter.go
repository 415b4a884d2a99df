package adapter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	m "github.com/mendoc-dev/mendoc/internal/model"
)

// HarnessAdapter abstracts running the external doctest harness so the
// domain layer never deals with subprocesses directly.
type HarnessAdapter interface {
	// RunFile executes the harness against one documentation file and
	// returns its captured report output. A nonzero harness exit is the
	// normal signal that failures were found and is not an error.
	RunFile(ctx context.Context, file m.Path, opts m.RunOptions) (string, error)

	// SmokeTest verifies that the requested environment module imports
	// cleanly before any files are processed. It is a no-op when no
	// environment was requested.
	SmokeTest(ctx context.Context, opts m.RunOptions) error
}

// SmokeTestError reports a failed environment import. The caller is
// expected to exit with the harness's exit code.
type SmokeTestError struct {
	Environment string
	ExitCode    int
	Output      string
}

func (e *SmokeTestError) Error() string {
	return fmt.Sprintf("environment %q failed to import (exit %d)", e.Environment, e.ExitCode)
}

// LocalHarnessAdapter runs the configured harness command as a subprocess.
type LocalHarnessAdapter struct {
	command     []string
	interpreter string
	timeout     time.Duration
}

// NewLocalHarnessAdapter constructs a LocalHarnessAdapter from the
// configured harness argv, interpreter, and per-run timeout.
func NewLocalHarnessAdapter(command []string, interpreter string, timeout time.Duration) *LocalHarnessAdapter {
	return &LocalHarnessAdapter{
		command:     command,
		interpreter: interpreter,
		timeout:     timeout,
	}
}

// RunFile executes the harness against one file and captures its stdout,
// which carries the failure report blocks.
func (a *LocalHarnessAdapter) RunFile(ctx context.Context, file m.Path, opts m.RunOptions) (string, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	argv := a.buildArgv(file, opts)

	// #nosec G204 - the harness argv comes from the user's own configuration
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), nil
		}

		return "", fmt.Errorf("failed to run doctest harness: %w", err)
	}

	return string(out), nil
}

// SmokeTest imports the environment module with the configured interpreter
// and surfaces a failure as a SmokeTestError carrying the exit code.
func (a *LocalHarnessAdapter) SmokeTest(ctx context.Context, opts m.RunOptions) error {
	if opts.Environment == "" {
		return nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	interpreter := resolveVenv(a.interpreter, opts.Venv)

	// #nosec G204 - the interpreter comes from the user's own configuration
	cmd := exec.CommandContext(ctx, interpreter, "-c", fmt.Sprintf("import %s", opts.Environment))

	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	exitCode := 1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &SmokeTestError{
		Environment: opts.Environment,
		ExitCode:    exitCode,
		Output:      strings.TrimSpace(string(out)),
	}
}

func (a *LocalHarnessAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, a.timeout)
}

// buildArgv assembles the harness invocation for one file. Option flags
// are appended only when set, so a bare configuration stays a plain
// `<command> <file>` call.
func (a *LocalHarnessAdapter) buildArgv(file m.Path, opts m.RunOptions) []string {
	argv := make([]string, 0, len(a.command)+6)
	argv = append(argv, a.command...)

	if opts.Long {
		argv = append(argv, "--long")
	}

	if len(opts.Probe) > 0 {
		argv = append(argv, "--probe", strings.Join(opts.Probe, ","))
	}

	if opts.Environment != "" {
		argv = append(argv, "--environment", opts.Environment)
	}

	argv = append(argv, string(file))
	argv[0] = resolveVenv(argv[0], opts.Venv)

	return argv
}

// resolveVenv redirects a command name into the virtual environment's bin
// directory when one was requested.
func resolveVenv(argv0, venv string) string {
	if venv == "" {
		return argv0
	}

	return filepath.Join(venv, "bin", filepath.Base(argv0))
}
