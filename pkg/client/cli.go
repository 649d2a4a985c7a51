package client

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
)

// CliCommand is a single invocation of the vendor batch CLI.
//
// A non-zero exit surfaces as an *exec.ExitError in the returned error
// chain, so callers can mirror the CLI's exit code.
type CliCommand struct {
	// Set by the connection details
	Cmd  string
	Args []string
	Env  []string

	// Stubbable for testing
	stdin   io.Reader
	environ func() []string
}

// NewCliCommand builds a bare `<cli> ...` invocation, for CLI-level
// operations like version probing that sit outside the batch subcommand.
func NewCliCommand(details *CliConnectionDetails, args ...string) *CliCommand {
	return &CliCommand{
		Cmd:     details.NgcPath,
		Args:    args,
		Env:     details.Env,
		stdin:   os.Stdin,
		environ: os.Environ,
	}
}

// NewBatchCommand builds a `<cli> batch <subcommand> ...` invocation from
// the connection details. Org, team and ACE context flags are appended
// after the subcommand's own arguments.
func NewBatchCommand(details *CliConnectionDetails, subcommand string, args ...string) *CliCommand {
	fullArgs := append([]string{"batch", subcommand}, args...)
	fullArgs = append(fullArgs, details.contextArgs()...)
	return NewCliCommand(details, fullArgs...)
}

// Argv returns the full command line, executable included.
func (c *CliCommand) Argv() []string {
	return append([]string{c.Cmd}, c.Args...)
}

// String renders the command line with shell quoting, for display.
func (c *CliCommand) String() string {
	return shellquote.Join(c.Argv()...)
}

// Run executes the command, streaming combined output to out.
func (c *CliCommand) Run(ctx context.Context, out io.Writer) error {
	cmd := c.command(ctx)
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "error running %s", c.Cmd)
	}
	return nil
}

// Output executes the command, capturing stdout while stderr streams
// to errOut.
func (c *CliCommand) Output(ctx context.Context, errOut io.Writer) ([]byte, error) {
	stdout := &bytes.Buffer{}
	cmd := c.command(ctx)
	cmd.Stdout = stdout
	cmd.Stderr = errOut
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "error running %s", c.Cmd)
	}
	return stdout.Bytes(), nil
}

func (c *CliCommand) command(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Cmd, c.Args...)
	cmd.Env = append(c.environ(), c.Env...)
	cmd.Stdin = c.stdin
	return cmd
}
