package nemolaunch

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mihaicode/nemolaunch/internal/common"
	"github.com/mihaicode/nemolaunch/internal/nemolaunch/build"
	"github.com/mihaicode/nemolaunch/pkg/client"
)

// Version prints build information (e.g., current git commit) to the app
// output, along with the version the configured vendor CLI reports.
func (a *App) Version() error {
	w := tabwriter.NewWriter(a.Out, 1, 1, 1, ' ', 0)
	defer w.Flush()
	fmt.Fprintf(w, "Version:\t%s\n", build.ReleaseVersion)
	fmt.Fprintf(w, "Commit:\t%s\n", build.GitCommit)
	fmt.Fprintf(w, "Go version:\t%s\n", build.GoVersion)
	fmt.Fprintf(w, "Built:\t%s\n", build.BuildTime)
	fmt.Fprintf(w, "NGC CLI:\t%s\n", a.ngcVersion())
	return nil
}

// ngcVersion asks the configured vendor CLI for its version. Printing
// version information should not fail just because the CLI is missing, so
// errors degrade to UNKNOWN.
func (a *App) ngcVersion() string {
	details := a.Params.CliConnectionDetails
	if details == nil || details.NgcPath == "" {
		return "UNKNOWN"
	}

	ctx, cancel := common.ContextWithDefaultTimeout()
	defer cancel()
	out, err := client.NewCliCommand(details, "--version").Output(ctx, io.Discard)
	if err != nil {
		return "UNKNOWN"
	}
	return strings.TrimSpace(string(out))
}
