package client

// CliConnectionDetails holds everything needed to reach the batch service,
// which this tool always does through the vendor CLI rather than a direct
// API connection.
type CliConnectionDetails struct {
	// Path to the CLI executable, either absolute or resolved on PATH.
	NgcPath string `validate:"required"`

	// Optional org, team and ACE context forwarded to every invocation.
	NgcOrg  string
	NgcTeam string
	NgcAce  string

	// Extra environment entries appended to the CLI's environment, in
	// KEY=VALUE form.
	Env []string
}

// ConnectionDetails supplies connection details on demand, so commands pick
// up flag and config changes made after registration.
type ConnectionDetails func() *CliConnectionDetails

// contextArgs renders the org, team and ACE context as CLI arguments.
func (details *CliConnectionDetails) contextArgs() []string {
	args := []string{}
	if details.NgcOrg != "" {
		args = append(args, "--org", details.NgcOrg)
	}
	if details.NgcTeam != "" {
		args = append(args, "--team", details.NgcTeam)
	}
	if details.NgcAce != "" {
		args = append(args, "--ace", details.NgcAce)
	}
	return args
}
