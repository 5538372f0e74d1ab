package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

const appName = "restcall"

type rootFlags struct {
	ConfigFile string
	EnvFile    string
	BaseURL    string
	User       string
	Password   string
	Headers    []string
	Debug      bool
	Pretty     bool
	Timeout    time.Duration
}

// NewRootCmd builds the restcall command tree.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Call REST APIs with Basic auth and JSON defaults",
		Long: `Call REST APIs with Basic auth and JSON defaults.

Relative paths are appended to the configured base URL verbatim; absolute
http(s) URLs are used as given. Settings come from restcall.yml, a .env
file, RESTCALL_* environment variables and flags, in increasing priority.`,
		Example: `  # GET relative to the base URL
  restcall --base-url https://jira.example.com/ --user bot --password $TOKEN get rest/api/2/myself

  # POST a JSON body
  restcall post rest/api/2/issue --data @issue.json

  # Attach a file
  restcall upload build.log rest/api/2/issue/ABC-1/attachments`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%w", err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.ConfigFile, "config", "", "config file (default: restcall.yml, config.yml or the user config dir)")
	pf.StringVar(&f.EnvFile, "env-file", "", ".env file to load (default: .env)")
	pf.StringVar(&f.BaseURL, "base-url", "", "base URL relative paths are appended to")
	pf.StringVarP(&f.User, "user", "u", "", "Basic auth username")
	pf.StringVarP(&f.Password, "password", "p", "", "Basic auth password or API token")
	pf.StringArrayVarP(&f.Headers, "header", "H", nil, `extra request header "Name: value" (repeatable)`)
	pf.BoolVar(&f.Debug, "debug", false, "log requests as curl commands")
	pf.BoolVar(&f.Pretty, "pretty", false, "indent JSON responses")
	pf.DurationVar(&f.Timeout, "timeout", 0, "overall request timeout (0 = none)")

	root.AddCommand(
		newGetCmd(f),
		newPostCmd(f),
		newUploadCmd(f),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command with args.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// exactArgs wraps cobra.ExactArgs so argument mistakes map to the usage
// exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageErrorf("%w", err)
		}
		return nil
	}
}
