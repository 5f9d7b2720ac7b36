// Package cli implements the carlot command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is stamped at build time with -ldflags "-X".
var Version = "dev"

// Flag and viper keys. Each key is also read from CARLOT_<KEY> with dashes
// turned into underscores.
const (
	keyConfig    = "config"
	keyPrefs     = "prefs"
	keyAPIURL    = "api-url"
	keyAPIKey    = "api-key"
	keyModel     = "model-filter"
	keyLimit     = "limit"
	keyStorage   = "storage"
	keyDataDir   = "data-dir"
	keySimulated = "simulated"
)

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CARLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "carlot",
		Short: "Browse, filter and sort vehicle listings in the terminal",
		Long: `carlot lists vehicles from the api-ninjas cars API, or from a bundled
simulated dataset, and lets you filter, sort and page through them.

Running carlot without a subcommand starts the terminal UI.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, v)
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "config file (default ~/.config/carlot/config.toml)")
	flags.String(keyPrefs, "", "preferences file (default ~/.config/carlot/prefs.toml)")
	flags.String(keyAPIURL, "", "vehicle API base URL")
	flags.String(keyAPIKey, "", "vehicle API key (or CARLOT_API_KEY)")
	flags.String(keyModel, "", "server-side model filter sent with every request")
	flags.Int(keyLimit, 0, "vehicles requested per load")
	flags.String(keyStorage, "", "preference storage backend: sqlite or toml")
	flags.String(keyDataDir, "", "directory for the database and log file")
	flags.Bool(keySimulated, false, "use the bundled simulated dataset instead of the API")
	_ = v.BindPFlags(flags)

	root.AddCommand(newTUICmd(v))
	root.AddCommand(newListCmd(v))
	root.AddCommand(newStubAPICmd(v))
	root.AddCommand(newLogsCmd(v))
	root.AddCommand(newVersionCmd())
	return root
}

// Main is the entry point used by cmd/carlot.
func Main(ctx context.Context) int {
	return Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
