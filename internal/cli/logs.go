package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/carlot/internal/logtail"
)

func newLogsCmd(v *viper.Viper) *cobra.Command {
	var (
		lines int
		grep  string
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the TUI log file",
		Long: `logs prints the last lines of <data_dir>/carlot.log, where the terminal
UI writes API failures and storage errors.

Example:
  carlot logs --lines 100
  carlot logs --grep 5f0c2a`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(v)
			if err != nil {
				return err
			}
			out, err := logtail.Read(cfg.LogPath(), lines, grep)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(out) == 0 {
				fmt.Fprintf(w, "No log lines in %s\n", cfg.LogPath())
				return nil
			}
			for _, line := range out {
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to print (0 for all)")
	cmd.Flags().StringVar(&grep, "grep", "", "only lines containing this text, e.g. a request id")
	return cmd
}
