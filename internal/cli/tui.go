package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/carlot/internal/app"
)

func newTUICmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, v)
		},
	}
}

func runTUI(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := resolveConfig(v)
	if err != nil {
		return err
	}
	return app.Run(cmd.Context(), app.Options{
		Config:    cfg,
		PrefsPath: v.GetString(keyPrefs),
	})
}
