package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/five82/carlot/internal/config"
)

// resolveConfig loads the config file and layers flags and CARLOT_*
// environment variables over it. Values that were never set keep the file
// value, so an empty flag default cannot blank out the config.
func resolveConfig(v *viper.Viper) (config.Config, error) {
	cfg, err := config.Load(v.GetString(keyConfig))
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if v.IsSet(keyAPIURL) {
		if s := strings.TrimSpace(v.GetString(keyAPIURL)); s != "" {
			cfg.APIURL = s
		}
	}
	if v.IsSet(keyAPIKey) {
		if s := strings.TrimSpace(v.GetString(keyAPIKey)); s != "" {
			cfg.APIKey = s
		}
	}
	if v.IsSet(keyModel) {
		if s := strings.TrimSpace(v.GetString(keyModel)); s != "" {
			cfg.Model = s
		}
	}
	if v.IsSet(keyLimit) {
		if n := v.GetInt(keyLimit); n > 0 {
			cfg.Limit = n
		}
	}
	if v.IsSet(keyStorage) {
		if s := strings.TrimSpace(v.GetString(keyStorage)); s != "" {
			cfg.Storage = strings.ToLower(s)
		}
	}
	if v.IsSet(keyDataDir) {
		if s := strings.TrimSpace(v.GetString(keyDataDir)); s != "" {
			dir, err := config.ExpandPath(s)
			if err != nil {
				return config.Config{}, fmt.Errorf("resolve data dir: %w", err)
			}
			cfg.DataDir = dir
		}
	}
	if v.GetBool(keySimulated) {
		cfg.Simulated = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
