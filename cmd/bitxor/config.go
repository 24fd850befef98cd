package bitxor

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oddbits/bitkit/config"
)

var (
	configFile   string
	logLevelName string
)

func setFlags(flags *pflag.FlagSet, cfg *config.Config) {
	flags.StringVar(&configFile, "config", "", "optional config file (toml/yaml/json)")
	flags.StringVar(&logLevelName, "log-level", "info", "log level (debug, info, warn, error)")

	flags.Uint("max-buffer-bits", cfg.MaxBufferBits, "largest buffer the tool will allocate, in bits")
	flags.Int("dump-group-bytes", cfg.DumpGroupBytes, "bytes per dump group")
	flags.Int("dump-row-bytes", cfg.DumpRowBytes, "bytes per dump row")
	flags.Int("dump-label-width", cfg.DumpLabelWidth, "digits in the dump offset label")
}

// loadConfig layers the optional config file under the CLI flags; flag
// values set on the command line take priority over the file.
func loadConfig() (*config.Config, error) {
	vip := viper.New()
	if err := vip.BindPFlags(Cmd.PersistentFlags()); err != nil {
		return nil, err
	}

	if configFile != "" {
		vip.SetConfigFile(configFile)
		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := config.DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
