package config

import (
	"github.com/spf13/pflag"
)

// bindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-c/--config         json file path with configs
//	--vault-dir         root directory of the vault tree
//	--default-algorithm cipher used for new vaults
//	--log-level         log level (debug, info, warn, error)
//	--log-dir           directory of the client log file
//	--tick-interval     one-time-code refresh interval (e.g. "1s")
func bindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Storage.VaultDir, "vault-dir", "", "Root directory of the vault tree")
	fs.StringVar(&cfg.App.DefaultAlgorithm, "default-algorithm", "", "Cipher used for new vaults")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.App.LogDir, "log-dir", "", "Directory of the log file")
	fs.DurationVar(&cfg.Workers.TickInterval, "tick-interval", 0, "One-time code refresh interval (e.g. 1s)")

	return cfg
}
