package main

import (
	"github.com/spf13/cobra"

	"github.com/th3oth3rjak3/Sigil/internal/cache"
	"github.com/th3oth3rjak3/Sigil/internal/cli"
	"github.com/th3oth3rjak3/Sigil/internal/config"
	"github.com/th3oth3rjak3/Sigil/internal/log"
)

// rootFlags holds the flags every subcommand inherits from the root
// command.
type rootFlags struct {
	requireVersion string
	logLevel       string
	cacheSize      int
	noCache        bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:     "sigil",
		Short:   "Sigil language toolchain",
		Version: cli.GetVersionInfo().String(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cli.CheckRequiredVersion(flags.requireVersion)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.requireVersion, "require-version", "", "fail unless the running sigil satisfies this semver constraint")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "debug, info, warn, or error")
	root.PersistentFlags().IntVar(&flags.cacheSize, "cache-size", 128, "number of checked programs to keep in the in-memory cache")
	root.PersistentFlags().BoolVar(&flags.noCache, "no-cache", false, "disable the parsed-program cache")

	root.AddCommand(newRunCmd(flags))
	root.AddCommand(newCheckCmd(flags))
	root.AddCommand(newReplCmd(flags))

	return root
}

// loadRuntime resolves the .sigil.toml in dir, a logger at the requested
// level, and a cache (nil if disabled).
func loadRuntime(flags *rootFlags, dir string) (config.Config, log.Logger, *cache.Cache, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	logger := log.New(log.ParseLevel(flags.logLevel), nil)

	var c *cache.Cache
	if !flags.noCache {
		c = cache.New(flags.cacheSize)
	}

	return cfg, logger, c, nil
}
