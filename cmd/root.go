package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pcdiag/internal/app"
	"github.com/abhisek/pcdiag/internal/config"
	"github.com/abhisek/pcdiag/internal/logging"
	"github.com/abhisek/pcdiag/internal/store"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "pcdiag",
	Short: "Rule-based computer troubleshooting assistant",
	Long: `pcdiag asks yes/no questions about a misbehaving computer and suggests
the first stored solution whose rules match the answers.

Run without arguments to open the interactive menu.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StateHome)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/pcdiag/config.yaml)")
	flags.String("data-dir", "", "Directory holding the knowledge base (overrides data_dir)")
	flags.String("backend", "", "Storage backend: file or sqlite (overrides backend)")
	flags.Bool("verbose", false, "Log at debug level")

	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(manageCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the config file, applies flag overrides and builds the
// logger. Flags beat the file; the file beats the defaults.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		c.DataDir = v
	}
	if v, _ := cmd.Flags().GetString("backend"); v != "" {
		c.Backend = v
	}
	if c.DataDir == "" {
		dir, err := store.DefaultDataDir()
		if err != nil {
			return err
		}
		c.DataDir = dir
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	l, err := logging.New(logging.Options{
		File:    c.Log.File,
		DataDir: c.DataDir,
		Level:   c.Log.Level,
		Verbose: verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg = c
	logger = l
	logger.Debug("config loaded",
		zap.String("path", path),
		zap.String("backend", c.Backend),
		zap.String("data_dir", c.DataDir))
	return nil
}
