package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pcdiag/internal/app"
	"github.com/abhisek/pcdiag/internal/config"
	"github.com/abhisek/pcdiag/internal/editor"
	"github.com/abhisek/pcdiag/internal/prompt"
	"github.com/abhisek/pcdiag/internal/session"
	"github.com/abhisek/pcdiag/internal/store"
)

// openStore opens the knowledge base selected by c.
func openStore(c *config.Config, log *zap.Logger) (*store.Store, error) {
	st, err := store.Open(store.Options{
		Backend:    c.Backend,
		DataDir:    c.DataDir,
		SQLiteFile: c.SQLiteFile,
		Logger:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// openEditor opens the store and loads both collections into an editor.
// The caller closes the returned store.
func openEditor(ctx context.Context, c *config.Config, log *zap.Logger) (*editor.Editor, *store.Store, error) {
	st, err := openStore(c, log)
	if err != nil {
		return nil, nil, err
	}
	policy, err := editor.ParseFactorPolicy(c.FactorPolicy)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	ed, err := editor.Open(ctx, st, editor.Options{Policy: policy, Logger: log})
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return ed, st, nil
}

// runApp opens the knowledge base and runs the interactive menus from start.
func runApp(cmd *cobra.Command, start app.State) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ed, st, err := openEditor(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	policy, err := session.ParseCancelPolicy(cfg.CancelPolicy)
	if err != nil {
		return err
	}

	a := app.New(ed, prompt.New(), app.Options{CancelPolicy: policy, Logger: logger})
	return a.Run(ctx, start)
}

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Answer the questions and get a suggested solution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StateDiagnose)
	},
}

var manageCmd = &cobra.Command{
	Use:   "manage",
	Short: "Add, edit and delete questions and solutions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StateManage)
	},
}
