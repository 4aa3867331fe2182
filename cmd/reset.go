package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pcdiag/internal/prompt"
)

// ResetConfirm is asked before the knowledge base is wiped.
const ResetConfirm = "¿Borrar todas las preguntas y soluciones?"

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every question and solution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		var p prompt.Prompter
		if !yes {
			p = prompt.New()
		}
		return runReset(cmd, p)
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

// runReset empties both collections. A nil prompter skips the confirmation.
func runReset(cmd *cobra.Command, p prompt.Prompter) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if p != nil {
		ok, err := p.AskYesNo(ctx, ResetConfirm)
		if err != nil && !errors.Is(err, prompt.ErrCancelled) {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Sin cambios.")
			return nil
		}
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveQuestions(ctx, nil); err != nil {
		return err
	}
	if err := st.SaveSolutions(ctx, nil); err != nil {
		return err
	}
	logger.Info("knowledge base reset")
	fmt.Fprintln(cmd.OutOrStdout(), "Base de conocimiento vaciada.")
	return nil
}
