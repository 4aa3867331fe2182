package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pcdiag/internal/kb"
	"github.com/abhisek/pcdiag/internal/ui/layout"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show knowledge base counts and factor integrity warnings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cfg, logger)
		if err != nil {
			return err
		}
		defer st.Close()

		qs, err := st.LoadQuestions(ctx)
		if err != nil {
			return err
		}
		sols, err := st.LoadSolutions(ctx)
		if err != nil {
			return err
		}
		return writePage(cmd.OutOrStdout(), "Estadísticas", statsSections(qs, sols)...)
	},
}

func statsSections(qs []kb.Question, sols []kb.Solution) []string {
	rules, unconditional := 0, 0
	for _, s := range sols {
		rules += len(s.Rules)
		if len(s.Rules) == 0 {
			unconditional++
		}
	}
	counts := []string{
		fmt.Sprintf("Preguntas:  %d", len(qs)),
		fmt.Sprintf("Soluciones: %d", len(sols)),
		fmt.Sprintf("Reglas:     %d", rules),
	}

	var warnings []string
	for _, f := range kb.DuplicateFactors(qs) {
		warnings = append(warnings, fmt.Sprintf("El factor %q aparece en varias preguntas; cuenta la última respuesta.", f))
	}
	for _, f := range kb.DanglingFactors(qs, sols) {
		warnings = append(warnings, fmt.Sprintf("Ninguna pregunta evalúa el factor %q; sus reglas lo ven como No.", f))
	}
	if unconditional > 0 {
		warnings = append(warnings, fmt.Sprintf("%d solución(es) sin reglas coinciden con cualquier respuesta.", unconditional))
	}

	return []string{
		layout.RenderSection("Totales", counts, ""),
		layout.RenderSection("Advertencias", warnings, "Sin advertencias."),
	}
}
