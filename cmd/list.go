package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/abhisek/pcdiag/internal/app"
	"github.com/abhisek/pcdiag/internal/kb"
	"github.com/abhisek/pcdiag/internal/ui/layout"
)

var listCmd = &cobra.Command{
	Use:       "list [questions|solutions]",
	Short:     "Print the knowledge base",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(kb.CollectionQuestions), string(kb.CollectionSolutions)},
	RunE:      runList,
}

func init() {
	listCmd.Flags().Bool("json", false, "Print the stored JSON instead of a table")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	show := map[kb.Collection]bool{kb.CollectionQuestions: true, kb.CollectionSolutions: true}
	if len(args) == 1 {
		c, err := kb.ParseCollection(args[0])
		if err != nil {
			return err
		}
		show = map[kb.Collection]bool{c: true}
	}

	var (
		qs   []kb.Question
		sols []kb.Solution
	)
	if show[kb.CollectionQuestions] {
		if qs, err = st.LoadQuestions(ctx); err != nil {
			return err
		}
	}
	if show[kb.CollectionSolutions] {
		if sols, err = st.LoadSolutions(ctx); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		doc := map[string]any{}
		if show[kb.CollectionQuestions] {
			doc[string(kb.CollectionQuestions)] = qs
		}
		if show[kb.CollectionSolutions] {
			doc[string(kb.CollectionSolutions)] = sols
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "    ")
		return enc.Encode(doc)
	}

	var sections []string
	if show[kb.CollectionQuestions] {
		sections = append(sections, layout.RenderSection("Preguntas", questionLines(qs), app.NoQuestions))
	}
	if show[kb.CollectionSolutions] {
		sections = append(sections, layout.RenderSection("Soluciones", solutionLines(sols), app.NoSolutions))
	}
	return writePage(out, "Base de conocimiento", sections...)
}

// writePage prints a rendered page, dropping colors the destination
// cannot show (pipes and files get plain text).
func writePage(w io.Writer, title string, sections ...string) error {
	cw := colorprofile.NewWriter(w, os.Environ())
	_, err := fmt.Fprintln(cw, layout.RenderPage(layout.RenderHeader(title, layout.DefaultWidth), sections...))
	return err
}

// questionLines numbers questions from 1 and shows their factor.
func questionLines(qs []kb.Question) []string {
	labels := make([]string, len(qs))
	for i, q := range qs {
		labels[i] = fmt.Sprintf("%s  [%s]", q.Text, q.Factor)
	}
	return app.Labels(labels)
}

// solutionLines numbers solutions from 1, each followed by its rules.
func solutionLines(sols []kb.Solution) []string {
	descs := make([]string, len(sols))
	for i, s := range sols {
		descs[i] = s.Description
	}
	labels := app.Labels(descs)

	var lines []string
	for i, s := range sols {
		lines = append(lines, labels[i])
		if len(s.Rules) == 0 {
			lines = append(lines, "     (sin reglas: coincide siempre)")
		}
		for _, r := range s.Rules {
			lines = append(lines, fmt.Sprintf("     %s = %s", r.Factor, yesNo(r.Expected)))
		}
	}
	return lines
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
