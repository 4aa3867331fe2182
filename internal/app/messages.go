package app

import (
	"errors"
	"fmt"

	"github.com/abhisek/pcdiag/internal/editor"
)

// Menu titles and options.
const (
	HomePrompt   = "Sistema Experto - Diagnóstico de Computadoras"
	ManagePrompt = "Administrar Base de Datos"

	OptionDiagnose     = "Iniciar diagnóstico"
	OptionManage       = "Administrar base de datos"
	OptionQuit         = "Salir"
	OptionAddQuestion  = "Agregar pregunta"
	OptionAddSolution  = "Agregar solución"
	OptionEditQuestion = "Editar preguntas"
	OptionEditSolution = "Editar soluciones"
	OptionBack         = "Volver"
	OptionEdit         = "Editar"
	OptionDelete       = "Eliminar"

	ListQuestionsPrompt = "Editar Preguntas"
	ListSolutionsPrompt = "Editar Soluciones"
)

// Text prompts.
const (
	AskQuestionText   = "Ingresa el texto de la pregunta (Sí/No):"
	AskQuestionFactor = "Ingresa el factor asociado a esta pregunta:"
	AskSolutionText   = "Describe la solución:"
	EditQuestionText  = "Ingresa el nuevo texto de la pregunta:"
	EditQuestionFact  = "Ingresa el nuevo factor asociado:"
	ConfirmDelete     = "¿Eliminar esta entrada?"
)

// Notifications.
const (
	SuccessTitle = "Éxito"
	WarningTitle = "Error"
	InfoTitle    = "Información"

	QuestionAdded    = "Pregunta agregada correctamente."
	SolutionAdded    = "Solución agregada correctamente."
	QuestionEdited   = "Pregunta editada correctamente."
	SolutionEdited   = "Solución editada correctamente."
	EntryDeleted     = "Entrada eliminada correctamente."
	NoQuestions      = "No hay preguntas registradas."
	NoSolutions      = "No hay soluciones registradas."
	DiagnosisAborted = "Diagnóstico cancelado."
)

// warningFor turns an editor or store failure into the text shown to the
// user.
func warningFor(err error) string {
	switch {
	case errors.Is(err, editor.ErrEmptyField):
		return "El campo no puede estar vacío."
	case errors.Is(err, editor.ErrIndexOutOfRange):
		return "La entrada seleccionada ya no existe."
	case errors.Is(err, editor.ErrRuleCountMismatch):
		return "La cantidad de respuestas no coincide con las reglas de la solución."
	case errors.Is(err, editor.ErrDuplicateFactor):
		return "Ese factor ya está asignado a otra pregunta."
	case errors.Is(err, editor.ErrUnknownFactor):
		return "Ninguna pregunta evalúa ese factor."
	case errors.Is(err, editor.ErrFactorInUse):
		return "Ese factor lo usa una solución. Edita o elimina la solución primero."
	}
	return fmt.Sprintf("No se pudo guardar: %v", err)
}
