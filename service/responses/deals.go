package responses

import (
	"fmt"

	"crm-assistant/model"
)

// Deals answers questions asked from the deals (pipeline) board.
func Deals(sess *model.Session, text string) []model.Reply {
	if replies := dealStats(sess, text); replies != nil {
		return replies
	}

	if contains(text, "etapa") || contains(text, "pipeline") {
		return []model.Reply{
			{Text: "Tu pipeline se organiza por etapas: Prospecto, Calificado, Propuesta y Cierre."},
			{
				Text:    "Arrastra una tarjeta entre columnas para cambiarla de etapa, o tócala para ver el detalle.",
				DelayMs: stageDelayMs,
				Buttons: []string{"Ver promedio", "Ver total"},
			},
		}
	}

	if amounts := dealAmounts(sess.Context); len(amounts) > 0 {
		return []model.Reply{{
			Text: fmt.Sprintf("Estás viendo %d negocios. Pregúntame por el promedio, el total o una etapa.",
				len(amounts)),
			Buttons: []string{"Promedio", "Total"},
		}}
	}

	return []model.Reply{{
		Text:    "Estás en el tablero de negocios. Puedo calcular promedios y totales, o explicarte las etapas.",
		Buttons: []string{"Promedio", "Total", "Etapas"},
	}}
}
