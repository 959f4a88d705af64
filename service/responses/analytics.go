package responses

import "crm-assistant/model"

// Analytics covers the reporting dashboard.
func Analytics(sess *model.Session, text string) []model.Reply {
	if replies := dealStats(sess, text); replies != nil {
		return replies
	}

	if contains(text, "exportar") {
		return []model.Reply{{
			Text: "Cada gráfico tiene un menú con la opción \"Exportar CSV\" en la esquina superior derecha.",
		}}
	}

	return []model.Reply{
		{Text: "Estás en analíticas. Los paneles muestran tu embudo, conversión y actividad por periodo."},
		{
			Text:    "Pregúntame por promedios o totales del periodo visible, o pide un análisis a la IA.",
			DelayMs: stageDelayMs,
			Buttons: []string{"Promedio", "Total", "Preguntar a la IA"},
		},
	}
}
