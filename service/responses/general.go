package responses

import "crm-assistant/model"

// General is the fallback responder when no module context is supplied.
func General(sess *model.Session, text string) []model.Reply {
	if replies := dealStats(sess, text); replies != nil {
		return replies
	}

	if contains(text, "hola") || contains(text, "buenas") || contains(text, "saludos") {
		return []model.Reply{{
			Text:    "¡Hola! Soy tu asistente del CRM. ¿En qué te ayudo hoy?",
			Buttons: []string{"Resumen de negocios", "Preguntar a la IA"},
		}}
	}

	if contains(text, "adiós") || contains(text, "adios") || contains(text, "hasta luego") {
		return []model.Reply{{
			Text: "¡Hasta luego! Aquí estaré cuando me necesites.",
		}}
	}

	return Menu()
}
