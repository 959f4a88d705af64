package responses

import "crm-assistant/model"

// Conversations covers the inbox/conversations screen.
func Conversations(sess *model.Session, text string) []model.Reply {
	if replies := dealStats(sess, text); replies != nil {
		return replies
	}

	if contains(text, "pendiente") || contains(text, "sin responder") {
		return []model.Reply{{
			Text:    "Filtra por \"Sin responder\" en la bandeja para ver las conversaciones pendientes.",
			Buttons: []string{"Abrir bandeja"},
		}}
	}

	return []model.Reply{
		{Text: "Estás en conversaciones. Aquí se agrupan los mensajes de tus clientes por canal."},
		{
			Text:    "Puedo ayudarte a encontrar pendientes o a redactar una respuesta con la IA.",
			DelayMs: stageDelayMs,
			Buttons: []string{"Ver pendientes", "Preguntar a la IA"},
		},
	}
}
