package responses

import "crm-assistant/model"

// Quotes covers the quote builder screen.
func Quotes(sess *model.Session, text string) []model.Reply {
	if replies := dealStats(sess, text); replies != nil {
		return replies
	}

	if contains(text, "crear") || contains(text, "nueva") {
		return []model.Reply{{
			Text:    "Para crear una cotización pulsa \"Nueva cotización\", elige el contacto y agrega las líneas de producto.",
			Buttons: []string{"Nueva cotización"},
		}}
	}

	if contains(text, "enviar") {
		return []model.Reply{{
			Text: "Desde el detalle de una cotización puedes enviarla por correo con el botón \"Enviar\".",
		}}
	}

	return []model.Reply{{
		Text:    "Estás en cotizaciones. Puedo guiarte para crear, enviar o totalizar una cotización.",
		Buttons: []string{"Crear", "Enviar", "Total"},
	}}
}
