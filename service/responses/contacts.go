package responses

import "crm-assistant/model"

// Contacts answers questions asked from a contact's detail view. Deal
// arithmetic works here too because the view embeds the contact's deals.
func Contacts(sess *model.Session, text string) []model.Reply {
	if replies := dealStats(sess, text); replies != nil {
		return replies
	}

	name := firstName(sess.Context)

	if contains(text, "buscar") || contains(text, "encontrar") {
		return []model.Reply{{
			Text:    "Usa la barra superior para buscar contactos por nombre, correo o empresa.",
			Buttons: []string{"Ver negocios del contacto"},
		}}
	}

	if name != "" {
		return []model.Reply{{
			Text: "Estás viendo la ficha de " + name + ". Pregúntame por sus negocios, su valor promedio o su total.",
			Buttons: []string{"Promedio", "Total"},
		}}
	}

	return []model.Reply{{
		Text:    "Estás en contactos. Puedo buscar personas o resumir los negocios de una ficha abierta.",
		Buttons: []string{"Buscar contacto"},
	}}
}
