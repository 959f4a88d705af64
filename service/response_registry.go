package service

import (
	"crm-assistant/model"
	"crm-assistant/service/responses"
)

// Responders maps each CRM module to its templated responder. Unknown or
// missing modules fall back to the general responder.
var Responders = map[model.Module]responses.Responder{
	model.ModuleDeals:         responses.Deals,
	model.ModuleContacts:      responses.Contacts,
	model.ModuleConversations: responses.Conversations,
	model.ModuleQuotes:        responses.Quotes,
	model.ModuleAnalytics:     responses.Analytics,
	model.ModuleGeneral:       responses.General,
}

func responderFor(sess *model.Session) responses.Responder {
	if sess.Context != nil {
		if responder, ok := Responders[sess.Context.Module]; ok {
			return responder
		}
	}
	return responses.General
}
