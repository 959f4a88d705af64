// Package responses holds the per-module templated responders of the chat
// widget. Each responder maps (screen context, detected keyword) to one or
// more staged replies; there is no free-text generation here.
package responses

import (
	"fmt"
	"strings"

	"crm-assistant/model"
)

// Responder produces the staged assistant replies for one CRM module.
type Responder func(sess *model.Session, text string) []model.Reply

// stageDelayMs paces multi-message replies in the widget. Pure metadata:
// ordering never depends on it.
const stageDelayMs = 600

func contains(text, keyword string) bool {
	return strings.Contains(strings.ToLower(text), keyword)
}

// dealAmounts extracts the numeric amounts from a context snapshot that
// carries a deal list. Returns nil when the snapshot has no usable deals.
func dealAmounts(ctx *model.ContextData) []float64 {
	if ctx == nil || ctx.Data == nil {
		return nil
	}

	raw, ok := ctx.Data["deals"].([]any)
	if !ok || len(raw) == 0 {
		return nil
	}

	var amounts []float64
	for _, item := range raw {
		deal, ok := item.(map[string]any)
		if !ok {
			continue
		}
		switch v := deal["amount"].(type) {
		case float64:
			amounts = append(amounts, v)
		case int:
			amounts = append(amounts, float64(v))
		}
	}
	return amounts
}

func sum(amounts []float64) float64 {
	total := 0.0
	for _, a := range amounts {
		total += a
	}
	return total
}

// formatAmount renders totals without decimals, per the widget's display
// convention ("$400").
func formatAmount(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// formatAverage renders averages with two decimals ("200.00").
func formatAverage(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// firstName pulls the contact's first name from the snapshot, empty when
// absent.
func firstName(ctx *model.ContextData) string {
	if ctx == nil || ctx.Data == nil {
		return ""
	}
	name, _ := ctx.Data["firstName"].(string)
	return name
}

// dealStats answers the arithmetic questions ("promedio", "total",
// "cuántos") every module shares. Returns nil when the text asks for none
// of them, letting the module responder take over.
func dealStats(sess *model.Session, text string) []model.Reply {
	wantsAverage := contains(text, "promedio")
	wantsTotal := contains(text, "total")
	wantsCount := contains(text, "cuántos") || contains(text, "cuantos")
	if !wantsAverage && !wantsTotal && !wantsCount {
		return nil
	}

	amounts := dealAmounts(sess.Context)
	if len(amounts) == 0 {
		return []model.Reply{{
			Text: "No tengo datos disponibles en esta vista para hacer ese cálculo.",
		}}
	}

	total := sum(amounts)
	average := total / float64(len(amounts))

	prefix := ""
	if name := firstName(sess.Context); name != "" {
		prefix = name + ", "
	}

	switch {
	case wantsAverage:
		return []model.Reply{{
			Text: fmt.Sprintf("%sel valor promedio de tus %d negocios es $%s, con un total de $%s.",
				prefix, len(amounts), formatAverage(average), formatAmount(total)),
			Buttons: []string{"Ver total", "Ver pipeline"},
		}}
	case wantsTotal:
		return []model.Reply{{
			Text: fmt.Sprintf("%sel valor total de tus %d negocios es $%s.",
				prefix, len(amounts), formatAmount(total)),
			Buttons: []string{"Ver promedio"},
		}}
	default:
		return []model.Reply{{
			Text: fmt.Sprintf("%stienes %d negocios en esta vista, por un total de $%s.",
				prefix, len(amounts), formatAmount(total)),
		}}
	}
}

// FallbackAnswer is the degraded local answer used when the LLM call
// fails: simple arithmetic over the snapshot if it looks like a deal
// list, empty otherwise.
func FallbackAnswer(ctx *model.ContextData) string {
	amounts := dealAmounts(ctx)
	if len(amounts) == 0 {
		return ""
	}

	total := sum(amounts)
	average := total / float64(len(amounts))
	return fmt.Sprintf("Con los datos de tu pantalla: %d negocios, total $%s, promedio $%s.",
		len(amounts), formatAmount(total), formatAverage(average))
}

// Menu is the generic option menu shown when no intent fits.
func Menu() []model.Reply {
	return []model.Reply{{
		Text: "Puedo ayudarte con estas opciones:",
		Buttons: []string{
			"Resumen de negocios",
			"Buscar contactos",
			"Crear cotización",
			"Preguntar a la IA",
		},
	}}
}
