package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"crm-assistant/model"
)

// LoadIntentConfig reads the keyword rule table from a YAML file.
func LoadIntentConfig(path string) (model.IntentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.IntentConfig{}, fmt.Errorf("read intent config: %w", err)
	}

	var cfg model.IntentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.IntentConfig{}, fmt.Errorf("parse intent config: %w", err)
	}
	if len(cfg.Rules) == 0 {
		return model.IntentConfig{}, fmt.Errorf("intent config %s defines no intents", path)
	}

	return cfg, nil
}

// DefaultIntentConfig mirrors config/intents.yaml so the service can start
// without the file (tests, dev runs).
func DefaultIntentConfig() model.IntentConfig {
	return model.IntentConfig{
		Threshold: DefaultThreshold,
		Rules: []model.KeywordRule{
			{
				Intent:         "greetings",
				Keywords:       []string{"hola", "buenas", "saludos"},
				BaseConfidence: 1.0,
				Action:         model.ActionTemplated,
			},
			{
				Intent:         "ai_query",
				Keywords:       []string{"gpt", "chatgpt", "inteligencia artificial"},
				BaseConfidence: 1.0,
				Action:         model.ActionRouteLLM,
			},
			{
				Intent:         "stats",
				Keywords:       []string{"promedio", "estadística", "estadistica"},
				BaseConfidence: 0.95,
				Action:         model.ActionTemplated,
			},
			{
				Intent:         "deals",
				Keywords:       []string{"negocio", "oportunidad", "pipeline"},
				BaseConfidence: 0.95,
				Action:         model.ActionTemplated,
			},
			{
				Intent:         "quotes",
				Keywords:       []string{"cotización", "cotizacion", "presupuesto"},
				BaseConfidence: 0.95,
				Action:         model.ActionTemplated,
			},
			{
				Intent:         "help",
				Keywords:       []string{"ayuda", "menú", "opciones"},
				BaseConfidence: 0.95,
				Action:         model.ActionShowMenu,
			},
			{
				Intent:         "farewell",
				Keywords:       []string{"adiós", "adios", "hasta luego"},
				BaseConfidence: 0.95,
				Action:         model.ActionTemplated,
			},
		},
		LLMTriggers: []string{
			"ia",
			"gpt",
			"chatgpt",
			"inteligencia artificial",
			"asistente virtual",
		},
	}
}
