package service

import (
	"strings"

	"crm-assistant/model"
	"crm-assistant/utils"
)

// DefaultThreshold is the minimum score a rule must strictly exceed to be
// accepted as the winning intent.
const DefaultThreshold = 0.3

// minQueryRunes: normalized inputs at or below this length never trigger
// LLM routing, they are too short to be a meaningful query.
const minQueryRunes = 2

// Classifier scores free text against a fixed table of weighted keyword
// rules. It is pure: no I/O, no mutation, same input always yields the
// same result.
//
// Matching is plain substring search with no word-boundary check, so short
// keywords can match inside unrelated words ("ia" inside "gracias"). That
// is the behavior the chat widget has always had; changing it would shift
// routing for existing conversations.
type Classifier struct {
	rules     []model.KeywordRule
	triggers  []string
	threshold float64
}

// NewClassifier builds a classifier over the given config. Rules with no
// keywords or a non-positive weight are dropped; the remaining rules keep
// their declaration order, which is also the tie-break order.
func NewClassifier(cfg model.IntentConfig) *Classifier {
	rules := make([]model.KeywordRule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		if len(r.Keywords) == 0 || r.BaseConfidence <= 0 {
			continue
		}
		rules = append(rules, r)
	}

	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	return &Classifier{
		rules:     rules,
		triggers:  cfg.LLMTriggers,
		threshold: threshold,
	}
}

// Classify maps raw user text to the best-fitting intent. It is total over
// all string inputs: empty or unmatched text yields an empty intent with
// the templated-response default action.
func (c *Classifier) Classify(text string) model.ClassificationResult {
	normalized := utils.Normalize(text)

	result := model.ClassificationResult{Action: model.ActionTemplated}
	if normalized == "" {
		return result
	}

	bestScore := 0.0
	for _, rule := range c.rules {
		matched := matchKeywords(normalized, rule.Keywords)
		if len(matched) == 0 {
			continue
		}

		score := float64(len(matched)) / float64(len(rule.Keywords)) * rule.BaseConfidence
		// Strict comparison: on equal scores the earlier rule stands.
		if score > bestScore {
			bestScore = score
			result.Intent = rule.Intent
			result.Confidence = score
			result.MatchedKeywords = matched
			result.Action = rule.Action
		}
	}

	if bestScore <= c.threshold {
		result = model.ClassificationResult{Action: model.ActionTemplated}
	}

	if c.ShouldRouteToLLM(text) {
		result.Action = model.ActionRouteLLM
	}

	return result
}

// ShouldRouteToLLM reports whether the text explicitly asks for the AI
// assistant (mentions of the model name, "inteligencia artificial" and the
// like). Inputs of two runes or fewer never route, whatever they contain.
func (c *Classifier) ShouldRouteToLLM(text string) bool {
	normalized := utils.Normalize(text)
	if utils.RuneLen(normalized) <= minQueryRunes {
		return false
	}

	for _, trigger := range c.triggers {
		if strings.Contains(normalized, trigger) {
			return true
		}
	}
	return false
}

// Threshold returns the acceptance threshold in effect.
func (c *Classifier) Threshold() float64 {
	return c.threshold
}

func matchKeywords(normalized string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(normalized, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}
