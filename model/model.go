package model

// Action is the three-way routing decision for a classified message.
type Action string

const (
	ActionRouteLLM  Action = "route-to-llm"
	ActionTemplated Action = "templated-response"
	ActionShowMenu  Action = "show-menu"
)

// Module identifies which CRM screen the user is currently viewing.
type Module string

const (
	ModuleDeals         Module = "deals"
	ModuleContacts      Module = "contacts"
	ModuleConversations Module = "conversations"
	ModuleQuotes        Module = "quotes"
	ModuleAnalytics     Module = "analytics"
	ModuleGeneral       Module = "general"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// KeywordRule is one row of the static classification table. Rules are
// loaded once at startup and never mutated; the position of a rule in the
// table is its tie-break priority.
type KeywordRule struct {
	Intent         string   `yaml:"intent" json:"intent"`
	Keywords       []string `yaml:"keywords" json:"keywords"`
	BaseConfidence float64  `yaml:"base_confidence" json:"base_confidence"`
	Action         Action   `yaml:"action" json:"action"`
}

// IntentConfig is the on-disk shape of config/intents.yaml.
type IntentConfig struct {
	Rules []KeywordRule `yaml:"intents"`
	// LLMTriggers are the explicit "ask the AI" phrases scanned by the
	// short-circuit check, independent of the rule table.
	LLMTriggers []string `yaml:"llm_triggers"`
	Threshold   float64  `yaml:"threshold"`
}

// ClassificationResult is produced fresh on every Classify call.
type ClassificationResult struct {
	Intent          string   `json:"intent"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	Action          Action   `json:"action"`
}

// Matched reports whether any rule cleared the acceptance threshold.
func (r ClassificationResult) Matched() bool {
	return r.Intent != ""
}

// ChatMessage is one entry of a session's append-only message log.
// DelayMs is UX pacing metadata for staged assistant replies; it never
// affects ordering.
type ChatMessage struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Sender    Sender   `json:"sender"`
	Timestamp string   `json:"timestamp"`
	Buttons   []string `json:"buttons,omitempty"`
	DelayMs   int      `json:"delay_ms,omitempty"`
}

// ContextData is the UI-supplied snapshot of what the user is looking at.
// The classifier never reads it; only the templated-response path does.
type ContextData struct {
	Module   Module         `json:"module"`
	Data     map[string]any `json:"data,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Session holds the state of one open chat window. No cross-session
// persistence: cleared sessions start from an empty log.
type Session struct {
	ID               string        `json:"id"`
	Messages         []ChatMessage `json:"messages"`
	AwaitingFollowUp bool          `json:"awaiting_follow_up"`
	Context          *ContextData  `json:"context,omitempty"`
	CreatedAt        string        `json:"created_at"`
	UpdatedAt        string        `json:"updated_at"`
}

// Reply is one staged assistant response before it is appended to the log.
type Reply struct {
	Text    string
	Buttons []string
	DelayMs int
}

// ChatRequest is the widget's wire format for one user turn. Action is set
// by explicit UI controls (currently only "ask_ai"); Context is the fresh
// snapshot for this turn.
type ChatRequest struct {
	SessionID string       `json:"session_id"`
	Message   string       `json:"message"`
	Action    string       `json:"action,omitempty"`
	Context   *ContextData `json:"context,omitempty"`
}

// ChatResponse returns every assistant message the turn produced, in
// emission order.
type ChatResponse struct {
	SessionID        string        `json:"session_id"`
	Messages         []ChatMessage `json:"messages"`
	Intent           string        `json:"intent,omitempty"`
	Confidence       float64       `json:"confidence,omitempty"`
	Action           Action        `json:"action"`
	AwaitingFollowUp bool          `json:"awaiting_follow_up"`
}

// CompletionRequest is the LLM backend's request contract.
type CompletionRequest struct {
	Message             string         `json:"message"`
	Context             *ContextData   `json:"context,omitempty"`
	ConversationHistory []HistoryEntry `json:"conversationHistory,omitempty"`
}

type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionResponse is what the LLM backend answers with.
type CompletionResponse struct {
	Content string      `json:"content"`
	Usage   *TokenUsage `json:"usage,omitempty"`
}

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
