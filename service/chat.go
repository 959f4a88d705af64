package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crm-assistant/internal/llmclient"
	"crm-assistant/model"
	"crm-assistant/service/responses"
	"crm-assistant/utils"
)

// ActionAskAI is the explicit "ask the AI" control of the widget.
const ActionAskAI = "ask_ai"

// User-facing apology strings, one per LLM failure category. The widget
// shows these verbatim, so they are fixed.
const (
	apologyAuth        = "Lo siento, no pude autenticarme con el servicio de IA. Por favor avisa a tu administrador."
	apologyRateLimit   = "Lo siento, el servicio de IA está recibiendo demasiadas solicitudes. Inténtalo de nuevo en unos minutos."
	apologyUnavailable = "Lo siento, el servicio de IA no está disponible en este momento."
	apologyNetwork     = "Lo siento, no pude conectarme con el servicio de IA. Revisa tu conexión e inténtalo otra vez."
	apologyUnknown     = "Lo siento, ocurrió un error inesperado al consultar la IA."
)

const (
	inviteText     = "¡Claro! ¿Qué te gustaría preguntarle a la IA?"
	moreDetailText = "¿Puedes darme un poco más de detalle? Con un mensaje tan corto no puedo consultar a la IA."
)

// LLMClient is the slice of the LLM backend the controller needs.
type LLMClient interface {
	Complete(ctx context.Context, req model.CompletionRequest) (*model.CompletionResponse, error)
}

// SessionStore persists one session per open chat window.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, sessionID string) error
}

// ChatService is the per-turn controller: it classifies the message,
// drives the Idle/AwaitingFollowUp state machine and converts every LLM
// failure into a chat message. It never returns an error for an LLM
// failure, only for storage problems.
type ChatService struct {
	llm        LLMClient
	store      SessionStore
	classifier *Classifier
	logger     *zap.Logger

	mu       sync.Mutex
	inflight map[string]context.CancelFunc
}

func NewChatService(llm LLMClient, store SessionStore, classifier *Classifier, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		llm:        llm,
		store:      store,
		classifier: classifier,
		logger:     logger,
		inflight:   make(map[string]context.CancelFunc),
	}
}

// HandleMessage processes one user turn: appends the user message, picks
// the routing path and appends the assistant replies it produced.
func (s *ChatService) HandleMessage(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error) {
	sess, err := s.loadOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if req.Context != nil {
		sess.Context = req.Context
	}

	userText := req.Message
	if userText == "" && req.Action == ActionAskAI {
		userText = "Preguntar a la IA"
	}
	s.appendMessage(sess, model.SenderUser, model.Reply{Text: userText})

	resp := &model.ChatResponse{SessionID: sess.ID}

	switch {
	case sess.AwaitingFollowUp:
		resp.Action = model.ActionRouteLLM
		s.handleFollowUp(ctx, sess, userText, resp)

	default:
		result := s.classifier.Classify(userText)
		resp.Intent = result.Intent
		resp.Confidence = result.Confidence
		resp.Action = result.Action

		if req.Action == ActionAskAI || result.Action == model.ActionRouteLLM {
			resp.Action = model.ActionRouteLLM
			s.handleAskAI(sess, resp)
			break
		}

		if result.Action == model.ActionShowMenu {
			s.emit(sess, resp, responses.Menu())
			break
		}

		s.emit(sess, resp, responderFor(sess)(sess, userText))
	}

	sess.UpdatedAt = time.Now().Format(time.RFC3339Nano)
	if err := s.store.Save(ctx, sess); err != nil {
		s.logger.Error("save session", zap.String("session_id", sess.ID), zap.Error(err))
		return nil, err
	}

	resp.AwaitingFollowUp = sess.AwaitingFollowUp
	s.logger.Info("turn handled",
		zap.String("session_id", sess.ID),
		zap.String("intent", resp.Intent),
		zap.Float64("confidence", resp.Confidence),
		zap.String("action", string(resp.Action)))

	return resp, nil
}

// handleAskAI arms the follow-up flag and invites the question. The LLM is
// only called on the follow-up turn.
func (s *ChatService) handleAskAI(sess *model.Session, resp *model.ChatResponse) {
	sess.AwaitingFollowUp = true
	s.emit(sess, resp, []model.Reply{{Text: inviteText}})
}

// handleFollowUp consumes the follow-up flag: the message goes to the LLM
// whatever it classifies as, unless it is too short to mean anything.
func (s *ChatService) handleFollowUp(ctx context.Context, sess *model.Session, text string, resp *model.ChatResponse) {
	if utils.RuneLen(utils.Normalize(text)) <= minQueryRunes {
		// Stay armed; do not burn the follow-up on noise.
		s.emit(sess, resp, []model.Reply{{Text: moreDetailText}})
		return
	}

	answer, err := s.callLLM(ctx, sess, text)
	sess.AwaitingFollowUp = false

	if err != nil {
		s.logger.Warn("llm call failed", zap.String("session_id", sess.ID), zap.Error(err))
		s.emit(sess, resp, s.degradedReplies(sess, err))
		return
	}

	s.emit(sess, resp, []model.Reply{{Text: answer}})
}

// callLLM runs the external call with a cancel hook registered so
// ClearSession can abandon it.
func (s *ChatService) callLLM(ctx context.Context, sess *model.Session, text string) (string, error) {
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.inflight[sess.ID] = cancel
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inflight, sess.ID)
		s.mu.Unlock()
	}()

	completion, err := s.llm.Complete(callCtx, model.CompletionRequest{
		Message:             text,
		Context:             sess.Context,
		ConversationHistory: history(sess),
	})
	if err != nil {
		return "", err
	}
	return completion.Content, nil
}

// degradedReplies builds the apology for a failed LLM call, plus a local
// arithmetic fallback when the screen context carries deals.
func (s *ChatService) degradedReplies(sess *model.Session, err error) []model.Reply {
	text := apologyFor(err)
	if fallback := responses.FallbackAnswer(sess.Context); fallback != "" {
		text += " " + fallback
	}
	return []model.Reply{{Text: text}}
}

func apologyFor(err error) string {
	switch {
	case errors.Is(err, llmclient.ErrUnauthorized):
		return apologyAuth
	case errors.Is(err, llmclient.ErrRateLimited):
		return apologyRateLimit
	case errors.Is(err, llmclient.ErrUnavailable):
		return apologyUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apologyNetwork
	case errors.Is(err, llmclient.ErrBadResponse):
		return apologyUnknown
	default:
		return apologyNetwork
	}
}

// ClearSession cancels any in-flight LLM call and drops the message log.
func (s *ChatService) ClearSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	if cancel, ok := s.inflight[sessionID]; ok {
		cancel()
		delete(s.inflight, sessionID)
	}
	s.mu.Unlock()

	return s.store.Delete(ctx, sessionID)
}

// History returns the session as stored, nil when it does not exist.
func (s *ChatService) History(ctx context.Context, sessionID string) (*model.Session, error) {
	return s.store.Get(ctx, sessionID)
}

func (s *ChatService) loadOrCreate(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID != "" {
		sess, err := s.store.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if sess != nil {
			return sess, nil
		}
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	now := time.Now().Format(time.RFC3339Nano)
	return &model.Session{
		ID:        sessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// emit appends staged assistant replies to the log and to the turn's
// response, preserving order; delays ride along as metadata.
func (s *ChatService) emit(sess *model.Session, resp *model.ChatResponse, replies []model.Reply) {
	for _, reply := range replies {
		msg := s.appendMessage(sess, model.SenderAssistant, reply)
		resp.Messages = append(resp.Messages, msg)
	}
}

func (s *ChatService) appendMessage(sess *model.Session, sender model.Sender, reply model.Reply) model.ChatMessage {
	msg := model.ChatMessage{
		ID:        uuid.New().String(),
		Text:      reply.Text,
		Sender:    sender,
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Buttons:   reply.Buttons,
		DelayMs:   reply.DelayMs,
	}
	sess.Messages = append(sess.Messages, msg)
	return msg
}

func history(sess *model.Session) []model.HistoryEntry {
	entries := make([]model.HistoryEntry, 0, len(sess.Messages))
	for _, msg := range sess.Messages {
		role := "user"
		if msg.Sender == model.SenderAssistant {
			role = "assistant"
		}
		entries = append(entries, model.HistoryEntry{Role: role, Content: msg.Text})
	}
	return entries
}
