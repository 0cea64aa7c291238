// Package chat manages conversation logs between the local user and
// marketplace counterparties, including the prototype's simulated
// counterparty replies.
package chat

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangtien79/FunBuyPlace/internal/entity"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/logger"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/metrics"
)

// ErrSessionClosed is returned by sends on a closed session.
var ErrSessionClosed = errors.New("chat session is closed")

const (
	defaultReplyDelay       = 2 * time.Second
	defaultReplyText        = "Sure! I'm available this weekend. Would Saturday afternoon work for you?"
	defaultMaxMessageLength = 500
)

// Config drives the simulated counterparty.
type Config struct {
	ReplyDelay       time.Duration
	ReplyText        string
	MaxMessageLength int
}

// ConversationRepository is the slice of the conversation store the
// chat service needs.
type ConversationRepository interface {
	Get(ctx context.Context, id string) (entity.Conversation, error)
	Update(ctx context.Context, id string, mutate func(*entity.Conversation)) (entity.Conversation, error)
	All(ctx context.Context) iter.Seq[entity.Conversation]
}

// Service opens sessions over conversation records and lists the
// inbox.
type Service struct {
	repo    ConversationRepository
	cfg     Config
	logger  *logger.Logger
	metrics *metrics.Manager
}

func NewService(repo ConversationRepository, cfg Config, log *logger.Logger, m *metrics.Manager) *Service {
	if cfg.ReplyDelay <= 0 {
		cfg.ReplyDelay = defaultReplyDelay
	}
	if cfg.ReplyText == "" {
		cfg.ReplyText = defaultReplyText
	}
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = defaultMaxMessageLength
	}
	return &Service{repo: repo, cfg: cfg, logger: log, metrics: m}
}

// Summary is one inbox row.
type Summary struct {
	ConversationID   string
	CounterpartyID   string
	CounterpartyName string
	Avatar           string
	Online           bool
	UnreadCount      int
	LastMessage      entity.Message
	HasMessages      bool
}

// Inbox lists all conversations with their last-message preview, in
// store order.
func (s *Service) Inbox(ctx context.Context) []Summary {
	var out []Summary
	for conversation := range s.repo.All(ctx) {
		summary := Summary{
			ConversationID:   conversation.ID,
			CounterpartyID:   conversation.CounterpartyID,
			CounterpartyName: conversation.CounterpartyName,
			Avatar:           conversation.Avatar,
			Online:           conversation.Online,
			UnreadCount:      conversation.UnreadCount,
		}
		summary.LastMessage, summary.HasMessages = conversation.LastMessage()
		out = append(out, summary)
	}
	return out
}

// Open starts a session over the conversation and clears its unread
// count. The returned session must be closed when the user navigates
// away, otherwise a pending reply timer could mutate a thread nobody is
// looking at.
func (s *Service) Open(ctx context.Context, conversationID string) (*Session, error) {
	conversation, err := s.repo.Update(ctx, conversationID, func(c *entity.Conversation) {
		c.UnreadCount = 0
	})
	if err != nil {
		return nil, fmt.Errorf("chat.Open: %w", err)
	}

	session := &Session{
		id:             uuid.NewString(),
		conversationID: conversationID,
		svc:            s,
		seq:            len(conversation.Messages),
	}
	if last, ok := conversation.LastMessage(); ok {
		session.lastStamp = last.Timestamp
	}

	s.logger.Debug("chat session opened",
		zap.String("session_id", session.id),
		zap.String("conversation_id", conversationID),
		zap.Int("messages", len(conversation.Messages)))
	return session, nil
}
