package chat

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/hoangtien79/FunBuyPlace/internal/entity"
)

// Session is an open view onto one conversation. Sends append to the
// shared log and schedule one simulated counterparty reply each; Close
// cancels whatever replies are still pending so a torn-down screen is
// never mutated.
type Session struct {
	id             string
	conversationID string
	svc            *Service

	mu        sync.Mutex
	seq       int
	lastStamp time.Time
	timers    []*time.Timer
	closed    bool
}

// ID returns the session handle, used for log correlation.
func (s *Session) ID() string {
	return s.id
}

// Send validates and appends a message from the local user, then
// schedules the simulated reply. The text is rejected before trimming
// when it exceeds the configured maximum length, and after trimming
// when nothing remains.
func (s *Session) Send(ctx context.Context, text string) (entity.Message, error) {
	if utf8.RuneCountInString(text) > s.svc.cfg.MaxMessageLength {
		return entity.Message{}, entity.ErrMessageTooLong
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return entity.Message{}, entity.ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return entity.Message{}, ErrSessionClosed
	}

	message, err := s.appendLocked(ctx, trimmed, true)
	if err != nil {
		return entity.Message{}, err
	}

	timer := time.AfterFunc(s.svc.cfg.ReplyDelay, s.deliverReply)
	s.timers = append(s.timers, timer)

	s.svc.metrics.RecordMessageSent()
	s.svc.logger.Debug("message sent",
		zap.String("session_id", s.id),
		zap.String("conversation_id", s.conversationID),
		zap.String("message_id", message.ID))
	return message, nil
}

// History returns an ordered copy of the conversation log.
func (s *Session) History(ctx context.Context) ([]entity.Message, error) {
	conversation, err := s.svc.repo.Get(ctx, s.conversationID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Message, len(conversation.Messages))
	copy(out, conversation.Messages)
	return out, nil
}

// Close tears the session down and cancels pending reply timers.
// Closing twice is harmless.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for _, timer := range s.timers {
		timer.Stop()
	}
	s.timers = nil

	s.svc.logger.Debug("chat session closed", zap.String("session_id", s.id))
}

// deliverReply fires from a reply timer. A session closed between
// scheduling and firing swallows the reply.
func (s *Session) deliverReply() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	message, err := s.appendLocked(context.Background(), s.svc.cfg.ReplyText, false)
	if err != nil {
		s.svc.logger.Error("simulated reply append failed",
			zap.String("session_id", s.id),
			zap.String("conversation_id", s.conversationID),
			zap.Error(err))
		return
	}

	s.svc.metrics.RecordReplyDelivered()
	s.svc.logger.Debug("simulated reply delivered",
		zap.String("session_id", s.id),
		zap.String("message_id", message.ID))
}

// appendLocked assigns the next id and a non-decreasing timestamp and
// appends to the conversation. Caller holds s.mu.
func (s *Session) appendLocked(ctx context.Context, text string, fromMe bool) (entity.Message, error) {
	now := time.Now()
	if now.Before(s.lastStamp) {
		now = s.lastStamp
	}
	s.lastStamp = now
	s.seq++

	message := entity.Message{
		ID:        strconv.Itoa(s.seq),
		Text:      text,
		Timestamp: now,
		IsFromMe:  fromMe,
	}

	if _, err := s.svc.repo.Update(ctx, s.conversationID, func(c *entity.Conversation) {
		c.Messages = append(c.Messages, message)
	}); err != nil {
		s.seq--
		return entity.Message{}, err
	}
	return message, nil
}
