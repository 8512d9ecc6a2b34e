package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/adesai/chatwave/backend/internal/model/chat"
	"github.com/adesai/chatwave/backend/internal/model/profile"
	"github.com/adesai/chatwave/backend/internal/service/ai"
)

// emptyReplyPlaceholder stands in for a blank backend response so the
// user always perceives a reply attempt.
const emptyReplyPlaceholder = "..."

func (s *Service) respondSingle(ctx context.Context, target chat.Chat, history []chat.Message) {
	err := s.respondAs(ctx, target.ID, target, history, nil, singleChatTiming, nil)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[chat] response for chat=%s failed: %v", target.ID, err)
	}
}

// respondAs runs one persona's full turn against targetID: typing
// status, backend call, chunking, timed fragment emission. The chat's
// status is back at online when it returns, on every path. onEmit
// observes each appended message in emission order.
func (s *Service) respondAs(ctx context.Context, targetID string, persona chat.Chat, history []chat.Message, group *ai.GroupContext, timing timingProfile, onEmit func(chat.Message)) error {
	s.setStatus(targetID, chat.StatusTyping)
	defer s.setStatus(targetID, chat.StatusOnline)

	if s.gen == nil {
		return errors.New("no text generator configured")
	}

	settings := s.prefs.Settings()
	var user *profile.UserProfile
	if settings.ShareUserInfo {
		u := s.prefs.Profile()
		user = &u
	}

	req := ai.Request{
		Responder: ai.Responder{
			Name:              persona.Name,
			About:             persona.About,
			Role:              persona.Role,
			SpeechStyle:       persona.SpeechStyle,
			SystemInstruction: persona.SystemInstruction,
		},
		History:       s.hydrateHistory(history),
		User:          user,
		Group:         group,
		Model:         settings.Model,
		ShareTime:     settings.ShareTime,
		CalendarNotes: settings.CalendarNotes,
		Now:           s.now(),
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	text, err := s.gen.Generate(genCtx, req)
	if err != nil {
		return fmt.Errorf("generate reply: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		text = emptyReplyPlaceholder
	}

	chunks := SplitMessage(text)
	for i, chunk := range chunks {
		s.setStatus(targetID, chat.StatusTyping)
		if err := s.sleep.Sleep(ctx, timing.typingDelay(len(chunk))); err != nil {
			return err
		}

		ts := s.timestamp()
		msg := chat.Message{
			ID:        s.nextMessageID(i),
			Text:      chunk,
			Sender:    chat.SenderOther,
			Timestamp: ts,
			Status:    chat.StatusDelivered,
		}
		preview := chunk
		if group != nil {
			msg.SenderID = persona.ID
			msg.SenderName = persona.Name
			preview = persona.Name + ": " + chunk
		}

		updated, ok := s.chats.Update(targetID, func(c chat.Chat) chat.Chat {
			c.Messages = append(c.Messages, msg)
			c.LastMessage = preview
			c.LastMessageTime = ts
			c.UnreadCount++
			return c
		})
		if !ok {
			return ErrChatNotFound
		}
		s.publish(updated)
		if onEmit != nil {
			onEmit(msg)
		}

		if i < len(chunks)-1 {
			s.setStatus(targetID, chat.StatusOnline)
			if err := s.sleep.Sleep(ctx, timing.sendPause); err != nil {
				return err
			}
		}
	}

	return nil
}

// hydrateHistory converts stored messages to backend turns, pulling
// image bytes back out of the media store for entries that only carry a
// reference.
func (s *Service) hydrateHistory(history []chat.Message) []ai.Turn {
	turns := make([]ai.Turn, 0, len(history))
	for _, m := range history {
		turn := ai.Turn{Text: m.Text, Sender: m.Sender, SenderName: m.SenderName}
		if m.Attachment != nil {
			switch {
			case m.Attachment.MediaID != "":
				if data, ok := s.media.Get(m.Attachment.MediaID); ok {
					turn.ImageData = data
				}
			case m.Attachment.Type == "image" && m.Attachment.Data != "":
				turn.ImageData = m.Attachment.Data
			}
		}
		turns = append(turns, turn)
	}
	return turns
}
