// Package chat drives the conversational response flows: when a user
// message lands in a chat, it decides which persona(s) reply, invokes
// the text-generation backend, splits the reply into message-sized
// fragments and emits them over time with simulated typing delays.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/adesai/chatwave/backend/internal/model/chat"
	"github.com/adesai/chatwave/backend/internal/model/profile"
	"github.com/adesai/chatwave/backend/internal/service/ai"
	"github.com/adesai/chatwave/backend/internal/store/media"
)

var (
	ErrChatNotFound = errors.New("chat not found")
	ErrNoMembers    = errors.New("group needs at least one persona member")
)

// Notifier receives the updated chat after every state mutation. The
// websocket hub implements it; a nil notifier disables fanout.
type Notifier interface {
	ChatUpdated(chat.Chat)
}

// Deps carries the collaborators for NewService. Sleeper, Now, Rand and
// RequestTimeout are optional and default to production values.
type Deps struct {
	Chats          chat.Store
	Prefs          *profile.Store
	Media          media.Store
	Generator      ai.Generator
	Notifier       Notifier
	Sleeper        Sleeper
	Now            func() time.Time
	Rand           *rand.Rand
	RequestTimeout time.Duration
}

// Service coordinates conversation state and persona responses.
type Service struct {
	chats   chat.Store
	prefs   *profile.Store
	media   media.Store
	gen     ai.Generator
	notify  Notifier
	sleep   Sleeper
	now     func() time.Time
	rng     *rand.Rand
	rngMu   sync.Mutex
	seq     atomic.Int64
	timeout time.Duration
}

// NewService wires the conversation service from its dependencies.
func NewService(deps Deps) *Service {
	s := &Service{
		chats:   deps.Chats,
		prefs:   deps.Prefs,
		media:   deps.Media,
		gen:     deps.Generator,
		notify:  deps.Notifier,
		sleep:   deps.Sleeper,
		now:     deps.Now,
		rng:     deps.Rand,
		timeout: deps.RequestTimeout,
	}
	if s.media == nil {
		s.media = media.NewMemoryStore()
	}
	if s.sleep == nil {
		s.sleep = realSleeper{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.timeout <= 0 {
		s.timeout = 60 * time.Second
	}
	return s
}

// Chats returns a snapshot of all chats, newest first.
func (s *Service) Chats() []chat.Chat {
	return s.chats.List()
}

// Find returns a snapshot of one chat.
func (s *Service) Find(chatID string) (chat.Chat, bool) {
	return s.chats.Find(chatID)
}

// SendMessage appends the user's message to the chat and kicks off the
// persona response flow in the background. Image attachment bytes are
// moved into the media store and replaced by a reference.
func (s *Service) SendMessage(ctx context.Context, chatID, text string, att *chat.Attachment) (chat.Message, error) {
	target, ok := s.chats.Find(chatID)
	if !ok {
		return chat.Message{}, ErrChatNotFound
	}

	ts := s.timestamp()
	att = s.storeAttachment(att)

	userMsg := chat.Message{
		ID:         s.nextMessageID(0),
		Text:       text,
		Sender:     chat.SenderMe,
		Timestamp:  ts,
		Status:     chat.StatusRead,
		Attachment: att,
	}

	updated, ok := s.chats.Update(chatID, func(c chat.Chat) chat.Chat {
		c.Messages = append(c.Messages, userMsg)
		c.LastMessage = messagePreview(text, att)
		c.LastMessageTime = ts
		return c
	})
	if !ok {
		return chat.Message{}, ErrChatNotFound
	}
	s.publish(updated)

	history := updated.Messages
	respCtx := context.WithoutCancel(ctx)
	if target.IsGroup {
		go s.respondGroup(respCtx, updated, history)
	} else {
		go s.respondSingle(respCtx, updated, history)
	}

	return userMsg, nil
}

// MarkRead clears the unread counter when the user opens a chat.
func (s *Service) MarkRead(chatID string) error {
	updated, ok := s.chats.Update(chatID, func(c chat.Chat) chat.Chat {
		c.UnreadCount = 0
		return c
	})
	if !ok {
		return ErrChatNotFound
	}
	s.publish(updated)
	return nil
}

// CreatePersona registers a new persona contact.
func (s *Service) CreatePersona(c chat.Chat) chat.Chat {
	c.ID = uuid.NewString()
	c.IsGroup = false
	c.MemberIDs = nil
	c.Status = chat.StatusOnline
	c.Messages = []chat.Message{}
	c.LastMessage = ""
	c.LastMessageTime = ""
	c.UnreadCount = 0

	s.chats.Insert(c)
	s.publish(c)
	return c
}

// CreateGroup registers a group over existing persona contacts. Unknown
// and group ids are dropped from the member list.
func (s *Service) CreateGroup(name, avatar string, memberIDs []string) (chat.Chat, error) {
	var members []string
	var names []string
	for _, id := range memberIDs {
		persona, ok := s.chats.Find(id)
		if !ok || persona.IsGroup {
			continue
		}
		members = append(members, id)
		names = append(names, persona.Name)
	}
	if len(members) == 0 {
		return chat.Chat{}, ErrNoMembers
	}

	group := chat.Chat{
		ID:              "group-" + uuid.NewString(),
		Name:            name,
		Avatar:          avatar,
		IsGroup:         true,
		MemberIDs:       members,
		LastMessage:     "Group created",
		LastMessageTime: s.timestamp(),
		Messages: []chat.Message{{
			ID:         "init",
			Text:       fmt.Sprintf("Welcome to %s! Members: %s", name, strings.Join(names, ", ")),
			Sender:     chat.SenderOther,
			SenderName: "System",
			Timestamp:  "--",
		}},
	}

	s.chats.Insert(group)
	s.publish(group)
	return group, nil
}

// ClearChat wipes a chat's transcript but keeps the contact.
func (s *Service) ClearChat(chatID string) error {
	updated, ok := s.chats.Update(chatID, func(c chat.Chat) chat.Chat {
		c.Messages = []chat.Message{}
		c.LastMessage = ""
		c.LastMessageTime = ""
		c.UnreadCount = 0
		return c
	})
	if !ok {
		return ErrChatNotFound
	}
	s.publish(updated)
	return nil
}

// DeleteChat removes a chat entirely.
func (s *Service) DeleteChat(chatID string) error {
	if !s.chats.Delete(chatID) {
		return ErrChatNotFound
	}
	return nil
}

func (s *Service) storeAttachment(att *chat.Attachment) *chat.Attachment {
	if att == nil {
		return nil
	}
	stored := *att
	if stored.Type == "image" && stored.Data != "" {
		mediaID := fmt.Sprintf("media-%d", s.now().UnixMilli())
		if err := s.media.Save(mediaID, stored.Data); err != nil {
			// Keep the reference anyway; hydration will simply miss.
			log.Printf("[chat] failed to store media %s: %v", mediaID, err)
		}
		stored.MediaID = mediaID
		stored.Data = ""
	}
	return &stored
}

func messagePreview(text string, att *chat.Attachment) string {
	switch {
	case att != nil && att.Type == "image":
		if text != "" {
			return "📷 Photo: " + text
		}
		return "📷 Photo"
	case att != nil && att.Type == "document":
		if text != "" {
			return "📄 Document: " + text
		}
		return "📄 Document"
	case text == "":
		return "Attachment"
	default:
		return text
	}
}

// timestamp renders the display time the client shows next to messages.
func (s *Service) timestamp() string {
	return s.now().Format("03:04 pm")
}

// nextMessageID combines the clock with a process-wide sequence so ids
// stay unique and ordered even when several fragments land in the same
// millisecond.
func (s *Service) nextMessageID(fragment int) string {
	return fmt.Sprintf("%d-%d-%d", s.now().UnixMilli(), s.seq.Add(1), fragment)
}

func (s *Service) setStatus(chatID, status string) {
	if updated, ok := s.chats.Update(chatID, func(c chat.Chat) chat.Chat {
		c.Status = status
		return c
	}); ok {
		s.publish(updated)
	}
}

func (s *Service) publish(c chat.Chat) {
	if s.notify != nil {
		s.notify.ChatUpdated(c)
	}
}
