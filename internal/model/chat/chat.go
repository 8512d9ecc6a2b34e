package chat

// Presence values shown in the chat header. A chat flips to
// StatusTyping while a persona composes a reply and always returns to
// StatusOnline afterwards, error paths included.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusTyping  = "typing..."
)

// Chat is either a single persona contact or a group of personas. The
// persona fields (Role, SpeechStyle, About, SystemInstruction) feed the
// responder prompt and are unused for groups; MemberIDs is set only for
// groups and references non-group chats.
type Chat struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Avatar            string    `json:"avatar"`
	LastMessage       string    `json:"lastMessage"`
	LastMessageTime   string    `json:"lastMessageTime"`
	UnreadCount       int       `json:"unreadCount,omitempty"`
	Status            string    `json:"status,omitempty"`
	Messages          []Message `json:"messages"`
	About             string    `json:"about,omitempty"`
	Role              string    `json:"role,omitempty"`
	SpeechStyle       string    `json:"speechStyle,omitempty"`
	SystemInstruction string    `json:"systemInstruction,omitempty"`
	IsGroup           bool      `json:"isGroup,omitempty"`
	MemberIDs         []string  `json:"memberIds,omitempty"`
}

// Clone returns a copy whose slices do not alias the receiver's. Chats
// handed out by the store are always clones so callers can only write
// back through Store.Update.
func (c Chat) Clone() Chat {
	out := c
	out.Messages = append([]Message(nil), c.Messages...)
	out.MemberIDs = append([]string(nil), c.MemberIDs...)
	return out
}
