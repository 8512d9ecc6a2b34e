package chat

// Message status values as displayed by the client.
const (
	StatusSent      = "sent"
	StatusDelivered = "delivered"
	StatusRead      = "read"
	StatusFailed    = "failed"
)

// Senders of a conversation turn.
const (
	SenderMe    = "me"
	SenderOther = "other"
)

// Attachment references a file carried by a message. Image bytes live in
// the media store under MediaID; only document payloads stay inline.
type Attachment struct {
	Name    string `json:"name"`
	Data    string `json:"data,omitempty"` // Base64, stripped for images
	Type    string `json:"type"`           // "image" or "document"
	Size    int64  `json:"size,omitempty"`
	MediaID string `json:"mediaId,omitempty"`
}

// Message is a single conversation turn. Immutable once appended to a
// chat; status is set at creation and never changes afterwards.
type Message struct {
	ID         string      `json:"id"`
	Text       string      `json:"text"`
	Timestamp  string      `json:"timestamp"`
	Sender     string      `json:"sender"`
	SenderName string      `json:"senderName,omitempty"`
	SenderID   string      `json:"senderId,omitempty"`
	Status     string      `json:"status,omitempty"`
	Attachment *Attachment `json:"attachment,omitempty"`
}
