// Package ai implements the text-generation backend collaborator. Two
// providers are available: the Ark chat model behind an eino chain, and
// the Gemini API. Both consume the same Request and return one plain
// text reply.
package ai

import (
	"context"
	"time"

	"github.com/adesai/chatwave/backend/internal/model/profile"
)

// Generator produces a persona's reply text for one response cycle.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Responder carries the persona identity fields that shape the reply.
type Responder struct {
	Name              string
	About             string
	Role              string
	SpeechStyle       string
	SystemInstruction string
}

// Turn is one history entry with attachment bytes already hydrated.
type Turn struct {
	Text       string
	Sender     string
	SenderName string
	ImageData  string // Base64 payload, optionally with a data-URL prefix
}

// GroupContext tells the persona it is replying inside a group.
type GroupContext struct {
	GroupName    string
	OtherMembers []string
}

// Request is the full input for one backend call. User and Group are
// optional; Model overrides the provider default when set (the Ark
// provider pins its model at startup and ignores it).
type Request struct {
	Responder     Responder
	History       []Turn
	User          *profile.UserProfile
	Group         *GroupContext
	Model         string
	ShareTime     bool
	CalendarNotes string
	Now           time.Time
}
