package ai

import (
	"fmt"
	"strings"
)

// recentImageWindow bounds how far back an attached image may sit and
// still be forwarded to the backend. Only the most recent image inside
// the window wins; older ones are represented by their transcript tag.
const recentImageWindow = 3

// buildSystemPrompt assembles the persona identity, group, user and
// time/notes context blocks plus the behavioral instructions. The
// conversation itself is delivered separately (as chat-model history or
// as a flattened transcript, depending on the provider).
func buildSystemPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s.\n", req.Responder.Name)
	b.WriteString(identityBlock(req.Responder))

	if req.Group != nil {
		b.WriteString("\n")
		b.WriteString(groupBlock(req.Group))
	}

	if req.User != nil {
		b.WriteString("\n")
		fmt.Fprintf(&b, "USER INFORMATION (The person you are chatting with):\nName: %s\nAbout: %s\nCurrent Status: %s\n",
			req.User.Name, req.User.About, req.User.Status)
	}

	if ctxBlock := contextBlock(req); ctxBlock != "" {
		b.WriteString("\n")
		b.WriteString(ctxBlock)
	}

	b.WriteString(`
Instructions:
1. Respond naturally to the last few messages.
2. If the user sent an image, look at it and comment on it specifically using the provided caption (if any).
3. If in a group, you don't always have to talk to the user; you can reply to another member's comment.
4. Keep it short (1-3 sentences), typical for chat apps.
5. Maintain your unique personality and speech style at all times.
6. Do not use AI clichés or reveal you are an AI.
`)

	return b.String()
}

func identityBlock(r Responder) string {
	lines := []string{
		"YOUR IDENTITY:",
		"Name: " + r.Name,
	}
	if r.About != "" {
		lines = append(lines, "About you: "+r.About)
	}
	if r.Role != "" {
		lines = append(lines, "Your Role: "+r.Role)
	}
	if r.SpeechStyle != "" {
		lines = append(lines, "Your Speech Style: "+r.SpeechStyle)
	}
	if r.SystemInstruction != "" {
		lines = append(lines, "Your Persona Guidelines: "+r.SystemInstruction)
	}
	return strings.Join(lines, "\n") + "\n"
}

func groupBlock(g *GroupContext) string {
	return fmt.Sprintf(`GROUP CHAT CONTEXT:
This is a group chat called %q.
Other active participants in this chat include: %s.
You should interact naturally with BOTH the User and the other AI personas in the thread.
Subtly acknowledge what others have said. Keep the conversation flowing.
`, g.GroupName, strings.Join(g.OtherMembers, ", "))
}

func contextBlock(req Request) string {
	var lines []string
	if req.ShareTime && !req.Now.IsZero() {
		lines = append(lines, "Current local time: "+req.Now.Format("Monday, Jan 2, 03:04 pm"))
	}
	if notes := strings.TrimSpace(req.CalendarNotes); notes != "" {
		lines = append(lines, "The user's calendar notes:\n"+notes)
	}
	if len(lines) == 0 {
		return ""
	}
	return "CURRENT CONTEXT:\n" + strings.Join(lines, "\n") + "\n"
}

// buildTranscript flattens the history into "Name: text" lines, tagging
// turns that carried an image.
func buildTranscript(req Request) string {
	lines := make([]string, 0, len(req.History))
	for _, turn := range req.History {
		name := displayName(turn, req)
		imgTag := ""
		if turn.ImageData != "" {
			imgTag = "[IMAGE ATTACHED] "
		}
		lines = append(lines, strings.TrimSpace(fmt.Sprintf("%s: %s%s", name, imgTag, turn.Text)))
	}
	return strings.Join(lines, "\n")
}

// buildPrompt is the single-string form used by the Gemini provider:
// system blocks, transcript and the "Response as X:" closer.
func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(buildSystemPrompt(req))
	b.WriteString("\nConversation History:\n")
	b.WriteString(buildTranscript(req))
	fmt.Fprintf(&b, "\n\nResponse as %s:", req.Responder.Name)
	return b.String()
}

func displayName(turn Turn, req Request) string {
	if turn.Sender == "me" {
		if req.User != nil && req.User.Name != "" {
			return req.User.Name
		}
		return "User"
	}
	if turn.SenderName != "" {
		return turn.SenderName
	}
	return req.Responder.Name
}

// latestImage returns the index of the most recent image-bearing turn
// within the recent window, or -1 when none qualifies.
func latestImage(history []Turn) int {
	start := len(history) - recentImageWindow
	if start < 0 {
		start = 0
	}
	for i := len(history) - 1; i >= start; i-- {
		if history[i].ImageData != "" {
			return i
		}
	}
	return -1
}

// stripDataURL drops a "data:image/...;base64," prefix if present.
func stripDataURL(data string) string {
	if idx := strings.Index(data, ","); idx >= 0 && strings.HasPrefix(data, "data:") {
		return data[idx+1:]
	}
	return data
}
