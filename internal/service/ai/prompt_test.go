package ai

import (
	"strings"
	"testing"
	"time"

	"github.com/adesai/chatwave/backend/internal/model/profile"
)

func baseRequest() Request {
	return Request{
		Responder: Responder{
			Name:        "Tom",
			About:       "Old friend from college",
			Role:        "Best Friend",
			SpeechStyle: "Casual, lots of slang",
		},
		History: []Turn{
			{Text: "hey, you around?", Sender: "me"},
			{Text: "yeah what's up", Sender: "other"},
		},
	}
}

func TestBuildSystemPromptIdentity(t *testing.T) {
	got := buildSystemPrompt(baseRequest())

	for _, want := range []string{
		"You are Tom.",
		"YOUR IDENTITY:",
		"About you: Old friend from college",
		"Your Role: Best Friend",
		"Your Speech Style: Casual, lots of slang",
		"Do not use AI clichés",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "GROUP CHAT CONTEXT") {
		t.Error("group block present for a one-on-one request")
	}
	if strings.Contains(got, "USER INFORMATION") {
		t.Error("user block present without a shared profile")
	}
}

func TestBuildSystemPromptOmitsEmptyIdentityFields(t *testing.T) {
	req := Request{Responder: Responder{Name: "Tom"}}
	got := buildSystemPrompt(req)
	for _, absent := range []string{"About you:", "Your Role:", "Your Speech Style:", "Your Persona Guidelines:"} {
		if strings.Contains(got, absent) {
			t.Errorf("empty field rendered: %q", absent)
		}
	}
}

func TestBuildSystemPromptGroupAndUserBlocks(t *testing.T) {
	req := baseRequest()
	req.Group = &GroupContext{GroupName: "Family ❤️", OtherMembers: []string{"Mom", "Dad"}}
	req.User = &profile.UserProfile{Name: "Alice", About: "Coffee person", Status: "Available"}

	got := buildSystemPrompt(req)
	if !strings.Contains(got, `group chat called "Family ❤️"`) {
		t.Errorf("group name missing:\n%s", got)
	}
	if !strings.Contains(got, "Other active participants in this chat include: Mom, Dad.") {
		t.Errorf("member list missing:\n%s", got)
	}
	if !strings.Contains(got, "Name: Alice") || !strings.Contains(got, "About: Coffee person") {
		t.Errorf("user block incomplete:\n%s", got)
	}
}

func TestBuildSystemPromptContextBlock(t *testing.T) {
	req := baseRequest()
	req.ShareTime = true
	req.Now = time.Date(2024, time.March, 4, 15, 4, 0, 0, time.UTC)
	req.CalendarNotes = "Dentist at 5pm"

	got := buildSystemPrompt(req)
	if !strings.Contains(got, "Current local time: Monday, Mar 4, 03:04 pm") {
		t.Errorf("time line missing or wrong:\n%s", got)
	}
	if !strings.Contains(got, "The user's calendar notes:\nDentist at 5pm") {
		t.Errorf("calendar notes missing:\n%s", got)
	}

	req.ShareTime = false
	req.CalendarNotes = "   "
	if got := buildSystemPrompt(req); strings.Contains(got, "CURRENT CONTEXT") {
		t.Errorf("context block rendered with nothing to show:\n%s", got)
	}
}

func TestBuildTranscriptNames(t *testing.T) {
	req := baseRequest()
	req.User = &profile.UserProfile{Name: "Alice"}
	req.History = []Turn{
		{Text: "hello everyone", Sender: "me"},
		{Text: "hey!", Sender: "other", SenderName: "Mom"},
		{Text: "sup", Sender: "other"},
	}

	got := buildTranscript(req)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), got)
	}
	if lines[0] != "Alice: hello everyone" {
		t.Errorf("user turn should use the shared name, got %q", lines[0])
	}
	if lines[1] != "Mom: hey!" {
		t.Errorf("group turn should use the sender name, got %q", lines[1])
	}
	if lines[2] != "Tom: sup" {
		t.Errorf("unattributed turn should fall back to the responder, got %q", lines[2])
	}
}

func TestBuildTranscriptTagsImages(t *testing.T) {
	req := baseRequest()
	req.History = []Turn{
		{Text: "look", Sender: "me", ImageData: "abc"},
	}
	got := buildTranscript(req)
	if !strings.Contains(got, "[IMAGE ATTACHED] look") {
		t.Errorf("image tag missing: %q", got)
	}
}

func TestBuildPromptCloser(t *testing.T) {
	got := buildPrompt(baseRequest())
	if !strings.HasSuffix(got, "Response as Tom:") {
		t.Errorf("prompt should end with the responder closer:\n%s", got)
	}
	if !strings.Contains(got, "Conversation History:") {
		t.Errorf("transcript section missing:\n%s", got)
	}
}

func TestLatestImageWindow(t *testing.T) {
	history := []Turn{
		{Text: "a", ImageData: "old"},
		{Text: "b"},
		{Text: "c"},
		{Text: "d"},
	}
	if idx := latestImage(history); idx != -1 {
		t.Errorf("image outside the window should be ignored, got %d", idx)
	}

	history[2].ImageData = "mid"
	history[3].ImageData = "new"
	if idx := latestImage(history); idx != 3 {
		t.Errorf("most recent image should win, got %d", idx)
	}

	if idx := latestImage(nil); idx != -1 {
		t.Errorf("empty history should have no image, got %d", idx)
	}
}

func TestStripDataURL(t *testing.T) {
	if got := stripDataURL("data:image/jpeg;base64,abc123"); got != "abc123" {
		t.Errorf("prefix not stripped: %q", got)
	}
	if got := stripDataURL("abc123"); got != "abc123" {
		t.Errorf("bare payload mangled: %q", got)
	}
	if got := stripDataURL("abc,123"); got != "abc,123" {
		t.Errorf("comma without data: prefix should be left alone: %q", got)
	}
}
