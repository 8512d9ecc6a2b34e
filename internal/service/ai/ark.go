package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/adesai/chatwave/backend/internal/config"
)

// ArkService generates replies through an Ark chat model wired into an
// eino chain: system prompt, conversation history, then the reply cue.
type ArkService struct {
	chatModel model.ChatModel
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewArkService creates the Ark-backed generator.
func NewArkService(ctx context.Context, cfg config.AIConfig) (*ArkService, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &ArkService{chatModel: chatModel, chain: runnable}, nil
}

// Generate runs the chain once and returns the reply text.
func (s *ArkService) Generate(ctx context.Context, req Request) (string, error) {
	input := map[string]any{
		"system":  buildSystemPrompt(req),
		"history": buildHistoryMessages(req),
		"query":   fmt.Sprintf("Response as %s:", req.Responder.Name),
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run AI chain: %w", err)
	}

	log.Printf("[ai] generated response for persona=%s, length=%d", req.Responder.Name, len(response.Content))
	return response.Content, nil
}

// buildHistoryMessages converts hydrated turns into chat-model messages.
// Turns by other group personas keep their name as an inline prefix so
// the model can tell speakers apart; the most recent in-window image
// rides along as a multimodal part.
func buildHistoryMessages(req Request) []*schema.Message {
	if len(req.History) == 0 {
		return nil
	}

	imageIdx := latestImage(req.History)

	history := make([]*schema.Message, 0, len(req.History))
	for i, turn := range req.History {
		content := turn.Text
		role := schema.Assistant
		if turn.Sender == "me" {
			role = schema.User
		} else if turn.SenderName != "" && turn.SenderName != req.Responder.Name {
			content = fmt.Sprintf("%s: %s", turn.SenderName, turn.Text)
		}

		if i == imageIdx {
			history = append(history, &schema.Message{
				Role: role,
				MultiContent: []schema.ChatMessagePart{
					{Type: schema.ChatMessagePartTypeText, Text: content},
					{
						Type: schema.ChatMessagePartTypeImageURL,
						ImageURL: &schema.ChatMessageImageURL{
							URL:      asDataURL(turn.ImageData),
							MIMEType: "image/jpeg",
						},
					},
				},
			})
			continue
		}

		switch role {
		case schema.User:
			history = append(history, schema.UserMessage(content))
		default:
			history = append(history, schema.AssistantMessage(content, nil))
		}
	}

	return history
}

func asDataURL(data string) string {
	if strings.HasPrefix(data, "data:") {
		return data
	}
	return "data:image/jpeg;base64," + data
}
