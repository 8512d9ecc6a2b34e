package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"google.golang.org/genai"

	"github.com/adesai/chatwave/backend/internal/config"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiService generates replies through the Gemini API. Unlike the Ark
// provider it honors a per-request model override, so the app settings
// can switch models without a restart.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService creates the Gemini-backed generator.
func NewGeminiService(ctx context.Context, cfg config.AIConfig) (*GeminiService, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.GeminiAPIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiService{client: client, model: model}, nil
}

// Generate flattens the request into one prompt, attaches at most one
// recent image, and returns the reply text.
func (s *GeminiService) Generate(ctx context.Context, req Request) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(buildPrompt(req))}

	if idx := latestImage(req.History); idx >= 0 {
		raw, err := base64.StdEncoding.DecodeString(stripDataURL(req.History[idx].ImageData))
		if err != nil {
			log.Printf("[ai] skipping undecodable image payload: %v", err)
		} else {
			parts = append(parts, genai.NewPartFromBytes(raw, "image/jpeg"))
		}
	}

	model := req.Model
	if model == "" {
		model = s.model
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := s.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	log.Printf("[ai] generated response for persona=%s, length=%d", req.Responder.Name, len(text))
	return text, nil
}
