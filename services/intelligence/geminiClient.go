// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"innkeeper/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiTimeout bounds every model call; on expiry callers take the canned
// fallback path.
const geminiTimeout = 10 * time.Second

type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiClient{model: model}
}

func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// ClassifyIntent asks the model for one of the fixed intent labels. An
// answer outside the set degrades to inquiry.
func (g *GeminiClient) ClassifyIntent(ctx context.Context, text string) (models.Intent, error) {
	prompt := fmt.Sprintf(`Classify the user intent from this message. Return only one of these:
- booking
- reschedule
- cancel
- inquiry
- greeting

Message: %q
Intent:`, text)

	out, err := g.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	label := strings.ToLower(strings.TrimSpace(out))
	if !models.ValidIntent(label) {
		return models.IntentInquiry, nil
	}
	return models.Intent(label), nil
}

// ExtractJSON prompts for a flat JSON object limited to the given keys.
func (g *GeminiClient) ExtractJSON(ctx context.Context, text string, keys []string) (map[string]string, error) {
	prompt := fmt.Sprintf(`Extract the following fields from this message and return ONLY a JSON object with exactly these keys: %s.
Use null for any field that is not present. Do not add commentary.

Message: %q
JSON:`, strings.Join(keys, ", "), text)

	out, err := g.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(stripCodeFences(out)), &raw); err != nil {
		return nil, fmt.Errorf("gemini extraction parse error: %w", err)
	}

	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			fields[k] = s
		}
	}
	return fields, nil
}

// stripCodeFences removes the markdown fencing Gemini wraps JSON answers in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
