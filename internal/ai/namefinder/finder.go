// Package namefinder runs a person-name entity pass over resume header text.
// It stands in for a statistical NER model: the contact extractor prefers its
// answer and falls back to line heuristics when it is unavailable or empty.
package namefinder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared/constant"
)

// NameFinder finds the candidate's name in the leading resume text.
type NameFinder struct {
	client *openai.Client
}

// NewNameFinder creates a finder backed by the OpenAI API.
func NewNameFinder(apiKey string) *NameFinder {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &NameFinder{
		client: &client,
	}
}

type nameResult struct {
	Name string `json:"name"`
}

// PersonName extracts the person's full name from the given text snippet.
// Returns an empty string when no person name is present.
func (f *NameFinder) PersonName(ctx context.Context, text string) (string, error) {
	systemPrompt := `You are a named-entity recognizer. Find the full name of the person this resume belongs to and return ONLY valid JSON.`

	userPrompt := fmt.Sprintf(`Return the person's full name from this resume header as {"name": string}. Use an empty string if no person name appears.

%s`, text)

	completion, err := f.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model: "gpt-4o-mini",
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		},
		Temperature: openai.Float(0),
		MaxTokens:   openai.Int(100),
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no response from openai")
	}

	var result nameResult
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &result); err != nil {
		return "", fmt.Errorf("failed to parse name JSON: %w", err)
	}

	return strings.TrimSpace(result.Name), nil
}
