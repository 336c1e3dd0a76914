package adkclient

import (
	"context"
	"fmt"

	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"
)

// NewGeminiModel uses the Gemini API when apiKey is set and Gemini on
// Vertex AI otherwise.
func NewGeminiModel(ctx context.Context, name, apiKey, projectID, region string) (model.LLM, error) {
	cc := &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	if apiKey == "" {
		cc = &genai.ClientConfig{
			Project:  projectID,
			Location: region,
			Backend:  genai.BackendVertexAI,
		}
	}

	m, err := gemini.NewModel(ctx, name, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini model: %w", err)
	}
	return m, nil
}
