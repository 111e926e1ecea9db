package sentiment

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"crypto-pulse/metrics"
)

const geminiSystemInstruction = `You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `). The response should contain ONLY the raw JSON string.`

// GeminiClient scores prompts through the Gemini API. The API key comes
// from the session credential input, never from the environment.
type GeminiClient struct {
	apiKey string
	model  string
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{apiKey: apiKey, model: model}
}

func (c *GeminiClient) Name() string {
	return "gemini"
}

func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", err
	}

	start := time.Now()
	result, err := client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: geminiSystemInstruction}}},
			Temperature:       genai.Ptr[float32](0),
		},
	)
	metrics.CompletionRequestDuration.WithLabelValues(c.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CompletionRequestsTotal.WithLabelValues(c.Name(), "error").Inc()
		return "", err
	}

	text := result.Text()
	if text == "" {
		metrics.CompletionRequestsTotal.WithLabelValues(c.Name(), "error").Inc()
		return "", fmt.Errorf("gemini: empty completion response")
	}

	metrics.CompletionRequestsTotal.WithLabelValues(c.Name(), "ok").Inc()
	return text, nil
}
