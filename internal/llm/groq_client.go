package llm

import (
	"context"
	"fmt"

	"aiupstart.com/code-architect/internal/metrics"
	"aiupstart.com/code-architect/internal/utils"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// GroqClient talks to Groq's chat-completion API through the
// OpenAI-compatible surface.
type GroqClient struct {
	client *openai.Client
}

// NewGroqClient builds a client for the given key. An empty baseURL means
// the Groq production endpoint; tests point it at a local server.
func NewGroqClient(apiKey, baseURL string) *GroqClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cfg.BaseURL = baseURL
	return &GroqClient{client: openai.NewClientWithConfig(cfg)}
}

func (c *GroqClient) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	if req.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.History {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	if req.User != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: req.User,
		})
	}

	utils.Logger.Debug().Str("module", "llm").Str("model", req.Model).
		Int("messages", len(msgs)).Msg("Sending chat completion request")

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		utils.Logger.Error().Err(err).Str("module", "llm").Msg("Chat completion call failed")
		return CompletionResponse{}, fmt.Errorf("groq API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		utils.Logger.Error().Str("module", "llm").Msg("No choices returned from completion API")
		return CompletionResponse{}, fmt.Errorf("no choices returned from completion API")
	}

	metrics.CompletionTokensTotal.WithLabelValues("prompt").Add(float64(resp.Usage.PromptTokens))
	metrics.CompletionTokensTotal.WithLabelValues("completion").Add(float64(resp.Usage.CompletionTokens))
	metrics.CompletionTokensTotal.WithLabelValues("total").Add(float64(resp.Usage.TotalTokens))

	return CompletionResponse{
		Content: resp.Choices[0].Message.Content,
		Usage: TokenUsage{
			Prompt:     resp.Usage.PromptTokens,
			Completion: resp.Usage.CompletionTokens,
			Total:      resp.Usage.TotalTokens,
		},
	}, nil
}
