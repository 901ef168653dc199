package llm

import "context"

// Chat roles as the completion API expects them.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single message in the conversation.
type Message struct {
	Role    string
	Content string
}

// CompletionRequest is one fully-formed chat-completion call: a system
// instruction, any prior conversation turns, and the new user content.
type CompletionRequest struct {
	Model       string
	System      string
	History     []Message
	User        string
	Temperature float32
	MaxTokens   int
}

// TokenUsage reports the token counts the provider billed for one call.
type TokenUsage struct {
	Prompt     int
	Completion int
	Total      int
}

// CompletionResponse carries the raw text the model returned.
type CompletionResponse struct {
	Content string
	Usage   TokenUsage
}

// Client defines the interface for interacting with a chat-completion
// provider. Implementations must not retry on their own; the caller
// decides what a failed call means.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}
