package architect

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"aiupstart.com/code-architect/internal/extract"
	"aiupstart.com/code-architect/internal/llm"
	"aiupstart.com/code-architect/internal/metrics"
	"aiupstart.com/code-architect/internal/prompt"
	"aiupstart.com/code-architect/internal/session"
	"aiupstart.com/code-architect/internal/utils"
)

// Options configures a Service. Zero temperatures are valid (deterministic
// sampling), so the full struct is passed explicitly rather than patched.
type Options struct {
	DefaultModel     string
	FenceTag         string
	BuildTemperature float32
	DebugTemperature float32
	MaxTokens        int
}

// Service fronts the chat-completion provider for the three request modes:
// build an app from a description, debug an error, document pasted code.
// It owns no conversation state; debug sessions are passed in by the caller.
type Service struct {
	client llm.Client
	opts   Options
}

func New(client llm.Client, opts Options) *Service {
	return &Service{client: client, opts: opts}
}

// BuildRequest asks for a full app from a natural-language description.
// Model overrides the configured default when set.
type BuildRequest struct {
	Description string
	Model       string
}

// BuildResult is the split response plus the metadata needed to offer the
// code section as a downloadable file.
type BuildResult struct {
	Sections extract.Sections
	Filename string
	MIME     string
	Usage    llm.TokenUsage
}

// DebugReply is one assistant turn in a debug conversation.
type DebugReply struct {
	Content string
	Usage   llm.TokenUsage
}

// DocRequest asks for documentation of pasted source code.
type DocRequest struct {
	Code  string
	Model string
}

// DocResult is generated documentation, returned as markdown prose.
type DocResult struct {
	Content string
	Usage   llm.TokenUsage
}

// Build sends one architect request and splits the response into prose and
// code. A missing code block is not an error; the caller just has nothing
// to offer for download.
func (s *Service) Build(ctx context.Context, req BuildRequest) (BuildResult, error) {
	metrics.RequestsTotal.WithLabelValues("build").Inc()
	resp, err := s.complete(ctx, "build", llm.CompletionRequest{
		Model:       s.model(req.Model),
		System:      prompt.ArchitectSystemPrompt,
		User:        prompt.BuildTask(req.Description),
		Temperature: s.opts.BuildTemperature,
		MaxTokens:   s.opts.MaxTokens,
	})
	if err != nil {
		return BuildResult{}, fmt.Errorf("build request: %w", err)
	}

	sections := extract.Split(resp.Content, s.opts.FenceTag)
	result := BuildResult{
		Sections: sections,
		Usage:    resp.Usage,
	}
	if !sections.HasCode {
		metrics.ExtractionsTotal.WithLabelValues("prose_only").Inc()
		utils.Logger.Warn().Str("module", "architect").
			Msg("Response contained no fenced code block")
		return result, nil
	}
	metrics.ExtractionsTotal.WithLabelValues("code").Inc()

	result.Filename = fmt.Sprintf("generated_app.%s", extract.ExtForLanguage(s.opts.FenceTag))
	result.MIME = extract.MIMEForLanguage(s.opts.FenceTag)
	// Prefer a filename the model embedded in the block itself.
	if blocks := extract.Blocks(resp.Content); len(blocks) > 0 {
		if name := blocks[0].Filename; name != "" && !isGeneratedName(name) {
			result.Filename = name
		}
	}
	return result, nil
}

// Debug runs one turn of the error-fixer conversation. The user turn is
// recorded before the provider call, matching what the user already sees
// on screen; the assistant turn is recorded only on success.
func (s *Service) Debug(ctx context.Context, sess *session.Session, query string) (DebugReply, error) {
	metrics.RequestsTotal.WithLabelValues("debug").Inc()
	sess.Append(llm.RoleUser, query)
	resp, err := s.complete(ctx, "debug", llm.CompletionRequest{
		Model:       s.model(""),
		System:      prompt.DebuggerSystemPrompt,
		History:     sess.History(),
		Temperature: s.opts.DebugTemperature,
	})
	if err != nil {
		return DebugReply{}, fmt.Errorf("debug request: %w", err)
	}
	sess.Append(llm.RoleAssistant, resp.Content)
	return DebugReply{Content: resp.Content, Usage: resp.Usage}, nil
}

// Document generates markdown documentation for the given code.
func (s *Service) Document(ctx context.Context, req DocRequest) (DocResult, error) {
	metrics.RequestsTotal.WithLabelValues("doc").Inc()
	resp, err := s.complete(ctx, "doc", llm.CompletionRequest{
		Model:       s.model(req.Model),
		System:      prompt.DocSystemPrompt,
		User:        prompt.DocTask(req.Code),
		Temperature: s.opts.DebugTemperature,
		MaxTokens:   s.opts.MaxTokens,
	})
	if err != nil {
		return DocResult{}, fmt.Errorf("doc request: %w", err)
	}
	return DocResult{Content: resp.Content, Usage: resp.Usage}, nil
}

func (s *Service) complete(ctx context.Context, mode string, req llm.CompletionRequest) (llm.CompletionResponse, error) {
	timer := prometheus.NewTimer(metrics.CompletionLatencySeconds.WithLabelValues(mode))
	defer timer.ObserveDuration()
	resp, err := s.client.Complete(ctx, req)
	if err != nil {
		metrics.RequestErrorsTotal.WithLabelValues(mode).Inc()
	}
	return resp, err
}

func (s *Service) model(override string) string {
	if override != "" {
		return override
	}
	return s.opts.DefaultModel
}

// isGeneratedName reports whether a block filename is the hash fallback
// rather than one the model named itself.
func isGeneratedName(name string) bool {
	return len(name) > 10 && name[:10] == "generated_"
}
