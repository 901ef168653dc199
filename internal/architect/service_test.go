package architect

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiupstart.com/code-architect/internal/llm"
	"aiupstart.com/code-architect/internal/prompt"
	"aiupstart.com/code-architect/internal/session"
)

type fakeClient struct {
	resp     llm.CompletionResponse
	err      error
	requests []llm.CompletionRequest
}

func (f *fakeClient) Complete(_ context.Context, req llm.CompletionRequest) (llm.CompletionResponse, error) {
	f.requests = append(f.requests, req)
	return f.resp, f.err
}

func testOptions() Options {
	return Options{
		DefaultModel:     "llama-3.3-70b-versatile",
		FenceTag:         "python",
		BuildTemperature: 0.1,
		DebugTemperature: 0.3,
		MaxTokens:        7000,
	}
}

func TestBuildSplitsResponse(t *testing.T) {
	client := &fakeClient{resp: llm.CompletionResponse{
		Content: "Here you go:\n```python\nimport streamlit as st\n```\nRun with streamlit run.",
		Usage:   llm.TokenUsage{Prompt: 100, Completion: 50, Total: 150},
	}}
	svc := New(client, testOptions())

	result, err := svc.Build(context.Background(), BuildRequest{Description: "a habit tracker"})
	require.NoError(t, err)

	assert.Equal(t, "Here you go:\n", result.Sections.Preamble)
	assert.Equal(t, "\nimport streamlit as st\n", result.Sections.Code)
	assert.True(t, result.Sections.HasCode)
	assert.Equal(t, "\nRun with streamlit run.", result.Sections.Trailing)
	assert.Equal(t, "generated_app.py", result.Filename)
	assert.Equal(t, "text/x-python", result.MIME)
	assert.Equal(t, 150, result.Usage.Total)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, "llama-3.3-70b-versatile", req.Model)
	assert.Equal(t, prompt.ArchitectSystemPrompt, req.System)
	assert.Equal(t, prompt.BuildTask("a habit tracker"), req.User)
	assert.Equal(t, float32(0.1), req.Temperature)
	assert.Equal(t, 7000, req.MaxTokens)
	assert.Empty(t, req.History)
}

func TestBuildUsesEmbeddedFilename(t *testing.T) {
	client := &fakeClient{resp: llm.CompletionResponse{
		Content: "```python\n# filename: tracker.py\nprint('hi')\n```",
	}}
	svc := New(client, testOptions())

	result, err := svc.Build(context.Background(), BuildRequest{Description: "x"})
	require.NoError(t, err)
	assert.Equal(t, "tracker.py", result.Filename)
}

func TestBuildWithoutCodeBlock(t *testing.T) {
	client := &fakeClient{resp: llm.CompletionResponse{
		Content: "I need more details before I can generate anything.",
	}}
	svc := New(client, testOptions())

	result, err := svc.Build(context.Background(), BuildRequest{Description: "x"})
	require.NoError(t, err)
	assert.False(t, result.Sections.HasCode)
	assert.Equal(t, "I need more details before I can generate anything.", result.Sections.Preamble)
	assert.Empty(t, result.Filename)
	assert.Empty(t, result.MIME)
}

func TestBuildModelOverride(t *testing.T) {
	client := &fakeClient{resp: llm.CompletionResponse{Content: "ok"}}
	svc := New(client, testOptions())

	_, err := svc.Build(context.Background(), BuildRequest{Description: "x", Model: "llama-3.1-8b-instant"})
	require.NoError(t, err)
	assert.Equal(t, "llama-3.1-8b-instant", client.requests[0].Model)
}

func TestBuildPropagatesProviderError(t *testing.T) {
	provErr := errors.New("rate limited")
	client := &fakeClient{err: provErr}
	svc := New(client, testOptions())

	_, err := svc.Build(context.Background(), BuildRequest{Description: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, provErr)
}

func TestDebugAppendsTurns(t *testing.T) {
	client := &fakeClient{resp: llm.CompletionResponse{Content: "Use st.rerun() instead."}}
	svc := New(client, testOptions())
	sess := session.NewDebug(prompt.DebugGreeting)

	reply, err := svc.Debug(context.Background(), sess, "st.experimental_rerun fails")
	require.NoError(t, err)
	assert.Equal(t, "Use st.rerun() instead.", reply.Content)

	h := sess.History()
	require.Len(t, h, 3)
	assert.Equal(t, llm.RoleAssistant, h[0].Role)
	assert.Equal(t, llm.RoleUser, h[1].Role)
	assert.Equal(t, "st.experimental_rerun fails", h[1].Content)
	assert.Equal(t, llm.RoleAssistant, h[2].Role)

	req := client.requests[0]
	assert.Equal(t, prompt.DebuggerSystemPrompt, req.System)
	assert.Equal(t, float32(0.3), req.Temperature)
	// The provider sees everything up to and including the new user turn.
	require.Len(t, req.History, 2)
	assert.Equal(t, llm.RoleUser, req.History[1].Role)
	assert.Empty(t, req.User)
}

func TestDebugKeepsUserTurnOnError(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	svc := New(client, testOptions())
	sess := session.NewDebug(prompt.DebugGreeting)

	_, err := svc.Debug(context.Background(), sess, "help")
	require.Error(t, err)

	// The user's message stays visible in the transcript; no assistant
	// turn is recorded for the failed call.
	h := sess.History()
	require.Len(t, h, 2)
	assert.Equal(t, llm.RoleUser, h[1].Role)
}

func TestDocument(t *testing.T) {
	client := &fakeClient{resp: llm.CompletionResponse{Content: "# Overview\nDoes things."}}
	svc := New(client, testOptions())

	result, err := svc.Document(context.Background(), DocRequest{Code: "def f(): pass"})
	require.NoError(t, err)
	assert.Equal(t, "# Overview\nDoes things.", result.Content)

	req := client.requests[0]
	assert.Equal(t, prompt.DocSystemPrompt, req.System)
	assert.Contains(t, req.User, "def f(): pass")
}
