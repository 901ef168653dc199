package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiupstart.com/code-architect/internal/llm"
)

func TestNewSessionsHaveDistinctIDs(t *testing.T) {
	a, b := New(), New()
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Zero(t, a.Len())
}

func TestNewDebugSeedsGreeting(t *testing.T) {
	s := NewDebug("hello there")
	require.Equal(t, 1, s.Len())
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "hello there"}, s.Last())
}

func TestAppendAndHistory(t *testing.T) {
	s := New()
	s.Append(llm.RoleUser, "it crashed")
	s.Append(llm.RoleAssistant, "what does the traceback say?")

	h := s.History()
	require.Len(t, h, 2)
	assert.Equal(t, llm.RoleUser, h[0].Role)
	assert.Equal(t, "what does the traceback say?", s.Last().Content)

	// History must be a copy, not a view.
	h[0].Content = "mutated"
	assert.Equal(t, "it crashed", s.History()[0].Content)
}

func TestLastOnEmptySession(t *testing.T) {
	assert.Equal(t, llm.Message{}, New().Last())
}
