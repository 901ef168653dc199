package session

import (
	"github.com/google/uuid"

	"aiupstart.com/code-architect/internal/llm"
)

// Session is a caller-owned, in-memory conversation log. It lives for the
// process only; nothing here is persisted or shared between sessions.
type Session struct {
	ID       string
	messages []llm.Message
}

// New returns an empty session.
func New() *Session {
	return &Session{ID: uuid.NewString()}
}

// NewDebug returns a session seeded with the assistant greeting shown at
// the start of every debug conversation.
func NewDebug(greeting string) *Session {
	s := New()
	s.Append(llm.RoleAssistant, greeting)
	return s
}

// Append records one conversation turn.
func (s *Session) Append(role, content string) {
	s.messages = append(s.messages, llm.Message{Role: role, Content: content})
}

// History returns a copy of the conversation so far.
func (s *Session) History() []llm.Message {
	return append([]llm.Message(nil), s.messages...)
}

// Len reports the number of recorded turns.
func (s *Session) Len() int {
	return len(s.messages)
}

// Last returns the most recent message, or a zero Message when empty.
func (s *Session) Last() llm.Message {
	if len(s.messages) == 0 {
		return llm.Message{}
	}
	return s.messages[len(s.messages)-1]
}
