package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTask(t *testing.T) {
	got := BuildTask("A finance tracker PWA")
	assert.Equal(t, "Task: A finance tracker PWA\n\nStrictly follow the Architecture Rules provided.", got)
}

func TestDocTask(t *testing.T) {
	got := DocTask("def f():\n    pass")
	assert.Contains(t, got, "Document the following code:")
	assert.Contains(t, got, "def f():")
}

func TestArchitectPromptDemandsSingleBlock(t *testing.T) {
	// The extractor depends on the model being told to answer with one
	// code block; keep the instruction pinned.
	assert.Contains(t, ArchitectSystemPrompt, "Provide the FULL Python code in one block.")
}
