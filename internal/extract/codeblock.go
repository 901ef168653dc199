package extract

import (
	"crypto/md5"
	"fmt"
	"regexp"
	"strings"
)

// CodeBlock is one fenced snippet pulled out of markdown text, with the
// metadata needed to offer it as a downloadable file.
type CodeBlock struct {
	Language string // e.g. "python", "go", "bash"
	Code     string
	Filename string
}

// Regular expressions to identify code blocks and filename comments.
var (
	codeBlockRe       = regexp.MustCompile("(?s)```(\\w+)?\\s*\\n(.*?)\\n?```")
	filenameCommentRe = regexp.MustCompile(`(?m)^(?://|#)\s*filename:\s*(.+)$`)
)

// Blocks scans input for every fenced block and returns them in order.
// Unlike Split, block content here is trimmed: Blocks feeds artifact
// naming and listing, not the byte-faithful download path.
func Blocks(input string) []CodeBlock {
	matches := codeBlockRe.FindAllStringSubmatch(input, -1)
	blocks := make([]CodeBlock, 0, len(matches))
	for _, match := range matches {
		language := strings.TrimSpace(match[1])
		code := strings.TrimSpace(match[2])
		filename := filenameFromComment(code)
		if filename == "" {
			// Fallback: generate a filename based on a hash of the code.
			hash := fmt.Sprintf("%x", md5.Sum([]byte(code)))[:8]
			filename = fmt.Sprintf("generated_%s.%s", hash, ExtForLanguage(language))
		}
		blocks = append(blocks, CodeBlock{
			Language: language,
			Code:     code,
			Filename: filename,
		})
	}
	return blocks
}

// filenameFromComment searches for a filename comment within the code block.
func filenameFromComment(code string) string {
	m := filenameCommentRe.FindStringSubmatch(code)
	if len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtForLanguage maps a fence language tag to its typical file extension.
func ExtForLanguage(lang string) string {
	switch strings.ToLower(lang) {
	case "python", "py":
		return "py"
	case "go", "golang":
		return "go"
	case "bash", "shell", "sh":
		return "sh"
	case "javascript", "js":
		return "js"
	case "typescript", "ts":
		return "ts"
	case "sql":
		return "sql"
	default:
		return "txt"
	}
}

// MIMEForLanguage maps a fence language tag to the MIME type used when the
// block is offered for download.
func MIMEForLanguage(lang string) string {
	switch strings.ToLower(lang) {
	case "python", "py":
		return "text/x-python"
	case "go", "golang":
		return "text/x-go"
	case "bash", "shell", "sh":
		return "text/x-shellscript"
	case "javascript", "js":
		return "text/javascript"
	case "typescript", "ts":
		return "text/typescript"
	case "sql":
		return "application/sql"
	default:
		return "text/plain"
	}
}
